package advisor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSections(t *testing.T) {
	text := `[Summary]
Your finances look healthy overall.
- Total income: ₦500,000

[Spending Alerts]
- Food spending exceeds its budget.

[Additional Advice]
Keep an emergency fund.`

	sections := ParseSections(text)
	require.Len(t, sections, 3)

	assert.Equal(t, "Summary", sections[0].Title)
	assert.Contains(t, sections[0].Body, "Total income")
	assert.Equal(t, "Spending Alerts", sections[1].Title)
	assert.Equal(t, "Additional Advice", sections[2].Title)
	assert.Equal(t, "Keep an emergency fund.", sections[2].Body)
}

func TestParseSectionsPreamble(t *testing.T) {
	text := `Here is your analysis.

[Summary]
All good.`

	sections := ParseSections(text)
	require.Len(t, sections, 2)
	assert.Empty(t, sections[0].Title, "text before the first header is an untitled section")
	assert.Equal(t, "Here is your analysis.", sections[0].Body)
	assert.Equal(t, "Summary", sections[1].Title)
}

func TestParseSectionsNoHeaders(t *testing.T) {
	sections := ParseSections("plain advice with no structure")
	require.Len(t, sections, 1)
	assert.Empty(t, sections[0].Title)
	assert.Equal(t, "plain advice with no structure", sections[0].Body)
}

func TestParseSectionsIgnoresInlineBrackets(t *testing.T) {
	text := `[Summary]
Spending on [Food] is fine.
[a][b]`

	sections := ParseSections(text)
	require.Len(t, sections, 1)
	assert.Contains(t, sections[0].Body, "[Food]")
	assert.Contains(t, sections[0].Body, "[a][b]", "a line with multiple bracket groups is body text")
}

func TestNormalizeCurrency(t *testing.T) {
	got := normalizeCurrency("  You spent $120 of your $500 budget. ")
	assert.Equal(t, "You spent ₦120 of your ₦500 budget.", got)
}
