package advisor

import "strings"

// Section is one titled block of advisory text.
type Section struct {
	Title string
	Body  string
}

// normalizeCurrency replaces dollar signs the model slips in despite the
// prompt with the Naira symbol.
func normalizeCurrency(text string) string {
	return strings.ReplaceAll(strings.TrimSpace(text), "$", "₦")
}

// ParseSections splits advisory text on bracketed section headers like
// [Summary]. Text before the first header becomes an untitled section.
// Headers never nest; a line is a header only when the whole trimmed line
// is wrapped in brackets.
func ParseSections(text string) []Section {
	var sections []Section
	current := Section{}
	var body []string

	flush := func() {
		current.Body = strings.TrimSpace(strings.Join(body, "\n"))
		if current.Title != "" || current.Body != "" {
			sections = append(sections, current)
		}
		body = nil
	}

	for _, line := range strings.Split(text, "\n") {
		trimmed := strings.TrimSpace(line)
		if len(trimmed) > 2 && strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") &&
			!strings.Contains(trimmed[1:len(trimmed)-1], "[") {
			flush()
			current = Section{Title: trimmed[1 : len(trimmed)-1]}
			continue
		}
		body = append(body, line)
	}
	flush()

	return sections
}
