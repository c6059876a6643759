package advisor

import (
	"encoding/json"
	"fmt"

	"github.com/adeyemio/kobo/internal/model"
)

const systemPrompt = "You are a helpful financial advisor providing detailed but clear advice."

// buildPrompt serializes the snapshot and wraps it in the advisory
// request. The bracketed section headers are a contract with
// ParseSections and with every report consumer downstream.
func buildPrompt(snapshot model.Snapshot) (string, error) {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize snapshot: %w", err)
	}

	return fmt.Sprintf(`Analyze the following financial data and provide personalized insights and recommendations:

User Financial Data:
%s

Please structure your response with these clear sections:

[Summary]
Provide a brief overview of the user's financial situation including:
- Total income
- Total expenses
- Net balance
- General financial health assessment

[Spending Alerts]
Identify any concerning spending patterns where:
- Expenses exceed budgets
- Spending seems unusually high in certain categories
- Any other potential financial risks
Format these as clear warnings

[Positive Feedback]
Highlight good financial habits such as:
- Categories where spending is well-controlled
- Savings habits
- Any other positive financial behaviors

[Budget Recommendations]
Provide specific suggestions for improving budgeting including:
- Categories that could use adjustment
- Potential savings opportunities
- Budget allocation advice

[Savings Suggestions]
Offer advice on saving and investing including:
- Recommended savings amounts
- Potential investment opportunities
- Emergency fund recommendations

[Additional Advice]
Provide any other relevant financial tips that could help the user

Important Notes:
- Use clear section headers in [brackets] for each part
- Replace all $ symbols with ₦ (Naira)
- Use bullet points for lists
- Keep the tone professional but friendly`, string(data)), nil
}
