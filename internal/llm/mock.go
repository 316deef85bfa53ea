package llm

import "context"

// Canned JSON covers both JSON-mode shapes used by orchestrators: the quiz
// item list and the cover-letter profile extraction. Extra keys are ignored
// by each consumer.
const mockJSON = `{"items":[` +
	`{"question":"Tell me about a time you solved a tricky problem.","idealAnswer":"Situation, task, action, result. Keep it under two minutes and quantify the outcome."},` +
	`{"question":"How do you prioritize tasks?","idealAnswer":"Urgency vs impact, plan, execute, review. Mention a concrete tool or ritual."},` +
	`{"question":"Describe a challenge with a customer.","idealAnswer":"Listen, clarify, offer options, follow up. Close with what changed afterwards."}],` +
	`"fullName":"Alex Candidate","addressLine1":"","addressLine2":"","phone":"","email":"alex@example.com",` +
	`"hiringManagerGuess":"","companyGuess":"","companyAddress":"",` +
	`"topAchievements":["Grew monthly sales 20%"],"topSkills":["Communication","Excel"]}`

const mockText = `- Add 2-3 quantified bullets (%, $, time saved).
- Highlight tools and skills from the posting (e.g., Excel, POS, CRM).
- Move the most relevant experience to the top.
- Mirror the posting's keywords in your summary line.
- Trim bullets older than ten years to one line each.
- Quantify the resale operation's margins and volume.`

// MockClient returns deterministic canned output for offline testing
// (FORCE_MOCK_AI). JSON-mode requests get a JSON object, everything else a
// fixed plain-text block.
type MockClient struct{}

// Complete returns the canned response for the request shape.
func (MockClient) Complete(ctx context.Context, req Request) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if req.JSONMode {
		return mockJSON, nil
	}
	return mockText, nil
}

var _ Client = MockClient{}
