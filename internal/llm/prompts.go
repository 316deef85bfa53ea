package llm

import (
	"fmt"
	"strings"
)

// Input size caps keep prompts inside model context without failing requests.
const (
	maxResumeChars     = 15000
	maxJobChars        = 8000
	maxQuizJobChars    = 4000
	maxSummarizerChars = 50000
)

// Clip truncates s to max characters.
func Clip(s string, max int) string {
	if max > 0 && len(s) > max {
		return s[:max]
	}
	return s
}

func clipMarked(s string, max int) string {
	if max > 0 && len(s) > max {
		return s[:max] + "\n...[truncated]..."
	}
	return s
}

// ImprovementsPrompt asks for terse, résumé-focused improvement bullets.
func ImprovementsPrompt(resumeText, jobDescription string) []Message {
	prompt := fmt.Sprintf(`You are a hiring manager. Compare the RESUME to the JOB DESCRIPTION and list concrete, résumé-focused improvements only (skills to add, keywords to mirror, bullets to rewrite with metrics, section order tweaks). Output 6-10 bullets, terse and actionable.

JOB DESCRIPTION:
%s

RESUME:
%s`, Clip(jobDescription, maxJobChars), Clip(resumeText, maxResumeChars))
	return User(prompt)
}

// ProfilePrompt extracts contact details and highlights as strict JSON.
func ProfilePrompt(resumeText, jobDescription string) []Message {
	return []Message{
		{
			Role:    "system",
			Content: "Extract precise contact details and relevant highlights from the resume for the given job. No hallucinations. Use empty strings if unknown.",
		},
		{
			Role: "user",
			Content: strings.Join([]string{
				"Return JSON with keys:",
				"- fullName",
				"- addressLine1",
				"- addressLine2",
				"- phone",
				"- email",
				"- hiringManagerGuess",
				"- companyGuess",
				"- companyAddress",
				"- topAchievements (array; max 3; concise, include metrics if present)",
				"- topSkills (array; max 8; relevant to JD)",
				"",
				"RESUME_TEXT:",
				Clip(resumeText, maxResumeChars),
				"",
				"JOB_DESCRIPTION:",
				Clip(jobDescription, maxJobChars),
			}, "\n"),
		},
	}
}

const coverLetterLayout = `FORMAT STRICTLY (omit any unknown line instead of placeholders):

[Full Name]
[Address line 1]
[Address line 2]
[Phone]  [Email]

[Today's Date spelled out, e.g., September 12, 2025]

[Hiring Manager's Name]
[Company Name]
[Company Address]

Dear [Hiring Manager's Name],

Paragraph 1: concise hook naming the role and 1-2 strengths.

Paragraph 2-3: align resume achievements/skills to JD requirements using concrete results and metrics when present. Prose only (no bullets).

Closing: enthusiasm + call to action.

Warm regards,

[Full Name]`

// CoverLetterPrompt composes a letter against the fixed plain-text layout.
func CoverLetterPrompt(profileJSON, resumeText, jobDescription string) []Message {
	return []Message{
		{Role: "system", Content: "You are an expert cover-letter writer for US audiences."},
		{
			Role: "user",
			Content: strings.Join([]string{
				"Write a professional cover letter following the exact layout below.",
				"Constraints:",
				"- 275-425 words",
				"- Plain text; use blank lines between blocks",
				"- Never output bracketed placeholders; if a value is missing, omit that line entirely",
				"",
				"LAYOUT SPEC:",
				coverLetterLayout,
				"",
				"PROFILE JSON:",
				profileJSON,
				"",
				"JOB DESCRIPTION:",
				Clip(jobDescription, maxJobChars),
				"",
				"RESUME TEXT:",
				Clip(resumeText, maxResumeChars),
			}, "\n"),
		},
	}
}

// QuizPrompt requests interview questions as strict minified JSON.
func QuizPrompt(jobDescription string, count int) []Message {
	jd := clipMarked(strings.ReplaceAll(jobDescription, "\x00", ""), maxQuizJobChars)
	prompt := fmt.Sprintf(`You generate interview questions.

Return ONLY valid, minified JSON in this exact shape (NO markdown, NO backticks, NO commentary):
{"items":[{"question":"...","idealAnswer":"..."}, ...]}

Rules:
- Exactly %d items if possible.
- Questions: mix behavioral, situational, and role-specific.
- "idealAnswer" must be a concise outline (bullets allowed, keep under 80-120 words).
- Use plain text characters only.
- Do NOT include any keys other than "items", "question", "idealAnswer".

JOB DESCRIPTION:
%s`, count, jd)
	return User(prompt)
}

// SummarizePrompt cleans a scraped job page down to the posting itself.
func SummarizePrompt(raw string) []Message {
	return []Message{
		{
			Role: "system",
			Content: `You clean job postings. Return plain text only.
Keep: role summary, key responsibilities, must-have & preferred qualifications, tech stack, location/remote, work auth/visa notes, comp if present.
Remove: navigation, ads, footers, unrelated links, cookie notices, application boilerplate.`,
		},
		{
			Role:    "user",
			Content: "Raw job page text:\n\n\"\"\"" + Clip(raw, maxSummarizerChars) + "\"\"\"",
		},
	}
}

// AssistantSystemPrompt is the chat persona message.
const AssistantSystemPrompt = `You are Job PowerUp — a friendly, precise career assistant.
Use the provided context when helpful (resume improvements, cover letter, job description).
Give actionable suggestions. Keep answers concise unless asked for more. Use markdown for emphasis.`
