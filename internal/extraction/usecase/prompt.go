package usecase

import (
	"fmt"
	"strings"
)

// emailSystemPrompt is the instruction sent with every email extraction.
const emailSystemPrompt = `You are an email triage assistant. Classify the email and extract the action items the reader must do.

RULES:
1. category MUST be exactly one of: "PROMO", "ALERT", "MEETING", "PROJECT", "OTHER".
   - PROMO: marketing, newsletters, offers. Return no tasks.
   - ALERT: security, billing or account notices.
   - MEETING: invitations, agendas, meeting follow-ups.
   - PROJECT: work the reader is involved in.
   - OTHER: anything else. Return no tasks.
2. summary: one or two sentences.
3. tasks: only true action items for the reader, at most %d. For each task:
   - title: short imperative phrase (required)
   - due_raw: the deadline exactly as written in the email, or "" if none
   - due_date: the deadline as YYYY-MM-DD when you can resolve it from TODAY, else ""
   - confidence: number between 0 and 1
4. Return ONLY valid JSON. No markdown, no code blocks, no explanation text.

EXAMPLE OUTPUT:
{
  "category": "PROJECT",
  "summary": "Alice needs the Q3 budget reviewed before the board meeting.",
  "tasks": [
    {"title": "Review Q3 budget", "due_raw": "by Friday", "due_date": "2024-05-03", "confidence": 0.9}
  ]
}`

// meetingSystemPrompt is the instruction sent with meeting notes.
const meetingSystemPrompt = `You are a meeting notes assistant. Summarise the meeting and extract the action items.

RULES:
1. summary: a short paragraph covering decisions and open points.
2. tasks: action items%s. For each task:
   - title: short imperative phrase (required)
   - priority: MUST be exactly one of: "HIGH", "MED", "LOW"
   - due_raw: the deadline exactly as written, or "" if none
   - due_date: the deadline as YYYY-MM-DD when you can resolve it from TODAY, else ""
   - confidence: number between 0 and 1
3. Return ONLY valid JSON with keys "summary" and "tasks". No markdown, no code blocks.`

// buildEmailPrompt returns the system instruction and the user turn for an email.
func buildEmailPrompt(body, today string, maxTasks int) (string, string) {
	return fmt.Sprintf(emailSystemPrompt, maxTasks), userTurn("EMAIL", body, today)
}

func buildMeetingPrompt(notes, today, owner string) (string, string) {
	scope := " for every attendee"
	if owner = strings.TrimSpace(owner); owner != "" {
		scope = fmt.Sprintf(" assigned to %s only", owner)
	}
	return fmt.Sprintf(meetingSystemPrompt, scope), userTurn("MEETING NOTES", notes, today)
}

func userTurn(label, text, today string) string {
	var b strings.Builder
	b.WriteString("TODAY: ")
	b.WriteString(today)
	b.WriteString("\n\n")
	b.WriteString(label)
	b.WriteString(":\n")
	b.WriteString(strings.TrimSpace(text))
	b.WriteString("\n\nReturn ONLY the JSON object:")
	return b.String()
}
