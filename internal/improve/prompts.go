package improve

import (
	"fmt"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// buildSummaryPrompt asks for a rewritten professional summary. The job
// description and skill list are supplied as context when present so the
// rewrite can be targeted, but they are never echoed into the record.
func buildSummaryPrompt(rec *types.ResumeRecord) string {
	var sb strings.Builder
	sb.WriteString("You are an expert resume writer. Rewrite the professional summary below ")
	sb.WriteString("to be concise, impactful and written in the first person implied voice ")
	sb.WriteString("(no \"I\"). Return ONLY the rewritten summary as plain text, 2-3 sentences, ")
	sb.WriteString("no preamble, no markdown.\n\n")

	sb.WriteString("Current summary:\n\"\"\"\n")
	sb.WriteString(rec.Summary)
	sb.WriteString("\n\"\"\"\n")

	if len(rec.Skills) > 0 {
		sb.WriteString("\nCandidate skills: ")
		sb.WriteString(strings.Join(rec.Skills, ", "))
		sb.WriteString("\n")
	}
	if strings.TrimSpace(rec.JobDescription) != "" {
		sb.WriteString("\nTarget job description:\n\"\"\"\n")
		sb.WriteString(rec.JobDescription)
		sb.WriteString("\n\"\"\"\n")
	}
	return sb.String()
}

// buildBulletPrompt asks for rewritten achievement bullets for an experience
// or project entry.
func buildBulletPrompt(heading string, bullets []string, jobDescription string) string {
	var sb strings.Builder
	sb.WriteString("You are an expert resume writer. Rewrite the bullet points below for ")
	sb.WriteString(fmt.Sprintf("\"%s\" to be achievement-oriented, starting each with a strong ", heading))
	sb.WriteString("action verb and quantifying impact where the original supports it. ")
	sb.WriteString("Do not invent facts. Return ONLY the rewritten bullets, one per line, ")
	sb.WriteString("each prefixed with \"- \", no preamble, no markdown headings.\n\n")

	sb.WriteString("Current bullets:\n")
	for _, b := range bullets {
		sb.WriteString("- ")
		sb.WriteString(b)
		sb.WriteString("\n")
	}

	if strings.TrimSpace(jobDescription) != "" {
		sb.WriteString("\nTarget job description:\n\"\"\"\n")
		sb.WriteString(jobDescription)
		sb.WriteString("\n\"\"\"\n")
	}
	return sb.String()
}
