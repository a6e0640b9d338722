package grader

import (
	"fmt"
	"strings"
)

const correctionSystemPrompt = `You are an experienced English grammar teacher grading a learner's answer.

Judge whether the learner's answer correctly applies the grammar point being practiced. The reference answer is one acceptable phrasing, not the only one: accept any answer that is grammatically correct and demonstrates the grammar point, even if the wording differs.

Be strict about the grammar point itself. Unrelated minor slips (punctuation, capitalization) do not make an answer wrong.`

const explainSystemPrompt = `You are an encouraging English grammar teacher.

A learner answered a grammar exercise incorrectly. Explain in two or three short sentences why their answer is wrong and what the correct answer does differently. Address the learner directly. Focus on the grammar point being practiced; do not lecture beyond it.`

func correctionUserMessage(req CorrectionRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Grammar point: %s\n\n", req.GrammarPoint)
	fmt.Fprintf(&b, "Exercise:\n%s\n\n", req.Prompt)
	fmt.Fprintf(&b, "Reference answer:\n%s\n\n", req.Answer)
	fmt.Fprintf(&b, "Learner's answer:\n%s\n", req.UserAnswer)
	return b.String()
}

func explainUserMessage(req ExplainRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Grammar point: %s\n\n", req.GrammarPoint)
	fmt.Fprintf(&b, "Exercise:\n%s\n\n", req.Prompt)
	fmt.Fprintf(&b, "Correct answer:\n%s\n\n", req.Answer)
	if strings.TrimSpace(req.UserAnswer) == "" {
		b.WriteString("The learner left this blank.\n")
	} else {
		fmt.Fprintf(&b, "Learner's answer:\n%s\n", req.UserAnswer)
	}
	return b.String()
}
