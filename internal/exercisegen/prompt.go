package exercisegen

import (
	"fmt"
	"strings"
)

const generationSystemPrompt = `You are an English grammar teacher writing practice exercises.

Write exercises that isolate the requested grammar point: a learner who has not mastered it should get them wrong, and one who has should get them right. Mix exercise kinds across the batch.

Rules per kind:
- multiple_choice: 3 or 4 options lettered "A. ", "B. ", and so on. Exactly one option is correct; the others are plausible errors a learner of this point actually makes. The answer field holds the correct option's letter.
- fill_blank: mark each blank in the prompt with "____". The answer field holds the expected words; for several blanks, separate the per-blank answers with ";" in order.
- free_response: ask the learner to write or rewrite a sentence using the grammar point. The answer field holds one acceptable model answer.

Keep prompts self-contained and at an intermediate difficulty.`

func generationUserMessage(in GenerateInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Grammar point: %s\n", in.GrammarPoint)
	fmt.Fprintf(&b, "Number of exercises: %d\n", in.ClampedCount())
	return b.String()
}
