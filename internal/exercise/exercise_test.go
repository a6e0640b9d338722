package exercise

import "testing"

func TestNewValidation(t *testing.T) {
	cases := []struct {
		name    string
		kind    Kind
		prompt  string
		answer  string
		options []string
		wantErr bool
	}{
		{"valid multiple choice", MultipleChoice, "p", "B", []string{"A. x", "B. y"}, false},
		{"valid fill blank", FillBlank, "p ____", "word", nil, false},
		{"valid free response", FreeResponse, "p", "model answer", nil, false},
		{"empty prompt", FillBlank, "  ", "a", nil, true},
		{"empty answer", FillBlank, "p", "", nil, true},
		{"choice without options", MultipleChoice, "p", "A", nil, true},
		{"fill blank with options", FillBlank, "p", "a", []string{"A. x"}, true},
		{"unknown kind", Kind("essay"), "p", "a", nil, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := New(tc.kind, tc.prompt, tc.answer, tc.options)
			if (err != nil) != tc.wantErr {
				t.Errorf("New() error = %v, wantErr %v", err, tc.wantErr)
			}
		})
	}
}

func TestAnswered(t *testing.T) {
	ex := &Exercise{Kind: FillBlank, Prompt: "p", Answer: "a"}
	if ex.Answered() {
		t.Error("nil answer should not count as answered")
	}
	ex.SetAnswer("   ")
	if ex.Answered() {
		t.Error("blank answer should not count as answered")
	}
	ex.SetAnswer("word")
	if !ex.Answered() {
		t.Error("non-blank answer should count as answered")
	}
}

func TestGradeMultipleChoice(t *testing.T) {
	ex := &Exercise{Kind: MultipleChoice, Prompt: "p", Answer: "B", Options: []string{"A. x", "B. y"}}

	ex.SetAnswer(" b ")
	if got := ex.Grade(); got != VerdictCorrect {
		t.Errorf("case-folded token should be correct, got %v", got)
	}

	ex.Verdict = VerdictUnknown
	ex.SetAnswer("A")
	if got := ex.Grade(); got != VerdictIncorrect {
		t.Errorf("wrong option should be incorrect, got %v", got)
	}
}

func TestGradeFillBlank(t *testing.T) {
	ex := &Exercise{Kind: FillBlank, Prompt: "p", Answer: "had started; had left"}

	ex.SetAnswer("Had Started ;  had left")
	if got := ex.Grade(); got != VerdictCorrect {
		t.Errorf("segment-wise match should be correct, got %v", got)
	}

	ex.Verdict = VerdictUnknown
	ex.SetAnswer("had started")
	if got := ex.Grade(); got != VerdictIncorrect {
		t.Errorf("segment count mismatch should be incorrect, got %v", got)
	}
}

func TestGradeNilAnswerIsIncorrect(t *testing.T) {
	ex := &Exercise{Kind: FillBlank, Prompt: "p", Answer: "a"}
	if got := ex.Grade(); got != VerdictIncorrect {
		t.Errorf("nil answer = %v, want incorrect", got)
	}
}

func TestGradeLeavesFreeResponseUndecided(t *testing.T) {
	ex := &Exercise{Kind: FreeResponse, Prompt: "p", Answer: "a"}
	ex.SetAnswer("anything")
	if got := ex.Grade(); got != VerdictUnknown {
		t.Errorf("free response = %v, want unknown (collaborator decides)", got)
	}
}

func TestVerdictStringAndDecided(t *testing.T) {
	if VerdictUnknown.Decided() {
		t.Error("unknown verdict must not read as decided")
	}
	if !VerdictCorrect.Decided() || !VerdictIncorrect.Decided() {
		t.Error("correct/incorrect are decided")
	}
	if VerdictCorrect.String() != "correct" || VerdictIncorrect.String() != "incorrect" {
		t.Error("unexpected verdict labels")
	}
}
