package model

import "testing"

func strPtr(s string) *string { return &s }

func validQuestion() QuestionModel {
	return QuestionModel{
		QuestionText:          "Ibukota Indonesia?",
		QuestionOption1:       "Jakarta",
		QuestionOption2:       "Bandung",
		QuestionCorrectOption: 1,
	}
}

func TestValidateShapeOK(t *testing.T) {
	m := validQuestion()
	if err := m.ValidateShape(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidateShapeMissingText(t *testing.T) {
	m := validQuestion()
	m.QuestionText = "   "
	if err := m.ValidateShape(); err == nil {
		t.Fatal("expected error for empty question_text")
	}
}

func TestValidateShapeCorrectOptionOutOfRange(t *testing.T) {
	for _, v := range []int{0, 5, -1} {
		m := validQuestion()
		m.QuestionCorrectOption = v
		if err := m.ValidateShape(); err == nil {
			t.Errorf("correct_option=%d: expected error", v)
		}
	}
}

func TestValidateShapeCorrectOptionEmptySlot(t *testing.T) {
	m := validQuestion()
	m.QuestionCorrectOption = 3 // option3 kosong
	if err := m.ValidateShape(); err == nil {
		t.Fatal("expected error for empty option slot")
	}

	m.QuestionOption3 = strPtr("Surabaya")
	if err := m.ValidateShape(); err != nil {
		t.Fatalf("unexpected error after filling option3: %v", err)
	}
}

func TestOptions(t *testing.T) {
	m := validQuestion()
	if got := len(m.Options()); got != 2 {
		t.Fatalf("options = %d, want 2", got)
	}

	m.QuestionOption3 = strPtr("Surabaya")
	m.QuestionOption4 = strPtr("Medan")
	opts := m.Options()
	if len(opts) != 4 {
		t.Fatalf("options = %d, want 4", len(opts))
	}
	if opts[2] != "Surabaya" || opts[3] != "Medan" {
		t.Fatalf("unexpected option order: %v", opts)
	}
}
