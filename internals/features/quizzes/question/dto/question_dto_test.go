package dto

import (
	"testing"

	"github.com/google/uuid"

	m "quizmaster_backend/internals/features/quizzes/question/model"
)

func strPtr(s string) *string { return &s }

func TestCreateQuestionNormalize(t *testing.T) {
	req := CreateQuestionRequest{
		QuestionText:  "  2 + 2 = ?  ",
		Option1:       " 3 ",
		Option2:       " 4 ",
		Option3:       strPtr("   "),
		CorrectOption: 2,
	}
	req.Normalize()

	if req.QuestionText != "2 + 2 = ?" {
		t.Errorf("question_text = %q", req.QuestionText)
	}
	if req.Option1 != "3" || req.Option2 != "4" {
		t.Errorf("options = %q, %q", req.Option1, req.Option2)
	}
	// whitespace-only dianggap kosong
	if req.Option3 != nil {
		t.Errorf("option3 = %q, want nil", *req.Option3)
	}
}

func TestToQuestionUserItemsHidesAnswerKey(t *testing.T) {
	rows := []m.QuestionModel{
		{
			QuestionID:            uuid.New(),
			QuestionText:          "2 + 2 = ?",
			QuestionOption1:       "3",
			QuestionOption2:       "4",
			QuestionOption3:       strPtr("5"),
			QuestionCorrectOption: 2,
		},
	}

	items := ToQuestionUserItems(rows)
	if len(items) != 1 {
		t.Fatalf("items = %d, want 1", len(items))
	}
	if items[0].Question != "2 + 2 = ?" {
		t.Errorf("question = %q", items[0].Question)
	}
	if len(items[0].Options) != 3 {
		t.Errorf("options = %v, want 3 entries", items[0].Options)
	}
}

func TestUpdateQuestionApply(t *testing.T) {
	mo := m.QuestionModel{
		QuestionText:          "old",
		QuestionOption1:       "a",
		QuestionOption2:       "b",
		QuestionCorrectOption: 1,
	}

	newCorrect := 2
	req := UpdateQuestionRequest{
		QuestionText:  strPtr("new"),
		CorrectOption: &newCorrect,
	}
	req.Apply(&mo)

	if mo.QuestionText != "new" {
		t.Errorf("question_text = %q, want new", mo.QuestionText)
	}
	if mo.QuestionCorrectOption != 2 {
		t.Errorf("correct_option = %d, want 2", mo.QuestionCorrectOption)
	}
	if mo.QuestionOption1 != "a" || mo.QuestionOption2 != "b" {
		t.Errorf("options changed: %q, %q", mo.QuestionOption1, mo.QuestionOption2)
	}
}
