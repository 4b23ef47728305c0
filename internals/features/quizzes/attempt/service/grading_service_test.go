package service

import (
	"testing"

	"github.com/google/uuid"

	questionModel "quizmaster_backend/internals/features/quizzes/question/model"
)

func makeQuestion(correct int) questionModel.QuestionModel {
	return questionModel.QuestionModel{
		QuestionID:            uuid.New(),
		QuestionText:          "2 + 2 = ?",
		QuestionOption1:       "3",
		QuestionOption2:       "4",
		QuestionCorrectOption: correct,
	}
}

func TestCountCorrectAllCorrect(t *testing.T) {
	q1 := makeQuestion(2)
	q2 := makeQuestion(1)
	answers := map[string]int{
		q1.QuestionID.String(): 2,
		q2.QuestionID.String(): 1,
	}

	got := CountCorrect([]questionModel.QuestionModel{q1, q2}, answers)
	if got != 2 {
		t.Fatalf("correct = %d, want 2", got)
	}
}

func TestCountCorrectMixed(t *testing.T) {
	q1 := makeQuestion(2)
	q2 := makeQuestion(1)
	answers := map[string]int{
		q1.QuestionID.String(): 2,
		q2.QuestionID.String(): 2,
	}

	got := CountCorrect([]questionModel.QuestionModel{q1, q2}, answers)
	if got != 1 {
		t.Fatalf("correct = %d, want 1", got)
	}
}

func TestCountCorrectUnknownQuestionSkipped(t *testing.T) {
	q1 := makeQuestion(2)
	answers := map[string]int{
		q1.QuestionID.String(): 2,
		uuid.NewString():       1, // soal tidak dikenal
		"bukan-uuid":           3, // id rusak
	}

	got := CountCorrect([]questionModel.QuestionModel{q1}, answers)
	if got != 1 {
		t.Fatalf("correct = %d, want 1", got)
	}
}

func TestPercentage(t *testing.T) {
	cases := []struct {
		correct, total int
		want           float64
	}{
		{2, 2, 100},
		{0, 3, 0},
		{1, 2, 50},
		{1, 3, 100.0 / 3},
		{0, 0, 0}, // guard bagi nol
	}
	for _, tc := range cases {
		if got := Percentage(tc.correct, tc.total); got != tc.want {
			t.Errorf("Percentage(%d, %d) = %v, want %v", tc.correct, tc.total, got, tc.want)
		}
	}
}
