package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"

	m "quizmaster_backend/internals/features/quizzes/quiz/model"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestCreateQuizToModelWithDate(t *testing.T) {
	chapterID := uuid.New()
	req := CreateQuizRequest{Date: strPtr("2025-01-31"), DurationMinutes: 30}

	mo, err := req.ToModel(chapterID)
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}
	if mo.QuizChapterID != chapterID {
		t.Errorf("chapter_id = %s, want %s", mo.QuizChapterID, chapterID)
	}
	if got := mo.QuizDate.Format("2006-01-02"); got != "2025-01-31" {
		t.Errorf("date = %s, want 2025-01-31", got)
	}
	if mo.QuizDurationMinutes != 30 {
		t.Errorf("duration = %d, want 30", mo.QuizDurationMinutes)
	}
}

func TestCreateQuizToModelDefaultsDate(t *testing.T) {
	req := CreateQuizRequest{DurationMinutes: 10}

	mo, err := req.ToModel(uuid.New())
	if err != nil {
		t.Fatalf("ToModel: %v", err)
	}
	today := time.Now().UTC().Truncate(24 * time.Hour)
	if !mo.QuizDate.Equal(today) {
		t.Errorf("date = %v, want %v", mo.QuizDate, today)
	}
}

func TestCreateQuizToModelBadDate(t *testing.T) {
	req := CreateQuizRequest{Date: strPtr("31/01/2025"), DurationMinutes: 10}
	if _, err := req.ToModel(uuid.New()); err == nil {
		t.Fatal("expected error for dd/mm/yyyy input")
	}
}

func TestUpdateQuizApplyPartial(t *testing.T) {
	mo := m.QuizModel{
		QuizDate:            time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		QuizDurationMinutes: 10,
	}

	req := UpdateQuizRequest{DurationMinutes: intPtr(45)}
	if err := req.Apply(&mo); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	if mo.QuizDurationMinutes != 45 {
		t.Errorf("duration = %d, want 45", mo.QuizDurationMinutes)
	}
	// field lain tidak berubah
	if got := mo.QuizDate.Format("2006-01-02"); got != "2025-01-01" {
		t.Errorf("date = %s, want unchanged 2025-01-01", got)
	}
}
