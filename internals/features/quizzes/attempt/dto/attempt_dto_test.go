package dto

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestToHistoryItemsScoreMarker(t *testing.T) {
	graded := 75.0
	start := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)

	rows := []HistoryRow{
		{
			QuizAttemptID:        uuid.New(),
			QuizAttemptQuizID:    uuid.New(),
			QuizAttemptStartTime: start,
			ScoreTotalScore:      &graded,
		},
		{
			QuizAttemptID:        uuid.New(),
			QuizAttemptQuizID:    uuid.New(),
			QuizAttemptStartTime: start,
			ScoreTotalScore:      nil, // belum dinilai
		},
	}

	items := ToHistoryItems(rows)
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}

	if got, ok := items[0].Score.(float64); !ok || got != 75.0 {
		t.Errorf("score[0] = %v, want 75", items[0].Score)
	}
	if got, ok := items[1].Score.(string); !ok || got != "N/A" {
		t.Errorf("score[1] = %v, want \"N/A\"", items[1].Score)
	}
	if items[0].StartTime != "2025-06-01T10:00:00Z" {
		t.Errorf("start_time = %q", items[0].StartTime)
	}
}
