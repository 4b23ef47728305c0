// internals/features/quizzes/attempt/service/grading_service.go
package service

import (
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	attemptModel "quizmaster_backend/internals/features/quizzes/attempt/model"
	questionModel "quizmaster_backend/internals/features/quizzes/question/model"
	quizModel "quizmaster_backend/internals/features/quizzes/quiz/model"
)

type GradeResult struct {
	AttemptID      uuid.UUID
	QuizID         uuid.UUID
	Score          float64
	CorrectCount   int
	TotalSubmitted int
}

type GradingService struct {
	DB *gorm.DB
}

func NewGradingService(db *gorm.DB) *GradingService {
	return &GradingService{DB: db}
}

// CountCorrect membandingkan jawaban dengan kunci secara numerik.
// question_id yang tidak dikenal dilewati tanpa error, tapi tetap
// dihitung sebagai jawaban yang disubmit.
func CountCorrect(questions []questionModel.QuestionModel, answers map[string]int) int {
	keyByID := make(map[uuid.UUID]int, len(questions))
	for i := range questions {
		keyByID[questions[i].QuestionID] = questions[i].QuestionCorrectOption
	}

	correct := 0
	for rawID, selected := range answers {
		qid, err := uuid.Parse(rawID)
		if err != nil {
			continue
		}
		key, ok := keyByID[qid]
		if !ok {
			continue
		}
		if key == selected {
			correct++
		}
	}
	return correct
}

// Percentage menghitung skor 0..100 dari jumlah benar dan jumlah submit.
func Percentage(correct, totalSubmitted int) float64 {
	if totalSubmitted == 0 {
		return 0
	}
	return float64(correct) / float64(totalSubmitted) * 100
}

// SubmitAttempt menilai satu submission dan menyimpan attempt + score
// dalam satu transaksi.
func (s *GradingService) SubmitAttempt(userID, quizID uuid.UUID, answers map[string]int) (*GradeResult, error) {
	// jawaban kosong ditolak di depan, jangan sampai bagi nol
	if len(answers) == 0 {
		return nil, fiber.NewError(fiber.StatusBadRequest, "Answers tidak boleh kosong")
	}

	var result GradeResult
	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		var cnt int64
		if err := tx.Model(&quizModel.QuizModel{}).
			Where("quiz_id = ?", quizID).
			Count(&cnt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal cek quiz")
		}
		if cnt == 0 {
			return fiber.NewError(fiber.StatusNotFound, "Quiz tidak ditemukan")
		}

		submittedIDs := make([]uuid.UUID, 0, len(answers))
		for rawID := range answers {
			if qid, err := uuid.Parse(rawID); err == nil {
				submittedIDs = append(submittedIDs, qid)
			}
		}

		var questions []questionModel.QuestionModel
		if len(submittedIDs) > 0 {
			if err := tx.
				Where("question_id IN ?", submittedIDs).
				Find(&questions).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil soal")
			}
		}

		correct := CountCorrect(questions, answers)
		score := Percentage(correct, len(answers))

		rawAnswers, err := sonic.Marshal(answers)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Answers tidak valid")
		}

		// start = end = waktu submit
		now := time.Now().UTC()
		attempt := attemptModel.QuizAttemptModel{
			QuizAttemptQuizID:    quizID,
			QuizAttemptUserID:    userID,
			QuizAttemptStartTime: now,
			QuizAttemptEndTime:   now,
			QuizAttemptAnswers:   rawAnswers,
		}
		if err := tx.Create(&attempt).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan attempt")
		}

		scoreRow := attemptModel.ScoreModel{
			ScoreQuizAttemptID: attempt.QuizAttemptID,
			ScoreTotalScore:    score,
		}
		if err := tx.Create(&scoreRow).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan score")
		}

		result = GradeResult{
			AttemptID:      attempt.QuizAttemptID,
			QuizID:         quizID,
			Score:          score,
			CorrectCount:   correct,
			TotalSubmitted: len(answers),
		}
		return nil
	}); err != nil {
		return nil, err
	}

	return &result, nil
}
