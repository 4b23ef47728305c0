package database

import (
	"log"

	attemptModel "quizmaster_backend/internals/features/quizzes/attempt/model"
	chapterModel "quizmaster_backend/internals/features/quizzes/chapter/model"
	questionModel "quizmaster_backend/internals/features/quizzes/question/model"
	quizModel "quizmaster_backend/internals/features/quizzes/quiz/model"
	subjectModel "quizmaster_backend/internals/features/quizzes/subject/model"
	userModel "quizmaster_backend/internals/features/users/user/model"
)

// Migrate menjalankan AutoMigrate untuk semua tabel + FK eksplisit.
// Cascade dilakukan di application-level (satu transaksi), FK di sini hanya
// pengaman referential integrity.
func Migrate() {
	if err := DB.AutoMigrate(
		&userModel.UserModel{},
		&subjectModel.SubjectModel{},
		&chapterModel.ChapterModel{},
		&quizModel.QuizModel{},
		&questionModel.QuestionModel{},
		&attemptModel.QuizAttemptModel{},
		&attemptModel.ScoreModel{},
	); err != nil {
		log.Fatalf("❌ AutoMigrate gagal: %v", err)
	}

	stmts := []string{
		`ALTER TABLE chapters DROP CONSTRAINT IF EXISTS fk_chapters_subject;
		 ALTER TABLE chapters ADD CONSTRAINT fk_chapters_subject
		 FOREIGN KEY (chapter_subject_id) REFERENCES subjects (subject_id)`,
		`ALTER TABLE quizzes DROP CONSTRAINT IF EXISTS fk_quizzes_chapter;
		 ALTER TABLE quizzes ADD CONSTRAINT fk_quizzes_chapter
		 FOREIGN KEY (quiz_chapter_id) REFERENCES chapters (chapter_id)`,
		`ALTER TABLE questions DROP CONSTRAINT IF EXISTS fk_questions_quiz;
		 ALTER TABLE questions ADD CONSTRAINT fk_questions_quiz
		 FOREIGN KEY (question_quiz_id) REFERENCES quizzes (quiz_id)`,
		`ALTER TABLE quiz_attempts DROP CONSTRAINT IF EXISTS fk_quiz_attempts_quiz;
		 ALTER TABLE quiz_attempts ADD CONSTRAINT fk_quiz_attempts_quiz
		 FOREIGN KEY (quiz_attempt_quiz_id) REFERENCES quizzes (quiz_id)`,
		`ALTER TABLE quiz_attempts DROP CONSTRAINT IF EXISTS fk_quiz_attempts_user;
		 ALTER TABLE quiz_attempts ADD CONSTRAINT fk_quiz_attempts_user
		 FOREIGN KEY (quiz_attempt_user_id) REFERENCES users (user_id)`,
		`ALTER TABLE scores DROP CONSTRAINT IF EXISTS fk_scores_attempt;
		 ALTER TABLE scores ADD CONSTRAINT fk_scores_attempt
		 FOREIGN KEY (score_quiz_attempt_id) REFERENCES quiz_attempts (quiz_attempt_id)`,
	}
	for _, s := range stmts {
		if err := DB.Exec(s).Error; err != nil {
			log.Printf("⚠️ DDL constraint: %v", err)
		}
	}

	log.Println("✅ Migrasi schema selesai.")
}
