package routes

// Integration flow test. Butuh PostgreSQL nyata, jadi hanya jalan kalau
// QUIZMASTER_TEST_DB=1 dan env DB_* menunjuk database sekali pakai:
//
//	QUIZMASTER_TEST_DB=1 DB_HOST=localhost DB_PORT=5432 DB_USER=postgres \
//	DB_PASSWORD=postgres DB_NAME=quizmaster_test DB_SSLMODE=disable go test ./...

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"

	"quizmaster_backend/internals/configs"
	database "quizmaster_backend/internals/databases"
	helper "quizmaster_backend/internals/helpers"
)

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	if os.Getenv("QUIZMASTER_TEST_DB") == "" {
		t.Skip("set QUIZMASTER_TEST_DB=1 dan env DB_* untuk menjalankan integration test")
	}

	if configs.JWTSecret == "" {
		configs.JWTSecret = "integration-test-secret"
	}

	if database.DB == nil {
		database.ConnectDB()
		database.TunePool()
		database.Migrate()
		database.EnsureDefaultAdmin()
	}

	app := fiber.New(fiber.Config{
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ErrorHandler: helper.ErrorHandler,
	})
	SetupRoutes(app, database.DB)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path, token string, body any) (int, envelope) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	raw, _ := io.ReadAll(resp.Body)
	_ = json.Unmarshal(raw, &env)
	return resp.StatusCode, env
}

func login(t *testing.T, app *fiber.App, username, password string) string {
	t.Helper()
	code, env := doJSON(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"username": username,
		"password": password,
	})
	if code != http.StatusOK {
		t.Fatalf("login %s: status %d (%s)", username, code, env.Message)
	}
	var out struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(env.Data, &out); err != nil || out.AccessToken == "" {
		t.Fatalf("login %s: token kosong", username)
	}
	return out.AccessToken
}

func TestEndToEndQuizFlow(t *testing.T) {
	app := newTestApp(t)

	suffix := fmt.Sprintf("%d", os.Getpid())
	username := "siswa_" + suffix + "@example.com"

	// register + duplicate
	code, _ := doJSON(t, app, http.MethodPost, "/auth/register", "", fiber.Map{
		"username":  username,
		"full_name": "Siswa Uji",
		"password":  "rahasia123",
	})
	if code != http.StatusCreated {
		t.Fatalf("register: status %d", code)
	}
	code, _ = doJSON(t, app, http.MethodPost, "/auth/register", "", fiber.Map{
		"username":  username,
		"full_name": "Siswa Uji",
		"password":  "rahasia123",
	})
	if code != http.StatusBadRequest {
		t.Fatalf("duplicate register: status %d, want 400", code)
	}

	// salah password
	code, _ = doJSON(t, app, http.MethodPost, "/auth/login", "", fiber.Map{
		"username": username,
		"password": "salah",
	})
	if code != http.StatusUnauthorized {
		t.Fatalf("wrong password: status %d, want 401", code)
	}

	userToken := login(t, app, username, "rahasia123")
	adminToken := login(t, app,
		configs.GetEnv("ADMIN_USERNAME", "admin@example.com"),
		configs.GetEnv("ADMIN_PASSWORD", "admin123"))

	// user biasa tidak boleh masuk /admin
	code, _ = doJSON(t, app, http.MethodGet, "/admin/subjects", userToken, nil)
	if code != http.StatusForbidden {
		t.Fatalf("non-admin on /admin: status %d, want 403", code)
	}
	// tanpa token 401
	code, _ = doJSON(t, app, http.MethodGet, "/user/subjects", "", nil)
	if code != http.StatusUnauthorized {
		t.Fatalf("no token: status %d, want 401", code)
	}

	// admin membangun hierarki subject → chapter → quiz → question
	var subject struct {
		ID string `json:"id"`
	}
	code, env := doJSON(t, app, http.MethodPost, "/admin/subjects", adminToken, fiber.Map{
		"name": "Matematika " + suffix,
	})
	if code != http.StatusCreated {
		t.Fatalf("create subject: status %d (%s)", code, env.Message)
	}
	if err := json.Unmarshal(env.Data, &subject); err != nil {
		t.Fatalf("subject payload: %v", err)
	}

	var chapter struct {
		ID string `json:"id"`
	}
	code, env = doJSON(t, app, http.MethodPost, "/admin/subjects/"+subject.ID+"/chapters", adminToken, fiber.Map{
		"name": "Aljabar",
	})
	if code != http.StatusCreated {
		t.Fatalf("create chapter: status %d (%s)", code, env.Message)
	}
	if err := json.Unmarshal(env.Data, &chapter); err != nil {
		t.Fatalf("chapter payload: %v", err)
	}

	var quiz struct {
		ID string `json:"id"`
	}
	code, env = doJSON(t, app, http.MethodPost, "/admin/chapters/"+chapter.ID+"/quizzes", adminToken, fiber.Map{
		"duration_minutes": 15,
	})
	if code != http.StatusCreated {
		t.Fatalf("create quiz: status %d (%s)", code, env.Message)
	}
	if err := json.Unmarshal(env.Data, &quiz); err != nil {
		t.Fatalf("quiz payload: %v", err)
	}

	var question struct {
		ID string `json:"id"`
	}
	code, env = doJSON(t, app, http.MethodPost, "/admin/quizzes/"+quiz.ID+"/questions", adminToken, fiber.Map{
		"question_text":  "2 + 2 = ?",
		"option1":        "3",
		"option2":        "4",
		"correct_option": 2,
	})
	if code != http.StatusCreated {
		t.Fatalf("create question: status %d (%s)", code, env.Message)
	}
	if err := json.Unmarshal(env.Data, &question); err != nil {
		t.Fatalf("question payload: %v", err)
	}

	// sisi user: soal tanpa kunci jawaban
	code, env = doJSON(t, app, http.MethodGet, "/user/quiz/"+quiz.ID, userToken, nil)
	if code != http.StatusOK {
		t.Fatalf("list questions: status %d (%s)", code, env.Message)
	}
	if bytes.Contains(env.Data, []byte("correct_option")) {
		t.Fatal("answer key leaked to user endpoint")
	}

	// jawaban kosong ditolak
	code, _ = doJSON(t, app, http.MethodPost, "/user/quiz/attempt", userToken, fiber.Map{
		"quiz_id": quiz.ID,
		"answers": map[string]int{},
	})
	if code != http.StatusBadRequest {
		t.Fatalf("empty answers: status %d, want 400", code)
	}

	// submit jawaban benar → skor 100
	var result struct {
		Score float64 `json:"score"`
	}
	code, env = doJSON(t, app, http.MethodPost, "/user/quiz/attempt", userToken, fiber.Map{
		"quiz_id": quiz.ID,
		"answers": map[string]int{question.ID: 2},
	})
	if code != http.StatusCreated {
		t.Fatalf("submit attempt: status %d (%s)", code, env.Message)
	}
	if err := json.Unmarshal(env.Data, &result); err != nil {
		t.Fatalf("attempt payload: %v", err)
	}
	if result.Score != 100 {
		t.Fatalf("score = %v, want 100", result.Score)
	}

	// history memuat attempt barusan
	code, env = doJSON(t, app, http.MethodGet, "/user/history", userToken, nil)
	if code != http.StatusOK {
		t.Fatalf("history: status %d (%s)", code, env.Message)
	}
	if !bytes.Contains(env.Data, []byte(quiz.ID)) {
		t.Fatal("history missing new attempt")
	}

	// cascade delete subject menghapus seluruh turunan
	code, _ = doJSON(t, app, http.MethodDelete, "/admin/subjects/"+subject.ID, adminToken, nil)
	if code != http.StatusOK {
		t.Fatalf("delete subject: status %d", code)
	}
	code, _ = doJSON(t, app, http.MethodGet, "/user/quiz/"+quiz.ID, userToken, nil)
	if code != http.StatusNotFound {
		t.Fatalf("quiz after cascade: status %d, want 404", code)
	}
}
