package contactcontroller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fouad201/hydra-tech/mailer"
	"github.com/fouad201/hydra-tech/models"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// brokenMailer fails every send, like an unreachable SMTP host.
type brokenMailer struct{}

func (brokenMailer) Send(to, subject, body string) error {
	return errors.New("smtp unreachable")
}

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.ContactMessage{}, &models.SiteSettings{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func setupRouter(db *gorm.DB, m mailer.Mailer) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/contact", SubmitContact(db, m))
	return r
}

func postJSON(r *gin.Engine, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestSubmitContact(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db, mailer.LogMailer{})

	body := `{
		"name": "Alice",
		"email": "alice@example.com",
		"phone": "+20 100 123 4567",
		"subject": "Quotation",
		"message": "Please send a quote for a control panel."
	}`
	w := postJSON(r, "/contact", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", w.Code, w.Body.String())
	}

	var envelope struct {
		Success bool                   `json:"success"`
		Message string                 `json:"message"`
		Data    map[string]interface{} `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !envelope.Success {
		t.Fatalf("expected success true")
	}
	if envelope.Data["name"] != "Alice" {
		t.Fatalf("expected echoed name got %v", envelope.Data["name"])
	}
	if _, ok := envelope.Data["status"]; ok {
		t.Fatalf("status must not leak into the public response")
	}

	var msg models.ContactMessage
	if err := db.First(&msg).Error; err != nil {
		t.Fatalf("fetch message: %v", err)
	}
	if msg.Status != models.ContactStatusNew {
		t.Fatalf("expected status new got %q", msg.Status)
	}
}

func TestSubmitContactInvalidEmail(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db, mailer.LogMailer{})

	body := `{"name": "Bob", "email": "not-an-email", "subject": "Hi", "message": "Hello"}`
	w := postJSON(r, "/contact", body)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if resp.Errors["email"] == "" {
		t.Fatalf("expected an email error, got %v", resp.Errors)
	}

	var count int64
	db.Model(&models.ContactMessage{}).Count(&count)
	if count != 0 {
		t.Fatalf("rejected submission must not be stored, found %d rows", count)
	}
}

func TestSubmitContactMissingFields(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db, mailer.LogMailer{})

	w := postJSON(r, "/contact", `{"email": "carol@example.com"}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}

	var resp struct {
		Errors map[string]string `json:"errors"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode: %v", err)
	}
	for _, field := range []string{"name", "subject", "message"} {
		if resp.Errors[field] == "" {
			t.Fatalf("expected error for %s, got %v", field, resp.Errors)
		}
	}
}

func TestSubmitContactSurvivesMailFailure(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db, brokenMailer{})

	body := `{"name": "Dina", "email": "dina@example.com", "subject": "Support", "message": "My pump stopped."}`
	w := postJSON(r, "/contact", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("mail failure must not fail the request, got %d: %s", w.Code, w.Body.String())
	}

	var count int64
	db.Model(&models.ContactMessage{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected message persisted, found %d rows", count)
	}
}
