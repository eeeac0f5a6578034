package contactcontroller

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"github.com/fouad201/hydra-tech/models"
	"github.com/gin-gonic/gin"
)

func TestUpdateContactMessageStatus(t *testing.T) {
	db := setupTestDB(t)
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.PATCH("/contact-messages/:id/status", UpdateContactMessageStatus(db))

	msg := models.ContactMessage{Name: "Eve", Email: "eve@example.com", Subject: "Hi", Message: "Hello"}
	db.Create(&msg)

	path := "/contact-messages/" + strconv.Itoa(int(msg.ID)) + "/status"
	req := httptest.NewRequest(http.MethodPatch, path, strings.NewReader(`{"status": "read"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}

	var updated models.ContactMessage
	if err := db.First(&updated, msg.ID).Error; err != nil {
		t.Fatalf("fetch message: %v", err)
	}
	if updated.Status != models.ContactStatusRead {
		t.Fatalf("expected status read got %q", updated.Status)
	}
	if updated.Message != "Hello" {
		t.Fatalf("body must stay as submitted, got %q", updated.Message)
	}

	// Statuses outside the workflow are rejected.
	req = httptest.NewRequest(http.MethodPatch, path, strings.NewReader(`{"status": "spam"}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown status got %d", w.Code)
	}
}
