package servicecontroller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/fouad201/hydra-tech/models"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// Use a unique in-memory database per test to avoid cross-test collisions.
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.Service{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func setupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/services", GetServices(db))
	r.GET("/services/:id", GetServiceByID(db))
	return r
}

func TestServicesDefaultOrdering(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	db.Create(&models.Service{TitleEn: "Zulu", TitleAr: "z", Order: 2})
	db.Create(&models.Service{TitleEn: "Alpha", TitleAr: "a", Order: 2})
	db.Create(&models.Service{TitleEn: "Mike", TitleAr: "m", Order: 1})

	req := httptest.NewRequest(http.MethodGet, "/services", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}

	var services []models.Service
	if err := json.Unmarshal(w.Body.Bytes(), &services); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(services) != 3 {
		t.Fatalf("expected 3 services got %d", len(services))
	}
	// Display order first, then English title as the tie-break.
	if services[0].TitleEn != "Mike" || services[1].TitleEn != "Alpha" || services[2].TitleEn != "Zulu" {
		t.Fatalf("unexpected order: %s, %s, %s", services[0].TitleEn, services[1].TitleEn, services[2].TitleEn)
	}
}

func TestServicesOrderingParam(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	db.Create(&models.Service{TitleEn: "A", TitleAr: "a", Order: 1})
	db.Create(&models.Service{TitleEn: "B", TitleAr: "b", Order: 3})

	req := httptest.NewRequest(http.MethodGet, "/services?ordering=-order", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}

	var services []models.Service
	if err := json.Unmarshal(w.Body.Bytes(), &services); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if services[0].Order != 3 {
		t.Fatalf("expected descending order, first item has order %d", services[0].Order)
	}
}

func TestServicesUnknownOrderingIgnored(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	db.Create(&models.Service{TitleEn: "B", TitleAr: "b", Order: 2})
	db.Create(&models.Service{TitleEn: "A", TitleAr: "a", Order: 1})

	req := httptest.NewRequest(http.MethodGet, "/services?ordering=icon", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}

	var services []models.Service
	if err := json.Unmarshal(w.Body.Bytes(), &services); err != nil {
		t.Fatalf("decode: %v", err)
	}
	// Non-whitelisted ordering falls back to the default.
	if services[0].TitleEn != "A" {
		t.Fatalf("expected default ordering, got %s first", services[0].TitleEn)
	}
}

func TestServiceDetailNotFound(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	req := httptest.NewRequest(http.MethodGet, "/services/999", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", w.Code)
	}
}
