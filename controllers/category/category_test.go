package categorycontroller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	"github.com/fouad201/hydra-tech/models"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + t.Name() + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(&models.ProductCategory{}, &models.Product{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func setupRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/product-categories/:slug", GetCategoryBySlug(db))
	r.POST("/categories", CreateCategory(db))
	r.DELETE("/categories/:id", DeleteCategory(db))
	return r
}

func postForm(r *gin.Engine, path string, form url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateCategoryGeneratesSlug(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	form := url.Values{"name_en": {"Control Panels"}, "name_ar": {"لوحات التحكم"}}
	w := postForm(r, "/categories", form)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", w.Code, w.Body.String())
	}

	var category models.ProductCategory
	if err := db.First(&category).Error; err != nil {
		t.Fatalf("fetch category: %v", err)
	}
	if category.Slug != "control-panels" {
		t.Fatalf("expected slug control-panels got %q", category.Slug)
	}
}

func TestCreateCategoryDuplicateSlug(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	db.Create(&models.ProductCategory{NameEn: "Automation", NameAr: "أتمتة", Slug: "automation"})

	form := url.Values{"name_en": {"Automation"}, "name_ar": {"أتمتة"}}
	w := postForm(r, "/categories", form)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 got %d: %s", w.Code, w.Body.String())
	}

	var count int64
	db.Model(&models.ProductCategory{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 category got %d", count)
	}
}

func TestCategoryLookupBySlug(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	db.Create(&models.ProductCategory{NameEn: "Automation", NameAr: "أتمتة", Slug: "automation"})

	req := httptest.NewRequest(http.MethodGet, "/product-categories/automation", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}

	var category models.ProductCategory
	if err := json.Unmarshal(w.Body.Bytes(), &category); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if category.NameEn != "Automation" {
		t.Fatalf("expected Automation got %q", category.NameEn)
	}

	req = httptest.NewRequest(http.MethodGet, "/product-categories/missing", nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown slug got %d", w.Code)
	}
}

func TestDeleteCategoryCascadesProducts(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	doomed := models.ProductCategory{NameEn: "Pumps", NameAr: "مضخات", Slug: "pumps"}
	db.Create(&doomed)
	kept := models.ProductCategory{NameEn: "Valves", NameAr: "صمامات", Slug: "valves"}
	db.Create(&kept)

	db.Create(&models.Product{NameEn: "Pump A", NameAr: "أ", CategoryID: doomed.ID})
	db.Create(&models.Product{NameEn: "Pump B", NameAr: "ب", CategoryID: doomed.ID})
	db.Create(&models.Product{NameEn: "Valve A", NameAr: "أ", CategoryID: kept.ID})

	req := httptest.NewRequest(http.MethodDelete, "/categories/"+strconv.Itoa(int(doomed.ID)), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}

	var orphaned int64
	db.Model(&models.Product{}).Where("category_id = ?", doomed.ID).Count(&orphaned)
	if orphaned != 0 {
		t.Fatalf("expected cascade delete, %d products left", orphaned)
	}

	var remaining int64
	db.Model(&models.Product{}).Count(&remaining)
	if remaining != 1 {
		t.Fatalf("expected 1 product in other category got %d", remaining)
	}
}
