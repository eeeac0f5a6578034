package productcontroller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
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
	r.GET("/products", GetProducts(db))
	r.GET("/products/:id", GetProductByID(db))
	return r
}

func seedCatalog(t *testing.T, db *gorm.DB) (automation, energy models.ProductCategory) {
	t.Helper()
	automation = models.ProductCategory{NameEn: "Automation", NameAr: "أتمتة", Slug: "automation"}
	db.Create(&automation)
	energy = models.ProductCategory{NameEn: "Energy", NameAr: "طاقة", Slug: "energy"}
	db.Create(&energy)

	db.Create(&models.Product{NameEn: "PLC Panel", NameAr: "لوحة", CategoryID: automation.ID, IsFeatured: true, Order: 2})
	db.Create(&models.Product{NameEn: "HMI Screen", NameAr: "شاشة", CategoryID: automation.ID, IsFeatured: true, Order: 1})
	db.Create(&models.Product{NameEn: "Sensor Kit", NameAr: "حساس", CategoryID: automation.ID, IsFeatured: false})
	db.Create(&models.Product{NameEn: "Solar Inverter", NameAr: "عاكس", CategoryID: energy.ID, IsFeatured: true})
	return automation, energy
}

func TestProductsFilterByCategorySlugAndFeatured(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	seedCatalog(t, db)

	req := httptest.NewRequest(http.MethodGet, "/products?category__slug=automation&is_featured=true", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", w.Code, w.Body.String())
	}

	var products []productResponse
	if err := json.Unmarshal(w.Body.Bytes(), &products); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products got %d", len(products))
	}
	// Default ordering: display order ascending.
	if products[0].NameEn != "HMI Screen" || products[1].NameEn != "PLC Panel" {
		t.Fatalf("unexpected order: %s, %s", products[0].NameEn, products[1].NameEn)
	}
	for _, p := range products {
		if p.CategorySlug != "automation" {
			t.Fatalf("expected category_slug automation got %q", p.CategorySlug)
		}
		if p.CategoryNameEn != "Automation" {
			t.Fatalf("expected flattened category name got %q", p.CategoryNameEn)
		}
	}
}

func TestProductsInvalidFeaturedFlag(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)

	req := httptest.NewRequest(http.MethodGet, "/products?is_featured=banana", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", w.Code)
	}
}

func TestProductDetailFlattensCategory(t *testing.T) {
	db := setupTestDB(t)
	r := setupRouter(db)
	automation, _ := seedCatalog(t, db)

	var product models.Product
	if err := db.Where("name_en = ?", "PLC Panel").First(&product).Error; err != nil {
		t.Fatalf("fetch product: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/products/"+strconv.Itoa(int(product.ID)), nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}

	var got productResponse
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got.Category != automation.ID {
		t.Fatalf("expected category %d got %d", automation.ID, got.Category)
	}
	if got.CategoryNameAr != "أتمتة" {
		t.Fatalf("expected Arabic category name got %q", got.CategoryNameAr)
	}
	if got.Image != nil {
		t.Fatalf("expected null image for product without one, got %q", *got.Image)
	}
}
