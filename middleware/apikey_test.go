package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestValidateAPIKey(t *testing.T) {
	t.Setenv("ADMIN_API_KEY", "secret-key")

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin/ping", ValidateAPIKey, func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	cases := []struct {
		name string
		key  string
		want int
	}{
		{"missing key", "", http.StatusUnauthorized},
		{"wrong key", "nope", http.StatusUnauthorized},
		{"valid key", "secret-key", http.StatusOK},
	}
	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/admin/ping", nil)
		if tc.key != "" {
			req.Header.Set("X-API-KEY", tc.key)
		}
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		if w.Code != tc.want {
			t.Fatalf("%s: expected %d got %d", tc.name, tc.want, w.Code)
		}
	}
}
