package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/qin-coder/ecommerce-multivendor/auth"
	"github.com/qin-coder/ecommerce-multivendor/models"
)

func newProtectedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/me", ValidateToken, func(c *gin.Context) {
		userID, _ := c.Get("user_id")
		email, _ := c.Get("email")
		role, _ := c.Get("role")
		c.JSON(http.StatusOK, gin.H{"user_id": userID, "email": email, "role": role})
	})
	return r
}

func TestValidateTokenRoundtrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := auth.IssueJWT(42, "jo@example.com", "ROLE_CUSTOMER")
	if err != nil {
		t.Fatalf("IssueJWT: %v", err)
	}

	r := newProtectedRouter()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", w.Code, http.StatusOK, w.Body.String())
	}
	body := w.Body.String()
	for _, want := range []string{`"user_id":42`, `"email":"jo@example.com"`, `"role":"ROLE_CUSTOMER"`} {
		if !strings.Contains(body, want) {
			t.Errorf("response %s missing %s", body, want)
		}
	}
}

func TestValidateTokenMissingHeader(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	r := newProtectedRouter()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

// Seller ids and user ids come from independent sequences; a seller token
// reaching a /user handler would read seller #N's id as user #N. The role gate
// has to stop it before any handler runs.
func TestRequireRoleRejectsSellerTokenOnUserSurface(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	gin.SetMode(gin.TestMode)
	r := gin.New()
	group := r.Group("/user")
	group.Use(ValidateToken, RequireRole(models.RoleCustomer, models.RoleAdmin))
	group.GET("/cart", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	sellerToken, err := auth.IssueJWT(5, "shop@example.com", string(models.RoleSeller))
	if err != nil {
		t.Fatalf("IssueJWT: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/user/cart", nil)
	req.Header.Set("Authorization", "Bearer "+sellerToken)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("seller token on /user: status = %d, want %d", w.Code, http.StatusForbidden)
	}

	customerToken, err := auth.IssueJWT(5, "jo@example.com", string(models.RoleCustomer))
	if err != nil {
		t.Fatalf("IssueJWT: %v", err)
	}
	req = httptest.NewRequest(http.MethodGet, "/user/cart", nil)
	req.Header.Set("Authorization", "Bearer "+customerToken)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("customer token on /user: status = %d, want %d", w.Code, http.StatusOK)
	}
}

func TestValidateTokenWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "signing-secret")
	token, err := auth.IssueJWT(42, "jo@example.com", "ROLE_CUSTOMER")
	if err != nil {
		t.Fatalf("IssueJWT: %v", err)
	}

	t.Setenv("JWT_SECRET", "different-secret")
	r := newProtectedRouter()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}
