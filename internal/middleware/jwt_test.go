package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"fleetflow/internal/auth"
)

func TestGenerateAndValidateToken(t *testing.T) {
	tokenStr, err := GenerateToken(42, auth.RoleDispatcher)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	token, err := ValidateToken(tokenStr)
	if err != nil || !token.Valid {
		t.Fatalf("ValidateToken: %v", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		t.Fatalf("expected map claims, got %T", token.Claims)
	}
	if got := claims["user_id"].(float64); got != 42 {
		t.Fatalf("expected user_id 42, got %v", got)
	}
	if got := claims["role"]; got != string(auth.RoleDispatcher) {
		t.Fatalf("expected role %q, got %v", auth.RoleDispatcher, got)
	}
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	if _, err := ValidateToken("not.a.token"); err == nil {
		t.Fatalf("expected an error for a malformed token")
	}
}

// requestWithToken runs one guarded request and reports whether the
// protected handler behind the guard actually executed.
func requestWithToken(t *testing.T, guard gin.HandlerFunc, token string) (*httptest.ResponseRecorder, bool) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	handlerRan := false
	r.GET("/guarded", guard, func(c *gin.Context) {
		handlerRan = true
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/guarded", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w, handlerRan
}

func TestRequireAuth(t *testing.T) {
	tokenStr, err := GenerateToken(1, auth.RoleManager)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	if w, ran := requestWithToken(t, RequireAuth(), tokenStr); w.Code != http.StatusOK || !ran {
		t.Fatalf("valid token: expected 200 and handler run, got %d ran=%v", w.Code, ran)
	}
	if w, ran := requestWithToken(t, RequireAuth(), ""); w.Code != http.StatusUnauthorized || ran {
		t.Fatalf("missing header: expected 401 without handler run, got %d ran=%v", w.Code, ran)
	}
	if w, ran := requestWithToken(t, RequireAuth(), "bogus"); w.Code != http.StatusUnauthorized || ran {
		t.Fatalf("bad token: expected 401 without handler run, got %d ran=%v", w.Code, ran)
	}
}

func TestRequireCapability(t *testing.T) {
	dispatcher, err := GenerateToken(2, auth.RoleDispatcher)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	// Dispatchers may dispatch trips but not view financials.
	if w, ran := requestWithToken(t, RequireCapability(auth.OpDispatchTrip), dispatcher); w.Code != http.StatusOK || !ran {
		t.Fatalf("granted capability: expected 200 and handler run, got %d ran=%v", w.Code, ran)
	}
	if w, ran := requestWithToken(t, RequireCapability(auth.OpViewFinancials), dispatcher); w.Code != http.StatusForbidden || ran {
		t.Fatalf("denied capability: expected 403 without handler run, got %d ran=%v", w.Code, ran)
	}
	if w, ran := requestWithToken(t, RequireCapability(auth.OpDispatchTrip), ""); w.Code != http.StatusUnauthorized || ran {
		t.Fatalf("unauthenticated: expected 401 without handler run, got %d ran=%v", w.Code, ran)
	}
}

// A denied role must never reach the handler, even for roles that hold
// other capabilities on the same resource.
func TestRequireCapabilityDenialStopsChain(t *testing.T) {
	analyst, err := GenerateToken(3, auth.RoleFinancialAnalyst)
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	w, ran := requestWithToken(t, RequireCapability(auth.OpDispatchTrip), analyst)
	if ran {
		t.Fatalf("protected handler ran for a role without the capability")
	}
	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}
