package controllers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"fleetflow/internal/config"
)

// unreachableDB returns a handle that only attempts its connection at query
// time, so handler input validation can run without a database. A payload
// that passes validation surfaces as a storage failure instead of a 400.
func unreachableDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(
		postgres.Open("host=127.0.0.1 port=1 user=none dbname=none sslmode=disable"),
		&gorm.Config{DisableAutomaticPing: true},
	)
	if err != nil {
		t.Fatalf("opening detached handle: %v", err)
	}
	return db
}

func postExpense(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/api/expenses", CreateExpenseLog)

	req := httptest.NewRequest(http.MethodPost, "/api/expenses", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateExpenseLogAcceptsZeroCost(t *testing.T) {
	config.DB = unreachableDB(t)

	w := postExpense(t, `{"vehicle_id": 1, "cost": 0}`)
	if w.Code == http.StatusBadRequest {
		t.Fatalf("zero cost must pass validation, got 400: %s", w.Body.String())
	}
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected the storage failure status, got %d", w.Code)
	}
}

func TestCreateExpenseLogRejectsNegativeCost(t *testing.T) {
	w := postExpense(t, `{"vehicle_id": 1, "cost": -5}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative cost, got %d", w.Code)
	}
}

func TestCreateExpenseLogRequiresVehicle(t *testing.T) {
	w := postExpense(t, `{"cost": 10}`)
	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for missing vehicle_id, got %d", w.Code)
	}
}
