package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func bindJSON(t *testing.T, body string, out any) error {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c.ShouldBindJSON(out)
}

func TestCreateDomicileRequestAllowsZeroPrice(t *testing.T) {
	body := `{"time":"2026-03-10T14:00:00Z","car_type":"SUV","car_name":"Duster",` +
		`"wash_type":"full","place":"Hydra","price":0}`

	var req CreateDomicileRequest
	if err := bindJSON(t, body, &req); err != nil {
		t.Fatalf("zero price failed binding: %v", err)
	}
	if req.Price != 0 {
		t.Errorf("price = %v, want 0", req.Price)
	}
}

func TestCreateLocationRequestAllowsZeroPrice(t *testing.T) {
	body := `{"date":"2026-03-10","time":"10:00","car_type":"sedan","car_name":"Clio",` +
		`"wash_type":"exterior","price":0}`

	var req CreateLocationRequest
	if err := bindJSON(t, body, &req); err != nil {
		t.Fatalf("zero price failed binding: %v", err)
	}
	if req.Price != 0 {
		t.Errorf("price = %v, want 0", req.Price)
	}
}

func TestCreateDomicileRequestStillRequiresFields(t *testing.T) {
	var req CreateDomicileRequest
	if err := bindJSON(t, `{"price":10}`, &req); err == nil {
		t.Fatal("binding accepted a request missing every required field")
	}
}
