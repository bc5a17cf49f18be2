package handler

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/aquaflow/hydration-engine/internal/domain"
	"github.com/aquaflow/hydration-engine/internal/service/interval"
	"github.com/aquaflow/hydration-engine/internal/service/schedule"
	"github.com/aquaflow/hydration-engine/internal/service/target"
	"github.com/aquaflow/hydration-engine/internal/service/window"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func newTestGenerator() *schedule.Generator {
	return schedule.NewGenerator(
		target.NewCalculator(),
		window.NewCalculator(),
		interval.NewCalculator(),
	)
}

func newTestProfile(t *testing.T) *domain.Profile {
	t.Helper()

	profile, err := domain.NewProfile(70, "07:00", "23:00", domain.ActivitySedentary, domain.ClimateTemperate)
	if err != nil {
		t.Fatalf("NewProfile() error = %v", err)
	}
	return profile
}

func performJSON(router *gin.Engine, method, path string, body []byte) *httptest.ResponseRecorder {
	var req *http.Request
	if body != nil {
		req = httptest.NewRequest(method, path, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}
