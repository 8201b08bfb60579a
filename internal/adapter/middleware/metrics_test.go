package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
)

type observation struct {
	method, route string
	code          int
}

type recordingObserver struct{ seen []observation }

func (r *recordingObserver) ObserveHTTP(method, route string, code int, _ time.Duration) {
	r.seen = append(r.seen, observation{method, route, code})
}

func TestMetrics_UsesRoutePattern(t *testing.T) {
	obs := &recordingObserver{}
	e := echo.New()
	e.Use(Metrics(obs))
	e.GET("/applications/:id", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })
	e.GET("/boom", func(c echo.Context) error { return echo.NewHTTPError(http.StatusTeapot, "nope") })

	for _, path := range []string{"/applications/1", "/applications/2", "/boom"} {
		e.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	if len(obs.seen) != 3 {
		t.Fatalf("want 3 observations, got %d", len(obs.seen))
	}
	if obs.seen[0] != (observation{"GET", "/applications/:id", 204}) || obs.seen[1].route != "/applications/:id" {
		t.Fatalf("unexpected observations: %+v", obs.seen)
	}
	if obs.seen[2].code != http.StatusTeapot {
		t.Fatalf("error status not observed: %+v", obs.seen[2])
	}
}
