package alert

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowbane/phoenix-aid/pkg/application"
	"github.com/shadowbane/phoenix-aid/pkg/registry"
)

func newTestApp(t *testing.T, contents string) (*application.Application, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "AlertData.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return &application.Application{Registry: registry.New(path)}, path
}

func TestAlertIndex(t *testing.T) {
	t.Run("returns matching alerts", func(t *testing.T) {
		app, _ := newTestApp(t, "Date,Location,Radius (km),Message\n2026-08-20 09:00:00,Fort McMurray,25,Evacuate now\n")

		req := httptest.NewRequest(http.MethodGet, "/api/v1/alerts?location=mcmur", nil)
		rr := httptest.NewRecorder()
		Index(app)(rr, req, nil)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Fort McMurray")
	})

	t.Run("missing file degrades to an empty set", func(t *testing.T) {
		app := &application.Application{Registry: registry.New(filepath.Join(t.TempDir(), "nope.csv"))}

		req := httptest.NewRequest(http.MethodGet, "/api/v1/alerts", nil)
		rr := httptest.NewRecorder()
		Index(app)(rr, req, nil)

		assert.Equal(t, http.StatusOK, rr.Code)
	})
}

func TestAlertBroadcast(t *testing.T) {
	post := func(app *application.Application, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/alerts", strings.NewReader(body))
		rr := httptest.NewRecorder()
		Broadcast(app)(rr, req, nil)
		return rr
	}

	t.Run("records a new alert", func(t *testing.T) {
		app, path := newTestApp(t, "")

		rr := post(app, `{"location":"Fort McMurray","radius":"25","message":"Evacuate now"}`)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Alert recorded for Fort McMurray (25 km).")

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "Fort McMurray")
	})

	t.Run("empty location", func(t *testing.T) {
		app, _ := newTestApp(t, "")

		rr := post(app, `{"location":"  ","radius":"25","message":"Evacuate"}`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("identical duplicate", func(t *testing.T) {
		app, _ := newTestApp(t, "")

		require.Equal(t, http.StatusOK, post(app, `{"location":"Kelowna","radius":"10","message":"Smoke advisory"}`).Code)
		rr := post(app, `{"location":"kelowna","radius":"10","message":"Smoke   advisory"}`)
		assert.Equal(t, http.StatusConflict, rr.Code)
	})

	t.Run("missing data file", func(t *testing.T) {
		app := &application.Application{Registry: registry.New(filepath.Join(t.TempDir(), "nope.csv"))}

		rr := post(app, `{"location":"Kelowna","radius":"10","message":"Smoke advisory"}`)
		assert.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("invalid json", func(t *testing.T) {
		app, _ := newTestApp(t, "")

		rr := post(app, `{broken`)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}
