package relief

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shadowbane/phoenix-aid/pkg/application"
	"github.com/shadowbane/phoenix-aid/pkg/locator"
)

const reliefFixture = `Province,Province_Full,City,Name,Type,Distance (km),Contact
BC,BRITISH COLUMBIA,KELOWNA,Center C,Food Bank,12.5,555-0103
BC,BRITISH COLUMBIA,VICTORIA,Shelter D,Shelter,3.1,555-0104
ON,ONTARIO,TORONTO,Shelter A,Shelter,5.0,555-0101
`

func newTestApp(t *testing.T) *application.Application {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ReliefCenters.csv")
	require.NoError(t, os.WriteFile(path, []byte(reliefFixture), 0o644))
	return &application.Application{Locator: locator.New(path)}
}

func getRelief(t *testing.T, app *application.Application, query string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/relief-centers?q="+query, nil)
	rr := httptest.NewRecorder()
	Index(app)(rr, req, nil)
	return rr
}

func TestReliefIndex(t *testing.T) {
	t.Run("province match", func(t *testing.T) {
		rr := getRelief(t, newTestApp(t), "bc")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "Shelter D")
		assert.Contains(t, rr.Body.String(), "province_exact")
	})

	t.Run("fallback carries a notice", func(t *testing.T) {
		rr := getRelief(t, newTestApp(t), "british")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "No centers found in 'British'. Showing centers in British Columbia instead.")
	})

	t.Run("missing query parameter", func(t *testing.T) {
		rr := getRelief(t, newTestApp(t), "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("missing file degrades with a warning", func(t *testing.T) {
		app := &application.Application{Locator: locator.New(filepath.Join(t.TempDir(), "nope.csv"))}
		rr := getRelief(t, app, "bc")
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Contains(t, rr.Body.String(), "warning")
	})
}
