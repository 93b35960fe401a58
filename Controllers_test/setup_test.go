package Controllers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/lacuchara/reservation-app/config"
	"github.com/lacuchara/reservation-app/database"
	"github.com/lacuchara/reservation-app/router"
	"github.com/lacuchara/reservation-app/session"
	"github.com/lacuchara/reservation-app/utils"
)

// newTestRouter wires the real router against a fresh session manager with
// the built-in catalog.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	utils.InitLogger()

	catalog, err := database.OpenCatalogSource("")
	assert.NoError(t, err)

	manager := session.NewManager(catalog, time.Hour, time.Minute)
	cfg := config.Load()
	return router.SetupRouter(cfg, manager)
}

// testClient keeps the session token across requests, the way a browser
// carries the session cookie.
type testClient struct {
	t      *testing.T
	router *gin.Engine
	token  string
}

func newTestClient(t *testing.T) *testClient {
	return &testClient{t: t, router: newTestRouter(t)}
}

func (tc *testClient) do(method, url string, body interface{}) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		assert.NoError(tc.t, err)
		reader = bytes.NewBuffer(payload)
	}

	req, err := http.NewRequest(method, url, reader)
	assert.NoError(tc.t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if tc.token != "" {
		req.Header.Set("X-Session-Token", tc.token)
	}

	w := httptest.NewRecorder()
	tc.router.ServeHTTP(w, req)

	if token := w.Header().Get("X-Session-Token"); token != "" {
		tc.token = token
	}
	return w
}

func (tc *testClient) doRaw(req *http.Request) *httptest.ResponseRecorder {
	if tc.token != "" {
		req.Header.Set("X-Session-Token", tc.token)
	}
	w := httptest.NewRecorder()
	tc.router.ServeHTTP(w, req)
	if token := w.Header().Get("X-Session-Token"); token != "" {
		tc.token = token
	}
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	assert.NoError(t, err)
	return response
}

func tomorrow() string {
	return time.Now().AddDate(0, 0, 1).Format("2006-01-02")
}
