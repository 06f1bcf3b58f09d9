package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"inmate-management-backend/internal/config"
	"inmate-management-backend/internal/repository"
	"inmate-management-backend/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func newTestEngine(t *testing.T) *gin.Engine {
	t.Helper()
	cfg := &config.Config{
		CORS: config.CORSConfig{AllowedOrigins: []string{"http://localhost:5173"}},
	}
	return New(Deps{
		Config: cfg,
		Store:  repository.NewStore(testutil.NewDB(t)),
	})
}

func do(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v), w.Body.String())
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body map[string]string
	decode(t, w, &body)
	return body["error"]
}

const inmateBody = `{
	"inmateId": "INM-2025-001",
	"firstName": "Chinedu",
	"lastName": "Okafor",
	"dateOfBirth": "1988-02-14",
	"age": 37,
	"gender": "Male",
	"offense": "Armed robbery",
	"admissionDate": "2025-01-18",
	"sentenceLength": "8 years",
	"status": "Active"
}`

func TestHealth(t *testing.T) {
	r := newTestEngine(t)
	w := do(t, r, http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"healthy","service":"inmate-management-backend"}`, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestListEndpointsReturnEmptyArrays(t *testing.T) {
	r := newTestEngine(t)
	for _, path := range []string{
		"/api/cells",
		"/api/inmates",
		"/api/visitors",
		"/api/dashboard/activity",
		"/api/dashboard/releases",
	} {
		t.Run(path, func(t *testing.T) {
			w := do(t, r, http.MethodGet, path, "")
			assert.Equal(t, http.StatusOK, w.Code)
			assert.JSONEq(t, `[]`, w.Body.String())
		})
	}
}

func TestCreateCell(t *testing.T) {
	r := newTestEngine(t)

	w := do(t, r, http.MethodPost, "/api/cells", `{"cellNumber":"A-101","block":"A","capacity":2,"type":"Standard"}`)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var cell map[string]interface{}
	decode(t, w, &cell)
	assert.NotEmpty(t, cell["id"])
	assert.Equal(t, "A-101", cell["cellNumber"])
	assert.Equal(t, "Empty", cell["status"])
	assert.EqualValues(t, 0, cell["currentOccupancy"])

	w = do(t, r, http.MethodPost, "/api/cells", `{"cellNumber":"A-101","block":"B","capacity":1,"type":"Solitary"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Cell number already exists", errorMessage(t, w))

	w = do(t, r, http.MethodPost, "/api/cells", `{"cellNumber":"A-102","block":"D","capacity":1,"type":"Standard"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, `"block" must be one of [A, B, C]`, errorMessage(t, w))

	w = do(t, r, http.MethodPost, "/api/cells", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, `"cellNumber" is required`, errorMessage(t, w))

	w = do(t, r, http.MethodPost, "/api/cells", `{"capacity":"two"`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid request body", errorMessage(t, w))
}

func TestAssignFlow(t *testing.T) {
	r := newTestEngine(t)

	w := do(t, r, http.MethodPost, "/api/cells", `{"cellNumber":"S-1","block":"C","capacity":1,"type":"Solitary"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var cell struct {
		ID string `json:"id"`
	}
	decode(t, w, &cell)

	w = do(t, r, http.MethodPost, "/api/inmates", inmateBody)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	second := strings.Replace(inmateBody, "INM-2025-001", "INM-2025-002", 1)
	w = do(t, r, http.MethodPost, "/api/inmates", second)
	require.Equal(t, http.StatusCreated, w.Code)

	assign := "/api/cells/" + cell.ID + "/assign"

	w = do(t, r, http.MethodPost, assign, `{"inmateId":"INM-2025-001"}`)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"message":"Inmate assigned successfully"}`, w.Body.String())

	w = do(t, r, http.MethodPost, assign, `{"inmateId":"INM-2025-002"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Cell is full", errorMessage(t, w))

	w = do(t, r, http.MethodPost, assign, `{"inmateId":"INM-404"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Inmate not found", errorMessage(t, w))

	w = do(t, r, http.MethodPost, "/api/cells/missing/assign", `{"inmateId":"INM-2025-002"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Cell not found", errorMessage(t, w))

	w = do(t, r, http.MethodGet, "/api/cells", "")
	require.Equal(t, http.StatusOK, w.Code)
	var cells []struct {
		CurrentOccupancy int    `json:"currentOccupancy"`
		Status           string `json:"status"`
		Inmates          []struct {
			InmateID string `json:"inmateId"`
		} `json:"inmates"`
	}
	decode(t, w, &cells)
	require.Len(t, cells, 1)
	assert.Equal(t, 1, cells[0].CurrentOccupancy)
	assert.Equal(t, "Full", cells[0].Status)
	require.Len(t, cells[0].Inmates, 1)
	assert.Equal(t, "INM-2025-001", cells[0].Inmates[0].InmateID)

	w = do(t, r, http.MethodGet, "/api/inmates", "")
	require.Equal(t, http.StatusOK, w.Code)
	var inmates []struct {
		InmateID string `json:"inmateId"`
		Cell     *struct {
			CellNumber string `json:"cellNumber"`
		} `json:"cell"`
	}
	decode(t, w, &inmates)
	require.Len(t, inmates, 2)
	for _, inmate := range inmates {
		if inmate.InmateID == "INM-2025-001" {
			require.NotNil(t, inmate.Cell)
			assert.Equal(t, "S-1", inmate.Cell.CellNumber)
		} else {
			assert.Nil(t, inmate.Cell)
		}
	}
}

func TestCreateInmateDuplicate(t *testing.T) {
	r := newTestEngine(t)

	w := do(t, r, http.MethodPost, "/api/inmates", inmateBody)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, r, http.MethodPost, "/api/inmates", inmateBody)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Inmate ID already exists", errorMessage(t, w))
}

func TestCreateVisitor(t *testing.T) {
	r := newTestEngine(t)
	visit := `{"visitorName":"Amaka Okafor","inmateId":"INM-2025-001","visitDate":"2025-02-01","visitTime":"10:30","relationship":"Sister"}`

	w := do(t, r, http.MethodPost, "/api/visitors", visit)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Inmate not found", errorMessage(t, w))

	w = do(t, r, http.MethodPost, "/api/inmates", inmateBody)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, r, http.MethodPost, "/api/visitors", visit)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var created struct {
		Status string `json:"status"`
		Inmate struct {
			InmateID string `json:"inmateId"`
		} `json:"inmate"`
	}
	decode(t, w, &created)
	assert.Equal(t, "Completed", created.Status)
	assert.Equal(t, "INM-2025-001", created.Inmate.InmateID)

	w = do(t, r, http.MethodGet, "/api/visitors", "")
	require.Equal(t, http.StatusOK, w.Code)
	var visitors []map[string]interface{}
	decode(t, w, &visitors)
	assert.Len(t, visitors, 1)
}

func TestDashboardStats(t *testing.T) {
	r := newTestEngine(t)

	w := do(t, r, http.MethodGet, "/api/dashboard/stats", "")
	require.Equal(t, http.StatusOK, w.Code)

	var stats []struct {
		Title string      `json:"title"`
		Value interface{} `json:"value"`
	}
	decode(t, w, &stats)
	require.Len(t, stats, 4)
	assert.Equal(t, "Total Inmates", stats[0].Title)
	assert.EqualValues(t, 0, stats[0].Value)
	assert.Equal(t, "N/A", stats[2].Value)
	assert.Equal(t, "N/A", stats[3].Value)
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestEngine(t)
	do(t, r, http.MethodGet, "/api/cells", "")

	w := do(t, r, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `http_requests_total{method="GET",route="/api/cells",status="200"} 1`)
}

func TestCORSPreflight(t *testing.T) {
	r := newTestEngine(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/cells", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestPanicReturnsInternalError(t *testing.T) {
	r := newTestEngine(t)
	r.GET("/api/explode", func(c *gin.Context) { panic("boom") })

	w := do(t, r, http.MethodGet, "/api/explode", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal server error", errorMessage(t, w))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
