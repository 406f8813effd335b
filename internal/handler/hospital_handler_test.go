package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hospital-bed-backend/internal/database"
	"hospital-bed-backend/internal/models"
	"hospital-bed-backend/internal/repository"
	"hospital-bed-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

// newTestRouter wires the hospital routes without auth middleware so the
// handlers themselves are under test.
func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	gin.EnableJsonDecoderDisallowUnknownFields()

	db := openTestDB(t)
	hospitalService := service.NewHospitalService(
		db,
		repository.NewHospitalRepository(db),
		repository.NewHistoryRepository(db),
		repository.NewAuditRepository(db),
	)
	snapshotService := service.NewSnapshotService(
		repository.NewHospitalRepository(db),
		repository.NewHistoryRepository(db),
		repository.NewAuditRepository(db),
		"0 23 * * *",
	)

	hospitalHandler := NewHospitalHandler(hospitalService)
	snapshotHandler := NewSnapshotHandler(snapshotService)

	r := gin.New()
	api := r.Group("/api")
	api.GET("/hospitals", hospitalHandler.ListHospitals)
	api.GET("/hospitals/stats", hospitalHandler.GetStats)
	api.GET("/hospitals/view", hospitalHandler.ViewHospitals)
	api.GET("/hospitals/:id/history", hospitalHandler.GetHistory)
	api.POST("/hospitals", hospitalHandler.SubmitHospital)
	api.DELETE("/hospitals/:id", hospitalHandler.DeleteHospital)
	api.POST("/snapshots/run", snapshotHandler.RunSnapshot)
	return r
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

const kathBody = `{"name":"Komfo Anokye Teaching Hospital","region":"Ashanti","icuBeds":5,"regularBeds":20,"contactInfo":"+233 32 202 0000","location":"Kumasi"}`

func TestSubmitThenResubmit(t *testing.T) {
	r := newTestRouter(t)

	w := doJSON(r, http.MethodPost, "/api/hospitals", kathBody)
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.Hospital
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.NotZero(t, created.ID)
	assert.Equal(t, 5, created.ICUBeds)

	update := `{"name":"komfo anokye teaching hospital","region":"Ashanti","icuBeds":2,"regularBeds":18}`
	w = doJSON(r, http.MethodPost, "/api/hospitals", update)
	require.Equal(t, http.StatusOK, w.Code)

	var updated models.Hospital
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, 2, updated.ICUBeds)

	// History holds one snapshot per submission: icu 5 then icu 2.
	w = doJSON(r, http.MethodGet, "/api/hospitals/1/history?days=7", "")
	require.Equal(t, http.StatusOK, w.Code)

	var daily []models.DailyAvailability
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &daily))
	require.Len(t, daily, 1)
	assert.InDelta(t, 3.5, daily[0].AvgICUBeds, 0.001)
}

func TestSubmitValidationFailure(t *testing.T) {
	r := newTestRouter(t)

	body := `{"name":"ab","region":"Atlantis","icuBeds":-1,"regularBeds":0}`
	w := doJSON(r, http.MethodPost, "/api/hospitals", body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Message string   `json:"message"`
		Errors  []string `json:"errors"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Validation failed.", resp.Message)
	assert.Contains(t, resp.Errors, "Invalid or missing region selected.")
	assert.Contains(t, resp.Errors, "Hospital name must be a string of at least 3 characters.")
	assert.Contains(t, resp.Errors, "ICU beds must be a non-negative integer.")
}

func TestSubmitRejectsUnknownFields(t *testing.T) {
	r := newTestRouter(t)

	body := `{"name":"Komfo Anokye Teaching Hospital","region":"Ashanti","icuBeds":1,"regularBeds":1,"bogus":true}`
	w := doJSON(r, http.MethodPost, "/api/hospitals", body)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListWithFilters(t *testing.T) {
	r := newTestRouter(t)

	require.Equal(t, http.StatusCreated, doJSON(r, http.MethodPost, "/api/hospitals", kathBody).Code)
	korleBu := `{"name":"Korle Bu Teaching Hospital","region":"Greater Accra","icuBeds":8,"regularBeds":40}`
	require.Equal(t, http.StatusCreated, doJSON(r, http.MethodPost, "/api/hospitals", korleBu).Code)

	w := doJSON(r, http.MethodGet, "/api/hospitals", "")
	require.Equal(t, http.StatusOK, w.Code)

	var hospitals []models.Hospital
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &hospitals))
	assert.Len(t, hospitals, 2)

	w = doJSON(r, http.MethodGet, "/api/hospitals?search=korle", "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &hospitals))
	require.Len(t, hospitals, 1)
	assert.Equal(t, "Korle Bu Teaching Hospital", hospitals[0].Name)

	w = doJSON(r, http.MethodGet, "/api/hospitals?region=Ashanti", "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &hospitals))
	require.Len(t, hospitals, 1)
	assert.Equal(t, "Komfo Anokye Teaching Hospital", hospitals[0].Name)
}

func TestHistoryParamValidation(t *testing.T) {
	r := newTestRouter(t)

	assert.Equal(t, http.StatusBadRequest, doJSON(r, http.MethodGet, "/api/hospitals/abc/history", "").Code)
	assert.Equal(t, http.StatusBadRequest, doJSON(r, http.MethodGet, "/api/hospitals/0/history", "").Code)

	require.Equal(t, http.StatusCreated, doJSON(r, http.MethodPost, "/api/hospitals", kathBody).Code)
	assert.Equal(t, http.StatusBadRequest, doJSON(r, http.MethodGet, "/api/hospitals/1/history?days=0", "").Code)
	assert.Equal(t, http.StatusBadRequest, doJSON(r, http.MethodGet, "/api/hospitals/1/history?days=x", "").Code)

	// Unknown ids are not an error; they simply have no history.
	w := doJSON(r, http.MethodGet, "/api/hospitals/999/history", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", strings.TrimSpace(w.Body.String()))
}

func TestDeleteHospital(t *testing.T) {
	r := newTestRouter(t)

	require.Equal(t, http.StatusCreated, doJSON(r, http.MethodPost, "/api/hospitals", kathBody).Code)

	w := doJSON(r, http.MethodDelete, "/api/hospitals/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Hospital deleted successfully.")

	assert.Equal(t, http.StatusNotFound, doJSON(r, http.MethodDelete, "/api/hospitals/1", "").Code)
	assert.Equal(t, http.StatusBadRequest, doJSON(r, http.MethodDelete, "/api/hospitals/abc", "").Code)
}

func TestStatsEndpoint(t *testing.T) {
	r := newTestRouter(t)

	require.Equal(t, http.StatusCreated, doJSON(r, http.MethodPost, "/api/hospitals", kathBody).Code)

	w := doJSON(r, http.MethodGet, "/api/hospitals/stats", "")
	require.Equal(t, http.StatusOK, w.Code)

	var stats models.BedStats
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, int64(1), stats.TotalHospitals)
	assert.Equal(t, int64(5), stats.TotalICUBeds)
	assert.Equal(t, int64(20), stats.TotalRegularBeds)
}

func TestViewFiltersByBedType(t *testing.T) {
	r := newTestRouter(t)

	noICU := `{"name":"Kasoa Polyclinic","region":"Central","icuBeds":0,"regularBeds":6}`
	require.Equal(t, http.StatusCreated, doJSON(r, http.MethodPost, "/api/hospitals", kathBody).Code)
	require.Equal(t, http.StatusCreated, doJSON(r, http.MethodPost, "/api/hospitals", noICU).Code)

	w := doJSON(r, http.MethodGet, "/api/hospitals/view?bedType=icu", "")
	require.Equal(t, http.StatusOK, w.Code)

	var view struct {
		Hospitals  []models.Hospital `json:"hospitals"`
		TotalItems int               `json:"total_items"`
		TotalPages int               `json:"total_pages"`
		Notice     string            `json:"notice"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	require.Len(t, view.Hospitals, 1)
	assert.Equal(t, "Komfo Anokye Teaching Hospital", view.Hospitals[0].Name)
	assert.Equal(t, 1, view.TotalItems)
	assert.Equal(t, 1, view.TotalPages)
	assert.Empty(t, view.Notice)
}

func TestViewDistanceWithoutLocationAddsNotice(t *testing.T) {
	r := newTestRouter(t)

	require.Equal(t, http.StatusCreated, doJSON(r, http.MethodPost, "/api/hospitals", kathBody).Code)

	w := doJSON(r, http.MethodGet, "/api/hospitals/view?maxDistanceKm=50", "")
	require.Equal(t, http.StatusOK, w.Code)

	var view struct {
		Hospitals []models.Hospital `json:"hospitals"`
		Notice    string            `json:"notice"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	// Filter is skipped rather than silently dropping everything.
	assert.Len(t, view.Hospitals, 1)
	assert.Equal(t, "Distance filter ignored: user location unavailable.", view.Notice)
}

func TestViewDistanceWithLocation(t *testing.T) {
	r := newTestRouter(t)

	require.Equal(t, http.StatusCreated, doJSON(r, http.MethodPost, "/api/hospitals", kathBody).Code)
	korleBu := `{"name":"Korle Bu Teaching Hospital","region":"Greater Accra","icuBeds":8,"regularBeds":40}`
	require.Equal(t, http.StatusCreated, doJSON(r, http.MethodPost, "/api/hospitals", korleBu).Code)

	// User in Accra with a 50km radius sees only the Accra hospital.
	w := doJSON(r, http.MethodGet, "/api/hospitals/view?maxDistanceKm=50&lat=5.56&lng=-0.20", "")
	require.Equal(t, http.StatusOK, w.Code)

	var view struct {
		Hospitals []models.Hospital `json:"hospitals"`
		Notice    string            `json:"notice"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &view))
	require.Len(t, view.Hospitals, 1)
	assert.Equal(t, "Korle Bu Teaching Hospital", view.Hospitals[0].Name)
	assert.Empty(t, view.Notice)

	w = doJSON(r, http.MethodGet, "/api/hospitals/view?maxDistanceKm=-2&lat=5.56&lng=-0.20", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRunSnapshotEndpoint(t *testing.T) {
	r := newTestRouter(t)

	require.Equal(t, http.StatusCreated, doJSON(r, http.MethodPost, "/api/hospitals", kathBody).Code)

	w := doJSON(r, http.MethodPost, "/api/snapshots/run", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Message   string `json:"message"`
		Hospitals int    `json:"hospitals"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Snapshot recorded.", resp.Message)
	assert.Equal(t, 1, resp.Hospitals)
}
