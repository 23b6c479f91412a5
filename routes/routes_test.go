package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MatthewLomelin/Pantry-Macronutrient-Tracker/config"
	"github.com/MatthewLomelin/Pantry-Macronutrient-Tracker/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestRouter(t *testing.T, cfg config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.PantryItem{},
		&models.LogEntry{},
		&models.MacroTarget{},
	))

	return SetupRouter(db, cfg, zap.NewNop())
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	r := setupTestRouter(t, config.Config{})
	w := doJSON(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestPantryRoundtrip(t *testing.T) {
	r := setupTestRouter(t, config.Config{})

	w := doJSON(t, r, http.MethodPost, "/api/pantry", gin.H{
		"name": "Oats", "quantity": 500, "unit": "g",
		"calories_per_unit": 4, "protein_per_unit": 0.2,
		"carbs_per_unit": 0.6, "fat_per_unit": 0.1,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var created models.PantryItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	require.NotZero(t, created.ID)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/pantry/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got models.PantryItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "Oats", got.Name)
	assert.Equal(t, 500.0, got.Quantity)

	w = doJSON(t, r, http.MethodDelete, fmt.Sprintf("/api/pantry/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/pantry/%d", created.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPantryValidationStatus(t *testing.T) {
	r := setupTestRouter(t, config.Config{})

	w := doJSON(t, r, http.MethodPost, "/api/pantry", gin.H{"quantity": 1, "unit": "g"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/pantry/notanumber", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/pantry/9999", gin.H{"name": "Rice"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestLogsAndSummary(t *testing.T) {
	r := setupTestRouter(t, config.Config{})

	day := "2026-08-30"
	for _, body := range []gin.H{
		{"item_name": "Eggs", "calories": 200, "protein": 10},
		{"item_name": "Toast", "calories": 150, "protein": 5},
	} {
		w := doJSON(t, r, http.MethodPost, "/api/logs?date="+day, body)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	w := doJSON(t, r, http.MethodGet, "/api/macros/summary?date="+day, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var sum struct {
		Date     string `json:"date"`
		Count    int    `json:"count"`
		Consumed struct {
			Calories float64 `json:"calories"`
			Protein  float64 `json:"protein"`
			Carbs    float64 `json:"carbs"`
			Fat      float64 `json:"fat"`
		} `json:"consumed"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sum))
	assert.Equal(t, day, sum.Date)
	assert.Equal(t, 2, sum.Count)
	assert.Equal(t, 350.0, sum.Consumed.Calories)
	assert.Equal(t, 15.0, sum.Consumed.Protein)

	// an empty day reads back all zeroes
	w = doJSON(t, r, http.MethodGet, "/api/macros/summary?date=2026-08-31", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &sum))
	assert.Equal(t, 0, sum.Count)
	assert.Equal(t, 0.0, sum.Consumed.Calories)

	w = doJSON(t, r, http.MethodGet, "/api/macros/summary?date=yesterday", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestConsumeEndpoint(t *testing.T) {
	r := setupTestRouter(t, config.Config{})

	w := doJSON(t, r, http.MethodPost, "/api/pantry", gin.H{
		"name": "Oats", "quantity": 500, "unit": "g", "calories_per_unit": 4,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	var item models.PantryItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &item))

	w = doJSON(t, r, http.MethodPost, "/api/consume", gin.H{"item_id": item.ID, "quantity": 100})
	require.Equal(t, http.StatusCreated, w.Code)

	var entry models.LogEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entry))
	assert.Equal(t, 400.0, entry.Calories)

	w = doJSON(t, r, http.MethodPost, "/api/consume", gin.H{"item_id": 9999, "quantity": 1})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestTargetsEndpoint(t *testing.T) {
	r := setupTestRouter(t, config.Config{})

	w := doJSON(t, r, http.MethodPut, "/api/macros/targets", gin.H{
		"calories": 2000, "protein": 120, "carbs": 250, "fat": 70,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPut, "/api/macros/targets", gin.H{"calories": 2000})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/macros/targets", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var target models.MacroTarget
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &target))
	assert.Equal(t, 2000.0, target.Calories)
}

func TestResetEndpoint(t *testing.T) {
	r := setupTestRouter(t, config.Config{})

	w := doJSON(t, r, http.MethodPost, "/api/pantry", gin.H{"name": "Oats", "quantity": 1, "unit": "g"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, http.MethodPost, "/api/reset", nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/pantry", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var items []models.PantryItem
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	assert.Empty(t, items)
}

func TestCORSToggle(t *testing.T) {
	makeReq := func(r *gin.Engine) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.Header.Set("Origin", "http://localhost:3000")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	w := makeReq(setupTestRouter(t, config.Config{EnableCORS: false}))
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))

	w = makeReq(setupTestRouter(t, config.Config{EnableCORS: true}))
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
