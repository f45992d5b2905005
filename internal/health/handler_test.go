package health

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"

	"github.com/festy23/sales_dashboard/internal/clock"
	"github.com/festy23/sales_dashboard/internal/database/dbtest"
)

var now = time.Date(2024, time.March, 13, 18, 0, 0, 0, time.UTC)

func setupRouter(db *gorm.DB, logger *zap.SugaredLogger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterRoutes(router, db, clock.Fixed(now), logger)
	return router
}

func check(router *gin.Engine) (*httptest.ResponseRecorder, Response) {
	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	var resp Response
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestHandler_Check(t *testing.T) {
	t.Run("database is healthy", func(t *testing.T) {
		router := setupRouter(dbtest.NewSQLite(t), zap.NewNop().Sugar())

		w, resp := check(router)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Equal(t, "ok", resp.Status)
		assert.Equal(t, "up", resp.Database)
		assert.GreaterOrEqual(t, resp.OpenConnections, 1)
		assert.True(t, now.Equal(resp.Time))
	})

	t.Run("database is unavailable", func(t *testing.T) {
		db := dbtest.NewSQLite(t)
		sqlDB, err := db.DB()
		require.NoError(t, err)
		require.NoError(t, sqlDB.Close())

		core, logs := observer.New(zapcore.WarnLevel)
		router := setupRouter(db, zap.New(core).Sugar())

		w, resp := check(router)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Equal(t, "unhealthy", resp.Status)
		assert.Equal(t, "down", resp.Database)
		assert.Equal(t, 1, logs.FilterMessage("health check failed").Len())
	})

	t.Run("nil database", func(t *testing.T) {
		router := setupRouter(nil, zap.NewNop().Sugar())

		w, _ := check(router)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("concurrent checks", func(t *testing.T) {
		router := setupRouter(dbtest.NewSQLite(t), zap.NewNop().Sugar())

		results := make(chan int, 10)
		for i := 0; i < 10; i++ {
			go func() {
				w, _ := check(router)
				results <- w.Code
			}()
		}

		for i := 0; i < 10; i++ {
			assert.Equal(t, http.StatusOK, <-results)
		}
	})
}
