package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mdt-registry/internal/database"
	"mdt-registry/internal/models"
	"mdt-registry/internal/server"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// setupRouter branche les handlers sur une base sqlite en mémoire.
func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError:                           true,
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	require.NoError(t, err)

	// une seule connexion : chaque connexion ":memory:" serait une base à part
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	database.DB = db

	return server.NewRouter(zap.NewNop())
}

func doRequest(t *testing.T, r http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	decodeBody(t, w, &body)
	return body.Error
}

// createVehicle insère directement un véhicule avec un horodatage contrôlé.
func createVehicle(t *testing.T, plate, ownerName string, createdAt time.Time) models.Vehicle {
	t.Helper()
	owner := models.Owner{Name: ownerName}
	err := database.DB.Where("name = ?", ownerName).FirstOrCreate(&owner).Error
	require.NoError(t, err)

	v := models.Vehicle{
		LicensePlate: plate,
		OwnerName:    ownerName,
		OwnerID:      owner.ID,
		ReportNumber: "R-" + plate,
		CreatedAt:    createdAt,
	}
	require.NoError(t, database.DB.Create(&v).Error)
	return v
}

// createFact insère un fait avec un horodatage contrôlé.
func createFact(t *testing.T, vehicleID, title string, createdAt time.Time) models.Fact {
	t.Helper()
	f := models.Fact{
		Title:     title,
		VehicleID: vehicleID,
		CreatedAt: createdAt,
	}
	require.NoError(t, database.DB.Create(&f).Error)
	return f
}
