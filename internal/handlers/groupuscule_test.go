package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"mdt-registry/internal/database"
	"mdt-registry/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateGroupuscule(t *testing.T) {
	r := setupRouter(t)

	t.Run("nom requis", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/groupuscules", map[string]string{"description": "sans nom"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Le nom est requis", errorMessage(t, w))
	})

	t.Run("création", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/groupuscules", map[string]string{
			"name":        "Les Serpents",
			"description": "Gang du quartier nord",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		var g models.Groupuscule
		decodeBody(t, w, &g)
		assert.NotEmpty(t, g.ID)
		assert.Equal(t, "Les Serpents", g.Name)
	})

	t.Run("doublon insensible à la casse", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/groupuscules", map[string]string{"name": "les serpents"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Un groupuscule avec ce nom existe déjà", errorMessage(t, w))
	})
}

func TestListGroupuscules(t *testing.T) {
	r := setupRouter(t)

	for _, name := range []string{"Zeta", "Alpha", "Milieu"} {
		require.NoError(t, database.DB.Create(&models.Groupuscule{Name: name}).Error)
	}

	w := doRequest(t, r, http.MethodGet, "/groupuscules", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var groupuscules []models.Groupuscule
	decodeBody(t, w, &groupuscules)
	require.Len(t, groupuscules, 3)
	assert.Equal(t, "Alpha", groupuscules[0].Name)
	assert.Equal(t, "Zeta", groupuscules[2].Name)
}

func TestDeleteGroupuscule(t *testing.T) {
	r := setupRouter(t)

	t.Run("inconnu", func(t *testing.T) {
		w := doRequest(t, r, http.MethodDelete, "/groupuscules/absent", nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Groupuscule non trouvé", errorMessage(t, w))
	})

	t.Run("cascade sur les véhicules du groupuscule", func(t *testing.T) {
		g := models.Groupuscule{Name: "Les Requins"}
		require.NoError(t, database.DB.Create(&g).Error)

		inside := createVehicle(t, "AA-111-AA", "Jean Dupont", time.Now())
		require.NoError(t, database.DB.Model(&inside).Update("groupuscule_id", g.ID).Error)
		fact := createFact(t, inside.ID, "Fait interne", time.Now())
		require.NoError(t, database.DB.Create(&models.Sabotage{
			TriggerFactID: fact.ID, VehicleID: inside.ID, IsActive: true,
		}).Error)

		outside := createVehicle(t, "BB-222-BB", "Marie Martin", time.Now())

		w := doRequest(t, r, http.MethodDelete, "/groupuscules/"+g.ID, nil)
		require.Equal(t, http.StatusOK, w.Code)

		var count int64
		database.DB.Model(&models.Groupuscule{}).Where("id = ?", g.ID).Count(&count)
		assert.Equal(t, int64(0), count)
		database.DB.Model(&models.Vehicle{}).Where("id = ?", inside.ID).Count(&count)
		assert.Equal(t, int64(0), count)
		database.DB.Model(&models.Fact{}).Where("vehicle_id = ?", inside.ID).Count(&count)
		assert.Equal(t, int64(0), count)
		database.DB.Model(&models.Sabotage{}).Where("vehicle_id = ?", inside.ID).Count(&count)
		assert.Equal(t, int64(0), count)

		// le véhicule hors groupuscule est intact
		database.DB.Model(&models.Vehicle{}).Where("id = ?", outside.ID).Count(&count)
		assert.Equal(t, int64(1), count)
	})
}
