package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type ownerEntry struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

func TestListOwners(t *testing.T) {
	r := setupRouter(t)

	createVehicle(t, "AA-111-AA", "Jean Dupont", time.Now())
	createVehicle(t, "BB-222-BB", "Jean Dupont", time.Now())
	createVehicle(t, "CC-333-CC", "Marie Martin", time.Now())

	// propriétaire sans véhicule
	w := doRequest(t, r, http.MethodPost, "/owners", map[string]string{"name": "Albert Zeff"})
	require.Equal(t, http.StatusCreated, w.Code)

	t.Run("compteurs et tri alphabétique", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/owners", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var owners []ownerEntry
		decodeBody(t, w, &owners)
		require.Len(t, owners, 3)
		assert.Equal(t, ownerEntry{Name: "Albert Zeff", Count: 0}, owners[0])
		assert.Equal(t, ownerEntry{Name: "Jean Dupont", Count: 2}, owners[1])
		assert.Equal(t, ownerEntry{Name: "Marie Martin", Count: 1}, owners[2])
	})

	t.Run("recherche insensible à la casse", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/owners?search=DUPONT", nil)
		require.Equal(t, http.StatusOK, w.Code)

		var owners []ownerEntry
		decodeBody(t, w, &owners)
		require.Len(t, owners, 1)
		assert.Equal(t, "Jean Dupont", owners[0].Name)
	})

	t.Run("aucun résultat : tableau vide", func(t *testing.T) {
		w := doRequest(t, r, http.MethodGet, "/owners?search=introuvable", nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", w.Body.String())
	})
}

func TestCreateOwner(t *testing.T) {
	r := setupRouter(t)

	t.Run("nom requis", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/owners", map[string]string{"name": "   "})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Le nom du propriétaire est requis", errorMessage(t, w))
	})

	t.Run("création avec nom épuré", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/owners", map[string]string{"name": "  Jean Dupont  "})
		require.Equal(t, http.StatusCreated, w.Code)

		var owner ownerEntry
		decodeBody(t, w, &owner)
		assert.Equal(t, "Jean Dupont", owner.Name)
		assert.Equal(t, int64(0), owner.Count)
	})

	t.Run("doublon refusé", func(t *testing.T) {
		w := doRequest(t, r, http.MethodPost, "/owners", map[string]string{"name": "Jean Dupont"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Ce propriétaire existe déjà", errorMessage(t, w))
	})
}
