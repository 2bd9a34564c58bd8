package handlers_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"mdt-registry/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditTrail(t *testing.T) {
	r := setupRouter(t)

	body := []byte(`{"licensePlate":"ab-123-cd","ownerName":"Jean Dupont","reportNumber":"R1"}`)
	req := httptest.NewRequest(http.MethodPost, "/vehicles", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Actor", "Chef Dubois")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var vehicle models.Vehicle
	decodeBody(t, w, &vehicle)

	// suppression sans en-tête : acteur vide accepté
	w2 := doRequest(t, r, http.MethodDelete, "/vehicles/"+vehicle.ID, nil)
	require.Equal(t, http.StatusOK, w2.Code)

	w3 := doRequest(t, r, http.MethodGet, "/audit", nil)
	require.Equal(t, http.StatusOK, w3.Code)

	var logs []models.AuditLog
	decodeBody(t, w3, &logs)
	require.Len(t, logs, 2)

	// du plus récent au plus ancien
	assert.Equal(t, "delete", logs[0].Action)
	assert.Equal(t, "vehicle", logs[0].Entity)
	assert.Empty(t, logs[0].Actor)

	assert.Equal(t, "create", logs[1].Action)
	assert.Equal(t, vehicle.ID, logs[1].EntityID)
	assert.Equal(t, "Chef Dubois", logs[1].Actor)
	assert.Contains(t, logs[1].Details, "AB-123-CD")
}
