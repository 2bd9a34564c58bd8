package handlers

import (
	"net/http"
	"time"

	"mdt-registry/internal/database"
	"mdt-registry/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//
// ENREGISTREMENTS SABOTAGE (upsert par fait déclencheur)
//

type sabotageRequest struct {
	TriggerFactID   string   `json:"triggerFactId"`
	VehicleID       string   `json:"vehicleId"`
	AffectedFactIDs []string `json:"affectedFactIds"`
	IsActive        *bool    `json:"isActive"`
	Reason          string   `json:"reason"`
	CreatedBy       string   `json:"createdBy"`
}

// SetSabotage — upsert atomique sur trigger_fact_id : jamais de doublon pour
// un même fait déclencheur, le basculement réutilise la même ligne. Un motif
// ou un auteur vide, ainsi qu'une liste de faits vide, conservent les valeurs
// déjà enregistrées.
func SetSabotage(c *gin.Context) {
	var req sabotageRequest
	if err := c.ShouldBindJSON(&req); err != nil ||
		req.TriggerFactID == "" || req.VehicleID == "" || req.AffectedFactIDs == nil {
		abortError(c, http.StatusBadRequest, "triggerFactId, vehicleId et affectedFactIds sont requis")
		return
	}

	// actif par défaut à la création
	active := true
	if req.IsActive != nil {
		active = *req.IsActive
	}

	record := models.Sabotage{
		TriggerFactID:   req.TriggerFactID,
		VehicleID:       req.VehicleID,
		AffectedFactIDs: models.StringList(req.AffectedFactIDs),
		IsActive:        active,
		Reason:          req.Reason,
		CreatedBy:       req.CreatedBy,
	}

	err := database.DB.
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "trigger_fact_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"vehicle_id": req.VehicleID,
				"is_active":  active,
				"affected_fact_ids": gorm.Expr(
					"CASE WHEN excluded.affected_fact_ids = '[]' THEN sabotages.affected_fact_ids ELSE excluded.affected_fact_ids END"),
				"reason": gorm.Expr(
					"CASE WHEN excluded.reason = '' THEN sabotages.reason ELSE excluded.reason END"),
				"created_by": gorm.Expr(
					"CASE WHEN excluded.created_by = '' THEN sabotages.created_by ELSE excluded.created_by END"),
				"updated_at": time.Now(),
			}),
		}).
		Create(&record).Error
	if err != nil {
		abortError(c, http.StatusInternalServerError, "Erreur lors de la gestion du sabotage")
		return
	}

	// relecture : en cas de conflit, la ligne existante a été mise à jour
	var out models.Sabotage
	if err := database.DB.Where("trigger_fact_id = ?", req.TriggerFactID).First(&out).Error; err != nil {
		abortError(c, http.StatusInternalServerError, "Erreur lors de la gestion du sabotage")
		return
	}

	state := "désactivé"
	if out.IsActive {
		state = "activé"
	}
	database.CreateAuditLog(actor(c), "sabotage", out.ID, "toggle", "Sabotage "+state+" sur le véhicule "+out.VehicleID)

	c.JSON(http.StatusOK, out)
}

func ListSabotages(c *gin.Context) {
	vehicleID := c.Query("vehicleId")
	if vehicleID == "" {
		abortError(c, http.StatusBadRequest, "vehicleId est requis")
		return
	}

	q := database.DB.
		Preload("TriggerFact").
		Where("vehicle_id = ?", vehicleID)
	if c.Query("activeOnly") == "true" {
		q = q.Where("is_active = ?", true)
	}

	var records []models.Sabotage
	if err := q.Order("created_at desc").Find(&records).Error; err != nil {
		abortError(c, http.StatusInternalServerError, "Erreur lors de la récupération des sabotages")
		return
	}

	c.JSON(http.StatusOK, records)
}
