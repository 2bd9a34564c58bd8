package handlers

import (
	"net/http"
	"strings"

	"mdt-registry/internal/database"
	"mdt-registry/internal/models"

	"github.com/gin-gonic/gin"
)

//
// REGISTRE DES FAITS
//

func ListFacts(c *gin.Context) {
	vehicleID := c.Query("vehicleId")
	if vehicleID == "" {
		abortError(c, http.StatusBadRequest, "vehicleId est requis")
		return
	}

	var facts []models.Fact
	err := database.DB.
		Where("vehicle_id = ?", vehicleID).
		Order("created_at desc").
		Find(&facts).Error
	if err != nil {
		abortError(c, http.StatusInternalServerError, "Erreur lors de la récupération des faits")
		return
	}

	c.JSON(http.StatusOK, facts)
}

type factRequest struct {
	Title          string `json:"title"`
	Description    string `json:"description"`
	ReportNumber   string `json:"reportNumber"`
	PhotoProofDate string `json:"photoProofDate"`
	VehicleID      string `json:"vehicleId"`
}

func CreateFact(c *gin.Context) {
	var req factRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, http.StatusBadRequest, "Requête invalide")
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" || req.VehicleID == "" {
		abortError(c, http.StatusBadRequest, "Le titre et l'ID du véhicule sont requis")
		return
	}

	fact := models.Fact{
		Title:          req.Title,
		Description:    req.Description,
		ReportNumber:   req.ReportNumber,
		PhotoProofDate: req.PhotoProofDate,
		VehicleID:      req.VehicleID,
	}

	if err := database.DB.Create(&fact).Error; err != nil {
		abortError(c, http.StatusInternalServerError, "Erreur lors de la création du fait")
		return
	}

	database.CreateAuditLog(actor(c), "fact", fact.ID, "create", "Fait créé : "+fact.Title)

	c.JSON(http.StatusCreated, fact)
}

func UpdateFact(c *gin.Context) {
	id := c.Param("id")

	var fact models.Fact
	if err := database.DB.First(&fact, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			abortError(c, http.StatusNotFound, "Fait non trouvé")
			return
		}
		abortError(c, http.StatusInternalServerError, "Erreur interne du serveur")
		return
	}

	var req factRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, http.StatusBadRequest, "Requête invalide")
		return
	}

	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		abortError(c, http.StatusBadRequest, "Le titre est requis")
		return
	}

	fact.Title = req.Title
	fact.Description = req.Description
	fact.ReportNumber = req.ReportNumber
	fact.PhotoProofDate = req.PhotoProofDate

	if err := database.DB.Save(&fact).Error; err != nil {
		abortError(c, http.StatusInternalServerError, "Erreur lors de la mise à jour du fait")
		return
	}

	database.CreateAuditLog(actor(c), "fact", fact.ID, "update", "Fait modifié : "+fact.Title)

	c.JSON(http.StatusOK, fact)
}

// La suppression d'un fait ne touche pas aux enregistrements Sabotage qui le
// référencent : les identifiants orphelins sont tolérés à l'affichage.
func DeleteFact(c *gin.Context) {
	id := c.Param("id")

	var fact models.Fact
	if err := database.DB.First(&fact, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			abortError(c, http.StatusNotFound, "Fait non trouvé")
			return
		}
		abortError(c, http.StatusInternalServerError, "Erreur interne du serveur")
		return
	}

	if err := database.DB.Delete(&models.Fact{}, "id = ?", id).Error; err != nil {
		abortError(c, http.StatusInternalServerError, "Erreur lors de la suppression du fait")
		return
	}

	database.CreateAuditLog(actor(c), "fact", fact.ID, "delete", "Fait supprimé : "+fact.Title)

	c.JSON(http.StatusOK, gin.H{"message": "Fait supprimé avec succès"})
}

//
// DRAPEAU SABOTAGE EN MASSE SUR LES FAITS
//

type factsSabotageRequest struct {
	FactIDs     []string `json:"factIds"`
	IsSabotaged *bool    `json:"isSabotaged"`
}

func SetFactsSabotaged(c *gin.Context) {
	var req factsSabotageRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.FactIDs == nil || req.IsSabotaged == nil {
		abortError(c, http.StatusBadRequest, "factIds (array) et isSabotaged sont requis")
		return
	}

	result := database.DB.Model(&models.Fact{}).
		Where("id IN ?", req.FactIDs).
		Update("is_sabotaged", *req.IsSabotaged)
	if result.Error != nil {
		abortError(c, http.StatusInternalServerError, "Erreur lors de la mise à jour du sabotage des faits")
		return
	}

	c.JSON(http.StatusOK, gin.H{"updatedCount": result.RowsAffected})
}
