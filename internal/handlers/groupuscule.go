package handlers

import (
	"net/http"
	"strings"

	"mdt-registry/internal/database"
	"mdt-registry/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

//
// GROUPUSCULES
//

func ListGroupuscules(c *gin.Context) {
	var groupuscules []models.Groupuscule
	if err := database.DB.Order("name asc").Find(&groupuscules).Error; err != nil {
		abortError(c, http.StatusInternalServerError, "Erreur lors de la récupération des groupuscules")
		return
	}
	c.JSON(http.StatusOK, groupuscules)
}

type groupusculeRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func CreateGroupuscule(c *gin.Context) {
	var req groupusculeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, http.StatusBadRequest, "Requête invalide")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		abortError(c, http.StatusBadRequest, "Le nom est requis")
		return
	}

	// --- UNICITÉ DU NOM ---
	var count int64
	if err := database.DB.Model(&models.Groupuscule{}).
		Where("LOWER(name) = LOWER(?)", req.Name).
		Count(&count).Error; err != nil {
		abortError(c, http.StatusInternalServerError, "Erreur lors de la création du groupuscule")
		return
	}
	if count > 0 {
		abortError(c, http.StatusBadRequest, "Un groupuscule avec ce nom existe déjà")
		return
	}

	groupuscule := models.Groupuscule{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := database.DB.Create(&groupuscule).Error; err != nil {
		if isDuplicate(err) {
			abortError(c, http.StatusBadRequest, "Un groupuscule avec ce nom existe déjà")
			return
		}
		abortError(c, http.StatusInternalServerError, "Erreur lors de la création du groupuscule")
		return
	}

	database.CreateAuditLog(actor(c), "groupuscule", groupuscule.ID, "create", "Groupuscule créé : "+groupuscule.Name)

	c.JSON(http.StatusCreated, groupuscule)
}

// DeleteGroupuscule supprime aussi les véhicules du groupuscule, avec leurs
// faits et sabotages, dans une même transaction.
func DeleteGroupuscule(c *gin.Context) {
	id := c.Param("id")

	var groupuscule models.Groupuscule
	if err := database.DB.First(&groupuscule, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			abortError(c, http.StatusNotFound, "Groupuscule non trouvé")
			return
		}
		abortError(c, http.StatusInternalServerError, "Erreur interne du serveur")
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var vehicleIDs []string
		if err := tx.Model(&models.Vehicle{}).
			Where("groupuscule_id = ?", groupuscule.ID).
			Pluck("id", &vehicleIDs).Error; err != nil {
			return err
		}
		if len(vehicleIDs) > 0 {
			if err := tx.Where("vehicle_id IN ?", vehicleIDs).Delete(&models.Sabotage{}).Error; err != nil {
				return err
			}
			if err := tx.Where("vehicle_id IN ?", vehicleIDs).Delete(&models.Fact{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", vehicleIDs).Delete(&models.Vehicle{}).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&models.Groupuscule{}, "id = ?", groupuscule.ID).Error
	})
	if err != nil {
		abortError(c, http.StatusInternalServerError, "Erreur lors de la suppression")
		return
	}

	database.CreateAuditLog(actor(c), "groupuscule", groupuscule.ID, "delete", "Groupuscule supprimé : "+groupuscule.Name)

	c.JSON(http.StatusOK, gin.H{"success": true})
}
