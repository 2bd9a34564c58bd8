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
// TYPES DE VÉHICULES
//

func ListVehicleTypes(c *gin.Context) {
	var types []models.VehicleType
	if err := database.DB.Order("name asc").Find(&types).Error; err != nil {
		abortError(c, http.StatusInternalServerError, "Erreur interne du serveur")
		return
	}
	c.JSON(http.StatusOK, types)
}

type vehicleTypeRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func CreateVehicleType(c *gin.Context) {
	var req vehicleTypeRequest
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
	if err := database.DB.Model(&models.VehicleType{}).
		Where("LOWER(name) = LOWER(?)", req.Name).
		Count(&count).Error; err != nil {
		abortError(c, http.StatusInternalServerError, "Erreur interne du serveur")
		return
	}
	if count > 0 {
		abortError(c, http.StatusBadRequest, "Un type de véhicule avec ce nom existe déjà")
		return
	}

	vehicleType := models.VehicleType{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := database.DB.Create(&vehicleType).Error; err != nil {
		if isDuplicate(err) {
			abortError(c, http.StatusBadRequest, "Un type de véhicule avec ce nom existe déjà")
			return
		}
		abortError(c, http.StatusInternalServerError, "Erreur interne du serveur")
		return
	}

	c.JSON(http.StatusCreated, vehicleType)
}

// DeleteVehicleType détache les véhicules du type supprimé et retire les
// modèles qui en dépendent.
func DeleteVehicleType(c *gin.Context) {
	id := c.Param("id")

	var vehicleType models.VehicleType
	if err := database.DB.First(&vehicleType, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			abortError(c, http.StatusNotFound, "Type de véhicule non trouvé")
			return
		}
		abortError(c, http.StatusInternalServerError, "Erreur interne du serveur")
		return
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Vehicle{}).
			Where("vehicle_type_id = ?", vehicleType.ID).
			Update("vehicle_type_id", nil).Error; err != nil {
			return err
		}
		if err := tx.Where("vehicle_type_id = ?", vehicleType.ID).
			Delete(&models.VehicleModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.VehicleType{}, "id = ?", vehicleType.ID).Error
	})
	if err != nil {
		abortError(c, http.StatusInternalServerError, "Erreur interne du serveur")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
