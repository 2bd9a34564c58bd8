package handlers

import (
	"net/http"
	"strings"

	"mdt-registry/internal/database"
	"mdt-registry/internal/models"

	"github.com/gin-gonic/gin"
)

//
// MODÈLES DE VÉHICULES
//

func ListVehicleModels(c *gin.Context) {
	q := database.DB.Model(&models.VehicleModel{}).Preload("VehicleType")

	if typeID := c.Query("vehicleTypeId"); typeID != "" {
		q = q.Where("vehicle_type_id = ?", typeID)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		q = q.Where("LOWER(name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var vehicleModels []models.VehicleModel
	if err := q.Order("name asc").Find(&vehicleModels).Error; err != nil {
		abortError(c, http.StatusInternalServerError, "Erreur interne du serveur")
		return
	}

	c.JSON(http.StatusOK, vehicleModels)
}

type vehicleModelRequest struct {
	Name          string `json:"name"`
	VehicleTypeID string `json:"vehicleTypeId"`
}

func CreateVehicleModel(c *gin.Context) {
	var req vehicleModelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, http.StatusBadRequest, "Requête invalide")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.VehicleTypeID == "" {
		abortError(c, http.StatusBadRequest, "Le nom et le type de véhicule sont requis")
		return
	}

	vehicleModel := models.VehicleModel{
		Name:          req.Name,
		VehicleTypeID: req.VehicleTypeID,
	}

	if err := database.DB.Create(&vehicleModel).Error; err != nil {
		abortError(c, http.StatusInternalServerError, "Erreur interne du serveur")
		return
	}

	database.DB.Preload("VehicleType").First(&vehicleModel, "id = ?", vehicleModel.ID)

	c.JSON(http.StatusCreated, vehicleModel)
}

func DeleteVehicleModel(c *gin.Context) {
	id := c.Param("id")

	var vehicleModel models.VehicleModel
	if err := database.DB.First(&vehicleModel, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			abortError(c, http.StatusNotFound, "Modèle de véhicule non trouvé")
			return
		}
		abortError(c, http.StatusInternalServerError, "Erreur interne du serveur")
		return
	}

	if err := database.DB.Delete(&models.VehicleModel{}, "id = ?", id).Error; err != nil {
		abortError(c, http.StatusInternalServerError, "Erreur interne du serveur")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
