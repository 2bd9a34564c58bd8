package handlers

import (
	"net/http"
	"strings"

	"mdt-registry/internal/database"
	"mdt-registry/internal/models"

	"github.com/gin-gonic/gin"
)

//
// PROPRIÉTAIRES
//

type ownerSummary struct {
	Name  string `json:"name"`
	Count int64  `json:"count"`
}

// ListOwners renvoie les propriétaires avec leur nombre de véhicules,
// filtrés par sous-chaîne insensible à la casse.
func ListOwners(c *gin.Context) {
	search := strings.TrimSpace(c.Query("search"))

	q := database.DB.Model(&models.Owner{}).
		Select("owners.name AS name, COUNT(vehicles.id) AS count").
		Joins("LEFT JOIN vehicles ON vehicles.owner_id = owners.id").
		Group("owners.name")
	if search != "" {
		q = q.Where("LOWER(owners.name) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var owners []ownerSummary
	if err := q.Order("owners.name asc").Scan(&owners).Error; err != nil {
		abortError(c, http.StatusInternalServerError, "Erreur lors de la récupération des propriétaires")
		return
	}
	if owners == nil {
		owners = []ownerSummary{}
	}

	c.JSON(http.StatusOK, owners)
}

type ownerRequest struct {
	Name string `json:"name"`
}

func CreateOwner(c *gin.Context) {
	var req ownerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, http.StatusBadRequest, "Requête invalide")
		return
	}

	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" {
		abortError(c, http.StatusBadRequest, "Le nom du propriétaire est requis")
		return
	}

	// --- UNICITÉ DU NOM ---
	var count int64
	if err := database.DB.Model(&models.Owner{}).
		Where("name = ?", req.Name).
		Count(&count).Error; err != nil {
		abortError(c, http.StatusInternalServerError, "Erreur lors de la création du propriétaire")
		return
	}
	if count > 0 {
		abortError(c, http.StatusBadRequest, "Ce propriétaire existe déjà")
		return
	}

	owner := models.Owner{Name: req.Name}
	if err := database.DB.Create(&owner).Error; err != nil {
		if isDuplicate(err) {
			abortError(c, http.StatusBadRequest, "Ce propriétaire existe déjà")
			return
		}
		abortError(c, http.StatusInternalServerError, "Erreur lors de la création du propriétaire")
		return
	}

	c.JSON(http.StatusCreated, ownerSummary{Name: owner.Name, Count: 0})
}
