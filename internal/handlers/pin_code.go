package handlers

import (
	"net/http"
	"strings"

	"mdt-registry/internal/database"
	"mdt-registry/internal/models"

	"github.com/gin-gonic/gin"
)

//
// CODES PIN
//

func ListPinCodes(c *gin.Context) {
	var pins []models.PinCode
	err := database.DB.
		Where("is_active = ?", true).
		Order("created_at desc").
		Find(&pins).Error
	if err != nil {
		abortError(c, http.StatusInternalServerError, "Erreur lors de la récupération des codes PIN")
		return
	}
	c.JSON(http.StatusOK, pins)
}

type pinCodeRequest struct {
	Code string `json:"code"`
	Type string `json:"type"`
	Name string `json:"name"`
}

func CreatePinCode(c *gin.Context) {
	var req pinCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, http.StatusBadRequest, "Requête invalide")
		return
	}

	req.Code = strings.TrimSpace(req.Code)
	req.Name = strings.TrimSpace(req.Name)
	if req.Code == "" || req.Type == "" || req.Name == "" {
		abortError(c, http.StatusBadRequest, "Code, type et nom sont requis")
		return
	}

	pinType := models.PinCodeType(req.Type)
	if pinType != models.PinAdmin && pinType != models.PinUser {
		abortError(c, http.StatusBadRequest, "Type de code PIN invalide")
		return
	}

	// --- UNICITÉ DU CODE ---
	var count int64
	if err := database.DB.Model(&models.PinCode{}).
		Where("code = ?", req.Code).
		Count(&count).Error; err != nil {
		abortError(c, http.StatusInternalServerError, "Erreur lors de la création du code PIN")
		return
	}
	if count > 0 {
		abortError(c, http.StatusBadRequest, "Ce code PIN existe déjà")
		return
	}

	pin := models.PinCode{
		Code:     req.Code,
		Type:     pinType,
		Name:     req.Name,
		IsActive: true,
	}

	if err := database.DB.Create(&pin).Error; err != nil {
		if isDuplicate(err) {
			abortError(c, http.StatusBadRequest, "Ce code PIN existe déjà")
			return
		}
		abortError(c, http.StatusInternalServerError, "Erreur lors de la création du code PIN")
		return
	}

	c.JSON(http.StatusCreated, pin)
}
