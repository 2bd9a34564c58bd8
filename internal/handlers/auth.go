package handlers

import (
	"net/http"
	"strings"

	"mdt-registry/internal/database"
	"mdt-registry/internal/models"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

//
// AUTHENTIFICATION — deux chemins indépendants : code PIN et identifiants.
//

type pinRequest struct {
	Code string `json:"code"`
}

func AuthPin(c *gin.Context) {
	var req pinRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Code == "" {
		abortError(c, http.StatusBadRequest, "Code PIN requis")
		return
	}

	// correspondance exacte, codes actifs uniquement
	var pin models.PinCode
	err := database.DB.
		Where("code = ? AND is_active = ?", req.Code, true).
		First(&pin).Error
	if err != nil {
		if isNotFound(err) {
			abortError(c, http.StatusUnauthorized, "Code PIN incorrect")
			return
		}
		abortError(c, http.StatusInternalServerError, "Erreur interne du serveur")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": gin.H{
			"id":   pin.ID,
			"code": pin.Code,
			"type": pin.Type,
			"name": pin.Name,
			"role": pin.Role(),
		},
	})
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func AuthCredentials(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, http.StatusBadRequest, "Requête invalide")
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		abortError(c, http.StatusBadRequest, "Email et mot de passe requis")
		return
	}

	var user models.User
	if err := database.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if isNotFound(err) {
			abortError(c, http.StatusNotFound, "Utilisateur non trouvé")
			return
		}
		abortError(c, http.StatusInternalServerError, "Erreur interne du serveur")
		return
	}

	// comparaison en temps constant via bcrypt
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		abortError(c, http.StatusUnauthorized, "Mot de passe incorrect")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": gin.H{
			"id":    user.ID,
			"email": user.Email,
			"name":  user.Name,
			"role":  user.Role,
		},
	})
}
