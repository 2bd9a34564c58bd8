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
// UTILISATEURS
//

func ListUsers(c *gin.Context) {
	var users []models.User
	if err := database.DB.Order("created_at desc").Find(&users).Error; err != nil {
		abortError(c, http.StatusInternalServerError, "Erreur lors de la récupération des utilisateurs")
		return
	}
	// le hash du mot de passe est exclu par la sérialisation
	c.JSON(http.StatusOK, users)
}

type userRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

func CreateUser(c *gin.Context) {
	var req userRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, http.StatusBadRequest, "Requête invalide")
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || req.Password == "" {
		abortError(c, http.StatusBadRequest, "Email et mot de passe requis")
		return
	}

	role := models.UserRole(req.Role)
	switch role {
	case models.RoleAdmin, models.RoleUser:
	case "":
		role = models.RoleUser
	default:
		abortError(c, http.StatusBadRequest, "Rôle invalide")
		return
	}

	// --- UNICITÉ DE L'EMAIL ---
	var count int64
	if err := database.DB.Model(&models.User{}).
		Where("email = ?", req.Email).
		Count(&count).Error; err != nil {
		abortError(c, http.StatusInternalServerError, "Erreur lors de la création de l'utilisateur")
		return
	}
	if count > 0 {
		abortError(c, http.StatusBadRequest, "Un utilisateur avec cet email existe déjà")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), database.BcryptCost)
	if err != nil {
		abortError(c, http.StatusInternalServerError, "Erreur lors de la création de l'utilisateur")
		return
	}

	user := models.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hash),
		Role:     role,
	}

	if err := database.DB.Create(&user).Error; err != nil {
		if isDuplicate(err) {
			abortError(c, http.StatusBadRequest, "Un utilisateur avec cet email existe déjà")
			return
		}
		abortError(c, http.StatusInternalServerError, "Erreur lors de la création de l'utilisateur")
		return
	}

	c.JSON(http.StatusCreated, user)
}

func DeleteUser(c *gin.Context) {
	id := c.Param("id")

	var user models.User
	if err := database.DB.First(&user, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			abortError(c, http.StatusNotFound, "Utilisateur non trouvé")
			return
		}
		abortError(c, http.StatusInternalServerError, "Erreur interne du serveur")
		return
	}

	if err := database.DB.Delete(&models.User{}, "id = ?", id).Error; err != nil {
		abortError(c, http.StatusInternalServerError, "Erreur lors de la suppression")
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
