package handlers

import (
	"net/http"

	"mdt-registry/internal/database"
	"mdt-registry/internal/models"

	"github.com/gin-gonic/gin"
)

func ListAuditLogs(c *gin.Context) {
	var logs []models.AuditLog
	err := database.DB.
		Order("created_at desc").
		Limit(200).
		Find(&logs).Error
	if err != nil {
		abortError(c, http.StatusInternalServerError, "Erreur interne du serveur")
		return
	}
	c.JSON(http.StatusOK, logs)
}
