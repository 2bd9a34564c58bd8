package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// toutes les erreurs sortent sous la forme {"error": "..."}
func abortError(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

func isDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// actor — identité déclarée par le client pour le journal d'audit.
// L'état de session vit côté client ; l'en-tête est le relais sans état.
func actor(c *gin.Context) string {
	return c.GetHeader("X-Actor")
}

// normalise les FK optionnelles : chaîne vide -> NULL
func optionalID(id *string) *string {
	if id == nil || *id == "" {
		return nil
	}
	return id
}
