package database

import "mdt-registry/internal/models"

// helper pour écrire dans le journal d'audit
func CreateAuditLog(actor, entity, entityID, action, details string) {
	if DB == nil {
		return
	}
	record := models.AuditLog{
		Actor:    actor,
		Entity:   entity,
		EntityID: entityID,
		Action:   action,
		Details:  details,
	}
	_ = DB.Create(&record).Error
}
