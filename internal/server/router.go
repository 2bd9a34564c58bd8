package server

import (
	"net/http"

	"mdt-registry/internal/handlers"
	"mdt-registry/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func NewRouter(log *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	// AUTH
	r.POST("/auth/pin", handlers.AuthPin)
	r.POST("/auth/credentials", handlers.AuthCredentials)

	// VÉHICULES
	r.GET("/vehicles", handlers.ListVehicles)
	r.POST("/vehicles", handlers.CreateVehicle)
	r.GET("/vehicles/:id", handlers.GetVehicle)
	r.PUT("/vehicles/:id", handlers.UpdateVehicle)
	r.DELETE("/vehicles/:id", handlers.DeleteVehicle)
	r.POST("/vehicles/assign", handlers.AssignVehicle)
	r.POST("/vehicles/unassign", handlers.UnassignVehicle)
	r.POST("/vehicles/sabotage", handlers.SetVehicleSabotaged)

	// FAITS
	r.GET("/facts", handlers.ListFacts)
	r.POST("/facts", handlers.CreateFact)
	r.PUT("/facts/:id", handlers.UpdateFact)
	r.DELETE("/facts/:id", handlers.DeleteFact)
	r.POST("/facts/sabotage", handlers.SetFactsSabotaged)

	// SABOTAGES
	r.GET("/sabotages", handlers.ListSabotages)
	r.POST("/sabotages", handlers.SetSabotage)

	// GROUPUSCULES
	r.GET("/groupuscules", handlers.ListGroupuscules)
	r.POST("/groupuscules", handlers.CreateGroupuscule)
	r.DELETE("/groupuscules/:id", handlers.DeleteGroupuscule)

	// PROPRIÉTAIRES
	r.GET("/owners", handlers.ListOwners)
	r.POST("/owners", handlers.CreateOwner)

	// TYPES ET MODÈLES
	r.GET("/vehicle-types", handlers.ListVehicleTypes)
	r.POST("/vehicle-types", handlers.CreateVehicleType)
	r.DELETE("/vehicle-types/:id", handlers.DeleteVehicleType)
	r.GET("/vehicle-models", handlers.ListVehicleModels)
	r.POST("/vehicle-models", handlers.CreateVehicleModel)
	r.DELETE("/vehicle-models/:id", handlers.DeleteVehicleModel)

	// UTILISATEURS ET CODES PIN
	r.GET("/users", handlers.ListUsers)
	r.POST("/users", handlers.CreateUser)
	r.DELETE("/users/:id", handlers.DeleteUser)
	r.GET("/pin-codes", handlers.ListPinCodes)
	r.POST("/pin-codes", handlers.CreatePinCode)

	// AUDIT
	r.GET("/audit", handlers.ListAuditLogs)

	// HEALTHCHECK
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	return r
}
