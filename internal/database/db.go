package database

import (
	"os"
	"time"

	"mdt-registry/internal/models"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// coût bcrypt aligné sur les comptes existants
const BcryptCost = 12

func Init(dsn string, log *zap.Logger) {
	var err error

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		log.Info("trying to connect to DB", zap.Int("attempt", i), zap.Int("max", maxAttempts))

		DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
			// les violations d'index unique deviennent gorm.ErrDuplicatedKey
			TranslateError: true,
			// les références pendantes sont tolérées, comme dans un
			// document store : pas de contraintes FK côté SQL
			DisableForeignKeyConstraintWhenMigrating: true,
		})
		if err == nil {
			log.Info("connected to DB successfully")
			break
		}

		log.Warn("failed to connect to DB", zap.Error(err))
		time.Sleep(2 * time.Second)
	}

	if err != nil {
		log.Fatal("failed to connect to db", zap.Int("attempts", maxAttempts), zap.Error(err))
	}

	if err := Migrate(DB); err != nil {
		log.Fatal("failed to migrate", zap.Error(err))
	}

	// comptes et référentiels par défaut
	createDefaultAdmin(log)
	createDefaultPin(log)
	seedDefaults(log)
}

// Migrate applique le schéma ; partagé avec les tests.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.PinCode{},
		&models.Owner{},
		&models.VehicleType{},
		&models.VehicleModel{},
		&models.Groupuscule{},
		&models.Vehicle{},
		&models.Fact{},
		&models.Sabotage{},
		&models.AuditLog{},
	)
}

// admin uniquement depuis l'environnement / les valeurs par défaut
func createDefaultAdmin(log *zap.Logger) {
	email := os.Getenv("ADMIN_EMAIL")
	if email == "" {
		email = "admin@mdt-hp.com"
	}
	password := os.Getenv("ADMIN_PASSWORD")
	if password == "" {
		password = "admin123"
	}

	var count int64
	if err := DB.Model(&models.User{}).
		Where("role = ?", models.RoleAdmin).
		Count(&count).Error; err != nil {
		log.Warn("failed to check admin user", zap.Error(err))
		return
	}
	if count > 0 {
		// un admin existe déjà
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		log.Warn("failed to hash default admin password", zap.Error(err))
		return
	}

	admin := models.User{
		Email:    email,
		Password: string(hash),
		Name:     "Administrateur",
		Role:     models.RoleAdmin,
	}

	if err := DB.Create(&admin).Error; err != nil {
		log.Warn("failed to create default admin", zap.Error(err))
		return
	}

	log.Info("created default admin user", zap.String("email", email))
}

// code PIN admin initial, seulement si fourni
func createDefaultPin(log *zap.Logger) {
	code := os.Getenv("ADMIN_PIN")
	if code == "" {
		return
	}

	var count int64
	if err := DB.Model(&models.PinCode{}).
		Where("code = ?", code).
		Count(&count).Error; err != nil {
		log.Warn("failed to check admin pin", zap.Error(err))
		return
	}
	if count > 0 {
		return
	}

	pin := models.PinCode{
		Code:     code,
		Type:     models.PinAdmin,
		Name:     "Administrateur",
		IsActive: true,
	}
	if err := DB.Create(&pin).Error; err != nil {
		log.Warn("failed to create admin pin", zap.Error(err))
		return
	}

	log.Info("created default admin pin")
}

// référentiels de démonstration (groupuscules et types de véhicules)
func seedDefaults(log *zap.Logger) {
	groupuscules := []models.Groupuscule{
		{Name: "Les Aigles", Description: "Organisation criminelle majeure"},
		{Name: "Les Loups", Description: "Groupe de motards"},
		{Name: "Les Serpents", Description: "Organisation de trafic de drogue"},
	}
	for _, g := range groupuscules {
		var count int64
		if err := DB.Model(&models.Groupuscule{}).
			Where("name = ?", g.Name).
			Count(&count).Error; err != nil {
			log.Warn("failed to check groupuscule", zap.String("name", g.Name), zap.Error(err))
			continue
		}
		if count > 0 {
			continue
		}
		if err := DB.Create(&g).Error; err != nil {
			log.Warn("failed to seed groupuscule", zap.String("name", g.Name), zap.Error(err))
		}
	}

	types := []models.VehicleType{
		{Name: "Voiture", Description: "Véhicule de tourisme"},
		{Name: "Moto", Description: "Véhicule à deux roues"},
		{Name: "Camion", Description: "Véhicule utilitaire"},
	}
	for _, t := range types {
		var count int64
		if err := DB.Model(&models.VehicleType{}).
			Where("name = ?", t.Name).
			Count(&count).Error; err != nil {
			log.Warn("failed to check vehicle type", zap.String("name", t.Name), zap.Error(err))
			continue
		}
		if count > 0 {
			continue
		}
		if err := DB.Create(&t).Error; err != nil {
			log.Warn("failed to seed vehicle type", zap.String("name", t.Name), zap.Error(err))
		}
	}
}
