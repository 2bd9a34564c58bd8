package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"mdt-registry/internal/database"
	"mdt-registry/internal/models"
	"mdt-registry/internal/sabotage"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// colonnes de tri autorisées
var vehicleSortColumns = map[string]string{
	"licensePlate":   "vehicles.license_plate",
	"ownerName":      "vehicles.owner_name",
	"reportNumber":   "vehicles.report_number",
	"photoProofDate": "vehicles.photo_proof_date",
	"createdAt":      "vehicles.created_at",
}

type vehicleRequest struct {
	LicensePlate   string  `json:"licensePlate"`
	OwnerName      string  `json:"ownerName"`
	ReportNumber   string  `json:"reportNumber"`
	PhotoProofDate string  `json:"photoProofDate"`
	GroupusculeID  *string `json:"groupusculeId"`
	VehicleTypeID  *string `json:"vehicleTypeId"`
	VehicleModelID *string `json:"vehicleModelId"`
}

// vues enrichies pour la liste
type factView struct {
	models.Fact
	TriggerEligible bool `json:"triggerEligible"`
}

type sabotageView struct {
	models.Sabotage
	TriggerFactTitle string     `json:"triggerFactTitle"`
	TriggerFactDate  *time.Time `json:"triggerFactDate"`
}

type vehicleListItem struct {
	models.Vehicle
	Facts           []factView     `json:"facts"`
	Sabotages       []sabotageView `json:"sabotages"`
	ActiveSabotages []sabotageView `json:"activeSabotages"`
	UnderSabotage   bool           `json:"underSabotage"`
}

//
// LISTE / CRÉATION
//

func ListVehicles(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}
	search := strings.TrimSpace(c.Query("search"))

	column, ok := vehicleSortColumns[c.DefaultQuery("sortBy", "createdAt")]
	if !ok {
		column = "vehicles.created_at"
	}
	order := strings.ToLower(c.DefaultQuery("sortOrder", "desc"))
	if order != "asc" && order != "desc" {
		order = "desc"
	}

	base := func() *gorm.DB {
		q := database.DB.Model(&models.Vehicle{}).
			Joins("LEFT JOIN vehicle_types ON vehicle_types.id = vehicles.vehicle_type_id").
			Joins("LEFT JOIN groupuscules ON groupuscules.id = vehicles.groupuscule_id")
		if search != "" {
			like := "%" + strings.ToLower(search) + "%"
			q = q.Where(
				"LOWER(vehicles.license_plate) LIKE ? OR LOWER(vehicles.owner_name) LIKE ? OR LOWER(vehicle_types.name) LIKE ? OR LOWER(groupuscules.name) LIKE ?",
				like, like, like, like,
			)
		}
		return q
	}

	var total int64
	if err := base().Count(&total).Error; err != nil {
		abortError(c, http.StatusInternalServerError, "Erreur lors de la récupération des véhicules")
		return
	}

	var vehicles []models.Vehicle
	err := base().
		Select("vehicles.*").
		Preload("Owner").
		Preload("Groupuscule").
		Preload("VehicleType").
		Preload("VehicleModel").
		Order(column + " " + order).
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&vehicles).Error
	if err != nil {
		abortError(c, http.StatusInternalServerError, "Erreur lors de la récupération des véhicules")
		return
	}

	items := make([]vehicleListItem, 0, len(vehicles))
	for i := range vehicles {
		item, err := enrichVehicle(&vehicles[i])
		if err != nil {
			abortError(c, http.StatusInternalServerError, "Erreur lors de la récupération des véhicules")
			return
		}
		items = append(items, item)
	}

	c.JSON(http.StatusOK, gin.H{
		"vehicles":   items,
		"pagination": paginate(page, limit, total),
	})
}

// enrichVehicle complète un véhicule avec ses faits (du plus récent au plus
// ancien, chacun annoté de son éligibilité déclencheur), tous ses sabotages
// annotés du titre et de la date du fait déclencheur, le sous-ensemble actif
// et l'état agrégé.
func enrichVehicle(v *models.Vehicle) (vehicleListItem, error) {
	var facts []models.Fact
	err := database.DB.
		Where("vehicle_id = ?", v.ID).
		Order("created_at desc").
		Find(&facts).Error
	if err != nil {
		return vehicleListItem{}, err
	}

	var records []models.Sabotage
	err = database.DB.
		Preload("TriggerFact").
		Where("vehicle_id = ?", v.ID).
		Order("created_at desc").
		Find(&records).Error
	if err != nil {
		return vehicleListItem{}, err
	}

	factViews := make([]factView, len(facts))
	for i, f := range facts {
		factViews[i] = factView{
			Fact:            f,
			TriggerEligible: sabotage.IsTriggerPosition(i, len(facts)),
		}
	}

	views := make([]sabotageView, 0, len(records))
	active := make([]sabotageView, 0)
	for _, s := range records {
		view := sabotageView{Sabotage: s, TriggerFactTitle: "Fait supprimé"}
		if s.TriggerFact != nil {
			view.TriggerFactTitle = s.TriggerFact.Title
			date := s.TriggerFact.CreatedAt
			view.TriggerFactDate = &date
		}
		view.TriggerFact = nil
		views = append(views, view)
		if s.IsActive {
			active = append(active, view)
		}
	}

	return vehicleListItem{
		Vehicle:         *v,
		Facts:           factViews,
		Sabotages:       views,
		ActiveSabotages: active,
		UnderSabotage:   sabotage.UnderSabotage(records),
	}, nil
}

func CreateVehicle(c *gin.Context) {
	var req vehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, http.StatusBadRequest, "Requête invalide")
		return
	}

	req.LicensePlate = strings.ToUpper(strings.TrimSpace(req.LicensePlate))
	req.OwnerName = strings.TrimSpace(req.OwnerName)

	if req.LicensePlate == "" || req.OwnerName == "" {
		abortError(c, http.StatusBadRequest, "La plaque et le propriétaire sont requis")
		return
	}
	if req.ReportNumber == "" && req.PhotoProofDate == "" {
		abortError(c, http.StatusBadRequest, "Veuillez renseigner au moins le numéro de dossier ou la date photo preuve")
		return
	}

	// --- UNICITÉ DE LA PLAQUE ---
	var count int64
	if err := database.DB.Model(&models.Vehicle{}).
		Where("license_plate = ?", req.LicensePlate).
		Count(&count).Error; err != nil {
		abortError(c, http.StatusInternalServerError, "Erreur lors de la création du véhicule")
		return
	}
	if count > 0 {
		abortError(c, http.StatusBadRequest, "Un véhicule avec cette plaque existe déjà")
		return
	}

	owner, err := findOrCreateOwner(req.OwnerName)
	if err != nil {
		abortError(c, http.StatusInternalServerError, "Erreur lors de la création du véhicule")
		return
	}

	vehicle := models.Vehicle{
		LicensePlate:   req.LicensePlate,
		OwnerName:      req.OwnerName,
		OwnerID:        owner.ID,
		ReportNumber:   req.ReportNumber,
		PhotoProofDate: req.PhotoProofDate,
		GroupusculeID:  optionalID(req.GroupusculeID),
		VehicleTypeID:  optionalID(req.VehicleTypeID),
		VehicleModelID: optionalID(req.VehicleModelID),
	}

	if err := database.DB.Create(&vehicle).Error; err != nil {
		// l'index unique tranche les créations concurrentes
		if isDuplicate(err) {
			abortError(c, http.StatusBadRequest, "Un véhicule avec cette plaque existe déjà")
			return
		}
		abortError(c, http.StatusInternalServerError, "Erreur lors de la création du véhicule")
		return
	}

	database.CreateAuditLog(actor(c), "vehicle", vehicle.ID, "create", "Véhicule créé : "+vehicle.LicensePlate)

	loadVehicle(c, vehicle.ID, http.StatusCreated)
}

// findOrCreateOwner — upsert atomique : l'index unique sur name absorbe les
// créations concurrentes du même propriétaire.
func findOrCreateOwner(name string) (*models.Owner, error) {
	owner := models.Owner{Name: name}
	err := database.DB.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "name"}},
			DoNothing: true,
		}).
		Create(&owner).Error
	if err != nil {
		return nil, err
	}
	if err := database.DB.Where("name = ?", name).First(&owner).Error; err != nil {
		return nil, err
	}
	return &owner, nil
}

// relit un véhicule avec ses jointures et le renvoie
func loadVehicle(c *gin.Context, id string, status int) {
	var vehicle models.Vehicle
	err := database.DB.
		Preload("Owner").
		Preload("Groupuscule").
		Preload("VehicleType").
		Preload("VehicleModel").
		First(&vehicle, "id = ?", id).Error
	if err != nil {
		if isNotFound(err) {
			abortError(c, http.StatusNotFound, "Véhicule non trouvé")
			return
		}
		abortError(c, http.StatusInternalServerError, "Erreur interne du serveur")
		return
	}
	c.JSON(status, vehicle)
}

//
// DÉTAIL / MODIFICATION / SUPPRESSION
//

func GetVehicle(c *gin.Context) {
	loadVehicle(c, c.Param("id"), http.StatusOK)
}

func UpdateVehicle(c *gin.Context) {
	id := c.Param("id")

	var vehicle models.Vehicle
	if err := database.DB.First(&vehicle, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			abortError(c, http.StatusNotFound, "Véhicule non trouvé")
			return
		}
		abortError(c, http.StatusInternalServerError, "Erreur interne du serveur")
		return
	}

	var req vehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortError(c, http.StatusBadRequest, "Requête invalide")
		return
	}

	req.LicensePlate = strings.ToUpper(strings.TrimSpace(req.LicensePlate))
	req.OwnerName = strings.TrimSpace(req.OwnerName)

	if req.LicensePlate == "" || req.OwnerName == "" {
		abortError(c, http.StatusBadRequest, "La plaque et le propriétaire sont requis")
		return
	}
	if req.ReportNumber == "" && req.PhotoProofDate == "" {
		abortError(c, http.StatusBadRequest, "Veuillez renseigner au moins le numéro de dossier ou la date photo preuve")
		return
	}

	// --- UNICITÉ DE LA PLAQUE (hors véhicule courant) ---
	if req.LicensePlate != vehicle.LicensePlate {
		var count int64
		if err := database.DB.Model(&models.Vehicle{}).
			Where("license_plate = ? AND id <> ?", req.LicensePlate, vehicle.ID).
			Count(&count).Error; err != nil {
			abortError(c, http.StatusInternalServerError, "Erreur lors de la mise à jour du véhicule")
			return
		}
		if count > 0 {
			abortError(c, http.StatusBadRequest, "Un véhicule avec cette plaque existe déjà")
			return
		}
	}

	owner, err := findOrCreateOwner(req.OwnerName)
	if err != nil {
		abortError(c, http.StatusInternalServerError, "Erreur lors de la mise à jour du véhicule")
		return
	}

	vehicle.LicensePlate = req.LicensePlate
	vehicle.OwnerName = req.OwnerName
	vehicle.OwnerID = owner.ID
	vehicle.ReportNumber = req.ReportNumber
	vehicle.PhotoProofDate = req.PhotoProofDate
	vehicle.GroupusculeID = optionalID(req.GroupusculeID)
	vehicle.VehicleTypeID = optionalID(req.VehicleTypeID)
	vehicle.VehicleModelID = optionalID(req.VehicleModelID)

	if err := database.DB.Save(&vehicle).Error; err != nil {
		if isDuplicate(err) {
			abortError(c, http.StatusBadRequest, "Un véhicule avec cette plaque existe déjà")
			return
		}
		abortError(c, http.StatusInternalServerError, "Erreur lors de la mise à jour du véhicule")
		return
	}

	database.CreateAuditLog(actor(c), "vehicle", vehicle.ID, "update", "Véhicule modifié : "+vehicle.LicensePlate)

	loadVehicle(c, vehicle.ID, http.StatusOK)
}

func DeleteVehicle(c *gin.Context) {
	id := c.Param("id")

	var vehicle models.Vehicle
	if err := database.DB.First(&vehicle, "id = ?", id).Error; err != nil {
		if isNotFound(err) {
			abortError(c, http.StatusNotFound, "Véhicule non trouvé")
			return
		}
		abortError(c, http.StatusInternalServerError, "Erreur interne du serveur")
		return
	}

	// suppression en cascade des faits et sabotages du véhicule
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("vehicle_id = ?", vehicle.ID).Delete(&models.Sabotage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("vehicle_id = ?", vehicle.ID).Delete(&models.Fact{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Vehicle{}, "id = ?", vehicle.ID).Error
	})
	if err != nil {
		abortError(c, http.StatusInternalServerError, "Erreur lors de la suppression")
		return
	}

	database.CreateAuditLog(actor(c), "vehicle", vehicle.ID, "delete", "Véhicule supprimé : "+vehicle.LicensePlate)

	c.JSON(http.StatusOK, gin.H{"success": true})
}

//
// AFFECTATION À UN GROUPUSCULE
//

type assignRequest struct {
	VehicleID     string `json:"vehicleId"`
	GroupusculeID string `json:"groupusculeId"`
}

func AssignVehicle(c *gin.Context) {
	var req assignRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.VehicleID == "" || req.GroupusculeID == "" {
		abortError(c, http.StatusBadRequest, "ID du véhicule et du groupuscule requis")
		return
	}

	var vehicle models.Vehicle
	if err := database.DB.First(&vehicle, "id = ?", req.VehicleID).Error; err != nil {
		abortError(c, http.StatusNotFound, "Véhicule non trouvé")
		return
	}

	var groupuscule models.Groupuscule
	if err := database.DB.First(&groupuscule, "id = ?", req.GroupusculeID).Error; err != nil {
		abortError(c, http.StatusNotFound, "Groupuscule non trouvé")
		return
	}

	if err := database.DB.Model(&vehicle).Update("groupuscule_id", req.GroupusculeID).Error; err != nil {
		abortError(c, http.StatusInternalServerError, "Erreur interne du serveur")
		return
	}

	database.CreateAuditLog(actor(c), "vehicle", vehicle.ID, "assign", "Véhicule affecté au groupuscule "+groupuscule.Name)

	loadVehicle(c, vehicle.ID, http.StatusOK)
}

type unassignRequest struct {
	VehicleID string `json:"vehicleId"`
}

func UnassignVehicle(c *gin.Context) {
	var req unassignRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.VehicleID == "" {
		abortError(c, http.StatusBadRequest, "ID du véhicule requis")
		return
	}

	var vehicle models.Vehicle
	if err := database.DB.First(&vehicle, "id = ?", req.VehicleID).Error; err != nil {
		abortError(c, http.StatusNotFound, "Véhicule non trouvé")
		return
	}

	if err := database.DB.Model(&vehicle).Update("groupuscule_id", nil).Error; err != nil {
		abortError(c, http.StatusInternalServerError, "Erreur interne du serveur")
		return
	}

	database.CreateAuditLog(actor(c), "vehicle", vehicle.ID, "unassign", "Véhicule retiré de son groupuscule")

	loadVehicle(c, vehicle.ID, http.StatusOK)
}

//
// DRAPEAU SABOTAGE EN MASSE (mécanisme distinct des enregistrements Sabotage)
//

type vehicleSabotageRequest struct {
	VehicleID   string `json:"vehicleId"`
	IsSabotaged *bool  `json:"isSabotaged"`
}

func SetVehicleSabotaged(c *gin.Context) {
	var req vehicleSabotageRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.VehicleID == "" || req.IsSabotaged == nil {
		abortError(c, http.StatusBadRequest, "vehicleId et isSabotaged sont requis")
		return
	}

	var vehicle models.Vehicle
	if err := database.DB.First(&vehicle, "id = ?", req.VehicleID).Error; err != nil {
		if isNotFound(err) {
			abortError(c, http.StatusNotFound, "Véhicule non trouvé")
			return
		}
		abortError(c, http.StatusInternalServerError, "Erreur lors de la mise à jour du sabotage")
		return
	}

	if err := database.DB.Model(&vehicle).Update("is_sabotaged", *req.IsSabotaged).Error; err != nil {
		abortError(c, http.StatusInternalServerError, "Erreur lors de la mise à jour du sabotage")
		return
	}

	c.JSON(http.StatusOK, vehicle)
}
