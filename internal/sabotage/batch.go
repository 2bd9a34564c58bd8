// Package sabotage contient les règles de dérivation des lots de faits :
// quel fait peut déclencher un sabotage, quels faits sont couverts, et
// l'état agrégé d'un véhicule. Rien n'est stocké ici — tout est recalculé
// à partir de la liste des faits ordonnée du plus récent au plus ancien.
package sabotage

import "mdt-registry/internal/models"

// BatchSize — taille d'un lot de faits.
const BatchSize = 5

// IsTriggerPosition indique si le fait à l'index donné (liste ordonnée du
// plus récent au plus ancien) peut déclencher un sabotage : chaque 5e fait
// en remontant dans le temps, dès lors que le véhicule a au moins 5 faits.
func IsTriggerPosition(index, total int) bool {
	if total < BatchSize || index < 0 || index >= total {
		return false
	}
	return (index+1)%BatchSize == 0
}

// AffectedWindow retourne la fenêtre couverte par un déclencheur : le fait
// déclencheur plus jusqu'à BatchSize-1 faits plus anciens.
func AffectedWindow(factIDs []string, triggerIndex int) []string {
	if triggerIndex < 0 || triggerIndex >= len(factIDs) {
		return nil
	}
	end := triggerIndex + BatchSize
	if end > len(factIDs) {
		end = len(factIDs)
	}
	window := make([]string, end-triggerIndex)
	copy(window, factIDs[triggerIndex:end])
	return window
}

// UnderSabotage — OU logique des drapeaux isActive : un véhicule est
// considéré saboté dès qu'un enregistrement actif existe, même si des
// enregistrements inactifs subsistent.
func UnderSabotage(records []models.Sabotage) bool {
	for _, r := range records {
		if r.IsActive {
			return true
		}
	}
	return false
}
