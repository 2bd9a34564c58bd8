package sabotage

import (
	"fmt"
	"testing"

	"mdt-registry/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestIsTriggerPosition(t *testing.T) {
	tests := []struct {
		name  string
		index int
		total int
		want  bool
	}{
		{"moins de 5 faits, dernier fait", 3, 4, false},
		{"moins de 5 faits, premier fait", 0, 4, false},
		{"5 faits, le plus ancien", 4, 5, true},
		{"5 faits, le plus récent", 0, 5, false},
		{"5 faits, position intermédiaire", 2, 5, false},
		{"6 faits, 5e en remontant", 4, 6, true},
		{"6 faits, le plus ancien", 5, 6, false},
		{"12 faits, 5e position", 4, 12, true},
		{"12 faits, 10e position", 9, 12, true},
		{"12 faits, 11e position", 10, 12, false},
		{"index hors bornes", 7, 5, false},
		{"index négatif", -1, 10, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsTriggerPosition(tt.index, tt.total))
		})
	}
}

func TestAffectedWindow(t *testing.T) {
	ids := make([]string, 12)
	for i := range ids {
		ids[i] = fmt.Sprintf("f%d", i)
	}

	t.Run("fenêtre complète", func(t *testing.T) {
		got := AffectedWindow(ids, 4)
		assert.Equal(t, []string{"f4", "f5", "f6", "f7", "f8"}, got)
	})

	t.Run("fenêtre tronquée en fin de liste", func(t *testing.T) {
		got := AffectedWindow(ids, 9)
		assert.Equal(t, []string{"f9", "f10", "f11"}, got)
	})

	t.Run("déclencheur en dernière position", func(t *testing.T) {
		got := AffectedWindow(ids, 11)
		assert.Equal(t, []string{"f11"}, got)
	})

	t.Run("index hors bornes", func(t *testing.T) {
		assert.Nil(t, AffectedWindow(ids, 12))
		assert.Nil(t, AffectedWindow(ids, -1))
	})

	t.Run("la fenêtre est une copie", func(t *testing.T) {
		got := AffectedWindow(ids, 0)
		got[0] = "changed"
		assert.Equal(t, "f0", ids[0])
	})
}

func TestUnderSabotage(t *testing.T) {
	t.Run("aucun enregistrement", func(t *testing.T) {
		assert.False(t, UnderSabotage(nil))
	})

	t.Run("uniquement inactifs", func(t *testing.T) {
		records := []models.Sabotage{
			{IsActive: false},
			{IsActive: false},
		}
		assert.False(t, UnderSabotage(records))
	})

	t.Run("au moins un actif", func(t *testing.T) {
		records := []models.Sabotage{
			{IsActive: false},
			{IsActive: true},
		}
		assert.True(t, UnderSabotage(records))
	})
}
