package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeSimpleItem(t *testing.T) {
	item := MenuItem{ID: "falafel", Price: 10.90}
	item.Normalize()

	assert.Equal(t, KindSimple, item.Kind)
	assert.False(t, item.IsCombo())
}

func TestNormalizePortionedItem(t *testing.T) {
	item := MenuItem{
		ID: "homus",
		Options: &MenuOptions{
			Porcoes: []PortionOption{{ID: "p", Name: "Pequena", Price: 20}},
		},
	}
	item.Normalize()

	assert.Equal(t, KindPortioned, item.Kind)
}

func TestNormalizeCombo(t *testing.T) {
	item := MenuItem{
		ID: "combo-individual",
		Options: &MenuOptions{
			Lanches: []ComboChoice{{ID: "kibe-carne"}},
			Bebidas: []ComboChoice{{ID: "refrigerante"}},
		},
	}
	item.Normalize()

	assert.Equal(t, KindCombo, item.Kind)
	assert.True(t, item.IsCombo())
	assert.False(t, item.IsDoubleCombo())
}

func TestNormalizeDoubleComboFlag(t *testing.T) {
	item := MenuItem{
		ID: "combo-familia",
		Options: &MenuOptions{
			Lanches: []ComboChoice{{ID: "kibe-carne"}},
			Double:  true,
		},
	}
	item.Normalize()

	assert.True(t, item.IsDoubleCombo())
}

func TestNormalizeLegacyDuploMarker(t *testing.T) {
	// Documents written before the explicit flag only carry the id marker.
	item := MenuItem{
		ID: "combo-duplo",
		Options: &MenuOptions{
			Lanches: []ComboChoice{{ID: "kibe-carne"}},
		},
	}
	item.Normalize()

	assert.True(t, item.IsDoubleCombo())
	assert.True(t, item.Options.Double, "flag should be backfilled")
}

func TestNormalizeDuploMarkerIgnoredOutsideCombos(t *testing.T) {
	item := MenuItem{ID: "pao-duplo", Price: 8.90}
	item.Normalize()

	assert.Equal(t, KindSimple, item.Kind)
	assert.False(t, item.IsDoubleCombo())
}

func TestFindIngredientAndPortion(t *testing.T) {
	item := MenuItem{
		ID: "batata-frita",
		Ingredients: []Ingredient{
			{ID: "sal", Name: "Sal", Removable: true},
		},
		Options: &MenuOptions{
			Porcoes: []PortionOption{
				{ID: "media", Name: "Média", Price: 22.90},
			},
		},
	}

	assert.NotNil(t, item.FindIngredient("sal"))
	assert.Nil(t, item.FindIngredient("pimenta"))
	assert.NotNil(t, item.FindPortion("media"))
	assert.Nil(t, item.FindPortion("enorme"))
}
