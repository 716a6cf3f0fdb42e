package services

import (
	"testing"

	"SiriaExpress/models"
	"SiriaExpress/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func customizableItem() *models.MenuItem {
	item := &models.MenuItem{
		ID:    "kibe-carne",
		Name:  "Kibe de Carne",
		Price: 12.90,
		Ingredients: []models.Ingredient{
			{ID: "cebola", Name: "Cebola", Removable: true},
			{ID: "queijo-extra", Name: "Queijo Extra", Additional: true, Price: 3.00},
		},
	}
	item.Normalize()
	return item
}

func TestApplyCustomizationResolvesServerSidePrices(t *testing.T) {
	item := customizableItem()
	session := pricing.NewSession(item)

	err := applyCustomization(session, item, CustomizationRequest{
		RemovedIngredients:    []string{"cebola"},
		AdditionalIngredients: []string{"queijo-extra"},
	})
	require.NoError(t, err)

	line, result, err := session.Confirm(1)
	require.NoError(t, err)
	require.True(t, result.OK)

	// Price comes from the catalog, regardless of anything the client sent.
	assert.InDelta(t, 15.90, line.UnitPrice, 0.001)
	assert.InDelta(t, 3.00, line.Customizations.AdditionalIngredients[0].Price, 0.001)
}

func TestApplyCustomizationIgnoresStaleIngredientIDs(t *testing.T) {
	item := customizableItem()
	session := pricing.NewSession(item)

	err := applyCustomization(session, item, CustomizationRequest{
		RemovedIngredients:    []string{"deleted-long-ago"},
		AdditionalIngredients: []string{"also-gone"},
	})
	require.NoError(t, err)

	line, result, err := session.Confirm(1)
	require.NoError(t, err)
	require.True(t, result.OK)
	assert.InDelta(t, 12.90, line.UnitPrice, 0.001)
}

func TestApplyCustomizationComboSelections(t *testing.T) {
	item := &models.MenuItem{
		ID:    "combo-individual",
		Name:  "Combo Individual",
		Price: 45.90,
		Options: &models.MenuOptions{
			Lanches: []models.ComboChoice{{ID: "kibe-carne"}, {ID: "falafel"}},
			Bebidas: []models.ComboChoice{{ID: "refrigerante"}},
		},
	}
	item.Normalize()
	session := pricing.NewSession(item)

	err := applyCustomization(session, item, CustomizationRequest{
		ComboSelections: &models.ComboSelections{
			Lanche1: "kibe-carne",
			Bebida:  "refrigerante",
		},
	})
	require.NoError(t, err)

	line, result, err := session.Confirm(1)
	require.NoError(t, err)
	require.True(t, result.OK)
	assert.Equal(t, "kibe-carne", line.Customizations.ComboSelections.Lanche1)
}

func TestSeedCatalogShapes(t *testing.T) {
	var byID = map[string]models.MenuItem{}
	for _, item := range DefaultMenu() {
		item.Normalize()
		byID[item.ID] = item
	}

	require.Contains(t, byID, "combo-duplo")
	duplo := byID["combo-duplo"]
	assert.True(t, duplo.IsDoubleCombo())
	individual := byID["combo-individual"]
	assert.False(t, individual.IsDoubleCombo())
	assert.Equal(t, models.KindPortioned, byID["batata-frita"].Kind)
	assert.Equal(t, models.KindSimple, byID["pao-sirio"].Kind)

	// Every seeded item points at a seeded category.
	categories := map[string]bool{}
	for _, c := range DefaultCategories() {
		categories[c.ID] = true
	}
	for id, item := range byID {
		assert.True(t, categories[item.CategoryID], "item %s has unknown category %s", id, item.CategoryID)
	}
}
