package pricing

import (
	"testing"

	"SiriaExpress/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func simpleItem() *models.MenuItem {
	item := &models.MenuItem{
		ID:    "kibe-carne",
		Name:  "Kibe de Carne",
		Price: 12.90,
		Ingredients: []models.Ingredient{
			{ID: "cebola", Name: "Cebola", Removable: true},
			{ID: "hortela", Name: "Hortelã", Removable: true},
			{ID: "queijo-extra", Name: "Queijo Extra", Additional: true, Price: 3.00},
			{ID: "carne-extra", Name: "Carne Extra", Additional: true, Price: 5.50},
			{ID: "trigo", Name: "Trigo"},
		},
	}
	item.Normalize()
	return item
}

func portionedItem() *models.MenuItem {
	item := &models.MenuItem{
		ID:    "homus",
		Name:  "Homus",
		Price: 18.90,
		Options: &models.MenuOptions{
			Porcoes: []models.PortionOption{
				{ID: "p", Name: "Pequena", Price: 20.00},
				{ID: "m", Name: "Média", Price: 35.00},
				{ID: "g", Name: "Grande", Price: 50.00},
			},
		},
	}
	item.Normalize()
	return item
}

func comboItem() *models.MenuItem {
	item := &models.MenuItem{
		ID:    "combo-individual",
		Name:  "Combo Individual",
		Price: 45.90,
		Options: &models.MenuOptions{
			Lanches: []models.ComboChoice{
				{ID: "kibe-carne", Name: "Kibe de Carne"},
				{ID: "falafel", Name: "Falafel"},
			},
			Bebidas: []models.ComboChoice{
				{ID: "refrigerante", Name: "Refrigerante"},
				{ID: "suco", Name: "Suco"},
			},
		},
	}
	item.Normalize()
	return item
}

func doubleComboItem() *models.MenuItem {
	item := comboItem()
	item.ID = "combo-duplo"
	item.Name = "Combo Duplo"
	item.Price = 79.90
	item.Options.Double = true
	return item
}

func TestComputeTotalBasePrice(t *testing.T) {
	item := simpleItem()
	sel := NewSelection(item)

	total := ComputeTotal(item, &sel)
	assert.True(t, total.Equal(decimal.NewFromFloat(12.90)), "got %s", total)
}

func TestComputeTotalAdditionals(t *testing.T) {
	item := simpleItem()
	sel := NewSelection(item)
	sel.ToggleAdditional(item.Ingredients[2]) // queijo extra, 3.00
	sel.ToggleRemoved(item.Ingredients[0])    // cebola, removable

	// 12.90 + 3.00; the removal never prices.
	total := ComputeTotal(item, &sel)
	assert.True(t, total.Equal(decimal.NewFromFloat(15.90)), "got %s", total)
}

func TestComputeTotalRemovalsNeverChangePrice(t *testing.T) {
	item := simpleItem()
	sel := NewSelection(item)
	base := ComputeTotal(item, &sel)

	sel.ToggleRemoved(item.Ingredients[0])
	sel.ToggleRemoved(item.Ingredients[1])
	assert.True(t, ComputeTotal(item, &sel).Equal(base))
}

func TestComputeTotalPortionOverridesBase(t *testing.T) {
	item := portionedItem()
	sel := NewSelection(item)

	// First portion preselected by default.
	assert.Equal(t, "p", sel.SelectedOption)
	assert.True(t, ComputeTotal(item, &sel).Equal(decimal.NewFromFloat(20.00)))

	sel.SelectedOption = "g"
	assert.True(t, ComputeTotal(item, &sel).Equal(decimal.NewFromFloat(50.00)))
}

func TestComputeTotalPortionPlusAdditionals(t *testing.T) {
	item := portionedItem()
	item.Ingredients = []models.Ingredient{
		{ID: "pao-extra", Name: "Pão Extra", Additional: true, Price: 4.00},
	}
	sel := NewSelection(item)
	sel.SelectedOption = "m"
	sel.ToggleAdditional(item.Ingredients[0])

	// Portion replaces base, additionals stack on top of the portion.
	total := ComputeTotal(item, &sel)
	assert.True(t, total.Equal(decimal.NewFromFloat(39.00)), "got %s", total)
}

func TestComputeTotalUnknownPortionFallsBack(t *testing.T) {
	item := portionedItem()
	sel := NewSelection(item)
	sel.SelectedOption = "stale-id"

	assert.True(t, ComputeTotal(item, &sel).Equal(decimal.NewFromFloat(18.90)))
}

func TestComputeTotalNegativeAdditionalIgnored(t *testing.T) {
	item := simpleItem()
	sel := NewSelection(item)
	sel.AdditionalIngredients = []models.Ingredient{
		{ID: "bad", Additional: true, Price: -2.00},
		{ID: "free", Additional: true},
	}

	assert.True(t, ComputeTotal(item, &sel).Equal(decimal.NewFromFloat(12.90)))
}

func TestComputeTotalIdempotent(t *testing.T) {
	item := doubleComboItem()
	sel := NewSelection(item)
	sel.Combo = ComboPicks{Lanche1: "kibe-carne", Lanche2: "falafel", Bebida: "suco"}

	first := ComputeTotal(item, &sel)
	second := ComputeTotal(item, &sel)
	assert.True(t, first.Equal(second))
}

func TestComputeTotalAccumulationStaysExact(t *testing.T) {
	item := &models.MenuItem{ID: "esfiha", Price: 0.10}
	item.Normalize()
	sel := NewSelection(item)
	for i := 0; i < 10; i++ {
		sel.AdditionalIngredients = append(sel.AdditionalIngredients, models.Ingredient{
			ID: string(rune('a' + i)), Additional: true, Price: 0.10,
		})
	}

	// 11 × 0.10 would drift under binary floats.
	assert.True(t, ComputeTotal(item, &sel).Equal(decimal.NewFromFloat(1.10)))
}

func TestValidateSimpleItemAlwaysPasses(t *testing.T) {
	item := simpleItem()
	sel := NewSelection(item)

	assert.True(t, Validate(item, &sel).OK)

	sel.ToggleRemoved(item.Ingredients[0])
	sel.ToggleAdditional(item.Ingredients[3])
	assert.True(t, Validate(item, &sel).OK)
}

func TestValidateComboRequiresSelections(t *testing.T) {
	item := comboItem()
	sel := NewSelection(item)

	result := Validate(item, &sel)
	require.False(t, result.OK)
	assert.Equal(t, ReasonMissingLanche, result.Reason)

	sel.Combo.Lanche1 = "kibe-carne"
	result = Validate(item, &sel)
	require.False(t, result.OK)
	assert.Equal(t, ReasonMissingBebida, result.Reason)

	sel.Combo.Bebida = "refrigerante"
	assert.True(t, Validate(item, &sel).OK)
}

func TestValidateComboWithoutOptions(t *testing.T) {
	// Kind may be set directly on hand-built items without going through
	// Normalize; a combo with no options must not panic.
	item := &models.MenuItem{ID: "combo-vazio", Name: "Combo", Price: 25, Kind: models.KindCombo}
	sel := NewSelection(item)

	result := Validate(item, &sel)
	require.False(t, result.OK)
	assert.Equal(t, ReasonMissingLanche, result.Reason)

	sel.Combo.Lanche1 = "kibe-carne"
	assert.True(t, Validate(item, &sel).OK)
}

func TestValidateDoubleComboRequiresSecondLanche(t *testing.T) {
	item := doubleComboItem()
	sel := NewSelection(item)
	sel.Combo = ComboPicks{Lanche1: "kibe-carne", Bebida: "suco"}

	result := Validate(item, &sel)
	require.False(t, result.OK)
	assert.Equal(t, ReasonMissingLanche2, result.Reason)

	sel.Combo.Lanche2 = "kibe-carne" // same sandwich twice is allowed
	assert.True(t, Validate(item, &sel).OK)
}

func TestValidatePortionRequired(t *testing.T) {
	item := portionedItem()
	sel := NewSelection(item)
	sel.SelectedOption = ""

	result := Validate(item, &sel)
	require.False(t, result.OK)
	assert.Equal(t, ReasonMissingPortion, result.Reason)

	for _, id := range []string{"p", "m", "g"} {
		sel.SelectedOption = id
		assert.True(t, Validate(item, &sel).OK)
	}
}

func TestValidatePortionMustExist(t *testing.T) {
	item := portionedItem()
	sel := NewSelection(item)
	sel.SelectedOption = "stale-id"

	result := Validate(item, &sel)
	require.False(t, result.OK)
	assert.Equal(t, ReasonMissingPortion, result.Reason)
}

func TestToggleGuards(t *testing.T) {
	item := simpleItem()
	sel := NewSelection(item)

	// trigo is neither removable nor additional; both toggles ignore it.
	sel.ToggleRemoved(item.Ingredients[4])
	sel.ToggleAdditional(item.Ingredients[4])
	assert.Empty(t, sel.RemovedIngredients)
	assert.Empty(t, sel.AdditionalIngredients)

	// A removable-only ingredient cannot be added as an extra.
	sel.ToggleAdditional(item.Ingredients[0])
	assert.Empty(t, sel.AdditionalIngredients)
}

func TestToggleFlipsMembership(t *testing.T) {
	item := simpleItem()
	sel := NewSelection(item)

	sel.ToggleRemoved(item.Ingredients[0])
	assert.True(t, sel.HasRemoved("cebola"))
	sel.ToggleRemoved(item.Ingredients[0])
	assert.False(t, sel.HasRemoved("cebola"))

	sel.ToggleAdditional(item.Ingredients[2])
	assert.True(t, sel.HasAdditional("queijo-extra"))
	sel.ToggleAdditional(item.Ingredients[2])
	assert.False(t, sel.HasAdditional("queijo-extra"))
}
