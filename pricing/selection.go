// Package pricing implements the menu item customization and pricing
// calculator: combo sub-item selection, removable and additional
// ingredients, portion tiers and the resulting unit price. Everything here
// is pure and side-effect free; it is safe to call from any number of
// concurrent sessions.
package pricing

import "SiriaExpress/models"

// ComboPicks holds the in-progress sandwich and beverage choices for a
// combo item. Lanche2 only applies to double combos.
type ComboPicks struct {
	Lanche1 string
	Lanche2 string
	Bebida  string
}

// Selection is the ephemeral per-session customization state. Additional
// ingredients are kept as full objects so the price travels with the pick.
type Selection struct {
	RemovedIngredients    []string
	AdditionalIngredients []models.Ingredient
	SelectedOption        string
	Combo                 ComboPicks
}

// NewSelection returns the initial selection for an item. The first portion
// tier is preselected when the item has portions, matching the storefront
// dialog's default.
func NewSelection(item *models.MenuItem) Selection {
	var sel Selection
	if item.Options != nil && len(item.Options.Porcoes) > 0 {
		sel.SelectedOption = item.Options.Porcoes[0].ID
	}
	return sel
}

// HasRemoved reports whether the ingredient id is in the removed set.
func (s *Selection) HasRemoved(id string) bool {
	for _, r := range s.RemovedIngredients {
		if r == id {
			return true
		}
	}
	return false
}

// HasAdditional reports whether an additional ingredient with the given id
// is selected.
func (s *Selection) HasAdditional(id string) bool {
	for i := range s.AdditionalIngredients {
		if s.AdditionalIngredients[i].ID == id {
			return true
		}
	}
	return false
}

// ToggleRemoved flips membership of the ingredient in the removed set.
// Ingredients that are not removable are ignored.
func (s *Selection) ToggleRemoved(ingredient models.Ingredient) {
	if !ingredient.Removable {
		return
	}
	for i, id := range s.RemovedIngredients {
		if id == ingredient.ID {
			s.RemovedIngredients = append(s.RemovedIngredients[:i], s.RemovedIngredients[i+1:]...)
			return
		}
	}
	s.RemovedIngredients = append(s.RemovedIngredients, ingredient.ID)
}

// ToggleAdditional flips membership of the ingredient in the additional
// set, keyed by id. Ingredients that are not additional are ignored.
func (s *Selection) ToggleAdditional(ingredient models.Ingredient) {
	if !ingredient.Additional {
		return
	}
	for i := range s.AdditionalIngredients {
		if s.AdditionalIngredients[i].ID == ingredient.ID {
			s.AdditionalIngredients = append(s.AdditionalIngredients[:i], s.AdditionalIngredients[i+1:]...)
			return
		}
	}
	s.AdditionalIngredients = append(s.AdditionalIngredients, ingredient)
}

// Clone returns an independent copy of the selection so a frozen cart line
// cannot be mutated through the live session.
func (s *Selection) Clone() Selection {
	out := Selection{
		SelectedOption: s.SelectedOption,
		Combo:          s.Combo,
	}
	if len(s.RemovedIngredients) > 0 {
		out.RemovedIngredients = append([]string(nil), s.RemovedIngredients...)
	}
	if len(s.AdditionalIngredients) > 0 {
		out.AdditionalIngredients = append([]models.Ingredient(nil), s.AdditionalIngredients...)
	}
	return out
}

// Customizations converts the selection into the persisted cart line shape.
func (s *Selection) Customizations(item *models.MenuItem) *models.Customizations {
	c := &models.Customizations{
		SelectedOption: s.SelectedOption,
	}
	if len(s.RemovedIngredients) > 0 {
		c.RemovedIngredients = append([]string(nil), s.RemovedIngredients...)
	}
	if len(s.AdditionalIngredients) > 0 {
		c.AdditionalIngredients = append([]models.Ingredient(nil), s.AdditionalIngredients...)
	}
	if item.IsCombo() {
		combo := &models.ComboSelections{
			Lanche1: s.Combo.Lanche1,
			Bebida:  s.Combo.Bebida,
		}
		if item.IsDoubleCombo() {
			combo.Lanche2 = s.Combo.Lanche2
		}
		c.ComboSelections = combo
	}
	return c
}
