package models

import "strings"

// ItemKind is decided once when an item is loaded or written, so the
// customization flow never has to re-derive the shape from id strings.
type ItemKind string

const (
	KindSimple    ItemKind = "simple"
	KindPortioned ItemKind = "portioned"
	KindCombo     ItemKind = "combo"
)

type Category struct {
	ID        string `json:"id" firestore:"id"`
	Name      string `json:"name" firestore:"name"`
	Slug      string `json:"slug" firestore:"slug"`
	CreatedAt string `json:"created_at,omitempty" firestore:"createdAt,omitempty"`
}

// Ingredient belongs to exactly one menu item. Removable means the customer
// may opt out of it at no price change; Additional means it can be added for
// an extra charge. Neither flag set means informational only.
type Ingredient struct {
	ID         string  `json:"id" firestore:"id"`
	Name       string  `json:"name" firestore:"name"`
	Removable  bool    `json:"removable" firestore:"removable"`
	Additional bool    `json:"additional" firestore:"additional"`
	Price      float64 `json:"price,omitempty" firestore:"price,omitempty"`
}

// PortionOption is a mutually exclusive size tier. The selected tier's price
// replaces the item's base price, it is not added to it.
type PortionOption struct {
	ID    string  `json:"id" firestore:"id"`
	Name  string  `json:"name" firestore:"name"`
	Price float64 `json:"price" firestore:"price"`
}

// ComboChoice is one selectable sub-item of a combo (a sandwich or a drink).
type ComboChoice struct {
	ID   string `json:"id" firestore:"id"`
	Name string `json:"name" firestore:"name"`
}

// MenuOptions carries the customization lists for an item. Presence of
// Lanches marks the item as a combo; Double marks a two-sandwich combo.
type MenuOptions struct {
	Porcoes []PortionOption `json:"porcoes,omitempty" firestore:"porcoes,omitempty"`
	Lanches []ComboChoice   `json:"lanches,omitempty" firestore:"lanches,omitempty"`
	Bebidas []ComboChoice   `json:"bebidas,omitempty" firestore:"bebidas,omitempty"`
	Double  bool            `json:"double,omitempty" firestore:"double,omitempty"`
}

type MenuItem struct {
	ID              string       `json:"id" firestore:"id"`
	Name            string       `json:"name" firestore:"name"`
	Description     string       `json:"description,omitempty" firestore:"description,omitempty"`
	Price           float64      `json:"price" firestore:"price"`
	ImageURL        string       `json:"image_url,omitempty" firestore:"imageUrl,omitempty"`
	CategoryID      string       `json:"category_id" firestore:"categoryId"`
	Available       bool         `json:"available" firestore:"available"`
	PreparationTime string       `json:"preparation_time,omitempty" firestore:"preparationTime,omitempty"`
	ServePeople     int          `json:"serve_people,omitempty" firestore:"servePeople,omitempty"`
	Rating          float64      `json:"rating,omitempty" firestore:"rating,omitempty"`
	Kind            ItemKind     `json:"kind" firestore:"kind"`
	Options         *MenuOptions `json:"options,omitempty" firestore:"options,omitempty"`
	Ingredients     []Ingredient `json:"ingredients,omitempty" firestore:"ingredients,omitempty"`
	CreatedAt       string       `json:"created_at,omitempty" firestore:"createdAt,omitempty"`
	UpdatedAt       string       `json:"updated_at,omitempty" firestore:"updatedAt,omitempty"`
}

// Normalize fills in Kind from the options structure. Documents written
// before the explicit double flag existed are recognized by the historical
// "duplo" id marker; everything downstream reads the flag, never the id.
func (m *MenuItem) Normalize() {
	switch {
	case m.Options != nil && len(m.Options.Lanches) > 0:
		m.Kind = KindCombo
		if !m.Options.Double && strings.Contains(m.ID, "duplo") {
			m.Options.Double = true
		}
	case m.Options != nil && len(m.Options.Porcoes) > 0:
		m.Kind = KindPortioned
	default:
		m.Kind = KindSimple
	}
}

// IsCombo reports whether the item bundles sandwich selections.
func (m *MenuItem) IsCombo() bool {
	return m.Kind == KindCombo
}

// IsDoubleCombo reports whether the combo requires two sandwich selections.
func (m *MenuItem) IsDoubleCombo() bool {
	return m.Kind == KindCombo && m.Options != nil && m.Options.Double
}

// FindIngredient returns the item ingredient with the given id, or nil.
func (m *MenuItem) FindIngredient(id string) *Ingredient {
	for i := range m.Ingredients {
		if m.Ingredients[i].ID == id {
			return &m.Ingredients[i]
		}
	}
	return nil
}

// FindPortion returns the portion option with the given id, or nil.
func (m *MenuItem) FindPortion(id string) *PortionOption {
	if m.Options == nil {
		return nil
	}
	for i := range m.Options.Porcoes {
		if m.Options.Porcoes[i].ID == id {
			return &m.Options.Porcoes[i]
		}
	}
	return nil
}
