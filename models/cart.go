package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ComboSelections holds the sandwich and beverage picks for a combo item.
// Lanche2 is only meaningful for double combos.
type ComboSelections struct {
	Lanche1 string `json:"lanche1" firestore:"lanche1"`
	Lanche2 string `json:"lanche2,omitempty" firestore:"lanche2,omitempty"`
	Bebida  string `json:"bebida,omitempty" firestore:"bebida,omitempty"`
}

// Customizations is the frozen per-line copy of what the customer chose.
// Additional ingredients travel as full objects because their price must
// survive later catalog edits.
type Customizations struct {
	RemovedIngredients    []string         `json:"removed_ingredients,omitempty" firestore:"removedIngredients,omitempty"`
	AdditionalIngredients []Ingredient     `json:"additional_ingredients,omitempty" firestore:"additionalIngredients,omitempty"`
	SelectedOption        string           `json:"selected_option,omitempty" firestore:"selectedOption,omitempty"`
	ComboSelections       *ComboSelections `json:"combo_selections,omitempty" firestore:"comboSelections,omitempty"`
}

// CartItem is a confirmed, priced line in the shopping cart. UnitPrice is
// computed by the pricing engine at confirmation time and never recomputed.
type CartItem struct {
	ID             string          `json:"id" firestore:"id"`
	MenuItemID     string          `json:"menu_item_id" firestore:"menuItemId"`
	Name           string          `json:"name" firestore:"name"`
	Quantity       int             `json:"quantity" firestore:"quantity"`
	UnitPrice      float64         `json:"unit_price" firestore:"unitPrice"`
	Customizations *Customizations `json:"customizations,omitempty" firestore:"customizations,omitempty"`
	CreatedAt      time.Time       `json:"created_at" firestore:"createdAt"`
}

// Subtotal returns unit price times quantity for this line.
func (c *CartItem) Subtotal() decimal.Decimal {
	return decimal.NewFromFloat(c.UnitPrice).Mul(decimal.NewFromInt(int64(c.Quantity)))
}

// CartTotal sums unit price times quantity over all lines, rounded to
// currency precision at the boundary only.
func CartTotal(items []CartItem) float64 {
	total := decimal.Zero
	for i := range items {
		total = total.Add(items[i].Subtotal())
	}
	return total.RoundBank(2).InexactFloat64()
}
