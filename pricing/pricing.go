package pricing

import (
	"SiriaExpress/models"

	"github.com/shopspring/decimal"
)

// Reason identifies the first validation rule a selection violates.
type Reason string

const (
	ReasonNone           Reason = ""
	ReasonMissingLanche  Reason = "missing_lanche"
	ReasonMissingLanche2 Reason = "missing_second_lanche"
	ReasonMissingBebida  Reason = "missing_bebida"
	ReasonMissingPortion Reason = "missing_portion"
)

type ValidationResult struct {
	OK      bool   `json:"ok"`
	Reason  Reason `json:"reason,omitempty"`
	Message string `json:"message,omitempty"`
}

func valid() ValidationResult {
	return ValidationResult{OK: true}
}

func invalid(reason Reason, message string) ValidationResult {
	return ValidationResult{Reason: reason, Message: message}
}

// Validate checks that every required choice has been made. It never fails
// on ingredient toggles, which are always optional. The returned message is
// the user-facing prompt shown inline by the customization dialog.
func Validate(item *models.MenuItem, sel *Selection) ValidationResult {
	if item.IsCombo() {
		if sel.Combo.Lanche1 == "" {
			return invalid(ReasonMissingLanche, "Por favor, selecione o lanche")
		}
		if item.Options == nil {
			// Kind can be set directly on hand-built items; without options
			// there are no drink choices left to require.
			return valid()
		}
		if item.IsDoubleCombo() && sel.Combo.Lanche2 == "" {
			return invalid(ReasonMissingLanche2, "Por favor, selecione o segundo lanche")
		}
		if len(item.Options.Bebidas) > 0 && sel.Combo.Bebida == "" {
			return invalid(ReasonMissingBebida, "Por favor, selecione a bebida")
		}
	}

	if item.Options != nil && len(item.Options.Porcoes) > 0 {
		if sel.SelectedOption == "" || item.FindPortion(sel.SelectedOption) == nil {
			return invalid(ReasonMissingPortion, "Por favor, selecione o tamanho")
		}
	}

	return valid()
}

// ComputeTotal returns the unit price for the item under the given
// selection, rounded to currency precision.
//
// The selected portion tier replaces the base price, it does not add to it.
// Additional ingredients add their price on top; missing or negative prices
// contribute zero. Removed ingredients never change the price: removal is a
// preparation instruction, not a pricing input. A selected portion id that
// matches no known tier falls back to the base price so the total is never
// undefined.
func ComputeTotal(item *models.MenuItem, sel *Selection) decimal.Decimal {
	base := decimal.NewFromFloat(item.Price)

	if sel.SelectedOption != "" {
		if portion := item.FindPortion(sel.SelectedOption); portion != nil {
			base = decimal.NewFromFloat(portion.Price)
		}
	}

	additionals := decimal.Zero
	for i := range sel.AdditionalIngredients {
		price := decimal.NewFromFloat(sel.AdditionalIngredients[i].Price)
		if price.IsNegative() {
			continue
		}
		additionals = additionals.Add(price)
	}

	return base.Add(additionals).RoundBank(2)
}
