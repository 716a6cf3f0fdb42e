package pricing

import (
	"errors"
	"time"

	"SiriaExpress/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type SessionState string

const (
	StateEditing   SessionState = "editing"
	StateConfirmed SessionState = "confirmed"
	StateCancelled SessionState = "cancelled"
)

// ErrSessionClosed is returned when a confirmed or cancelled session is
// mutated or confirmed again.
var ErrSessionClosed = errors.New("customization session already closed")

// Session tracks one customization dialog from open to confirm or cancel.
// The item snapshot is immutable for the session's lifetime; all mutation
// goes through the toggle and select methods while the session is editing.
type Session struct {
	Item      *models.MenuItem
	Selection Selection
	State     SessionState
}

// NewSession opens a customization session for an item. The item must
// already be normalized by the catalog load.
func NewSession(item *models.MenuItem) *Session {
	return &Session{
		Item:      item,
		Selection: NewSelection(item),
		State:     StateEditing,
	}
}

// Total prices the current selection.
func (s *Session) Total() decimal.Decimal {
	return ComputeTotal(s.Item, &s.Selection)
}

// Validate checks the current selection against the item's required
// choices.
func (s *Session) Validate() ValidationResult {
	return Validate(s.Item, &s.Selection)
}

// ToggleRemoved flips a removable ingredient while editing.
func (s *Session) ToggleRemoved(ingredient models.Ingredient) error {
	if s.State != StateEditing {
		return ErrSessionClosed
	}
	s.Selection.ToggleRemoved(ingredient)
	return nil
}

// ToggleAdditional flips an additional ingredient while editing.
func (s *Session) ToggleAdditional(ingredient models.Ingredient) error {
	if s.State != StateEditing {
		return ErrSessionClosed
	}
	s.Selection.ToggleAdditional(ingredient)
	return nil
}

// SelectPortion sets the chosen portion tier while editing.
func (s *Session) SelectPortion(id string) error {
	if s.State != StateEditing {
		return ErrSessionClosed
	}
	s.Selection.SelectedOption = id
	return nil
}

// SelectCombo sets the combo picks while editing.
func (s *Session) SelectCombo(picks ComboPicks) error {
	if s.State != StateEditing {
		return ErrSessionClosed
	}
	s.Selection.Combo = picks
	return nil
}

// Confirm freezes the selection into a cart line item. A failed validation
// keeps the session editing and returns the result so the caller can show
// the prompt; only a successful validation transitions to confirmed.
func (s *Session) Confirm(quantity int) (*models.CartItem, ValidationResult, error) {
	if s.State != StateEditing {
		return nil, ValidationResult{}, ErrSessionClosed
	}
	if quantity < 1 {
		quantity = 1
	}

	result := s.Validate()
	if !result.OK {
		return nil, result, nil
	}

	s.State = StateConfirmed
	frozen := s.Selection.Clone()
	line := &models.CartItem{
		ID:             uuid.NewString(),
		MenuItemID:     s.Item.ID,
		Name:           s.Item.Name,
		Quantity:       quantity,
		UnitPrice:      ComputeTotal(s.Item, &frozen).InexactFloat64(),
		Customizations: frozen.Customizations(s.Item),
		CreatedAt:      time.Now(),
	}
	return line, result, nil
}

// Cancel discards the session with no side effects.
func (s *Session) Cancel() {
	if s.State == StateEditing {
		s.State = StateCancelled
	}
}
