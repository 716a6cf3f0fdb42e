package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionConfirmFreezesLineItem(t *testing.T) {
	item := simpleItem()
	session := NewSession(item)

	require.NoError(t, session.ToggleAdditional(item.Ingredients[2])) // +3.00
	require.NoError(t, session.ToggleRemoved(item.Ingredients[0]))

	line, result, err := session.Confirm(2)
	require.NoError(t, err)
	require.True(t, result.OK)
	require.NotNil(t, line)

	assert.Equal(t, StateConfirmed, session.State)
	assert.Equal(t, "kibe-carne", line.MenuItemID)
	assert.Equal(t, 2, line.Quantity)
	assert.InDelta(t, 15.90, line.UnitPrice, 0.001)
	assert.Equal(t, []string{"cebola"}, line.Customizations.RemovedIngredients)
	assert.NotEmpty(t, line.ID)
}

func TestSessionConfirmBlockedByValidation(t *testing.T) {
	item := comboItem()
	session := NewSession(item)

	line, result, err := session.Confirm(1)
	require.NoError(t, err)
	assert.Nil(t, line)
	assert.False(t, result.OK)
	assert.Equal(t, ReasonMissingLanche, result.Reason)

	// Session stays editing; completing the picks lets it through.
	assert.Equal(t, StateEditing, session.State)
	require.NoError(t, session.SelectCombo(ComboPicks{Lanche1: "kibe-carne", Bebida: "refrigerante"}))

	line, result, err = session.Confirm(1)
	require.NoError(t, err)
	require.True(t, result.OK)
	assert.InDelta(t, 45.90, line.UnitPrice, 0.001)
	assert.Equal(t, "kibe-carne", line.Customizations.ComboSelections.Lanche1)
	assert.Empty(t, line.Customizations.ComboSelections.Lanche2)
}

func TestSessionClosedRejectsMutation(t *testing.T) {
	item := simpleItem()
	session := NewSession(item)

	_, _, err := session.Confirm(1)
	require.NoError(t, err)

	assert.ErrorIs(t, session.ToggleRemoved(item.Ingredients[0]), ErrSessionClosed)
	assert.ErrorIs(t, session.SelectPortion("p"), ErrSessionClosed)
	_, _, err = session.Confirm(1)
	assert.ErrorIs(t, err, ErrSessionClosed)
}

func TestSessionCancelDiscards(t *testing.T) {
	item := portionedItem()
	session := NewSession(item)

	session.Cancel()
	assert.Equal(t, StateCancelled, session.State)

	_, _, err := session.Confirm(1)
	assert.ErrorIs(t, err, ErrSessionClosed)
}

func TestSessionMinimumQuantity(t *testing.T) {
	session := NewSession(simpleItem())

	line, _, err := session.Confirm(0)
	require.NoError(t, err)
	assert.Equal(t, 1, line.Quantity)
}
