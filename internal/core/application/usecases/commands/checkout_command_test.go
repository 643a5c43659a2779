package commands_test

import (
	"testing"

	"foodrun/internal/core/application/usecases/commands"
	"foodrun/internal/core/domain/model/order"
	"foodrun/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCheckoutCommand_ValidInput(t *testing.T) {
	tip := mustMoney(t, 2.5)
	cmd, err := commands.NewCheckoutCommand("alice", "12 Elm St", order.PaymentCash, tip)
	require.NoError(t, err)
	assert.Equal(t, "alice", cmd.Customer())
	assert.Equal(t, "12 Elm St", cmd.Dropoff())
	assert.Equal(t, order.PaymentCash, cmd.Payment())
	assert.True(t, tip.Equal(cmd.Tip()))
}

func TestNewCheckoutCommand_EmptyDropoff(t *testing.T) {
	_, err := commands.NewCheckoutCommand("alice", "", order.PaymentCash, mustMoney(t, 0))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
}

func TestNewCheckoutCommand_UnsupportedPayment(t *testing.T) {
	_, err := commands.NewCheckoutCommand("alice", "12 Elm St", order.PaymentUnknown, mustMoney(t, 0))
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestCheckoutCommand_NotConstructed(t *testing.T) {
	cmd := commands.CheckoutCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCheckoutCommandIsNotConstructed)
}
