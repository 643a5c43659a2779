package commands_test

import (
	"testing"

	"foodrun/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAdjustCartItemCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewAdjustCartItemCommand("alice", 2, -1)
	require.NoError(t, err)
	assert.Equal(t, "alice", cmd.Customer())
	assert.Equal(t, 2, cmd.LineIndex())
	assert.Equal(t, -1, cmd.Delta())
}

func TestNewAdjustCartItemCommand_NegativeIndex(t *testing.T) {
	_, err := commands.NewAdjustCartItemCommand("alice", -1, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrLineIndexIsInvalid)
}

func TestNewAdjustCartItemCommand_BadDelta(t *testing.T) {
	for _, delta := range []int{0, 2, -2, 10} {
		_, err := commands.NewAdjustCartItemCommand("alice", 0, delta)
		require.Error(t, err)
		assert.ErrorIs(t, err, commands.ErrDeltaIsInvalid)
	}
}

func TestNewAdjustCartItemCommand_EmptyCustomer(t *testing.T) {
	_, err := commands.NewAdjustCartItemCommand("", 0, 1)
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCustomerIsRequired)
}
