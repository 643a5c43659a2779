package commands_test

import (
	"testing"

	"foodrun/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddCartItemCommand_ValidInput(t *testing.T) {
	cmd, err := commands.NewAddCartItemCommand("alice", "Burger King", "Burgers", "Whopper")
	require.NoError(t, err)
	assert.Equal(t, "alice", cmd.Customer())
	assert.Equal(t, "Burger King", cmd.Restaurant())
	assert.Equal(t, "Burgers", cmd.Category())
	assert.Equal(t, "Whopper", cmd.Food())
}

func TestNewAddCartItemCommand_EmptyCustomer(t *testing.T) {
	_, err := commands.NewAddCartItemCommand("", "Burger King", "Burgers", "Whopper")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrCustomerIsRequired)
}

func TestNewAddCartItemCommand_EmptyItemFields(t *testing.T) {
	_, err := commands.NewAddCartItemCommand("alice", "", "", "")
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrRestaurantIsRequired)
	assert.ErrorIs(t, err, commands.ErrCategoryIsRequired)
	assert.ErrorIs(t, err, commands.ErrFoodIsRequired)
}

func TestAddCartItemCommand_NotConstructed(t *testing.T) {
	cmd := commands.AddCartItemCommand{}
	err := cmd.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, commands.ErrAddCartItemCommandIsNotConstructed)
}
