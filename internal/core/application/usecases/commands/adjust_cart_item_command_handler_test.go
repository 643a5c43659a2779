package commands_test

import (
	"testing"

	"foodrun/internal/core/application/usecases/commands"
	"foodrun/internal/core/domain/services"
	"foodrun/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedCart(t *testing.T, carts *memCartRepository, customer string, foods ...string) {
	t.Helper()
	h := commands.NewAddCartItemCommandHandler(carts, services.NewCatalog())
	for _, food := range foods {
		cmd, err := commands.NewAddCartItemCommand(customer, "Pizza Place", "Pizza", food)
		require.NoError(t, err)
		require.NoError(t, h.Handle(t.Context(), cmd))
	}
}

func TestAdjustCartItemCommandHandler_Handle_Increment(t *testing.T) {
	ctx := t.Context()
	carts := newMemCartRepository()
	seedCart(t, carts, "alice", "Margherita")

	h := commands.NewAdjustCartItemCommandHandler(carts)
	cmd, err := commands.NewAdjustCartItemCommand("alice", 0, 1)
	require.NoError(t, err)
	require.NoError(t, h.Handle(ctx, cmd))

	aggregate, err := carts.GetOrCreate(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, 2, aggregate.Lines()[0].Quantity())
}

func TestAdjustCartItemCommandHandler_Handle_DecrementFloorsAtOne(t *testing.T) {
	ctx := t.Context()
	carts := newMemCartRepository()
	seedCart(t, carts, "alice", "Margherita")

	h := commands.NewAdjustCartItemCommandHandler(carts)
	cmd, err := commands.NewAdjustCartItemCommand("alice", 0, -1)
	require.NoError(t, err)
	require.NoError(t, h.Handle(ctx, cmd))

	aggregate, err := carts.GetOrCreate(ctx, "alice")
	require.NoError(t, err)
	require.Equal(t, 1, aggregate.Len())
	assert.Equal(t, 1, aggregate.Lines()[0].Quantity())
}

func TestAdjustCartItemCommandHandler_Handle_IndexOutOfRange(t *testing.T) {
	ctx := t.Context()
	carts := newMemCartRepository()
	seedCart(t, carts, "alice", "Margherita")

	h := commands.NewAdjustCartItemCommandHandler(carts)
	cmd, err := commands.NewAdjustCartItemCommand("alice", 5, 1)
	require.NoError(t, err)

	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
