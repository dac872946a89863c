package commands_test

import (
	"testing"

	"store/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAddLineItemCommand(t *testing.T) {
	cmd, err := commands.NewAddLineItemCommand(7, 2, 3)

	require.NoError(t, err)
	assert.NoError(t, cmd.Validate())
	assert.Equal(t, int64(7), cmd.PersonID())
	assert.Equal(t, int64(2), cmd.ItemID())
	assert.Equal(t, 3, cmd.Quantity())
}

func TestNewAddLineItemCommand_Invalid(t *testing.T) {
	_, err := commands.NewAddLineItemCommand(0, 2, 3)
	assert.ErrorIs(t, err, commands.ErrPersonIDIsInvalid)

	_, err = commands.NewAddLineItemCommand(7, 0, 3)
	assert.ErrorIs(t, err, commands.ErrItemIDIsInvalid)

	_, err = commands.NewAddLineItemCommand(7, 2, 0)
	assert.ErrorIs(t, err, commands.ErrQuantityIsInvalid)

	_, err = commands.NewAddLineItemCommand(7, 2, -1)
	assert.ErrorIs(t, err, commands.ErrQuantityIsInvalid)
}

func TestAddLineItemCommand_NotConstructed(t *testing.T) {
	var cmd commands.AddLineItemCommand
	assert.ErrorIs(t, cmd.Validate(), commands.ErrAddLineItemCommandIsNotConstructed)
}
