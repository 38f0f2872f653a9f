package commands_test

import (
	"testing"

	"orderflow/internal/core/application/usecases/commands"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewApproveOrderCommand(t *testing.T) {
	t.Run("should create command with positive id", func(t *testing.T) {
		cmd, err := commands.NewApproveOrderCommand(42)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, int64(42), cmd.OrderID())
	})

	t.Run("should reject non-positive id", func(t *testing.T) {
		for _, id := range []int64{0, -1} {
			_, err := commands.NewApproveOrderCommand(id)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var cmd commands.ApproveOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrApproveOrderCommandIsNotConstructed)
	})
}

func TestNewRejectOrderCommand(t *testing.T) {
	t.Run("should create command with positive id", func(t *testing.T) {
		cmd, err := commands.NewRejectOrderCommand(42)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, int64(42), cmd.OrderID())
	})

	t.Run("should reject non-positive id", func(t *testing.T) {
		_, err := commands.NewRejectOrderCommand(0)
		require.Error(t, err)
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var cmd commands.RejectOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrRejectOrderCommandIsNotConstructed)
	})
}

func TestNewStartOrderValidationCommand(t *testing.T) {
	t.Run("should create command with positive id", func(t *testing.T) {
		cmd, err := commands.NewStartOrderValidationCommand(42)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, int64(42), cmd.OrderID())
	})

	t.Run("should reject non-positive id", func(t *testing.T) {
		_, err := commands.NewStartOrderValidationCommand(-7)
		require.Error(t, err)
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var cmd commands.StartOrderValidationCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrStartOrderValidationCommandIsNotConstructed)
	})
}

func TestNewValidateOrderCommand(t *testing.T) {
	t.Run("should create command with positive id", func(t *testing.T) {
		cmd, err := commands.NewValidateOrderCommand(42)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, int64(42), cmd.OrderID())
	})

	t.Run("should reject non-positive id", func(t *testing.T) {
		_, err := commands.NewValidateOrderCommand(0)
		require.Error(t, err)
	})

	t.Run("zero value should fail validation", func(t *testing.T) {
		var cmd commands.ValidateOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrValidateOrderCommandIsNotConstructed)
	})
}

func TestNewUpdateOrderCommand(t *testing.T) {
	intPtr := func(v int) *int { return &v }
	floatPtr := func(v float64) *float64 { return &v }
	strPtr := func(v string) *string { return &v }

	t.Run("should create command with all fields unset", func(t *testing.T) {
		cmd, err := commands.NewUpdateOrderCommand(1, nil, nil, nil, nil)

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Nil(t, cmd.ProductID())
		assert.Nil(t, cmd.Quantity())
		assert.Nil(t, cmd.Price())
		assert.Nil(t, cmd.Status())
	})

	t.Run("should parse the status name", func(t *testing.T) {
		cmd, err := commands.NewUpdateOrderCommand(1, nil, intPtr(3), floatPtr(9.5), strPtr("VALIDATED"))

		require.NoError(t, err)
		require.NotNil(t, cmd.Status())
		assert.Equal(t, "VALIDATED", cmd.Status().String())
	})

	t.Run("should reject non-positive quantity and price when set", func(t *testing.T) {
		_, err := commands.NewUpdateOrderCommand(1, nil, intPtr(0), nil, nil)
		require.Error(t, err)

		_, err = commands.NewUpdateOrderCommand(1, nil, nil, floatPtr(-1), nil)
		require.Error(t, err)
	})

	t.Run("should reject unknown status names", func(t *testing.T) {
		_, err := commands.NewUpdateOrderCommand(1, nil, nil, nil, strPtr("SHIPPED"))
		require.Error(t, err)
	})

	t.Run("should reject non-positive id", func(t *testing.T) {
		_, err := commands.NewUpdateOrderCommand(0, nil, nil, nil, nil)
		require.Error(t, err)
	})
}
