package order_test

import (
	"fmt"
	"testing"

	"orderflow/internal/core/domain/model/order"
	"orderflow/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Constants(t *testing.T) {
	t.Run("should have correct enum values", func(t *testing.T) {
		assert.Equal(t, 0, int(order.Unknown))
		assert.Equal(t, 1, int(order.Created))
		assert.Equal(t, 2, int(order.Validated))
		assert.Equal(t, 3, int(order.Approved))
		assert.Equal(t, 4, int(order.Rejected))
	})

	t.Run("should have distinct values", func(t *testing.T) {
		statuses := []order.Status{
			order.Unknown,
			order.Created,
			order.Validated,
			order.Approved,
			order.Rejected,
		}

		for i, status1 := range statuses {
			for j, status2 := range statuses {
				if i != j {
					assert.NotEqual(t, status1, status2,
						"statuses at indices %d and %d should be different", i, j)
				}
			}
		}
	})
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		validStatuses := []order.Status{
			order.Created,
			order.Validated,
			order.Approved,
			order.Rejected,
		}

		for _, status := range validStatuses {
			t.Run(fmt.Sprintf("should validate %s status", status.String()), func(t *testing.T) {
				err := status.Validate()
				require.NoError(t, err)
			})
		}
	})

	t.Run("should reject Unknown status", func(t *testing.T) {
		err := order.Unknown.Validate()

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		assert.Contains(t, err.Error(), "status is invalid")
		assert.Contains(t, err.Error(), "0 is not a valid status")
	})

	t.Run("should reject invalid status values", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Status(-1),
			order.Status(5),
			order.Status(100),
		}

		for _, status := range invalidStatuses {
			t.Run(fmt.Sprintf("should reject status value %d", int(status)), func(t *testing.T) {
				err := status.Validate()

				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Contains(t, err.Error(), "status is invalid")
				assert.Contains(t, err.Error(), fmt.Sprintf("%d is not a valid status", int(status)))
			})
		}
	})
}

func TestStatus_String(t *testing.T) {
	t.Run("should return correct string for valid statuses", func(t *testing.T) {
		testCases := []struct {
			status   order.Status
			expected string
		}{
			{order.Created, "CREATED"},
			{order.Validated, "VALIDATED"},
			{order.Approved, "APPROVED"},
			{order.Rejected, "REJECTED"},
		}

		for _, tc := range testCases {
			t.Run(fmt.Sprintf("should return %s for %d", tc.expected, int(tc.status)), func(t *testing.T) {
				assert.Equal(t, tc.expected, tc.status.String())
			})
		}
	})

	t.Run("should return UNKNOWN for invalid statuses", func(t *testing.T) {
		invalidStatuses := []order.Status{
			order.Unknown,
			order.Status(-1),
			order.Status(5),
		}

		for _, status := range invalidStatuses {
			assert.Equal(t, "UNKNOWN", status.String())
		}
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse valid status names", func(t *testing.T) {
		testCases := []struct {
			name     string
			expected order.Status
		}{
			{"CREATED", order.Created},
			{"VALIDATED", order.Validated},
			{"APPROVED", order.Approved},
			{"REJECTED", order.Rejected},
		}

		for _, tc := range testCases {
			status, err := order.StatusFromString(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, status)
		}
	})

	t.Run("should reject invalid status names", func(t *testing.T) {
		for _, name := range []string{"", "UNKNOWN", "created", "SHIPPED"} {
			status, err := order.StatusFromString(name)

			require.Error(t, err)
			assert.Equal(t, order.Unknown, status)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		}
	})

	t.Run("should round-trip with String", func(t *testing.T) {
		for _, s := range []order.Status{order.Created, order.Validated, order.Approved, order.Rejected} {
			parsed, err := order.StatusFromString(s.String())
			require.NoError(t, err)
			assert.Equal(t, s, parsed)
		}
	})
}

func TestStatus_CanTransitionTo(t *testing.T) {
	t.Run("should allow workflow transitions from CREATED", func(t *testing.T) {
		assert.True(t, order.Created.CanTransitionTo(order.Validated))
		assert.True(t, order.Created.CanTransitionTo(order.Rejected))
		assert.False(t, order.Created.CanTransitionTo(order.Approved))
		assert.False(t, order.Created.CanTransitionTo(order.Created))
	})

	t.Run("should allow workflow transitions from VALIDATED", func(t *testing.T) {
		assert.True(t, order.Validated.CanTransitionTo(order.Approved))
		assert.True(t, order.Validated.CanTransitionTo(order.Rejected))
		assert.False(t, order.Validated.CanTransitionTo(order.Validated))
		assert.False(t, order.Validated.CanTransitionTo(order.Created))
	})

	t.Run("should deny every transition from terminal statuses", func(t *testing.T) {
		terminal := []order.Status{order.Approved, order.Rejected}
		targets := []order.Status{order.Created, order.Validated, order.Approved, order.Rejected}

		for _, from := range terminal {
			for _, to := range targets {
				assert.False(t, from.CanTransitionTo(to),
					"%s -> %s should be denied", from, to)
			}
		}
	})

	t.Run("should deny every transition from statuses outside the table", func(t *testing.T) {
		outside := []order.Status{order.Unknown, order.Status(-1), order.Status(5)}
		targets := []order.Status{order.Created, order.Validated, order.Approved, order.Rejected}

		for _, from := range outside {
			for _, to := range targets {
				assert.False(t, from.CanTransitionTo(to))
			}
		}
	})
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, order.Created.IsTerminal())
	assert.False(t, order.Validated.IsTerminal())
	assert.True(t, order.Approved.IsTerminal())
	assert.True(t, order.Rejected.IsTerminal())
	assert.False(t, order.Unknown.IsTerminal())
}

func TestStatus_AllowedSources(t *testing.T) {
	t.Run("should list sources in workflow order", func(t *testing.T) {
		assert.Equal(t, []order.Status{order.Created}, order.AllowedSources(order.Validated))
		assert.Equal(t, []order.Status{order.Validated}, order.AllowedSources(order.Approved))
		assert.Equal(t, []order.Status{order.Created, order.Validated}, order.AllowedSources(order.Rejected))
	})

	t.Run("should return no sources for unreachable targets", func(t *testing.T) {
		assert.Empty(t, order.AllowedSources(order.Created))
		assert.Empty(t, order.AllowedSources(order.Unknown))
	})
}

func TestStatus_TransitionTo(t *testing.T) {
	t.Run("should perform allowed transitions", func(t *testing.T) {
		newStatus, err := order.Created.TransitionTo(order.Validated, "validate")
		require.NoError(t, err)
		assert.Equal(t, order.Validated, newStatus)

		newStatus, err = order.Validated.TransitionTo(order.Approved, "approve")
		require.NoError(t, err)
		assert.Equal(t, order.Approved, newStatus)
	})

	t.Run("should reject denied transitions with named statuses", func(t *testing.T) {
		newStatus, err := order.Created.TransitionTo(order.Approved, "approve")

		require.Error(t, err)
		assert.Equal(t, order.Status(0), newStatus)
		assert.IsType(t, &errs.InvalidTransitionError{}, err)
		assert.ErrorIs(t, err, errs.ErrInvalidTransition)
		assert.Equal(t, "cannot approve order in status 'CREATED': must be 'VALIDATED'", err.Error())
	})

	t.Run("should name every required status", func(t *testing.T) {
		_, err := order.Approved.TransitionTo(order.Rejected, "reject")

		require.Error(t, err)
		assert.Equal(t, "cannot reject order in status 'APPROVED': must be 'CREATED' or 'VALIDATED'", err.Error())
	})

	t.Run("should not modify the receiver", func(t *testing.T) {
		status := order.Created

		_, err := status.TransitionTo(order.Validated, "validate")
		require.NoError(t, err)
		assert.Equal(t, order.Created, status)
	})
}

func TestStatus_StateMachine(t *testing.T) {
	t.Run("should follow the approval path", func(t *testing.T) {
		status := order.Created

		status, err := status.TransitionTo(order.Validated, "validate")
		require.NoError(t, err)
		assert.Equal(t, order.Validated, status)

		status, err = status.TransitionTo(order.Approved, "approve")
		require.NoError(t, err)
		assert.Equal(t, order.Approved, status)
	})

	t.Run("should follow the rejection paths", func(t *testing.T) {
		// CREATED -> REJECTED
		status, err := order.Created.TransitionTo(order.Rejected, "reject")
		require.NoError(t, err)
		assert.Equal(t, order.Rejected, status)

		// VALIDATED -> REJECTED
		status, err = order.Validated.TransitionTo(order.Rejected, "reject")
		require.NoError(t, err)
		assert.Equal(t, order.Rejected, status)
	})

	t.Run("should prevent leaving terminal statuses", func(t *testing.T) {
		_, err := order.Approved.TransitionTo(order.Rejected, "reject")
		require.Error(t, err)

		_, err = order.Rejected.TransitionTo(order.Validated, "validate")
		require.Error(t, err)

		_, err = order.Rejected.TransitionTo(order.Rejected, "reject")
		require.Error(t, err)
	})
}
