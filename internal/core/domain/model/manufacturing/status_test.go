package manufacturing_test

import (
	"fmt"
	"testing"

	"ordermanagement/internal/core/domain/model/manufacturing"
	"ordermanagement/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_String(t *testing.T) {
	testCases := []struct {
		status   manufacturing.Status
		expected string
	}{
		{manufacturing.Unknown, "UNKNOWN"},
		{manufacturing.Pending, "PENDING"},
		{manufacturing.InProgress, "IN_PROGRESS"},
		{manufacturing.Completed, "COMPLETED"},
		{manufacturing.Cancelled, "CANCELLED"},
		{manufacturing.Status(99), "UNKNOWN"},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, tc.status.String())
	}
}

func TestStatus_Validate(t *testing.T) {
	t.Run("should validate valid statuses", func(t *testing.T) {
		for _, status := range []manufacturing.Status{
			manufacturing.Pending,
			manufacturing.InProgress,
			manufacturing.Completed,
			manufacturing.Cancelled,
		} {
			require.NoError(t, status.Validate(), status.String())
		}
	})

	t.Run("should reject invalid statuses", func(t *testing.T) {
		for _, status := range []manufacturing.Status{
			manufacturing.Unknown,
			manufacturing.Status(-1),
			manufacturing.Status(42),
		} {
			err := status.Validate()
			require.Error(t, err)
			assert.IsType(t, &errs.ValueIsInvalidError{}, err)
		}
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("should parse valid names", func(t *testing.T) {
		status, err := manufacturing.StatusFromString("IN_PROGRESS")
		require.NoError(t, err)
		assert.Equal(t, manufacturing.InProgress, status)
	})

	t.Run("should reject unknown names", func(t *testing.T) {
		for _, name := range []string{"", "UNKNOWN", "in_progress", "SHIPPED"} {
			_, err := manufacturing.StatusFromString(name)
			require.Error(t, err, "name %q", name)
		}
	})
}

func TestStatus_TransitionTable(t *testing.T) {
	all := []manufacturing.Status{
		manufacturing.Pending,
		manufacturing.InProgress,
		manufacturing.Completed,
		manufacturing.Cancelled,
	}

	allowed := map[manufacturing.Status][]manufacturing.Status{
		manufacturing.Pending:    {manufacturing.InProgress, manufacturing.Cancelled},
		manufacturing.InProgress: {manufacturing.Completed, manufacturing.Cancelled},
		manufacturing.Completed:  {},
		manufacturing.Cancelled:  {},
	}

	isAllowed := func(from, to manufacturing.Status) bool {
		for _, target := range allowed[from] {
			if target == to {
				return true
			}
		}
		return false
	}

	for _, from := range all {
		for _, to := range all {
			name := fmt.Sprintf("%s->%s", from.String(), to.String())
			t.Run(name, func(t *testing.T) {
				assert.Equal(t, isAllowed(from, to), from.CanTransitionTo(to))

				next, err := from.Advance(to)
				if isAllowed(from, to) {
					require.NoError(t, err)
					assert.Equal(t, to, next)
				} else {
					require.Error(t, err)
					assert.IsType(t, &errs.ValueIsInvalidError{}, err)
					assert.Contains(t, err.Error(), "cannot transition from")
				}
			})
		}
	}
}

func TestStatus_IsTerminal(t *testing.T) {
	assert.False(t, manufacturing.Pending.IsTerminal())
	assert.False(t, manufacturing.InProgress.IsTerminal())
	assert.True(t, manufacturing.Completed.IsTerminal())
	assert.True(t, manufacturing.Cancelled.IsTerminal())
}
