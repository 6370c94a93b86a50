package operations

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/XwaeK/2024-assignment-pandas/internal/errors"
)

func TestManager_Execute(t *testing.T) {
	var order []string
	step := func(id string, rows int, err error) Step {
		return NewFuncStep(id, id, func(ctx context.Context, state *OperationState) error {
			order = append(order, id)
			state.GetStage(id).SetRows(rows)
			return err
		})
	}

	t.Run("all steps succeed", func(t *testing.T) {
		order = nil
		r := NewRegistry()
		require.NoError(t, r.Register(step("load", 15, nil)))
		require.NoError(t, r.Register(step("merge-areas", 6, nil)))
		require.NoError(t, r.Register(step("aggregate", 3, nil)))

		state, err := NewManager(nil, r, noopTracer(t)).Execute(context.Background(), "run-1")
		require.NoError(t, err)

		assert.Equal(t, []string{"load", "merge-areas", "aggregate"}, order)
		assert.Equal(t, OperationStatusCompleted, state.Status)
		assert.Equal(t, 3, state.GetStage("aggregate").GetRows())
		for _, s := range state.OrderedSteps() {
			assert.Equal(t, StepStatusCompleted, s.GetStatus(), s.ID)
		}
	})

	t.Run("first failure stops the run", func(t *testing.T) {
		order = nil
		cause := apperrors.NewDataUnavailableError("ballots", errors.New("no such file"))
		r := NewRegistry()
		require.NoError(t, r.Register(step("load", 0, cause)))
		require.NoError(t, r.Register(step("merge-areas", 6, nil)))

		state, err := NewManager(nil, r, noopTracer(t)).Execute(context.Background(), "run-2")
		require.Error(t, err)

		assert.ErrorIs(t, err, apperrors.ErrDataUnavailable)
		var opErr *OperationError
		require.ErrorAs(t, err, &opErr)
		assert.Equal(t, "load", opErr.Step)

		assert.Equal(t, []string{"load"}, order)
		assert.Equal(t, OperationStatusFailed, state.Status)
		assert.Equal(t, StepStatusFailed, state.GetStage("load").GetStatus())
		assert.Equal(t, StepStatusSkipped, state.GetStage("merge-areas").GetStatus())
	})

	t.Run("cancelled context", func(t *testing.T) {
		order = nil
		r := NewRegistry()
		require.NoError(t, r.Register(step("load", 1, nil)))

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		state, err := NewManager(nil, r, noopTracer(t)).Execute(ctx, "run-3")
		require.Error(t, err)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Empty(t, order)
		assert.Equal(t, StepStatusSkipped, state.GetStage("load").GetStatus())
	})
}

func TestOperationError(t *testing.T) {
	cause := errors.New("disk full")
	err := NewExecutionError("export", cause)

	assert.Equal(t, "[execution] export: step execution failed: disk full", err.Error())
	assert.Same(t, cause, errors.Unwrap(err))
	assert.Equal(t, "[invalid_state] bad", NewInvalidStateError("bad").Error())

	var nilErr *OperationError
	assert.Equal(t, "unknown operation error", nilErr.Error())
	assert.Nil(t, nilErr.Unwrap())
}
