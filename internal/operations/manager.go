package operations

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Manager executes the registered steps in order
type Manager struct {
	logger   *slog.Logger
	registry *Registry
	tracer   *OperationTracer
}

// NewManager creates a new operation manager
func NewManager(logger *slog.Logger, registry *Registry, tracer *OperationTracer) *Manager {
	if logger == nil {
		logger = slog.Default()
	}
	return &Manager{
		logger:   logger,
		registry: registry,
		tracer:   tracer,
	}
}

// Execute runs every registered step in order and stops at the first
// failure. The returned state is always non-nil.
func (m *Manager) Execute(ctx context.Context, operationID string) (*OperationState, error) {
	steps := m.registry.List()
	state := NewOperationState(operationID)
	for _, step := range steps {
		state.SetStage(step.ID(), NewStepState(step.ID(), step.Name()))
	}

	ctx, span := m.tracer.TraceOperationExecution(ctx, operationID, len(steps))
	state.Start()

	m.logger.InfoContext(ctx, "sequential_execution_start",
		slog.String("operation_id", operationID),
		slog.Int("stage_count", len(steps)))

	err := m.executeSequential(ctx, state, steps)
	if err != nil {
		state.Fail(err)
	} else {
		state.Complete()
	}
	m.tracer.EndOperation(ctx, span, err)

	m.logger.InfoContext(ctx, "operation_finished",
		slog.String("operation_id", operationID),
		slog.String("status", string(state.Status)),
		slog.Duration("duration", state.Duration()))

	return state, err
}

func (m *Manager) executeSequential(ctx context.Context, state *OperationState, steps []Step) error {
	for i, step := range steps {
		if err := ctx.Err(); err != nil {
			m.logger.WarnContext(ctx, "operation_cancelled",
				slog.String("operation_id", state.ID),
				slog.String("step", step.ID()))
			m.skipRemaining(state, steps[i:], "operation cancelled")
			return NewCancellationError(step.ID(), err)
		}

		m.logger.InfoContext(ctx, "executing_stage",
			slog.String("operation_id", state.ID),
			slog.String("step", step.ID()),
			slog.Int("stage_number", i+1),
			slog.Int("total_stages", len(steps)))

		if err := m.executeStage(ctx, state, step); err != nil {
			m.skipRemaining(state, steps[i+1:], fmt.Sprintf("previous step %s failed", step.ID()))
			return err
		}
	}
	return nil
}

func (m *Manager) executeStage(ctx context.Context, state *OperationState, step Step) error {
	stepState := state.GetStage(step.ID())
	if stepState == nil {
		return NewInvalidStateError(fmt.Sprintf("no state for step %s", step.ID()))
	}

	stepCtx, span := m.tracer.TraceStageExecution(ctx, state.ID, step.ID())
	stepState.Start()
	startTime := time.Now()

	err := step.Execute(stepCtx, state)
	elapsed := time.Since(startTime)

	if err != nil {
		stepState.Fail(err)
		m.tracer.EndStage(stepCtx, span, step.ID(), elapsed, 0, err)
		m.logger.ErrorContext(ctx, "stage_execution_failed",
			slog.String("operation_id", state.ID),
			slog.String("step", step.ID()),
			slog.Duration("duration", elapsed),
			slog.String("error", err.Error()))
		return NewExecutionError(step.ID(), err)
	}

	stepState.Complete()
	m.tracer.EndStage(stepCtx, span, step.ID(), elapsed, stepState.GetRows(), nil)
	m.logger.InfoContext(ctx, "stage_completed_successfully",
		slog.String("operation_id", state.ID),
		slog.String("step", step.ID()),
		slog.Int("rows", stepState.GetRows()),
		slog.Duration("duration", elapsed))
	return nil
}

// skipRemaining marks steps that will not run
func (m *Manager) skipRemaining(state *OperationState, steps []Step, reason string) {
	for _, step := range steps {
		if s := state.GetStage(step.ID()); s != nil {
			s.Skip(reason)
		}
	}
}
