// Package operations runs the pipeline as an ordered list of steps.
//
// A Manager executes registered steps one after the other, in registration
// order. Each step reads what the previous steps produced and records its
// own output row count on its StepState. The first failing step stops the
// run; every later step is marked skipped. There are no retries.
//
// Every step runs inside an OpenTelemetry span and its duration and row count
// are recorded through infrastructure.PipelineMetrics.
//
//	registry := operations.NewRegistry()
//	registry.Register(loadStep)
//	registry.Register(mergeStep)
//	manager := operations.NewManager(logger, registry, telemetry)
//	state, err := manager.Execute(ctx, runID)
package operations
