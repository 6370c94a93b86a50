package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/go-gota/gota/dataframe"

	"github.com/XwaeK/2024-assignment-pandas/internal/config"
	"github.com/XwaeK/2024-assignment-pandas/internal/dataprocessing"
	"github.com/XwaeK/2024-assignment-pandas/internal/errors"
	"github.com/XwaeK/2024-assignment-pandas/internal/exporter"
	"github.com/XwaeK/2024-assignment-pandas/internal/geo"
	"github.com/XwaeK/2024-assignment-pandas/internal/infrastructure"
	"github.com/XwaeK/2024-assignment-pandas/internal/operations"
	"github.com/XwaeK/2024-assignment-pandas/internal/render"
	"github.com/XwaeK/2024-assignment-pandas/internal/validation"
	"github.com/XwaeK/2024-assignment-pandas/pkg/contracts"
	"github.com/XwaeK/2024-assignment-pandas/pkg/contracts/domain"
)

// Step IDs, in execution order
const (
	StepValidate     = "validate"
	StepLoad         = "load"
	StepMergeAreas   = "merge-areas"
	StepMergeBallots = "merge-ballots"
	StepAggregate    = "aggregate"
	StepRenderMap    = "render-map"
	StepExport       = "export"
)

// Application represents the main application container
type Application struct {
	Config    *config.Config
	Paths     *config.Paths
	Logger    *slog.Logger
	Telemetry *infrastructure.TelemetryProviders
	Tracer    *operations.OperationTracer

	// Stdout receives the aggregated table.
	Stdout io.Writer
}

// Result carries every intermediate table of a run.
type Result struct {
	RunID    string
	Dataset  dataprocessing.Dataset
	Areas    dataframe.DataFrame
	Merged   dataframe.DataFrame
	ByRegion dataframe.DataFrame
	Tallies  []domain.RegionTally
	MapRows  []domain.MapRow
	State    *operations.OperationState
}

// NewApplication creates a new application instance with dependency injection.
// A nil logger falls back to the global infrastructure logger.
func NewApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Application, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration is required")
	}
	if logger == nil {
		logger = infrastructure.GetLogger()
	}

	logger.InfoContext(ctx, "Application starting",
		slog.String("name", config.AppName),
		slog.String("version", contracts.Version))

	paths := cfg.ResolvePaths()
	paths.LogPathResolution(logger)

	providers, err := infrastructure.InitializeTelemetry(ctx, cfg.Telemetry, paths, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize telemetry: %w", err)
	}

	tracer, err := operations.NewOperationTracer(providers)
	if err != nil {
		_ = providers.Shutdown(ctx)
		return nil, fmt.Errorf("failed to initialize operation tracer: %w", err)
	}

	return &Application{
		Config:    cfg,
		Paths:     paths,
		Logger:    logger,
		Telemetry: providers,
		Tracer:    tracer,
		Stdout:    os.Stdout,
	}, nil
}

// Run executes the pipeline once. The aggregated table is printed as soon as
// it is computed, so it survives a failing render or export. The returned
// Result is non-nil whenever the steps could be registered, even if one of
// them failed. A trace id already on ctx becomes the run id.
func (a *Application) Run(ctx context.Context) (*Result, error) {
	ctx = infrastructure.EnsureTraceID(ctx)
	runID := infrastructure.GetTraceID(ctx)

	result := &Result{RunID: runID}
	registry, err := a.buildRegistry(result)
	if err != nil {
		return nil, err
	}

	manager := operations.NewManager(infrastructure.WithComponent(a.Logger, "pipeline"), registry, a.Tracer)
	state, err := manager.Execute(ctx, runID)
	result.State = state
	return result, err
}

// Close flushes telemetry.
func (a *Application) Close(ctx context.Context) error {
	if a.Telemetry == nil {
		return nil
	}
	return a.Telemetry.Shutdown(ctx)
}

// buildRegistry registers the pipeline steps. Each step reads its inputs from
// and stores its output in result.
func (a *Application) buildRegistry(result *Result) (*operations.Registry, error) {
	cfg := a.Config
	logger := a.Logger
	validator := validation.NewFileValidator(infrastructure.WithComponent(logger, "validation"))

	steps := []operations.Step{
		operations.NewFuncStep(StepValidate, "Validate inputs", func(ctx context.Context, state *operations.OperationState) error {
			if err := validator.ValidateInputDirectory(a.Paths.DataDir); err != nil {
				return err
			}
			var inputs []config.InputFile
			for _, in := range a.Paths.Inputs() {
				// Boundaries are only read by the map step.
				if in.Path == a.Paths.ShapesGeoJSON && !cfg.Output.Render {
					continue
				}
				inputs = append(inputs, in)
			}
			state.GetStage(StepValidate).SetRows(len(inputs))
			return validator.ValidateInputs(inputs)
		}),
		operations.NewFuncStep(StepLoad, "Load tables", func(ctx context.Context, state *operations.OperationState) error {
			loader := dataprocessing.NewLoader(infrastructure.WithComponent(logger, "loader"), a.Paths, cfg.Data, cfg.Ballot.Expressed)
			ds, err := loader.Load(ctx)
			if err != nil {
				return err
			}
			result.Dataset = ds
			state.GetStage(StepLoad).SetRows(ds.Ballots.Nrow())
			return nil
		}),
		operations.NewFuncStep(StepMergeAreas, "Merge regions and departments", func(ctx context.Context, state *operations.OperationState) error {
			areas, err := dataprocessing.MergeRegionsAndDepartments(result.Dataset.Regions, result.Dataset.Departments)
			if err != nil {
				return err
			}
			result.Areas = areas
			state.GetStage(StepMergeAreas).SetRows(areas.Nrow())
			return nil
		}),
		operations.NewFuncStep(StepMergeBallots, "Merge ballots and areas", func(ctx context.Context, state *operations.OperationState) error {
			merged, err := dataprocessing.NewBallotMerger(cfg.Ballot).Merge(result.Dataset.Ballots, result.Areas)
			if err != nil {
				return err
			}
			result.Merged = merged
			state.GetStage(StepMergeBallots).SetRows(merged.Nrow())
			return nil
		}),
		operations.NewFuncStep(StepAggregate, "Aggregate by region", func(ctx context.Context, state *operations.OperationState) error {
			byRegion, err := dataprocessing.ComputeResultByRegion(result.Merged)
			if err != nil {
				return err
			}
			tallies, err := dataprocessing.Tallies(byRegion)
			if err != nil {
				return err
			}
			result.ByRegion = byRegion
			result.Tallies = tallies
			state.GetStage(StepAggregate).SetRows(byRegion.Nrow())

			if a.Stdout != nil {
				if err := exporter.WriteTable(a.Stdout, byRegion); err != nil {
					return fmt.Errorf("failed to print aggregated table: %w", err)
				}
			}
			return nil
		}),
	}

	if cfg.Output.Render {
		steps = append(steps, operations.NewFuncStep(StepRenderMap, "Render map", func(ctx context.Context, state *operations.OperationState) error {
			if err := a.prepareOutput(validator); err != nil {
				return err
			}
			renderer := render.NewMapRenderer(
				infrastructure.WithComponent(logger, "render"),
				a.Paths.ShapesGeoJSON,
				a.Paths.MapImage,
				geo.RatioSpec{Choice: cfg.Ballot.Choice, Expressed: cfg.Ballot.Expressed},
				render.NewChoropleth(cfg.Render),
			)
			rows, err := renderer.Plot(ctx, result.Tallies)
			if err != nil {
				return err
			}
			result.MapRows = rows
			state.GetStage(StepRenderMap).SetRows(len(rows))
			return nil
		}))
	} else {
		logger.Info("Map rendering disabled")
	}

	steps = append(steps, operations.NewFuncStep(StepExport, "Export results", func(ctx context.Context, state *operations.OperationState) error {
		return a.export(ctx, result, state.GetStage(StepExport))
	}))

	registry := operations.NewRegistry()
	for _, step := range steps {
		if err := registry.Register(step); err != nil {
			return nil, fmt.Errorf("failed to register step %s: %w", step.ID(), err)
		}
	}
	return registry, nil
}

// prepareOutput creates the output directory and checks it is writable.
func (a *Application) prepareOutput(validator *validation.FileValidator) error {
	if err := a.Paths.EnsureDirectories(); err != nil {
		return errors.NewStorageError("prepare output directory", err)
	}
	return validator.ValidateOutputDirectory(a.Paths.OutputDir)
}

// export writes the optional CSV and workbook files.
func (a *Application) export(ctx context.Context, result *Result, stage *operations.StepState) error {
	out := a.Config.Output
	writeCSV := out.WriteCSV && a.Paths.ResultsCSV != ""
	writeWorkbook := out.WriteWorkbook && a.Paths.Workbook != ""
	if !writeCSV && !writeWorkbook {
		stage.Skip("no export configured")
		return nil
	}

	validator := validation.NewFileValidator(infrastructure.WithComponent(a.Logger, "validation"))
	if err := a.prepareOutput(validator); err != nil {
		return err
	}

	files := 0
	if writeCSV {
		csvWriter := exporter.NewCSVWriter(infrastructure.WithComponent(a.Logger, "exporter"), a.Paths.OutputDir)
		if err := csvWriter.WriteFrame(a.Paths.ResultsCSV, result.ByRegion, out.CSVBOM); err != nil {
			return err
		}
		files++
	}
	if writeWorkbook {
		workbook := exporter.NewWorkbookWriter(infrastructure.WithComponent(a.Logger, "exporter"))
		if err := workbook.Write(a.Paths.Workbook, result.Tallies, result.MapRows); err != nil {
			return err
		}
		files++
	}

	a.Logger.InfoContext(ctx, "Results exported", slog.Int("files", files))
	stage.SetRows(files)
	return nil
}

