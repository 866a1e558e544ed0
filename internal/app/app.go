package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"perf-analytics/internal/aggregators"
	"perf-analytics/internal/classifiers"
	internalhttp "perf-analytics/internal/http"
	"perf-analytics/internal/models"
	"perf-analytics/internal/reports"
	"perf-analytics/internal/runs"
	"perf-analytics/internal/shared/configs"
	"perf-analytics/internal/shared/databases"
	"perf-analytics/internal/shared/filestorages"
	"perf-analytics/internal/shared/loggers"
	"perf-analytics/internal/shared/metrics"
	"perf-analytics/internal/shared/ulid"
	"perf-analytics/internal/stores"
	"perf-analytics/internal/tasks"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

const appName = "perf-analytics"

// App holds all application dependencies for one CLI invocation and manages their lifecycle.
// Mongo is only dialled by the commands that read it, so report commands work offline.
type App struct {
	config    *configs.Config
	appLogger loggers.Logger
	runID     string
	out       io.Writer

	tracker     *runs.Tracker
	renderer    reports.Renderer
	classifier  classifiers.Classifier
	reportStore stores.ReportStore // nil when file_storage.root_dir is empty

	mongoClient        *mongo.Client
	server             *http.Server
	aggregationService aggregators.AggregationService
	populationService  tasks.PopulationService
	jobs               map[string]aggregators.Job

	pushJob string
}

// New creates an App that writes rendered output to out and logs to stderr.
func New(config *configs.Config, out io.Writer) (*App, error) {
	appLogger, err := loggers.New(config.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return newWithLogger(config, out, appLogger)
}

func newWithLogger(config *configs.Config, out io.Writer, appLogger loggers.Logger) (*App, error) {
	runID := ulid.NewULID()
	appLogger = appLogger.With().
		Str(loggers.FieldApp, appName).
		Str(loggers.FieldRunID, runID).
		Logger()

	// Initialize report storage
	var reportStore stores.ReportStore
	if config.FileStorage.RootDir != "" {
		fileStorage, err := filestorages.NewFileStorage(config.FileStorage.RootDir)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize storage: %w", err)
		}
		reportStore = stores.NewReportStore(fileStorage)
	}

	return &App{
		config:      config,
		appLogger:   appLogger,
		runID:       runID,
		out:         out,
		tracker:     runs.NewTracker(),
		renderer:    reports.NewRenderer(reports.Format(config.Report.Format)),
		classifier:  classifiers.NewClassifier(),
		reportStore: reportStore,
	}, nil
}

func (app *App) RunID() string {
	return app.runID
}

// connect dials Mongo once and builds everything that reads from it.
func (app *App) connect(ctx context.Context) error {
	if app.mongoClient != nil {
		return nil
	}

	timeout := time.Duration(app.config.Mongo.ConnectTimeout) * time.Second
	client, err := databases.Connect(ctx, app.config.Mongo.URI, timeout)
	if err != nil {
		return errInternalMongoConnectFailed(err)
	}
	app.mongoClient = client
	app.appLogger.Info().
		Str("database", app.config.Mongo.Database).
		Str("collection_prefix", app.config.Mongo.CollectionPrefix).
		Msg("connected to mongo")

	collections := databases.NewCollections(client.Database(app.config.Mongo.Database), app.config.Mongo.CollectionPrefix)

	// Initialize aggregation
	timingStore := stores.NewTimingStore(collections)
	auditReportStore := stores.NewAuditReportStore(collections)
	aggregator := aggregators.NewHistogramAggregator(aggregators.MissingMetricPolicy(app.config.Aggregation.MissingMetricPolicy))
	app.aggregationService = aggregators.NewAggregationService(aggregator, app.tracker, app.config.Progress.Every)

	gap := app.config.Aggregation.DefaultGap
	auditMetrics := make([]models.MetricSpec, len(app.config.Aggregation.AuditMetrics))
	for i, m := range app.config.Aggregation.AuditMetrics {
		auditMetrics[i] = models.MetricSpec{Name: m.Name, Gap: m.Gap}
	}
	app.jobs = map[string]aggregators.Job{
		aggregators.JobFMP:    aggregators.NewFMPJob(timingStore, app.classifier, gap),
		aggregators.JobTiming: aggregators.NewTimingJob(timingStore, app.classifier, gap),
		aggregators.JobAudits: aggregators.NewAuditJob(auditReportStore, auditMetrics),
	}

	// Initialize task queue population
	pageViewStore := stores.NewPageViewStore(collections)
	taskStore := stores.NewTaskStore(collections)
	app.populationService = tasks.NewPopulationService(pageViewStore, taskStore, app.classifier, app.tracker, app.config.Tasks.SkipFinished, app.config.Progress.Every)

	app.startStatusServer()
	return nil
}

// startStatusServer serves run progress while the command runs, when a port is configured.
func (app *App) startStatusServer() {
	if app.config.Server.Port == 0 {
		return
	}

	httpLogger := app.appLogger.With().Str(loggers.FieldComponent, "http").Logger()
	router := internalhttp.NewRouter(app.tracker, app.populationService, app.reportStore, httpLogger)
	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.config.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: time.Duration(app.config.Server.ReadHeaderTimeout) * time.Second,
	}

	go func() {
		app.appLogger.Info().Msgf("Starting status listener on port %d", app.config.Server.Port)
		if err := app.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			app.appLogger.Error().Err(err).Msg("status listener failed")
		}
	}()
}

func (app *App) jobContext(ctx context.Context, job string) context.Context {
	return app.appLogger.With().Str(loggers.FieldJob, job).Logger().WithContext(ctx)
}

// RunAggregation runs one histogram job (fmp, timing or audits) and renders its report.
func (app *App) RunAggregation(ctx context.Context, jobName string) error {
	switch jobName {
	case aggregators.JobFMP, aggregators.JobTiming, aggregators.JobAudits:
	default:
		return errInvalidArgumentUnknownJob(jobName)
	}
	if err := app.connect(ctx); err != nil {
		return err
	}
	job := app.jobs[jobName]
	app.pushJob = jobName
	ctx = app.jobContext(ctx, jobName)

	report, svcErr := app.aggregationService.Run(ctx, app.runID, job)
	if svcErr != nil {
		return svcErr
	}

	if app.reportStore != nil {
		key, err := app.reportStore.Put(ctx, report)
		if err != nil {
			return errInternalReportStoreFailed(err)
		}
		loggers.Ctx(ctx).Info().Str("report_key", key).Msg("report saved")
	}

	if err := app.renderer.Render(app.out, report); err != nil {
		return errInternalRenderFailed(err)
	}
	return nil
}

// PopulateTasks fills the audit task queue from page views and renders the counts.
func (app *App) PopulateTasks(ctx context.Context) error {
	if err := app.connect(ctx); err != nil {
		return err
	}
	app.pushJob = tasks.JobPopulate
	ctx = app.jobContext(ctx, tasks.JobPopulate)

	result, svcErr := app.populationService.Populate(ctx, app.runID)
	if svcErr != nil {
		return svcErr
	}
	if err := app.renderer.RenderPopulate(app.out, result); err != nil {
		return errInternalRenderFailed(err)
	}
	return nil
}

// TaskStatus renders the size of the audit task queue.
func (app *App) TaskStatus(ctx context.Context) error {
	if err := app.connect(ctx); err != nil {
		return err
	}

	status, svcErr := app.populationService.Status(app.jobContext(ctx, "tasks_status"))
	if svcErr != nil {
		return svcErr
	}
	if err := app.renderer.RenderStatus(app.out, status); err != nil {
		return errInternalRenderFailed(err)
	}
	return nil
}

// ListReports renders the run IDs of the saved reports of a job.
func (app *App) ListReports(ctx context.Context, jobName string) error {
	if app.reportStore == nil {
		return errInvalidArgumentReportsDisabled()
	}
	runIDs, err := app.reportStore.List(ctx, jobName)
	if err != nil {
		return errInternalReportStoreFailed(err)
	}
	if err := app.renderer.RenderReportList(app.out, jobName, runIDs); err != nil {
		return errInternalRenderFailed(err)
	}
	return nil
}

// ShowReport renders saved reports of a job again. Several run IDs are merged into one histogram.
func (app *App) ShowReport(ctx context.Context, jobName string, runIDs ...string) error {
	if app.reportStore == nil {
		return errInvalidArgumentReportsDisabled()
	}

	var merged *models.HistogramReport
	for _, runID := range runIDs {
		report, err := app.reportStore.Get(ctx, jobName, runID)
		if err != nil {
			if errors.Is(err, stores.ErrReportNotFound) {
				return errNotFoundReport(jobName, runID)
			}
			return errInternalReportStoreFailed(err)
		}
		if merged == nil {
			merged = report
			continue
		}
		merged.Merge(report)
	}
	if merged == nil {
		return errInvalidArgumentNoRunIDs()
	}

	if err := app.renderer.Render(app.out, merged); err != nil {
		return errInternalRenderFailed(err)
	}
	return nil
}

// Shutdown stops the status listener, pushes this run's metrics and closes Mongo.
func (app *App) Shutdown(ctx context.Context) error {
	var errs []error

	// 1) Shutdown status listener
	if app.server != nil {
		app.appLogger.Info().Msg("Shutting down status listener...")
		if err := app.server.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("server shutdown failed: %w", err))
		}
	}

	// 2) Push metrics; a missing gateway must not fail a finished run
	if app.config.Metrics.PushgatewayURL != "" && app.pushJob != "" {
		if err := metrics.Push(app.config.Metrics.PushgatewayURL, "perfstats_"+app.pushJob, app.runID); err != nil {
			app.appLogger.Warn().Err(err).Msg("metrics push failed")
		} else {
			app.appLogger.Debug().Msg("metrics pushed")
		}
	}

	// 3) Disconnect mongo
	if app.mongoClient != nil {
		if err := app.mongoClient.Disconnect(ctx); err != nil {
			errs = append(errs, fmt.Errorf("mongo disconnect failed: %w", err))
		}
		app.mongoClient = nil
	}

	return errors.Join(errs...)
}
