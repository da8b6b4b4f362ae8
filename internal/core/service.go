package core

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/JonMunkholm/csvpost/internal/config"
)

// Inputs are the resolved command-line inputs of a run.
type Inputs struct {
	CSVFile    string
	ConfigFile string
	URL        string
}

// Service runs the CSV-to-POST pipeline.
type Service struct {
	cfg    *config.Config
	client *http.Client
	out    io.Writer
	errOut io.Writer
}

// NewService creates a Service writing response bodies to out and
// request failures to errOut. A nil cfg uses config.Default().
func NewService(cfg *config.Config, out, errOut io.Writer) *Service {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Service{
		cfg:    cfg,
		client: NewClient(cfg.Dispatch.Timeout),
		out:    out,
		errOut: errOut,
	}
}

// Run loads the mapping, maps every CSV row and dispatches one POST per row.
//
// Mapping stops at the first row that fails to map; that row and all later
// rows are never sent, and the error is returned. Requests dispatched before
// the failure are still allowed to settle when waiting is enabled. Failed
// requests are reported on errOut and counted, but never returned.
func (s *Service) Run(ctx context.Context, in Inputs) (RunResult, error) {
	start := time.Now()
	var result RunResult

	mapping, err := LoadMappingConfig(in.ConfigFile)
	if err != nil {
		return result, err
	}
	slog.Debug("mapping config loaded", "path", in.ConfigFile, "rules", len(mapping))
	for _, rule := range mapping {
		if !rule.DataType.Known() {
			slog.Warn("mapping rule has unknown data type, first row will fail",
				"key", rule.KeyName,
				"data_type", rule.DataType,
			)
		}
	}

	rows, err := ReadRows(in.CSVFile)
	if err != nil {
		return result, err
	}
	slog.Debug("csv loaded", "path", in.CSVFile, "rows", len(rows))

	d := NewDispatcher(in.URL, s.client, s.cfg.Dispatch.Timeout, s.out, s.errOut)

	var mapErr error
	for i, row := range rows {
		line := i + 1

		rec, err := MapRow(row, mapping, line)
		if err != nil {
			slog.Debug("row mapping failed", "line", line, "error", err, "code", MapError(err).Code)
			mapErr = err
			break
		}

		d.Dispatch(ctx, rec, line)
		result.Rows++
	}

	if s.cfg.Dispatch.Wait {
		drainCtx, cancel := context.WithTimeout(ctx, s.cfg.Dispatch.DrainTimeout)
		if err := d.Wait(drainCtx); err != nil {
			slog.Warn("in-flight requests did not settle",
				"active", d.Status().Active,
				"error", err,
			)
		}
		cancel()
	}

	status := d.Status()
	result.Succeeded = status.Succeeded
	result.Failed = status.Failed
	result.InFlight = status.Active

	slog.Info("run finished",
		"rows", result.Rows,
		"succeeded", result.Succeeded,
		"failed", result.Failed,
		"in_flight", result.InFlight,
		"duration_ms", time.Since(start).Milliseconds(),
	)

	return result, mapErr
}
