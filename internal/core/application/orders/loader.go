package orders

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// recordFieldCount is the number of pipe-delimited fields per line. The
// first field is a legacy positional placeholder and is not consumed.
const recordFieldCount = 5

// LineFailure records why one input line was skipped during a bulk load.
type LineFailure struct {
	Line   int    `json:"line"`
	Reason string `json:"reason"`
}

// ImportReport tallies the outcome of one bulk load run. RunID correlates
// the report with the log lines the run produced.
type ImportReport struct {
	RunID  uuid.UUID     `json:"runId"`
	Loaded int           `json:"loaded"`
	Failed []LineFailure `json:"failed"`
}

// LoadOrdersFromFile streams the file at path through LoadOrders.
// Only opening the file can fail; per-line problems are reported, not fatal.
func (m *Manager) LoadOrdersFromFile(ctx context.Context, path string) (ImportReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return ImportReport{}, fmt.Errorf("open orders file: %w", err)
	}
	defer f.Close()

	return m.LoadOrders(ctx, f), nil
}

// LoadOrders reads pipe-delimited order lines of the form
//
//	<ignored>|<customerName>|<shipperName>|<weight>|<distance>
//
// and adds each as an order. Blank lines are skipped silently; lines with
// the wrong field count, unparseable numbers or rejected orders are tallied
// in the report. One bad line never aborts the remaining lines.
func (m *Manager) LoadOrders(ctx context.Context, r io.Reader) ImportReport {
	report := ImportReport{
		RunID:  uuid.New(),
		Failed: make([]LineFailure, 0),
	}
	logger := m.logger.With("run_id", report.RunID.String())

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Split(line, "|")
		if len(fields) != recordFieldCount {
			report.fail(ctx, logger, lineNo, fmt.Sprintf("expected %d pipe-delimited fields, got %d", recordFieldCount, len(fields)))
			continue
		}

		customerName := strings.TrimSpace(fields[1])
		shipperName := strings.TrimSpace(fields[2])

		weight, err := strconv.ParseFloat(strings.TrimSpace(fields[3]), 64)
		if err != nil {
			report.fail(ctx, logger, lineNo, fmt.Sprintf("unparseable weight %q", strings.TrimSpace(fields[3])))
			continue
		}

		distance, err := strconv.Atoi(strings.TrimSpace(fields[4]))
		if err != nil {
			report.fail(ctx, logger, lineNo, fmt.Sprintf("unparseable distance %q", strings.TrimSpace(fields[4])))
			continue
		}

		if !m.AddOrder(ctx, customerName, shipperName, weight, distance) {
			report.fail(ctx, logger, lineNo, "order rejected")
			continue
		}
		report.Loaded++
	}

	if err := scanner.Err(); err != nil {
		report.fail(ctx, logger, lineNo+1, fmt.Sprintf("read aborted: %s", err))
	}

	logger.InfoContext(ctx, "bulk load finished", "loaded", report.Loaded, "failed", len(report.Failed))
	return report
}

func (r *ImportReport) fail(ctx context.Context, logger *slog.Logger, line int, reason string) {
	r.Failed = append(r.Failed, LineFailure{Line: line, Reason: reason})
	logger.WarnContext(ctx, "order line skipped", "line", line, "reason", reason)
}
