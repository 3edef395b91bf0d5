package payroll

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/payroll"
	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/timesheet"
	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/worker"
)

// RunLine pairs a worker with their computed breakdown for one period.
type RunLine struct {
	Worker    worker.Worker
	Breakdown payroll.Breakdown
}

// RunTotals are the cycle-level sums over all lines.
type RunTotals struct {
	Workers    int
	Gross      decimal.Decimal
	Deductions decimal.Decimal
	Net        decimal.Decimal
}

// ComputeRun groups the supplied timesheets by worker and invokes the wage
// engine once per worker. Workers with no timesheet in the pool produce no
// line. The caller supplies only approved timesheets already filtered to
// the period; lines come back ordered by worker name so repeated runs over
// the same pool are identical.
func ComputeRun(cfg payroll.EngineConfig, workers []worker.Worker, sheets []timesheet.Timesheet) ([]RunLine, RunTotals, error) {
	byWorker := make(map[string][]*timesheet.Timesheet)
	for i := range sheets {
		ts := &sheets[i]
		byWorker[ts.WorkerID] = append(byWorker[ts.WorkerID], ts)
	}

	workerByID := make(map[string]worker.Worker, len(workers))
	for _, w := range workers {
		workerByID[w.ID] = w
	}

	lines := make([]RunLine, 0, len(byWorker))
	for workerID, workerSheets := range byWorker {
		w, ok := workerByID[workerID]
		if !ok {
			return nil, RunTotals{}, fmt.Errorf("%w: worker %s has timesheets but no profile", worker.ErrWorkerNotFound, workerID)
		}

		allowanceTotal := decimal.Zero
		for _, ts := range workerSheets {
			allowanceTotal = allowanceTotal.Add(ts.AllowanceAmount)
		}

		breakdown, err := cfg.Compute(payroll.EngineInput{
			HourlyRate:     w.HourlyRate,
			IsResident:     w.IsResident,
			SuperEnabled:   w.SuperEnabled,
			Timesheets:     workerSheets,
			AllowanceTotal: allowanceTotal,
		})
		if err != nil {
			return nil, RunTotals{}, fmt.Errorf("compute pay for worker %s: %w", workerID, err)
		}
		lines = append(lines, RunLine{Worker: w, Breakdown: breakdown})
	}

	sort.Slice(lines, func(i, j int) bool {
		if lines[i].Worker.FullName != lines[j].Worker.FullName {
			return lines[i].Worker.FullName < lines[j].Worker.FullName
		}
		return lines[i].Worker.ID < lines[j].Worker.ID
	})

	totals := RunTotals{
		Gross:      decimal.Zero,
		Deductions: decimal.Zero,
		Net:        decimal.Zero,
	}
	for _, line := range lines {
		totals.Workers++
		totals.Gross = totals.Gross.Add(line.Breakdown.GrossEarnings)
		totals.Deductions = totals.Deductions.
			Add(line.Breakdown.FortnightlyPaye).
			Add(line.Breakdown.NasfundDeduction).
			Add(line.Breakdown.OtherDeductions)
		totals.Net = totals.Net.Add(line.Breakdown.NetPay)
	}
	return lines, totals, nil
}
