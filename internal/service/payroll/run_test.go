package payroll

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/payroll"
	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/timesheet"
	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/worker"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func testWorker(id, name, rate string) worker.Worker {
	return worker.Worker{
		ID:           id,
		FullName:     name,
		HourlyRate:   d(rate),
		IsResident:   true,
		SuperEnabled: true,
		IsActive:     true,
	}
}

func approvedSheet(workerID, hours, allowance string) timesheet.Timesheet {
	return timesheet.Timesheet{
		WorkerID:        workerID,
		Date:            time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC),
		TotalHours:      d(hours),
		AllowanceAmount: d(allowance),
		Status:          timesheet.StatusApproved,
	}
}

func testConfig() payroll.EngineConfig {
	return payroll.EngineConfig{
		StandardHoursPerPeriod: d("80"),
		OvertimeMultiplier:     d("1.5"),
		SuperRate:              d("0.06"),
		ResidentBrackets: payroll.BracketTable{
			{Lower: d("0"), Upper: func() *decimal.Decimal { v := d("1000"); return &v }(), Rate: d("0"), Base: d("0")},
			{Lower: d("1000"), Upper: nil, Rate: d("0.22"), Base: d("0")},
		},
		NonResidentBrackets: payroll.DefaultNonResidentBrackets(),
	}
}

func TestComputeRunGroupsByWorker(t *testing.T) {
	workers := []worker.Worker{
		testWorker("w1", "Arua Kila", "25.00"),
		testWorker("w2", "Bobby Nauna", "20.00"),
	}
	sheets := []timesheet.Timesheet{
		approvedSheet("w1", "40", "0"),
		approvedSheet("w2", "30", "0"),
		approvedSheet("w1", "40", "0"),
	}

	lines, totals, err := ComputeRun(testConfig(), workers, sheets)
	require.NoError(t, err)
	require.Len(t, lines, 2)

	assert.Equal(t, "Arua Kila", lines[0].Worker.FullName)
	assert.True(t, lines[0].Breakdown.ApprovedHours.Equal(d("80")))
	assert.True(t, lines[0].Breakdown.GrossEarnings.Equal(d("2000.00")))
	assert.True(t, lines[0].Breakdown.NetPay.Equal(d("1660.00")))

	assert.Equal(t, "Bobby Nauna", lines[1].Worker.FullName)
	assert.True(t, lines[1].Breakdown.GrossEarnings.Equal(d("600.00")))

	assert.Equal(t, 2, totals.Workers)
	assert.True(t, totals.Gross.Equal(d("2600.00")), "gross %s", totals.Gross)
}

func TestComputeRunExcludesWorkersWithoutSheets(t *testing.T) {
	workers := []worker.Worker{
		testWorker("w1", "Arua Kila", "25.00"),
		testWorker("w2", "Bobby Nauna", "20.00"),
	}
	sheets := []timesheet.Timesheet{approvedSheet("w1", "40", "0")}

	lines, totals, err := ComputeRun(testConfig(), workers, sheets)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "w1", lines[0].Worker.ID)
	assert.Equal(t, 1, totals.Workers)
}

func TestComputeRunSumsAllowancesPerWorker(t *testing.T) {
	workers := []worker.Worker{testWorker("w1", "Arua Kila", "10.00")}
	sheets := []timesheet.Timesheet{
		approvedSheet("w1", "8", "15.50"),
		approvedSheet("w1", "8", "10.00"),
	}

	lines, _, err := ComputeRun(testConfig(), workers, sheets)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.True(t, lines[0].Breakdown.AllowanceTotal.Equal(d("25.50")))
	assert.True(t, lines[0].Breakdown.GrossEarnings.Equal(d("185.50")))
}

func TestComputeRunTotalsIdentity(t *testing.T) {
	workers := []worker.Worker{
		testWorker("w1", "Arua Kila", "25.00"),
		testWorker("w2", "Bobby Nauna", "31.40"),
	}
	sheets := []timesheet.Timesheet{
		approvedSheet("w1", "85", "40.00"),
		approvedSheet("w2", "72.5", "0"),
	}

	lines, totals, err := ComputeRun(testConfig(), workers, sheets)
	require.NoError(t, err)

	gross, deductions, net := d("0"), d("0"), d("0")
	for _, line := range lines {
		gross = gross.Add(line.Breakdown.GrossEarnings)
		deductions = deductions.
			Add(line.Breakdown.FortnightlyPaye).
			Add(line.Breakdown.NasfundDeduction).
			Add(line.Breakdown.OtherDeductions)
		net = net.Add(line.Breakdown.NetPay)
	}
	assert.True(t, totals.Gross.Equal(gross))
	assert.True(t, totals.Deductions.Equal(deductions))
	assert.True(t, totals.Net.Equal(net))
	assert.True(t, totals.Gross.Sub(totals.Deductions).Equal(totals.Net))
}

func TestComputeRunDeterministicOrder(t *testing.T) {
	workers := []worker.Worker{
		testWorker("w2", "Bobby Nauna", "20.00"),
		testWorker("w1", "Arua Kila", "25.00"),
		testWorker("w3", "Clara Ipi", "22.00"),
	}
	sheets := []timesheet.Timesheet{
		approvedSheet("w3", "10", "0"),
		approvedSheet("w1", "10", "0"),
		approvedSheet("w2", "10", "0"),
	}
	reversed := []timesheet.Timesheet{sheets[2], sheets[1], sheets[0]}

	a, aTotals, err := ComputeRun(testConfig(), workers, sheets)
	require.NoError(t, err)
	b, bTotals, err := ComputeRun(testConfig(), workers, reversed)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, aTotals, bTotals)
	assert.Equal(t, "Arua Kila", a[0].Worker.FullName)
	assert.Equal(t, "Bobby Nauna", a[1].Worker.FullName)
	assert.Equal(t, "Clara Ipi", a[2].Worker.FullName)
}

func TestComputeRunMissingWorkerProfile(t *testing.T) {
	sheets := []timesheet.Timesheet{approvedSheet("ghost", "8", "0")}

	_, _, err := ComputeRun(testConfig(), nil, sheets)
	assert.ErrorIs(t, err, worker.ErrWorkerNotFound)
}
