package report

import (
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/sitetimesheet"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func authorizedRecord(date string, mutate func(*sitetimesheet.SiteTimesheet)) *sitetimesheet.SiteTimesheet {
	day, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic(err)
	}
	st := &sitetimesheet.SiteTimesheet{
		ProjectID:       "p1",
		Date:            day,
		Status:          sitetimesheet.StatusAuthorized,
		NumberOfWorkers: 10,
	}
	if mutate != nil {
		mutate(st)
	}
	return st
}

func TestBuildProjectSummaryMaterialsMergeByItemAndUnit(t *testing.T) {
	records := []*sitetimesheet.SiteTimesheet{
		authorizedRecord("2026-08-01", func(st *sitetimesheet.SiteTimesheet) {
			st.Materials = []sitetimesheet.MaterialLine{
				{Item: "Cement", Quantity: d("10"), Unit: "bags"},
			}
		}),
		authorizedRecord("2026-08-02", func(st *sitetimesheet.SiteTimesheet) {
			st.Materials = []sitetimesheet.MaterialLine{
				{Item: "Cement", Quantity: d("5"), Unit: "bags"},
				{Item: "Cement", Quantity: d("2"), Unit: "pallets"},
			}
		}),
	}

	summary := BuildProjectSummary("p1", "Wharf Upgrade", records)

	require.Len(t, summary.Materials, 2)
	assert.Equal(t, "Cement (bags)", summary.Materials[0].Key)
	assert.True(t, summary.Materials[0].TotalQuantity.Equal(d("15")),
		"got %s", summary.Materials[0].TotalQuantity)
	assert.Equal(t, "Cement (pallets)", summary.Materials[1].Key)
	assert.True(t, summary.Materials[1].TotalQuantity.Equal(d("2")))
}

func TestBuildProjectSummarySkipsNonAuthorized(t *testing.T) {
	draft := authorizedRecord("2026-08-01", func(st *sitetimesheet.SiteTimesheet) {
		st.Status = sitetimesheet.StatusDraft
		st.Materials = []sitetimesheet.MaterialLine{{Item: "Cement", Quantity: d("99"), Unit: "bags"}}
		st.Equipment = []sitetimesheet.EquipmentLine{{Name: "Excavator", HoursUsed: d("99")}}
	})
	rejected := authorizedRecord("2026-08-02", func(st *sitetimesheet.SiteTimesheet) {
		st.Status = sitetimesheet.StatusRejected
		st.NumberOfWorkers = 50
	})
	authorized := authorizedRecord("2026-08-03", func(st *sitetimesheet.SiteTimesheet) {
		st.Equipment = []sitetimesheet.EquipmentLine{{Name: "Excavator", HoursUsed: d("6")}}
	})

	summary := BuildProjectSummary("p1", "Wharf Upgrade", []*sitetimesheet.SiteTimesheet{draft, rejected, authorized})

	assert.Equal(t, 1, summary.RecordCount)
	assert.Equal(t, 10, summary.TotalWorkerDays)
	require.Len(t, summary.Equipment, 1)
	assert.True(t, summary.Equipment[0].TotalHours.Equal(d("6")))
	assert.Empty(t, summary.Materials)
}

func TestBuildProjectSummaryEquipmentAndProduction(t *testing.T) {
	records := []*sitetimesheet.SiteTimesheet{
		authorizedRecord("2026-08-01", func(st *sitetimesheet.SiteTimesheet) {
			st.Equipment = []sitetimesheet.EquipmentLine{
				{Name: "Excavator", HoursUsed: d("8")},
				{Name: "Grader", HoursUsed: d("4.5")},
			}
			st.Production = []sitetimesheet.ProductionLine{
				{Activity: "Trenching", Quantity: d("120"), Unit: "m"},
			}
		}),
		authorizedRecord("2026-08-02", func(st *sitetimesheet.SiteTimesheet) {
			st.Equipment = []sitetimesheet.EquipmentLine{
				{Name: "Excavator", HoursUsed: d("7.5")},
			}
			st.Production = []sitetimesheet.ProductionLine{
				{Activity: "Trenching", Quantity: d("80"), Unit: "m"},
				{Activity: "Trenching", Quantity: d("3"), Unit: "pits"},
			}
		}),
	}

	summary := BuildProjectSummary("p1", "Wharf Upgrade", records)

	require.Len(t, summary.Equipment, 2)
	assert.Equal(t, "Excavator", summary.Equipment[0].Name)
	assert.True(t, summary.Equipment[0].TotalHours.Equal(d("15.5")))
	assert.Equal(t, "Grader", summary.Equipment[1].Name)

	require.Len(t, summary.Production, 2)
	assert.Equal(t, "Trenching (m)", summary.Production[0].Key)
	assert.True(t, summary.Production[0].TotalQuantity.Equal(d("200")))
	assert.Equal(t, "Trenching (pits)", summary.Production[1].Key)

	assert.Equal(t, 20, summary.TotalWorkerDays)
}

func TestBuildProjectSummaryRecentRemarks(t *testing.T) {
	var records []*sitetimesheet.SiteTimesheet
	for i := 1; i <= 7; i++ {
		text := fmt.Sprintf("day %d remark", i)
		foreman := "K. Tamate"
		records = append(records, authorizedRecord(fmt.Sprintf("2026-08-%02d", i), func(st *sitetimesheet.SiteTimesheet) {
			st.Remarks = &text
			st.ForemanName = &foreman
		}))
	}
	empty := ""
	records = append(records, authorizedRecord("2026-08-20", func(st *sitetimesheet.SiteTimesheet) {
		st.Remarks = &empty
	}))

	summary := BuildProjectSummary("p1", "Wharf Upgrade", records)

	require.Len(t, summary.RecentRemarks, 5)
	assert.Equal(t, "day 7 remark", summary.RecentRemarks[0].Text)
	assert.Equal(t, "day 3 remark", summary.RecentRemarks[4].Text)
	assert.Equal(t, "K. Tamate", summary.RecentRemarks[0].ForemanName)
	for i := 0; i < len(summary.RecentRemarks)-1; i++ {
		assert.False(t, summary.RecentRemarks[i].Date.Before(summary.RecentRemarks[i+1].Date))
	}
}

func TestBuildProjectSummaryOrderIndependent(t *testing.T) {
	records := []*sitetimesheet.SiteTimesheet{
		authorizedRecord("2026-08-01", func(st *sitetimesheet.SiteTimesheet) {
			st.Materials = []sitetimesheet.MaterialLine{{Item: "Sand", Quantity: d("3"), Unit: "m3"}}
			st.Equipment = []sitetimesheet.EquipmentLine{{Name: "Loader", HoursUsed: d("5")}}
		}),
		authorizedRecord("2026-08-02", func(st *sitetimesheet.SiteTimesheet) {
			st.Materials = []sitetimesheet.MaterialLine{{Item: "Sand", Quantity: d("4"), Unit: "m3"}}
			st.Equipment = []sitetimesheet.EquipmentLine{{Name: "Loader", HoursUsed: d("2.5")}}
		}),
		authorizedRecord("2026-08-03", func(st *sitetimesheet.SiteTimesheet) {
			st.Materials = []sitetimesheet.MaterialLine{{Item: "Gravel", Quantity: d("1"), Unit: "m3"}}
		}),
	}
	reversed := []*sitetimesheet.SiteTimesheet{records[2], records[1], records[0]}

	a := BuildProjectSummary("p1", "Wharf Upgrade", records)
	b := BuildProjectSummary("p1", "Wharf Upgrade", reversed)

	assert.Equal(t, a, b)
}

func TestBuildProjectSummaryEmpty(t *testing.T) {
	summary := BuildProjectSummary("p1", "Wharf Upgrade", nil)

	assert.Equal(t, 0, summary.RecordCount)
	assert.Equal(t, 0, summary.TotalWorkerDays)
	assert.Empty(t, summary.Equipment)
	assert.Empty(t, summary.Materials)
	assert.Empty(t, summary.Production)
	assert.Empty(t, summary.RecentRemarks)
}
