package report

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/report"
	"github.com/sitepay-hq/sitepay-backend-go/internal/domain/sitetimesheet"
)

const recentRemarkLimit = 5

// BuildProjectSummary rolls up authorized site timesheets into one project
// summary. It is pure: the same record set always produces the same
// summary, and input order only matters through each record's date field.
// Records not in authorized status are skipped, whatever their contents.
func BuildProjectSummary(projectID, projectName string, records []*sitetimesheet.SiteTimesheet) *report.ProjectSummary {
	summary := &report.ProjectSummary{
		ProjectID:   projectID,
		ProjectName: projectName,
	}

	equipment := map[string]decimal.Decimal{}
	materials := map[string]report.MaterialUsage{}
	production := map[string]report.ProductionOutput{}
	var remarks []report.Remark

	for _, st := range records {
		if st.Status != sitetimesheet.StatusAuthorized {
			continue
		}
		summary.RecordCount++
		summary.TotalWorkerDays += st.NumberOfWorkers

		for _, eq := range st.Equipment {
			equipment[eq.Name] = equipment[eq.Name].Add(eq.HoursUsed)
		}
		for _, m := range st.Materials {
			key := m.Item + " (" + m.Unit + ")"
			usage, ok := materials[key]
			if !ok {
				usage = report.MaterialUsage{Key: key, Item: m.Item, Unit: m.Unit}
			}
			usage.TotalQuantity = usage.TotalQuantity.Add(m.Quantity)
			materials[key] = usage
		}
		for _, p := range st.Production {
			key := p.Activity + " (" + p.Unit + ")"
			output, ok := production[key]
			if !ok {
				output = report.ProductionOutput{Key: key, Activity: p.Activity, Unit: p.Unit}
			}
			output.TotalQuantity = output.TotalQuantity.Add(p.Quantity)
			production[key] = output
		}
		if st.Remarks != nil && *st.Remarks != "" {
			foreman := ""
			if st.ForemanName != nil {
				foreman = *st.ForemanName
			}
			remarks = append(remarks, report.Remark{
				Date:        st.Date,
				ForemanName: foreman,
				Text:        *st.Remarks,
			})
		}
	}

	summary.Equipment = make([]report.EquipmentUsage, 0, len(equipment))
	for name, hours := range equipment {
		summary.Equipment = append(summary.Equipment, report.EquipmentUsage{Name: name, TotalHours: hours})
	}
	sort.Slice(summary.Equipment, func(i, j int) bool {
		return summary.Equipment[i].Name < summary.Equipment[j].Name
	})

	summary.Materials = make([]report.MaterialUsage, 0, len(materials))
	for _, usage := range materials {
		summary.Materials = append(summary.Materials, usage)
	}
	sort.Slice(summary.Materials, func(i, j int) bool {
		return summary.Materials[i].Key < summary.Materials[j].Key
	})

	summary.Production = make([]report.ProductionOutput, 0, len(production))
	for _, output := range production {
		summary.Production = append(summary.Production, output)
	}
	sort.Slice(summary.Production, func(i, j int) bool {
		return summary.Production[i].Key < summary.Production[j].Key
	})

	// Newest first; date ties break on text so recomputation is stable.
	sort.SliceStable(remarks, func(i, j int) bool {
		if !remarks[i].Date.Equal(remarks[j].Date) {
			return remarks[i].Date.After(remarks[j].Date)
		}
		return remarks[i].Text < remarks[j].Text
	})
	if len(remarks) > recentRemarkLimit {
		remarks = remarks[:recentRemarkLimit]
	}
	summary.RecentRemarks = remarks

	return summary
}
