package sitetimesheet

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/sitepay-hq/sitepay-backend-go/internal/pkg/validator"
)

type EquipmentLineRequest struct {
	Name      string          `json:"name"`
	HoursUsed decimal.Decimal `json:"hours_used"`
}

type MaterialLineRequest struct {
	Item         string          `json:"item"`
	MaterialType MaterialType    `json:"material_type,omitempty"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
	CalculatedKg decimal.Decimal `json:"calculated_kg"`
	Notes        *string         `json:"notes,omitempty"`
}

type ProductionLineRequest struct {
	Activity string          `json:"activity"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit"`
}

type CreateSiteTimesheetRequest struct {
	ProjectID       string                  `json:"project_id"`
	Date            string                  `json:"date"`
	Shift           string                  `json:"shift"`
	NumberOfWorkers int                     `json:"number_of_workers"`
	Equipment       []EquipmentLineRequest  `json:"equipment"`
	Materials       []MaterialLineRequest   `json:"materials"`
	Production      []ProductionLineRequest `json:"production"`
	Remarks         *string                 `json:"remarks,omitempty"`

	// Submit skips the draft stage and creates the record already
	// submitted for authorization.
	Submit bool `json:"submit"`
}

func (r *CreateSiteTimesheetRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ProjectID) {
		errs = append(errs, validator.ValidationError{Field: "project_id", Message: "must be a valid UUID"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if !validator.IsInSlice(r.Shift, []string{string(ShiftMorning), string(ShiftAfternoon), string(ShiftNight)}) {
		errs = append(errs, validator.ValidationError{Field: "shift", Message: "must be one of: morning, afternoon, night"})
	}
	if r.NumberOfWorkers < 0 {
		errs = append(errs, validator.ValidationError{Field: "number_of_workers", Message: "must not be negative"})
	}

	for _, eq := range r.Equipment {
		if validator.IsEmpty(eq.Name) {
			errs = append(errs, validator.ValidationError{Field: "equipment", Message: "name is required for every equipment line"})
			break
		}
		if eq.HoursUsed.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "equipment", Message: "hours_used must not be negative"})
			break
		}
	}
	for _, m := range r.Materials {
		if validator.IsEmpty(m.Item) || validator.IsEmpty(m.Unit) {
			errs = append(errs, validator.ValidationError{Field: "materials", Message: "item and unit are required for every material line"})
			break
		}
		if m.Quantity.IsNegative() || m.CalculatedKg.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "materials", Message: "quantity and calculated_kg must not be negative"})
			break
		}
	}
	for _, p := range r.Production {
		if validator.IsEmpty(p.Activity) || validator.IsEmpty(p.Unit) {
			errs = append(errs, validator.ValidationError{Field: "production", Message: "activity and unit are required for every production line"})
			break
		}
		if p.Quantity.IsNegative() {
			errs = append(errs, validator.ValidationError{Field: "production", Message: "quantity must not be negative"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RejectSiteTimesheetRequest struct {
	Reason string `json:"reason"`
}

func (r *RejectSiteTimesheetRequest) Validate() error {
	if validator.IsEmpty(r.Reason) {
		return validator.ValidationErrors{
			{Field: "reason", Message: "reason is required when rejecting"},
		}
	}
	return nil
}

type SiteTimesheetResponse struct {
	ID              string           `json:"id"`
	ProjectID       string           `json:"project_id"`
	ProjectName     *string          `json:"project_name,omitempty"`
	ProjectLocation *string          `json:"project_location,omitempty"`
	ForemanID       string           `json:"foreman_id"`
	ForemanName     *string          `json:"foreman_name,omitempty"`
	Date            string           `json:"date"`
	Shift           Shift            `json:"shift"`
	NumberOfWorkers int              `json:"number_of_workers"`
	Equipment       []EquipmentLine  `json:"equipment"`
	Materials       []MaterialLine   `json:"materials"`
	Production      []ProductionLine `json:"production"`
	Remarks         *string          `json:"remarks,omitempty"`
	Status          Status           `json:"status"`
	AuthorizedBy    *string          `json:"authorized_by,omitempty"`
	AuthorizedAt    *time.Time       `json:"authorized_at,omitempty"`
	RejectionReason *string          `json:"rejection_reason,omitempty"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`
}

func ToResponse(st *SiteTimesheet) *SiteTimesheetResponse {
	return &SiteTimesheetResponse{
		ID:              st.ID,
		ProjectID:       st.ProjectID,
		ProjectName:     st.ProjectName,
		ProjectLocation: st.ProjectLocation,
		ForemanID:       st.ForemanID,
		ForemanName:     st.ForemanName,
		Date:            st.Date.Format("2006-01-02"),
		Shift:           st.Shift,
		NumberOfWorkers: st.NumberOfWorkers,
		Equipment:       st.Equipment,
		Materials:       st.Materials,
		Production:      st.Production,
		Remarks:         st.Remarks,
		Status:          st.Status,
		AuthorizedBy:    st.AuthorizedBy,
		AuthorizedAt:    st.AuthorizedAt,
		RejectionReason: st.RejectionReason,
		CreatedAt:       st.CreatedAt,
		UpdatedAt:       st.UpdatedAt,
	}
}

func ToResponses(sts []*SiteTimesheet) []*SiteTimesheetResponse {
	responses := make([]*SiteTimesheetResponse, 0, len(sts))
	for _, st := range sts {
		responses = append(responses, ToResponse(st))
	}
	return responses
}
