package sitetimesheet

import (
	"time"

	"github.com/shopspring/decimal"
)

type Shift string

const (
	ShiftMorning   Shift = "morning"
	ShiftAfternoon Shift = "afternoon"
	ShiftNight     Shift = "night"
)

// EquipmentLine records hours on one piece of equipment for the day.
type EquipmentLine struct {
	Name      string          `json:"name"`
	HoursUsed decimal.Decimal `json:"hours_used"`
}

// MaterialLine records consumption of one material. CalculatedKg is the
// submitter's figure; the advisory conversion table never overwrites it.
type MaterialLine struct {
	Item         string          `json:"item"`
	MaterialType MaterialType    `json:"material_type,omitempty"`
	Quantity     decimal.Decimal `json:"quantity"`
	Unit         string          `json:"unit"`
	CalculatedKg decimal.Decimal `json:"calculated_kg"`
	Notes        *string         `json:"notes,omitempty"`
}

// ProductionLine records output of one activity.
type ProductionLine struct {
	Activity string          `json:"activity"`
	Quantity decimal.Decimal `json:"quantity"`
	Unit     string          `json:"unit"`
}

// SiteTimesheet is one daily record for an entire site/shift, authored by
// the foreman. rejection_reason is set iff status is rejected; authorizer
// identity and authorized_at are set iff status is authorized.
type SiteTimesheet struct {
	ID              string
	ProjectID       string
	ForemanID       string
	Date            time.Time
	Shift           Shift
	NumberOfWorkers int
	Equipment       []EquipmentLine
	Materials       []MaterialLine
	Production      []ProductionLine
	Remarks         *string
	Status          Status
	AuthorizedBy    *string
	AuthorizedAt    *time.Time
	RejectionReason *string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	// Joined fields
	ProjectName     *string
	ProjectLocation *string
	ForemanName     *string
}
