package billing

import (
	"strings"

	"fablab-billing/internal/domain/reservation"

	"github.com/shopspring/decimal"
)

// Basis is the time figure a reservation is billed on.
type Basis string

const (
	BasisActual Basis = "actual"
	BasisBooked Basis = "booked"
	BasisNone   Basis = "none"
)

func BasisFor(status reservation.Status) Basis {
	switch {
	case status.IsTimeBased():
		return BasisActual
	case status.IsBookingBased():
		return BasisBooked
	default:
		return BasisNone
	}
}

type Unit string

const (
	UnitMinute Unit = "min"
	UnitHour   Unit = "hour"
	UnitDay    Unit = "day"
)

func (u Unit) String() string {
	return string(u)
}

func (u Unit) IsValid() bool {
	switch u {
	case UnitMinute, UnitHour, UnitDay:
		return true
	default:
		return false
	}
}

// ParseUnit accepts the spellings found on rate cards ("mins", "Hours", "hr").
func ParseUnit(s string) (Unit, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "min", "mins", "minute", "minutes":
		return UnitMinute, true
	case "hour", "hours", "hr", "hrs":
		return UnitHour, true
	case "day", "days":
		return UnitDay, true
	default:
		return "", false
	}
}

type Config struct {
	MinutesPerHour     int
	MinutesPerDay      int
	DefaultUnit        Unit
	DefaultPricePerMin decimal.Decimal
}

func DefaultConfig() Config {
	return Config{
		MinutesPerHour:     60,
		MinutesPerDay:      1440,
		DefaultUnit:        UnitHour,
		DefaultPricePerMin: decimal.Zero,
	}
}

func (c Config) minutesPerHour() int {
	if c.MinutesPerHour <= 0 {
		return 60
	}
	return c.MinutesPerHour
}

func (c Config) minutesPerDay() int {
	if c.MinutesPerDay <= 0 {
		return 1440
	}
	return c.MinutesPerDay
}

func (c Config) defaultUnit() Unit {
	if !c.DefaultUnit.IsValid() {
		return UnitHour
	}
	return c.DefaultUnit
}

// UnitMinutes returns how many minutes one pricing unit covers.
func (c Config) UnitMinutes(u Unit) int {
	switch u {
	case UnitMinute:
		return 1
	case UnitDay:
		return c.minutesPerDay()
	default:
		return c.minutesPerHour()
	}
}

type ServiceLine struct {
	ID            string           `json:"id"`
	ServiceName   string           `json:"serviceName"`
	EquipmentName string           `json:"equipmentName"`
	BookedMinutes *int             `json:"bookedMinutes"`
	ListedCost    *decimal.Decimal `json:"listedCost"`
}

type OperatingTime struct {
	Date         string `json:"date,omitempty"`
	StartTime    string `json:"startTime"`
	EndTime      string `json:"endTime"`
	OperatorName string `json:"operatorName,omitempty"`
}

type DownTime struct {
	Date          string `json:"date,omitempty"`
	TypeOfProduct string `json:"typeOfProduct,omitempty"`
	Minutes       int    `json:"minutes"`
	Cause         string `json:"cause,omitempty"`
	OperatorName  string `json:"operatorName,omitempty"`
}

type MachineUtilization struct {
	MachineName    string          `json:"machineName"`
	ServiceName    string          `json:"serviceName"`
	OperatingTimes []OperatingTime `json:"operatingTimes"`
	DownTimes      []DownTime      `json:"downTimes"`
}

type PricingRule struct {
	ServiceName string          `json:"serviceName"`
	CostPerUnit decimal.Decimal `json:"costPerUnit"`
	Unit        Unit            `json:"unit"`
}

// Inputs is everything a recompute pass reads. ReservationID may be empty for offline computations.
type Inputs struct {
	ReservationID string               `json:"reservationId"`
	Status        reservation.Status   `json:"status"`
	Services      []ServiceLine        `json:"services"`
	Utilizations  []MachineUtilization `json:"utilizations"`
	Pricing       []PricingRule        `json:"pricing"`
	StoredTotal   *decimal.Decimal     `json:"storedTotal"`
}

// TimeSource records which extraction layer produced a line's actual minutes.
type TimeSource string

const (
	SourceUtilization TimeSource = "utilization"
	SourceDisplayText TimeSource = "display_text"
	SourceBooked      TimeSource = "booked"
	SourceNone        TimeSource = "none"
)

type PriceSource string

const (
	PriceFromRule       PriceSource = "pricing_rule"
	PriceFromListedCost PriceSource = "listed_cost"
	PriceFromDefault    PriceSource = "default"
)

type AdjustedLine struct {
	ID                   string
	ServiceName          string
	EquipmentName        string
	ListedCost           *decimal.Decimal
	MatchedMachine       string
	TimeSource           TimeSource
	ActualMinutes        int
	DownTimeMinutes      int
	RoundedMinutes       int
	BookedMinutes        int
	RoundedBookedMinutes int
	BilledMinutes        int
	RatePerUnit          decimal.Decimal
	PricingUnit          Unit
	PriceSource          PriceSource
	RatePerMinute        decimal.Decimal
	AdjustedCost         decimal.Decimal
}

type Reconciliation struct {
	CalculatedTotal decimal.Decimal
	StoredTotal     *decimal.Decimal
	HasDiscrepancy  bool
}

type Summary struct {
	TotalActualMinutes        int
	TotalRoundedMinutes       int
	TotalBookedMinutes        int
	TotalRoundedBookedMinutes int
	ActualHours               string
	RoundedHours              string
	BookedHours               string
	RoundedBookedHours        string
	TotalDisplay              string
}

type Banner struct {
	Visible bool
	Message string
}

// DerivedState is the complete output of one recompute pass.
type DerivedState struct {
	Basis          Basis
	Lines          []AdjustedLine
	Reconciliation Reconciliation
	Summary        Summary
	Banner         Banner
}
