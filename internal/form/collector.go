// Package form keeps the in-progress car record behind the HTML form and
// turns raw input into typed field values.
package form

import (
	"context"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/chup1x/carprice/internal/domain"
)

// Submitter receives a finalized record. The submission controller
// implements it.
type Submitter interface {
	Predict(ctx context.Context, record domain.CarAttributes) error
}

// Resetter is notified when the form is cleared.
type Resetter interface {
	Reset()
}

type Collector struct {
	mu     sync.Mutex
	record domain.CarAttributes
	now    func() time.Time
}

type Option func(*Collector)

func WithClock(now func() time.Time) Option {
	return func(c *Collector) {
		c.now = now
	}
}

// NewCollector starts with the sample record shown on first load.
func NewCollector(opts ...Option) *Collector {
	c := &Collector{
		record: Sample(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Sample is a complete, valid record used to prefill a fresh form.
func Sample() domain.CarAttributes {
	return domain.CarAttributes{
		Levy:            "1399",
		Manufacturer:    "LEXUS",
		Model:           "RX 450",
		ProdYear:        2010,
		Category:        "Jeep",
		LeatherInterior: "Yes",
		FuelType:        "Hybrid",
		EngineVolume:    3.5,
		Mileage:         186005,
		Cylinders:       6,
		GearBoxType:     "Automatic",
		DriveWheels:     "4x4",
		Wheel:           "Left wheel",
		Color:           "Silver",
		Airbags:         12,
		Age:             15,
		MileagePerYear:  12400,
	}
}

// Blank is the template a reset restores.
func Blank(now time.Time) domain.CarAttributes {
	return domain.CarAttributes{
		ProdYear:        now.Year(),
		LeatherInterior: "No",
		Wheel:           "Left wheel",
	}
}

func (c *Collector) Record() domain.CarAttributes {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.record
}

// UpdateField coerces raw by field name and replaces that single field.
// Malformed numbers become 0. Unknown names are ignored.
func (c *Collector) UpdateField(name, raw string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.update(name, raw)
}

func (c *Collector) UpdateFields(values map[string]string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for name, raw := range values {
		c.update(name, raw)
	}
}

func (c *Collector) update(name, raw string) {
	r := &c.record
	switch name {
	case domain.FieldLevy:
		r.Levy = raw
	case domain.FieldManufacturer:
		r.Manufacturer = raw
	case domain.FieldModel:
		r.Model = raw
	case domain.FieldCategory:
		r.Category = raw
	case domain.FieldLeatherInterior:
		r.LeatherInterior = raw
	case domain.FieldFuelType:
		r.FuelType = raw
	case domain.FieldGearBoxType:
		r.GearBoxType = raw
	case domain.FieldDriveWheels:
		r.DriveWheels = raw
	case domain.FieldWheel:
		r.Wheel = raw
	case domain.FieldColor:
		r.Color = raw
	case domain.FieldProdYear:
		r.ProdYear = ParseInt(raw)
	case domain.FieldAge:
		r.Age = ParseInt(raw)
	case domain.FieldAirbags:
		r.Airbags = ParseInt(raw)
	case domain.FieldEngineVolume:
		r.EngineVolume = ParseFloat(raw)
	case domain.FieldMileage:
		r.Mileage = ParseFloat(raw)
	case domain.FieldCylinders:
		r.Cylinders = ParseFloat(raw)
	case domain.FieldMileagePerYear:
		r.MileagePerYear = ParseFloat(raw)
	}
}

// Submit hands a copy of the current record to s.
func (c *Collector) Submit(ctx context.Context, s Submitter) error {
	return s.Predict(ctx, c.Record())
}

// ResetFields restores the blank template and clears r's state.
func (c *Collector) ResetFields(r Resetter) {
	c.mu.Lock()
	c.record = Blank(c.now())
	c.mu.Unlock()

	r.Reset()
}

// ParseInt returns 0 for anything that is not a number. Decimal input is
// truncated toward zero.
func ParseInt(raw string) int {
	s := strings.TrimSpace(raw)
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	f := ParseFloat(s)
	if f > math.MaxInt32 || f < math.MinInt32 {
		return 0
	}
	return int(f)
}

// ParseFloat returns 0 for anything that is not a finite number.
func ParseFloat(raw string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}
