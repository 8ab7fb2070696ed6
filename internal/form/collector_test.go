package form

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/chup1x/carprice/internal/domain"
	"github.com/stretchr/testify/require"
)

type recordingController struct {
	predicted []domain.CarAttributes
	resets    int
	err       error
}

func (r *recordingController) Predict(_ context.Context, record domain.CarAttributes) error {
	r.predicted = append(r.predicted, record)
	return r.err
}

func (r *recordingController) Reset() {
	r.resets++
}

func TestUpdateFieldIntegerFallback(t *testing.T) {
	for _, name := range domain.IntegerFields {
		t.Run(name, func(t *testing.T) {
			c := NewCollector()
			before := c.Record()

			c.UpdateField(name, "not a number")

			after := c.Record()
			require.Equal(t, 0, after.Value(name))
			for _, other := range domain.FieldNames() {
				if other == name {
					continue
				}
				require.Equal(t, before.Value(other), after.Value(other), other)
			}
		})
	}
}

func TestUpdateFieldFloatFallback(t *testing.T) {
	for _, name := range domain.FloatFields {
		t.Run(name, func(t *testing.T) {
			c := NewCollector()
			before := c.Record()

			c.UpdateField(name, "3,5 litres")

			after := c.Record()
			require.Equal(t, float64(0), after.Value(name))
			for _, other := range domain.FieldNames() {
				if other == name {
					continue
				}
				require.Equal(t, before.Value(other), after.Value(other), other)
			}
		})
	}
}

func TestUpdateFieldCoercion(t *testing.T) {
	c := NewCollector()

	c.UpdateField(domain.FieldProdYear, " 2015 ")
	c.UpdateField(domain.FieldAirbags, "7.9")
	c.UpdateField(domain.FieldEngineVolume, "2.4")
	c.UpdateField(domain.FieldMileage, "")
	c.UpdateField(domain.FieldCylinders, "NaN")
	c.UpdateField(domain.FieldLevy, domain.NoLevy)
	c.UpdateField(domain.FieldModel, "  Camry ")
	c.UpdateField("Horsepower", "300")

	rec := c.Record()
	require.Equal(t, 2015, rec.ProdYear)
	require.Equal(t, 7, rec.Airbags)
	require.Equal(t, 2.4, rec.EngineVolume)
	require.Equal(t, float64(0), rec.Mileage)
	require.Equal(t, float64(0), rec.Cylinders)
	require.Equal(t, "-", rec.Levy)
	require.Equal(t, "  Camry ", rec.Model)
}

func TestUpdateFields(t *testing.T) {
	c := NewCollector()
	c.UpdateFields(map[string]string{
		domain.FieldManufacturer: "BMW",
		domain.FieldAge:          "x",
	})

	rec := c.Record()
	require.Equal(t, "BMW", rec.Manufacturer)
	require.Equal(t, 0, rec.Age)
	require.Equal(t, "RX 450", rec.Model)
}

func TestResetFieldsYieldsBlankTemplate(t *testing.T) {
	now := time.Date(2027, time.January, 2, 0, 0, 0, 0, time.UTC)
	c := NewCollector(WithClock(func() time.Time { return now }))
	ctrl := &recordingController{}

	c.UpdateField(domain.FieldWheel, "Right-hand drive")
	c.ResetFields(ctrl)

	rec := c.Record()
	require.Equal(t, Blank(now), rec)
	require.Equal(t, "No", rec.LeatherInterior)
	require.Equal(t, "Left wheel", rec.Wheel)
	require.Equal(t, 2027, rec.ProdYear)
	require.Equal(t, "", rec.Manufacturer)
	require.Equal(t, float64(0), rec.MileagePerYear)
	require.Equal(t, 1, ctrl.resets)
}

func TestSubmitHandsOffCurrentRecord(t *testing.T) {
	c := NewCollector()
	ctrl := &recordingController{}

	c.UpdateField(domain.FieldColor, "Red")
	require.NoError(t, c.Submit(context.Background(), ctrl))

	require.Len(t, ctrl.predicted, 1)
	require.Equal(t, "Red", ctrl.predicted[0].Color)
	require.Equal(t, c.Record(), ctrl.predicted[0])
}

func TestSubmitReturnsControllerError(t *testing.T) {
	busy := errors.New("busy")
	ctrl := &recordingController{err: busy}

	err := NewCollector().Submit(context.Background(), ctrl)
	require.ErrorIs(t, err, busy)
}
