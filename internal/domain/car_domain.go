package domain

// Field names as they appear on the wire and in the HTML form.
const (
	FieldLevy            = "Levy"
	FieldManufacturer    = "Manufacturer"
	FieldModel           = "Model"
	FieldProdYear        = "Prod_year"
	FieldCategory        = "Category"
	FieldLeatherInterior = "Leather_interior"
	FieldFuelType        = "Fuel_type"
	FieldEngineVolume    = "Engine_volume"
	FieldMileage         = "Mileage"
	FieldCylinders       = "Cylinders"
	FieldGearBoxType     = "Gear_box_type"
	FieldDriveWheels     = "Drive_wheels"
	FieldWheel           = "Wheel"
	FieldColor           = "Color"
	FieldAirbags         = "Airbags"
	FieldAge             = "Age"
	FieldMileagePerYear  = "Mileage_per_year"
)

// NoLevy is the Levy sentinel meaning no tax levy applies.
const NoLevy = "-"

// CarAttributes is the record submitted to the prediction service.
// Levy stays a string so the "-" sentinel survives the round trip.
type CarAttributes struct {
	Levy            string  `json:"Levy" form:"Levy" validate:"required,levy"`
	Manufacturer    string  `json:"Manufacturer" form:"Manufacturer" validate:"required,choice"`
	Model           string  `json:"Model" form:"Model" validate:"required"`
	ProdYear        int     `json:"Prod_year" form:"Prod_year" validate:"required,min=1980,notfuture"`
	Category        string  `json:"Category" form:"Category" validate:"required,choice"`
	LeatherInterior string  `json:"Leather_interior" form:"Leather_interior" validate:"required,oneof=Yes No"`
	FuelType        string  `json:"Fuel_type" form:"Fuel_type" validate:"required,choice"`
	EngineVolume    float64 `json:"Engine_volume" form:"Engine_volume" validate:"required,min=0.5,max=8"`
	Mileage         float64 `json:"Mileage" form:"Mileage" validate:"min=0"`
	Cylinders       float64 `json:"Cylinders" form:"Cylinders" validate:"required,min=2,max=16"`
	GearBoxType     string  `json:"Gear_box_type" form:"Gear_box_type" validate:"required,choice"`
	DriveWheels     string  `json:"Drive_wheels" form:"Drive_wheels" validate:"required,choice"`
	Wheel           string  `json:"Wheel" form:"Wheel" validate:"required,choice"`
	Color           string  `json:"Color" form:"Color" validate:"required,choice"`
	Airbags         int     `json:"Airbags" form:"Airbags" validate:"min=0,max=16"`
	Age             int     `json:"Age" form:"Age" validate:"min=0,max=50"`
	MileagePerYear  float64 `json:"Mileage_per_year" form:"Mileage_per_year" validate:"min=0"`
}

// IntegerFields and FloatFields list the fields coerced from raw input.
var (
	IntegerFields = []string{FieldProdYear, FieldAge, FieldAirbags}
	FloatFields   = []string{FieldEngineVolume, FieldMileage, FieldCylinders, FieldMileagePerYear}
)

// FieldNames returns every field in form order.
func FieldNames() []string {
	return []string{
		FieldLevy, FieldManufacturer, FieldModel, FieldProdYear, FieldCategory,
		FieldLeatherInterior, FieldFuelType, FieldEngineVolume, FieldMileage,
		FieldCylinders, FieldGearBoxType, FieldDriveWheels, FieldWheel, FieldColor,
		FieldAirbags, FieldAge, FieldMileagePerYear,
	}
}

func IsIntegerField(name string) bool {
	return contains(IntegerFields, name)
}

func IsFloatField(name string) bool {
	return contains(FloatFields, name)
}

// Value returns the field's current value for rendering, or nil for an unknown name.
func (c *CarAttributes) Value(name string) any {
	switch name {
	case FieldLevy:
		return c.Levy
	case FieldManufacturer:
		return c.Manufacturer
	case FieldModel:
		return c.Model
	case FieldProdYear:
		return c.ProdYear
	case FieldCategory:
		return c.Category
	case FieldLeatherInterior:
		return c.LeatherInterior
	case FieldFuelType:
		return c.FuelType
	case FieldEngineVolume:
		return c.EngineVolume
	case FieldMileage:
		return c.Mileage
	case FieldCylinders:
		return c.Cylinders
	case FieldGearBoxType:
		return c.GearBoxType
	case FieldDriveWheels:
		return c.DriveWheels
	case FieldWheel:
		return c.Wheel
	case FieldColor:
		return c.Color
	case FieldAirbags:
		return c.Airbags
	case FieldAge:
		return c.Age
	case FieldMileagePerYear:
		return c.MileagePerYear
	}
	return nil
}

func contains(list []string, name string) bool {
	for _, v := range list {
		if v == name {
			return true
		}
	}
	return false
}
