package models

// WeightUnit: unit of mass for package and total weights.
type WeightUnit string

const (
	WeightUnitGram     WeightUnit = "GRAM"
	WeightUnitKilogram WeightUnit = "KG"
	WeightUnitPound    WeightUnit = "LB"
)

// WeightUnits lists every accepted weight unit.
var WeightUnits = []WeightUnit{WeightUnitGram, WeightUnitKilogram, WeightUnitPound}

func (u WeightUnit) Valid() bool {
	for _, v := range WeightUnits {
		if u == v {
			return true
		}
	}
	return false
}

// DimensionsUnit: unit of length for package dimensions.
type DimensionsUnit string

const (
	DimensionsUnitMillimeter DimensionsUnit = "MM"
	DimensionsUnitCentimeter DimensionsUnit = "CM"
	DimensionsUnitInch       DimensionsUnit = "IN"
)

// DimensionsUnits lists every accepted dimensions unit.
var DimensionsUnits = []DimensionsUnit{DimensionsUnitMillimeter, DimensionsUnitCentimeter, DimensionsUnitInch}

func (u DimensionsUnit) Valid() bool {
	for _, v := range DimensionsUnits {
		if u == v {
			return true
		}
	}
	return false
}
