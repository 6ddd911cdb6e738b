// Package catalog holds the compiled-in unit categories.
// The data is built once at package initialisation and never mutated.
package catalog

import (
	"fmt"
	"sort"
	"strings"

	"github.com/sbilibin2017/gw-converter/internal/apperrors"
	"github.com/sbilibin2017/gw-converter/internal/models"
)

var categories = []models.UnitCategory{
	{
		Name: "length", Title: "Length", Base: "m",
		Units: []models.Unit{
			{Name: "Meter", Symbol: "m", Factor: 1, Relation: models.Linear},
			{Name: "Kilometer", Symbol: "km", Factor: 1000, Relation: models.Linear},
			{Name: "Centimeter", Symbol: "cm", Factor: 0.01, Relation: models.Linear},
			{Name: "Millimeter", Symbol: "mm", Factor: 0.001, Relation: models.Linear},
			{Name: "Micrometer", Symbol: "µm", Factor: 1e-6, Relation: models.Linear},
			{Name: "Nanometer", Symbol: "nm", Factor: 1e-9, Relation: models.Linear},
			{Name: "Mile", Symbol: "mi", Factor: 1609.344, Relation: models.Linear},
			{Name: "Yard", Symbol: "yd", Factor: 0.9144, Relation: models.Linear},
			{Name: "Foot", Symbol: "ft", Factor: 0.3048, Relation: models.Linear},
			{Name: "Inch", Symbol: "in", Factor: 0.0254, Relation: models.Linear},
			{Name: "Nautical Mile", Symbol: "nmi", Factor: 1852, Relation: models.Linear},
		},
	},
	{
		Name: "mass", Title: "Weight & Mass", Base: "kg",
		Units: []models.Unit{
			{Name: "Kilogram", Symbol: "kg", Factor: 1, Relation: models.Linear},
			{Name: "Gram", Symbol: "g", Factor: 0.001, Relation: models.Linear},
			{Name: "Milligram", Symbol: "mg", Factor: 1e-6, Relation: models.Linear},
			{Name: "Metric Ton", Symbol: "t", Factor: 1000, Relation: models.Linear},
			{Name: "Pound", Symbol: "lb", Factor: 0.45359237, Relation: models.Linear},
			{Name: "Ounce", Symbol: "oz", Factor: 0.028349523125, Relation: models.Linear},
			{Name: "Stone", Symbol: "st", Factor: 6.35029318, Relation: models.Linear},
		},
	},
	{
		Name: "volume", Title: "Volume", Base: "L",
		Units: []models.Unit{
			{Name: "Liter", Symbol: "L", Factor: 1, Relation: models.Linear},
			{Name: "Milliliter", Symbol: "mL", Factor: 0.001, Relation: models.Linear},
			{Name: "Cubic Meter", Symbol: "m³", Factor: 1000, Relation: models.Linear},
			{Name: "US Gallon", Symbol: "gal", Factor: 3.785411784, Relation: models.Linear},
			{Name: "Imperial Gallon", Symbol: "imp gal", Factor: 4.54609, Relation: models.Linear},
			{Name: "US Quart", Symbol: "qt", Factor: 0.946352946, Relation: models.Linear},
			{Name: "US Pint", Symbol: "pt", Factor: 0.473176473, Relation: models.Linear},
			{Name: "US Cup", Symbol: "cup", Factor: 0.2365882365, Relation: models.Linear},
			{Name: "US Fluid Ounce", Symbol: "fl oz", Factor: 0.0295735295625, Relation: models.Linear},
		},
	},
	{
		Name: "area", Title: "Area", Base: "m²",
		Units: []models.Unit{
			{Name: "Square Meter", Symbol: "m²", Factor: 1, Relation: models.Linear},
			{Name: "Square Kilometer", Symbol: "km²", Factor: 1e6, Relation: models.Linear},
			{Name: "Square Centimeter", Symbol: "cm²", Factor: 1e-4, Relation: models.Linear},
			{Name: "Hectare", Symbol: "ha", Factor: 10000, Relation: models.Linear},
			{Name: "Acre", Symbol: "ac", Factor: 4046.8564224, Relation: models.Linear},
			{Name: "Square Mile", Symbol: "mi²", Factor: 2589988.110336, Relation: models.Linear},
			{Name: "Square Foot", Symbol: "ft²", Factor: 0.09290304, Relation: models.Linear},
			{Name: "Square Inch", Symbol: "in²", Factor: 0.00064516, Relation: models.Linear},
		},
	},
	{
		Name: "speed", Title: "Speed", Base: "m/s",
		Units: []models.Unit{
			{Name: "Meter per Second", Symbol: "m/s", Factor: 1, Relation: models.Linear},
			{Name: "Kilometer per Hour", Symbol: "km/h", Factor: 1000.0 / 3600.0, Relation: models.Linear},
			{Name: "Mile per Hour", Symbol: "mph", Factor: 0.44704, Relation: models.Linear},
			{Name: "Foot per Second", Symbol: "ft/s", Factor: 0.3048, Relation: models.Linear},
			{Name: "Knot", Symbol: "kn", Factor: 1852.0 / 3600.0, Relation: models.Linear},
		},
	},
	{
		Name: "time", Title: "Time", Base: "s",
		Units: []models.Unit{
			{Name: "Second", Symbol: "s", Factor: 1, Relation: models.Linear},
			{Name: "Millisecond", Symbol: "ms", Factor: 0.001, Relation: models.Linear},
			{Name: "Minute", Symbol: "min", Factor: 60, Relation: models.Linear},
			{Name: "Hour", Symbol: "h", Factor: 3600, Relation: models.Linear},
			{Name: "Day", Symbol: "d", Factor: 86400, Relation: models.Linear},
			{Name: "Week", Symbol: "wk", Factor: 604800, Relation: models.Linear},
			{Name: "Year", Symbol: "yr", Factor: 31557600, Relation: models.Linear},
		},
	},
	{
		Name: "data", Title: "Digital Storage", Base: "B",
		Units: []models.Unit{
			{Name: "Byte", Symbol: "B", Factor: 1, Relation: models.Linear},
			{Name: "Bit", Symbol: "bit", Factor: 0.125, Relation: models.Linear},
			{Name: "Kilobyte", Symbol: "kB", Factor: 1e3, Relation: models.Linear},
			{Name: "Megabyte", Symbol: "MB", Factor: 1e6, Relation: models.Linear},
			{Name: "Gigabyte", Symbol: "GB", Factor: 1e9, Relation: models.Linear},
			{Name: "Terabyte", Symbol: "TB", Factor: 1e12, Relation: models.Linear},
			{Name: "Kibibyte", Symbol: "KiB", Factor: 1024, Relation: models.Linear},
			{Name: "Mebibyte", Symbol: "MiB", Factor: 1048576, Relation: models.Linear},
			{Name: "Gibibyte", Symbol: "GiB", Factor: 1073741824, Relation: models.Linear},
		},
	},
	{
		Name: "energy", Title: "Energy", Base: "J",
		Units: []models.Unit{
			{Name: "Joule", Symbol: "J", Factor: 1, Relation: models.Linear},
			{Name: "Kilojoule", Symbol: "kJ", Factor: 1000, Relation: models.Linear},
			{Name: "Calorie", Symbol: "cal", Factor: 4.184, Relation: models.Linear},
			{Name: "Kilocalorie", Symbol: "kcal", Factor: 4184, Relation: models.Linear},
			{Name: "Watt Hour", Symbol: "Wh", Factor: 3600, Relation: models.Linear},
			{Name: "Kilowatt Hour", Symbol: "kWh", Factor: 3.6e6, Relation: models.Linear},
			{Name: "British Thermal Unit", Symbol: "BTU", Factor: 1055.05585262, Relation: models.Linear},
			{Name: "Electronvolt", Symbol: "eV", Factor: 1.602176634e-19, Relation: models.Linear},
		},
	},
	{
		Name: "pressure", Title: "Pressure", Base: "Pa",
		Units: []models.Unit{
			{Name: "Pascal", Symbol: "Pa", Factor: 1, Relation: models.Linear},
			{Name: "Kilopascal", Symbol: "kPa", Factor: 1000, Relation: models.Linear},
			{Name: "Bar", Symbol: "bar", Factor: 100000, Relation: models.Linear},
			{Name: "Atmosphere", Symbol: "atm", Factor: 101325, Relation: models.Linear},
			{Name: "Pound per Square Inch", Symbol: "psi", Factor: 6894.757293168, Relation: models.Linear},
			{Name: "Millimeter of Mercury", Symbol: "mmHg", Factor: 133.322387415, Relation: models.Linear},
		},
	},
	{
		// Frequency units scale to hertz, wavelength units scale to metres.
		Name: "frequency", Title: "Frequency & Wavelength", Base: "Hz",
		Units: []models.Unit{
			{Name: "Hertz", Symbol: "Hz", Factor: 1, Relation: models.Linear},
			{Name: "Kilohertz", Symbol: "kHz", Factor: 1e3, Relation: models.Frequency},
			{Name: "Megahertz", Symbol: "MHz", Factor: 1e6, Relation: models.Frequency},
			{Name: "Gigahertz", Symbol: "GHz", Factor: 1e9, Relation: models.Frequency},
			{Name: "Terahertz", Symbol: "THz", Factor: 1e12, Relation: models.Frequency},
			{Name: "Meter (wavelength)", Symbol: "λm", Factor: 1, Relation: models.Wavelength},
			{Name: "Centimeter (wavelength)", Symbol: "λcm", Factor: 0.01, Relation: models.Wavelength},
			{Name: "Millimeter (wavelength)", Symbol: "λmm", Factor: 0.001, Relation: models.Wavelength},
			{Name: "Nanometer (wavelength)", Symbol: "λnm", Factor: 1e-9, Relation: models.Wavelength},
		},
	},
	{
		// Efficiency units scale to km/L, consumption units scale to L/km.
		Name: "fuel", Title: "Fuel Economy", Base: "km/L",
		Units: []models.Unit{
			{Name: "Kilometer per Liter", Symbol: "km/L", Factor: 1, Relation: models.Linear},
			{Name: "Mile per US Gallon", Symbol: "mpg", Factor: 1.609344 / 3.785411784, Relation: models.DirectEfficiency},
			{Name: "Mile per Imperial Gallon", Symbol: "mpg (imp)", Factor: 1.609344 / 4.54609, Relation: models.DirectEfficiency},
			{Name: "Liter per 100 Kilometers", Symbol: "L/100km", Factor: 0.01, Relation: models.InverseConsumption},
			{Name: "US Gallon per 100 Miles", Symbol: "gal/100mi", Factor: 3.785411784 / 160.9344, Relation: models.InverseConsumption},
		},
	},
}

var byName = index(categories)

func index(cats []models.UnitCategory) map[string]models.UnitCategory {
	m := make(map[string]models.UnitCategory, len(cats))
	for _, c := range cats {
		if err := Validate(c); err != nil {
			panic(err)
		}
		m[c.Name] = c
	}
	return m
}

// Validate checks that a category has exactly one base unit, that the base
// is linear with factor 1, and that symbols are unique.
func Validate(c models.UnitCategory) error {
	seen := make(map[string]bool, len(c.Units))
	bases := 0
	for _, u := range c.Units {
		if seen[u.Symbol] {
			return fmt.Errorf("category %s: duplicate unit symbol %q", c.Name, u.Symbol)
		}
		seen[u.Symbol] = true
		if u.Relation == nil {
			return fmt.Errorf("category %s: unit %q has no relation", c.Name, u.Symbol)
		}
		if u.Factor <= 0 {
			return fmt.Errorf("category %s: unit %q has non-positive factor", c.Name, u.Symbol)
		}
		if u.Symbol == c.Base {
			bases++
			if u.Factor != 1 || u.Relation.Kind() != models.KindLinear {
				return fmt.Errorf("category %s: base unit %q must be linear with factor 1", c.Name, u.Symbol)
			}
		}
	}
	if bases != 1 {
		return fmt.Errorf("category %s: expected exactly one base unit, found %d", c.Name, bases)
	}
	return nil
}

// Categories returns every category in display order.
func Categories() []models.UnitCategory {
	out := make([]models.UnitCategory, len(categories))
	for i, c := range categories {
		c.Units = append([]models.Unit(nil), c.Units...)
		out[i] = c
	}
	return out
}

// Names returns the sorted category names.
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Category looks up a category by name.
func Category(name string) (models.UnitCategory, error) {
	c, ok := byName[name]
	if !ok {
		return models.UnitCategory{}, apperrors.NewValidationError("category",
			"unknown unit category %q, expected one of %s", name, strings.Join(Names(), ", "))
	}
	return c, nil
}

// Lookup resolves a unit symbol inside a category.
func Lookup(category models.UnitCategory, field, symbol string) (models.Unit, error) {
	if symbol == "" {
		return models.Unit{}, apperrors.NewValidationError(field, "unit is required")
	}
	u, ok := category.Unit(symbol)
	if !ok {
		return models.Unit{}, apperrors.NewValidationError(field, "unit %q does not belong to category %q", symbol, category.Name)
	}
	return u, nil
}
