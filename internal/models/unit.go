package models

// RelationKind names how a unit's values relate to its category base.
type RelationKind string

// Supported relation kinds
const (
	KindLinear             RelationKind = "linear"
	KindFrequency          RelationKind = "frequency"
	KindWavelength         RelationKind = "wavelength"
	KindDirectEfficiency   RelationKind = "direct_efficiency"
	KindInverseConsumption RelationKind = "inverse_consumption"
)

// SpeedOfLight links frequency and wavelength, in metres per second.
const SpeedOfLight = 299792458.0

// Relation is the closed set of unit relation kinds.
// Every implementation declares its reciprocal traits, so a new kind
// cannot be added without deciding how it converts.
type Relation interface {
	// Kind returns the relation name.
	Kind() RelationKind
	// Reciprocal reports whether values measure the inverse quantity of the
	// category base, and the constant that links the two quantities.
	Reciprocal() (inverse bool, constant float64)
}

type linear struct{}

func (linear) Kind() RelationKind          { return KindLinear }
func (linear) Reciprocal() (bool, float64) { return false, 0 }

type frequency struct{}

func (frequency) Kind() RelationKind          { return KindFrequency }
func (frequency) Reciprocal() (bool, float64) { return false, SpeedOfLight }

type wavelength struct{}

func (wavelength) Kind() RelationKind          { return KindWavelength }
func (wavelength) Reciprocal() (bool, float64) { return true, SpeedOfLight }

type directEfficiency struct{}

func (directEfficiency) Kind() RelationKind          { return KindDirectEfficiency }
func (directEfficiency) Reciprocal() (bool, float64) { return false, 1 }

type inverseConsumption struct{}

func (inverseConsumption) Kind() RelationKind          { return KindInverseConsumption }
func (inverseConsumption) Reciprocal() (bool, float64) { return true, 1 }

// Relation values
var (
	Linear             Relation = linear{}
	Frequency          Relation = frequency{}
	Wavelength         Relation = wavelength{}
	DirectEfficiency   Relation = directEfficiency{}
	InverseConsumption Relation = inverseConsumption{}
)

// Unit is an immutable catalog entry.
type Unit struct {
	Name     string   // Display name, e.g. "Foot"
	Symbol   string   // Unique symbol within its category, e.g. "ft"
	Factor   float64  // Multiplier to the reference unit of its relation kind
	Relation Relation // How values convert to and from the category base
}

// UnitCategory groups units sharing one base unit.
type UnitCategory struct {
	Name  string // Category key, e.g. "length"
	Title string // Display title, e.g. "Length"
	Base  string // Symbol of the base unit
	Units []Unit // Units in display order, base included
}

// Unit looks up a unit by symbol.
func (c UnitCategory) Unit(symbol string) (Unit, bool) {
	for _, u := range c.Units {
		if u.Symbol == symbol {
			return u, true
		}
	}
	return Unit{}, false
}

// UnitView is the JSON shape of a unit
// swagger:model UnitView
type UnitView struct {
	Name     string       `json:"name" example:"Foot"`
	Symbol   string       `json:"symbol" example:"ft"`
	Factor   float64      `json:"factor" example:"0.3048"`
	Relation RelationKind `json:"relation" example:"linear"`
}

// UnitCategoryView is the JSON shape of a unit category
// swagger:model UnitCategoryView
type UnitCategoryView struct {
	Name  string     `json:"name" example:"length"`
	Title string     `json:"title" example:"Length"`
	Base  string     `json:"base" example:"m"`
	Units []UnitView `json:"units"`
}

// UnitCategoriesResponse lists the unit catalog
// swagger:model UnitCategoriesResponse
type UnitCategoriesResponse struct {
	Categories []UnitCategoryView `json:"categories"`
}

// NewUnitCategoryView converts a category into its JSON shape.
func NewUnitCategoryView(c UnitCategory) UnitCategoryView {
	units := make([]UnitView, 0, len(c.Units))
	for _, u := range c.Units {
		units = append(units, UnitView{
			Name:     u.Name,
			Symbol:   u.Symbol,
			Factor:   u.Factor,
			Relation: u.Relation.Kind(),
		})
	}
	return UnitCategoryView{Name: c.Name, Title: c.Title, Base: c.Base, Units: units}
}
