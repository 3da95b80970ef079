// Package vehicle models a discriminated union: a Vehicle is exactly one of
// Car or Truck, and its Kind says which.
//
// Go has no sum types, so the union is a sealed interface: the marker method
// is unexported, which means no type outside this package can implement
// Vehicle. The variant set is closed at compile time.
package vehicle

import (
	"fmt"
	"strconv"
)

// Kind is the discriminant of the union.
type Kind string

const (
	KindCar   Kind = "car"
	KindTruck Kind = "truck"
)

// Vehicle is implemented only by Car and Truck.
type Vehicle interface {
	Kind() Kind
	isVehicle()
}

// Car is the "car" variant.
type Car struct {
	NumberOfDoors uint
}

// Truck is the "truck" variant. PayloadCapacity must not be negative; Decode
// enforces it for values coming from outside.
type Truck struct {
	PayloadCapacity float64
}

func (Car) Kind() Kind   { return KindCar }
func (Truck) Kind() Kind { return KindTruck }

func (Car) isVehicle()   {}
func (Truck) isVehicle() {}

// Static checks: both variants satisfy the union.
var (
	_ Vehicle = Car{}
	_ Vehicle = Truck{}
)

// Describe returns a one-sentence description of v.
//
// Adding a variant means adding a case here; otherwise the new variant falls
// into the default branch and is described as unknown.
func Describe(v Vehicle) string {
	switch v := v.(type) {
	case Car:
		return fmt.Sprintf("A car with %d doors.", v.NumberOfDoors)
	case Truck:
		return fmt.Sprintf("A truck with a payload capacity of %s.", formatNumber(v.PayloadCapacity))
	default:
		// Only a nil Vehicle can reach this.
		return "An unknown vehicle."
	}
}

// formatNumber prints the shortest representation that round-trips:
// 2000 → "2000", 2.5 → "2.5".
func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
