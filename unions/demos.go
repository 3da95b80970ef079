package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/marcodamonte/typing-basics/vehicle"
)

func demoDescribe() {
	car := vehicle.Car{NumberOfDoors: 4}
	truck := vehicle.Truck{PayloadCapacity: 2000}

	fmt.Println(" ", vehicle.Describe(car))
	fmt.Println(" ", vehicle.Describe(truck))
}

// demoDiscriminant shows that a type switch recovers the concrete variant and
// its fields, while Kind() only tells which variant is active.
func demoDiscriminant() {
	fleet := []vehicle.Vehicle{
		vehicle.Car{NumberOfDoors: 2},
		vehicle.Truck{PayloadCapacity: 7.5},
		vehicle.Car{NumberOfDoors: 5},
	}

	for _, v := range fleet {
		switch v := v.(type) {
		case vehicle.Car:
			fmt.Printf("  %-5s → doors=%d\n", v.Kind(), v.NumberOfDoors)
		case vehicle.Truck:
			fmt.Printf("  %-5s → payload=%g\n", v.Kind(), v.PayloadCapacity)
		}
	}

	cars := 0
	for _, v := range fleet {
		if v.Kind() == vehicle.KindCar {
			cars++
		}
	}
	fmt.Printf("  cars in fleet: %d of %d\n", cars, len(fleet))
}

func demoDecode() {
	doc := `
vehicles:
  - kind: car
    numberOfDoors: 4
  - kind: truck
    payloadCapacity: 2000
`
	fleet, err := vehicle.LoadFleet(strings.NewReader(doc))
	if err != nil {
		fmt.Println("  unexpected:", err)
		return
	}
	for i, v := range fleet {
		fmt.Printf("  vehicles[%d] → %s\n", i, vehicle.Describe(v))
	}

	// A kind outside the union is rejected at the boundary, never described.
	_, err = vehicle.Decode(vehicle.Record{Kind: "bicycle"})
	fmt.Printf("\n  Decode(bicycle) → %v\n", err)
	fmt.Println("  errors.Is(err, ErrUnknownKind):", errors.Is(err, vehicle.ErrUnknownKind))

	doors := 2
	_, err = vehicle.Decode(vehicle.Record{Kind: vehicle.KindTruck, NumberOfDoors: &doors})
	fmt.Printf("  Decode(truck with doors) → %v\n", err)
}

// demoNil: no type outside the package can implement Vehicle, but an
// interface can still be nil.
func demoNil() {
	var v vehicle.Vehicle
	fmt.Printf("  v == nil: %v\n", v == nil)
	fmt.Printf("  Describe(nil) → %q\n", vehicle.Describe(v))
}
