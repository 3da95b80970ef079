package vehicle

import (
	"errors"
	"fmt"
	"io"
	"math"

	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownKind is returned when a record's kind is not part of the union.
	ErrUnknownKind = errors.New("unknown vehicle kind")

	// ErrInvalidField is returned when a record's fields do not match its kind.
	ErrInvalidField = errors.New("invalid vehicle field")
)

// Record is the flat, tagged shape of a Vehicle as it appears in YAML or JSON
// input. Pointer fields distinguish "absent" from zero.
type Record struct {
	Kind            Kind     `yaml:"kind" json:"kind"`
	NumberOfDoors   *int     `yaml:"numberOfDoors,omitempty" json:"numberOfDoors,omitempty"`
	PayloadCapacity *float64 `yaml:"payloadCapacity,omitempty" json:"payloadCapacity,omitempty"`
}

// Decode narrows r to the variant named by its kind.
func Decode(r Record) (Vehicle, error) {
	switch r.Kind {
	case KindCar:
		if r.PayloadCapacity != nil {
			return nil, fmt.Errorf("car: payloadCapacity is a truck field: %w", ErrInvalidField)
		}
		if r.NumberOfDoors == nil {
			return nil, fmt.Errorf("car: numberOfDoors is required: %w", ErrInvalidField)
		}
		doors := *r.NumberOfDoors
		if doors < 0 {
			return nil, fmt.Errorf("car: numberOfDoors %d is negative: %w", doors, ErrInvalidField)
		}
		return Car{NumberOfDoors: uint(doors)}, nil

	case KindTruck:
		if r.NumberOfDoors != nil {
			return nil, fmt.Errorf("truck: numberOfDoors is a car field: %w", ErrInvalidField)
		}
		if r.PayloadCapacity == nil {
			return nil, fmt.Errorf("truck: payloadCapacity is required: %w", ErrInvalidField)
		}
		payload := *r.PayloadCapacity
		if math.IsNaN(payload) || math.IsInf(payload, 0) || payload < 0 {
			return nil, fmt.Errorf("truck: payloadCapacity %s is not a non-negative number: %w", formatNumber(payload), ErrInvalidField)
		}
		return Truck{PayloadCapacity: payload}, nil

	default:
		return nil, fmt.Errorf("kind %q: %w", r.Kind, ErrUnknownKind)
	}
}

// Encode is the inverse of Decode. A nil Vehicle encodes to the zero Record.
func Encode(v Vehicle) Record {
	switch v := v.(type) {
	case Car:
		doors := int(v.NumberOfDoors)
		return Record{Kind: KindCar, NumberOfDoors: &doors}
	case Truck:
		payload := v.PayloadCapacity
		return Record{Kind: KindTruck, PayloadCapacity: &payload}
	default:
		return Record{}
	}
}

// fleetDocument is the top-level shape of a fleet file.
type fleetDocument struct {
	Vehicles []Record `yaml:"vehicles"`
}

// LoadFleet reads a YAML (or JSON) document of the form
//
//	vehicles:
//	  - kind: car
//	    numberOfDoors: 4
//	  - kind: truck
//	    payloadCapacity: 2000
//
// and decodes every entry. Unknown keys are rejected, and the first invalid
// entry aborts the load.
func LoadFleet(r io.Reader) ([]Vehicle, error) {
	var doc fleetDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("parse fleet: %w", err)
	}

	fleet := make([]Vehicle, 0, len(doc.Vehicles))
	for i, rec := range doc.Vehicles {
		v, err := Decode(rec)
		if err != nil {
			return nil, fmt.Errorf("vehicles[%d]: %w", i, err)
		}
		fleet = append(fleet, v)
	}
	return fleet, nil
}
