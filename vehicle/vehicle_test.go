package vehicle_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcodamonte/typing-basics/vehicle"
)

// ── Describe ─────────────────────────────────────────────────────────────────

func TestDescribe(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		in   vehicle.Vehicle
		want string
	}{
		{"car with 4 doors", vehicle.Car{NumberOfDoors: 4}, "A car with 4 doors."},
		{"car with 0 doors", vehicle.Car{}, "A car with 0 doors."},
		{"car with 2 doors", vehicle.Car{NumberOfDoors: 2}, "A car with 2 doors."},
		{"truck 2000", vehicle.Truck{PayloadCapacity: 2000}, "A truck with a payload capacity of 2000."},
		{"truck fractional", vehicle.Truck{PayloadCapacity: 2.5}, "A truck with a payload capacity of 2.5."},
		{"truck zero", vehicle.Truck{}, "A truck with a payload capacity of 0."},
		{"truck large", vehicle.Truck{PayloadCapacity: 1e7}, "A truck with a payload capacity of 10000000."},
		{"nil", nil, "An unknown vehicle."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, vehicle.Describe(tc.in))
		})
	}
}

// TestDescribeIdempotent: same input, same output.
func TestDescribeIdempotent(t *testing.T) {
	t.Parallel()

	for _, v := range []vehicle.Vehicle{vehicle.Car{NumberOfDoors: 3}, vehicle.Truck{PayloadCapacity: 750}} {
		assert.Equal(t, vehicle.Describe(v), vehicle.Describe(v))
	}
}

func TestKind(t *testing.T) {
	t.Parallel()

	assert.Equal(t, vehicle.KindCar, vehicle.Car{}.Kind())
	assert.Equal(t, vehicle.KindTruck, vehicle.Truck{}.Kind())
}

// ── Decode / Encode ──────────────────────────────────────────────────────────

func intPtr(i int) *int            { return &i }
func floatPtr(f float64) *float64 { return &f }

func TestDecode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      vehicle.Record
		want    vehicle.Vehicle
		wantErr error
	}{
		{"car", vehicle.Record{Kind: vehicle.KindCar, NumberOfDoors: intPtr(4)}, vehicle.Car{NumberOfDoors: 4}, nil},
		{"car with 0 doors", vehicle.Record{Kind: vehicle.KindCar, NumberOfDoors: intPtr(0)}, vehicle.Car{}, nil},
		{"car without doors", vehicle.Record{Kind: vehicle.KindCar}, nil, vehicle.ErrInvalidField},
		{"truck without payload", vehicle.Record{Kind: vehicle.KindTruck}, nil, vehicle.ErrInvalidField},
		{"NaN payload", vehicle.Record{Kind: vehicle.KindTruck, PayloadCapacity: floatPtr(math.NaN())}, nil, vehicle.ErrInvalidField},
		{"+Inf payload", vehicle.Record{Kind: vehicle.KindTruck, PayloadCapacity: floatPtr(math.Inf(1))}, nil, vehicle.ErrInvalidField},
		{"-Inf payload", vehicle.Record{Kind: vehicle.KindTruck, PayloadCapacity: floatPtr(math.Inf(-1))}, nil, vehicle.ErrInvalidField},
		{"truck", vehicle.Record{Kind: vehicle.KindTruck, PayloadCapacity: floatPtr(2000)}, vehicle.Truck{PayloadCapacity: 2000}, nil},
		{"unknown kind", vehicle.Record{Kind: "bicycle"}, nil, vehicle.ErrUnknownKind},
		{"empty kind", vehicle.Record{}, nil, vehicle.ErrUnknownKind},
		{"negative doors", vehicle.Record{Kind: vehicle.KindCar, NumberOfDoors: intPtr(-1)}, nil, vehicle.ErrInvalidField},
		{"negative payload", vehicle.Record{Kind: vehicle.KindTruck, PayloadCapacity: floatPtr(-5)}, nil, vehicle.ErrInvalidField},
		{"car with payload", vehicle.Record{Kind: vehicle.KindCar, PayloadCapacity: floatPtr(1)}, nil, vehicle.ErrInvalidField},
		{"truck with doors", vehicle.Record{Kind: vehicle.KindTruck, NumberOfDoors: intPtr(2)}, nil, vehicle.ErrInvalidField},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := vehicle.Decode(tc.in)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.Nil(t, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	t.Parallel()

	for _, v := range []vehicle.Vehicle{vehicle.Car{NumberOfDoors: 5}, vehicle.Truck{PayloadCapacity: 12.75}} {
		got, err := vehicle.Decode(vehicle.Encode(v))
		require.NoError(t, err)
		assert.Equal(t, v, got)
	}

	assert.Equal(t, vehicle.Record{}, vehicle.Encode(nil))
}

// ── LoadFleet ────────────────────────────────────────────────────────────────

func TestLoadFleetYAML(t *testing.T) {
	t.Parallel()

	doc := `
vehicles:
  - kind: car
    numberOfDoors: 4
  - kind: truck
    payloadCapacity: 2000
`
	fleet, err := vehicle.LoadFleet(strings.NewReader(doc))
	require.NoError(t, err)
	assert.Equal(t, []vehicle.Vehicle{
		vehicle.Car{NumberOfDoors: 4},
		vehicle.Truck{PayloadCapacity: 2000},
	}, fleet)
}

func TestLoadFleetJSON(t *testing.T) {
	t.Parallel()

	doc := `{"vehicles": [{"kind": "truck", "payloadCapacity": 1.5}]}`
	fleet, err := vehicle.LoadFleet(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, fleet, 1)
	assert.Equal(t, "A truck with a payload capacity of 1.5.", vehicle.Describe(fleet[0]))
}

func TestLoadFleetInvalidEntry(t *testing.T) {
	t.Parallel()

	doc := `
vehicles:
  - kind: car
    numberOfDoors: 2
  - kind: boat
`
	_, err := vehicle.LoadFleet(strings.NewReader(doc))
	require.ErrorIs(t, err, vehicle.ErrUnknownKind)
	assert.Contains(t, err.Error(), "vehicles[1]")
}

// TestLoadFleetRequiredField: a variant field left out of the file is an
// error, not a zero value.
func TestLoadFleetRequiredField(t *testing.T) {
	t.Parallel()

	for _, doc := range []string{
		"vehicles:\n  - kind: car\n",
		"vehicles:\n  - kind: truck\n",
	} {
		_, err := vehicle.LoadFleet(strings.NewReader(doc))
		require.ErrorIs(t, err, vehicle.ErrInvalidField, doc)
		assert.Contains(t, err.Error(), "vehicles[0]", doc)
	}
}

func TestLoadFleetNonFinitePayload(t *testing.T) {
	t.Parallel()

	for _, v := range []string{".nan", ".inf", "-.inf"} {
		doc := "vehicles:\n  - kind: truck\n    payloadCapacity: " + v + "\n"
		_, err := vehicle.LoadFleet(strings.NewReader(doc))
		require.ErrorIs(t, err, vehicle.ErrInvalidField, v)
	}
}

// TestLoadFleetUnknownKey: a misspelled field fails instead of being dropped.
func TestLoadFleetUnknownKey(t *testing.T) {
	t.Parallel()

	doc := `
vehicles:
  - kind: car
    numberofdoors: 4
`
	fleet, err := vehicle.LoadFleet(strings.NewReader(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "numberofdoors")
	assert.Nil(t, fleet)
}

func TestLoadFleetMalformed(t *testing.T) {
	t.Parallel()

	_, err := vehicle.LoadFleet(strings.NewReader("vehicles: [kind: car"))
	require.Error(t, err)
}

func TestLoadFleetEmpty(t *testing.T) {
	t.Parallel()

	fleet, err := vehicle.LoadFleet(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, fleet)
}

// ── Benchmarks ───────────────────────────────────────────────────────────────

func BenchmarkDescribe(b *testing.B) {
	vs := []vehicle.Vehicle{vehicle.Car{NumberOfDoors: 4}, vehicle.Truck{PayloadCapacity: 2000}}
	var sink string
	for i := range b.N {
		sink = vehicle.Describe(vs[i%len(vs)])
	}
	_ = sink
}
