package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAirlineFromFlightNumber(t *testing.T) {
	testCases := []struct {
		name         string
		flightNumber string
		expected     string
	}{
		{name: "known carrier", flightNumber: "AA1234", expected: "American Airlines"},
		{name: "lower case with space", flightNumber: " dl 42", expected: "Delta Air Lines"},
		{name: "digit in code", flightNumber: "B6123", expected: "JetBlue"},
		{name: "unknown carrier", flightNumber: "ZZ1", expected: ""},
		{name: "too short", flightNumber: "A", expected: ""},
		{name: "empty", flightNumber: "", expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, AirlineFromFlightNumber(tc.flightNumber))
		})
	}
}

func TestNormalizeAirlineQuery(t *testing.T) {
	assert.Equal(t, "United Airlines", NormalizeAirlineQuery("ua"))
	assert.Equal(t, "Lufthansa", NormalizeAirlineQuery("  LUFTHANSA "))
	assert.Equal(t, "Air", NormalizeAirlineQuery(" Air "))
	assert.Equal(t, "", NormalizeAirlineQuery("   "))
}

func TestFlight_MatchesAirline(t *testing.T) {
	flight := Flight{FlightNumber: "AF1680"}

	assert.True(t, flight.MatchesAirline(""))
	assert.True(t, flight.MatchesAirline("AF"))
	assert.True(t, flight.MatchesAirline("air fr"))
	assert.False(t, flight.MatchesAirline("KL"))
}
