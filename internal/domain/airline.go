package domain

import "strings"

var airlineByCode = map[string]string{
	"AA": "American Airlines",
	"DL": "Delta Air Lines",
	"UA": "United Airlines",
	"WN": "Southwest Airlines",
	"AS": "Alaska Airlines",
	"B6": "JetBlue",
	"NK": "Spirit Airlines",
	"F9": "Frontier Airlines",
	"AC": "Air Canada",
	"WS": "WestJet",
	"BA": "British Airways",
	"AF": "Air France",
	"KL": "KLM",
	"LH": "Lufthansa",
	"EK": "Emirates",
	"QR": "Qatar Airways",
	"SQ": "Singapore Airlines",
	"CX": "Cathay Pacific",
	"QF": "Qantas",
	"NH": "ANA",
	"JL": "Japan Airlines",
	"IB": "Iberia",
	"AZ": "ITA Airways",
}

// AirlineFromFlightNumber resolves the carrier from the two-letter IATA prefix
// of a flight number such as "AA1234" or "aa 1234". Unknown carriers yield "".
func AirlineFromFlightNumber(flightNumber string) string {
	s := strings.ToUpper(strings.TrimSpace(flightNumber))
	if len(s) < 2 {
		return ""
	}
	return airlineByCode[s[:2]]
}

// NormalizeAirlineQuery maps a carrier code or exact airline name to the
// canonical airline name. Anything else is returned trimmed so callers can
// match it as a substring.
func NormalizeAirlineQuery(q string) string {
	q = strings.TrimSpace(q)
	if q == "" {
		return ""
	}
	if name, ok := airlineByCode[strings.ToUpper(q)]; ok && len(q) == 2 {
		return name
	}
	for _, name := range airlineByCode {
		if strings.EqualFold(name, q) {
			return name
		}
	}
	return q
}

// MatchesAirline reports whether the flight's carrier name contains the
// normalized query, ignoring case.
func (f Flight) MatchesAirline(query string) bool {
	q := NormalizeAirlineQuery(query)
	if q == "" {
		return true
	}
	airline := f.Airline
	if airline == "" {
		airline = AirlineFromFlightNumber(f.FlightNumber)
	}
	return strings.Contains(strings.ToLower(airline), strings.ToLower(q))
}
