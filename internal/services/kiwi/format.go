package kiwi

import (
	"fmt"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

// FormatKind tags the outcome of formatting a search response.
type FormatKind int

const (
	// FormatOK means at least one flight was rendered.
	FormatOK FormatKind = iota
	// FormatNoFlights means the response was well-formed but empty.
	FormatNoFlights
	// FormatUnexpected means the response lacked an array-valued data field.
	// This is a recovered condition: the call still succeeds with a
	// diagnostic message.
	FormatUnexpected
)

// FormatResult is the formatter outcome: readable text plus a tag so callers
// and tests can distinguish the recovered-diagnostic path from real results
// without sniffing strings.
type FormatResult struct {
	Kind    FormatKind
	Text    string
	Flights int
}

const (
	noFlightsMessage        = "No flights found matching your criteria."
	unexpectedFormatMessage = "Unable to retrieve flight information. The API response was in an unexpected format."
	offerDivider            = "\n---\n\n"
)

// timestampLayout renders itinerary times as "02 Jan 2006, 15:04".
const timestampLayout = "02 Jan 2006, 15:04"

// FormatSearchResults renders a raw search response into readable text.
// It never fails: a malformed top-level document degrades to a diagnostic
// message, and any field missing below the top level degrades to a
// per-field placeholder without disturbing the rest of the offer.
func FormatSearchResults(body []byte, currency string) FormatResult {
	data := gjson.GetBytes(body, "data")
	if !data.IsArray() {
		return FormatResult{Kind: FormatUnexpected, Text: unexpectedFormatMessage}
	}

	offers := data.Array()
	if len(offers) == 0 {
		return FormatResult{Kind: FormatNoFlights, Text: noFlightsMessage}
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Found %d flights matching your criteria:\n\n", len(offers))

	for i, offer := range offers {
		writeOffer(&b, i, offer, currency)
		if i < len(offers)-1 {
			b.WriteString(offerDivider)
		}
	}

	return FormatResult{Kind: FormatOK, Text: b.String(), Flights: len(offers)}
}

// writeOffer appends one offer block. Every displayed field resolves
// independently so a single absent field never aborts the block.
func writeOffer(b *strings.Builder, index int, offer gjson.Result, currency string) {
	price := offer.Get("price").Float()
	from := stringOr(offer.Get("cityFrom"), "Unknown")
	to := stringOr(offer.Get("cityTo"), "Unknown")
	fromCode := stringOr(offer.Get("flyFrom"), "???")
	toCode := stringOr(offer.Get("flyTo"), "???")
	departure := formatTimestamp(stringOr(offer.Get("local_departure"), "Unknown"))
	arrival := formatTimestamp(stringOr(offer.Get("local_arrival"), "Unknown"))

	durationMinutes := offer.Get("duration.total").Int()
	hours := durationMinutes / 60
	minutes := durationMinutes % 60

	airlines := joinAirlines(offer.Get("airlines"))

	legs := offer.Get("route").Array()
	stopovers := len(legs) - 1
	if stopovers < 0 {
		stopovers = 0
	}

	fmt.Fprintf(b, "Flight %d: %s (%s) → %s (%s)\n", index+1, from, fromCode, to, toCode)
	fmt.Fprintf(b, "Price: %.2f %s\n", price, currency)
	fmt.Fprintf(b, "Departure: %s\n", departure)
	fmt.Fprintf(b, "Arrival: %s\n", arrival)
	fmt.Fprintf(b, "Duration: %dh %dm\n", hours, minutes)
	fmt.Fprintf(b, "Airline(s): %s\n", airlines)
	fmt.Fprintf(b, "Stops: %s\n", stopoverDescription(stopovers))
	fmt.Fprintf(b, "%s\n", baggageLine(offer.Get("bags_price"), currency))
	fmt.Fprintf(b, "Booking link: %s\n", stringOr(offer.Get("deep_link"), "Booking link not available"))

	if stopovers > 0 {
		b.WriteString("Route details:\n")
		for j, leg := range legs {
			fmt.Fprintf(b, "  Leg %d: %s → %s (%s)\n",
				j+1,
				stringOr(leg.Get("cityFrom"), "Unknown"),
				stringOr(leg.Get("cityTo"), "Unknown"),
				stringOr(leg.Get("airline"), "Unknown"),
			)
		}
	}
}

// formatTimestamp re-renders an RFC 3339 timestamp in a readable layout.
// Anything that does not parse passes through verbatim.
func formatTimestamp(value string) string {
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return value
	}
	return parsed.Format(timestampLayout)
}

// stopoverDescription renders a stopover count for display.
func stopoverDescription(stopovers int) string {
	switch stopovers {
	case 0:
		return "Direct flight"
	case 1:
		return "1 stopover"
	default:
		return fmt.Sprintf("%d stopovers", stopovers)
	}
}

// baggageLine resolves the first-checked-bag price from the bag-count price
// table, or a fixed message when the table is absent.
func baggageLine(bagsPrice gjson.Result, currency string) string {
	if !bagsPrice.Exists() {
		return "Baggage information not available"
	}
	return fmt.Sprintf("First checked bag: %.2f %s", bagsPrice.Get("1").Float(), currency)
}

// joinAirlines joins airline names with ", ", substituting "Unknown" when
// the list is absent.
func joinAirlines(value gjson.Result) string {
	if !value.IsArray() {
		return "Unknown"
	}
	names := make([]string, 0, len(value.Array()))
	for _, entry := range value.Array() {
		if entry.Type == gjson.String {
			names = append(names, entry.String())
		}
	}
	return strings.Join(names, ", ")
}

// stringOr returns the string value of a JSON field, or the fallback when
// the field is absent or not a string.
func stringOr(value gjson.Result, fallback string) string {
	if value.Type != gjson.String {
		return fallback
	}
	return value.String()
}
