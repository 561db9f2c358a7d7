package domain

import (
	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// PlanTripInput represents the MCP tool input for a flight search.
// Pointer fields distinguish omitted numbers from explicit zeros so the
// documented defaults only apply to omissions.
type PlanTripInput struct {
	FlyFrom        string `json:"fly_from"`
	FlyTo          string `json:"fly_to"`
	DateFrom       string `json:"date_from"`
	DateTo         string `json:"date_to"`
	ReturnFrom     string `json:"return_from,omitempty"`
	ReturnTo       string `json:"return_to,omitempty"`
	Adults         *int   `json:"adults,omitempty"`
	Children       *int   `json:"children,omitempty"`
	Infants        *int   `json:"infants,omitempty"`
	SelectedCabins string `json:"selected_cabins,omitempty"`
	Curr           string `json:"curr,omitempty"`
	MaxStopovers   *int   `json:"max_stopovers,omitempty"`
	Sort           string `json:"sort,omitempty"`
	Limit          *int   `json:"limit,omitempty"`
}

// PlanTripResult represents the MCP tool structured output for a flight
// search. The readable flight summary travels as text content; this struct
// keeps the outcome inspectable for clients that read structured results.
type PlanTripResult struct {
	Flights int    `json:"flights" jsonschema:"number of flights rendered"`
	Outcome string `json:"outcome" jsonschema:"search outcome (ok, no_flights, unexpected_format)"`
	Summary string `json:"summary" jsonschema:"readable flight summary"`
}

// PlanTripTool defines the MCP tool contract for flight searches. The schema
// is written out explicitly so cabin-class and sort enumerations and the
// required parameter subset are part of the published contract.
func PlanTripTool() *mcp.Tool {
	return &mcp.Tool{
		Name:        "plan_trip",
		Description: "Search for flights between destinations with flexible date options",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"fly_from": {
					Type:        "string",
					Description: "IATA code of departure location (e.g., 'LHR', 'NYC', 'UK')",
				},
				"fly_to": {
					Type:        "string",
					Description: "IATA code of arrival location",
				},
				"date_from": {
					Type:        "string",
					Description: "Departure date in format dd/mm/yyyy",
				},
				"date_to": {
					Type:        "string",
					Description: "Latest departure date in format dd/mm/yyyy",
				},
				"return_from": {
					Type:        "string",
					Description: "Return departure date in format dd/mm/yyyy (for round trips)",
				},
				"return_to": {
					Type:        "string",
					Description: "Latest return departure date in format dd/mm/yyyy (for round trips)",
				},
				"adults": {
					Type:        "integer",
					Description: "Number of adult passengers",
				},
				"children": {
					Type:        "integer",
					Description: "Number of child passengers",
				},
				"infants": {
					Type:        "integer",
					Description: "Number of infant passengers",
				},
				"selected_cabins": {
					Type:        "string",
					Description: "Cabin class: M (economy), W (economy premium), C (business), F (first class)",
					Enum:        []any{"M", "W", "C", "F"},
				},
				"curr": {
					Type:        "string",
					Description: "Currency for prices (e.g., EUR, USD, GBP)",
				},
				"max_stopovers": {
					Type:        "integer",
					Description: "Maximum number of stopovers",
				},
				"sort": {
					Type:        "string",
					Description: "Sort results by (price, duration, date, quality)",
					Enum:        []any{"price", "duration", "date", "quality"},
				},
				"limit": {
					Type:        "integer",
					Description: "Maximum number of results to return",
				},
			},
			Required: []string{"fly_from", "fly_to", "date_from", "date_to"},
		},
	}
}
