package domain

import (
	"context"
	"fmt"
	"log"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisreis/tripwing/internal/platform/id"
	"github.com/louisreis/tripwing/internal/platform/timeouts"
	"github.com/louisreis/tripwing/internal/services/kiwi"
)

// Searcher issues a resolved flight search and returns the raw JSON body.
type Searcher interface {
	Search(ctx context.Context, query kiwi.SearchQuery) ([]byte, error)
}

// outcomeLabel maps a formatter outcome to the structured result label.
func outcomeLabel(kind kiwi.FormatKind) string {
	switch kind {
	case kiwi.FormatNoFlights:
		return "no_flights"
	case kiwi.FormatUnexpected:
		return "unexpected_format"
	default:
		return "ok"
	}
}

// PlanTripHandler executes a flight search request. Argument validation runs
// before any outbound call, so a missing mandatory parameter never reaches
// the network.
func PlanTripHandler(searcher Searcher) mcp.ToolHandlerFor[PlanTripInput, PlanTripResult] {
	return func(ctx context.Context, _ *mcp.CallToolRequest, input PlanTripInput) (*mcp.CallToolResult, PlanTripResult, error) {
		invocationID, err := id.NewID()
		if err != nil {
			return nil, PlanTripResult{}, fmt.Errorf("generate invocation id: %w", err)
		}

		query, err := kiwi.NewSearchQuery(kiwi.QueryInput{
			FlyFrom:        input.FlyFrom,
			FlyTo:          input.FlyTo,
			DateFrom:       input.DateFrom,
			DateTo:         input.DateTo,
			ReturnFrom:     input.ReturnFrom,
			ReturnTo:       input.ReturnTo,
			Adults:         input.Adults,
			Children:       input.Children,
			Infants:        input.Infants,
			SelectedCabins: input.SelectedCabins,
			Curr:           input.Curr,
			MaxStopovers:   input.MaxStopovers,
			Sort:           input.Sort,
			Limit:          input.Limit,
		})
		if err != nil {
			return nil, PlanTripResult{}, err
		}

		runCtx, cancel := context.WithTimeout(ctx, timeouts.FlightSearch)
		defer cancel()

		log.Printf("plan_trip invocation=%s fly_from=%s fly_to=%s", invocationID, query.FlyFrom, query.FlyTo)

		body, err := searcher.Search(runCtx, query)
		if err != nil {
			return nil, PlanTripResult{}, err
		}

		formatted := kiwi.FormatSearchResults(body, query.Curr)
		result := PlanTripResult{
			Flights: formatted.Flights,
			Outcome: outcomeLabel(formatted.Kind),
			Summary: formatted.Text,
		}
		return &mcp.CallToolResult{
			Content: []mcp.Content{
				&mcp.TextContent{Text: formatted.Text},
			},
		}, result, nil
	}
}
