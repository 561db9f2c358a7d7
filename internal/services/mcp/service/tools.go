package service

import (
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/louisreis/tripwing/internal/services/mcp/domain"
)

// registerTripTools registers the trip-planning tools on the server.
func registerTripTools(server *mcp.Server, searcher domain.Searcher) error {
	if searcher == nil {
		return fmt.Errorf("searcher is nil")
	}
	tool := domain.PlanTripTool()
	if tool == nil {
		return fmt.Errorf("tool is nil")
	}
	mcp.AddTool(server, tool, domain.PlanTripHandler(searcher))
	return nil
}
