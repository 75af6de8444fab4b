package tools

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/omarshaarawi/espn-fantasy-mcp/internal/models"
	"github.com/omarshaarawi/espn-fantasy-mcp/internal/service"
)

func textResult(v any) (*mcp.CallToolResult, error) {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding response: %w", err)
	}
	return mcp.NewToolResultText(string(b)), nil
}

func success(data any) (*mcp.CallToolResult, error) {
	return textResult(map[string]any{"success": true, "data": data})
}

// failure turns a caught error into the error envelope. Input errors are
// handed back to the framework untouched.
func failure(err error) (*mcp.CallToolResult, error) {
	var inputErr *InputError
	if errors.As(err, &inputErr) {
		return nil, err
	}

	kind := service.Kind(err)
	slog.Error("Tool failed", "kind", kind, "error", err)

	envelope := map[string]any{
		"success": false,
		"error":   kind,
		"message": err.Error(),
	}

	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) && len(validationErr.Errors) > 0 {
		envelope["validation_errors"] = validationErr.Errors
	}
	var notFoundErr *service.PlayerNotFoundError
	if errors.As(err, &notFoundErr) && notFoundErr.Suggestions != nil {
		envelope["suggestions"] = notFoundErr.Suggestions
	}
	return textResult(envelope)
}

func teamMaps(teams []models.FantasyTeam) []map[string]any {
	out := make([]map[string]any, 0, len(teams))
	for _, t := range teams {
		out = append(out, t.ToMap())
	}
	return out
}

func playerMaps(players []models.FantasyPlayer) []map[string]any {
	out := make([]map[string]any, 0, len(players))
	for _, p := range players {
		out = append(out, p.ToMap())
	}
	return out
}
