package mcpserver

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/techangelx/gradewiz/internal/grade"
	"github.com/techangelx/gradewiz/internal/logger"
)

// GradeResult is the structured content returned by calculate-grade.
type GradeResult struct {
	Total         string    `json:"total"`
	Contributions []string  `json:"contributions"`
	Weights       []float64 `json:"weights"`
	Marks         []float64 `json:"marks"`
}

// registerTools registers the grade tools with the MCP server.
func (s *Server) registerTools() {
	numberItems := map[string]any{
		"type": []string{"number", "string"},
	}

	s.mcpServer.AddTool(
		mcp.NewTool("calculate-grade",
			mcp.WithDescription("Calculate a weighted module mark from component weightings and marks"),
			mcp.WithArray("weights", mcp.Required(),
				mcp.Description("Percentage weighting of each component, in order. Must sum to 100."),
				mcp.Items(numberItems)),
			mcp.WithArray("marks", mcp.Required(),
				mcp.Description("Mark for each component, in the same order as weights"),
				mcp.Items(numberItems)),
		),
		s.handleCalculateGrade,
	)
}

// handleCalculateGrade runs a fresh session through count, weightings and marks.
// Validation failures come back as tool errors carrying the user message.
func (s *Server) handleCalculateGrade(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := request.GetArguments()
	if args == nil {
		return mcp.NewToolResultError("no arguments provided"), nil
	}

	weights, errMsg := numberList(args, "weights")
	if errMsg != "" {
		return mcp.NewToolResultError(errMsg), nil
	}
	marks, errMsg := numberList(args, "marks")
	if errMsg != "" {
		return mcp.NewToolResultError(errMsg), nil
	}

	result, err := grade.Calculate(weights, marks, grade.WithMaxComponents(s.cfg.MaxComponents))
	if err != nil {
		logger.Debug("calculate-grade rejected: %v", err)
		return mcp.NewToolResultError(grade.UserMessage(err)), nil
	}
	formatted := result.Format(s.cfg.RoundingPolicy())
	logger.Debug("calculate-grade: %s", formatted.Total)

	out := GradeResult{
		Total:         formatted.Total,
		Contributions: formatted.Contributions,
		Weights:       result.Weights,
		Marks:         result.Marks,
	}
	return mcp.NewToolResultStructured(out, grade.Summary(formatted, result.Weights)), nil
}

// numberList reads an array argument as raw input strings. JSON numbers are
// formatted back to their shortest form so the session parses them unchanged.
func numberList(args map[string]any, name string) ([]string, string) {
	raw, ok := args[name]
	if !ok {
		return nil, fmt.Sprintf("missing '%s' parameter", name)
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, fmt.Sprintf("'%s' is not an array", name)
	}

	out := make([]string, len(items))
	for i, item := range items {
		switch v := item.(type) {
		case float64:
			out[i] = strconv.FormatFloat(v, 'f', -1, 64)
		case string:
			out[i] = v
		default:
			return nil, fmt.Sprintf("%s %d is not a number", name, i)
		}
	}
	return out, ""
}
