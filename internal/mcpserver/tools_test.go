package mcpserver

import (
	"context"
	"strings"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/techangelx/gradewiz/internal/config"
	"github.com/techangelx/gradewiz/internal/tui/testfixtures"
)

// extractText extracts text from CallToolResult.Content[0]
func extractText(result *mcp.CallToolResult) string {
	if len(result.Content) == 0 {
		return ""
	}
	if textContent, ok := result.Content[0].(mcp.TextContent); ok {
		return textContent.Text
	}
	return ""
}

func toAny(values []string) []any {
	out := make([]any, len(values))
	for i, v := range values {
		out[i] = v
	}
	return out
}

func callGrade(t *testing.T, srv *Server, args map[string]any) *mcp.CallToolResult {
	t.Helper()

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name:      "calculate-grade",
			Arguments: args,
		},
	}
	result, err := srv.handleCalculateGrade(context.Background(), req)
	require.NoError(t, err, "handler errors are reported in the result")
	require.NotNil(t, result)
	return result
}

func TestHandleCalculateGrade_Scenarios(t *testing.T) {
	srv := New(config.Default())

	for _, sc := range testfixtures.Scenarios() {
		t.Run(sc.Name, func(t *testing.T) {
			result := callGrade(t, srv, map[string]any{
				"weights": toAny(sc.Weights),
				"marks":   toAny(sc.Marks),
			})
			require.False(t, result.IsError, extractText(result))

			text := extractText(result)
			assert.True(t, strings.HasPrefix(text, "Total module mark: "+sc.Total), text)
			for _, c := range sc.Contributions {
				assert.Contains(t, text, c)
			}

			out, ok := result.StructuredContent.(GradeResult)
			require.True(t, ok)
			assert.Equal(t, sc.Total, out.Total)
			assert.Equal(t, sc.Contributions, out.Contributions)
		})
	}
}

func TestHandleCalculateGrade_NumberArguments(t *testing.T) {
	srv := New(config.Default())

	result := callGrade(t, srv, map[string]any{
		"weights": []any{float64(60), float64(40)},
		"marks":   []any{float64(80), "90"},
	})
	require.False(t, result.IsError, extractText(result))
	assert.Contains(t, extractText(result), "Total module mark: 84.00")
	assert.Contains(t, extractText(result), "(60% weighting)")
}

func TestHandleCalculateGrade_ValidationErrors(t *testing.T) {
	srv := New(config.Default())

	tests := []struct {
		name    string
		args    map[string]any
		message string
	}{
		{
			name:    "no arguments",
			args:    nil,
			message: "no arguments provided",
		},
		{
			name:    "missing weights",
			args:    map[string]any{"marks": []any{"80"}},
			message: "missing 'weights' parameter",
		},
		{
			name:    "weights not an array",
			args:    map[string]any{"weights": "60,40", "marks": []any{"80"}},
			message: "'weights' is not an array",
		},
		{
			name:    "non-number item",
			args:    map[string]any{"weights": []any{true}, "marks": []any{"80"}},
			message: "weights 0 is not a number",
		},
		{
			name:    "no components",
			args:    map[string]any{"weights": []any{}, "marks": []any{}},
			message: "Please enter a number of components between 1 and 5.",
		},
		{
			name:    "too many components",
			args:    map[string]any{"weights": toAny([]string{"10", "10", "10", "10", "10", "50"}), "marks": []any{}},
			message: "Please enter a number of components between 1 and 5.",
		},
		{
			name:    "weights do not sum to 100",
			args:    map[string]any{"weights": toAny([]string{"50", "40"}), "marks": toAny([]string{"80", "90"})},
			message: "Please enter valid weighting numbers that sum up to 100%.",
		},
		{
			name:    "invalid mark",
			args:    map[string]any{"weights": toAny([]string{"60", "40"}), "marks": toAny([]string{"80", "abc"})},
			message: "Please enter valid numbers for the scores.",
		},
		{
			name:    "mark count mismatch",
			args:    map[string]any{"weights": toAny([]string{"60", "40"}), "marks": toAny([]string{"80"})},
			message: "Please enter valid numbers for the scores.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := callGrade(t, srv, tt.args)
			assert.True(t, result.IsError)
			assert.Equal(t, tt.message, extractText(result))
		})
	}
}

func TestHandleCalculateGrade_UsesConfig(t *testing.T) {
	cfg := config.Default()
	cfg.MaxComponents = 1
	cfg.Rounding = "half-even"
	srv := New(cfg)

	result := callGrade(t, srv, map[string]any{
		"weights": toAny([]string{"50", "50"}),
		"marks":   toAny([]string{"1", "1"}),
	})
	assert.True(t, result.IsError)
	assert.Equal(t, "Please enter a number of components between 1 and 1.", extractText(result))

	// 0.125 rounds to even
	result = callGrade(t, srv, map[string]any{
		"weights": toAny([]string{"100"}),
		"marks":   toAny([]string{"0.125"}),
	})
	require.False(t, result.IsError, extractText(result))
	assert.Contains(t, extractText(result), "Total module mark: 0.12")
}

func TestServer_HTTPLifecycle(t *testing.T) {
	srv := New(config.Default())

	require.NoError(t, srv.Stop(), "Stop before Start should be a no-op")

	port, err := srv.Start(context.Background(), "127.0.0.1:0")
	require.NoError(t, err)
	assert.Positive(t, port)
	assert.Contains(t, srv.URL(), "/mcp")

	_, err = srv.Start(context.Background(), "127.0.0.1:0")
	assert.Error(t, err, "second Start should fail")

	require.NoError(t, srv.Stop())
	require.NoError(t, srv.Stop())
}
