// Package mcpserver exposes wordcalc as Model Context Protocol tools.
package mcpserver

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/zephyrtronium/wordcalc"
)

// Version is reported to clients during initialization.
const Version = "0.1.0"

type textArgs struct {
	Text string `json:"text"`
}

// result is the JSON body of a successful tool call. Value is omitted for
// NaN and infinities, which Result still spells out.
type result struct {
	Text       string   `json:"text"`
	Normalized string   `json:"normalized,omitempty"`
	Value      *float64 `json:"value,omitempty"`
	Result     string   `json:"result,omitempty"`
}

// NewServer creates an MCP server with the parse_number, evaluate, and
// normalize tools. calc supplies the functions and precision for evaluate
// and normalize.
func NewServer(calc *wordcalc.Context) *server.MCPServer {
	s := server.NewMCPServer("wordcalc", Version)
	registerParseNumber(s)
	registerEvaluate(s, calc)
	registerNormalize(s, calc)
	return s
}

func registerParseNumber(srv *server.MCPServer) {
	tool := mcp.NewTool(
		"parse_number",
		mcp.WithDescription("Convert an English number phrase such as \"two and a quarter\" or \"five hundred and ten point one five\" to its value"),
		mcp.WithString("text", mcp.Required(), mcp.Description("The number phrase")),
	)

	srv.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args textArgs
		if err := req.BindArguments(&args); err != nil {
			return errorResult(err), nil
		}
		v, err := wordcalc.ParseNumber(args.Text)
		if err != nil {
			return errorResult(err), nil
		}
		return jsonResult(result{Text: args.Text, Value: finiteOrNil(v), Result: format(v)}), nil
	})
}

func registerEvaluate(srv *server.MCPServer, calc *wordcalc.Context) {
	tool := mcp.NewTool(
		"evaluate",
		mcp.WithDescription("Evaluate spoken math such as \"eleven plus five log of two hundred and six\". Unary functions apply to everything to their right."),
		mcp.WithString("text", mcp.Required(), mcp.Description("The equation in words")),
	)

	srv.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args textArgs
		if err := req.BindArguments(&args); err != nil {
			return errorResult(err), nil
		}
		norm := calc.Normalize(args.Text)
		v, err := calc.Evaluate(norm)
		if err != nil {
			return errorResult(err), nil
		}
		return jsonResult(result{Text: args.Text, Normalized: norm, Value: finiteOrNil(v), Result: format(v)}), nil
	})
}

func registerNormalize(srv *server.MCPServer, calc *wordcalc.Context) {
	tool := mcp.NewTool(
		"normalize",
		mcp.WithDescription("Rewrite spoken math into the canonical words that evaluate uses"),
		mcp.WithString("text", mcp.Required(), mcp.Description("The equation in words")),
	)

	srv.AddTool(tool, func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var args textArgs
		if err := req.BindArguments(&args); err != nil {
			return errorResult(err), nil
		}
		return jsonResult(result{Text: args.Text, Normalized: calc.Normalize(args.Text)}), nil
	})
}

func jsonResult(v any) *mcp.CallToolResult {
	b, _ := json.MarshalIndent(v, "", "  ")
	return mcp.NewToolResultText(string(b))
}

func errorResult(err error) *mcp.CallToolResult {
	resp := map[string]any{"error": err.Error(), "status": "failed"}
	var perr *wordcalc.ParseError
	if errors.As(err, &perr) && perr.Word != "" {
		resp["word"] = perr.Word
		if perr.Col > 0 {
			resp["col"] = perr.Col
		}
	}
	out := jsonResult(resp)
	out.IsError = true
	return out
}

func format(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func finiteOrNil(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
