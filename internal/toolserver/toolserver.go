// Package toolserver adapts internal/query's eight operations to the
// tool-protocol surface of §6: MCP tool registration (schema + handler) via
// modelcontextprotocol/go-sdk and jsonschema-go, plus ParsePositionalArgs,
// a positional/key:value argument mapper that only its tests call. The transport
// loop itself — HTTP/HTTPS listener wiring, stdio framing details — is an
// external collaborator per spec.md §1; this package stops at the thin
// adapter the teacher's internal/mcp server.go draws between tool schemas
// and internal/core calls.
package toolserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/standardbeagle/lci/internal/query"
	"github.com/standardbeagle/lci/internal/types"
)

// Mode selects the tool-protocol transport, per SPEC_FULL.md §5's MCP
// surface supplement (stdio/http/https). Only stdio is wired end to end
// here; http/https are defined so a real listener can be slotted in later
// without changing the tool registration below.
type Mode string

const (
	ModeStdio Mode = "stdio"
	ModeHTTP  Mode = "http"
	ModeHTTPS Mode = "https"
)

// Config is the server{} block of §6's recognized configuration options.
type Config struct {
	Mode Mode
	Bind string
}

// Server wires a query.Service to the MCP tool protocol.
type Server struct {
	mcp      *mcp.Server
	svc      *query.Service
	indexDir string
}

// New builds a Server exposing svc's eight operations as MCP tools.
func New(svc *query.Service, indexDir string) *Server {
	s := &Server{
		mcp:      mcp.NewServer(&mcp.Implementation{Name: "codewalk", Version: "0.1.0"}, nil),
		svc:      svc,
		indexDir: indexDir,
	}
	s.registerTools()
	return s
}

// Start runs the server under cfg.Mode until ctx is cancelled. Stdio is the
// only transport implemented; http/https report an explicit "not
// implemented" error rather than silently falling back to stdio.
func (s *Server) Start(ctx context.Context, cfg Config) error {
	switch cfg.Mode {
	case ModeStdio, "":
		return s.mcp.Run(ctx, &mcp.StdioTransport{})
	case ModeHTTP, ModeHTTPS:
		return fmt.Errorf("toolserver: %s transport is not implemented in this build; use stdio", cfg.Mode)
	default:
		return fmt.Errorf("toolserver: unknown mode %q", cfg.Mode)
	}
}

func stringSchema(desc string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "string", Description: desc}
}

func intSchema(desc string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "integer", Description: desc}
}

func numberSchema(desc string) *jsonschema.Schema {
	return &jsonschema.Schema{Type: "number", Description: desc}
}

func (s *Server) registerTools() {
	s.mcp.AddTool(&mcp.Tool{
		Name:        "find_symbol",
		Description: "Find every symbol matching a name, with file location and call-graph connectivity.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"name": stringSchema("Symbol name to look up"),
				"lang": stringSchema("Restrict to this language id"),
			},
			Required: []string{"name"},
		},
	}, s.handleFindSymbol)

	s.mcp.AddTool(&mcp.Tool{
		Name:        "get_calls",
		Description: "List every symbol a function or symbol id calls.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"function_name": stringSchema("Function name or numeric symbol id"),
				"lang":          stringSchema("Restrict to this language id"),
			},
			Required: []string{"function_name"},
		},
	}, s.handleGetCalls)

	s.mcp.AddTool(&mcp.Tool{
		Name:        "find_callers",
		Description: "List every symbol that calls a function or symbol id.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"function_name": stringSchema("Function name or numeric symbol id"),
				"lang":          stringSchema("Restrict to this language id"),
			},
			Required: []string{"function_name"},
		},
	}, s.handleFindCallers)

	s.mcp.AddTool(&mcp.Tool{
		Name:        "analyze_impact",
		Description: "Walk the reverse call/implements/extends/uses graph from a symbol up to max_depth hops.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"symbol_name": stringSchema("Symbol name or numeric symbol id"),
				"max_depth":   intSchema("Maximum hop count (default 3)"),
				"lang":        stringSchema("Restrict to this language id"),
			},
			Required: []string{"symbol_name"},
		},
	}, s.handleAnalyzeImpact)

	s.mcp.AddTool(&mcp.Tool{
		Name:        "search_symbols",
		Description: "Full-text, fuzzy-tolerant search over symbol names, doc comments, and signatures.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"query":  stringSchema("Search text"),
				"limit":  intSchema("Maximum results (default 10)"),
				"kind":   stringSchema("Restrict to this symbol kind"),
				"module": stringSchema("Restrict to this module path"),
				"lang":   stringSchema("Restrict to this language id"),
			},
			Required: []string{"query"},
		},
	}, s.handleSearchSymbols)

	s.mcp.AddTool(&mcp.Tool{
		Name:        "semantic_search_docs",
		Description: "Rank symbols by doc-comment embedding similarity to a natural-language query.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"query":     stringSchema("Natural-language query"),
				"limit":     intSchema("Maximum results (default 10)"),
				"threshold": numberSchema("Minimum similarity score 0..1"),
				"lang":      stringSchema("Restrict to this language id"),
			},
			Required: []string{"query"},
		},
	}, s.handleSemanticSearchDocs)

	s.mcp.AddTool(&mcp.Tool{
		Name:        "semantic_search_with_context",
		Description: "semantic_search_docs plus each hit's file location and call-graph connectivity.",
		InputSchema: &jsonschema.Schema{
			Type: "object",
			Properties: map[string]*jsonschema.Schema{
				"query":     stringSchema("Natural-language query"),
				"limit":     intSchema("Maximum results (default 5)"),
				"threshold": numberSchema("Minimum similarity score 0..1"),
				"lang":      stringSchema("Restrict to this language id"),
			},
			Required: []string{"query"},
		},
	}, s.handleSemanticSearchWithContext)

	s.mcp.AddTool(&mcp.Tool{
		Name:        "get_index_info",
		Description: "Report the index's symbol/file/relationship counts and semantic search status.",
		InputSchema: &jsonschema.Schema{Type: "object"},
	}, s.handleGetIndexInfo)
}

func jsonResponse(data any) (*mcp.CallToolResult, error) {
	content, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("toolserver: marshal response: %w", err)
	}
	return &mcp.CallToolResult{Content: []mcp.Content{&mcp.TextContent{Text: string(content)}}}, nil
}

func errorResponse(op string, err error) (*mcp.CallToolResult, error) {
	res, marshalErr := jsonResponse(map[string]any{"success": false, "operation": op, "error": err.Error()})
	if marshalErr != nil {
		return nil, marshalErr
	}
	res.IsError = true
	return res, nil
}

func (s *Server) handleFindSymbol(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var p struct {
		Name string `json:"name"`
		Lang string `json:"lang"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &p); err != nil {
		return errorResponse("find_symbol", err)
	}
	result, err := s.svc.FindSymbol(p.Name, p.Lang)
	if err != nil {
		return errorResponse("find_symbol", err)
	}
	return jsonResponse(result)
}

func (s *Server) handleGetCalls(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var p struct {
		FunctionName string `json:"function_name"`
		Lang         string `json:"lang"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &p); err != nil {
		return errorResponse("get_calls", err)
	}
	result, err := s.svc.GetCalls(p.FunctionName, p.Lang)
	if err != nil {
		return errorResponse("get_calls", err)
	}
	return jsonResponse(result)
}

func (s *Server) handleFindCallers(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var p struct {
		FunctionName string `json:"function_name"`
		Lang         string `json:"lang"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &p); err != nil {
		return errorResponse("find_callers", err)
	}
	result, err := s.svc.FindCallers(p.FunctionName, p.Lang)
	if err != nil {
		return errorResponse("find_callers", err)
	}
	return jsonResponse(result)
}

func (s *Server) handleAnalyzeImpact(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var p struct {
		SymbolName string `json:"symbol_name"`
		MaxDepth   int    `json:"max_depth"`
		Lang       string `json:"lang"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &p); err != nil {
		return errorResponse("analyze_impact", err)
	}
	result, err := s.svc.AnalyzeImpact(p.SymbolName, p.MaxDepth, p.Lang)
	if err != nil {
		return errorResponse("analyze_impact", err)
	}
	return jsonResponse(result)
}

func (s *Server) handleSearchSymbols(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var p struct {
		Query  string `json:"query"`
		Limit  int    `json:"limit"`
		Kind   string `json:"kind"`
		Module string `json:"module"`
		Lang   string `json:"lang"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &p); err != nil {
		return errorResponse("search_symbols", err)
	}
	var kind *types.SymbolKind
	if p.Kind != "" {
		if k, ok := parseSymbolKind(p.Kind); ok {
			kind = &k
		}
	}
	result := s.svc.SearchSymbols(p.Query, p.Limit, kind, p.Module, p.Lang)
	return jsonResponse(result)
}

func (s *Server) handleSemanticSearchDocs(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var p struct {
		Query     string  `json:"query"`
		Limit     int     `json:"limit"`
		Threshold float64 `json:"threshold"`
		Lang      string  `json:"lang"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &p); err != nil {
		return errorResponse("semantic_search_docs", err)
	}
	result, err := s.svc.SemanticSearchDocs(ctx, p.Query, p.Limit, p.Threshold, p.Lang)
	if err != nil {
		return errorResponse("semantic_search_docs", err)
	}
	return jsonResponse(result)
}

func (s *Server) handleSemanticSearchWithContext(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	var p struct {
		Query     string  `json:"query"`
		Limit     int     `json:"limit"`
		Threshold float64 `json:"threshold"`
		Lang      string  `json:"lang"`
	}
	if err := json.Unmarshal(req.Params.Arguments, &p); err != nil {
		return errorResponse("semantic_search_with_context", err)
	}
	result, err := s.svc.SemanticSearchWithContext(ctx, p.Query, p.Limit, p.Threshold, p.Lang)
	if err != nil {
		return errorResponse("semantic_search_with_context", err)
	}
	return jsonResponse(result)
}

func (s *Server) handleGetIndexInfo(ctx context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return jsonResponse(s.svc.GetIndexInfo(s.indexDir))
}

func parseSymbolKind(name string) (types.SymbolKind, bool) {
	for k := types.SymbolFunction; k <= types.SymbolTypeAlias; k++ {
		if k.String() == name {
			return k, true
		}
	}
	return 0, false
}

// ParsePositionalArgs implements §6's "Positional args map" rule: the first
// positional argument binds to primaryField, every remaining "key:value"
// argument is type-promoted (int, then float, then bool, then string) and
// added under key. It turns an invocation like `find_symbol Parser lang:go`
// into the same argument map the MCP tools receive as JSON; cmd/codewalk
// does not call it.
func ParsePositionalArgs(primaryField string, args []string) (map[string]any, error) {
	out := make(map[string]any)
	for i, arg := range args {
		if i == 0 {
			out[primaryField] = arg
			continue
		}
		key, value, ok := splitKeyValue(arg)
		if !ok {
			return nil, fmt.Errorf("toolserver: argument %q is not in key:value form", arg)
		}
		out[key] = promoteType(value)
	}
	return out, nil
}

func splitKeyValue(arg string) (key, value string, ok bool) {
	for i := 0; i < len(arg); i++ {
		if arg[i] == ':' {
			return arg[:i], arg[i+1:], true
		}
	}
	return "", "", false
}

// promoteType tries int, then float, then bool, then falls back to the raw
// string, per §6's type-promotion order.
func promoteType(value string) any {
	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(value); err == nil {
		return b
	}
	return value
}
