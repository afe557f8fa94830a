package parser

import (
	"fmt"
	"strings"
	"sync"

	tree_sitter "github.com/tree-sitter/go-tree-sitter"

	"github.com/standardbeagle/lci/internal/types"
)

// Engine runs one LanguageSpec's queries against source bytes and turns the
// matches into Raw* types. One Engine instance is shared by every worker
// goroutine in the PARSE stage; tree-sitter parsers are not safe for
// concurrent use, so each call takes its own *tree_sitter.Parser out of a
// pool instead of sharing one across goroutines (§5 "PARSE workers run
// concurrently; parser state must not be shared without synchronization").
type Engine struct {
	spec LanguageSpec

	mu              sync.Mutex
	language        *tree_sitter.Language
	symbolQuery     *tree_sitter.Query
	importQuery     *tree_sitter.Query
	callQuery       *tree_sitter.Query
	implementsQuery *tree_sitter.Query
	extendsQuery    *tree_sitter.Query
	usesQuery       *tree_sitter.Query
	initErr         error
	initialized     bool
	parserPool      sync.Pool
}

// NewEngine builds an Engine for one LanguageSpec. Query compilation is
// deferred to the first Parse call so a language nobody indexes never pays
// tree-sitter's query-compile cost (§9 "languages are enabled lazily").
func NewEngine(spec LanguageSpec) *Engine {
	e := &Engine{spec: spec}
	e.parserPool = sync.Pool{New: func() any { return tree_sitter.NewParser() }}
	return e
}

func (e *Engine) LanguageID() string { return e.spec.ID }

func (e *Engine) ensureInit() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.initialized {
		return e.initErr
	}
	e.initialized = true

	e.language = e.spec.Language()
	if e.spec.SymbolQuery != "" {
		q, err := tree_sitter.NewQuery(e.language, e.spec.SymbolQuery)
		if err != nil {
			e.initErr = fmt.Errorf("parser %s: compile symbol query: %w", e.spec.ID, err)
			return e.initErr
		}
		e.symbolQuery = q
	}
	if e.spec.ImportQuery != "" {
		q, err := tree_sitter.NewQuery(e.language, e.spec.ImportQuery)
		if err != nil {
			e.initErr = fmt.Errorf("parser %s: compile import query: %w", e.spec.ID, err)
			return e.initErr
		}
		e.importQuery = q
	}
	if e.spec.CallQuery != "" {
		q, err := tree_sitter.NewQuery(e.language, e.spec.CallQuery)
		if err != nil {
			e.initErr = fmt.Errorf("parser %s: compile call query: %w", e.spec.ID, err)
			return e.initErr
		}
		e.callQuery = q
	}
	if e.spec.ImplementsQuery != "" {
		q, err := tree_sitter.NewQuery(e.language, e.spec.ImplementsQuery)
		if err != nil {
			e.initErr = fmt.Errorf("parser %s: compile implements query: %w", e.spec.ID, err)
			return e.initErr
		}
		e.implementsQuery = q
	}
	if e.spec.ExtendsQuery != "" {
		q, err := tree_sitter.NewQuery(e.language, e.spec.ExtendsQuery)
		if err != nil {
			e.initErr = fmt.Errorf("parser %s: compile extends query: %w", e.spec.ID, err)
			return e.initErr
		}
		e.extendsQuery = q
	}
	if e.spec.UsesQuery != "" {
		q, err := tree_sitter.NewQuery(e.language, e.spec.UsesQuery)
		if err != nil {
			e.initErr = fmt.Errorf("parser %s: compile uses query: %w", e.spec.ID, err)
			return e.initErr
		}
		e.usesQuery = q
	}
	return nil
}

// Parse implements the generic half of the Parser contract: symbol/import/
// call extraction driven entirely by the LanguageSpec's queries.
func (e *Engine) Parse(content []byte, ctx *Context) (Result, error) {
	if err := e.ensureInit(); err != nil {
		return Result{}, err
	}

	tsParser, _ := e.parserPool.Get().(*tree_sitter.Parser)
	defer e.parserPool.Put(tsParser)
	if err := tsParser.SetLanguage(e.language); err != nil {
		return Result{}, fmt.Errorf("parser %s: set language: %w", e.spec.ID, err)
	}

	tree := tsParser.Parse(content, nil)
	if tree == nil {
		return Result{}, fmt.Errorf("parser %s: tree-sitter returned no tree", e.spec.ID)
	}
	defer tree.Close()

	e.collectDocComments(tree.RootNode(), content, ctx)

	var res Result
	if e.symbolQuery != nil {
		res.Symbols = e.extractSymbols(tree.RootNode(), content, ctx)
	}
	if e.importQuery != nil {
		res.Imports = e.extractImports(tree.RootNode(), content)
	}
	if e.callQuery != nil {
		res.Calls = e.extractCalls(tree.RootNode(), content, res.Symbols)
		res.Relationships = append(res.Relationships, callsToRelationships(res.Calls)...)
	}
	if e.implementsQuery != nil {
		res.Relationships = append(res.Relationships, e.extractTypeEdges(e.implementsQuery, tree.RootNode(), content, "impl", types.RelImplements)...)
	}
	if e.extendsQuery != nil {
		res.Relationships = append(res.Relationships, e.extractTypeEdges(e.extendsQuery, tree.RootNode(), content, "extend", types.RelExtends)...)
	}
	if e.usesQuery != nil {
		res.Relationships = append(res.Relationships, e.extractUses(tree.RootNode(), content, res.Symbols)...)
	}
	res.Relationships = append(res.Relationships, definesRelationships(res.Symbols)...)
	return res, nil
}

// callsToRelationships turns every call site whose enclosing function
// extractCalls identified into a RawRelationship, so COLLECT sees the same
// from/to-by-name shape regardless of which language produced it. A call
// site with no enclosing symbol (e.g. a package-level var initializer) is
// dropped rather than attributed to the wrong caller. The receiver
// expression and static-dispatch flag ride along as Metadata so
// resolve_external_call_target and behavior.ResolveMethodCall both see the
// same evidence the parser captured.
func callsToRelationships(calls []types.MethodCall) []types.RawRelationship {
	var out []types.RawRelationship
	for _, call := range calls {
		if call.Caller == "" {
			continue
		}
		out = append(out, types.RawRelationship{
			FromName:  call.Caller,
			FromRange: call.CallerRange,
			ToName:    call.MethodName,
			ToRange:   call.Range,
			Kind:      types.RelCalls,
			Metadata: &types.RelMetadata{
				ReceiverExpr: call.Receiver,
				IsStatic:     call.IsStatic,
				CallSite:     call.Range,
			},
		})
	}
	return out
}

// extractTypeEdges runs an implements/extends-shaped query (one child/parent
// type-name pair per match) and turns every match into a RawRelationship.
// Unlike calls, the subtype is captured directly at the declaration site, so
// no enclosing-symbol search is needed.
func (e *Engine) extractTypeEdges(q *tree_sitter.Query, root *tree_sitter.Node, content []byte, prefix string, kind types.RelationshipKind) []types.RawRelationship {
	qc := tree_sitter.NewQueryCursor()
	defer qc.Close()
	matches := qc.Matches(q, root, content)
	names := q.CaptureNames()

	childCapture, parentCapture := prefix+".child", prefix+".parent"

	var out []types.RawRelationship
	for {
		match := matches.Next()
		if match == nil {
			break
		}
		var child, parent string
		var childRange, parentRange types.Range
		for _, c := range match.Captures {
			node := c.Node
			switch names[c.Index] {
			case childCapture:
				child = nodeText(content, &node)
				childRange = nodeRange(&node)
			case parentCapture:
				parent = nodeText(content, &node)
				parentRange = nodeRange(&node)
			}
		}
		if child == "" || parent == "" {
			continue
		}
		out = append(out, types.RawRelationship{
			FromName:  child,
			FromRange: childRange,
			ToName:    parent,
			ToRange:   parentRange,
			Kind:      kind,
		})
	}
	return out
}

// extractUses runs the UsesQuery, capturing one referenced type name per
// match, and attributes it to the tightest enclosing declaration the same
// way extractCalls attributes a call site, but over the broader set of
// candidate kinds a type reference can sit inside (functions, methods, and
// the fields/containers that carry a type annotation directly).
func (e *Engine) extractUses(root *tree_sitter.Node, content []byte, symbols []types.RawSymbol) []types.RawRelationship {
	qc := tree_sitter.NewQueryCursor()
	defer qc.Close()
	matches := qc.Matches(e.usesQuery, root, content)
	names := e.usesQuery.CaptureNames()

	var out []types.RawRelationship
	for {
		match := matches.Next()
		if match == nil {
			break
		}
		var typeName string
		var typeRange types.Range
		for _, c := range match.Captures {
			if names[c.Index] == "use.type" {
				node := c.Node
				typeName = nodeText(content, &node)
				typeRange = nodeRange(&node)
			}
		}
		if typeName == "" {
			continue
		}
		if name, rng, ok := enclosingSymbol(symbols, typeRange, isUseSite); ok {
			out = append(out, types.RawRelationship{
				FromName:  name,
				FromRange: rng,
				ToName:    typeName,
				ToRange:   typeRange,
				Kind:      types.RelUses,
			})
		}
	}
	return out
}

// isUseSite is the candidate predicate for extractUses: any declaration
// shape that can carry a type annotation a UsesQuery might capture.
func isUseSite(k types.SymbolKind) bool {
	switch k {
	case types.SymbolFunction, types.SymbolMethod, types.SymbolField, types.SymbolVariable, types.SymbolConstant:
		return true
	default:
		return false
	}
}

// definesRelationships derives container->member "defines" edges purely
// from range containment over the symbols a file's SymbolQuery already
// extracted; no dedicated grammar query is needed since containment between
// already-known ranges mechanically determines it.
func definesRelationships(symbols []types.RawSymbol) []types.RawRelationship {
	var out []types.RawRelationship
	for _, member := range symbols {
		if !isDefinable(member.Kind) {
			continue
		}
		if name, rng, ok := enclosingContainer(symbols, member); ok {
			out = append(out, types.RawRelationship{
				FromName:  name,
				FromRange: rng,
				ToName:    member.Name,
				ToRange:   member.Range,
				Kind:      types.RelDefines,
			})
		}
	}
	return out
}

func isDefinable(k types.SymbolKind) bool {
	switch k {
	case types.SymbolFunction, types.SymbolMethod, types.SymbolField, types.SymbolConstant, types.SymbolVariable:
		return true
	default:
		return false
	}
}

func isContainer(k types.SymbolKind) bool {
	switch k {
	case types.SymbolClass, types.SymbolStruct, types.SymbolEnum, types.SymbolTrait, types.SymbolInterface, types.SymbolModule:
		return true
	default:
		return false
	}
}

// enclosingContainer finds the tightest container symbol whose range
// strictly contains member's, skipping member itself.
func enclosingContainer(symbols []types.RawSymbol, member types.RawSymbol) (name string, rng types.Range, ok bool) {
	best := -1
	for i, sym := range symbols {
		if !isContainer(sym.Kind) {
			continue
		}
		if sym.Range == member.Range {
			continue
		}
		if !rangeContains(sym.Range, member.Range) {
			continue
		}
		if best == -1 || rangeNarrower(sym.Range, symbols[best].Range) {
			best = i
		}
	}
	if best == -1 {
		return "", types.Range{}, false
	}
	return symbols[best].Name, symbols[best].Range, true
}

func (e *Engine) extractSymbols(root *tree_sitter.Node, content []byte, ctx *Context) []types.RawSymbol {
	qc := tree_sitter.NewQueryCursor()
	defer qc.Close()
	matches := qc.Matches(e.symbolQuery, root, content)
	names := e.symbolQuery.CaptureNames()

	var out []types.RawSymbol
	for {
		match := matches.Next()
		if match == nil {
			break
		}

		nameText := map[string]string{}
		for _, c := range match.Captures {
			cn := names[c.Index]
			if strings.HasSuffix(cn, ".name") {
				nameText[strings.TrimSuffix(cn, ".name")] = nodeText(content, &c.Node)
			}
		}

		for _, c := range match.Captures {
			cn := names[c.Index]
			kind, ok := e.spec.CaptureKinds[cn]
			if !ok {
				continue
			}
			node := c.Node
			sym := types.RawSymbol{
				Name:      nameText[cn],
				Kind:      kind,
				Range:     nodeRange(&node),
				Signature: firstLine(nodeText(content, &node)),
			}
			if sym.Name == "" {
				sym.Name = firstLine(sym.Signature)
			}
			sym.DocComment = ctx.PrecedingDoc[int(node.StartPosition().Row)]
			out = append(out, sym)
		}
	}
	return out
}

func (e *Engine) extractImports(root *tree_sitter.Node, content []byte) []types.RawImport {
	qc := tree_sitter.NewQueryCursor()
	defer qc.Close()
	matches := qc.Matches(e.importQuery, root, content)
	names := e.importQuery.CaptureNames()

	var out []types.RawImport
	for {
		match := matches.Next()
		if match == nil {
			break
		}
		var imp types.RawImport
		seen := false
		for _, c := range match.Captures {
			cn := names[c.Index]
			node := c.Node
			switch cn {
			case e.spec.ImportPathCapture:
				imp.Path = trimQuotes(nodeText(content, &node))
				seen = true
			case "import.alias":
				imp.Alias = nodeText(content, &node)
			case "import.glob":
				imp.IsGlob = true
			case "import.type":
				imp.IsTypeOnly = true
			}
		}
		if seen {
			out = append(out, imp)
		}
	}
	return out
}

func (e *Engine) extractCalls(root *tree_sitter.Node, content []byte, symbols []types.RawSymbol) []types.MethodCall {
	qc := tree_sitter.NewQueryCursor()
	defer qc.Close()
	matches := qc.Matches(e.callQuery, root, content)
	names := e.callQuery.CaptureNames()

	var out []types.MethodCall
	for {
		match := matches.Next()
		if match == nil {
			break
		}
		var call types.MethodCall
		seen := false
		for _, c := range match.Captures {
			cn := names[c.Index]
			node := c.Node
			switch cn {
			case "call.method":
				call.MethodName = nodeText(content, &node)
				call.Range = nodeRange(&node)
				seen = true
			case "call.receiver":
				call.Receiver = nodeText(content, &node)
			case "call.static":
				call.IsStatic = true
			}
		}
		if seen {
			if name, rng, ok := enclosingSymbol(symbols, call.Range, isCallSite); ok {
				call.Caller = name
				call.CallerRange = rng
			}
			out = append(out, call)
		}
	}
	return out
}

// isCallSite is the candidate predicate for extractCalls: only functions
// and methods can be a call's caller.
func isCallSite(k types.SymbolKind) bool {
	return k == types.SymbolFunction || k == types.SymbolMethod
}

// enclosingSymbol returns the tightest symbol matching isCandidate whose
// range contains target's start, the same innermost-wins rule a nested
// closure's call site should resolve against. Returns ok=false when nothing
// at file scope matches (a package-level var initializer, say).
func enclosingSymbol(symbols []types.RawSymbol, target types.Range, isCandidate func(types.SymbolKind) bool) (name string, rng types.Range, ok bool) {
	best := -1
	for i, sym := range symbols {
		if !isCandidate(sym.Kind) {
			continue
		}
		if !rangeContains(sym.Range, target) {
			continue
		}
		if best == -1 || rangeNarrower(sym.Range, symbols[best].Range) {
			best = i
		}
	}
	if best == -1 {
		return "", types.Range{}, false
	}
	return symbols[best].Name, symbols[best].Range, true
}

// rangeContains reports whether inner falls entirely within outer.
func rangeContains(outer, inner types.Range) bool {
	return !posBefore(inner.Start(), outer.Start()) && !posBefore(outer.End(), inner.End())
}

// rangeNarrower reports whether a spans fewer lines than b, used to prefer
// the innermost enclosing symbol when ranges nest (a method inside a type
// with both matching SymbolFunction/SymbolMethod is not possible here, but
// nested function literals in the call-bearing languages are).
func rangeNarrower(a, b types.Range) bool {
	return (a.EndLine - a.StartLine) < (b.EndLine - b.StartLine)
}

func posBefore(a, b types.Position) bool {
	if a.Line != b.Line {
		return a.Line < b.Line
	}
	return a.Column < b.Column
}

// collectDocComments walks top-level and nested comment nodes once per file
// and records each one keyed by the line immediately following it, so
// extractSymbols can attach documentation without re-walking the tree
// per-symbol (§4.1 "doc-comment extraction is O(file), not O(symbols)").
func (e *Engine) collectDocComments(root *tree_sitter.Node, content []byte, ctx *Context) {
	if e.spec.DocCommentNodeKind == "" {
		return
	}
	walkBounded(root, 0, func(n *tree_sitter.Node, depth int) bool {
		if n.Kind() == e.spec.DocCommentNodeKind {
			nextLine := int(n.EndPosition().Row) + 1
			text := strings.TrimSpace(nodeText(content, n))
			if existing, ok := ctx.PrecedingDoc[nextLine]; ok {
				ctx.PrecedingDoc[nextLine] = existing + "\n" + text
			} else {
				ctx.PrecedingDoc[nextLine] = text
			}
		}
		return true
	})
}

// walkBounded visits every node in the tree depth-first, stopping a branch
// once it passes MaxTraversalDepth (§4.1).
func walkBounded(n *tree_sitter.Node, depth int, visit func(*tree_sitter.Node, int) bool) {
	if n == nil || depth > MaxTraversalDepth {
		return
	}
	if !visit(n, depth) {
		return
	}
	count := int(n.ChildCount())
	for i := 0; i < count; i++ {
		child := n.Child(uint(i))
		walkBounded(child, depth+1, visit)
	}
}

func nodeText(content []byte, n *tree_sitter.Node) string {
	start, end := n.StartByte(), n.EndByte()
	if end > uint(len(content)) || start > end {
		return ""
	}
	return string(content[start:end])
}

func nodeRange(n *tree_sitter.Node) types.Range {
	start, end := n.StartPosition(), n.EndPosition()
	return types.Range{
		StartLine: int(start.Row) + 1,
		StartCol:  int(start.Column) + 1,
		EndLine:   int(end.Row) + 1,
		EndCol:    int(end.Column) + 1,
	}
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func trimQuotes(s string) string {
	s = strings.TrimSpace(s)
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' && last == '"') || (first == '\'' && last == '\'') || (first == '`' && last == '`') {
			return s[1 : len(s)-1]
		}
	}
	return s
}
