package parser

// languageEngine wraps a spec-bound Engine so it satisfies the Parser
// interface directly; every per-language NewXParser constructor below just
// instantiates one of these with its own LanguageSpec.
type languageEngine struct {
	*Engine
}

func newLanguageEngine(spec LanguageSpec) *languageEngine {
	return &languageEngine{Engine: NewEngine(spec)}
}

func NewGoParser() Parser         { return newLanguageEngine(goSpec()) }
func NewPythonParser() Parser     { return newLanguageEngine(pythonSpec()) }
func NewJavaScriptParser() Parser { return newLanguageEngine(javascriptSpec()) }
func NewTypeScriptParser() Parser { return newLanguageEngine(typescriptSpec()) }
func NewJavaParser() Parser       { return newLanguageEngine(javaSpec()) }
func NewRustParser() Parser       { return newLanguageEngine(rustSpec()) }
func NewCSharpParser() Parser     { return newLanguageEngine(csharpSpec()) }
func NewPHPParser() Parser        { return newLanguageEngine(phpSpec()) }
func NewCppParser() Parser        { return newLanguageEngine(cppSpec()) }
func NewZigParser() Parser        { return newLanguageEngine(zigSpec()) }

// Factories returns a constructor for every built-in Parser, keyed the same
// way internal/behavior.Factories keys its LanguageBehavior constructors, so
// startup wiring can zip the two maps together by language id.
func Factories() map[string]func() Parser {
	return map[string]func() Parser{
		"go":         NewGoParser,
		"python":     NewPythonParser,
		"javascript": NewJavaScriptParser,
		"typescript": NewTypeScriptParser,
		"java":       NewJavaParser,
		"rust":       NewRustParser,
		"csharp":     NewCSharpParser,
		"php":        NewPHPParser,
		"cpp":        NewCppParser,
		"zig":        NewZigParser,
	}
}
