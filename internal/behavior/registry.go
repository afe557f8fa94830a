package behavior

// Factories returns a constructor for every built-in LanguageBehavior,
// keyed by the same language id strings internal/langregistry uses. The
// pipeline's startup wiring pairs each of these with a parser factory of
// the same id before calling langregistry.Registry.Register; behavior has
// no dependency on langregistry to avoid a cycle, so that pairing happens
// one layer up.
func Factories() map[string]func() LanguageBehavior {
	return map[string]func() LanguageBehavior{
		"go":         func() LanguageBehavior { return NewGo() },
		"python":     func() LanguageBehavior { return NewPython() },
		"javascript": func() LanguageBehavior { return NewJavaScript() },
		"typescript": func() LanguageBehavior { return NewTypeScript() },
		"java":       func() LanguageBehavior { return NewJava() },
		"rust":       func() LanguageBehavior { return NewRust() },
		"csharp":     func() LanguageBehavior { return NewCSharp() },
		"php":        func() LanguageBehavior { return NewPHP() },
		"cpp":        func() LanguageBehavior { return NewCpp() },
		"zig":        func() LanguageBehavior { return NewZig() },
	}
}
