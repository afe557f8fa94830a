package types

// Visibility classifies how broadly a symbol may be referenced from outside
// its declaring scope. The mapping from language-specific modifiers
// (public/private/protected/internal/fileprivate/unexported-by-capitalization)
// onto this fixed set is the responsibility of each language's behavior; see
// internal/behavior for the per-language mapping tests (§9 open question).
type Visibility uint8

const (
	// VisibilityPublic is reachable from any file in any module.
	VisibilityPublic Visibility = iota
	// VisibilityModule is reachable from the same logical module/namespace
	// (e.g. Rust's `pub(crate)`-adjacent module scoping, a JS/TS file's
	// unexported-but-same-module bindings).
	VisibilityModule
	// VisibilityCrate is reachable anywhere in the same compilation unit
	// but not outside it (Rust crate-visibility, Java package-private,
	// Go's identifier-capitalization rule applied at the package level).
	VisibilityCrate
	// VisibilityPrivate is reachable only within its immediate declaring
	// scope (a class body, a single file).
	VisibilityPrivate
)

func (v Visibility) String() string {
	switch v {
	case VisibilityPublic:
		return "public"
	case VisibilityModule:
		return "module"
	case VisibilityCrate:
		return "crate"
	case VisibilityPrivate:
		return "private"
	default:
		return "unknown"
	}
}
