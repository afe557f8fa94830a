package parser

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_zig "github.com/tree-sitter-grammars/tree-sitter-zig/bindings/go"

	"github.com/standardbeagle/lci/internal/types"
)

func zigSpec() LanguageSpec {
	return LanguageSpec{
		ID:       "zig",
		Language: func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_zig.Language()) },
		SymbolQuery: `
			(function_declaration (identifier) @function.name) @function
			(variable_declaration
				(identifier) @struct.name
				(struct_declaration) @struct)
			(variable_declaration
				(identifier) @struct.name
				(union_declaration) @struct)
		`,
		CaptureKinds: map[string]types.SymbolKind{
			"function": types.SymbolFunction,
			"struct":   types.SymbolStruct,
		},
		// Zig has no inheritance or interface-satisfaction concept, so
		// ImplementsQuery/ExtendsQuery/UsesQuery are left unset (see DESIGN.md).
		DocCommentNodeKind: "line_comment",
	}
}
