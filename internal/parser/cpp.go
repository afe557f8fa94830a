package parser

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_cpp "github.com/tree-sitter/tree-sitter-cpp/bindings/go"

	"github.com/standardbeagle/lci/internal/types"
)

func cppSpec() LanguageSpec {
	return LanguageSpec{
		ID:       "cpp",
		Language: func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_cpp.Language()) },
		SymbolQuery: `
			(function_definition declarator: (function_declarator declarator: (identifier) @function.name)) @function
			(class_specifier name: (type_identifier) @class.name) @class
			(struct_specifier name: (type_identifier) @struct.name) @struct
			(enum_specifier name: (type_identifier) @enum.name) @enum
		`,
		CaptureKinds: map[string]types.SymbolKind{
			"function": types.SymbolFunction,
			"class":    types.SymbolClass,
			"struct":   types.SymbolStruct,
			"enum":     types.SymbolEnum,
		},
		ImportQuery:       `(preproc_include path: (_) @import.path) @import`,
		ImportPathCapture: "import.path",
		CallQuery: `
			(call_expression function: (identifier) @call.method) @call
			(call_expression function: (field_expression
				argument: (identifier) @call.receiver
				field: (field_identifier) @call.method)) @call
		`,
		// C++'s base_class_clause does not distinguish an interface base
		// (pure-virtual) from a concrete base, so every base-list entry
		// routes through ExtendsQuery; no separate ImplementsQuery.
		ExtendsQuery: `
			(class_specifier
				name: (type_identifier) @extend.child
				(base_class_clause (type_identifier) @extend.parent))
			(struct_specifier
				name: (type_identifier) @extend.child
				(base_class_clause (type_identifier) @extend.parent))
		`,
		UsesQuery: `
			(parameter_declaration type: (type_identifier) @use.type)
			(field_declaration type: (type_identifier) @use.type)
		`,
		DocCommentNodeKind: "comment",
	}
}
