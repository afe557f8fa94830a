package parser

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_javascript "github.com/tree-sitter/tree-sitter-javascript/bindings/go"

	"github.com/standardbeagle/lci/internal/types"
)

func javascriptSpec() LanguageSpec {
	return LanguageSpec{
		ID:       "javascript",
		Language: func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_javascript.Language()) },
		SymbolQuery: `
			(function_declaration name: (identifier) @function.name) @function
			(generator_function_declaration name: (identifier) @function.name) @function
			(variable_declarator
				name: (identifier) @function.name
				value: [(arrow_function) (function_expression) (generator_function)]) @function
			(method_definition name: (property_identifier) @method.name) @method
			(class_declaration name: (identifier) @class.name) @class
			(variable_declarator
				name: (identifier) @variable.name
				value: (_) @variable.value) @variable
		`,
		CaptureKinds: map[string]types.SymbolKind{
			"function": types.SymbolFunction,
			"method":   types.SymbolMethod,
			"class":    types.SymbolClass,
			"variable": types.SymbolVariable,
		},
		ImportQuery:       `(import_statement source: (string) @import.source) @import`,
		ImportPathCapture: "import.source",
		CallQuery: `
			(call_expression function: (identifier) @call.method) @call
			(call_expression function: (member_expression
				object: (identifier) @call.receiver
				property: (property_identifier) @call.method)) @call
		`,
		ExtendsQuery: `
			(class_declaration
				name: (identifier) @extend.child
				(class_heritage (identifier) @extend.parent))
		`,
		UsesQuery: `
			(new_expression constructor: (identifier) @use.type)
		`,
		DocCommentNodeKind: "comment",
	}
}
