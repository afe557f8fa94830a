package parser

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_python "github.com/tree-sitter/tree-sitter-python/bindings/go"

	"github.com/standardbeagle/lci/internal/types"
)

func pythonSpec() LanguageSpec {
	return LanguageSpec{
		ID:       "python",
		Language: func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_python.Language()) },
		SymbolQuery: `
			(class_definition
				body: (block
					(function_definition name: (identifier) @method.name) @method))
			(function_definition name: (identifier) @function.name) @function
			(class_definition name: (identifier) @class.name) @class
		`,
		CaptureKinds: map[string]types.SymbolKind{
			"method":   types.SymbolMethod,
			"function": types.SymbolFunction,
			"class":    types.SymbolClass,
		},
		ImportQuery:       `(import_from_statement module_name: (dotted_name) @import.path) @import`,
		ImportPathCapture: "import.path",
		CallQuery: `
			(call function: (identifier) @call.method) @call
			(call function: (attribute
				object: (identifier) @call.receiver
				attribute: (identifier) @call.method)) @call
		`,
		ExtendsQuery: `
			(class_definition
				name: (identifier) @extend.child
				superclasses: (argument_list (identifier) @extend.parent))
		`,
		// Python's class statement has no separate implements form distinct
		// from superclasses, so ImplementsQuery is left unset; every base in
		// superclasses (ABCs included) surfaces as RelExtends instead.
		UsesQuery: `
			(typed_parameter type: (identifier) @use.type)
			(typed_default_parameter type: (identifier) @use.type)
		`,
		DocCommentNodeKind: "comment",
	}
}
