package parser

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_php "github.com/tree-sitter/tree-sitter-php/bindings/go"

	"github.com/standardbeagle/lci/internal/types"
)

func phpSpec() LanguageSpec {
	return LanguageSpec{
		ID:       "php",
		Language: func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_php.LanguagePHP()) },
		SymbolQuery: `
			(class_declaration name: (name) @class.name) @class
			(interface_declaration name: (name) @interface.name) @interface
			(trait_declaration name: (name) @trait.name) @trait
			(enum_declaration name: (name) @enum.name) @enum
			(function_definition name: (name) @function.name) @function
			(method_declaration name: (name) @method.name) @method
		`,
		CaptureKinds: map[string]types.SymbolKind{
			"class":     types.SymbolClass,
			"interface": types.SymbolInterface,
			"trait":     types.SymbolTrait,
			"enum":      types.SymbolEnum,
			"function":  types.SymbolFunction,
			"method":    types.SymbolMethod,
		},
		ImportQuery:       `(namespace_use_clause (qualified_name) @import.path) @import`,
		ImportPathCapture: "import.path",
		CallQuery: `
			(function_call_expression function: (name) @call.method) @call
			(member_call_expression
				object: (variable_name) @call.receiver
				name: (name) @call.method) @call
			(scoped_call_expression
				scope: (name) @call.receiver
				name: (name) @call.method) @call.static
		`,
		ImplementsQuery: `
			(class_declaration
				name: (name) @impl.child
				(class_interface_clause (name) @impl.parent))
		`,
		ExtendsQuery: `
			(class_declaration
				name: (name) @extend.child
				(base_clause (name) @extend.parent))
			(interface_declaration
				name: (name) @extend.child
				(base_clause (name) @extend.parent))
		`,
		UsesQuery: `
			(property_declaration type: (name) @use.type)
			(simple_parameter type: (name) @use.type)
		`,
		DocCommentNodeKind: "comment",
	}
}
