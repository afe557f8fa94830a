package parser

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_typescript "github.com/tree-sitter/tree-sitter-typescript/bindings/go"

	"github.com/standardbeagle/lci/internal/types"
)

func typescriptSpec() LanguageSpec {
	return LanguageSpec{
		ID: "typescript",
		Language: func() *tree_sitter.Language {
			return tree_sitter.NewLanguage(tree_sitter_typescript.LanguageTypescript())
		},
		SymbolQuery: `
			(function_declaration name: (identifier) @function.name) @function
			(generator_function_declaration name: (identifier) @function.name) @function
			(method_definition name: (property_identifier) @method.name) @method
			(function_expression name: (identifier) @function.name) @function
			(class_declaration name: (type_identifier) @class.name) @class
			(interface_declaration name: (type_identifier) @interface.name) @interface
			(type_alias_declaration name: (type_identifier) @type_alias.name) @type_alias
			(enum_declaration name: (identifier) @enum.name) @enum
		`,
		CaptureKinds: map[string]types.SymbolKind{
			"function":   types.SymbolFunction,
			"method":     types.SymbolMethod,
			"class":      types.SymbolClass,
			"interface":  types.SymbolInterface,
			"type_alias": types.SymbolTypeAlias,
			"enum":       types.SymbolEnum,
		},
		ImportQuery:       `(import_statement source: (string) @import.source) @import`,
		ImportPathCapture: "import.source",
		CallQuery: `
			(call_expression function: (identifier) @call.method) @call
			(call_expression function: (member_expression
				object: (identifier) @call.receiver
				property: (property_identifier) @call.method)) @call
		`,
		ImplementsQuery: `
			(class_declaration
				name: (type_identifier) @impl.child
				(class_heritage (implements_clause (type_identifier) @impl.parent)))
		`,
		ExtendsQuery: `
			(class_declaration
				name: (type_identifier) @extend.child
				(class_heritage (extends_clause value: (identifier) @extend.parent)))
			(interface_declaration
				name: (type_identifier) @extend.child
				(extends_clause (type_identifier) @extend.parent))
		`,
		UsesQuery: `
			(required_parameter type: (type_annotation (type_identifier) @use.type))
			(optional_parameter type: (type_annotation (type_identifier) @use.type))
			(public_field_definition type: (type_annotation (type_identifier) @use.type))
		`,
		DocCommentNodeKind: "comment",
	}
}
