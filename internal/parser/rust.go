package parser

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_rust "github.com/tree-sitter/tree-sitter-rust/bindings/go"

	"github.com/standardbeagle/lci/internal/types"
)

func rustSpec() LanguageSpec {
	return LanguageSpec{
		ID:       "rust",
		Language: func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_rust.Language()) },
		SymbolQuery: `
			(impl_item
				body: (declaration_list
					(function_item name: (identifier) @method.name) @method))
			(trait_item
				body: (declaration_list
					(function_item name: (identifier) @method.name) @method))
			(function_item name: (identifier) @function.name) @function
			(struct_item name: (type_identifier) @struct.name) @struct
			(enum_item name: (type_identifier) @enum.name) @enum
			(trait_item name: (type_identifier) @interface.name) @interface
			(type_item name: (type_identifier) @type_alias.name) @type_alias
			(mod_item name: (identifier) @module.name) @module
		`,
		CaptureKinds: map[string]types.SymbolKind{
			"method":     types.SymbolMethod,
			"function":   types.SymbolFunction,
			"struct":     types.SymbolStruct,
			"enum":       types.SymbolEnum,
			"interface":  types.SymbolTrait,
			"type_alias": types.SymbolTypeAlias,
			"module":     types.SymbolModule,
		},
		ImportQuery:       `(use_declaration argument: (_) @import.path) @import`,
		ImportPathCapture: "import.path",
		CallQuery: `
			(call_expression function: (identifier) @call.method) @call
			(call_expression function: (field_expression
				value: (identifier) @call.receiver
				field: (field_identifier) @call.method)) @call
			(call_expression function: (scoped_identifier
				path: (identifier) @call.receiver
				name: (identifier) @call.method)) @call.static
		`,
		// Rust's trait impls are the only syntactic form that names a
		// supertype-like relation; inherent impls (no trait: field) carry no
		// such edge, and Rust has no class-extends concept, so ExtendsQuery
		// is left unset.
		ImplementsQuery: `
			(impl_item
				trait: (type_identifier) @impl.parent
				type: (type_identifier) @impl.child)
		`,
		UsesQuery: `
			(field_declaration type: (type_identifier) @use.type)
			(parameter type: (type_identifier) @use.type)
		`,
		DocCommentNodeKind: "line_comment",
	}
}
