package parser

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_go "github.com/tree-sitter/tree-sitter-go/bindings/go"

	"github.com/standardbeagle/lci/internal/types"
)

func goSpec() LanguageSpec {
	return LanguageSpec{
		ID:       "go",
		Language: func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_go.Language()) },
		SymbolQuery: `
			(function_declaration name: (identifier) @function.name) @function
			(method_declaration name: (field_identifier) @method.name) @method
			(type_declaration (type_spec name: (type_identifier) @struct.name type: (struct_type))) @struct
			(type_declaration (type_spec name: (type_identifier) @interface.name type: (interface_type))) @interface
			(type_declaration (type_spec name: (type_identifier) @type_alias.name)) @type_alias
			(const_spec name: (identifier) @constant.name) @constant
			(var_spec name: (identifier) @variable.name) @variable
		`,
		CaptureKinds: map[string]types.SymbolKind{
			"function":   types.SymbolFunction,
			"method":     types.SymbolMethod,
			"struct":     types.SymbolStruct,
			"interface":  types.SymbolInterface,
			"type_alias": types.SymbolTypeAlias,
			"constant":   types.SymbolConstant,
			"variable":   types.SymbolVariable,
		},
		ImportQuery:       `(import_spec path: (interpreted_string_literal) @import.path) @import`,
		ImportPathCapture: "import.path",
		CallQuery: `
			(call_expression function: (identifier) @call.method) @call
			(call_expression function: (selector_expression
				operand: (identifier) @call.receiver
				field: (field_identifier) @call.method)) @call
		`,
		// Go has no syntactic implements/extends: interface satisfaction is
		// structural and struct embedding is not a declared relation
		// tree-sitter can read off the AST, so ImplementsQuery/ExtendsQuery
		// are left unset (§4.1; see DESIGN.md).
		UsesQuery: `
			(parameter_declaration type: (type_identifier) @use.type)
			(field_declaration type: (type_identifier) @use.type)
			(function_declaration result: (type_identifier) @use.type)
			(method_declaration result: (type_identifier) @use.type)
		`,
		DocCommentNodeKind: "comment",
	}
}
