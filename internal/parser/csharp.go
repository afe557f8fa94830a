package parser

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_csharp "github.com/tree-sitter/tree-sitter-c-sharp/bindings/go"

	"github.com/standardbeagle/lci/internal/types"
)

func csharpSpec() LanguageSpec {
	return LanguageSpec{
		ID:       "csharp",
		Language: func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_csharp.Language()) },
		SymbolQuery: `
			(method_declaration name: (identifier) @method.name) @method
			(constructor_declaration name: (identifier) @method.name) @method
			(class_declaration name: (identifier) @class.name) @class
			(interface_declaration name: (identifier) @interface.name) @interface
			(struct_declaration name: (identifier) @struct.name) @struct
			(record_declaration name: (identifier) @class.name) @class
			(enum_declaration name: (identifier) @enum.name) @enum
			(property_declaration name: (identifier) @field.name) @field
		`,
		CaptureKinds: map[string]types.SymbolKind{
			"method":    types.SymbolMethod,
			"class":     types.SymbolClass,
			"interface": types.SymbolInterface,
			"struct":    types.SymbolStruct,
			"enum":      types.SymbolEnum,
			"field":     types.SymbolField,
		},
		ImportQuery:       `(using_directive (qualified_name) @import.path) @import`,
		ImportPathCapture: "import.path",
		CallQuery: `
			(invocation_expression function: (identifier) @call.method) @call
			(invocation_expression function: (member_access_expression
				expression: (identifier) @call.receiver
				name: (identifier) @call.method)) @call
		`,
		// C#'s base_list does not distinguish a base class from an
		// implemented interface, so every entry routes through ExtendsQuery;
		// RelExtends's compatibility rule already accepts interface, trait,
		// struct, enum, and class on both sides, so this validates either
		// way without a separate ImplementsQuery.
		ExtendsQuery: `
			(class_declaration
				name: (identifier) @extend.child
				(base_list (identifier) @extend.parent))
			(interface_declaration
				name: (identifier) @extend.child
				(base_list (identifier) @extend.parent))
			(struct_declaration
				name: (identifier) @extend.child
				(base_list (identifier) @extend.parent))
		`,
		UsesQuery: `
			(property_declaration type: (identifier) @use.type)
			(parameter type: (identifier) @use.type)
		`,
		DocCommentNodeKind: "comment",
	}
}
