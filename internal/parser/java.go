package parser

import (
	tree_sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_java "github.com/tree-sitter/tree-sitter-java/bindings/go"

	"github.com/standardbeagle/lci/internal/types"
)

func javaSpec() LanguageSpec {
	return LanguageSpec{
		ID:       "java",
		Language: func() *tree_sitter.Language { return tree_sitter.NewLanguage(tree_sitter_java.Language()) },
		SymbolQuery: `
			(method_declaration name: (identifier) @method.name) @method
			(constructor_declaration name: (identifier) @method.name) @method
			(class_declaration name: (identifier) @class.name) @class
			(record_declaration name: (identifier) @class.name) @class
			(interface_declaration name: (identifier) @interface.name) @interface
			(enum_declaration name: (identifier) @enum.name) @enum
			(field_declaration declarator: (variable_declarator name: (identifier) @field.name)) @field
		`,
		CaptureKinds: map[string]types.SymbolKind{
			"method":    types.SymbolMethod,
			"class":     types.SymbolClass,
			"interface": types.SymbolInterface,
			"enum":      types.SymbolEnum,
			"field":     types.SymbolField,
		},
		ImportQuery:       `(import_declaration (scoped_identifier) @import.path) @import`,
		ImportPathCapture: "import.path",
		CallQuery: `
			(method_invocation name: (identifier) @call.method) @call
			(method_invocation object: (identifier) @call.receiver name: (identifier) @call.method) @call
		`,
		ImplementsQuery: `
			(class_declaration
				name: (identifier) @impl.child
				interfaces: (super_interfaces (type_list (type_identifier) @impl.parent)))
		`,
		ExtendsQuery: `
			(class_declaration
				name: (identifier) @extend.child
				superclass: (superclass (type_identifier) @extend.parent))
			(interface_declaration
				name: (identifier) @extend.child
				(extends_interfaces (type_list (type_identifier) @extend.parent)))
		`,
		UsesQuery: `
			(field_declaration type: (type_identifier) @use.type)
			(formal_parameter type: (type_identifier) @use.type)
			(method_declaration type: (type_identifier) @use.type)
		`,
		DocCommentNodeKind: "block_comment",
	}
}
