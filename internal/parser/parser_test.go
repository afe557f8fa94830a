package parser

import (
	"testing"

	"github.com/standardbeagle/lci/internal/types"
)

func TestFactoriesCoverAllRegisteredLanguages(t *testing.T) {
	factories := Factories()
	for _, id := range []string{"go", "python", "javascript", "typescript", "java", "rust", "csharp", "php", "cpp", "zig"} {
		f, ok := factories[id]
		if !ok {
			t.Fatalf("missing parser factory for %q", id)
		}
		if got := f().LanguageID(); got != id {
			t.Fatalf("factory for %q produced parser with LanguageID() = %q", id, got)
		}
	}
}

func TestGoParserExtractsFunctionsAndStruct(t *testing.T) {
	code := []byte(`package main

import "fmt"

// Calculate adds two numbers.
func Calculate(a, b int) int {
	return a + b
}

type Calculator struct {
	precision int
}

func (c *Calculator) Add(a, b float64) float64 {
	fmt.Println(a)
	return a + b
}
`)
	p := NewGoParser()
	ctx := NewContext(1, "main.go")
	res, err := p.Parse(code, ctx)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	var gotFunc, gotStruct, gotMethod bool
	for _, sym := range res.Symbols {
		switch {
		case sym.Name == "Calculate" && sym.Kind == types.SymbolFunction:
			gotFunc = true
			if sym.DocComment == "" {
				t.Error("expected Calculate to carry its preceding doc comment")
			}
		case sym.Name == "Calculator" && sym.Kind == types.SymbolStruct:
			gotStruct = true
		case sym.Name == "Add" && sym.Kind == types.SymbolMethod:
			gotMethod = true
		}
	}
	if !gotFunc || !gotStruct || !gotMethod {
		t.Fatalf("expected Calculate/Calculator/Add symbols, got %+v", res.Symbols)
	}

	if len(res.Imports) != 1 || res.Imports[0].Path != "fmt" {
		t.Fatalf("expected single fmt import, got %+v", res.Imports)
	}

	foundCall := false
	for _, c := range res.Calls {
		if c.MethodName == "Println" && c.Receiver == "fmt" {
			foundCall = true
		}
	}
	if !foundCall {
		t.Fatalf("expected fmt.Println call, got %+v", res.Calls)
	}
}

func TestPythonParserExtractsMethodUnderClass(t *testing.T) {
	code := []byte(`class Greeter:
    def greet(self, name):
        return "hi " + name
`)
	p := NewPythonParser()
	ctx := NewContext(1, "greeter.py")
	res, err := p.Parse(code, ctx)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	var gotClass, gotMethod bool
	for _, sym := range res.Symbols {
		if sym.Name == "Greeter" && sym.Kind == types.SymbolClass {
			gotClass = true
		}
		if sym.Name == "greet" && sym.Kind == types.SymbolMethod {
			gotMethod = true
		}
	}
	if !gotClass || !gotMethod {
		t.Fatalf("expected Greeter class and greet method, got %+v", res.Symbols)
	}
}

func TestTypeScriptParserExtractsInterfaceAndClass(t *testing.T) {
	code := []byte(`import { Component } from "./component";

export interface Renderable {
	render(): string;
}

export class Button implements Renderable {
	render(): string {
		return "button";
	}
}
`)
	p := NewTypeScriptParser()
	ctx := NewContext(1, "button.ts")
	res, err := p.Parse(code, ctx)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	var gotInterface, gotClass bool
	for _, sym := range res.Symbols {
		if sym.Name == "Renderable" && sym.Kind == types.SymbolInterface {
			gotInterface = true
		}
		if sym.Name == "Button" && sym.Kind == types.SymbolClass {
			gotClass = true
		}
	}
	if !gotInterface || !gotClass {
		t.Fatalf("expected Renderable interface and Button class, got %+v", res.Symbols)
	}
	if len(res.Imports) != 1 || res.Imports[0].Path != "./component" {
		t.Fatalf("expected single relative import, got %+v", res.Imports)
	}

	foundImplements := false
	for _, rel := range res.Relationships {
		if rel.Kind == types.RelImplements && rel.FromName == "Button" && rel.ToName == "Renderable" {
			foundImplements = true
		}
	}
	if !foundImplements {
		t.Fatalf("expected Button implements Renderable, got %+v", res.Relationships)
	}
}

func TestJavaParserExtractsExtendsAndUses(t *testing.T) {
	code := []byte(`class Animal {}

class Dog extends Animal {
	private Animal friend;

	void play(Animal other) {}
}
`)
	p := NewJavaParser()
	ctx := NewContext(1, "Dog.java")
	res, err := p.Parse(code, ctx)
	if err != nil {
		t.Fatalf("unexpected parse error: %v", err)
	}

	foundExtends := false
	for _, rel := range res.Relationships {
		if rel.Kind == types.RelExtends && rel.FromName == "Dog" && rel.ToName == "Animal" {
			foundExtends = true
		}
	}
	if !foundExtends {
		t.Fatalf("expected Dog extends Animal, got %+v", res.Relationships)
	}

	usesCount := 0
	for _, rel := range res.Relationships {
		if rel.Kind == types.RelUses && rel.ToName == "Animal" {
			usesCount++
		}
	}
	if usesCount == 0 {
		t.Fatalf("expected at least one Uses edge to Animal, got %+v", res.Relationships)
	}
}
