package behavior

import (
	"testing"

	"github.com/standardbeagle/lci/internal/resolve"
	"github.com/standardbeagle/lci/internal/types"
)

func TestGoParseVisibilityByCapitalization(t *testing.T) {
	g := NewGo()
	if v := g.ParseVisibility("func Exported() error"); v != 0 {
		t.Fatalf("expected Exported to be VisibilityPublic(0), got %v", v)
	}
	if v := g.ParseVisibility("func unexported() error"); v == 0 {
		t.Fatalf("expected unexported to not be VisibilityPublic, got %v", v)
	}
}

func TestGoImportMatchesSymbolIgnoresTrailingSlash(t *testing.T) {
	g := NewGo()
	if !g.ImportMatchesSymbol("app/pkg/util/", "app/pkg/util", "") {
		t.Fatal("expected trailing-slash-insensitive match")
	}
}

func TestTypeScriptRelativeImportSameDir(t *testing.T) {
	ts := NewTypeScript()
	if !ts.ImportMatchesSymbol("./button", "app.ui.button", "app.ui") {
		t.Fatal("expected ./button from app.ui to resolve to app.ui.button")
	}
}

func TestTypeScriptRelativeImportParentDir(t *testing.T) {
	ts := NewTypeScript()
	if !ts.ImportMatchesSymbol("../ui/button", "app.ui.button", "app.pages") {
		t.Fatal("expected ../ui/button from app.pages to resolve to app.ui.button")
	}
}

func TestJavaScriptSharesRelativeImportLogic(t *testing.T) {
	js := NewJavaScript()
	if !js.ImportMatchesSymbol("./button", "app.ui.button", "app.ui") {
		t.Fatal("expected JavaScript to resolve relative imports the same as TypeScript")
	}
}

func TestJavaWildcardImportMatchesPackageOnly(t *testing.T) {
	j := NewJava()
	if !j.ImportMatchesSymbol("com.example.*", "com.example.Person", "") {
		t.Fatal("expected wildcard import to match a direct package member")
	}
	if j.ImportMatchesSymbol("com.example.*", "com.example.nested.Person", "") {
		t.Fatal("wildcard import must not match a nested sub-package")
	}
}

func TestJavaStaticImportPrefixStripped(t *testing.T) {
	j := NewJava()
	if !j.ImportMatchesSymbol("static com.example.Utils.helper", "com.example.Utils.helper", "") {
		t.Fatal("expected static-import prefix to be stripped before comparison")
	}
}

func TestPHPImportMatchesSymbolIgnoresLeadingBackslash(t *testing.T) {
	p := NewPHP()
	if !p.ImportMatchesSymbol(`Symfony\Component`, `\Symfony\Component`, "") {
		t.Fatal("expected PHP import match to normalize leading backslash")
	}
}

func TestPythonRelativeImportParentPackage(t *testing.T) {
	p := NewPython()
	if !p.ImportMatchesSymbol("..ui.button", "app.ui.button", "app.pages.detail") {
		t.Fatal("expected ..ui.button from app.pages.detail to resolve to app.ui.button")
	}
}

func TestRustPubCrateVisibility(t *testing.T) {
	r := NewRust()
	if v := r.ParseVisibility("pub(crate) fn helper()"); v != 2 {
		t.Fatalf("expected VisibilityCrate(2), got %v", v)
	}
}

func TestRustWildcardUseImport(t *testing.T) {
	r := NewRust()
	if !r.ImportMatchesSymbol("crate::util::*", "crate::util::helper", "") {
		t.Fatal("expected glob use import to match any symbol in that module")
	}
}

func TestResolveExternalCallTargetMatchesImportedBinding(t *testing.T) {
	g := NewGo()
	scope := resolve.NewScope(1)
	scope.RegisterImportBinding(types.ImportBinding{
		Import:      types.Import{FileID: 1, Path: "net/http"},
		ExposedName: "http",
		Origin:      types.OriginExternal,
	})

	u := types.UnresolvedRelationship{
		ToName:   "Get",
		Kind:     types.RelCalls,
		Metadata: &types.RelMetadata{ReceiverExpr: "http"},
	}
	module, symbol, ok := g.ResolveExternalCallTarget(u, scope)
	if !ok {
		t.Fatal("expected an external call target to resolve via the http binding")
	}
	if module != "net/http" || symbol != "Get" {
		t.Fatalf("expected (net/http, Get), got (%s, %s)", module, symbol)
	}
}

func TestResolveExternalCallTargetRejectsUnboundReceiver(t *testing.T) {
	g := NewGo()
	scope := resolve.NewScope(1)

	u := types.UnresolvedRelationship{ToName: "doStuff", Kind: types.RelCalls}
	if _, _, ok := g.ResolveExternalCallTarget(u, scope); ok {
		t.Fatal("expected no external call target without a matching import binding")
	}
}

func TestFactoriesCoverAllRegisteredLanguages(t *testing.T) {
	factories := Factories()
	for _, id := range []string{"go", "python", "javascript", "typescript", "java", "rust", "csharp", "php", "cpp", "zig"} {
		f, ok := factories[id]
		if !ok {
			t.Fatalf("missing behavior factory for %q", id)
		}
		if got := f().LanguageID(); got != id {
			t.Fatalf("factory for %q produced behavior with LanguageID() = %q", id, got)
		}
	}
}
