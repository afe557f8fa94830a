package langregistry

import "testing"

type fakeParser struct{ id string }

func (f fakeParser) LanguageID() string { return f.id }

type fakeBehavior struct{ id string }

func (f fakeBehavior) LanguageID() string { return f.id }

func TestRegisterAndResolveExtension(t *testing.T) {
	r := New()
	r.Register(Definition{
		ID:          "go",
		Extensions:  []string{".go"},
		NewParser:   func() Parser { return fakeParser{"go"} },
		NewBehavior: func() Behavior { return fakeBehavior{"go"} },
		Enabled:     true,
	})
	r.Finalize()

	id, ok := r.ForExtension(".go")
	if !ok || id != "go" {
		t.Fatalf("expected go for .go, got %q ok=%v", id, ok)
	}
	if _, ok := r.ForExtension(".unknown"); ok {
		t.Fatal("expected unknown extension to miss")
	}
}

func TestDisabledLanguageNotResolved(t *testing.T) {
	r := New()
	r.Register(Definition{ID: "cobol", Extensions: []string{".cob"}, Enabled: false})
	if _, ok := r.ForExtension(".cob"); ok {
		t.Fatal("disabled language should not resolve")
	}
}

func TestRegisterAfterFinalizePanics(t *testing.T) {
	r := New()
	r.Finalize()
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic registering after finalize")
		}
	}()
	r.Register(Definition{ID: "x"})
}
