package sema

import (
	"testing"

	"hawk/internal/diag"
)

func TestInferSimpleAssignment(t *testing.T) {
	root := mustParse(t, "let a = 5 do a")
	bag := &diag.Bag{}
	st := Resolve(root, bag)
	if bag.HasErrors() {
		t.Fatalf("unexpected resolve diagnostics: %+v", bag.Items())
	}
	tm := Infer(root, st, bag)
	if bag.HasErrors() {
		t.Fatalf("unexpected infer diagnostics: %+v", bag.Items())
	}
	node, ok := tm.FindNode("a")
	if !ok || node.Type.Name != "int" {
		t.Fatalf("expected a's type to be int, got %+v %v", node, ok)
	}
}

func TestInferCopiesTypeThroughVarRef(t *testing.T) {
	root := mustParse(t, "let a = 5 b = a do b")
	bag := &diag.Bag{}
	st := Resolve(root, bag)
	tm := Infer(root, st, bag)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	b, ok := tm.FindNode("b")
	if !ok || b.Type.Name != "int" {
		t.Fatalf("expected b's type to be int (copied from a), got %+v", b)
	}
	if !b.IsBranch || len(b.Children) != 1 || b.Children[0].Symbol != "a" {
		t.Fatalf("expected b to be a branch referencing a, got %+v", b)
	}
}

// A Var whose own initializer refers to itself resolves cleanly (its own
// name is visible inside its initializer, per resolve_test.go's
// TestResolveCannotReferenceOwnInitializer), but Infer can never give
// that reference a concrete type: the node it looks up is still "dyn",
// so both halves of the "cannot infer type" diagnostic pair fire.
func TestInferSelfReferenceReportsDynDiagnostic(t *testing.T) {
	root := mustParse(t, "let a = a do a")
	bag := &diag.Bag{}
	st := Resolve(root, bag)
	if bag.HasErrors() {
		t.Fatalf("unexpected resolve diagnostics: %+v", bag.Items())
	}
	Infer(root, st, bag)
	if !bag.HasErrors() {
		t.Fatalf("expected infer diagnostics for a self-referencing initializer")
	}
	var sawCannotInfer, sawNotTyped bool
	for _, d := range bag.Items() {
		if d.Message == "cannot infer type of var ref" {
			sawCannotInfer = true
		}
		if d.Message == "because a has not been typed" {
			sawNotTyped = true
		}
	}
	if !sawCannotInfer || !sawNotTyped {
		t.Fatalf("expected both diagnostic messages, got %+v", bag.Items())
	}
}

func TestInferBinaryPromotesFromEitherOperand(t *testing.T) {
	root := mustParse(t, "let a = 5 do a+a")
	bag := &diag.Bag{}
	st := Resolve(root, bag)
	tm := Infer(root, st, bag)
	if bag.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	a, ok := tm.FindNode("a")
	if !ok || a.Type.Name != "int" {
		t.Fatalf("expected a's type to be int, got %+v", a)
	}
}
