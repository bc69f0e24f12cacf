// Package ast is Hawk's tagged-tree AST: a single Node type carrying a
// Kind tag, parent/children links, and an optional payload, per spec.md
// §3. The teacher's AST (pkg/compiler/ast.go) is instead a family of
// concrete Go types behind Expr/Stmt marker interfaces; Hawk's language
// is small enough, and its typemap/codegen passes need generic parent
// walks (spec.md §4.4, §9) frequently enough, that a single tagged node
// with a re-assignable parent pointer is the better fit here. The doc
// style (one comment per exported symbol, an ASCII diagram for the
// trickier ones) follows the teacher's ast.go.
package ast

import (
	"fmt"
	"strings"

	"hawk/internal/diag"
)

// Kind tags every node in the tree.
type Kind int

const (
	Let Kind = iota
	Do
	Var
	Identifier
	VarRef
	IntLiteral
	BinaryPlus
	BinaryMinus
	BinaryMul
	BinaryDiv
	Expression // reserved, unused (spec.md §3)
)

var kindNames = [...]string{
	Let: "Let", Do: "Do", Var: "Var", Identifier: "Identifier",
	VarRef: "VarRef", IntLiteral: "IntLiteral",
	BinaryPlus: "BinaryPlus", BinaryMinus: "BinaryMinus",
	BinaryMul: "BinaryMul", BinaryDiv: "BinaryDiv",
	Expression: "Expression",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsBinary reports whether k is one of the four binary-operator kinds.
func IsBinary(k Kind) bool {
	return k == BinaryPlus || k == BinaryMinus || k == BinaryMul || k == BinaryDiv
}

// Node is a single tree element. Data holds the payload named in
// spec.md §3: a string for Identifier/VarRef, an int32 for IntLiteral,
// and nil everywhere else.
type Node struct {
	Kind     Kind
	Parent   *Node
	Children []*Node
	Data     any
	Start    diag.Pos
	End      diag.Pos
}

// Name returns Data as a string; only meaningful for Identifier/VarRef.
func (n *Node) Name() string {
	s, _ := n.Data.(string)
	return s
}

// IntValue returns Data as an int32; only meaningful for IntLiteral.
func (n *Node) IntValue() int32 {
	v, _ := n.Data.(int32)
	return v
}

// NewLeaf builds a childless node (IntLiteral, VarRef, Identifier).
func NewLeaf(kind Kind, data any, start, end diag.Pos) *Node {
	return &Node{Kind: kind, Data: data, Start: start, End: end}
}

// New builds a node from already-built children and reassigns every
// child's Parent pointer to n, per the post-order rewrite spec.md §4.2
// requires after each grammar composition.
func New(kind Kind, start, end diag.Pos, children ...*Node) *Node {
	n := &Node{Kind: kind, Start: start, End: end, Children: children}
	Reparent(n)
	return n
}

// Reparent sets Parent on every direct child of n. Called after any
// rewrite that changes n.Children, so parent edges always reflect the
// current tree shape (spec.md §4.2, §5).
func Reparent(n *Node) {
	for _, c := range n.Children {
		c.Parent = n
	}
}

// Walk visits n and every descendant in pre-order (node then children,
// left to right). visit returning false skips n's children but continues
// the walk at n's siblings.
func Walk(n *Node, visit func(*Node) bool) {
	if n == nil {
		return
	}
	if !visit(n) {
		return
	}
	for _, c := range n.Children {
		Walk(c, visit)
	}
}

// Transform rebuilds n by replacing each child with fn(child), then
// re-parenting — the immutable-rewrite pattern spec.md §5 describes.
// Leaves without children are returned unchanged by fn's caller (fn is
// simply not applied to an empty Children slice).
func Transform(n *Node, fn func(*Node) *Node) *Node {
	if n == nil {
		return nil
	}
	newChildren := make([]*Node, len(n.Children))
	for i, c := range n.Children {
		newChildren[i] = fn(Transform(c, fn))
	}
	out := &Node{Kind: n.Kind, Data: n.Data, Start: n.Start, End: n.End, Children: newChildren}
	Reparent(out)
	return out
}

// String renders a one-line s-expression dump, in the teacher's
// String()-per-node-type style but generalised over the single Node type.
func (n *Node) String() string {
	if n == nil {
		return "<nil>"
	}
	switch n.Kind {
	case Identifier, VarRef:
		return fmt.Sprintf("%s(%s)", n.Kind, n.Name())
	case IntLiteral:
		return fmt.Sprintf("IntLiteral(%d)", n.IntValue())
	}
	parts := make([]string, len(n.Children))
	for i, c := range n.Children {
		parts[i] = c.String()
	}
	return fmt.Sprintf("%s(%s)", n.Kind, strings.Join(parts, ", "))
}

// Dump renders an indented multi-line tree, used by `hawk -debug ast`.
func Dump(n *Node) string {
	var sb strings.Builder
	dump(&sb, n, 0)
	return sb.String()
}

func dump(sb *strings.Builder, n *Node, depth int) {
	if n == nil {
		return
	}
	sb.WriteString(strings.Repeat("  ", depth))
	switch n.Kind {
	case Identifier, VarRef:
		fmt.Fprintf(sb, "%s %q [%s..%s]\n", n.Kind, n.Name(), n.Start, n.End)
	case IntLiteral:
		fmt.Fprintf(sb, "%s %d [%s..%s]\n", n.Kind, n.IntValue(), n.Start, n.End)
	default:
		fmt.Fprintf(sb, "%s [%s..%s]\n", n.Kind, n.Start, n.End)
	}
	for _, c := range n.Children {
		dump(sb, c, depth+1)
	}
}
