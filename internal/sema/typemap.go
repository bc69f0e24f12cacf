package sema

import (
	"fmt"
	"strings"

	"hawk/internal/diag"
)

// Type is the resolved (or not yet resolved) type of one typemap node.
// "dyn" means unresolved; "int" is the only concrete type Hawk has.
type Type struct {
	ID   int
	Name string
}

func dynType(id int) Type { return Type{ID: id, Name: "dyn"} }

// BindingKind distinguishes how a typemap node's binding was formed.
// Reassignment is reserved: Hawk has no syntax for re-binding an existing
// name, so every node built today is an Assignment.
type BindingKind int

const (
	Assignment BindingKind = iota
	Reassignment
)

// TypeMapNode is one Var's binding. A Leaf carries only its own Type; a
// Branch additionally lists the nodes whose value flowed into computing
// it. Children are held by reference, so the same node can appear as a
// child of more than one branch when a value is copied through several
// bindings.
type TypeMapNode struct {
	ID         int
	Symbol     string
	Type       Type
	Kind       BindingKind
	IsBranch   bool
	Children   []*TypeMapNode
	DeclStart  diag.Pos
	DeclEnd    diag.Pos
}

// TypeMap is the ordered list of every Var binding seen so far, in
// declaration order. It grows monotonically; nothing is ever removed.
type TypeMap struct {
	nodes  []*TypeMapNode
	nextID int
}

func NewTypeMap() *TypeMap {
	return &TypeMap{}
}

// NewNode appends a fresh Leaf of type dyn for a just-declared Var and
// returns it.
func (tm *TypeMap) NewNode(symbol string, declStart, declEnd diag.Pos) *TypeMapNode {
	tm.nextID++
	n := &TypeMapNode{
		ID:        tm.nextID,
		Symbol:    symbol,
		Type:      dynType(tm.nextID),
		Kind:      Assignment,
		DeclStart: declStart,
		DeclEnd:   declEnd,
	}
	tm.nodes = append(tm.nodes, n)
	return n
}

// FindNode looks up a binding by name. It returns the *last* node with
// that symbol in declaration order — not the one lexical shadowing would
// actually pick — and only falls through to search branch children if no
// top-level node matches at all. This mirrors the resolver's own
// scope-blind cursor search: both trade lexical precision for a flat,
// append-only lookup, and neither is fixed up here.
func (tm *TypeMap) FindNode(name string) (*TypeMapNode, bool) {
	for i := len(tm.nodes) - 1; i >= 0; i-- {
		if tm.nodes[i].Symbol == name {
			return tm.nodes[i], true
		}
	}
	for i := len(tm.nodes) - 1; i >= 0; i-- {
		if n, ok := findInChildren(tm.nodes[i], name); ok {
			return n, true
		}
	}
	return nil, false
}

func findInChildren(n *TypeMapNode, name string) (*TypeMapNode, bool) {
	for _, c := range n.Children {
		if c.Symbol == name {
			return c, true
		}
		if found, ok := findInChildren(c, name); ok {
			return found, true
		}
	}
	return nil, false
}

// Nodes returns every binding in declaration order, for callers (debug
// dumps) that need to walk the typemap without reaching into its
// internals.
func (tm *TypeMap) Nodes() []*TypeMapNode {
	return tm.nodes
}

func attachChild(target, ref *TypeMapNode) {
	target.IsBranch = true
	target.Children = append(target.Children, ref)
}

// String renders every node in declaration order, for `hawk -debug tymap`.
func (tm *TypeMap) String() string {
	var sb strings.Builder
	for _, n := range tm.nodes {
		fmt.Fprintf(&sb, "%-12s : %s", n.Symbol, n.Type.Name)
		if n.IsBranch {
			names := make([]string, len(n.Children))
			for i, c := range n.Children {
				names[i] = c.Symbol
			}
			fmt.Fprintf(&sb, "  (from %s)", strings.Join(names, ", "))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
