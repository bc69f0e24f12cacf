// Package codegen walks a resolved, typed AST and emits Hawk bytecode
// through a shadow stack that mirrors the VM's runtime stack at compile
// time (spec.md §4.5). The byte-chunk tree here is grounded on the
// teacher's pkg/asm two-pass assembler in spirit — build structure first,
// flatten to bytes second — generalised from assembly source lines to
// nested Let blocks.
package codegen

// NodeKind distinguishes a Block (a Let's byte-chunk subtree) from a
// Statement (one already-encoded instruction).
type NodeKind int

const (
	BlockNode NodeKind = iota
	StatementNode
)

// BCNode is one element of the byte-chunk tree. A Block holds ordered
// children (Blocks or Statements); a Statement holds already-encoded
// instruction bytes. In-order concatenation of every Statement's bytes,
// depth first, is the final bytecode packet.
type BCNode struct {
	Kind     NodeKind
	Parent   *BCNode
	Children []*BCNode
	Bytes    []byte
}

// NewBlock creates a Block node, appending it to parent's children if
// parent is non-nil.
func NewBlock(parent *BCNode) *BCNode {
	n := &BCNode{Kind: BlockNode, Parent: parent}
	if parent != nil {
		parent.Children = append(parent.Children, n)
	}
	return n
}

// AppendStatement appends an instruction's bytes as a new Statement leaf
// of block.
func AppendStatement(block *BCNode, bytes []byte) {
	block.Children = append(block.Children, &BCNode{
		Kind: StatementNode, Parent: block, Bytes: bytes,
	})
}

// Flatten concatenates every Statement's bytes under root, depth first,
// into the final bytecode packet.
func Flatten(root *BCNode) []byte {
	var buf []byte
	var walk func(n *BCNode)
	walk = func(n *BCNode) {
		if n.Kind == StatementNode {
			buf = append(buf, n.Bytes...)
			return
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(root)
	return buf
}
