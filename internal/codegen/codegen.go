package codegen

import (
	"hawk/internal/ast"
	"hawk/internal/bytecode"
)

// Generator holds the one piece of state code generation needs beyond
// the AST itself: the shadow stack tracking what the VM's runtime stack
// will look like once the bytes emitted so far have executed.
type Generator struct {
	shadow shadowStack
}

// Generate emits the full bytecode packet for a resolved, typed program.
// Symbol resolution and type inference are expected to have already run
// and reported no diagnostics; Generate does not re-check either.
func Generate(root *ast.Node) []byte {
	g := &Generator{}
	top := NewBlock(nil)
	g.genLet(root, top)
	return Flatten(top)
}

// genLet emits one Let block: a frame marker, each Var's initializer,
// then the Do expression's SAVE/POP.../LOAD sequence. It always leaves
// exactly one new entry on the shadow stack — a synthetic temporary
// holding the block's result — regardless of whether this Let is the
// top-level program or nested inside another Var's initializer; the
// caller decides whether to claim that entry with a real name.
func (g *Generator) genLet(n *ast.Node, parent *BCNode) {
	block := NewBlock(parent)

	AppendStatement(block, bytecode.PutImmediate(nil, bytecode.OpPush, bytecode.FrameMarker))
	g.shadow.pushFrame()

	last := len(n.Children) - 1
	for i := 0; i < last; i++ {
		g.genVar(n.Children[i], block)
	}

	doNode := n.Children[last]
	g.genExpr(doNode.Children[0], block)

	AppendStatement(block, bytecode.PutBare(nil, bytecode.OpSave))
	g.shadow.pop() // the value SAVE just consumed

	locals := g.shadow.popToFrame() // pops every local, then the frame itself
	for i := 0; i < locals+1; i++ {
		AppendStatement(block, bytecode.PutBare(nil, bytecode.OpPop))
	}

	AppendStatement(block, bytecode.PutBare(nil, bytecode.OpLoad))
	g.shadow.pushSynthetic()
}

// genVar emits a Var's initializer, then claims whatever entry it left on
// top of the shadow stack under the variable's own name.
func (g *Generator) genVar(n *ast.Node, block *BCNode) {
	name := n.Children[0].Name()
	g.genExpr(n.Children[1], block)
	g.shadow.renameTop(name)
}

// genExpr emits code for one expression, leaving exactly one new entry
// on the shadow stack representing its value: a copy of the referenced
// variable for VarRef, or a synthetic temporary for everything else.
func (g *Generator) genExpr(n *ast.Node, block *BCNode) {
	switch {
	case n.Kind == ast.IntLiteral:
		AppendStatement(block, bytecode.PutImmediate(nil, bytecode.OpPush, n.IntValue()))
		g.shadow.pushSynthetic()

	case n.Kind == ast.VarRef:
		offset, _ := g.shadow.findOffset(n.Name())
		AppendStatement(block, bytecode.PutImmediate(nil, bytecode.OpRead, offset))
		g.shadow.pushVar(n.Name())

	case n.Kind == ast.Let:
		g.genLet(n, block)

	case ast.IsBinary(n.Kind):
		g.genBinary(n, block)
	}
}

// genBinary emits the right operand, then the left, so the left operand
// ends up on top of the runtime stack — the VM's ADD/SUB/MUL/DIV pop
// order and left/right naming (internal/vm) are written to match this
// ordering exactly, not the source's left-to-right reading order.
func (g *Generator) genBinary(n *ast.Node, block *BCNode) {
	g.genExpr(n.Children[1], block) // right
	g.genExpr(n.Children[0], block) // left
	g.shadow.pop()
	g.shadow.pop()

	AppendStatement(block, bytecode.PutBare(nil, binaryOp(n.Kind)))
	g.shadow.pushSynthetic()
}

func binaryOp(k ast.Kind) bytecode.Op {
	switch k {
	case ast.BinaryPlus:
		return bytecode.OpAdd
	case ast.BinaryMinus:
		return bytecode.OpSub
	case ast.BinaryMul:
		return bytecode.OpMul
	case ast.BinaryDiv:
		return bytecode.OpDiv
	default:
		panic("codegen: not a binary kind")
	}
}
