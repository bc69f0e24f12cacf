// Package pipeline runs Hawk's five compilation stages in order —
// tokenize, parse, resolve, infer, generate — halting after whichever
// stage first reports a diagnostic (spec.md §5, §7). It is the one place
// cmd/hawk and cmd/hawkvis both call into, so the two front ends can
// never drift out of step with each other.
package pipeline

import (
	"hawk/internal/ast"
	"hawk/internal/codegen"
	"hawk/internal/diag"
	"hawk/internal/parser"
	"hawk/internal/sema"
	"hawk/internal/token"
)

// Result carries every artifact a stage produced before the pipeline
// stopped. Fields past the stage that halted are left at their zero
// value; callers should check Diagnostics.HasErrors() before trusting
// anything past AST.
type Result struct {
	Tokens      []token.Token
	AST         *ast.Node
	SymbolTable *sema.SymbolTable
	TypeMap     *sema.TypeMap
	Bytecode    []byte
	Diagnostics *diag.Bag
}

// Compile runs source (from path, used only for diagnostic messages)
// through every stage until either the pipeline finishes or a stage
// reports an error.
func Compile(source, path string) Result {
	bag := &diag.Bag{}
	res := Result{Diagnostics: bag}

	res.Tokens = token.Tokenize(source, path, bag)
	if bag.HasErrors() {
		return res
	}

	astRoot, ok := parser.Parse(res.Tokens, bag, path)
	res.AST = astRoot
	if !ok || bag.HasErrors() {
		return res
	}

	res.SymbolTable = sema.Resolve(astRoot, bag)
	if bag.HasErrors() {
		return res
	}

	res.TypeMap = sema.Infer(astRoot, res.SymbolTable, bag)
	if bag.HasErrors() {
		return res
	}

	res.Bytecode = codegen.Generate(astRoot)
	return res
}
