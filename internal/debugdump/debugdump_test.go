package debugdump

import (
	"strings"
	"testing"

	"hawk/internal/pipeline"
)

func compile(t *testing.T, src string) pipeline.Result {
	t.Helper()
	res := pipeline.Compile(src, "test.hawk")
	if res.Diagnostics.HasErrors() {
		t.Fatalf("unexpected diagnostics: %+v", res.Diagnostics.Items())
	}
	return res
}

func TestASTTextAndYAML(t *testing.T) {
	res := compile(t, "let a = 5 do a")

	text, err := AST(res.AST, Text)
	if err != nil || !strings.Contains(text, "Let") {
		t.Fatalf("AST(Text) = %q, err %v", text, err)
	}

	yamlOut, err := AST(res.AST, YAML)
	if err != nil || !strings.Contains(yamlOut, "kind: Let") {
		t.Fatalf("AST(YAML) = %q, err %v", yamlOut, err)
	}
}

func TestSymbolTableTextAndYAML(t *testing.T) {
	res := compile(t, "let a = 5 do a")
	text, err := SymbolTable(res.SymbolTable, Text)
	if err != nil || !strings.Contains(text, "let_1") {
		t.Fatalf("SymbolTable(Text) = %q, err %v", text, err)
	}
	yamlOut, err := SymbolTable(res.SymbolTable, YAML)
	if err != nil || !strings.Contains(yamlOut, "ident: a") {
		t.Fatalf("SymbolTable(YAML) = %q, err %v", yamlOut, err)
	}
}

func TestTypeMapYAML(t *testing.T) {
	res := compile(t, "let a = 5 b = a do b")
	out, err := TypeMap(res.TypeMap, YAML)
	if err != nil || !strings.Contains(out, "symbol: b") {
		t.Fatalf("TypeMap(YAML) = %q, err %v", out, err)
	}
}

func TestBytecodeYAML(t *testing.T) {
	res := compile(t, "let a = 5 do a")
	out, err := Bytecode(res.Bytecode, YAML)
	if err != nil || !strings.Contains(out, "op: PUSH") {
		t.Fatalf("Bytecode(YAML) = %q, err %v", out, err)
	}
}
