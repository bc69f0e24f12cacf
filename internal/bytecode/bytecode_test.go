package bytecode

import (
	"reflect"
	"testing"
)

func TestPutImmediateAndDisassemble(t *testing.T) {
	var buf []byte
	buf = PutImmediate(buf, OpPush, 42)
	buf = PutBare(buf, OpAdd)
	buf = PutImmediate(buf, OpRead, -1)

	got := Disassemble(buf)
	want := []Instruction{
		{Offset: 0, Op: OpPush, Operand: 42, HasValue: true},
		{Offset: 5, Op: OpAdd},
		{Offset: 6, Op: OpRead, Operand: -1, HasValue: true},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("Disassemble() = %+v, want %+v", got, want)
	}
}

func TestDisassembleStopsOnTruncatedImmediate(t *testing.T) {
	buf := []byte{byte(OpPush), 0, 0} // only 2 of 4 immediate bytes
	got := Disassemble(buf)
	if len(got) != 1 || got[0].HasValue {
		t.Fatalf("expected one instruction without a decoded value, got %+v", got)
	}
}

func TestOpHasImmediate(t *testing.T) {
	for _, op := range []Op{OpPush, OpRead} {
		if !op.HasImmediate() {
			t.Fatalf("%s.HasImmediate() = false, want true", op)
		}
	}
	for _, op := range []Op{OpPop, OpAdd, OpSub, OpMul, OpDiv, OpSave, OpLoad} {
		if op.HasImmediate() {
			t.Fatalf("%s.HasImmediate() = true, want false", op)
		}
	}
}

func TestOpString(t *testing.T) {
	if got, want := OpAdd.String(), "ADD"; got != want {
		t.Fatalf("OpAdd.String() = %q, want %q", got, want)
	}
	if got := Op(255).String(); got != "UNKNOWN" {
		t.Fatalf("unknown op String() = %q, want UNKNOWN", got)
	}
}

func TestDump(t *testing.T) {
	buf := PutImmediate(nil, OpPush, 1)
	out := Dump(buf)
	if out == "" {
		t.Fatalf("expected non-empty dump")
	}
}
