// Package bytecode is the wire format the code generator writes and the
// virtual machine reads: nine opcodes, each optionally followed by a
// signed 32-bit big-endian immediate (spec.md §4.6). The opcode table
// layout — a byte constant block plus a name lookup and an operand-width
// table — follows the teacher's pkg/cpu opcode block; the disassembler
// in disasm.go is the mirror image of the teacher's pkg/asm assembler.
package bytecode

import "encoding/binary"

// Op identifies one VM instruction.
type Op byte

const (
	OpPush Op = iota
	OpPop
	OpAdd
	OpSub
	OpMul
	OpDiv
	OpRead
	OpSave
	OpLoad
)

var opNames = [...]string{
	OpPush: "PUSH", OpPop: "POP", OpAdd: "ADD", OpSub: "SUB", OpMul: "MUL",
	OpDiv: "DIV", OpRead: "READ", OpSave: "SAVE", OpLoad: "LOAD",
}

func (op Op) String() string {
	if int(op) >= 0 && int(op) < len(opNames) {
		return opNames[op]
	}
	return "UNKNOWN"
}

// HasImmediate reports whether op is followed by a 4-byte operand.
// PUSH's operand is the value to push; READ's is the index-from-top
// offset. Every other opcode is bare.
func (op Op) HasImmediate() bool {
	return op == OpPush || op == OpRead
}

// FrameMarker is the sentinel value PUSHed to mark the base of a Let
// block's locals on the runtime stack (spec.md §4.5, §9).
const FrameMarker int32 = 0xff

// PutImmediate appends op followed by its big-endian int32 operand.
func PutImmediate(buf []byte, op Op, value int32) []byte {
	buf = append(buf, byte(op))
	var b [4]byte
	binary.BigEndian.PutUint32(b[:], uint32(value))
	return append(buf, b[:]...)
}

// PutBare appends a single operand-less opcode byte.
func PutBare(buf []byte, op Op) []byte {
	return append(buf, byte(op))
}
