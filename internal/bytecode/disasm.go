package bytecode

import (
	"encoding/binary"
	"fmt"
	"strings"
)

// Instruction is one decoded opcode plus its immediate, if any, and the
// byte offset it started at — the disassembler's unit of output, used by
// `hawk -debug bytecode` and by the visual step debugger to label the
// instruction the VM is currently paused on.
type Instruction struct {
	Offset   int
	Op       Op
	Operand  int32
	HasValue bool
}

func (i Instruction) String() string {
	if i.HasValue {
		return fmt.Sprintf("%04d  %s %d", i.Offset, i.Op, i.Operand)
	}
	return fmt.Sprintf("%04d  %s", i.Offset, i.Op)
}

// Disassemble decodes a full bytecode packet into its instruction
// sequence. It stops and returns what it has on a truncated immediate,
// the mirror image of the assembler's "program too large" pass1 check.
func Disassemble(code []byte) []Instruction {
	var out []Instruction
	pos := 0
	for pos < len(code) {
		op := Op(code[pos])
		instr := Instruction{Offset: pos, Op: op}
		pos++
		if op.HasImmediate() {
			if pos+4 > len(code) {
				out = append(out, instr)
				return out
			}
			instr.Operand = int32(binary.BigEndian.Uint32(code[pos : pos+4]))
			instr.HasValue = true
			pos += 4
		}
		out = append(out, instr)
	}
	return out
}

// Dump renders a full disassembly listing, one instruction per line.
func Dump(code []byte) string {
	var sb strings.Builder
	for _, instr := range Disassemble(code) {
		sb.WriteString(instr.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
