// Command hawkvis is a visual, single-step debugger for Hawk bytecode: an
// ebiten window that advances the VM one instruction at a time and shows
// the current instruction, the stack, and the save register. Its Game
// struct, key-driven Update loop, and DebugPrintAt-based Draw follow
// cmd/desktop's shape, retargeted from a free-running CPU with a
// framebuffer to a paused-by-default stack machine stepped by hand.
package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"hawk/internal/bytecode"
	"hawk/internal/diag"
	"hawk/internal/pipeline"
	"hawk/internal/vm"
)

// Game holds one VM run plus the disassembly used to label the
// instruction it's paused on. Running mirrors gocpu's Halted/Waiting
// pair: once true the VM no longer advances on Update, only on a
// manual reset.
type Game struct {
	machine   *vm.VM
	instrs    []bytecode.Instruction
	err       error
	running   bool
	autoTicks int
}

func newGame(code []byte) *Game {
	return &Game{
		machine: vm.New(code),
		instrs:  bytecode.Disassemble(code),
		running: true,
	}
}

func (g *Game) currentInstruction() (bytecode.Instruction, bool) {
	for _, in := range g.instrs {
		if in.Offset == g.machine.PC {
			return in, true
		}
	}
	return bytecode.Instruction{}, false
}

func (g *Game) Update() error {
	if !g.running {
		return nil
	}

	step := inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsKeyJustPressed(ebiten.KeyRight)
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.autoTicks = 60 // hold Enter/R to auto-run for a burst of frames
	}
	if g.autoTicks > 0 {
		step = true
		g.autoTicks--
	}

	if !step {
		return nil
	}
	if g.machine.Done() {
		g.running = false
		return nil
	}
	if err := g.machine.Step(); err != nil {
		g.err = err
		g.running = false
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	lines := []string{
		"hawkvis — SPACE/→ step, hold R to burst-run",
		fmt.Sprintf("PC: %04d   SAVE: %d", g.machine.PC, g.machine.Save),
	}

	if instr, ok := g.currentInstruction(); ok {
		lines = append(lines, "next: "+instr.String())
	} else if g.machine.Done() {
		lines = append(lines, "halted")
	}

	if g.err != nil {
		lines = append(lines, "fault: "+g.err.Error())
	}

	lines = append(lines, "", "stack (top first):")
	for i := len(g.machine.Stack) - 1; i >= 0; i-- {
		lines = append(lines, fmt.Sprintf("  [%d] %d", i, g.machine.Stack[i]))
	}

	ebitenutil.DebugPrintAt(screen, strings.Join(lines, "\n"), 8, 8)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return 480, 360
}

func main() {
	if len(os.Args) < 2 {
		log.Fatal("usage: hawkvis <path.hawk|path.bc>")
	}
	path := os.Args[1]

	var code []byte
	switch filepath.Ext(path) {
	case ".bc":
		b, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("failed to read %s: %v", path, err)
		}
		code = b
	case ".hawk":
		src, err := os.ReadFile(path)
		if err != nil {
			log.Fatalf("failed to read %s: %v", path, err)
		}
		res := pipeline.Compile(string(src), path)
		if res.Diagnostics.HasErrors() {
			fmt.Println(diag.RenderAll(res.Diagnostics, string(src)))
			return
		}
		code = res.Bytecode
	default:
		log.Fatalf("unrecognized extension: %s", filepath.Ext(path))
	}

	ebiten.SetWindowSize(480, 360)
	ebiten.SetWindowTitle("hawkvis")

	if err := ebiten.RunGame(newGame(code)); err != nil {
		log.Fatal(err)
	}
}
