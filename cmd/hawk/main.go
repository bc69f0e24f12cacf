// Command hawk compiles and runs a single Hawk source file, or executes
// an already-compiled bytecode packet directly. Its flag.String/flag.Bool
// single-dash flag set (`-debug`, `-format`, `-config`, `-verbose`) follows
// the teacher's own root `main.go` (`-in`, `-out`, `-run`, `-storage`) —
// a plain `flag.Parse()` call over a handful of named options, rather than
// a subcommand framework this one-shot compiler front end has no use for.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"hawk/internal/cache"
	"hawk/internal/config"
	"hawk/internal/debugdump"
	"hawk/internal/diag"
	"hawk/internal/hlog"
	"hawk/internal/pipeline"
	"hawk/internal/vm"
)

func main() {
	debugStage := flag.String("debug", "", "print a debug dump of one stage (ast|symtab|tymap|bytecode) and exit")
	format := flag.String("format", "", "debug dump format (text|yaml), overrides hawk.toml")
	configPath := flag.String("config", "hawk.toml", "path to a hawk.toml settings file")
	verbose := flag.Bool("verbose", false, "include file:line prefixes on internal log output")
	flag.Parse()

	// No argument is not an error (spec.md §6): exit code is always 0.
	if flag.NArg() == 0 {
		return
	}
	run(flag.Arg(0), *debugStage, *format, *configPath, *verbose)
}

func run(path, debugStage, format, configPath string, verbose bool) {
	hlog.SetVerbose(verbose)

	cfg, err := config.Load(configPath)
	if err != nil {
		hlog.Compiler.Println(err)
		return
	}
	effectiveFormat := cfg.Debug.Format
	if format != "" {
		effectiveFormat = format
	}
	fmtKind := debugdump.Text
	if effectiveFormat == "yaml" {
		fmtKind = debugdump.YAML
	}

	stage := debugStage
	if stage == "" {
		stage = cfg.Debug.Stage
	}

	ext := filepath.Ext(path)
	switch ext {
	case ".bc":
		runBytecodePath(path)
	case ".hawk":
		runSourcePath(path, cfg, stage, fmtKind)
	default:
		fmt.Printf("Unrecognized extension: %s\n", ext)
	}
}

func runBytecodePath(path string) {
	code, err := os.ReadFile(path)
	if err != nil {
		hlog.Compiler.Println(err)
		return
	}
	execute(code)
}

func runSourcePath(path string, cfg config.Config, stage string, format debugdump.Format) {
	if !cfg.Cache.Disabled && stage == "" {
		if bcPath, err := cache.Sidecar(path); err == nil && cache.Fresh(path, bcPath) {
			if code, err := cache.Load(bcPath); err == nil {
				execute(code)
				return
			}
		}
	}

	src, err := os.ReadFile(path)
	if err != nil {
		hlog.Compiler.Println(err)
		return
	}

	res := pipeline.Compile(string(src), path)

	// A requested stage is printed as soon as its own artifact exists,
	// even if a later stage went on to report an error (spec.md §6: run
	// "up to and including the named stage", then exit). Only fall
	// through to the ordinary diagnostics report if that stage's own
	// artifact was never produced.
	if stage != "" && printDebugDump(stage, res, format) {
		return
	}

	if res.Diagnostics.HasErrors() {
		fmt.Println(diag.RenderAll(res.Diagnostics, string(src)))
		return
	}

	if !cfg.Cache.Disabled {
		if bcPath, err := cache.Store(path, res.Bytecode); err != nil {
			hlog.Compiler.Printf("could not write bytecode cache: %v", err)
		} else {
			hlog.Compiler.Printf("wrote %s", bcPath)
		}
	}

	execute(res.Bytecode)
}

// printDebugDump prints the dump for stage if that stage's artifact was
// actually produced, and reports true. It reports false, printing
// nothing, when the pipeline never reached that stage — the caller then
// falls back to the ordinary diagnostics report instead.
func printDebugDump(stage string, res pipeline.Result, format debugdump.Format) bool {
	var out string
	var err error
	switch strings.ToLower(stage) {
	case "ast":
		if res.AST == nil {
			return false
		}
		out, err = debugdump.AST(res.AST, format)
	case "symtab":
		if res.SymbolTable == nil {
			return false
		}
		out, err = debugdump.SymbolTable(res.SymbolTable, format)
	case "tymap":
		if res.TypeMap == nil {
			return false
		}
		out, err = debugdump.TypeMap(res.TypeMap, format)
	case "bytecode":
		if res.Bytecode == nil {
			return false
		}
		out, err = debugdump.Bytecode(res.Bytecode, format)
	default:
		hlog.Compiler.Printf("unknown -debug stage: %s", stage)
		return true
	}
	if err != nil {
		hlog.Compiler.Println(err)
		return true
	}
	fmt.Println(out)
	return true
}

func execute(code []byte) {
	result, err := vm.New(code).Run()
	if err != nil {
		hlog.VM.Println(err)
		return
	}
	fmt.Println(result)
}
