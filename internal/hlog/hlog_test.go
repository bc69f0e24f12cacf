package hlog

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestSetVerboseTogglesShortfileFlag(t *testing.T) {
	SetVerbose(true)
	if Compiler.Flags() != log.Lshortfile || VM.Flags() != log.Lshortfile {
		t.Fatalf("expected both loggers to carry Lshortfile once verbose")
	}
	SetVerbose(false)
	if Compiler.Flags() != 0 || VM.Flags() != 0 {
		t.Fatalf("expected both loggers to drop flags once verbose is off")
	}
}

func TestDiscardSilencesOutput(t *testing.T) {
	var buf bytes.Buffer
	Compiler.SetOutput(&buf)
	Discard()
	Compiler.Println("should not appear in buf")
	if strings.Contains(buf.String(), "should not appear") {
		t.Fatalf("expected Discard to redirect output away from buf")
	}
}
