package ui

import (
	"bytes"
	"testing"
)

func TestPipelinePhases(t *testing.T) {
	var out bytes.Buffer
	p := NewPipelineWithOutput([]Phase{PhaseScanning, PhaseConverting}, &out)

	scan := p.NextPhase(1)
	if scan == nil || scan.phase != string(PhaseScanning) {
		t.Fatalf("Expected scanning bar, got %+v", scan)
	}
	scan.Increment()

	conv := p.NextPhase(3)
	if conv.phase != string(PhaseConverting) {
		t.Errorf("Expected converting phase, got %s", conv.phase)
	}
	conv.Describe("book.xlsx")
	conv.Increment()
	conv.SetTotal(2)
	conv.Increment()

	extra := p.NextPhase(1)
	if extra == nil {
		t.Fatal("NextPhase past the end must not return nil")
	}
	extra.Increment()
	p.Finish()

	if out.Len() == 0 {
		t.Error("Expected progress output")
	}
}

func TestPipelineDisabled(t *testing.T) {
	var out bytes.Buffer
	p := NewPipelineWithOutput([]Phase{PhaseFormatting}, &out)
	p.Disable()

	bar := p.NextPhase(2)
	bar.Increment()
	bar.Increment()
	p.Finish()

	if out.Len() != 0 {
		t.Errorf("Disabled pipeline wrote output: %q", out.String())
	}
}
