package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/schollz/progressbar/v3"
)

// Phase represents a stage in a batch run
type Phase string

const (
	PhaseScanning   Phase = "Scanning"
	PhaseConverting Phase = "Converting"
	PhaseFormatting Phase = "Formatting"
)

// ProgressBar wraps the progressbar library with our custom styling
type ProgressBar struct {
	bar   *progressbar.ProgressBar
	phase string
}

// NewProgressBar creates a progress bar for phase writing to output
func NewProgressBar(phase Phase, total int, output io.Writer) *ProgressBar {
	bar := progressbar.NewOptions(total,
		progressbar.OptionSetWriter(output),
		progressbar.OptionSetDescription(fmt.Sprintf("[%s]", phase)),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: "░",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionShowCount(),
		progressbar.OptionSetWidth(40),
		progressbar.OptionClearOnFinish(),
		progressbar.OptionSetPredictTime(true),
	)

	return &ProgressBar{bar: bar, phase: string(phase)}
}

func discardBar(phase Phase) *ProgressBar {
	return &ProgressBar{
		bar:   progressbar.NewOptions(-1, progressbar.OptionSetWriter(io.Discard)),
		phase: string(phase),
	}
}

// Increment increments the progress bar by 1
func (pb *ProgressBar) Increment() error {
	return pb.bar.Add(1)
}

// SetTotal updates the total count of the progress bar
func (pb *ProgressBar) SetTotal(total int) {
	pb.bar.ChangeMax(total)
}

// Describe shows the item currently being processed next to the phase name
func (pb *ProgressBar) Describe(item string) {
	pb.bar.Describe(fmt.Sprintf("[%s] %s", pb.phase, item))
}

// Finish completes the progress bar
func (pb *ProgressBar) Finish() error {
	return pb.bar.Finish()
}

// Pipeline represents a multi-phase progress tracker
type Pipeline struct {
	phases   []Phase
	current  int
	active   *ProgressBar
	disabled bool
	output   io.Writer
}

// NewPipeline creates a pipeline writing to stdout
func NewPipeline(phases []Phase) *Pipeline {
	return NewPipelineWithOutput(phases, os.Stdout)
}

// NewPipelineWithOutput creates a pipeline with custom output
func NewPipelineWithOutput(phases []Phase, output io.Writer) *Pipeline {
	return &Pipeline{
		phases:  phases,
		current: -1,
		output:  output,
	}
}

// Disable makes every subsequent phase render to io.Discard
func (p *Pipeline) Disable() {
	p.disabled = true
}

// NextPhase finishes the running phase and starts the next one.
// Past the last phase it keeps returning a silent bar so callers never see nil.
func (p *Pipeline) NextPhase(total int) *ProgressBar {
	p.Finish()

	p.current++
	if p.current >= len(p.phases) {
		p.active = discardBar("done")
		return p.active
	}

	phase := p.phases[p.current]
	if p.disabled {
		p.active = discardBar(phase)
	} else {
		p.active = NewProgressBar(phase, total, p.output)
	}
	return p.active
}

// Finish completes the running phase
func (p *Pipeline) Finish() {
	if p.active != nil {
		p.active.Finish()
		p.active = nil
	}
}
