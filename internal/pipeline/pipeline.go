// Package pipeline drives the ordered backend stages over compilation
// units. Each stage is invoked exactly once per unit; ordering between
// stages is fixed at construction.
package pipeline

import (
	"fmt"

	"github.com/aster-lang/aster/internal/bir"
)

// Stage is one named backend transformation over a compilation unit.
type Stage interface {
	// Name identifies the stage for configuration and diagnostics.
	Name() string
	// Run mutates the unit in place. A returned error aborts the run.
	Run(unit *bir.Module) error
}

// Pipeline is an ordered stage sequence.
type Pipeline struct {
	stages   []Stage
	disabled map[string]bool
}

// New creates a pipeline running the given stages in order.
func New(stages ...Stage) *Pipeline {
	return &Pipeline{stages: stages, disabled: make(map[string]bool)}
}

// Disable skips the named stage on subsequent runs.
func (p *Pipeline) Disable(name string) {
	p.disabled[name] = true
}

// Run executes every enabled stage over the unit, in order. The first stage
// error aborts the run; later stages must not observe a half-lowered unit.
func (p *Pipeline) Run(unit *bir.Module) error {
	for _, stage := range p.stages {
		if p.disabled[stage.Name()] {
			continue
		}
		if err := stage.Run(unit); err != nil {
			return fmt.Errorf("stage %s: unit %s: %w", stage.Name(), unit.Name, err)
		}
	}
	return nil
}

// RunAll processes each unit independently and sequentially.
func (p *Pipeline) RunAll(units []*bir.Module) error {
	for _, unit := range units {
		if err := p.Run(unit); err != nil {
			return err
		}
	}
	return nil
}
