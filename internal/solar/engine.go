// Package solar is the sizing-and-projection engine for rooftop photovoltaic
// systems. It estimates yield from roof orientation, sizes a system under
// roof-area and budget constraints, prices it net of subsidy and projects
// savings against a fixed-rate deposit benchmark.
//
// Every operation is a pure function of its arguments and the reference
// tables the Engine was built with.
package solar

import (
	"github.com/iwvelando/solar-forecast/internal/tables"
	"go.uber.org/zap"
)

// Engine runs the calculators against one immutable set of reference tables.
// An Engine is safe for concurrent use.
type Engine struct {
	tables tables.Tables
	logger *zap.Logger
}

// NewEngine creates an engine over a private copy of t. The tables are
// expected to have passed t.Validate.
func NewEngine(logger *zap.Logger, t tables.Tables) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{tables: t.Clone(), logger: logger}
}

// Tables returns a copy of the reference tables in use.
func (e *Engine) Tables() tables.Tables {
	return e.tables.Clone()
}
