// Package abstractsearch implements the abstract_search driver contract:
// shared state for a concrete search strategy (working solution, recorder,
// move manager, current move, step code), plus the observer/subject facet
// concrete strategies notify through.
//
// The core itself implements no outer loop, selection policy or termination
// condition — those belong to a concrete strategy. internal/tabusearch is
// the one concrete strategy this module ships, built directly on top of
// Search.
package abstractsearch

import (
	"errors"

	"github.com/google/uuid"

	"localsearch/internal/manager"
	"localsearch/internal/move"
	"localsearch/internal/observer"
	"localsearch/internal/recorder"
	"localsearch/internal/solution"
)

// StepCode is published by a search after each iteration, indicating what
// happened. StepNoChange is this package's own addition: it is the zero
// value, which Step holds until the first RecordIteration. tabusearch never
// sets it; on an empty neighborhood it returns ErrNoMoves instead.
type StepCode int

const (
	// StepNoChange indicates an iteration that did not apply any move.
	StepNoChange StepCode = iota
	// StepMoveMade indicates a move was applied this iteration.
	StepMoveMade
	// StepImprovementMade indicates the recorder reported an improvement
	// this iteration. A strategy sets StepImprovementMade instead of
	// StepMoveMade when both are true for the iteration.
	StepImprovementMade
)

// String renders a StepCode for logging/tracing.
func (s StepCode) String() string {
	switch s {
	case StepNoChange:
		return "no-change"
	case StepMoveMade:
		return "move-made"
	case StepImprovementMade:
		return "improvement-made"
	default:
		return "unknown"
	}
}

// ErrNoMoves is raised by a concrete search strategy — not by Search itself —
// when MoveManager.Refresh leaves the neighborhood empty and the strategy
// cannot proceed.
var ErrNoMoves = errors.New("abstractsearch: move manager published an empty neighborhood")

// Search aggregates a working solution, a move manager, a solution recorder,
// the currently-chosen move, and an integer step code. It owns none of these
// references; it is borrowed by, and outlives no longer than, the concrete
// strategy driving it. Search embeds observer.Subject so concrete strategies
// can Attach listeners and Notify them once per iteration.
type Search[C solution.Scalar] struct {
	observer.Subject[*Search[C]]

	// ID uniquely identifies this search run, carried into every log line a
	// LoggingListener emits for it.
	ID uuid.UUID

	Working  solution.FeasibleSolution[C]
	Manager  manager.MoveManager[C]
	Recorder recorder.SolutionRecorder[C]

	CurrentMove move.ManaMove[C]
	Step        StepCode

	Iteration int
}

// New builds a Search over the given working solution, move manager and
// recorder. None of these are copied; Search borrows them for its lifetime.
func New[C solution.Scalar](working solution.FeasibleSolution[C], mgr manager.MoveManager[C], rec recorder.SolutionRecorder[C]) *Search[C] {
	return &Search[C]{
		ID:       uuid.New(),
		Working:  working,
		Manager:  mgr,
		Recorder: rec,
	}
}

// Cost returns the working solution's current cost.
func (s *Search[C]) Cost() C {
	return s.Working.Cost()
}

// RecordIteration applies m to the working solution, offers the result to
// the recorder, sets Step accordingly, and notifies attached listeners: the
// apply -> offer -> step -> notify sequence every concrete strategy needs,
// left here so strategies do not each reimplement it.
func (s *Search[C]) RecordIteration(m move.ManaMove[C]) {
	m.Apply(s.Working)
	s.CurrentMove = m
	s.Iteration++

	if s.Recorder.Accept(s.Working) {
		s.Step = StepImprovementMade
	} else {
		s.Step = StepMoveMade
	}
	s.Notify(s)
}
