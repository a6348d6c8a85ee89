package flow

// Flow is a pure decision unit. Execute must be a function of the flow's
// fields alone: entities are loaded and the clock read before the flow is
// built, so running it twice over the same inputs yields structurally equal
// results. A returned error aborts before any effect is described; an Empty
// result is a deliberate no-op the caller treats as success.
type Flow interface {
	Execute() (Result, error)
}

// Func adapts an ordinary function to the Flow interface, used by callers
// composing sub-decisions inline.
type Func func() (Result, error)

func (f Func) Execute() (Result, error) { return f() }
