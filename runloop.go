package avr

import (
	"context"
	"log"
)

// ErrHalted is returned by Run when execution stops because the program
// reached its canonical halt idiom, an RJMP branching to itself.
var ErrHalted = errHalted{}

type errHalted struct{}

func (errHalted) Error() string { return "avr: halted" }

// Run steps the machine until it reaches the RJMP .-0 halt idiom, the
// context is cancelled, or Step returns an error. It returns ErrHalted on
// the normal stopping condition so callers can tell a clean halt apart
// from ctx.Err() or a decode/memory fault.
func (m *Machine) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if isHaltLoop(m, m.GetPC()) {
			return ErrHalted
		}

		if err := Step(m); err != nil {
			log.Printf("[avr] step failed at PC=%04x: %v", m.GetPC(), err)
			return err
		}
	}
}

// RunFor steps the machine at most maxSteps times, stopping early on halt
// or error. It reports the number of instructions actually executed.
func (m *Machine) RunFor(ctx context.Context, maxSteps int) (int, error) {
	for i := 0; i < maxSteps; i++ {
		select {
		case <-ctx.Done():
			return i, ctx.Err()
		default:
		}

		if isHaltLoop(m, m.GetPC()) {
			return i, ErrHalted
		}

		if err := Step(m); err != nil {
			return i, err
		}
	}
	return maxSteps, nil
}
