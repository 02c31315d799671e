// Package gasket provides tunable options and error definitions for
// exact Apollonian gasket generation.
package gasket

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for gasket construction and generation.
var (
	// ErrSeedCount is returned when the seed slice does not hold exactly
	// three or four curvatures.
	ErrSeedCount = errors.New("gasket: need three or four seed curvatures")

	// ErrZeroCurvature is returned when a seed curvature is zero; straight
	// lines are outside the model.
	ErrZeroCurvature = errors.New("gasket: zero seed curvature")

	// ErrPlacement is returned when the seed curvatures admit no mutually
	// tangent placement in the plane.
	ErrPlacement = errors.New("gasket: seed circles cannot be placed")

	// ErrUnsolvable is returned when a fourth seed curvature matches
	// neither Descartes solution of the first three.
	ErrUnsolvable = errors.New("gasket: fourth curvature does not close the seed quadruple")

	// ErrGeneration is returned when a walk step fails to solve a triple.
	ErrGeneration = errors.New("gasket: generation failed")

	// ErrOptionViolation is returned when an invalid Option or depth is
	// supplied.
	ErrOptionViolation = errors.New("gasket: invalid option supplied")
)

// Option configures generation behavior via functional arguments.
// An invalid Option (e.g. a non-positive tolerance) is recorded
// internally and surfaced as ErrOptionViolation when the run starts.
type Option func(*Options)

// Options holds parameters and callbacks customizing a generation run.
type Options struct {
	// Ctx allows cancellation and deadlines on long runs.
	Ctx context.Context

	// Tolerance is the geometric tolerance used for duplicate sweeps and
	// tangency verification. It only matters once symbolic values with
	// bounded-precision fallbacks appear; exact states compare exactly.
	Tolerance float64

	// MaxCircles, if > 0, stops the run after that many circles
	// (seeds included). A value of 0 disables the cap.
	MaxCircles int

	// OnCircle is called once per emitted circle, seeds included, in
	// emission order. If it returns an error, the run aborts and
	// propagates that error.
	OnCircle func(c Circle) error

	// VerifyTangency re-checks every generated circle against its three
	// parents and rejects the step on failure.
	VerifyTangency bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - Tolerance 1e-10
//   - no circle cap (MaxCircles == 0)
//   - no-op OnCircle
//   - tangency verification enabled.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		Tolerance:      defaultTolerance,
		MaxCircles:     0,
		OnCircle:       func(Circle) error { return nil },
		VerifyTangency: true,
		err:            nil,
	}
}

// defaultTolerance matches the exact package's symbolic comparison bound.
const defaultTolerance = 1e-10

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithTolerance sets the geometric tolerance.
//
//	t > 0: use t
//	t <= 0: invalid option → ErrOptionViolation
func WithTolerance(t float64) Option {
	return func(o *Options) {
		if t <= 0 {
			o.err = fmt.Errorf("%w: Tolerance must be positive (%g)", ErrOptionViolation, t)
			return
		}
		o.Tolerance = t
	}
}

// WithMaxCircles caps the total number of circles a run may emit.
//
//	n > 0: stop after n circles
//	n == 0: explicit no cap
//	n < 0: invalid option → ErrOptionViolation
func WithMaxCircles(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxCircles cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxCircles = n
	}
}

// WithOnCircle registers a callback to run on every emitted circle;
// returning an error from this callback stops the run.
func WithOnCircle(fn func(c Circle) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnCircle = fn
		}
	}
}

// WithVerifyTangency toggles per-step tangency verification.
func WithVerifyTangency(on bool) Option {
	return func(o *Options) { o.VerifyTangency = on }
}
