// Package gasket: the breadth-first generation walk.
package gasket

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/gasket/descartes"
	"github.com/katalvlaran/gasket/exact"
)

// Result is the outcome of a completed generation run.
type Result struct {
	// SeedHash fingerprints the seed set, independent of seed order.
	SeedHash string
	// Seeds are the input curvatures, in input order.
	Seeds []exact.Number
	// Depth is the requested maximum generation.
	Depth int
	// Circles holds every circle in emission order: seeds first, then
	// strictly non-decreasing generations.
	Circles []Circle
}

// triple is one unit of work: three mutually tangent circle indices, the
// generation their solutions belong to, and the index of the known
// fourth circle of the quadruple the triple came from (-1 when none).
// That fourth circle is one of the two Descartes solutions and is
// excluded so only genuinely new circles are emitted.
type triple struct {
	a, b, c int
	depth   int
	exclude int
}

// Run is an in-progress generation walk. Circles can be pulled in
// batches with Next or drained with All; a Run is single-goroutine
// state and must not be shared without external synchronization.
type Run struct {
	opts     Options
	ctx      context.Context
	depth    int
	seeds    []exact.Number
	seedHash string

	circles []Circle
	approx  [][3]float64 // (k, x, y) per circle, for the duplicate sweep
	seen    map[string]struct{}
	queue   []triple
	cursor  int // next unread index for Next

	failed error
	capped bool
}

// NewRun places the seed curvatures and prepares a breadth-first walk up
// to the given depth. Depth 0 yields the seeds only.
func NewRun(seeds []exact.Number, depth int, opts ...Option) (*Run, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if depth < 0 {
		return nil, fmt.Errorf("%w: depth cannot be negative (%d)", ErrOptionViolation, depth)
	}

	placed, err := PlaceInitialCircles(seeds)
	if err != nil {
		return nil, err
	}

	r := &Run{
		opts:     o,
		ctx:      o.Ctx,
		depth:    depth,
		seeds:    append([]exact.Number(nil), seeds...),
		seedHash: SeedHash(seeds),
		seen:     make(map[string]struct{}, len(placed)*4),
	}
	n := len(placed)
	for i, c := range placed {
		// seeds are pairwise tangent; emission IDs are 1-based
		for j := 0; j < n; j++ {
			if j != i {
				c.Tangents = append(c.Tangents, int64(j+1))
			}
		}
		if err := r.emit(c); err != nil {
			return nil, err
		}
		if r.capped {
			return r, nil
		}
	}
	if depth >= 1 {
		for i := 0; i < n-2; i++ {
			for j := i + 1; j < n-1; j++ {
				for k := j + 1; k < n; k++ {
					// for a seed quadruple, the left-out seed is the
					// triple's known fourth circle
					ex := -1
					if n == 4 {
						ex = 6 - i - j - k
					}
					r.queue = append(r.queue, triple{a: i, b: j, c: k, depth: 1, exclude: ex})
				}
			}
		}
	}
	return r, nil
}

// Generate runs a complete walk and returns the result: seeds placed,
// every generation up to depth produced, in deterministic order.
func Generate(seeds []exact.Number, depth int, opts ...Option) (*Result, error) {
	r, err := NewRun(seeds, depth, opts...)
	if err != nil {
		return nil, err
	}
	if _, err = r.All(); err != nil {
		return nil, err
	}
	return r.Result(), nil
}

// Next advances the walk until n more circles are available or the walk
// finishes, and returns that batch. An exhausted run returns an empty
// batch. Cancellation and step failures are sticky: every later call
// reports the same error.
func (r *Run) Next(n int) ([]Circle, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: batch size must be positive (%d)", ErrOptionViolation, n)
	}
	if err := r.advance(n); err != nil {
		return nil, err
	}
	end := r.cursor + n
	if end > len(r.circles) {
		end = len(r.circles)
	}
	batch := append([]Circle(nil), r.circles[r.cursor:end]...)
	r.cursor = end
	return batch, nil
}

// All drains the walk and returns every circle not yet pulled by Next.
func (r *Run) All() ([]Circle, error) {
	if err := r.advance(math.MaxInt); err != nil {
		return nil, err
	}
	batch := append([]Circle(nil), r.circles[r.cursor:]...)
	r.cursor = len(r.circles)
	return batch, nil
}

// Done reports whether the walk has no more work.
func (r *Run) Done() bool { return r.capped || len(r.queue) == 0 }

// SeedHash returns the fingerprint of the run's seed set.
func (r *Run) SeedHash() string { return r.seedHash }

// Circles returns a copy of every circle emitted so far, regardless of
// the Next cursor.
func (r *Run) Circles() []Circle { return append([]Circle(nil), r.circles...) }

// Result snapshots the run.
func (r *Run) Result() *Result {
	return &Result{
		SeedHash: r.seedHash,
		Seeds:    append([]exact.Number(nil), r.seeds...),
		Depth:    r.depth,
		Circles:  r.Circles(),
	}
}

// advance processes queued triples until n unread circles are buffered,
// the queue drains, or the run stops.
func (r *Run) advance(n int) error {
	if r.failed != nil {
		return r.failed
	}
	for len(r.circles)-r.cursor < n && !r.Done() {
		// cancellation check (once per triple)
		select {
		case <-r.ctx.Done():
			r.failed = r.ctx.Err()
			return r.failed
		default:
		}

		t := r.queue[0]
		r.queue = r.queue[1:]
		if err := r.step(t); err != nil {
			r.failed = err
			return err
		}
	}
	return nil
}

// step solves one triple and emits its undiscovered solutions. Each new
// circle spawns the three child triples that pair it with its parents;
// the parent left out of a child triple becomes that triple's excluded
// fourth circle. A degenerate triple is skipped, not fatal; a candidate
// failing tangency verification is discarded, and the walk continues.
func (r *Run) step(t triple) error {
	ca, cb, cc := r.circles[t.a], r.circles[t.b], r.circles[t.c]
	sols, err := descartes.Solve(ca.solver(), cb.solver(), cc.solver())
	if err != nil {
		if errors.Is(err, descartes.ErrDegenerateCircle) {
			return nil
		}
		return fmt.Errorf("%w: depth %d: %v", ErrGeneration, t.depth, err)
	}
	for _, s := range sols {
		c := Circle{
			K:        s.K,
			Z:        s.Z,
			Gen:      t.depth,
			Parents:  [3]int64{ca.ID, cb.ID, cc.ID},
			Tangents: []int64{ca.ID, cb.ID, cc.ID},
		}
		if t.exclude >= 0 && r.sameCircle(c, r.circles[t.exclude]) {
			continue
		}
		if r.duplicate(c) {
			continue
		}
		if r.opts.VerifyTangency && !r.tangentToParents(c, ca, cb, cc) {
			continue
		}
		if err := r.emit(c); err != nil {
			return err
		}
		if r.capped {
			return nil
		}
		if t.depth < r.depth {
			idx := len(r.circles) - 1
			r.queue = append(r.queue,
				triple{a: t.a, b: t.b, c: idx, depth: t.depth + 1, exclude: t.c},
				triple{a: t.b, b: t.c, c: idx, depth: t.depth + 1, exclude: t.a},
				triple{a: t.c, b: t.a, c: idx, depth: t.depth + 1, exclude: t.b},
			)
		}
	}
	return nil
}

// sameCircle compares with Number semantics: exact for non-symbolic
// states, tolerance once a symbolic value is involved.
func (r *Run) sameCircle(a, b Circle) bool {
	return a.K.Equal(b.K) && a.Z.Equal(b.Z)
}

// tangentToParents verifies c against all three parents at the run's
// tolerance.
func (r *Run) tangentToParents(c, ca, cb, cc Circle) bool {
	for _, p := range []Circle{ca, cb, cc} {
		if !VerifyTangency(c, p, r.opts.Tolerance) {
			return false
		}
	}
	return true
}

// duplicate reports whether c was already emitted. The exact hash key
// catches identical representations; the numeric sweep catches values
// that drifted apart only through bounded-precision symbolic fallbacks.
func (r *Run) duplicate(c Circle) bool {
	if _, ok := r.seen[c.HashKey()]; ok {
		return true
	}
	k, x, y := c.Approx()
	for _, ap := range r.approx {
		if math.Abs(ap[0]-k) < r.opts.Tolerance &&
			math.Abs(ap[1]-x) < r.opts.Tolerance &&
			math.Abs(ap[2]-y) < r.opts.Tolerance {
			return true
		}
	}
	return false
}

// emit assigns c its 1-based ID, records it, threads the tangency index
// both ways, and fires the OnCircle hook. Reaching the MaxCircles cap
// stops the run.
func (r *Run) emit(c Circle) error {
	c.ID = int64(len(r.circles) + 1)
	for _, pid := range c.Parents {
		if pid > 0 {
			p := &r.circles[pid-1]
			p.Tangents = append(p.Tangents, c.ID)
		}
	}
	r.circles = append(r.circles, c)
	k, x, y := c.Approx()
	r.approx = append(r.approx, [3]float64{k, x, y})
	r.seen[c.HashKey()] = struct{}{}
	if err := r.opts.OnCircle(c); err != nil {
		err = fmt.Errorf("%w: OnCircle error for circle %d: %v", ErrGeneration, c.ID, err)
		r.failed = err
		return err
	}
	if r.opts.MaxCircles > 0 && len(r.circles) >= r.opts.MaxCircles {
		r.capped = true
		r.queue = nil
	}
	return nil
}
