package pool

import (
	"github.com/sasha-s/go-deadlock"
	"github.com/segmentio/ksuid"

	"github.com/katalvlaran/sdfeval/backend"
	"github.com/katalvlaran/sdfeval/eval"
	"github.com/katalvlaran/sdfeval/tape"
	"github.com/katalvlaran/sdfeval/vm"
)

// Pool hands out eval.IntervalEval instances backed by recycled
// storage. It never shares a single evaluator across goroutines: each
// outstanding Lease is exclusive to the worker holding it.
type Pool struct {
	t       tape.Tape
	factory backend.IntervalBackendFactory

	mu   deadlock.Mutex
	free []eval.IntervalEvalStorage
}

// New builds a Pool over t, preallocating opts.Prealloc evaluator
// storages by constructing a throwaway evaluator for each and
// immediately taking its storage back (no evaluation is run).
func New(t tape.Tape, opts Options) *Pool {
	p := &Pool{t: t, factory: vm.NewInterval}
	for i := 0; i < opts.Prealloc; i++ {
		e := eval.NewIntervalEval(t, p.factory)
		p.free = append(p.free, e.Take())
	}
	return p
}

// Lease is an exclusively-owned evaluator checked out of a Pool. ID
// uniquely (and sortably, by issue time) identifies this lease for
// correlating concurrent workers in logs.
type Lease struct {
	ID   ksuid.KSUID
	Eval *eval.IntervalEval

	pool *Pool
}

// Lease checks out an evaluator, reusing recycled storage if any is
// available in the free-list, or building one from scratch otherwise.
func (p *Pool) Lease() *Lease {
	p.mu.Lock()
	var storage eval.IntervalEvalStorage
	if n := len(p.free); n > 0 {
		storage = p.free[n-1]
		p.free = p.free[:n-1]
	}
	p.mu.Unlock()

	e := eval.NewIntervalEvalWithStorage(p.t, p.factory, storage)
	return &Lease{ID: ksuid.New(), Eval: e, pool: p}
}

// Release detaches the lease's evaluator storage and returns it to the
// pool's free-list for a future Lease to reuse. The Lease must not be
// used again after Release.
func (l *Lease) Release() {
	storage := l.Eval.Take()
	l.pool.mu.Lock()
	l.pool.free = append(l.pool.free, storage)
	l.pool.mu.Unlock()
	l.Eval = nil
}

// FreeCount returns the number of recycled storages currently idle in
// the pool. Exposed for tests and diagnostics.
func (p *Pool) FreeCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.free)
}
