// Package parallel provides the data-parallel fan-out used by the renderer.
package parallel

import (
	"errors"
	"runtime"
	"sync"
)

// ErrClosed is returned when work is handed to a pool after Close.
var ErrClosed = errors.New("parallel: pool is closed")

// Pool is a fixed set of goroutines that runs batches of independent work.
//
// Every worker owns a queue and steals from the other queues when its own
// runs dry. Escape loops near the set boundary run up to the iteration budget
// while neighbouring chunks finish after a handful of steps, so stealing keeps
// all workers busy until the batch drains.
//
// Thread safety: Run and For may be called from multiple goroutines. Close
// waits for batches that are already running.
type Pool struct {
	workers int
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup

	// mu is held shared by every batch and exclusively by Close.
	mu     sync.RWMutex
	closed bool
}

// NewPool starts a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := max(workers*4, 8)

	p := &Pool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range workers {
		p.queues[i] = make(chan func(), queueSize)
	}

	p.wg.Add(workers)
	for i := range workers {
		go p.worker(i)
	}
	return p
}

func (p *Pool) worker(id int) {
	defer p.wg.Done()

	own := p.queues[id]
	for {
		select {
		case <-p.done:
			p.drain(own)
			return
		case fn := <-own:
			fn()
		default:
			if fn := p.steal(id); fn != nil {
				fn()
				continue
			}
			select {
			case <-p.done:
				p.drain(own)
				return
			case fn := <-own:
				fn()
			}
		}
	}
}

func (p *Pool) drain(q chan func()) {
	for {
		select {
		case fn := <-q:
			fn()
		default:
			return
		}
	}
}

// steal takes one item from another worker's queue, or returns nil.
func (p *Pool) steal(id int) func() {
	for i := range p.workers {
		if i == id {
			continue
		}
		select {
		case fn := <-p.queues[i]:
			return fn
		default:
		}
	}
	return nil
}

// Run executes every item of work and returns once all of them have
// finished. Items are dealt round-robin onto the worker queues.
func (p *Pool) Run(work []func()) error {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.closed {
		return ErrClosed
	}
	if len(work) == 0 {
		return nil
	}

	var batch sync.WaitGroup
	batch.Add(len(work))
	for i, fn := range work {
		if fn == nil {
			batch.Done()
			continue
		}
		p.queues[i%p.workers] <- func() {
			defer batch.Done()
			fn()
		}
	}
	batch.Wait()
	return nil
}

// For splits the index space [0, n) into contiguous ranges of at most chunk
// indices and calls fn(lo, hi) once per range on the pool. Ranges never
// overlap, so fn may write to index lo..hi-1 of a shared slice without
// locking. For returns after every range has been processed.
//
// A chunk of 0 or less picks a size giving each worker about four ranges.
func (p *Pool) For(n, chunk int, fn func(lo, hi int)) error {
	if n <= 0 {
		p.mu.RLock()
		closed := p.closed
		p.mu.RUnlock()
		if closed {
			return ErrClosed
		}
		return nil
	}

	ranges := Split(n, chunk, p.workers)
	work := make([]func(), len(ranges))
	for i, r := range ranges {
		work[i] = func() { fn(r.Lo, r.Hi) }
	}
	return p.Run(work)
}

// Range is a half-open index interval.
type Range struct {
	Lo, Hi int
}

// Split cuts [0, n) into consecutive ranges of at most chunk indices.
// A chunk of 0 or less is derived from n and workers.
func Split(n, chunk, workers int) []Range {
	if n <= 0 {
		return nil
	}
	if chunk <= 0 {
		chunk = max(n/(max(workers, 1)*4), 1)
	}

	out := make([]Range, 0, (n+chunk-1)/chunk)
	for lo := 0; lo < n; lo += chunk {
		out = append(out, Range{Lo: lo, Hi: min(lo+chunk, n)})
	}
	return out
}

// Close stops the workers after the queued work has run.
// Close is safe to call multiple times.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.done)
	p.mu.Unlock()

	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}
