// Package worker fans legal-move generation out across source squares.
//
// Every job only reads the position it was given, so jobs run in any order;
// Collect puts the results back in submission order.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Job is one source square whose moves should be generated.
type Job struct {
	From  chess.Square
	Index int // Position in the submitted batch
}

// Result carries the moves found for one job.
type Result struct {
	From  chess.Square
	Index int
	Moves []chess.Move
}

// GenerateFunc returns the moves of the piece on from.
type GenerateFunc func(from chess.Square) []chess.Move

// Pool runs a GenerateFunc on a fixed number of goroutines.
type Pool struct {
	workers  int
	jobs     chan Job
	results  chan Result
	generate GenerateFunc
	wg       sync.WaitGroup
	stopped  atomic.Bool
}

// New creates a pool whose channels hold capacity jobs and results without
// blocking. workers and capacity below 1 are raised to 1.
func New(workers, capacity int, generate GenerateFunc) *Pool {
	if workers < 1 {
		workers = 1
	}
	if capacity < 1 {
		capacity = 1
	}
	return &Pool{
		workers:  workers,
		jobs:     make(chan Job, capacity),
		results:  make(chan Result, capacity),
		generate: generate,
	}
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.workers; i++ {
		p.wg.Add(1)
		go p.work()
	}
}

// work processes jobs until the job channel is closed. After Stop, queued
// jobs are drained without being generated.
func (p *Pool) work() {
	defer p.wg.Done()

	for job := range p.jobs {
		if p.Stopped() {
			continue
		}
		p.results <- Result{From: job.From, Index: job.Index, Moves: p.generate(job.From)}
	}
}

// Submit queues a job. It blocks while the job channel is full.
func (p *Pool) Submit(job Job) {
	p.jobs <- job
}

// Stop tells workers to skip the jobs still queued.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// Stopped reports whether Stop has been called.
func (p *Pool) Stopped() bool {
	return p.stopped.Load()
}

// Close closes the job channel, waits for the workers and then closes the
// result channel.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
}

// Results returns the result channel.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// Workers returns the number of worker goroutines.
func (p *Pool) Workers() int {
	return p.workers
}

// run submits one job per source and closes the pool once they are queued.
func (p *Pool) run(sources []chess.Square) {
	p.Start()
	for i, from := range sources {
		p.Submit(Job{From: from, Index: i})
	}
	go p.Close()
}

// Collect generates the moves of every source and returns them concatenated
// in the order of sources.
func Collect(workers int, sources []chess.Square, generate GenerateFunc) []chess.Move {
	p := New(workers, len(sources), generate)
	p.run(sources)

	bySource := make([][]chess.Move, len(sources))
	total := 0
	for r := range p.Results() {
		bySource[r.Index] = r.Moves
		total += len(r.Moves)
	}

	moves := make([]chess.Move, 0, total)
	for _, m := range bySource {
		moves = append(moves, m...)
	}
	return moves
}

// Any reports whether some source has at least one move. The pool is
// stopped at the first hit.
func Any(workers int, sources []chess.Square, generate GenerateFunc) bool {
	p := New(workers, len(sources), generate)
	p.run(sources)

	found := false
	for r := range p.Results() {
		if len(r.Moves) > 0 && !found {
			found = true
			p.Stop()
		}
	}
	return found
}
