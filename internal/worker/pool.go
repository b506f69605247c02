// Package worker provides a worker pool for parallel move generation.
// Generation only reads the board, so any number of pieces can be processed
// concurrently against the same position; callers must not mutate the board
// while a pool is running.
package worker

import (
	"sync"
	"sync/atomic"

	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/engine"
)

// WorkItem identifies one piece whose moves are to be generated.
type WorkItem struct {
	Piece *chess.Piece
	Index int // Original index for reassembling ordered results
}

// Result carries the generated moves for one piece.
type Result struct {
	Piece *chess.Piece
	Index int
	Moves []chess.Coord
}

// Pool manages a pool of workers generating moves against a shared
// read-only board.
type Pool struct {
	board      chess.BoardQuery
	numWorkers int
	bufferSize int
	workChan   chan WorkItem
	resultChan chan Result
	wg         sync.WaitGroup
	stopFlag   int32 // Atomic flag for early termination
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a worker pool over the given board.
// Default: 1 worker, buffer size of 16.
func NewPool(board chess.BoardQuery, opts ...PoolOption) *Pool {
	p := &Pool{
		board:      board,
		numWorkers: 1,
		bufferSize: 16,
	}
	for _, opt := range opts {
		opt(p)
	}
	// Create channels after options are applied
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan Result, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker generates moves for items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // Drain channel without processing
		}
		p.resultChan <- Result{
			Piece: item.Piece,
			Index: item.Index,
			Moves: engine.PossibleMoves(p.board, item.Piece),
		}
	}
}

// Submit submits a piece for move generation.
// This may block if the work channel buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.workChan <- item
}

// Stop signals workers to stop processing new items.
// Items already in the channel will be drained but not processed.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.stopFlag, 1)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return atomic.LoadInt32(&p.stopFlag) != 0
}

// Close closes the work channel and waits for all workers to finish.
// After calling Close, the result channel will be closed when all workers
// are done.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading generated moves.
func (p *Pool) Results() <-chan Result {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// GenerateAll generates moves for every given piece using the requested
// number of workers and returns the move lists indexed like the input.
func GenerateAll(board chess.BoardQuery, pieces []*chess.Piece, workers int) [][]chess.Coord {
	if workers < 1 {
		workers = 1
	}
	pool := NewPool(board, WithWorkers(workers), WithBufferSize(len(pieces)+1))
	pool.Start()

	go func() {
		for i, piece := range pieces {
			pool.Submit(WorkItem{Piece: piece, Index: i})
		}
		pool.Close()
	}()

	moves := make([][]chess.Coord, len(pieces))
	for result := range pool.Results() {
		moves[result.Index] = result.Moves
	}
	return moves
}
