package app

import (
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/fatihtuzcu28/chess/app/models"

	"github.com/notnil/chess"
)

// ErrEngineBusy rejects a submission while another search is in flight.
// The dispatcher serves exactly one request at a time; callers wanting
// sequential searches must wait for each outcome before resubmitting.
var ErrEngineBusy = errors.New("engine busy: a search is already in flight")

// Outcome is the single result of one submitted search. Exactly one
// Outcome is delivered per accepted submission. A nil Move with a nil Err
// means the side to move has no legal moves.
type Outcome struct {
	Move  *models.MoveReply
	Score int
	Depth int
	Took  time.Duration
	Err   error
}

type searchJob struct {
	fen    string
	depth  int
	result chan Outcome
}

// Dispatcher decouples the CPU-bound synchronous search from the caller.
// It owns at most one worker goroutine, created lazily on the first
// submission and reused afterwards; Shutdown releases it and the next
// submission recreates it. A panic inside a search is surfaced to the
// submitter as a failed Outcome, never as a default move, and the worker
// survives to serve the next request.
type Dispatcher struct {
	mu       sync.Mutex
	jobs     chan searchJob
	quit     chan struct{}
	inFlight bool

	// run performs one search; nil means the real engine. Tests inject
	// slow or failing searches here.
	run func(fen string, depth int) Outcome
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{}
}

// Submit schedules one search and returns the channel its Outcome will be
// delivered on. It never blocks on the search itself. A submission while
// another is outstanding is rejected with ErrEngineBusy.
func (d *Dispatcher) Submit(fen string, depth int) (<-chan Outcome, error) {
	if depth < 1 {
		return nil, fmt.Errorf("depth must be at least 1, got %d", depth)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.inFlight {
		return nil, ErrEngineBusy
	}
	if d.jobs == nil {
		d.start()
	}
	job := searchJob{fen: fen, depth: depth, result: make(chan Outcome, 1)}
	d.jobs <- job
	d.inFlight = true
	return job.result, nil
}

// Shutdown stops the worker goroutine. An already-running search still
// delivers its outcome before the worker exits; a job accepted but not
// yet picked up is failed here so its submitter gets an outcome and the
// slot frees up. The next Submit recreates the worker.
func (d *Dispatcher) Shutdown() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.jobs == nil {
		return
	}
	close(d.quit)
	select {
	case job := <-d.jobs:
		// The worker honored quit before taking this job.
		job.result <- Outcome{Depth: job.depth, Err: errors.New("engine shut down before the search started")}
		d.inFlight = false
	default:
	}
	d.jobs = nil
	d.quit = nil
}

// start must be called with d.mu held.
func (d *Dispatcher) start() {
	d.jobs = make(chan searchJob, 1)
	d.quit = make(chan struct{})
	go d.worker(d.jobs, d.quit)
}

func (d *Dispatcher) worker(jobs <-chan searchJob, quit <-chan struct{}) {
	for {
		select {
		case job := <-jobs:
			out := d.safeRun(job.fen, job.depth)
			d.mu.Lock()
			d.inFlight = false
			d.mu.Unlock()
			job.result <- out
		case <-quit:
			return
		}
	}
}

func (d *Dispatcher) safeRun(fen string, depth int) (out Outcome) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("search worker panic: fen=%q depth=%d: %v", fen, depth, r)
			out = Outcome{Depth: depth, Err: fmt.Errorf("search failed: %v", r)}
		}
	}()
	run := d.run
	if run == nil {
		run = runSearch
	}
	return run(fen, depth)
}

// runSearch is the real engine invocation: parse, search, translate.
func runSearch(fen string, depth int) Outcome {
	start := time.Now()
	pos, err := LoadPosition(fen)
	if err != nil {
		return Outcome{Depth: depth, Err: err}
	}
	move, score := BestMove(pos, depth)
	out := Outcome{Score: score, Depth: depth, Took: time.Since(start)}
	if move != nil {
		out.Move = moveReply(move)
	}
	return out
}

func moveReply(m *chess.Move) *models.MoveReply {
	reply := &models.MoveReply{From: m.S1().String(), To: m.S2().String()}
	if promo := m.Promo(); promo != chess.NoPieceType {
		reply.Promotion = promo.String()
	}
	return reply
}

// dispatcher is the process-wide instance serving the HTTP handlers.
var dispatcher *Dispatcher

// InitDispatcher creates the package-level dispatcher used by the HTTP
// handlers. Call it once at startup.
func InitDispatcher() {
	dispatcher = NewDispatcher()
}
