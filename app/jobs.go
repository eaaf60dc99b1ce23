package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/fatihtuzcu28/chess/app/models"
)

// ErrInvalidJob marks a queued job that can never succeed, no matter how
// often it is retried.
var ErrInvalidJob = errors.New("invalid job")

// ProcessJob analyzes one queued position and records the result in the
// move log. A bad FEN or bad depth is a permanent failure wrapped in
// ErrInvalidJob; the caller should drop the message rather than let SQS
// retry it forever.
func ProcessJob(ctx context.Context, job models.JobMessage) error {
	start := time.Now()
	pos, err := LoadPosition(job.FEN)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidJob, err)
	}

	depth := job.Depth
	if depth < 1 {
		return fmt.Errorf("%w: depth must be at least 1, got %d", ErrInvalidJob, depth)
	}

	move, score := BestMove(pos, depth)
	took := time.Since(start)
	if move == nil {
		log.Printf("job %s: no legal moves for fen=%q", job.JobID, job.FEN)
		return nil
	}

	rec := models.MoveRecord{
		FEN:    job.FEN,
		FENKey: NormalizeFEN(job.FEN),
		Depth:  depth,
		Move:   moveString(moveReply(move)),
		Score:  score,
		TookMS: took.Milliseconds(),
	}
	if err := SaveMoveRecord(ctx, rec); err != nil {
		return fmt.Errorf("save move record: %w", err)
	}

	log.Printf("job %s: fen=%q depth=%d move=%s score=%d took=%s",
		job.JobID, job.FEN, depth, rec.Move, score, took)
	return nil
}
