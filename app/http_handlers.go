package app

import (
	"errors"
	"log"
	"net/http"

	"github.com/fatihtuzcu28/chess/app/config"
	"github.com/fatihtuzcu28/chess/app/models"
	"github.com/gin-gonic/gin"
)

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetBestMove computes the engine's move for the posted position. The
// search runs on the dispatcher worker while this handler blocks on the
// outcome channel, so a second request arriving mid-search gets 409
// instead of piling up a goroutine per caller.
func GetBestMove(c *gin.Context) {
	var req models.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load config"})
		return
	}
	depth := req.Depth
	if depth <= 0 {
		depth = cfg.Engine.Depth
	}
	if depth > cfg.Engine.MaxDepth {
		depth = cfg.Engine.MaxDepth
	}

	outcomes, err := dispatcher.Submit(req.Position, depth)
	if err != nil {
		if errors.Is(err, ErrEngineBusy) {
			c.JSON(http.StatusConflict, gin.H{"error": "engine busy, try again"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	out := <-outcomes
	if out.Err != nil {
		if errors.Is(out.Err, ErrInvalidPosition) {
			c.JSON(http.StatusBadRequest, gin.H{"error": out.Err.Error()})
			return
		}
		log.Printf("search failed: %v", out.Err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}

	resp := models.MoveResponse{
		Move:   out.Move,
		Score:  out.Score,
		Depth:  out.Depth,
		TookMS: out.Took.Milliseconds(),
	}

	if out.Move != nil {
		// Best effort; a broken move log must not fail the request.
		rec := models.MoveRecord{
			FEN:    req.Position,
			FENKey: NormalizeFEN(req.Position),
			Depth:  out.Depth,
			Move:   moveString(out.Move),
			Score:  out.Score,
			TookMS: out.Took.Milliseconds(),
		}
		if err := SaveMoveRecord(c.Request.Context(), rec); err != nil {
			log.Printf("failed to save move record: %v", err)
		}
	}

	c.JSON(http.StatusOK, resp)
}

// EnqueueBatch queues positions for offline analysis by the worker.
func EnqueueBatch(c *gin.Context) {
	var req models.EnqueueRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Positions) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if !QueueEnabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "job queue is not configured"})
		return
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to load config"})
		return
	}
	depth := req.Depth
	if depth <= 0 {
		depth = cfg.Engine.Depth
	}
	if depth > cfg.Engine.MaxDepth {
		depth = cfg.Engine.MaxDepth
	}

	jobID, queued, err := EnqueueJobs(c.Request.Context(), req.Positions, depth)
	if err != nil {
		log.Printf("failed to enqueue jobs: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to enqueue jobs"})
		return
	}

	c.JSON(http.StatusOK, models.EnqueueResponse{JobID: jobID, Queued: queued})
}

// GetRecentMoves lists the newest move log entries.
func GetRecentMoves(c *gin.Context) {
	limit := 50
	if v := c.Query("limit"); v != "" {
		n, err := parsePositiveInt(v)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
			return
		}
		limit = n
	}

	records, err := RecentMoveRecords(c.Request.Context(), limit)
	if err != nil {
		log.Printf("failed to query move log: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to query move log"})
		return
	}
	if records == nil {
		records = []models.MoveRecord{}
	}
	c.JSON(http.StatusOK, gin.H{"moves": records})
}
