package models

// EnqueueRequest submits a batch of positions for offline computation.
type EnqueueRequest struct {
	Positions []string `json:"positions"`
	Depth     int      `json:"depth,omitempty"`
}

type EnqueueResponse struct {
	JobID  string `json:"job_id"`
	Queued int    `json:"queued"`
}
