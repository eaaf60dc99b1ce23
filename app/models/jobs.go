package models

type JobMessage struct {
	FEN   string `json:"fen"`
	Depth int    `json:"depth"`
	JobID string `json:"job_id"` // optional, groups the positions of one batch
}
