package app

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	appconfig "github.com/fatihtuzcu28/chess/app/config"
	"github.com/fatihtuzcu28/chess/app/models"
)

var (
	sqsClient *sqs.Client
	queueURL  string
)

// InitQueue wires the SQS client used to enqueue analysis jobs. Leaving
// QUEUE_URL unset disables the queue; the enqueue endpoint then answers
// 503 instead of failing at startup.
func InitQueue(ctx context.Context) error {
	cfg, err := appconfig.LoadConfig()
	if err != nil {
		return err
	}
	if cfg.QueueURL == "" {
		log.Println("QUEUE_URL not set; job queue disabled")
		return nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return fmt.Errorf("load aws config: %w", err)
	}
	sqsClient = sqs.NewFromConfig(awsCfg)
	queueURL = cfg.QueueURL
	return nil
}

// QueueEnabled reports whether jobs can be enqueued.
func QueueEnabled() bool {
	return sqsClient != nil && queueURL != ""
}

// EnqueueJobs sends one SQS message per position and returns the shared
// job id. Positions are not validated here; the worker reports bad FENs.
func EnqueueJobs(ctx context.Context, positions []string, depth int) (string, int, error) {
	if !QueueEnabled() {
		return "", 0, fmt.Errorf("job queue is not configured")
	}

	jobID := newJobID()
	queued := 0
	for _, fen := range positions {
		body, err := json.Marshal(models.JobMessage{FEN: fen, Depth: depth, JobID: jobID})
		if err != nil {
			return jobID, queued, fmt.Errorf("marshal job message: %w", err)
		}
		msg := string(body)
		_, err = sqsClient.SendMessage(ctx, &sqs.SendMessageInput{
			QueueUrl:    &queueURL,
			MessageBody: &msg,
		})
		if err != nil {
			return jobID, queued, fmt.Errorf("send message: %w", err)
		}
		queued++
	}
	return jobID, queued, nil
}

func newJobID() string {
	b := make([]byte, 8)
	if _, err := rand.Read(b); err != nil {
		// rand.Read failing means the platform entropy source is broken
		log.Fatalf("failed to generate job id: %v", err)
	}
	return hex.EncodeToString(b)
}
