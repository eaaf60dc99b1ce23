package main

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"os"
	"time"

	"github.com/fatihtuzcu28/chess/app"
	"github.com/fatihtuzcu28/chess/app/models"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	sqstypes "github.com/aws/aws-sdk-go-v2/service/sqs/types"
)

func main() {
	baseCtx := context.Background()

	app.MustInitDB()

	queueURL := os.Getenv("QUEUE_URL")
	if queueURL == "" {
		log.Fatal("QUEUE_URL environment variable is required")
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(baseCtx)
	if err != nil {
		log.Fatalf("failed to load AWS config: %v", err)
	}
	sqsClient := sqs.NewFromConfig(awsCfg)

	log.Printf("Worker started, listening on SQS queue: %s", queueURL)

	for {
		// Long-poll SQS
		recvCtx, cancel := context.WithTimeout(baseCtx, 30*time.Second)
		resp, err := sqsClient.ReceiveMessage(recvCtx, &sqs.ReceiveMessageInput{
			QueueUrl:            &queueURL,
			MaxNumberOfMessages: 5,
			WaitTimeSeconds:     20, // enable long polling
			VisibilityTimeout:   120,
		})
		cancel()

		if err != nil {
			log.Printf("ReceiveMessage error: %v", err)
			time.Sleep(5 * time.Second)
			continue
		}

		if len(resp.Messages) == 0 {
			// No work; small sleep to avoid hot loop
			time.Sleep(2 * time.Second)
			continue
		}

		for _, m := range resp.Messages {
			if m.Body == nil {
				log.Printf("received message with empty body, skipping: %#v", m)
				continue
			}

			var job models.JobMessage
			if err := json.Unmarshal([]byte(*m.Body), &job); err != nil {
				// Poison pill; delete to avoid infinite retries
				log.Printf("failed to unmarshal job message: %v, body=%s", err, *m.Body)
				deleteMessage(sqsClient, queueURL, m)
				continue
			}

			jobCtx, jobCancel := context.WithTimeout(baseCtx, 2*time.Minute)
			err := app.ProcessJob(jobCtx, job)
			jobCancel()

			if err != nil {
				log.Printf("error processing job job_id=%s fen=%q: %v", job.JobID, job.FEN, err)
				if errors.Is(err, app.ErrInvalidJob) {
					// Permanent failure; retrying cannot succeed
					deleteMessage(sqsClient, queueURL, m)
				}
				// Transient failures stay on the queue and become visible
				// again after VisibilityTimeout
				continue
			}

			deleteMessage(sqsClient, queueURL, m)
		}
	}
}

func deleteMessage(sqsClient *sqs.Client, queueURL string, m sqstypes.Message) {
	if m.ReceiptHandle == nil {
		return
	}
	_, err := sqsClient.DeleteMessage(context.Background(), &sqs.DeleteMessageInput{
		QueueUrl:      &queueURL,
		ReceiptHandle: m.ReceiptHandle,
	})
	if err != nil {
		log.Printf("failed to delete SQS message: %v", err)
	}
}
