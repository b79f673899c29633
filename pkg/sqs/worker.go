package sqs

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/aws/aws-sdk-go-v2/service/sqs/types"

	"habitat-api/pkg/log"
)

// HandlerFunc adapts a function to Handler.
type HandlerFunc func(ctx context.Context, msg types.Message) error

func (f HandlerFunc) HandleMessage(ctx context.Context, msg types.Message) error {
	return f(ctx, msg)
}

// Handler processes one SQS message. Returning nil deletes the message from the queue.
type Handler interface {
	HandleMessage(ctx context.Context, msg types.Message) error
}

// WorkerAPI is the subset of the SQS client used by Worker.
type WorkerAPI interface {
	GetQueueUrl(ctx context.Context, params *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error)
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
}

type HealthStatus string

const (
	StatusUp      HealthStatus = "UP"
	StatusDown    HealthStatus = "DOWN"
	StatusUnknown HealthStatus = "UNKNOWN"
)

// WorkerHealth is a point-in-time view of a worker.
type WorkerHealth struct {
	Status  HealthStatus
	Details map[string]string
}

// WorkerConfig defines the configuration options for a Worker.
type WorkerConfig struct {
	MaxNumberOfMessages int32
	WaitTimeSeconds     int32
	PoolSize            int
	// ErrorBackoff is the pause after a failed receive
	ErrorBackoff time.Duration
}

// Worker long-polls a queue and hands each message to a Handler.
type Worker struct {
	sqsClient           WorkerAPI
	queueName           string
	queueURL            string
	maxNumberOfMessages int32
	waitTimeSeconds     int32
	poolSize            int
	errorBackoff        time.Duration
	handler             Handler

	running   atomic.Bool
	processed atomic.Int64
	failed    atomic.Int64
	mu        sync.RWMutex
	lastError string
	lastPoll  time.Time
}

// NewWorker resolves the queue URL and returns a Worker.
//
// Zero config fields default to 10 messages, 20 seconds of long polling, a pool of 1 and a 1s error backoff.
// MaxNumberOfMessages must be between 1 and 10 and WaitTimeSeconds between 0 and 20.
func NewWorker(ctx context.Context, sqsClient WorkerAPI, queueName string, handler Handler, config *WorkerConfig) (*Worker, error) {
	var (
		maxMessages  int32 = 10
		waitTime     int32 = 20
		poolSize           = 1
		errorBackoff       = time.Second
	)
	if config != nil {
		if config.MaxNumberOfMessages != 0 {
			maxMessages = config.MaxNumberOfMessages
		}
		if config.WaitTimeSeconds != 0 {
			waitTime = config.WaitTimeSeconds
		}
		if config.PoolSize != 0 {
			poolSize = config.PoolSize
		}
		if config.ErrorBackoff != 0 {
			errorBackoff = config.ErrorBackoff
		}
	}

	if maxMessages < 1 || maxMessages > 10 {
		return nil, errors.New("maxNumberOfMessages must be between 1 and 10")
	}
	if waitTime < 0 || waitTime > 20 {
		return nil, errors.New("waitTimeSeconds must be between 0 and 20")
	}
	if poolSize < 1 {
		return nil, errors.New("poolSize must be greater than 0")
	}
	if handler == nil {
		return nil, errors.New("handler is required")
	}

	queueURL, err := resolveQueueURL(ctx, sqsClient, queueName)
	if err != nil {
		return nil, fmt.Errorf("unable to get queue URL: %w", err)
	}

	return &Worker{
		sqsClient:           sqsClient,
		queueName:           queueName,
		queueURL:            queueURL,
		maxNumberOfMessages: maxMessages,
		waitTimeSeconds:     waitTime,
		poolSize:            poolSize,
		errorBackoff:        errorBackoff,
		handler:             handler,
	}, nil
}

// Start spawns PoolSize pollers and blocks until ctx is canceled and every in-flight message is handled.
func (w *Worker) Start(ctx context.Context) {
	w.running.Store(true)
	defer w.running.Store(false)

	var wg sync.WaitGroup
	for i := 0; i < w.poolSize; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.pollMessages(ctx)
		}()
	}
	wg.Wait()
}

func (w *Worker) pollMessages(ctx context.Context) {
	for ctx.Err() == nil {
		output, err := w.sqsClient.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
			QueueUrl:              aws.String(w.queueURL),
			MaxNumberOfMessages:   w.maxNumberOfMessages,
			WaitTimeSeconds:       w.waitTimeSeconds,
			MessageAttributeNames: []string{"All"},
		})
		if err != nil && ctx.Err() != nil {
			return
		}
		w.recordPoll(err)
		if err != nil {
			log.Errorw("failed to receive messages", "queue", w.queueName, "error", err)
			select {
			case <-ctx.Done():
				return
			case <-time.After(w.errorBackoff):
			}
			continue
		}

		var batch sync.WaitGroup
		for _, msg := range output.Messages {
			batch.Add(1)
			go func(msg types.Message) {
				defer batch.Done()
				w.handleMessage(ctx, msg)
			}(msg)
		}
		batch.Wait()
	}
}

func (w *Worker) handleMessage(ctx context.Context, msg types.Message) {
	messageID := aws.ToString(msg.MessageId)
	if err := w.handler.HandleMessage(ctx, msg); err != nil {
		w.failed.Add(1)
		log.Errorw("error processing message", "queue", w.queueName, "messageId", messageID, "error", err)
		return
	}
	w.processed.Add(1)

	// deletion must not be skipped because the poll context was canceled mid-batch
	_, err := w.sqsClient.DeleteMessage(context.WithoutCancel(ctx), &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(w.queueURL),
		ReceiptHandle: msg.ReceiptHandle,
	})
	if err != nil {
		log.Errorw("failed to delete message", "queue", w.queueName, "messageId", messageID, "error", err)
		return
	}
	log.Debugw("message processed", "queue", w.queueName, "messageId", messageID)
}

func (w *Worker) recordPoll(err error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.lastPoll = time.Now()
	if err != nil {
		w.lastError = err.Error()
	} else {
		w.lastError = ""
	}
}

// HealthCheck reports DOWN when the worker is stopped or its last receive failed.
func (w *Worker) HealthCheck() WorkerHealth {
	w.mu.RLock()
	lastError, lastPoll := w.lastError, w.lastPoll
	w.mu.RUnlock()

	details := map[string]string{
		"queue":     w.queueName,
		"running":   strconv.FormatBool(w.running.Load()),
		"processed": strconv.FormatInt(w.processed.Load(), 10),
		"failed":    strconv.FormatInt(w.failed.Load(), 10),
	}
	if !lastPoll.IsZero() {
		details["last_poll"] = lastPoll.UTC().Format(time.RFC3339)
	}

	status := StatusUp
	if !w.running.Load() {
		status = StatusDown
	}
	if lastError != "" {
		status = StatusDown
		details["last_error"] = lastError
	}
	return WorkerHealth{Status: status, Details: details}
}
