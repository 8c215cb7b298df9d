package worker

import (
	"expertai.com/nlpy/tasks"
	"expertai.com/nlpy/types"
	"fmt"
	"github.com/rs/zerolog"
	"github.com/streadway/amqp"
	"path"
	"time"
)

// Extraction is the slice of the pipeline the worker needs.
type Extraction interface {
	Extract(sentences [][]string) ([][]types.Features, error)
	ExtractSafe(sentences [][]string) ([][]types.Features, []int)
}

type redisTransactions interface {
	getExtractTask(redisKey string) (*tasks.ExtractTask, error)
	onTaskStarted(task *Task) error
	onTaskExceededRetries(task *Task) error
	onTaskFailedWithError(task *Task, taskErr error) error
	onTaskComplete(task *Task) error
	close()
}

type rmqTransactions interface {
	getDeliveriesCh() <-chan amqp.Delivery
	getReqChanErrorsCh() <-chan *amqp.Error
	getRespChanErrorsCh() <-chan *amqp.Error
	pingSequencer(task *Task, message Message) error
	acknowledgeDelivery(delivery *amqp.Delivery) error
	rejectDelivery(delivery *amqp.Delivery, rejectLogger *zerolog.Logger)
	close()
}

type s3Transactions interface {
	getSentences(task *Task) ([][]string, error)
	saveResultsFile(task *Task, data string) error
	close()
}

func getResultsFileKey(task *Task) string {
	return path.Join(
		"processed",
		"jobs",
		task.extractTask.JobID,
		fmt.Sprintf("%s.nlpy_features.json", task.redisKey),
	)
}

const RFC3339Micro = "2006-01-02T15:04:05.000000-07:00"

func getFormattedNow() *string {
	now := time.Now().UTC().Format(RFC3339Micro)
	return &now
}
