package worker

import (
	"encoding/json"
	"expertai.com/nlpy/tasks"
	"expertai.com/nlpy/types"
	"expertai.com/nlpy/utils"
	"fmt"
	"github.com/rs/zerolog"
	"github.com/streadway/amqp"
)

type Message struct {
	WorkType string `json:"work_type"`
	RedisKey string `json:"redis_key"`
	Sender   string `json:"sender"`
	Version  string `json:"version"`
}

type Task struct {
	delivery    *amqp.Delivery
	extractTask *tasks.ExtractTask
	message     *Message
	redisKey    string
	nlpyLogger  *zerolog.Logger
}

// extractionResult is the payload uploaded to S3: one feature map per
// token per surviving sentence, plus the indexes of sentences whose
// analysis failed (safe mode only).
type extractionResult struct {
	Features        [][]types.Features `json:"features"`
	FailedSentences []int              `json:"failed_sentences,omitempty"`
}

func (worker *Worker) processMessage(delivery *amqp.Delivery) {
	task, err := worker.createTask(delivery)
	rejectLogger := worker.nlpyLogger.With().Str("message_id", delivery.MessageId).Logger()
	if err != nil {
		worker.nlpyLogger.Err(err).
			Str("message_id", delivery.MessageId).
			Str("tid", string(delivery.Body)).
			Msg("Failed to create task for delivery")
		worker.rmq.rejectDelivery(delivery, &rejectLogger)
		return
	}
	if err = worker.processTask(task); err != nil {
		worker.rmq.rejectDelivery(delivery, &rejectLogger)
		return
	}
	if err = worker.rmq.pingSequencer(task, *task.message); err != nil {
		task.nlpyLogger.Err(err).Msg("Got error while sending message to sequencer queue")
		worker.rmq.rejectDelivery(delivery, &rejectLogger)
		return
	}
	if err = worker.rmq.acknowledgeDelivery(delivery); err != nil {
		task.nlpyLogger.Err(err).Msg("Failed to acknowledge delivery")
	}
	task.nlpyLogger.Info().Msg("Finished processing RMQ message")
}

func (worker *Worker) createTask(delivery *amqp.Delivery) (*Task, error) {
	var message Message
	err := json.Unmarshal(delivery.Body, &message)
	if err != nil {
		return nil, fmt.Errorf("failed to unmarshal message, got error %w", err)
	}
	extractTask, err := worker.redis.getExtractTask(message.RedisKey)
	if err != nil {
		return nil, fmt.Errorf("failed to query extract task for message, got error %w", err)
	}
	taskLogger := worker.nlpyLogger.With().Str("tid", message.RedisKey).Logger()
	task := Task{
		delivery:    delivery,
		extractTask: extractTask,
		redisKey:    message.RedisKey,
		message:     &message,
		nlpyLogger:  &taskLogger,
	}
	return &task, nil
}

func (worker *Worker) processTask(task *Task) error {
	shouldPerform, err := worker.shouldPerformTask(task)
	if err != nil {
		task.nlpyLogger.Err(err).
			Msg("Got error while trying to decide whether to run task")
		return err
	}
	if !shouldPerform {
		return nil
	}
	if err = worker.redis.onTaskStarted(task); err != nil {
		task.nlpyLogger.Err(err).Msg("Failed to update task info")
		return fmt.Errorf("failed to update task info: %w", err)
	}
	if err = worker.runExtraction(task); err != nil {
		task.nlpyLogger.Err(err).Msg("Got error while running extraction")
		if err = worker.redis.onTaskFailedWithError(task, err); err != nil {
			return err
		}
		return nil
	}
	task.nlpyLogger.Info().Msg("Saved results, marking task as complete")
	if err = worker.redis.onTaskComplete(task); err != nil {
		task.nlpyLogger.Err(err).Msg("Got error while trying to mark task as complete")
		return err
	}
	return nil
}

func (worker *Worker) runExtraction(task *Task) (err error) {
	defer utils.RecoverWithError(&err)
	task.nlpyLogger.Info().Msgf("Processing message from RMQ, attempt # %d", task.extractTask.TaskStatuses.Nlpy.Attempts)
	sentences, err := worker.s3.getSentences(task)
	if err != nil {
		task.nlpyLogger.Err(err).Caller().Msg("Could not fetch sentences from s3")
		return fmt.Errorf("failed to fetch sentences from s3: %w", err)
	}

	var result extractionResult
	if worker.config.SafeMode {
		result.Features, result.FailedSentences = worker.ext.ExtractSafe(sentences)
	} else {
		result.Features, err = worker.ext.Extract(sentences)
		if err != nil {
			return err
		}
	}

	buf, err := json.Marshal(result)
	if err != nil {
		return err
	}
	task.nlpyLogger.Info().Msg("Finished extraction, saving results to s3")
	if err = worker.s3.saveResultsFile(task, string(buf)); err != nil {
		task.nlpyLogger.Err(err).Msg("Got error while trying to save results")
		return err
	}
	return nil
}

func (worker *Worker) shouldPerformTask(task *Task) (bool, error) {
	taskInfo := task.extractTask.TaskStatuses.Nlpy
	taskLogger := task.nlpyLogger

	if taskInfo.Status.Complete() {
		taskLogger.Info().Msg("Task is already done (might indicate issue acking message with RMQ). Sending back to Sequencer.")
		return false, nil
	}
	if taskInfo.Attempts >= worker.config.TaskMaxRetries {
		taskLogger.Warn().
			Int("attempts", taskInfo.Attempts).
			Msg("Task exceeded max retry count, marking as failed")
		if err := worker.redis.onTaskExceededRetries(task); err != nil {
			taskLogger.Err(err).Msg("Failed to mark task as exceeded retries")
			return false, err
		}
		return false, nil
	}
	return true, nil
}
