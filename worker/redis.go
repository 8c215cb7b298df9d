package worker

import (
	"expertai.com/nlpy/tasks"
)

type redisClientWrapper struct {
	client *tasks.Client
}

func (wrapper *redisClientWrapper) getExtractTask(redisKey string) (*tasks.ExtractTask, error) {
	return wrapper.client.Extracts.Get(redisKey)
}

func (wrapper *redisClientWrapper) onTaskStarted(task *Task) error {
	patch, err := tasks.NewInfoPatch().
		Status(tasks.TaskStatusProcessing).
		Attempts(task.extractTask.TaskStatuses.Nlpy.Attempts + 1).
		StartedAt(getFormattedNow()).
		Marshal()
	if err != nil {
		return err
	}
	return wrapper.client.Extracts.Update(task.redisKey, patch)
}

func (wrapper *redisClientWrapper) onTaskExceededRetries(task *Task) error {
	messages := append(
		task.extractTask.TaskStatuses.Nlpy.ErrorMessages,
		"exceeded max retry count",
	)
	patch, err := tasks.NewInfoPatch().
		Status(tasks.TaskStatusCompletedFailure).
		CompletedAt(getFormattedNow()).
		ErrorMessages(messages).
		Marshal()
	if err != nil {
		return err
	}
	return wrapper.client.Extracts.Update(task.redisKey, patch)
}

func (wrapper *redisClientWrapper) onTaskFailedWithError(task *Task, taskErr error) error {
	messages := append(
		task.extractTask.TaskStatuses.Nlpy.ErrorMessages,
		taskErr.Error(),
	)
	patch, err := tasks.NewInfoPatch().
		Status(tasks.TaskStatusFailed).
		CompletedAt(getFormattedNow()).
		ErrorMessages(messages).
		Marshal()
	if err != nil {
		return err
	}
	return wrapper.client.Extracts.Update(task.redisKey, patch)
}

func (wrapper *redisClientWrapper) onTaskComplete(task *Task) error {
	patch, err := tasks.NewInfoPatch().
		Status(tasks.TaskStatusCompletedSuccess).
		CompletedAt(getFormattedNow()).
		ResultsFileKey(getResultsFileKey(task)).
		Marshal()
	if err != nil {
		return err
	}
	return wrapper.client.Extracts.Update(task.redisKey, patch)
}

func (wrapper *redisClientWrapper) close() {
	wrapper.client.Close()
}
