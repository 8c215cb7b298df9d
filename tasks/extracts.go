package tasks

import (
	"expertai.com/nlpy/redis"
	jsonpatch "github.com/evanphx/json-patch"
)

const ExtractsDB redis.DB = 1

type TaskStatus string

const (
	TaskStatusProcessing       TaskStatus = "processing"
	TaskStatusSubmitted        TaskStatus = "submitted"
	TaskStatusStarted          TaskStatus = "started"
	TaskStatusFailed           TaskStatus = "failed"
	TaskStatusCompletedSuccess TaskStatus = "completed - success"
	TaskStatusCompletedFailure TaskStatus = "completed - failure"
	TaskStatusCanceled         TaskStatus = "canceled"
)

func (s TaskStatus) Complete() bool {
	return s == TaskStatusCompletedSuccess || s == TaskStatusCompletedFailure || s == TaskStatusCanceled
}

func (s TaskStatus) Submitted() bool {
	return s == TaskStatusSubmitted || s == TaskStatusStarted || s == TaskStatusProcessing
}

// ExtractTask is the shared task document of one feature extraction
// request: where the tokenized sentences live in S3 and how far this
// service has come with them.
type ExtractTask struct {
	JobID            string              `json:"job_id"`
	SentencesFileKey string              `json:"sentences_file_key"`
	TaskStatuses     ExtractTaskStatuses `json:"task_statuses"`
}

type ExtractTaskStatuses struct {
	Nlpy ExtractTaskInfo `json:"nlpy"`
}

type ExtractTaskInfo struct {
	ResultsFileKey string     `json:"results_file_key"`
	StartedAt      *string    `json:"started_at"`
	CompletedAt    *string    `json:"completed_at"`
	Attempts       int        `json:"attempts"`
	Status         TaskStatus `json:"status"`
	ErrorMessages  []string   `json:"error_messages"`
}

type ExtractTasks struct {
	client redis.Client
}

func (tasks ExtractTasks) Get(redisKey string) (*ExtractTask, error) {
	var task ExtractTask
	if err := tasks.client.GetJSONDocument(redisKey, &task); err != nil {
		return nil, err
	}
	return &task, nil
}

// Update applies a merge patch to the stored task document under a
// distributed lock, so concurrent workers touching other fields of the
// same document are not clobbered.
func (tasks ExtractTasks) Update(redisKey string, patch []byte) (err error) {
	releaseLock, err := tasks.client.Lock(redisKey)
	if err != nil {
		return err
	}
	defer func() {
		if releaseErr := releaseLock(); err == nil {
			err = releaseErr
		}
	}()

	current, err := tasks.client.GetRaw(redisKey)
	if err != nil {
		return err
	}
	merged, err := jsonpatch.MergePatch(current, patch)
	if err != nil {
		return err
	}
	return tasks.client.SetRaw(redisKey, merged, 0)
}
