package worker

import (
	"encoding/json"
	"expertai.com/nlpy/s3client"
	"fmt"
)

type s3ClientWrapper struct {
	client *s3client.Client
}

func (wrapper *s3ClientWrapper) getSentences(task *Task) ([][]string, error) {
	data, err := wrapper.client.Download(task.extractTask.SentencesFileKey)
	if err != nil {
		return nil, err
	}
	var sentences [][]string
	if err := json.Unmarshal(data, &sentences); err != nil {
		return nil, fmt.Errorf("sentences file is not a JSON list of token lists: %w", err)
	}
	return sentences, nil
}

func (wrapper *s3ClientWrapper) saveResultsFile(task *Task, data string) error {
	return wrapper.client.Upload(data, getResultsFileKey(task))
}

func (wrapper *s3ClientWrapper) close() {}
