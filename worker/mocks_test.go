package worker

import (
	"errors"
	"expertai.com/nlpy/tasks"
	"expertai.com/nlpy/types"
	"github.com/rs/zerolog"
	"github.com/streadway/amqp"
)

type failingMethod struct {
	fail bool
}

type withValue struct {
	fail          bool
	returnedValue interface{}
}

type extractionMock struct {
	config extractionMockConfig
	calls  extractionCalls
}

type extractionMockConfig struct {
	fail bool
}

type extractionCalls struct {
	extract     bool
	extractSafe bool
}

func (m *extractionMock) Extract(sentences [][]string) ([][]types.Features, error) {
	m.calls.extract = true
	if m.config.fail {
		return nil, errors.New("extraction failed")
	}
	return mockFeatures(sentences), nil
}

func (m *extractionMock) ExtractSafe(sentences [][]string) ([][]types.Features, []int) {
	m.calls.extractSafe = true
	return mockFeatures(sentences), nil
}

func mockFeatures(sentences [][]string) [][]types.Features {
	feats := make([][]types.Features, len(sentences))
	for idx, sent := range sentences {
		feats[idx] = make([]types.Features, len(sent))
		for tokenIdx := range sent {
			feats[idx][tokenIdx] = types.Features{"bias": 1.0}
		}
	}
	return feats
}

type redisMock struct {
	config redisMockConfig
	calls  redisMockCalls
}

type redisMockConfig struct {
	getExtractTask        withValue
	onTaskStarted         failingMethod
	onTaskExceededRetries failingMethod
	onTaskFailedWithError failingMethod
	onTaskComplete        failingMethod
}

type redisMockCalls struct {
	getExtractTask        bool
	onTaskStarted         bool
	onTaskExceededRetries bool
	onTaskFailedWithError bool
	onTaskComplete        bool
}

func (m *redisMock) getExtractTask(string) (*tasks.ExtractTask, error) {
	m.calls.getExtractTask = true
	if m.config.getExtractTask.fail {
		return nil, errors.New("failed to get extract task")
	}
	return m.config.getExtractTask.returnedValue.(*tasks.ExtractTask), nil
}

func (m *redisMock) onTaskStarted(*Task) error {
	m.calls.onTaskStarted = true
	if m.config.onTaskStarted.fail {
		return errors.New("failed to update task")
	}
	return nil
}

func (m *redisMock) onTaskExceededRetries(*Task) error {
	m.calls.onTaskExceededRetries = true
	if m.config.onTaskExceededRetries.fail {
		return errors.New("failed to update task")
	}
	return nil
}

func (m *redisMock) onTaskFailedWithError(*Task, error) error {
	m.calls.onTaskFailedWithError = true
	if m.config.onTaskFailedWithError.fail {
		return errors.New("failed to update task")
	}
	return nil
}

func (m *redisMock) onTaskComplete(*Task) error {
	m.calls.onTaskComplete = true
	if m.config.onTaskComplete.fail {
		return errors.New("failed to update task")
	}
	return nil
}

func (m *redisMock) close() {}

type rmqMock struct {
	config rmqMockConfig
	calls  rmqMockCalls
}

type rmqMockConfig struct {
	pingSequencer       failingMethod
	acknowledgeDelivery failingMethod
}

type rmqMockCalls struct {
	pingSequencer       bool
	acknowledgeDelivery bool
	rejectDelivery      bool
}

func (m *rmqMock) getDeliveriesCh() <-chan amqp.Delivery {
	return nil
}

func (m *rmqMock) getReqChanErrorsCh() <-chan *amqp.Error {
	return nil
}

func (m *rmqMock) getRespChanErrorsCh() <-chan *amqp.Error {
	return nil
}

func (m *rmqMock) pingSequencer(*Task, Message) error {
	m.calls.pingSequencer = true
	if m.config.pingSequencer.fail {
		return errors.New("failed to ping sequencer")
	}
	return nil
}

func (m *rmqMock) acknowledgeDelivery(*amqp.Delivery) error {
	m.calls.acknowledgeDelivery = true
	if m.config.acknowledgeDelivery.fail {
		return errors.New("failed to ack delivery")
	}
	return nil
}

func (m *rmqMock) rejectDelivery(*amqp.Delivery, *zerolog.Logger) {
	m.calls.rejectDelivery = true
}

func (m *rmqMock) close() {}

type s3Mock struct {
	config s3MockConfig
	calls  s3MockCalls
}

type s3MockConfig struct {
	getSentences    withValue
	saveResultsFile failingMethod
}

type s3MockCalls struct {
	getSentences    bool
	saveResultsFile bool
}

func (m *s3Mock) getSentences(*Task) ([][]string, error) {
	m.calls.getSentences = true
	if m.config.getSentences.fail {
		return nil, errors.New("failed to download sentences")
	}
	if m.config.getSentences.returnedValue == nil {
		return [][]string{{"cats", "are", "great"}}, nil
	}
	return m.config.getSentences.returnedValue.([][]string), nil
}

func (m *s3Mock) saveResultsFile(*Task, string) error {
	m.calls.saveResultsFile = true
	if m.config.saveResultsFile.fail {
		return errors.New("failed to upload results")
	}
	return nil
}

func (m *s3Mock) close() {}
