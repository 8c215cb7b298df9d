package tasks

import (
	"encoding/json"
)

// InfoPatch builds merge patches for the nlpy section of a task
// document. Only the fields explicitly set end up in the patch.
type InfoPatch struct {
	fields map[string]interface{}
}

func NewInfoPatch() *InfoPatch {
	return &InfoPatch{fields: make(map[string]interface{})}
}

func (patch *InfoPatch) Status(status TaskStatus) *InfoPatch {
	patch.fields["status"] = status
	return patch
}

func (patch *InfoPatch) Attempts(attempts int) *InfoPatch {
	patch.fields["attempts"] = attempts
	return patch
}

func (patch *InfoPatch) StartedAt(timestamp *string) *InfoPatch {
	patch.fields["started_at"] = timestamp
	return patch
}

func (patch *InfoPatch) CompletedAt(timestamp *string) *InfoPatch {
	patch.fields["completed_at"] = timestamp
	return patch
}

func (patch *InfoPatch) ResultsFileKey(key string) *InfoPatch {
	patch.fields["results_file_key"] = key
	return patch
}

func (patch *InfoPatch) ErrorMessages(messages []string) *InfoPatch {
	patch.fields["error_messages"] = messages
	return patch
}

func (patch *InfoPatch) Marshal() ([]byte, error) {
	return json.Marshal(map[string]interface{}{
		"task_statuses": map[string]interface{}{
			"nlpy": patch.fields,
		},
	})
}
