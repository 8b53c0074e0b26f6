package scheduler

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const TaskImportProcess = "imports.process"

const TaskCallbackReminder = "callbacks.reminder"

type ImportProcessPayload struct {
	JobID string `json:"jobId"`
}

type CallbackReminderPayload struct {
	CallbackID string `json:"callbackId"`
}

func NewImportProcessTask(payload ImportProcessPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskImportProcess, data), nil
}

func ParseImportProcessPayload(task *asynq.Task) (ImportProcessPayload, error) {
	var payload ImportProcessPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return ImportProcessPayload{}, err
	}
	return payload, nil
}

func NewCallbackReminderTask(payload CallbackReminderPayload) (*asynq.Task, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskCallbackReminder, data), nil
}

func ParseCallbackReminderPayload(task *asynq.Task) (CallbackReminderPayload, error) {
	var payload CallbackReminderPayload
	if err := json.Unmarshal(task.Payload(), &payload); err != nil {
		return CallbackReminderPayload{}, err
	}
	return payload, nil
}
