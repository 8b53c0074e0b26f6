package scheduler

import (
	"testing"

	"github.com/google/uuid"
)

func TestImportProcessTaskRoundTrip(t *testing.T) {
	payload := ImportProcessPayload{JobID: uuid.NewString()}

	task, err := NewImportProcessTask(payload)
	if err != nil {
		t.Fatalf("NewImportProcessTask: %v", err)
	}
	if task.Type() != TaskImportProcess {
		t.Errorf("task type = %q, want %q", task.Type(), TaskImportProcess)
	}

	got, err := ParseImportProcessPayload(task)
	if err != nil {
		t.Fatalf("ParseImportProcessPayload: %v", err)
	}
	if got != payload {
		t.Errorf("payload = %+v, want %+v", got, payload)
	}
}

func TestCallbackReminderTaskRoundTrip(t *testing.T) {
	payload := CallbackReminderPayload{CallbackID: uuid.NewString()}

	task, err := NewCallbackReminderTask(payload)
	if err != nil {
		t.Fatalf("NewCallbackReminderTask: %v", err)
	}
	if task.Type() != TaskCallbackReminder {
		t.Errorf("task type = %q, want %q", task.Type(), TaskCallbackReminder)
	}

	got, err := ParseCallbackReminderPayload(task)
	if err != nil {
		t.Fatalf("ParseCallbackReminderPayload: %v", err)
	}
	if got != payload {
		t.Errorf("payload = %+v, want %+v", got, payload)
	}
}
