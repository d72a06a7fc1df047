package domain

import (
	"fmt"
	"time"
)

// ChatMessage is one entry of a task's discussion thread. Messages are
// immutable once created.
type ChatMessage struct {
	ID      string `validate:"notblank"`
	TaskID  string `validate:"notblank"`
	Sender  string `validate:"notblank"`
	Content string `validate:"notblank"`
	// Timestamp is always set; the zero time is rejected.
	Timestamp time.Time
}

// NewChatMessage stamps the message with the current time.
func NewChatMessage(id, taskID, sender, content string) (*ChatMessage, error) {
	return NewChatMessageAt(id, taskID, sender, content, time.Now())
}

func NewChatMessageAt(id, taskID, sender, content string, timestamp time.Time) (*ChatMessage, error) {
	message := &ChatMessage{
		ID:        id,
		TaskID:    taskID,
		Sender:    sender,
		Content:   content,
		Timestamp: timestamp,
	}
	if err := message.Validate(); err != nil {
		return nil, err
	}
	return message, nil
}

func (m ChatMessage) Validate() error {
	if err := validateEntity("chat message", m); err != nil {
		return err
	}
	if m.Timestamp.IsZero() {
		return fmt.Errorf("%w: chat message: missing Timestamp", ErrInvalidArgument)
	}
	return nil
}

func (m ChatMessage) Equal(other ChatMessage) bool {
	return m.ID == other.ID
}
