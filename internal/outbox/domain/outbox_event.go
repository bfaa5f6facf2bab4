// Package domain defines the transactional outbox event.
package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// OutboxEventStatus represents the status of an outbox event
type OutboxEventStatus string

const (
	OutboxEventStatusPending   OutboxEventStatus = "pending"
	OutboxEventStatusProcessed OutboxEventStatus = "processed"
	OutboxEventStatusFailed    OutboxEventStatus = "failed"
)

// OutboxEvent is an event stored in the same transaction as the change that produced it
// and delivered later by the outbox processor.
type OutboxEvent struct {
	ID          uuid.UUID
	EventType   string
	Payload     string
	Status      OutboxEventStatus
	Retries     int
	LastError   *string
	ProcessedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewOutboxEvent creates a pending event with payload encoded as JSON.
func NewOutboxEvent(eventType string, payload any) (*OutboxEvent, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s event payload: %w", eventType, err)
	}

	now := time.Now().UTC()
	return &OutboxEvent{
		ID:        uuid.Must(uuid.NewV7()),
		EventType: eventType,
		Payload:   string(data),
		Status:    OutboxEventStatusPending,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// MarkProcessed flags the event as delivered.
func (e *OutboxEvent) MarkProcessed() {
	now := time.Now().UTC()
	e.Status = OutboxEventStatusProcessed
	e.ProcessedAt = &now
	e.UpdatedAt = now
}

// MarkAttemptFailed records a failed delivery. The event becomes failed once retries
// reach maxRetries and stays pending otherwise.
func (e *OutboxEvent) MarkAttemptFailed(err error, maxRetries int) {
	msg := err.Error()
	e.Retries++
	e.LastError = &msg
	e.UpdatedAt = time.Now().UTC()
	if e.Retries >= maxRetries {
		e.Status = OutboxEventStatusFailed
	}
}
