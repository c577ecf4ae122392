package services

import (
	"fmt"
	"time"

	"instant-lab/domain/instant"
	apperrors "instant-lab/errors"
	"instant-lab/repositories"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// CreateEventRequest carries the sparse creation payload. Optional fields
// stay nil when unsupplied; date strings must be RFC 3339 when present.
type CreateEventRequest struct {
	MemberID  string `validate:"required"`
	Title     string `validate:"required"`
	Desc      *string
	StartDate *string `validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	EndDate   *string `validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
}

type PostReplyRequest struct {
	MemberID  string `validate:"required"`
	EventID   string `validate:"required"`
	MessageID string `validate:"required"`
	Reply     string `validate:"required"`
	Author    *instant.Author
}

type IInstantEventService interface {
	CreateEvent(req CreateEventRequest) (string, error)
	GetEvent(memberID, eventID string) (instant.InstantEvent, error)
	ListEvents(memberID string) ([]instant.InstantEvent, error)
	PostMessage(memberID, eventID, message string) (string, error)
	ListMessages(memberID, eventID string) ([]instant.Message, error)
	GetMessage(memberID, eventID, messageID string) (instant.Message, error)
	PostReply(req PostReplyRequest) error
}

// InstantEventService is the public surface of the instant event core.
// It validates inputs, stamps caller-side reply timestamps and delegates to
// the repositories, which run each operation as one atomic transaction.
type InstantEventService struct {
	events   repositories.IEventRepository
	messages repositories.IMessageRepository
	replies  repositories.IReplyRepository
	now      func() time.Time
}

func NewInstantEventService(
	events repositories.IEventRepository,
	messages repositories.IMessageRepository,
	replies repositories.IReplyRepository,
	now func() time.Time,
) *InstantEventService {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &InstantEventService{events: events, messages: messages, replies: replies, now: now}
}

func (s *InstantEventService) CreateEvent(req CreateEventRequest) (string, error) {
	// Validate before touching the store; a malformed date must never
	// reach a document.
	if err := validate.Struct(req); err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrInvalidRequest, err)
	}
	return s.events.Create(req.MemberID, instant.EventDraft{
		Title:     req.Title,
		Desc:      req.Desc,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
	})
}

func (s *InstantEventService) GetEvent(memberID, eventID string) (instant.InstantEvent, error) {
	return s.events.Get(memberID, eventID)
}

func (s *InstantEventService) ListEvents(memberID string) ([]instant.InstantEvent, error) {
	return s.events.List(memberID)
}

func (s *InstantEventService) PostMessage(memberID, eventID, message string) (string, error) {
	if message == "" {
		return "", fmt.Errorf("%w: message body is required", apperrors.ErrInvalidRequest)
	}
	return s.messages.Post(memberID, eventID, message)
}

func (s *InstantEventService) ListMessages(memberID, eventID string) ([]instant.Message, error) {
	return s.messages.List(memberID, eventID)
}

func (s *InstantEventService) GetMessage(memberID, eventID, messageID string) (instant.Message, error) {
	return s.messages.Info(memberID, eventID, messageID)
}

func (s *InstantEventService) PostReply(req PostReplyRequest) error {
	if err := validate.Struct(req); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrInvalidRequest, err)
	}
	// The reply timestamp is computed on the caller side of the store, in
	// contrast with message CreateAt which the repository assigns at write
	// time.
	reply := instant.Reply{
		Reply:    req.Reply,
		CreateAt: s.now().Format(time.RFC3339),
		Author:   req.Author,
	}
	return s.replies.Post(req.MemberID, req.EventID, req.MessageID, reply)
}
