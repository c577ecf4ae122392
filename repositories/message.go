//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"instant-lab/domain/instant"
	apperrors "instant-lab/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

type IMessageRepository interface {
	Post(memberID, eventID, body string) (string, error)
	List(memberID, eventID string) ([]instant.Message, error)
	Info(memberID, eventID, messageID string) (instant.Message, error)
}

// MessageRepository owns the message thread of an event, including the
// closing policy: the first post attempt at or past the event's end date
// closes the event and is itself rejected, in one transaction.
type MessageRepository struct {
	db          *badger.DB
	log         *slog.Logger
	now         func() time.Time
	maxAttempts int
}

func NewMessageRepository(db *badger.DB, log *slog.Logger, now func() time.Time, maxAttempts int) *MessageRepository {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &MessageRepository{db: db, log: log, now: now, maxAttempts: maxAttempts}
}

// messageDoc is the persisted shape. CreateAt is assigned by this layer at
// write time and never rewritten; UpdateAt appears once the first reply
// lands. Reply holds the embedded thread, newest first.
type messageDoc struct {
	Message    string          `json:"message"`
	ReplyCount int             `json:"replyCount"`
	CreateAt   time.Time       `json:"createAt"`
	UpdateAt   *time.Time      `json:"updateAt,omitempty"`
	Reply      []instant.Reply `json:"reply,omitempty"`
}

// Post runs one transaction: member check, event check, closing policy,
// then the message write. Both closing conditions reject the post; only the
// expiry transition also writes. Two posts racing past expiry cannot both
// succeed: the loser's snapshot read of the event conflicts with the
// winner's close, Badger aborts it, and the retry observes closed=true.
func (m MessageRepository) Post(memberID, eventID, body string) (string, error) {
	newID := uuid.New().String()
	var closedNow bool
	err := RunTransaction(m.db, m.maxAttempts, func(txn *badger.Txn) error {
		closedNow = false
		if err := requireMember(txn, memberID); err != nil {
			return err
		}
		doc, err := getDoc[eventDoc](txn, eventKey(memberID, eventID), apperrors.ErrEventNotFound)
		if err != nil {
			return err
		}
		if doc.Closed {
			return apperrors.ErrEventClosed
		}
		expired, err := toInstantEvent(eventID, doc).Expired(m.now())
		if err != nil {
			return fmt.Errorf("event %s has a malformed end date: %w", eventID, err)
		}
		if expired {
			// The close must commit even though the post is rejected, so the
			// rejection is reported after the transaction instead of
			// aborting it.
			doc.Closed = true
			closedNow = true
			return setDoc(txn, eventKey(memberID, eventID), doc)
		}
		msg := messageDoc{
			Message:    body,
			ReplyCount: 0,
			CreateAt:   m.now(),
		}
		return setDoc(txn, messageKey(memberID, eventID, newID), msg)
	})
	if err != nil {
		return "", err
	}
	if closedNow {
		m.log.Info("instant event closed on expired post attempt", "member", memberID, "event", eventID)
		return "", apperrors.ErrEventClosed
	}
	return newID, nil
}

// List returns every message under the event in store key order; no
// chronological ordering is promised. A missing event fails with
// ErrEventNotFound rather than yielding an empty list.
func (m MessageRepository) List(memberID, eventID string) ([]instant.Message, error) {
	var messages []instant.Message
	err := m.db.View(func(txn *badger.Txn) error {
		if err := requireMember(txn, memberID); err != nil {
			return err
		}
		if _, err := getDoc[eventDoc](txn, eventKey(memberID, eventID), apperrors.ErrEventNotFound); err != nil {
			return err
		}
		prefix := messagePrefix(memberID, eventID)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			id := strings.TrimPrefix(string(item.Key()), string(prefix))
			err := item.Value(func(val []byte) error {
				doc, err := decodeDoc[messageDoc](val)
				if err != nil {
					return fmt.Errorf("decoding message %s: %w", id, err)
				}
				messages = append(messages, toMessage(id, doc))
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return messages, nil
}

// Info verifies member, event and message in that order and returns the
// message with its timestamps rendered as RFC 3339 strings.
func (m MessageRepository) Info(memberID, eventID, messageID string) (instant.Message, error) {
	var doc messageDoc
	err := m.db.View(func(txn *badger.Txn) error {
		if err := requireMember(txn, memberID); err != nil {
			return err
		}
		if _, err := getDoc[eventDoc](txn, eventKey(memberID, eventID), apperrors.ErrEventNotFound); err != nil {
			return err
		}
		var err error
		doc, err = getDoc[messageDoc](txn, messageKey(memberID, eventID, messageID), apperrors.ErrMessageNotFound)
		return err
	})
	if err != nil {
		return instant.Message{}, err
	}
	return toMessage(messageID, doc), nil
}

func toMessage(id string, doc messageDoc) instant.Message {
	var updateAt *string
	if doc.UpdateAt != nil {
		updateAt = lo.ToPtr(doc.UpdateAt.Format(time.RFC3339Nano))
	}
	return instant.Message{
		ID:         id,
		Message:    doc.Message,
		ReplyCount: doc.ReplyCount,
		CreateAt:   doc.CreateAt.Format(time.RFC3339Nano),
		UpdateAt:   updateAt,
		Reply:      doc.Reply,
	}
}
