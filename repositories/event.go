//go:generate go run go.uber.org/mock/mockgen -source=event.go -destination=../mocks/mock_event_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"strings"

	"instant-lab/domain/instant"
	apperrors "instant-lab/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

type IEventRepository interface {
	Create(memberID string, draft instant.EventDraft) (string, error)
	Get(memberID, eventID string) (instant.InstantEvent, error)
	List(memberID string) ([]instant.InstantEvent, error)
}

// EventRepository owns creation and retrieval of instant events under a
// member. Closing is not exposed here: an event is closed lazily by the
// message repository as a side effect of a post attempt past the end date.
type EventRepository struct {
	db          *badger.DB
	log         *slog.Logger
	maxAttempts int
}

func NewEventRepository(db *badger.DB, log *slog.Logger, maxAttempts int) *EventRepository {
	return &EventRepository{db: db, log: log, maxAttempts: maxAttempts}
}

// eventDoc is the persisted shape. Optional fields are pointers with
// omitempty so an unsupplied field is absent from the document, never
// stored as an empty value.
type eventDoc struct {
	Title     string  `json:"title"`
	Desc      *string `json:"desc,omitempty"`
	StartDate *string `json:"startDate,omitempty"`
	EndDate   *string `json:"endDate,omitempty"`
	Closed    bool    `json:"closed"`
}

// Create writes a new event document with closed=false and returns its
// store-assigned id. The member-existence check and the write share one
// transaction so a racing member deletion cannot leave an orphaned event.
func (e EventRepository) Create(memberID string, draft instant.EventDraft) (string, error) {
	newID := uuid.New().String()
	doc := eventDoc{
		Title:     draft.Title,
		Desc:      draft.Desc,
		StartDate: draft.StartDate,
		EndDate:   draft.EndDate,
	}
	err := RunTransaction(e.db, e.maxAttempts, func(txn *badger.Txn) error {
		if err := requireMember(txn, memberID); err != nil {
			return err
		}
		return setDoc(txn, eventKey(memberID, newID), doc)
	})
	if err != nil {
		return "", err
	}
	e.log.Debug("instant event created", "member", memberID, "event", newID)
	return newID, nil
}

// Get reads member and event in one snapshot and returns the event payload
// merged with its id.
func (e EventRepository) Get(memberID, eventID string) (instant.InstantEvent, error) {
	var doc eventDoc
	err := e.db.View(func(txn *badger.Txn) error {
		if err := requireMember(txn, memberID); err != nil {
			return err
		}
		var err error
		doc, err = getDoc[eventDoc](txn, eventKey(memberID, eventID), apperrors.ErrEventNotFound)
		return err
	})
	if err != nil {
		return instant.InstantEvent{}, err
	}
	return toInstantEvent(eventID, doc), nil
}

// List returns all events under a member, in store key order.
func (e EventRepository) List(memberID string) ([]instant.InstantEvent, error) {
	var events []instant.InstantEvent
	err := e.db.View(func(txn *badger.Txn) error {
		if err := requireMember(txn, memberID); err != nil {
			return err
		}
		prefix := eventPrefix(memberID)
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			id := strings.TrimPrefix(string(item.Key()), string(prefix))
			err := item.Value(func(val []byte) error {
				doc, err := decodeDoc[eventDoc](val)
				if err != nil {
					return fmt.Errorf("decoding event %s: %w", id, err)
				}
				events = append(events, toInstantEvent(id, doc))
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
	return events, nil
}

func toInstantEvent(id string, doc eventDoc) instant.InstantEvent {
	return instant.InstantEvent{
		ID:        id,
		Title:     doc.Title,
		Desc:      doc.Desc,
		StartDate: doc.StartDate,
		EndDate:   doc.EndDate,
		Closed:    doc.Closed,
	}
}
