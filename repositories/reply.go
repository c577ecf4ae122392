//go:generate go run go.uber.org/mock/mockgen -source=reply.go -destination=../mocks/mock_reply_repository.go -package=mocks
package repositories

import (
	"log/slog"
	"time"

	"instant-lab/domain/instant"
	apperrors "instant-lab/errors"

	"github.com/dgraph-io/badger/v4"
	"github.com/samber/lo"
)

type IReplyRepository interface {
	Post(memberID, eventID, messageID string, reply instant.Reply) error
}

// ReplyRepository appends threaded replies to a message. The reply list is
// maintained newest first, so a reply is prepended, never appended.
type ReplyRepository struct {
	db          *badger.DB
	log         *slog.Logger
	now         func() time.Time
	maxAttempts int
}

func NewReplyRepository(db *badger.DB, log *slog.Logger, now func() time.Time, maxAttempts int) *ReplyRepository {
	if now == nil {
		now = func() time.Time { return time.Now().UTC() }
	}
	return &ReplyRepository{db: db, log: log, now: now, maxAttempts: maxAttempts}
}

// Post runs one transaction: member, event and message checks in order,
// then a read-modify-write of the whole embedded reply list. The reply's
// CreateAt comes from the caller; UpdateAt and the replyCount increment are
// applied here, in the same transaction. Two concurrent replies to one
// message conflict on the message key; the loser is re-applied against the
// latest list, so neither reply is lost.
func (r ReplyRepository) Post(memberID, eventID, messageID string, reply instant.Reply) error {
	return RunTransaction(r.db, r.maxAttempts, func(txn *badger.Txn) error {
		if err := requireMember(txn, memberID); err != nil {
			return err
		}
		if _, err := getDoc[eventDoc](txn, eventKey(memberID, eventID), apperrors.ErrEventNotFound); err != nil {
			return err
		}
		key := messageKey(memberID, eventID, messageID)
		doc, err := getDoc[messageDoc](txn, key, apperrors.ErrMessageNotFound)
		if err != nil {
			return err
		}
		doc.Reply = append([]instant.Reply{reply}, doc.Reply...)
		doc.ReplyCount++
		doc.UpdateAt = lo.ToPtr(r.now())
		return setDoc(txn, key, doc)
	})
}
