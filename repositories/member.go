package repositories

import (
	"errors"
	"log/slog"

	"instant-lab/domain/instant"
	apperrors "instant-lab/errors"

	"github.com/dgraph-io/badger/v4"
)

type IMemberRepository interface {
	Seed(member instant.Member) error
	Exists(uid string) (bool, error)
}

// MemberRepository only observes members. Seed is an administrative fixture
// path (tests, local tooling); the event core itself never creates members,
// it only checks their existence at the head of every transaction.
type MemberRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMemberRepository(db *badger.DB, log *slog.Logger) *MemberRepository {
	return &MemberRepository{db: db, log: log}
}

type memberDoc struct {
	DisplayName *string `json:"displayName,omitempty"`
	PhotoURL    *string `json:"photoURL,omitempty"`
}

func (m MemberRepository) Seed(member instant.Member) error {
	doc := memberDoc{
		DisplayName: member.DisplayName,
		PhotoURL:    member.PhotoURL,
	}
	return m.db.Update(func(txn *badger.Txn) error {
		return setDoc(txn, memberKey(member.UID), doc)
	})
}

func (m MemberRepository) Exists(uid string) (bool, error) {
	err := m.db.View(func(txn *badger.Txn) error {
		return requireMember(txn, uid)
	})
	if errors.Is(err, apperrors.ErrMemberNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
