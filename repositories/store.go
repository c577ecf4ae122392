package repositories

import (
	"encoding/json"
	"errors"
	"fmt"

	apperrors "instant-lab/errors"

	"github.com/dgraph-io/badger/v4"
)

// DefaultTxnAttempts bounds how many times a conflicting transaction is
// re-run before the operation surfaces ErrUnavailable.
const DefaultTxnAttempts = 3

// Key layout. The Firestore-style document tree
// members/{uid}/instants/{eventId}/messages/{messageId} is flattened to
// prefixed keys so that one event's messages form a contiguous key range.
func memberKey(uid string) []byte {
	return []byte("member:" + uid)
}

func eventKey(uid, eventID string) []byte {
	return []byte(fmt.Sprintf("event:%s:%s", uid, eventID))
}

func eventPrefix(uid string) []byte {
	return []byte(fmt.Sprintf("event:%s:", uid))
}

func messageKey(uid, eventID, messageID string) []byte {
	return []byte(fmt.Sprintf("msg:%s:%s:%s", uid, eventID, messageID))
}

func messagePrefix(uid, eventID string) []byte {
	return []byte(fmt.Sprintf("msg:%s:%s:", uid, eventID))
}

// RunTransaction executes fn inside a read-write Badger transaction.
// Badger aborts a commit with ErrConflict when a key read by fn was written
// by a concurrently committed transaction; in that case fn is re-run against
// a fresh snapshot, up to maxAttempts times. Bodies must therefore be free
// of side effects outside the transaction's own reads and writes.
// Any other error returned by fn aborts the transaction before any write
// is committed.
func RunTransaction(db *badger.DB, maxAttempts int, fn func(txn *badger.Txn) error) error {
	if maxAttempts < 1 {
		maxAttempts = 1
	}
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = db.Update(fn)
		if !errors.Is(err, badger.ErrConflict) {
			return err
		}
	}
	return fmt.Errorf("%w: transaction aborted after %d attempts: %v", apperrors.ErrUnavailable, maxAttempts, err)
}

// getDoc reads and decodes a JSON document, mapping a missing key to the
// given sentinel so each link of the member -> event -> message chain fails
// with its own target.
func getDoc[T any](txn *badger.Txn, key []byte, notFound error) (T, error) {
	var doc T
	item, err := txn.Get(key)
	if errors.Is(err, badger.ErrKeyNotFound) {
		return doc, notFound
	}
	if err != nil {
		return doc, err
	}
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &doc)
	})
	return doc, err
}

func decodeDoc[T any](val []byte) (T, error) {
	var doc T
	err := json.Unmarshal(val, &doc)
	return doc, err
}

func setDoc[T any](txn *badger.Txn, key []byte, doc T) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return txn.Set(key, data)
}

// requireMember verifies the member exists inside the current transaction.
// Every operation checks this link first; the check order is part of the
// observable contract.
func requireMember(txn *badger.Txn, uid string) error {
	_, err := txn.Get(memberKey(uid))
	if errors.Is(err, badger.ErrKeyNotFound) {
		return apperrors.ErrMemberNotFound
	}
	return err
}
