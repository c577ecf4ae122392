package repositories

import (
	"fmt"
	"log/slog"
	"sync"
	"testing"
	"time"

	"instant-lab/domain/instant"
	apperrors "instant-lab/errors"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

type replyFixture struct {
	events    *EventRepository
	messages  *MessageRepository
	replies   *ReplyRepository
	eventID   string
	messageID string
}

func newReplyFixture(t *testing.T) replyFixture {
	t.Helper()
	req := require.New(t)
	db := openDB(t)
	seedMember(t, db, "m1")

	events := NewEventRepository(db, slog.Default(), DefaultTxnAttempts)
	messages := NewMessageRepository(db, slog.Default(), nil, DefaultTxnAttempts)
	replies := NewReplyRepository(db, slog.Default(), nil, DefaultTxnAttempts)

	eventID, err := events.Create("m1", instant.EventDraft{Title: "AMA"})
	req.NoError(err)
	messageID, err := messages.Post("m1", eventID, "how does it work?")
	req.NoError(err)

	return replyFixture{events, messages, replies, eventID, messageID}
}

func newReply(body string) instant.Reply {
	return instant.Reply{
		Reply:    body,
		CreateAt: time.Now().UTC().Format(time.RFC3339),
	}
}

func Test_Replies_Are_Prepended(t *testing.T) {
	req := require.New(t)
	f := newReplyFixture(t)

	for _, body := range []string{"r1", "r2", "r3"} {
		req.NoError(f.replies.Post("m1", f.eventID, f.messageID, newReply(body)))
	}

	msg, err := f.messages.Info("m1", f.eventID, f.messageID)
	req.NoError(err)

	bodies := lo.Map(msg.Reply, func(r instant.Reply, _ int) string { return r.Reply })
	req.Equal([]string{"r3", "r2", "r1"}, bodies)
	req.Equal(3, msg.ReplyCount)
}

func Test_Reply_Refreshes_UpdateAt_Monotonically(t *testing.T) {
	req := require.New(t)
	f := newReplyFixture(t)

	req.NoError(f.replies.Post("m1", f.eventID, f.messageID, newReply("first")))
	first, err := f.messages.Info("m1", f.eventID, f.messageID)
	req.NoError(err)
	req.NotNil(first.UpdateAt)

	req.NoError(f.replies.Post("m1", f.eventID, f.messageID, newReply("second")))
	second, err := f.messages.Info("m1", f.eventID, f.messageID)
	req.NoError(err)
	req.NotNil(second.UpdateAt)

	t1, err := time.Parse(time.RFC3339Nano, *first.UpdateAt)
	req.NoError(err)
	t2, err := time.Parse(time.RFC3339Nano, *second.UpdateAt)
	req.NoError(err)
	req.False(t2.Before(t1))

	// CreateAt never moves.
	req.Equal(first.CreateAt, second.CreateAt)
}

func Test_Reply_Carries_Optional_Author(t *testing.T) {
	req := require.New(t)
	f := newReplyFixture(t)

	withAuthor := newReply("signed")
	withAuthor.Author = &instant.Author{DisplayName: "Hana", PhotoURL: lo.ToPtr("https://example.test/hana.png")}
	req.NoError(f.replies.Post("m1", f.eventID, f.messageID, withAuthor))
	req.NoError(f.replies.Post("m1", f.eventID, f.messageID, newReply("anonymous")))

	msg, err := f.messages.Info("m1", f.eventID, f.messageID)
	req.NoError(err)
	req.Len(msg.Reply, 2)
	req.Nil(msg.Reply[0].Author)
	req.NotNil(msg.Reply[1].Author)
	req.Equal("Hana", msg.Reply[1].Author.DisplayName)
}

func Test_Reply_Checks_Chain_In_Order(t *testing.T) {
	f := newReplyFixture(t)

	cases := []struct {
		name      string
		member    string
		event     string
		message   string
		wantError error
	}{
		{"unknown member first", "ghost", f.eventID, f.messageID, apperrors.ErrMemberNotFound},
		{"unknown event second", "m1", "nope", f.messageID, apperrors.ErrEventNotFound},
		{"unknown message last", "m1", f.eventID, "nope", apperrors.ErrMessageNotFound},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := f.replies.Post(tc.member, tc.event, tc.message, newReply("hi"))
			require.ErrorIs(t, err, tc.wantError)
		})
	}
}

func Test_Concurrent_Replies_None_Lost(t *testing.T) {
	req := require.New(t)
	f := newReplyFixture(t)

	const writers = 8
	var wg sync.WaitGroup
	errs := make([]error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			errs[n] = f.replies.Post("m1", f.eventID, f.messageID, newReply(fmt.Sprintf("reply-%d", n)))
		}(i)
	}
	wg.Wait()

	var landed int
	for _, err := range errs {
		if err == nil {
			landed++
		} else {
			// Under heavy contention a transaction may exhaust its retries.
			req.ErrorIs(err, apperrors.ErrUnavailable)
		}
	}

	msg, err := f.messages.Info("m1", f.eventID, f.messageID)
	req.NoError(err)
	req.Len(msg.Reply, landed)
	req.Equal(landed, msg.ReplyCount)
}
