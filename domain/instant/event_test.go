package instant

import (
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/require"
)

func TestInstantEvent_Expired(t *testing.T) {
	now := time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

	t.Run("no end date never expires", func(t *testing.T) {
		req := require.New(t)
		expired, err := InstantEvent{Title: "open"}.Expired(now)
		req.NoError(err)
		req.False(expired)
	})

	t.Run("strictly before the end date is still open", func(t *testing.T) {
		req := require.New(t)
		event := InstantEvent{Title: "AMA", EndDate: lo.ToPtr("2026-08-29T12:00:01Z")}
		expired, err := event.Expired(now)
		req.NoError(err)
		req.False(expired)
	})

	t.Run("exactly at the end date is expired", func(t *testing.T) {
		req := require.New(t)
		event := InstantEvent{Title: "AMA", EndDate: lo.ToPtr("2026-08-29T12:00:00Z")}
		expired, err := event.Expired(now)
		req.NoError(err)
		req.True(expired)
	})

	t.Run("malformed end date surfaces an error", func(t *testing.T) {
		req := require.New(t)
		event := InstantEvent{Title: "AMA", EndDate: lo.ToPtr("next week")}
		_, err := event.Expired(now)
		req.Error(err)
	})
}
