package store

import (
	"testing"

	"github.com/avc/quickflip-dashboard/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNotificationStore(t *testing.T, seed bool) *NotificationStore {
	t.Helper()

	notifications := NewNotificationStore(storage.NewMemoryBridge(), seed)
	require.NoError(t, notifications.Init())

	return notifications
}

func TestNotificationStore_Init(t *testing.T) {
	notifications := newNotificationStore(t, true)

	list := notifications.List()
	require.Len(t, list, 5)
	assert.Equal(t, "New Invoice Received", list[0].Title)
	assert.Equal(t, 3, notifications.UnreadCount())
}

func TestNotificationStore_UnreadCount(t *testing.T) {
	notifications := newNotificationStore(t, false)
	assert.Equal(t, 0, notifications.UnreadCount())

	t.Run("Add on empty list", func(t *testing.T) {
		added, err := notifications.Add("New Invoice", "GHI Ltd sent invoice INV-2024-010", "invoice")
		require.NoError(t, err)
		assert.NotEmpty(t, added.ID)
		assert.False(t, added.Read)
		assert.Equal(t, 1, notifications.UnreadCount())
	})

	t.Run("Newest first", func(t *testing.T) {
		_, err := notifications.Add("Second", "another one", "invoice")
		require.NoError(t, err)

		list := notifications.List()
		require.Len(t, list, 2)
		assert.Equal(t, "Second", list[0].Title)
	})

	t.Run("Mark all as read", func(t *testing.T) {
		result, err := notifications.MarkAllRead()
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "All notifications marked as read", result.Message)
		assert.Equal(t, 0, notifications.UnreadCount())
	})
}

func TestNotificationStore_MarkRead(t *testing.T) {
	notifications := newNotificationStore(t, false)

	added, err := notifications.Add("Payment Processed", "payment complete", "payment")
	require.NoError(t, err)

	t.Run("Success", func(t *testing.T) {
		result, err := notifications.MarkRead(added.ID)
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, 0, notifications.UnreadCount())
	})

	t.Run("Unknown notification", func(t *testing.T) {
		result, err := notifications.MarkRead("missing")
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, "Notification not found", result.Message)
	})
}
