package modal

import (
	"context"
	"testing"
	"time"

	"github.com/avc/quickflip-dashboard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func waitVisible(t *testing.T, c *Coordinator) domain.ModalState {
	t.Helper()

	require.Eventually(t, func() bool {
		return c.Current().Visible
	}, time.Second, 5*time.Millisecond)

	return c.Current()
}

func TestCoordinator_Confirm(t *testing.T) {
	t.Run("User confirms", func(t *testing.T) {
		c := NewCoordinator(zap.NewNop())
		answer := make(chan bool, 1)

		go func() {
			confirmed, err := c.Confirm(context.Background(), "Logout", "Are you sure you want to logout?")
			assert.NoError(t, err)
			answer <- confirmed
		}()

		state := waitVisible(t, c)
		assert.Equal(t, domain.ModalKindConfirm, state.Kind)
		assert.Equal(t, "Logout", state.Title)

		require.NoError(t, c.Resolve(state.ID, true))
		assert.True(t, <-answer)
		assert.False(t, c.Current().Visible)
	})

	t.Run("User dismisses", func(t *testing.T) {
		c := NewCoordinator(zap.NewNop())
		answer := make(chan bool, 1)

		go func() {
			confirmed, err := c.Confirm(context.Background(), "Cancel plan", "Cancel subscription?")
			assert.NoError(t, err)
			answer <- confirmed
		}()

		state := waitVisible(t, c)
		require.NoError(t, c.Resolve(state.ID, false))
		assert.False(t, <-answer)
	})

	t.Run("Resolves exactly once", func(t *testing.T) {
		c := NewCoordinator(zap.NewNop())

		go func() {
			_, _ = c.Confirm(context.Background(), "Once", "once")
		}()

		state := waitVisible(t, c)
		require.NoError(t, c.Resolve(state.ID, true))
		assert.ErrorIs(t, c.Resolve(state.ID, true), domain.ErrModalNotPending)
	})

	t.Run("Context cancellation abandons request", func(t *testing.T) {
		c := NewCoordinator(zap.NewNop())
		ctx, cancel := context.WithCancel(context.Background())
		done := make(chan error, 1)

		go func() {
			_, err := c.Confirm(ctx, "Stale", "never answered")
			done <- err
		}()

		waitVisible(t, c)
		cancel()

		err := <-done
		assert.ErrorIs(t, err, context.Canceled)

		require.Eventually(t, func() bool {
			return !c.Current().Visible
		}, time.Second, 5*time.Millisecond)
	})
}

func TestCoordinator_Alert(t *testing.T) {
	c := NewCoordinator(zap.NewNop())
	done := make(chan error, 1)

	go func() {
		done <- c.Alert(context.Background(), "Saved", "Profile saved successfully!")
	}()

	state := waitVisible(t, c)
	assert.Equal(t, domain.ModalKindAlert, state.Kind)

	require.NoError(t, c.Resolve(state.ID, true))
	require.NoError(t, <-done)
}

func TestCoordinator_Queueing(t *testing.T) {
	c := NewCoordinator(zap.NewNop())
	first := make(chan bool, 1)
	second := make(chan bool, 1)

	go func() {
		confirmed, err := c.Confirm(context.Background(), "First", "first request")
		assert.NoError(t, err)
		first <- confirmed
	}()

	firstState := waitVisible(t, c)
	require.Equal(t, "First", firstState.Title)

	go func() {
		confirmed, err := c.Confirm(context.Background(), "Second", "second request")
		assert.NoError(t, err)
		second <- confirmed
	}()

	// Второй запрос не вытесняет первый
	assert.Equal(t, firstState.ID, c.Current().ID)

	t.Run("Stale id rejected while another request is visible", func(t *testing.T) {
		assert.ErrorIs(t, c.Resolve("bogus", true), domain.ErrModalNotPending)
	})

	require.NoError(t, c.Resolve(firstState.ID, true))
	assert.True(t, <-first)

	secondState := waitVisible(t, c)
	require.Equal(t, "Second", secondState.Title)
	require.NoError(t, c.Resolve(secondState.ID, false))
	assert.False(t, <-second)
	assert.False(t, c.Current().Visible)
}
