package store

import (
	"testing"

	"github.com/avc/quickflip-dashboard/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSubscriptionStore(t *testing.T) *SubscriptionStore {
	t.Helper()

	subscription := NewSubscriptionStore(storage.NewMemoryBridge(), true)
	require.NoError(t, subscription.Init())

	return subscription
}

func TestSubscriptionStore_Init(t *testing.T) {
	subscription := newSubscriptionStore(t)

	plans := subscription.Plans()
	require.Len(t, plans, 2)
	assert.Equal(t, "Monthly Plan", plans[0].Name)
	assert.Equal(t, "Yearly Plan", plans[1].Name)

	t.Run("Default current plan references catalog", func(t *testing.T) {
		current := subscription.CurrentPlan()
		require.NotNil(t, current)
		assert.Equal(t, plans[0].ID, current.ID)
	})
}

func TestSubscriptionStore_Subscribe(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		subscription := newSubscriptionStore(t)

		result, err := subscription.SelectPlan(2)
		require.NoError(t, err)
		require.True(t, result.Success)

		result, err = subscription.Subscribe()
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "Successfully subscribed to Yearly Plan!", result.Message)

		current := subscription.CurrentPlan()
		require.NotNil(t, current)
		assert.Equal(t, int64(2), current.ID)
		assert.Nil(t, subscription.SelectedPlan())
	})

	t.Run("No plan selected", func(t *testing.T) {
		subscription := newSubscriptionStore(t)

		result, err := subscription.Subscribe()
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, "No plan selected", result.Message)
	})

	t.Run("Unknown plan", func(t *testing.T) {
		subscription := newSubscriptionStore(t)

		result, err := subscription.SelectPlan(99)
		require.NoError(t, err)
		assert.False(t, result.Success)
		assert.Equal(t, "Plan not found", result.Message)
	})
}

func TestSubscriptionStore_UpgradePlan(t *testing.T) {
	subscription := newSubscriptionStore(t)

	t.Run("Upgrade to pricier plan", func(t *testing.T) {
		result, err := subscription.UpgradePlan(2)
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "Successfully upgraded to Yearly Plan!", result.Message)
	})

	t.Run("Downgrade to cheaper plan", func(t *testing.T) {
		result, err := subscription.UpgradePlan(1)
		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, "Successfully downgraded to Monthly Plan!", result.Message)
	})
}

func TestSubscriptionStore_CancelSubscription(t *testing.T) {
	subscription := newSubscriptionStore(t)

	result, err := subscription.CancelSubscription()
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "Subscription cancelled successfully", result.Message)
	assert.Nil(t, subscription.CurrentPlan())
}
