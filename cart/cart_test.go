package cart

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Pluviophile2607/aizboostr-new/pricing"
)

func growthPlan() Item {
	return Item{
		ID:           "growth-plan-5000",
		Type:         "fixed",
		Name:         "Growth Plan (5,000 Views)",
		Price:        5000,
		BillingCycle: "month",
		Features:     []string{"5,000 Views"},
	}
}

func TestAddIsIdempotentOnID(t *testing.T) {
	store := NewStore(NewMemoryStorage())

	store.Add(growthPlan())
	store.Add(growthPlan())

	assert.Equal(t, 1, store.Len())
	assert.Equal(t, 5000.0, store.Total())
}

func TestRemove(t *testing.T) {
	store := NewStore(NewMemoryStorage())
	store.Add(growthPlan())

	store.Remove("growth-plan-5000")
	assert.Equal(t, 0, store.Len())

	// Removing an absent id is a no-op.
	store.Remove("growth-plan-5000")
	assert.Equal(t, 0, store.Len())
}

func TestClearAndTotal(t *testing.T) {
	store := NewStore(NewMemoryStorage())
	store.Add(growthPlan())
	store.Add(Item{ID: "starter-1000", Type: "fixed", Name: "Starter", Price: 1000, BillingCycle: "month"})

	assert.Equal(t, 6000.0, store.Total())

	store.Clear()
	assert.Equal(t, 0, store.Len())
	assert.Equal(t, 0.0, store.Total())
}

func TestPersistenceRoundTrip(t *testing.T) {
	storage := NewMemoryStorage()

	first := NewStore(storage)
	first.Add(growthPlan())

	// A new store over the same storage sees the saved cart,
	// item contents included.
	second := NewStore(storage)
	items := second.Items()
	require.Len(t, items, 1)
	assert.Equal(t, growthPlan(), items[0])
	assert.True(t, second.Contains("growth-plan-5000"))
}

func TestFileStorage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cart.json")
	storage := NewFileStorage(path)

	// Missing file loads as an empty cart.
	items, err := storage.Load()
	require.NoError(t, err)
	assert.Empty(t, items)

	store := NewStore(storage)
	store.Add(growthPlan())

	reloaded := NewStore(NewFileStorage(path))
	assert.Equal(t, 1, reloaded.Len())
	assert.Equal(t, 5000.0, reloaded.Total())
}

func TestReplaceSwapsAddOnID(t *testing.T) {
	store := NewStore(NewMemoryStorage())
	store.Add(growthPlan())

	withAddOn := growthPlan()
	withAddOn.ID = "growth-plan-5000-addon"
	withAddOn.Price = growthPlan().Price + pricing.AddOnPrice

	store.Replace("growth-plan-5000", withAddOn)

	// The stale id must not linger after the toggle.
	assert.False(t, store.Contains("growth-plan-5000"))
	assert.True(t, store.Contains("growth-plan-5000-addon"))
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, 7500.0, store.Total())
}
