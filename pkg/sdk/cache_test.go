package sdk

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPage(ids ...string) UsersPage {
	items := make([]User, len(ids))
	for i, id := range ids {
		items[i] = User{
			ID:     id,
			Status: StatusActive,
			Groups: []Group{{ID: "g1", Name: "Engineering"}},
		}
	}
	return UsersPage{Items: items}
}

func TestCacheGetFreshAndStale(t *testing.T) {
	c := newQueryCache(50 * time.Millisecond)
	gen := c.currentGeneration()

	require.True(t, c.set("k", testPage("u1"), gen))

	page, ok, stale := c.get("k")
	require.True(t, ok)
	assert.False(t, stale)
	assert.Len(t, page.Items, 1)

	time.Sleep(60 * time.Millisecond)

	_, ok, stale = c.get("k")
	require.True(t, ok)
	assert.True(t, stale, "entry past TTL must be stale")
}

func TestCacheMiss(t *testing.T) {
	c := newQueryCache(time.Minute)

	_, ok, _ := c.get("absent")
	assert.False(t, ok)
}

func TestCacheSetDiscardsSupersededGeneration(t *testing.T) {
	c := newQueryCache(time.Minute)

	gen := c.currentGeneration()
	c.beginMutation("u1", StatusInactive)

	assert.False(t, c.set("k", testPage("u1"), gen), "stale-generation set must be discarded")
	_, ok, _ := c.get("k")
	assert.False(t, ok)
}

func TestCacheMutationSupersedesEarlierFetch(t *testing.T) {
	c := newQueryCache(time.Minute)
	require.True(t, c.set("k", testPage("u1"), c.currentGeneration()))

	// A refetch starts, records the generation, and is still in flight
	// when a mutation lands.
	fetchGen := c.currentGeneration()
	c.beginMutation("u1", StatusInactive)

	// The refetch completes with pre-mutation data; it must be rejected,
	// leaving the optimistic write intact.
	stored := c.set("k", testPage("u1"), fetchGen)
	assert.False(t, stored, "pre-mutation fetch result must be discarded")

	page, ok, _ := c.get("k")
	require.True(t, ok)
	assert.Equal(t, StatusInactive, page.Items[0].Status,
		"optimistic write survives the late fetch")
}

func TestCacheGetReturnsCopies(t *testing.T) {
	c := newQueryCache(time.Minute)
	require.True(t, c.set("k", testPage("u1"), c.currentGeneration()))

	page, _, _ := c.get("k")
	page.Items[0].Status = StatusInactive
	page.Items[0].Groups[0].Name = "Mutated"

	again, _, _ := c.get("k")
	assert.Equal(t, StatusActive, again.Items[0].Status)
	assert.Equal(t, "Engineering", again.Items[0].Groups[0].Name)
}

func TestCacheOptimisticApplyAndRestore(t *testing.T) {
	c := newQueryCache(time.Minute)
	gen := c.currentGeneration()
	require.True(t, c.set("all", testPage("u1", "u2"), gen))
	require.True(t, c.set("active", testPage("u1"), gen))
	require.True(t, c.set("other", testPage("u9"), gen))

	snapshot := c.beginMutation("u1", StatusInactive)
	assert.Len(t, snapshot, 2, "u1 appears in two pages")

	page, _, _ := c.get("all")
	assert.Equal(t, StatusInactive, page.Items[0].Status)
	assert.Equal(t, StatusActive, page.Items[1].Status, "other users untouched")

	c.restore(snapshot)

	page, _, _ = c.get("all")
	assert.Equal(t, StatusActive, page.Items[0].Status, "restore puts the old value back")
	other, _, _ := c.get("other")
	assert.Equal(t, "u9", other.Items[0].ID, "unrelated pages survive the restore")
}

func TestCacheSnapshotIsImmune(t *testing.T) {
	c := newQueryCache(time.Minute)
	require.True(t, c.set("k", testPage("u1"), c.currentGeneration()))

	snapshot := c.beginMutation("u1", StatusInactive)

	assert.Equal(t, StatusActive, snapshot["k"].Items[0].Status,
		"the snapshot holds pre-mutation state")
	page, _, _ := c.get("k")
	assert.Equal(t, StatusInactive, page.Items[0].Status)
}

func TestCacheSingleRevalidationPerKey(t *testing.T) {
	c := newQueryCache(time.Minute)

	require.True(t, c.tryBeginRevalidate("k"))
	assert.False(t, c.tryBeginRevalidate("k"), "second claim while one is in flight")
	assert.True(t, c.tryBeginRevalidate("other"), "keys are independent")

	c.endRevalidate("k")
	assert.True(t, c.tryBeginRevalidate("k"), "slot frees after completion")
}

func TestCacheInvalidateAll(t *testing.T) {
	c := newQueryCache(time.Minute)
	require.True(t, c.set("k", testPage("u1"), c.currentGeneration()))

	c.invalidateAll()

	page, ok, stale := c.get("k")
	require.True(t, ok, "invalidation keeps the data for stale serving")
	assert.True(t, stale)
	assert.Len(t, page.Items, 1)
}
