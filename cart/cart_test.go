package cart

import (
	"testing"

	"github.com/jubleh/storefront-core/models"
	"github.com/jubleh/storefront-core/storage"
	"github.com/stretchr/testify/require"
)

func product(id string, price int64) models.Product {
	return models.Product{ID: id, Title: "Product " + id, Price: price, Stock: 100}
}

func TestAddItem_NewLine(t *testing.T) {
	store := NewStore(storage.NewMemoryStorage())

	store.AddItem(product("p1", 6000), 2)

	lines := store.Snapshot()
	require.Len(t, lines, 1)
	require.Equal(t, "p1", lines[0].ProductID)
	require.Equal(t, 2, lines[0].Quantity)
	require.Equal(t, int64(6000), lines[0].UnitPrice)
	require.False(t, lines[0].AddedAt.IsZero())
}

func TestAddItem_AccumulatesAndCaps(t *testing.T) {
	store := NewStore(storage.NewMemoryStorage())

	store.AddItem(product("p1", 100), 50)
	store.AddItem(product("p1", 100), 60)

	lines := store.Snapshot()
	require.Len(t, lines, 1, "same product must stay on one line")
	require.Equal(t, models.MaxLineQuantity, lines[0].Quantity, "quantity caps at 99, not 110")
}

func TestAddItem_MissingProductID(t *testing.T) {
	store := NewStore(storage.NewMemoryStorage())

	store.AddItem(models.Product{Title: "no id"}, 1)

	require.Empty(t, store.Snapshot())
}

func TestRemoveItem_AbsentIsNoOp(t *testing.T) {
	store := NewStore(storage.NewMemoryStorage())
	store.AddItem(product("p1", 100), 1)

	store.RemoveItem("does-not-exist")

	require.Len(t, store.Snapshot(), 1)
}

func TestUpdateQuantity(t *testing.T) {
	store := NewStore(storage.NewMemoryStorage())
	store.AddItem(product("p1", 100), 5)

	store.UpdateQuantity("p1", 7)
	require.Equal(t, 7, store.ItemQuantity("p1"))

	store.UpdateQuantity("p1", 500)
	require.Equal(t, models.MaxLineQuantity, store.ItemQuantity("p1"))

	store.UpdateQuantity("p1", 0)
	require.False(t, store.IsInCart("p1"), "quantity below 1 removes the line")
}

func TestInvariants_UnderMutationSequences(t *testing.T) {
	store := NewStore(storage.NewMemoryStorage())

	ops := []func(){
		func() { store.AddItem(product("a", 10), 3) },
		func() { store.AddItem(product("b", 20), 98) },
		func() { store.AddItem(product("a", 10), 97) },
		func() { store.UpdateQuantity("b", 120) },
		func() { store.UpdateQuantity("c", 4) },
		func() { store.RemoveItem("missing") },
		func() { store.AddItem(product("c", 30), 1) },
		func() { store.UpdateQuantity("a", -3) },
		func() { store.AddItem(product("a", 10), 2) },
	}

	for _, op := range ops {
		op()

		seen := make(map[string]bool)
		for _, line := range store.Snapshot() {
			require.False(t, seen[line.ProductID], "duplicate line for %s", line.ProductID)
			seen[line.ProductID] = true
			require.GreaterOrEqual(t, line.Quantity, 1)
			require.LessOrEqual(t, line.Quantity, models.MaxLineQuantity)
		}
	}
}

func TestPersistence_RoundTrip(t *testing.T) {
	mem := storage.NewMemoryStorage()

	first := NewStore(mem)
	first.AddItem(product("p1", 6000), 1)
	first.AddItem(product("p2", 150), 3)

	restored := NewStore(mem)
	lines := restored.Snapshot()
	require.Len(t, lines, 2)
	require.Equal(t, 1, restored.ItemQuantity("p1"))
	require.Equal(t, 3, restored.ItemQuantity("p2"))
}

func TestPersistence_CorruptedSnapshotDegradesToEmpty(t *testing.T) {
	mem := storage.NewMemoryStorage()
	require.NoError(t, mem.Save(models.CartStorageKey, []byte("{not json")))

	store := NewStore(mem)

	require.Empty(t, store.Snapshot())

	// The store must stay usable after recovery.
	store.AddItem(product("p1", 100), 1)
	require.Equal(t, 1, store.ItemQuantity("p1"))
}

func TestClear_PersistsEmptyCart(t *testing.T) {
	mem := storage.NewMemoryStorage()

	store := NewStore(mem)
	store.AddItem(product("p1", 100), 2)
	store.Clear()

	require.Empty(t, store.Snapshot())
	require.Empty(t, NewStore(mem).Snapshot())
}

func TestSnapshot_IsACopy(t *testing.T) {
	store := NewStore(storage.NewMemoryStorage())
	store.AddItem(product("p1", 100), 2)

	lines := store.Snapshot()
	lines[0].Quantity = 42

	require.Equal(t, 2, store.ItemQuantity("p1"))
}
