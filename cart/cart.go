package cart

import (
	"encoding/json"
	"log"
	"sort"
	"sync"
	"time"

	"github.com/jubleh/storefront-core/models"
	"github.com/jubleh/storefront-core/storage"
)

// Store owns the authoritative cart state for one storefront session.
// Every mutation re-serializes the full cart to durable storage under
// a fixed key; an unreadable snapshot at load degrades to an empty
// cart instead of failing the session.
type Store struct {
	mu      sync.RWMutex
	lines   map[string]models.CartLine
	storage storage.CartStorage
	key     string
	now     func() time.Time
}

func NewStore(store storage.CartStorage) *Store {
	return NewStoreWithKey(store, models.CartStorageKey)
}

func NewStoreWithKey(store storage.CartStorage, key string) *Store {
	s := &Store{
		lines:   make(map[string]models.CartLine),
		storage: store,
		key:     key,
		now:     time.Now,
	}
	s.restore()
	return s
}

func (s *Store) restore() {
	data, found, err := s.storage.Load(s.key)
	if err != nil {
		log.Printf("Error loading cart from storage: %v", err)
		return
	}
	if !found {
		return
	}

	var saved []models.CartLine
	if err := json.Unmarshal(data, &saved); err != nil {
		log.Printf("Error parsing saved cart, resetting to empty: %v", err)
		return
	}
	for _, line := range saved {
		if line.ProductID == "" {
			continue
		}
		line.Quantity = clampQuantity(line.Quantity)
		s.lines[line.ProductID] = line
	}
}

// AddItem accumulates quantity for the product, inserting a new line
// on first add. Repeated calls keep growing the quantity until the
// per-line cap.
func (s *Store) AddItem(product models.Product, qty int) {
	if product.ID == "" {
		log.Printf("Invalid product, missing id: %+v", product)
		return
	}
	if qty < 1 {
		qty = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.lines[product.ID]; ok {
		existing.Quantity = clampQuantity(existing.Quantity + qty)
		s.lines[product.ID] = existing
	} else {
		s.lines[product.ID] = models.CartLine{
			ProductID: product.ID,
			Title:     product.Title,
			UnitPrice: product.Price,
			Quantity:  clampQuantity(qty),
			AddedAt:   s.now(),
			ImageRef:  product.FirstImage(),
		}
	}
	s.persist()
}

func (s *Store) RemoveItem(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.lines[productID]; !ok {
		return
	}
	delete(s.lines, productID)
	s.persist()
}

// UpdateQuantity replaces the line's quantity. A quantity below 1
// removes the line.
func (s *Store) UpdateQuantity(productID string, qty int) {
	if qty < 1 {
		s.RemoveItem(productID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	line, ok := s.lines[productID]
	if !ok {
		return
	}
	line.Quantity = clampQuantity(qty)
	s.lines[productID] = line
	s.persist()
}

func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = make(map[string]models.CartLine)
	s.persist()
}

// Snapshot returns an immutable copy of the current lines, ordered by
// the time each product first entered the cart.
func (s *Store) Snapshot() []models.CartLine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

func (s *Store) IsInCart(productID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.lines[productID]
	return ok
}

func (s *Store) ItemQuantity(productID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if line, ok := s.lines[productID]; ok {
		return line.Quantity
	}
	return 0
}

func (s *Store) snapshotLocked() []models.CartLine {
	snapshot := make([]models.CartLine, 0, len(s.lines))
	for _, line := range s.lines {
		snapshot = append(snapshot, line)
	}
	sort.Slice(snapshot, func(i, j int) bool {
		if snapshot[i].AddedAt.Equal(snapshot[j].AddedAt) {
			return snapshot[i].ProductID < snapshot[j].ProductID
		}
		return snapshot[i].AddedAt.Before(snapshot[j].AddedAt)
	})
	return snapshot
}

// persist writes the whole cart; callers must hold the write lock.
func (s *Store) persist() {
	data, err := json.Marshal(s.snapshotLocked())
	if err != nil {
		log.Printf("Error serializing cart: %v", err)
		return
	}
	if err := s.storage.Save(s.key, data); err != nil {
		log.Printf("Error saving cart to storage: %v", err)
	}
}

func clampQuantity(qty int) int {
	if qty < 1 {
		return 1
	}
	if qty > models.MaxLineQuantity {
		return models.MaxLineQuantity
	}
	return qty
}
