package shop

import "sync"

type MemStore struct {
	mu       sync.RWMutex
	products []Product
	items    []Item
	cart     []CartItem
	orders   []Order
}

func NewMemStore() *MemStore {
	return &MemStore{
		products: []Product{
			{ID: 11, Name: "Retinol Serum", Price: 1200, AvailableQty: 50},
			{ID: 12, Name: "Niacinamide Solution", Price: 800, AvailableQty: 30},
			{ID: 14, Name: "Peptide Moisturizer", Price: 1500, AvailableQty: 100},
			{ID: 15, Name: "Glycolic Acid Toner", Price: 900, AvailableQty: 20},
		},
		items: []Item{
			{ID: 1, Price: "$25", Product: "A lightweight serum that deeply hydrates and plumps the skin."},
			{ID: 2, Price: "$30", Product: "Brightens skin tone and reduces the appearance of dark spots."},
		},
		orders: []Order{
			{ID: 1, Product: "Anti-Aging Serum", Quantity: 2},
			{ID: 2, Product: "Vitamin C Moisturizer", Quantity: 1},
			{ID: 3, Product: "Hyaluronic Acid", Quantity: 3},
		},
	}
}

func NewStore() Store {
	return NewMemStore()
}

func (s *MemStore) Products() []Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *MemStore) Items() []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Item, len(s.items))
	copy(out, s.items)
	return out
}

func (s *MemStore) AppendItem(it Item) Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = append(s.items, it)
	return it
}

func (s *MemStore) CartItems() []CartItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]CartItem, len(s.cart))
	copy(out, s.cart)
	return out
}

func (s *MemStore) AppendCartItem(ci CartItem) CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = append(s.cart, ci)
	return ci
}

// FindOrder scans in insertion order; the first id match wins.
func (s *MemStore) FindOrder(id int) (Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return Order{}, false
}
