package cart

import (
	"sync"

	"github.com/qin-coder/ecommerce-multivendor/models"
)

// memStore is an in-memory Store for the engine tests. WithinTx serializes
// mutating units with its own mutex, mirroring the cart row lock the gorm
// store takes, so concurrent engine calls behave like they do against the
// real database.
type memStore struct {
	txMu sync.Mutex
	mu   sync.Mutex

	carts    map[uint]models.Cart
	items    map[uint]models.CartItem
	products map[uint]models.Product

	nextCartID uint
	nextItemID uint
}

func newMemStore() *memStore {
	return &memStore{
		carts:    make(map[uint]models.Cart),
		items:    make(map[uint]models.CartItem),
		products: make(map[uint]models.Product),
	}
}

func (s *memStore) addProduct(p models.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID] = p
}

func (s *memStore) WithinTx(fn func(Store) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()
	return fn(s)
}

func (s *memStore) CartByUser(userID uint) (*models.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, cart := range s.carts {
		if cart.UserID == userID {
			c := cart
			return &c, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memStore) SaveCart(cart *models.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if cart.ID == 0 {
		s.nextCartID++
		cart.ID = s.nextCartID
	}
	s.carts[cart.ID] = *cart
	return nil
}

func (s *memStore) ItemByID(id uint) (*models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &item, nil
}

func (s *memStore) ItemsByCart(cartID uint) ([]models.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var items []models.CartItem
	for _, item := range s.items {
		if item.CartID == cartID {
			items = append(items, item)
		}
	}
	return items, nil
}

func (s *memStore) SaveItem(item *models.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if item.ID == 0 {
		s.nextItemID++
		item.ID = s.nextItemID
	}
	s.items[item.ID] = *item
	return nil
}

func (s *memStore) DeleteItem(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, id)
	return nil
}

func (s *memStore) ProductByID(id uint) (*models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	product, ok := s.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &product, nil
}
