package cart

import (
	"errors"

	"github.com/qin-coder/ecommerce-multivendor/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore runs the engine against a gorm-managed database. Inside WithinTx
// the cart row is read FOR UPDATE, so two concurrent requests from the same
// user (a double-click add) serialize instead of duplicating line items.
type GormStore struct {
	db   *gorm.DB
	inTx bool
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) WithinTx(fn func(Store) error) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		return fn(&GormStore{db: tx, inTx: true})
	})
}

func (s *GormStore) CartByUser(userID uint) (*models.Cart, error) {
	q := s.db
	if s.inTx {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	var cart models.Cart
	if err := q.Where("user_id = ?", userID).First(&cart).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &cart, nil
}

func (s *GormStore) SaveCart(cart *models.Cart) error {
	return s.db.Save(cart).Error
}

func (s *GormStore) ItemByID(id uint) (*models.CartItem, error) {
	var item models.CartItem
	if err := s.db.First(&item, id).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &item, nil
}

func (s *GormStore) ItemsByCart(cartID uint) ([]models.CartItem, error) {
	var items []models.CartItem
	if err := s.db.Where("cart_id = ?", cartID).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *GormStore) SaveItem(item *models.CartItem) error {
	return s.db.Save(item).Error
}

func (s *GormStore) DeleteItem(id uint) error {
	return s.db.Delete(&models.CartItem{}, id).Error
}

func (s *GormStore) ProductByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		return nil, mapNotFound(err)
	}
	return &product, nil
}

func mapNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
