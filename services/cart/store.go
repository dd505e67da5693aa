package cart

import "github.com/qin-coder/ecommerce-multivendor/models"

// Store is the persistence contract the engine runs against. WithinTx executes
// fn as one atomic unit: either every write inside fn becomes visible together
// or none of it does, and two units for the same cart never interleave.
// Implementations return ErrNotFound for missing rows.
type Store interface {
	WithinTx(fn func(Store) error) error

	CartByUser(userID uint) (*models.Cart, error)
	SaveCart(cart *models.Cart) error

	ItemByID(id uint) (*models.CartItem, error)
	ItemsByCart(cartID uint) ([]models.CartItem, error)
	SaveItem(item *models.CartItem) error
	DeleteItem(id uint) error

	ProductByID(id uint) (*models.Product, error)
}
