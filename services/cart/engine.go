package cart

import (
	"errors"

	"github.com/qin-coder/ecommerce-multivendor/models"
)

// Engine owns the lifecycle of carts and their line items. Every operation
// takes the resolved user id explicitly; nothing here reads ambient request
// state. Mutations run as one atomic unit against the store: read the current
// item set, decide, write, recompute totals.
type Engine struct {
	store Store
}

func NewEngine(store Store) *Engine {
	return &Engine{store: store}
}

// GetOrCreateCart returns the user's cart, creating an empty one on first use.
// A cart row is never deleted afterwards; it only empties out.
func (e *Engine) GetOrCreateCart(userID uint) (*models.Cart, error) {
	var cart *models.Cart
	err := e.store.WithinTx(func(tx Store) error {
		var err error
		cart, err = getOrCreateCart(tx, userID)
		return err
	})
	return cart, err
}

func getOrCreateCart(tx Store, userID uint) (*models.Cart, error) {
	cart, err := tx.CartByUser(userID)
	if errors.Is(err, ErrNotFound) {
		cart = &models.Cart{UserID: userID}
		if err := tx.SaveCart(cart); err != nil {
			return nil, err
		}
		return cart, nil
	}
	return cart, err
}

// AddItem folds quantity of (product, size) into the user's cart, creating the
// cart and/or line item as needed, and returns the resulting line item. The
// product is read fresh so extended prices reflect current catalog prices.
func (e *Engine) AddItem(userID, productID uint, size string, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	var saved models.CartItem
	err := e.store.WithinTx(func(tx Store) error {
		product, err := tx.ProductByID(productID)
		if errors.Is(err, ErrNotFound) {
			return ErrProductNotFound
		}
		if err != nil {
			return err
		}

		cart, err := getOrCreateCart(tx, userID)
		if err != nil {
			return err
		}
		items, err := tx.ItemsByCart(cart.ID)
		if err != nil {
			return err
		}

		saved = mergeItem(cart, items, product, size, quantity)
		if err := tx.SaveItem(&saved); err != nil {
			return err
		}
		return recalculateTotals(tx, cart)
	})
	if err != nil {
		return nil, err
	}
	return &saved, nil
}

// UpdateItem sets a line item's quantity and reprices it from the product's
// current catalog prices. A non-positive quantity changes nothing and is
// reported as ErrInvalidQuantity; it is never treated as a delete.
func (e *Engine) UpdateItem(userID, itemID uint, quantity int) (*models.CartItem, error) {
	if quantity <= 0 {
		return nil, ErrInvalidQuantity
	}

	var updated models.CartItem
	err := e.store.WithinTx(func(tx Store) error {
		item, err := tx.ItemByID(itemID)
		if err != nil {
			return err
		}
		if item.UserID != userID {
			return ErrNotAuthorized
		}
		cart, err := tx.CartByUser(userID)
		if err != nil {
			return err
		}

		product, err := tx.ProductByID(item.ProductID)
		if errors.Is(err, ErrNotFound) {
			return ErrProductNotFound
		}
		if err != nil {
			return err
		}

		item.Quantity = quantity
		reprice(item, product)
		if err := tx.SaveItem(item); err != nil {
			return err
		}
		updated = *item
		return recalculateTotals(tx, cart)
	})
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// DeleteItem removes a line item the user owns and refreshes the cart totals.
func (e *Engine) DeleteItem(userID, itemID uint) error {
	return e.store.WithinTx(func(tx Store) error {
		item, err := tx.ItemByID(itemID)
		if err != nil {
			return err
		}
		if item.UserID != userID {
			return ErrNotAuthorized
		}
		cart, err := tx.CartByUser(userID)
		if err != nil {
			return err
		}

		if err := tx.DeleteItem(item.ID); err != nil {
			return err
		}
		return recalculateTotals(tx, cart)
	})
}
