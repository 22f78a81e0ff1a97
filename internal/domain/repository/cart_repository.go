package repository

import "github.com/strapped-store/tienda-api/internal/domain/entity"

// CartRepository define el puerto de persistencia para las líneas del carrito.
type CartRepository interface {
	AddItem(item *entity.CartItem) error
	// ListByCart devuelve las líneas del carrito unidas con el producto actual
	// (INNER JOIN: se excluyen líneas cuyo producto fue eliminado).
	ListByCart(cartID string) ([]*entity.CartLine, error)
	// RemoveItem devuelve las filas afectadas; 0 significa que la línea no existe.
	RemoveItem(itemID string) (int64, error)
}
