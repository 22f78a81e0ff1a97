package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartItem representa una línea del carrito de un usuario.
// CartID es el ID del usuario dueño del carrito (un carrito por usuario).
type CartItem struct {
	ID        string
	CartID    string
	ProductID string
	Quantity  int // siempre positivo
	CreatedAt time.Time
}

// CartLine es una línea del carrito unida con los datos actuales del producto.
// Proviene de un INNER JOIN: líneas cuyo producto fue eliminado no aparecen.
type CartLine struct {
	ItemID      string
	ProductID   string
	ProductName string
	Price       decimal.Decimal
	ImageURL    string
	Quantity    int
}
