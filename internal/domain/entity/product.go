package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product representa un producto del catálogo de la tienda.
type Product struct {
	ID          string
	Name        string
	Description string
	Price       decimal.Decimal // precio de venta, nunca negativo
	Stock       int             // existencias, nunca negativo (sin control de concurrencia)
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
