package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/strapped-store/tienda-api/internal/domain/entity"
	"github.com/strapped-store/tienda-api/internal/domain/repository"
)

var _ repository.CartRepository = (*CartRepo)(nil)

// CartRepo implementación del puerto CartRepository sobre PostgreSQL.
type CartRepo struct {
	pool *pgxpool.Pool
}

// NewCartRepository construye el adaptador de persistencia para el carrito.
func NewCartRepository(pool *pgxpool.Pool) *CartRepo {
	return &CartRepo{pool: pool}
}

// AddItem inserta una línea en el carrito.
func (r *CartRepo) AddItem(item *entity.CartItem) error {
	query := `
		INSERT INTO cart_items (id, cart_id, product_id, quantity, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := r.pool.Exec(context.Background(), query,
		item.ID, item.CartID, item.ProductID, item.Quantity, item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert cart item: %w", err)
	}
	return nil
}

// ListByCart devuelve las líneas del carrito unidas con el producto actual.
// INNER JOIN: líneas cuyo producto fue eliminado no aparecen, pero siguen
// siendo eliminables por id de línea.
func (r *CartRepo) ListByCart(cartID string) ([]*entity.CartLine, error) {
	query := `
		SELECT ci.id, ci.product_id, p.name, p.price, p.image_url, ci.quantity
		FROM cart_items ci
		JOIN products p ON p.id = ci.product_id
		WHERE ci.cart_id = $1
		ORDER BY ci.created_at`
	rows, err := r.pool.Query(context.Background(), query, cartID)
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	defer rows.Close()
	var list []*entity.CartLine
	for rows.Next() {
		var l entity.CartLine
		if err := rows.Scan(&l.ItemID, &l.ProductID, &l.ProductName, &l.Price, &l.ImageURL, &l.Quantity); err != nil {
			return nil, fmt.Errorf("scan cart line: %w", err)
		}
		list = append(list, &l)
	}
	return list, rows.Err()
}

// RemoveItem elimina una línea por ID y devuelve las filas afectadas.
func (r *CartRepo) RemoveItem(itemID string) (int64, error) {
	cmd, err := r.pool.Exec(context.Background(), `DELETE FROM cart_items WHERE id = $1`, itemID)
	if err != nil {
		return 0, fmt.Errorf("delete cart item: %w", err)
	}
	return cmd.RowsAffected(), nil
}
