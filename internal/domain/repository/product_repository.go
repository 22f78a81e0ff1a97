package repository

import "github.com/strapped-store/tienda-api/internal/domain/entity"

// ProductRepository define el puerto de persistencia para Product (DIP).
// Update y Delete devuelven el número de filas afectadas: el caso de uso
// mapea 0 filas a domain.ErrNotFound (el store no lo considera error).
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	List() ([]*entity.Product, error)
	Update(product *entity.Product) (int64, error)
	Delete(id string) (int64, error)
}
