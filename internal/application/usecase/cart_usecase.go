package usecase

import (
	"time"

	"github.com/google/uuid"

	"github.com/strapped-store/tienda-api/internal/application/dto"
	"github.com/strapped-store/tienda-api/internal/domain"
	"github.com/strapped-store/tienda-api/internal/domain/entity"
	"github.com/strapped-store/tienda-api/internal/domain/repository"
)

// CartUseCase casos de uso del carrito: agregar, ver y quitar líneas.
type CartUseCase struct {
	repo repository.CartRepository
}

// NewCartUseCase construye el caso de uso.
func NewCartUseCase(repo repository.CartRepository) *CartUseCase {
	return &CartUseCase{repo: repo}
}

// Add inserta una línea en el carrito del usuario. No verifica existencia del
// producto ni stock: cada operación es un único statement en el store.
func (uc *CartUseCase) Add(in dto.AddToCartRequest) error {
	if in.UserID == "" || in.ProductID == "" || in.Quantity < 1 {
		return domain.ErrInvalidInput
	}
	item := &entity.CartItem{
		ID:        uuid.New().String(),
		CartID:    in.UserID,
		ProductID: in.ProductID,
		Quantity:  in.Quantity,
		CreatedAt: time.Now(),
	}
	return uc.repo.AddItem(item)
}

// View devuelve las líneas del carrito unidas con nombre, precio e imagen
// actuales del producto. Líneas de productos eliminados quedan fuera del join.
func (uc *CartUseCase) View(userID string) ([]dto.CartLineResponse, error) {
	lines, err := uc.repo.ListByCart(userID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CartLineResponse, 0, len(lines))
	for _, l := range lines {
		out = append(out, dto.CartLineResponse{
			ItemID:      l.ItemID,
			ProductID:   l.ProductID,
			ProductName: l.ProductName,
			Price:       l.Price,
			ImageURL:    l.ImageURL,
			Quantity:    l.Quantity,
		})
	}
	return out, nil
}

// Remove elimina una línea por ID. 0 filas afectadas se convierte en ErrNotFound.
func (uc *CartUseCase) Remove(itemID string) error {
	affected, err := uc.repo.RemoveItem(itemID)
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
