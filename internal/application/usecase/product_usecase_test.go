package usecase_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/strapped-store/tienda-api/internal/application/dto"
	"github.com/strapped-store/tienda-api/internal/application/usecase"
	"github.com/strapped-store/tienda-api/internal/domain"
	"github.com/strapped-store/tienda-api/internal/domain/entity"
)

// fakeProductRepo repositorio en memoria que preserva orden de inserción y
// reporta filas afectadas como lo haría el store real.
type fakeProductRepo struct {
	order []string
	byID  map[string]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{byID: map[string]*entity.Product{}}
}

func (r *fakeProductRepo) Create(p *entity.Product) error {
	cp := *p
	r.byID[p.ID] = &cp
	r.order = append(r.order, p.ID)
	return nil
}

func (r *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (r *fakeProductRepo) List() ([]*entity.Product, error) {
	var out []*entity.Product
	for _, id := range r.order {
		if p, ok := r.byID[id]; ok {
			cp := *p
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *fakeProductRepo) Update(p *entity.Product) (int64, error) {
	existing, ok := r.byID[p.ID]
	if !ok {
		return 0, nil
	}
	p.CreatedAt = existing.CreatedAt
	cp := *p
	r.byID[p.ID] = &cp
	return 1, nil
}

func (r *fakeProductRepo) Delete(id string) (int64, error) {
	if _, ok := r.byID[id]; !ok {
		return 0, nil
	}
	delete(r.byID, id)
	return 1, nil
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestProduct_CreateYList_OrdenDeInsercion(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	first, err := uc.Create(dto.CreateProductRequest{Name: "Gorra", Price: price("45000"), Stock: 10})
	require.NoError(t, err)
	second, err := uc.Create(dto.CreateProductRequest{Name: "Camiseta", Price: price("80000"), Stock: 5})
	require.NoError(t, err)

	list, err := uc.List()
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, first.ID, list[0].ID)
	assert.Equal(t, second.ID, list[1].ID)
}

func TestProduct_Create_PrecioNegativo_Rechazado(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.Create(dto.CreateProductRequest{Name: "Gorra", Price: price("-1")})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = uc.Create(dto.CreateProductRequest{Name: "Gorra", Price: price("100"), Stock: -3})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProduct_GetByID_Inexistente_NotFound(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	_, err := uc.GetByID("no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProduct_Update_SinFilasAfectadas_NotFound(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	err := uc.Update("no-existe", dto.UpdateProductRequest{Name: "Gorra", Price: price("45000")})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProduct_Delete_DosVeces_SegundaNotFound(t *testing.T) {
	repo := newFakeProductRepo()
	uc := usecase.NewProductUseCase(repo)

	created, err := uc.Create(dto.CreateProductRequest{Name: "Gorra", Price: price("45000"), Stock: 10})
	require.NoError(t, err)

	require.NoError(t, uc.Delete(created.ID), "primer delete debe afectar exactamente una fila")
	assert.Empty(t, repo.byID)

	err = uc.Delete(created.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound, "segundo delete sobre el mismo id debe ser NotFound")
}

func TestProduct_Update_ActualizaCampos(t *testing.T) {
	uc := usecase.NewProductUseCase(newFakeProductRepo())

	created, err := uc.Create(dto.CreateProductRequest{Name: "Gorra", Price: price("45000"), Stock: 10})
	require.NoError(t, err)

	err = uc.Update(created.ID, dto.UpdateProductRequest{Name: "Gorra edición limitada", Price: price("60000"), Stock: 3})
	require.NoError(t, err)

	got, err := uc.GetByID(created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Gorra edición limitada", got.Name)
	assert.True(t, got.Price.Equal(price("60000")))
	assert.Equal(t, 3, got.Stock)
}
