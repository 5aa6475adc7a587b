package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hjumpers/backend/internal/domain/catalog"
	"github.com/hjumpers/backend/internal/domain/shared"
	"github.com/hjumpers/backend/internal/infrastructure/persistence"
)

func newTestService() (*ProductService, *persistence.MemoryStore) {
	store := persistence.NewMemoryStore()
	return NewProductService(store, zap.NewNop()), store
}

func validCreate() CreateProductRequest {
	return CreateProductRequest{
		Name:         "Castle Jumper",
		Description:  "Big inflatable castle",
		Category:     "jumpers",
		BusinessType: "rent",
		RentPrice:    150,
		InStock:      3,
	}
}

func TestProductCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("assigns id 1 on an empty catalog", func(t *testing.T) {
		svc, _ := newTestService()
		p, err := svc.Create(ctx, validCreate())
		require.NoError(t, err)
		assert.Equal(t, 1, p.ID)
		assert.Equal(t, catalog.CategoryJumpers, p.Category)
		assert.NotNil(t, p.Images, "images default to an empty slice")
		assert.False(t, p.CreatedAt.IsZero())
		assert.Equal(t, p.CreatedAt, p.UpdatedAt)
	})

	t.Run("assigns max id plus one", func(t *testing.T) {
		svc, store := newTestService()
		doc := persistence.NewDocument()
		doc.Products = []catalog.Product{{ID: 2}, {ID: 9}, {ID: 5}}
		store.Seed(doc)

		p, err := svc.Create(ctx, validCreate())
		require.NoError(t, err)
		assert.Equal(t, 10, p.ID)
	})

	t.Run("reuses the highest id after deleting it", func(t *testing.T) {
		svc, _ := newTestService()
		first, err := svc.Create(ctx, validCreate())
		require.NoError(t, err)
		second, err := svc.Create(ctx, validCreate())
		require.NoError(t, err)
		require.Equal(t, 2, second.ID)

		_, err = svc.Delete(ctx, second.ID)
		require.NoError(t, err)

		third, err := svc.Create(ctx, validCreate())
		require.NoError(t, err)
		assert.Equal(t, 2, third.ID, "max+1 reuses a freed highest id")
		assert.Equal(t, 1, first.ID)
	})

	t.Run("validation failure writes nothing", func(t *testing.T) {
		svc, store := newTestService()
		_, err := svc.Create(ctx, CreateProductRequest{Name: "Castle Jumper"})
		require.Error(t, err)

		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, shared.CodeValidation, derr.Code)
		assert.Equal(t, "Missing required fields: name, description, category", derr.Message)
		assert.Empty(t, store.Snapshot().Products)
	})

	t.Run("persistence failure surfaces and writes nothing", func(t *testing.T) {
		svc, store := newTestService()
		store.FailNextSaves(true)

		_, err := svc.Create(ctx, validCreate())
		require.ErrorIs(t, err, shared.ErrPersistence)
		assert.Empty(t, store.Snapshot().Products)
	})
}

func TestProductList(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService()

	doc := persistence.NewDocument()
	doc.Products = []catalog.Product{
		{ID: 1, Name: "Castle Jumper", Description: "inflatable", Category: "jumpers", BusinessType: "rent"},
		{ID: 2, Name: "Folding Table", Description: "seats eight", Category: "mesas", BusinessType: "both"},
		{ID: 3, Name: "Slide Jumper", Description: "with slide", Category: "jumpers", BusinessType: "sale"},
	}
	store.Seed(doc)

	t.Run("no filter returns stored order", func(t *testing.T) {
		out, err := svc.List(ctx, catalog.Filter{})
		require.NoError(t, err)
		require.Len(t, out, 3)
		assert.Equal(t, 1, out[0].ID)
		assert.Equal(t, 3, out[2].ID)
	})

	t.Run("filters combine", func(t *testing.T) {
		out, err := svc.List(ctx, catalog.Filter{Category: "jumpers", BusinessType: "rent"})
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Equal(t, 1, out[0].ID)
	})

	t.Run("both satisfies either business type", func(t *testing.T) {
		out, err := svc.List(ctx, catalog.Filter{BusinessType: "sale"})
		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Equal(t, 2, out[0].ID)
		assert.Equal(t, 3, out[1].ID)
	})

	t.Run("limit truncates from the front", func(t *testing.T) {
		out, err := svc.List(ctx, catalog.Filter{Limit: 2})
		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Equal(t, 1, out[0].ID)
	})

	t.Run("no match yields an empty slice", func(t *testing.T) {
		out, err := svc.List(ctx, catalog.Filter{Search: "trampoline"})
		require.NoError(t, err)
		assert.NotNil(t, out)
		assert.Empty(t, out)
	})
}

func TestProductGet(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestService()

	created, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)

	got, err := svc.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Name, got.Name)

	_, err = svc.Get(ctx, 999)
	var derr *shared.DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, shared.CodeNotFound, derr.Code)
	assert.Equal(t, "Product not found", derr.Message)
}

func TestProductUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("merges only provided fields", func(t *testing.T) {
		svc, _ := newTestService()
		created, err := svc.Create(ctx, validCreate())
		require.NoError(t, err)

		name := "Mega Castle"
		price := 200.0
		updated, err := svc.Update(ctx, created.ID, UpdateProductRequest{Name: &name, RentPrice: &price})
		require.NoError(t, err)

		assert.Equal(t, "Mega Castle", updated.Name)
		assert.Equal(t, 200.0, updated.RentPrice)
		assert.Equal(t, created.Description, updated.Description)
		assert.Equal(t, created.Category, updated.Category)
	})

	t.Run("empty payload changes nothing but updated_at", func(t *testing.T) {
		svc, _ := newTestService()
		created, err := svc.Create(ctx, validCreate())
		require.NoError(t, err)

		updated, err := svc.Update(ctx, created.ID, UpdateProductRequest{})
		require.NoError(t, err)

		assert.Equal(t, created.Name, updated.Name)
		assert.Equal(t, created.Description, updated.Description)
		assert.Equal(t, created.CreatedAt, updated.CreatedAt)
		assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
	})

	t.Run("id survives the merge", func(t *testing.T) {
		svc, store := newTestService()
		created, err := svc.Create(ctx, validCreate())
		require.NoError(t, err)

		name := "Renamed"
		updated, err := svc.Update(ctx, created.ID, UpdateProductRequest{Name: &name})
		require.NoError(t, err)
		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, created.ID, store.Snapshot().Products[0].ID)
	})

	t.Run("unknown id", func(t *testing.T) {
		svc, _ := newTestService()
		_, err := svc.Update(ctx, 42, UpdateProductRequest{})
		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, shared.CodeNotFound, derr.Code)
	})
}

func TestProductDelete(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService()

	created, err := svc.Create(ctx, validCreate())
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)
	assert.Empty(t, store.Snapshot().Products)

	_, err = svc.Delete(ctx, created.ID)
	var derr *shared.DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, shared.CodeNotFound, derr.Code)
}
