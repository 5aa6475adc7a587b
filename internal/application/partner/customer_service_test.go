package partner

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hjumpers/backend/internal/domain/partner"
	"github.com/hjumpers/backend/internal/domain/shared"
	"github.com/hjumpers/backend/internal/domain/trade"
	"github.com/hjumpers/backend/internal/infrastructure/persistence"
)

func newTestService() (*CustomerService, *persistence.MemoryStore) {
	store := persistence.NewMemoryStore()
	return NewCustomerService(store, zap.NewNop()), store
}

func TestCustomerCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("creates with next id", func(t *testing.T) {
		svc, _ := newTestService()
		c, err := svc.Create(ctx, CreateCustomerRequest{Name: "Maria Lopez", Phone: "123"})
		require.NoError(t, err)
		assert.Equal(t, 1, c.ID)
		assert.Equal(t, 0, c.TotalOrders)
		assert.Nil(t, c.LastOrder)
	})

	t.Run("missing fields write nothing", func(t *testing.T) {
		svc, store := newTestService()
		_, err := svc.Create(ctx, CreateCustomerRequest{Name: "Maria Lopez"})
		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, shared.CodeValidation, derr.Code)
		assert.Empty(t, store.Snapshot().Customers)
	})

	t.Run("duplicate phone is rejected", func(t *testing.T) {
		svc, store := newTestService()
		_, err := svc.Create(ctx, CreateCustomerRequest{Name: "Maria", Phone: "123"})
		require.NoError(t, err)

		_, err = svc.Create(ctx, CreateCustomerRequest{Name: "Juan", Phone: "123"})
		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, shared.CodeConflict, derr.Code)
		assert.Len(t, store.Snapshot().Customers, 1)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		svc, _ := newTestService()
		_, err := svc.Create(ctx, CreateCustomerRequest{Name: "Maria", Phone: "123", Email: "m@example.com"})
		require.NoError(t, err)

		_, err = svc.Create(ctx, CreateCustomerRequest{Name: "Juan", Phone: "456", Email: "m@example.com"})
		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, shared.CodeConflict, derr.Code)
	})

	t.Run("empty emails never collide", func(t *testing.T) {
		svc, _ := newTestService()
		_, err := svc.Create(ctx, CreateCustomerRequest{Name: "Maria", Phone: "123"})
		require.NoError(t, err)
		_, err = svc.Create(ctx, CreateCustomerRequest{Name: "Juan", Phone: "456"})
		require.NoError(t, err)
	})
}

func seedCustomers(store *persistence.MemoryStore) {
	t1 := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	t2 := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	t3 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)

	doc := persistence.NewDocument()
	doc.Customers = []partner.Customer{
		{ID: 1, Name: "Maria Lopez", Phone: "111", Email: "maria@example.com", TotalOrders: 2, CreatedAt: t1},
		{ID: 2, Name: "Juan Perez", Phone: "222", TotalOrders: 5, CreatedAt: t3},
		{ID: 3, Name: "Ana Garcia", Phone: "333", TotalOrders: 5, CreatedAt: t2},
	}
	store.Seed(doc)
}

func TestCustomerList(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults to created_at descending", func(t *testing.T) {
		svc, store := newTestService()
		seedCustomers(store)

		out, err := svc.List(ctx, ListQuery{})
		require.NoError(t, err)
		require.Len(t, out, 3)
		assert.Equal(t, 2, out[0].ID)
		assert.Equal(t, 3, out[1].ID)
		assert.Equal(t, 1, out[2].ID)
	})

	t.Run("ascending by name", func(t *testing.T) {
		svc, store := newTestService()
		seedCustomers(store)

		out, err := svc.List(ctx, ListQuery{SortBy: "name", SortOrder: "asc"})
		require.NoError(t, err)
		assert.Equal(t, "Ana Garcia", out[0].Name)
		assert.Equal(t, "Juan Perez", out[1].Name)
		assert.Equal(t, "Maria Lopez", out[2].Name)
	})

	t.Run("equal keys keep stored order", func(t *testing.T) {
		svc, store := newTestService()
		seedCustomers(store)

		out, err := svc.List(ctx, ListQuery{SortBy: "total_orders", SortOrder: "desc"})
		require.NoError(t, err)
		require.Len(t, out, 3)
		// Customers 2 and 3 both have 5 orders; 2 is stored first
		assert.Equal(t, 2, out[0].ID)
		assert.Equal(t, 3, out[1].ID)
		assert.Equal(t, 1, out[2].ID)
	})

	t.Run("unknown sort field leaves stored order", func(t *testing.T) {
		svc, store := newTestService()
		seedCustomers(store)

		out, err := svc.List(ctx, ListQuery{SortBy: "favorite_color"})
		require.NoError(t, err)
		assert.Equal(t, 1, out[0].ID)
		assert.Equal(t, 2, out[1].ID)
		assert.Equal(t, 3, out[2].ID)
	})

	t.Run("search then limit", func(t *testing.T) {
		svc, store := newTestService()
		seedCustomers(store)

		out, err := svc.List(ctx, ListQuery{Search: "a", SortBy: "name", SortOrder: "asc", Limit: 2})
		require.NoError(t, err)
		require.Len(t, out, 2)
		assert.Equal(t, "Ana Garcia", out[0].Name)
		assert.Equal(t, "Juan Perez", out[1].Name)
	})
}

func TestCustomerGet(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService()

	now := time.Now().UTC()
	doc := persistence.NewDocument()
	doc.Customers = []partner.Customer{
		{ID: 1, Name: "Maria", Phone: "111", Email: "maria@example.com"},
		{ID: 2, Name: "Juan", Phone: "222"},
	}
	doc.Orders = []trade.Order{
		{ID: 1, CustomerPhone: "111", CreatedAt: now},
		{ID: 2, CustomerPhone: "999", CustomerEmail: "maria@example.com", CreatedAt: now},
		{ID: 3, CustomerPhone: "999", CreatedAt: now},
	}
	store.Seed(doc)

	t.Run("joins orders by phone or email", func(t *testing.T) {
		detail, err := svc.Get(ctx, 1)
		require.NoError(t, err)
		require.Len(t, detail.Orders, 2)
		assert.Equal(t, 1, detail.Orders[0].ID)
		assert.Equal(t, 2, detail.Orders[1].ID)
	})

	t.Run("no orders yields an empty slice", func(t *testing.T) {
		detail, err := svc.Get(ctx, 2)
		require.NoError(t, err)
		assert.NotNil(t, detail.Orders)
		assert.Empty(t, detail.Orders)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := svc.Get(ctx, 42)
		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, shared.CodeNotFound, derr.Code)
		assert.Equal(t, "Customer not found", derr.Message)
	})
}

func TestCustomerUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("merges only provided fields and preserves id", func(t *testing.T) {
		svc, _ := newTestService()
		created, err := svc.Create(ctx, CreateCustomerRequest{Name: "Maria", Phone: "111", Notes: "repeat customer"})
		require.NoError(t, err)

		name := "Maria Lopez"
		updated, err := svc.Update(ctx, created.ID, UpdateCustomerRequest{Name: &name})
		require.NoError(t, err)

		assert.Equal(t, created.ID, updated.ID)
		assert.Equal(t, "Maria Lopez", updated.Name)
		assert.Equal(t, "111", updated.Phone)
		assert.Equal(t, "repeat customer", updated.Notes)
	})

	t.Run("phone collision with another customer is rejected", func(t *testing.T) {
		svc, _ := newTestService()
		_, err := svc.Create(ctx, CreateCustomerRequest{Name: "Maria", Phone: "111"})
		require.NoError(t, err)
		second, err := svc.Create(ctx, CreateCustomerRequest{Name: "Juan", Phone: "222"})
		require.NoError(t, err)

		phone := "111"
		_, err = svc.Update(ctx, second.ID, UpdateCustomerRequest{Phone: &phone})
		var derr *shared.DomainError
		require.ErrorAs(t, err, &derr)
		assert.Equal(t, shared.CodeConflict, derr.Code)
	})

	t.Run("keeping your own phone is not a collision", func(t *testing.T) {
		svc, _ := newTestService()
		created, err := svc.Create(ctx, CreateCustomerRequest{Name: "Maria", Phone: "111"})
		require.NoError(t, err)

		phone := "111"
		name := "Maria Lopez"
		_, err = svc.Update(ctx, created.ID, UpdateCustomerRequest{Phone: &phone, Name: &name})
		require.NoError(t, err)
	})

	t.Run("clearing the email never collides", func(t *testing.T) {
		svc, _ := newTestService()
		_, err := svc.Create(ctx, CreateCustomerRequest{Name: "Maria", Phone: "111"})
		require.NoError(t, err)
		second, err := svc.Create(ctx, CreateCustomerRequest{Name: "Juan", Phone: "222", Email: "j@example.com"})
		require.NoError(t, err)

		empty := ""
		_, err = svc.Update(ctx, second.ID, UpdateCustomerRequest{Email: &empty})
		require.NoError(t, err)
	})
}

func TestCustomerDelete(t *testing.T) {
	ctx := context.Background()
	svc, store := newTestService()

	created, err := svc.Create(ctx, CreateCustomerRequest{Name: "Maria", Phone: "111"})
	require.NoError(t, err)

	deleted, err := svc.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, deleted.ID)
	assert.Empty(t, store.Snapshot().Customers)

	_, err = svc.Delete(ctx, created.ID)
	var derr *shared.DomainError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, shared.CodeNotFound, derr.Code)
}
