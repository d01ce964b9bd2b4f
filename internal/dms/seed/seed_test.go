package seed

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
customers:
  - id: CUST-010
    created_at: "2024-02-01"
    customer_name: Priya Nair
    mobile_number: "9000000001"
    city: Kochi
models:
  - id: MODEL-010
    model_name: Maruti Brezza
    variant: ZXI
    fuel_type: Petrol
    mileage: 19.8
    seating_capacity: 5
colors:
  - id: COLOR-010
    color_name: Sizzling Red
    model_id: MODEL-010
    is_available: true
    additional_cost: 12500.50
prices:
  - id: PRICE-010
    order_id: ORD-20240201-010
    selling_price: 950000
`

func TestBuiltin(t *testing.T) {
	ds, err := Builtin().Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[string]int{
		"customers": 3, "enquiries": 2, "orders": 2, "models": 3,
		"colors": 4, "prices": 2, "shipping": 2,
	}, ds.Count())

	// 每次返回独立副本
	ds.Customers[0].CustomerName = "changed"
	again := BuiltinDataset()
	assert.Equal(t, "John Doe", again.Customers[0].CustomerName)
}

func TestParseYAML(t *testing.T) {
	ds, err := ParseYAML([]byte(sampleYAML))
	require.NoError(t, err)

	require.Len(t, ds.Customers, 1)
	assert.Equal(t, "CUST-010", ds.Customers[0].ID)
	assert.Equal(t, "2024-02-01", ds.Customers[0].CreatedAt)
	assert.Equal(t, "9000000001", ds.Customers[0].MobileNumber)

	require.Len(t, ds.Models, 1)
	assert.Equal(t, 19.8, ds.Models[0].Mileage)

	require.Len(t, ds.Colors, 1)
	assert.Equal(t, "12500.5", ds.Colors[0].AdditionalCost.String())
	assert.True(t, ds.Colors[0].IsAvailable)

	require.Len(t, ds.Prices, 1)
	assert.Equal(t, "950000", ds.Prices[0].SellingPrice.String())
	assert.Empty(t, ds.Orders)
}

func TestParseYAML_Invalid(t *testing.T) {
	_, err := ParseYAML([]byte("customers: [unclosed"))
	assert.Error(t, err)

	_, err = ParseYAML([]byte("customers: 12"))
	assert.Error(t, err)
}

func TestFileSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleYAML), 0o644))

	ds, err := NewFileSource(path).Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, ds.Customers, 1)

	_, err = NewFileSource(filepath.Join(t.TempDir(), "missing.yaml")).Load(context.Background())
	assert.Error(t, err)
}

func TestDatabaseSource_SQLite(t *testing.T) {
	db, err := OpenDatabase("sqlite", "file::memory:")
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	ctx := context.Background()
	require.NoError(t, Store(ctx, db, BuiltinDataset()))

	ds, err := NewDatabaseSource(db).Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, BuiltinDataset().Count(), ds.Count())

	require.Len(t, ds.Orders, 2)
	assert.Equal(t, "ORD-20240114-002", ds.Orders[0].ID)
	assert.Equal(t, "HDFC Bank", ds.Orders[0].FinancierName)
	assert.Equal(t, "800000", ds.Orders[0].FinanceAmount.String())

	require.Len(t, ds.Prices, 2)
	assert.Equal(t, "1200000", ds.Prices[0].SellingPrice.String())
}

func TestOpenDatabase_UnknownDriver(t *testing.T) {
	_, err := OpenDatabase("oracle", "")
	assert.Error(t, err)
}

func TestRedisSource(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })
	ctx := context.Background()

	require.NoError(t, Publish(ctx, rdb, "test:seed", BuiltinDataset()))
	assert.True(t, mr.Exists("test:seed:customers"))

	ds, err := NewRedisSource(rdb, "test:seed").Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, BuiltinDataset().Count(), ds.Count())
	assert.Equal(t, "Pearl White", ds.Colors[0].ColorName)
	assert.Equal(t, "1200000", ds.Prices[0].SellingPrice.String())
}

func TestRedisSource_MissingKeysAreEmpty(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	require.NoError(t, mr.Set("dms:seed:models", `[{"id":"MODEL-001","model_name":"Swift"}]`))

	ds, err := NewRedisSource(rdb, "").Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, ds.Models, 1)
	assert.Empty(t, ds.Customers)
}

func TestRedisSource_BadPayload(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { rdb.Close() })

	require.NoError(t, mr.Set("dms:seed:orders", "not json"))
	_, err := NewRedisSource(rdb, "").Load(context.Background())
	assert.Error(t, err)
}
