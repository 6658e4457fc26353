//go:build integration

package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/optics-service/internal/app/report/repo"
	salesrepo "github.com/light-bringer/optics-service/internal/app/sales/repo"
	"github.com/light-bringer/optics-service/internal/app/sales/usecases/update_order_status"
	"github.com/light-bringer/optics-service/internal/testutil"
)

var (
	day1 = time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	day2 = time.Date(2024, 5, 2, 18, 30, 0, 0, time.UTC)
)

func TestReadModel_SalesReport(t *testing.T) {
	db := testutil.SetupMongoTest(t)
	ctx := context.Background()
	readModel := repo.NewReadModel(db)

	testutil.CreateTestUser(t, db, "ana@example.com", "User")
	testutil.CreateTestOrder(t, db, "ana@example.com", "Dhaka", "Paid", day1,
		testutil.OrderLine{ProductID: "p1", Name: "Ray-X", Quantity: 2, Price: 100})
	testutil.CreateTestOrder(t, db, "guest@example.com", "Khulna", "Paid", day2,
		testutil.OrderLine{ProductID: "p1", Name: "Ray-X", Quantity: 1, Price: 90},
		testutil.OrderLine{ProductID: "p2", Name: "Clearview", Quantity: 1, Price: 50})
	unpaidID := testutil.CreateTestOrder(t, db, "ana@example.com", "Dhaka", "unpaid", day2,
		testutil.OrderLine{ProductID: "p2", Name: "Clearview", Quantity: 5, Price: 50})

	report, err := readModel.SalesReport(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(3), report.TotalOrders)
	assert.Equal(t, int64(3), report.PendingOrders)
	assert.Equal(t, int64(0), report.DeliveredOrders)
	assert.Equal(t, 340.0, report.TotalRevenue)

	require.Len(t, report.RevenuePerDay, 2)
	assert.Equal(t, "2024-05-01", report.RevenuePerDay[0].Date)
	assert.Equal(t, 200.0, report.RevenuePerDay[0].Revenue)
	assert.Equal(t, int64(2), report.RevenuePerDay[0].Quantity)
	assert.Equal(t, "2024-05-02", report.RevenuePerDay[1].Date)
	assert.Equal(t, int64(2), report.RevenuePerDay[1].Quantity)

	require.NotEmpty(t, report.TopProducts)
	assert.Equal(t, "p1", report.TopProducts[0].ProductID)
	assert.Equal(t, int64(3), report.TopProducts[0].Quantity)
	assert.Equal(t, 90.0, report.TopProducts[0].Price)

	require.Len(t, report.TopCustomers, 2)
	for _, c := range report.TopCustomers {
		switch c.Email {
		case "ana@example.com":
			require.NotNil(t, c.Photo)
		case "guest@example.com":
			assert.Nil(t, c.Photo)
		}
	}

	require.Len(t, report.RevenueByDivision, 2)
	assert.Equal(t, "Dhaka", report.RevenueByDivision[0].Division)
	assert.Equal(t, 200.0, report.RevenueByDivision[0].Revenue)

	t.Run("recomputation is idempotent", func(t *testing.T) {
		again, err := readModel.SalesReport(ctx)
		require.NoError(t, err)
		assert.Equal(t, report, again)
	})

	t.Run("status changes are reflected", func(t *testing.T) {
		statuses := update_order_status.NewInteractor(salesrepo.NewOrderRepo(db))
		require.NoError(t, statuses.SetPaymentStatus(ctx, unpaidID.Hex(), "Paid"))

		after, err := readModel.SalesReport(ctx)
		require.NoError(t, err)
		assert.Equal(t, 590.0, after.TotalRevenue)
		assert.Equal(t, "p2", after.TopProducts[0].ProductID)
	})
}

func TestReadModel_AdminStats(t *testing.T) {
	db := testutil.SetupMongoTest(t)
	ctx := context.Background()
	readModel := repo.NewReadModel(db)

	testutil.CreateTestUser(t, db, "boss@example.com", "Admin")
	testutil.CreateTestUser(t, db, "ana@example.com", "User")
	testutil.CreateTestProduct(t, db, "Ray-X", "Zeta", "120")
	testutil.CreateTestProduct(t, db, "Clearview", "Zeta", "80")

	stats, err := readModel.AdminStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.Products.Total)
	assert.Equal(t, int64(2), stats.Users.Total)
	assert.Equal(t, int64(1), stats.Users.Admins)
	require.Len(t, stats.Categories, 1)
	assert.Equal(t, "Eyeglasses", stats.Categories[0].Category)
	assert.Equal(t, int64(2), stats.Categories[0].Count)
}

func TestReadModel_TopSellingUsesPaidOrdersOnly(t *testing.T) {
	db := testutil.SetupMongoTest(t)
	ctx := context.Background()
	readModel := repo.NewReadModel(db)

	testutil.CreateTestOrder(t, db, "ana@example.com", "Dhaka", "Paid", day1,
		testutil.OrderLine{ProductID: "p1", Name: "Ray-X", Quantity: 1, Price: 100})
	testutil.CreateTestOrder(t, db, "ana@example.com", "Dhaka", "unpaid", day2,
		testutil.OrderLine{ProductID: "p2", Name: "Clearview", Quantity: 9, Price: 50})

	top, err := readModel.TopSellingProducts(ctx, 10)
	require.NoError(t, err)

	require.Len(t, top, 1)
	assert.Equal(t, "p1", top[0].ProductID)
}
