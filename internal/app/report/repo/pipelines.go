package repo

import (
	"go.mongodb.org/mongo-driver/bson"

	catalog "github.com/light-bringer/optics-service/internal/app/catalog/domain"
	sales "github.com/light-bringer/optics-service/internal/app/sales/domain"
	"github.com/light-bringer/optics-service/internal/models/m_order"
	"github.com/light-bringer/optics-service/internal/models/m_product"
	"github.com/light-bringer/optics-service/internal/models/m_user"
	"github.com/light-bringer/optics-service/internal/pkg/query"
)

// paidOrders is the base of every revenue pipeline.
var paidOrders = query.From(m_order.CollectionName).
	Match(query.Eq(m_order.PaymentStatus, string(sales.PaymentPaid)))

// CountStatement counts the documents of collection matching conds.
func CountStatement(collection string, conds ...query.Condition) query.Statement {
	return query.From(collection).Match(conds...).Count().Build()
}

// CategoryCountsStatement counts products per category, largest first.
func CategoryCountsStatement() query.Statement {
	return query.From(m_product.CollectionName).
		Group(query.Ref(m_product.Category), query.CountAs("count")).
		Sort(query.By("count", query.Desc), query.By("_id", query.Asc)).
		Project(bson.D{
			{Key: "_id", Value: 0},
			{Key: "category", Value: "$_id"},
			{Key: "count", Value: 1},
		}).
		Build()
}

// StockCountStatement counts products with the given stock status.
func StockCountStatement(status catalog.StockStatus) query.Statement {
	return CountStatement(m_product.CollectionName, query.Eq(m_product.Status, string(status)))
}

// AdminCountStatement counts users holding the Admin role.
func AdminCountStatement(role string) query.Statement {
	return CountStatement(m_user.CollectionName, query.Eq(m_user.Role, role))
}

// RevenueStatement sums the coerced totalPrice of paid orders.
func RevenueStatement() query.Statement {
	return paidOrders.
		Group(nil, query.Sum("revenue", query.ToDouble(m_order.TotalPrice))).
		Build()
}

// RevenuePerDayStatement sums paid revenue and units per calendar day, oldest first.
func RevenuePerDayStatement() query.Statement {
	return paidOrders.
		AddFields("day", query.DayOf(m_order.Date)).
		AddFields("units", query.SumArray(m_order.ItemQuantity)).
		Group(query.Ref("day"),
			query.Sum("revenue", query.ToDouble(m_order.TotalPrice)),
			query.Sum("quantity", query.Ref("units")),
		).
		Match(query.NotNull("_id")).
		Sort(query.By("_id", query.Asc)).
		Project(bson.D{
			{Key: "_id", Value: 0},
			{Key: "date", Value: "$_id"},
			{Key: "revenue", Value: 1},
			{Key: "quantity", Value: 1},
		}).
		Build()
}

// TopProductsStatement ranks products by units sold in paid orders.
// Name, brand, image and price come from the most recent order line.
func TopProductsStatement(limit int64) query.Statement {
	return paidOrders.
		Sort(query.By(m_order.Date, query.Desc)).
		Unwind(m_order.Products).
		Group(query.Ref(m_order.ItemProductID),
			query.First("name", query.Ref(m_order.ItemName)),
			query.First("brand", query.Ref(m_order.ItemBrand)),
			query.First("image", query.Ref(m_order.ItemImage)),
			query.First("price", query.Ref(m_order.ItemPrice)),
			query.Sum("quantity", query.Ref(m_order.ItemQuantity)),
		).
		Sort(query.By("quantity", query.Desc), query.By("_id", query.Asc)).
		Limit(limit).
		Project(bson.D{
			{Key: "_id", Value: 0},
			{Key: "productId", Value: "$_id"},
			{Key: "name", Value: 1},
			{Key: "brand", Value: 1},
			{Key: "image", Value: 1},
			{Key: "price", Value: 1},
			{Key: "quantity", Value: 1},
		}).
		Build()
}

// TopCustomersStatement ranks customers by paid orders, then spend, and
// joins their user record for a photo. Customers without a user record
// keep a null photo.
func TopCustomersStatement(limit int64) query.Statement {
	return paidOrders.
		Group(query.Ref(m_order.CustomerEmail),
			query.First("name", query.Ref(m_order.CustomerName)),
			query.CountAs("orders"),
			query.Sum("spent", query.ToDouble(m_order.TotalPrice)),
		).
		Sort(query.By("orders", query.Desc), query.By("spent", query.Desc)).
		Limit(limit).
		Lookup(m_user.CollectionName, "_id", m_user.Email, "user").
		Project(bson.D{
			{Key: "_id", Value: 0},
			{Key: "email", Value: "$_id"},
			{Key: "name", Value: 1},
			{Key: "orders", Value: 1},
			{Key: "spent", Value: 1},
			{Key: "photo", Value: query.IfNull(query.FirstElem("user."+m_user.Image), nil)},
		}).
		Build()
}

// RevenueByDivisionStatement sums paid revenue per customer division, largest first.
func RevenueByDivisionStatement() query.Statement {
	return paidOrders.
		Group(query.Ref(m_order.Division), query.Sum("revenue", query.ToDouble(m_order.TotalPrice))).
		Sort(query.By("revenue", query.Desc)).
		Project(bson.D{
			{Key: "_id", Value: 0},
			{Key: "division", Value: "$_id"},
			{Key: "revenue", Value: 1},
		}).
		Build()
}

// LatestProductsStatement returns the most recently added products.
func LatestProductsStatement(limit int64) query.Statement {
	return query.From(m_product.CollectionName).
		Sort(query.By(m_product.ID, query.Desc)).
		Limit(limit).
		Project(query.Include(
			m_product.ID,
			m_product.ProductName,
			m_product.BrandName,
			m_product.Category,
			m_product.Image,
			m_product.Price,
		)).
		Build()
}
