// Package export renders reports as spreadsheets.
package export

import (
	"fmt"
	"io"

	"github.com/tealeg/xlsx"

	"github.com/light-bringer/optics-service/internal/app/report/contracts"
)

// ContentType is the MIME type of an .xlsx workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Sheet names, in workbook order.
const (
	SheetSummary   = "Summary"
	SheetDaily     = "Revenue per day"
	SheetProducts  = "Top products"
	SheetCustomers = "Top customers"
	SheetDivisions = "Revenue by division"
)

// SalesReportWorkbook lays the sales report out as one sheet per section.
func SalesReportWorkbook(r *contracts.SalesReport) (*xlsx.File, error) {
	file := xlsx.NewFile()

	summary, err := addSheet(file, SheetSummary, "Metric", "Value")
	if err != nil {
		return nil, err
	}
	addRow(summary, "Total orders", r.TotalOrders)
	addRow(summary, "Delivered orders", r.DeliveredOrders)
	addRow(summary, "Pending orders", r.PendingOrders)
	addRow(summary, "Total revenue", r.TotalRevenue)

	daily, err := addSheet(file, SheetDaily, "Date", "Revenue", "Quantity")
	if err != nil {
		return nil, err
	}
	for _, d := range r.RevenuePerDay {
		addRow(daily, d.Date, d.Revenue, d.Quantity)
	}

	products, err := addSheet(file, SheetProducts, "Product ID", "Name", "Brand", "Price", "Quantity")
	if err != nil {
		return nil, err
	}
	for _, p := range r.TopProducts {
		addRow(products, p.ProductID, p.Name, p.Brand, p.Price, p.Quantity)
	}

	customers, err := addSheet(file, SheetCustomers, "Email", "Name", "Orders", "Spent", "Photo")
	if err != nil {
		return nil, err
	}
	for _, c := range r.TopCustomers {
		photo := ""
		if c.Photo != nil {
			photo = *c.Photo
		}
		addRow(customers, c.Email, c.Name, c.Orders, c.Spent, photo)
	}

	divisions, err := addSheet(file, SheetDivisions, "Division", "Revenue")
	if err != nil {
		return nil, err
	}
	for _, d := range r.RevenueByDivision {
		addRow(divisions, d.Division, d.Revenue)
	}

	return file, nil
}

// WriteSalesReport renders the workbook to w.
func WriteSalesReport(w io.Writer, r *contracts.SalesReport) error {
	file, err := SalesReportWorkbook(r)
	if err != nil {
		return err
	}
	if err := file.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func addSheet(file *xlsx.File, name string, headers ...string) (*xlsx.Sheet, error) {
	sheet, err := file.AddSheet(name)
	if err != nil {
		return nil, fmt.Errorf("failed to add sheet %q: %w", name, err)
	}
	row := sheet.AddRow()
	for _, h := range headers {
		row.AddCell().SetString(h)
	}
	return sheet, nil
}

func addRow(sheet *xlsx.Sheet, values ...interface{}) {
	row := sheet.AddRow()
	for _, v := range values {
		row.AddCell().SetValue(v)
	}
}
