package relay

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/alfat81/fto/internal/order"
)

// Reporter writes per-order xlsx summaries under a fixed directory.
type Reporter struct {
	dir string
}

func NewReporter(dir string) *Reporter {
	return &Reporter{dir: dir}
}

// Export renders one order to an xlsx file and returns its path.
func (r *Reporter) Export(o order.Order, orderID string) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Order"
	index, err := f.NewSheet(sheet)
	if err != nil {
		return "", fmt.Errorf("failed to create sheet: %w", err)
	}

	f.SetCellValue(sheet, "A1", "Order ID")
	f.SetCellValue(sheet, "B1", orderID)
	f.SetCellValue(sheet, "A2", "Date")
	f.SetCellValue(sheet, "B2", o.Date.Format("2006-01-02 15:04"))
	f.SetCellValue(sheet, "A3", "Customer")
	f.SetCellValue(sheet, "B3", o.Customer.Name)
	f.SetCellValue(sheet, "A4", "Phone")
	f.SetCellValue(sheet, "B4", order.FormatPhone(o.Customer.Phone))
	f.SetCellValue(sheet, "A5", "Comment")
	f.SetCellValue(sheet, "B5", o.Customer.Comment)

	f.SetCellValue(sheet, "A7", "Item")
	f.SetCellValue(sheet, "B7", "Price")
	f.SetCellValue(sheet, "C7", "Quantity")
	f.SetCellValue(sheet, "D7", "Subtotal")

	row := 8
	for _, item := range o.Items {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", row), item.Name)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", row), item.Price)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", row), item.Qty())
		f.SetCellValue(sheet, fmt.Sprintf("D%d", row), item.Subtotal())
		row++
	}

	f.SetCellValue(sheet, fmt.Sprintf("A%d", row+1), "Total")
	f.SetCellValue(sheet, fmt.Sprintf("D%d", row+1), o.Total)

	style, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	f.SetCellStyle(sheet, "A1", "A5", style)
	f.SetCellStyle(sheet, "A7", "D7", style)

	f.SetActiveSheet(index)

	if err := os.MkdirAll(r.dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create reports directory: %w", err)
	}

	filename := fmt.Sprintf("order_%s_%s.xlsx", orderID, o.Date.Format("20060102_1504"))
	path := filepath.Join(r.dir, filename)

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save Excel file: %w", err)
	}

	return path, nil
}
