package service

import (
	"encoding/json"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Exporter 可导出的实体列表
type Exporter interface {
	Name() string
	Columns() []Column
	Rows() ([]map[string]any, error)
}

// Exporter 按集合名查找导出源
func (s *Services) Exporter(name string) (Exporter, bool) {
	for _, e := range s.exporters() {
		if e.Name() == name {
			return e, true
		}
	}
	return nil, false
}

func (s *Services) exporters() []Exporter {
	return []Exporter{s.Customers, s.Enquiries, s.Orders, s.Models, s.Colors, s.Prices, s.Shipping}
}

// Export 将实体列表导出为 xlsx
func (s *Services) Export(name string) (*excelize.File, string, error) {
	e, ok := s.Exporter(name)
	if !ok {
		return nil, "", fmt.Errorf("unknown entity %q", name)
	}
	rows, err := e.Rows()
	if err != nil {
		return nil, "", fmt.Errorf("list %s: %w", name, err)
	}

	f := excelize.NewFile()
	sheet := e.Name()
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		f.Close()
		return nil, "", fmt.Errorf("rename sheet: %w", err)
	}

	// 表头样式: 加粗
	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"#D9E1F2"}},
		Border: []excelize.Border{
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})

	cols := e.Columns()
	for i, col := range cols {
		colName, _ := excelize.ColumnNumberToName(i + 1)
		cell := colName + "1"
		f.SetCellValue(sheet, cell, col.Title)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
		if col.Width > 0 {
			f.SetColWidth(sheet, colName, colName, col.Width)
		}
	}

	for r, row := range rows {
		for i, col := range cols {
			cell, _ := excelize.CoordinatesToCellName(i+1, r+2)
			f.SetCellValue(sheet, cell, cellValue(row[col.Key]))
		}
	}

	filename := fmt.Sprintf("%s_%s.xlsx", e.Name(), s.clock().Format("20060102"))
	return f, filename, nil
}

// cellValue 数字写成数值单元格，金额字符串保持原样
func cellValue(v any) any {
	switch x := v.(type) {
	case json.Number:
		if f, err := x.Float64(); err == nil {
			return f
		}
		return x.String()
	case nil:
		return ""
	}
	return v
}
