package serviceImp

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/burnashoff2016/Yandex-AI/pkg/generate/types"
)

var planExportHeader = []string{"День", "Дата", "Тема", "Канал", "Заголовок", "Текст", "CTA", "Хештеги", "Оценка"}

// ExportPlanXLSX renders a content plan into an XLSX workbook, one row
// per planned post.
func ExportPlanXLSX(items []types.ContentPlanItem) ([]byte, error) {
	x := excelize.NewFile()
	defer x.Close()

	const sheet = "Контент-план"
	x.SetSheetName("Sheet1", sheet)

	for col, title := range planExportHeader {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := x.SetCellValue(sheet, cell, title); err != nil {
			return nil, err
		}
	}

	for i, item := range items {
		row := []any{
			item.Day,
			item.Date,
			item.Topic,
			item.Channel,
			item.Draft.Headline,
			item.Draft.Body,
			item.Draft.CTA,
			strings.Join(item.Draft.Hashtags, " "),
			item.Draft.Score,
		}
		for col, v := range row {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := x.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	if err := x.SetColWidth(sheet, "C", "F", 40); err != nil {
		return nil, fmt.Errorf("set column width: %w", err)
	}

	var buf bytes.Buffer
	if err := x.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
