package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/abdelrahmanemad10/GYM/internal/models"
)

const historySheet = "Progress"

// HistoryWorkbook writes a user's progress history into an xlsx workbook
func HistoryWorkbook(entries []models.ProgressEntry) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(historySheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to delete default sheet: %w", err)
	}

	headers := []string{"Date", "Day", "Exercise", "Weight (kg)", "Progress (kg)"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(historySheet, cell, h); err != nil {
			return nil, fmt.Errorf("failed to set header: %w", err)
		}
	}

	for row, entry := range entries {
		values := []interface{}{entry.Date, entry.DayLabel, entry.Exercise, entry.Weight, entry.Progress}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(historySheet, cell, v); err != nil {
				return nil, fmt.Errorf("failed to set cell: %w", err)
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
