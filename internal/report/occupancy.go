package report

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"tablero/internal/service"
)

var occupancyColumns = []string{"Time", "Booked Seats", "Total Seats", "Available Seats"}

// WriteOccupancyWorkbook renders one sheet per location with a header row and
// one row per interval, and writes the xlsx to w.
func WriteOccupancyWorkbook(w io.Writer, date string, locations []service.LocationOccupancy) error {
	f := excelize.NewFile()
	defer f.Close()

	for i, loc := range locations {
		sheet := sheetName(fmt.Sprintf("%s %s", loc.Name, date))
		if i == 0 {
			f.SetSheetName("Sheet1", sheet)
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return fmt.Errorf("create sheet %s: %w", sheet, err)
			}
		}

		for col, name := range occupancyColumns {
			cell, err := excelize.CoordinatesToCellName(col+1, 1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, name); err != nil {
				return fmt.Errorf("write header: %w", err)
			}
		}

		for row, interval := range loc.Intervals {
			values := []any{interval.Time, interval.BookedSeats, interval.TotalSeats, interval.AvailableSeats}
			for col, v := range values {
				cell, err := excelize.CoordinatesToCellName(col+1, row+2)
				if err != nil {
					return err
				}
				if err := f.SetCellValue(sheet, cell, v); err != nil {
					return fmt.Errorf("write row: %w", err)
				}
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

// sheetName enforces Excel's 31-character sheet name limit.
func sheetName(name string) string {
	if len(name) > 31 {
		return name[:31]
	}
	return name
}
