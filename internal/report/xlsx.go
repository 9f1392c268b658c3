package report

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"

	"docverify/internal/domain"
)

// BuildXLSX returns an XLSX workbook (as bytes) for a verification result:
// a summary block, the field comparison table, and the analysis sentence.
func BuildXLSX(res *domain.VerificationResult) ([]byte, error) {
	f := excelize.NewFile()
	const sheet = "Verification"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)
	if defaultIndex, _ := f.GetSheetIndex("Sheet1"); defaultIndex != -1 {
		_ = f.DeleteSheet("Sheet1")
	}

	setRow := func(row int, values ...interface{}) error {
		for i, v := range values {
			cell, err := excelize.CoordinatesToCellName(i+1, row)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return err
			}
		}
		return nil
	}

	if err := setRow(1, "Verification ID", res.VerificationID.String()); err != nil {
		return nil, err
	}
	if err := setRow(2, "Document Type", string(res.DocumentType)); err != nil {
		return nil, err
	}
	if err := setRow(3, "Verdict", string(res.Status)); err != nil {
		return nil, err
	}

	if err := setRow(5, "Field", "User Data", "Data From Document", "Status"); err != nil {
		return nil, err
	}
	row := 6
	for _, d := range res.Details {
		if err := setRow(row, d.Field, d.UserData, d.DataFromDocument, string(d.Status)); err != nil {
			return nil, err
		}
		row++
	}

	row++
	if err := setRow(row, "Analysis", res.Analysis); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("writing workbook: %w", err)
	}
	return buf.Bytes(), nil
}
