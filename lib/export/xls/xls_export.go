package xlsexport

import (
	"bytes"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"

	reportapimodels "hr-crm-backend/models/api/report"
)

type Provider interface {
	ExportRevenueReport(report reportapimodels.RevenueReport) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

var revenueHeaders = []string{"Month", "Currency", "Revenue", "Commission", "Contracts"}

func (i impl) ExportRevenueReport(report reportapimodels.RevenueReport) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close the workbook")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, revenueHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write the header row")
	}
	if len(report.Rows) != 0 {
		row, err = writeRevenueData(f, sheet, report.Rows, row)
		if err != nil {
			return nil, errors.Wrap(err, "failed to write the data rows")
		}
	}
	f.SetSheetName(sheet, "Revenue")
	return f.WriteToBuffer()
}

func writeRevenueData(f *excelize.File, sheet string, rows []reportapimodels.RevenueRow, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(revenueHeaders), len(rows)+1); err != nil {
		return row, err
	}
	for _, item := range rows {
		row++
		col := 1
		if err := writeColumn(f, sheet, col, row, item.Month); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.Currency); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.Revenue); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.Commission); err != nil {
			return row, err
		}

		col++
		if err := writeColumn(f, sheet, col, row, item.Contracts); err != nil {
			return row, err
		}
	}
	return row, nil
}
