package summary

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/moneymap/moneymap-backend/internal/domain/ledger"
	"github.com/moneymap/moneymap-backend/internal/domain/models"
	"github.com/moneymap/moneymap-backend/internal/presentation/helpers"
	presentationProtocols "github.com/moneymap/moneymap-backend/internal/presentation/protocols"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type ExportLedgerController struct {
	Store *ledger.Store
}

func NewExportLedgerController(store *ledger.Store) *ExportLedgerController {
	return &ExportLedgerController{
		Store: store,
	}
}

// Handle renders the three collections into one workbook, a sheet per
// collection.
func (c *ExportLedgerController) Handle(r presentationProtocols.HttpRequest) *presentationProtocols.HttpResponse {
	userId, errResponse := helpers.GetUserId(r)
	if errResponse != nil {
		return errResponse
	}

	user, err := c.Store.Snapshot(userId)
	if err != nil {
		return helpers.CreateErrorResponse(err)
	}

	file, err := buildWorkbook(user)
	if err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when building the export file",
		}, http.StatusInternalServerError)
	}

	buf := new(bytes.Buffer)
	if err := file.Write(buf); err != nil {
		return helpers.CreateResponse(&presentationProtocols.ErrorResponse{
			Error: "an error occurred when writing the export file",
		}, http.StatusInternalServerError)
	}

	return &presentationProtocols.HttpResponse{
		Body:        io.NopCloser(buf),
		StatusCode:  http.StatusOK,
		ContentType: xlsxContentType,
	}
}

func buildWorkbook(user *models.User) (*excelize.File, error) {
	file := excelize.NewFile()

	if err := writeBillsSheet(file, user.Bills); err != nil {
		return nil, err
	}
	if err := writeInvestmentsSheet(file, user.Investments); err != nil {
		return nil, err
	}
	if err := writeSpendingsSheet(file, user.Spendings); err != nil {
		return nil, err
	}

	if err := file.DeleteSheet("Sheet1"); err != nil {
		return nil, err
	}

	return file, nil
}

func writeBillsSheet(file *excelize.File, bills []models.Bill) error {
	if _, err := file.NewSheet("Bills"); err != nil {
		return err
	}
	headers := []any{"Title", "Amount Needed", "Amount Deposited", "Due Date"}
	if err := file.SetSheetRow("Bills", "A1", &headers); err != nil {
		return err
	}
	for i, bill := range bills {
		row := []any{bill.Title, bill.AmountNeeded, bill.AmountDeposited, bill.DueDate}
		cell := fmt.Sprintf("A%d", i+2)
		if err := file.SetSheetRow("Bills", cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeInvestmentsSheet(file *excelize.File, investments []models.Investment) error {
	if _, err := file.NewSheet("Investments"); err != nil {
		return err
	}
	headers := []any{"Title", "Amount Needed", "Amount Deposited"}
	if err := file.SetSheetRow("Investments", "A1", &headers); err != nil {
		return err
	}
	for i, investment := range investments {
		row := []any{investment.Title, investment.AmountNeeded, investment.AmountDeposited}
		cell := fmt.Sprintf("A%d", i+2)
		if err := file.SetSheetRow("Investments", cell, &row); err != nil {
			return err
		}
	}
	return nil
}

func writeSpendingsSheet(file *excelize.File, spendings []models.Spending) error {
	if _, err := file.NewSheet("Spendings"); err != nil {
		return err
	}
	headers := []any{"Title", "Amount Deposited"}
	if err := file.SetSheetRow("Spendings", "A1", &headers); err != nil {
		return err
	}
	for i, spending := range spendings {
		row := []any{spending.Title, spending.AmountDeposited}
		cell := fmt.Sprintf("A%d", i+2)
		if err := file.SetSheetRow("Spendings", cell, &row); err != nil {
			return err
		}
	}
	return nil
}
