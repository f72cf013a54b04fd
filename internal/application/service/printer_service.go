package service

import (
	"context"
	"fmt"
	"log"

	"github.com/shopspring/decimal"

	"github.com/majidkambarath/restaurant-pos/internal/domain/entity"
	"github.com/majidkambarath/restaurant-pos/pkg/printer"
)

// PrinterService renders receipts and kitchen tickets to the thermal
// printer. The receipt value object is always returned so the SPA can
// render it when no hardware is attached.
type PrinterService struct {
	printer     printer.Printer
	sessions    *SessionService
	settings    *SettingsService
	printerType string
	width       int
}

// NewPrinterService creates a new printer service.
func NewPrinterService(
	p printer.Printer,
	sessions *SessionService,
	settings *SettingsService,
	printerType string,
	width int,
) *PrinterService {
	if width <= 0 {
		width = 48
	}
	return &PrinterService{
		printer:     p,
		sessions:    sessions,
		settings:    settings,
		printerType: printerType,
		width:       width,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// PrintLastReceipt prints the terminal's most recent submission. A KOT
// submission prints as a kitchen ticket, anything else as a customer
// receipt.
func (s *PrinterService) PrintLastReceipt(ctx context.Context, terminalID string) (*entity.Receipt, error) {
	receipt, err := s.sessions.LastReceipt(terminalID)
	if err != nil {
		return nil, err
	}

	settings, err := s.settings.GetSettings(ctx, terminalID)
	if err != nil {
		return nil, err
	}
	receipt.Header = entity.ReceiptHeader{
		Name:    settings.RestaurantName,
		TRN:     settings.TRN,
		Phone:   settings.Phone,
		Address: settings.Address,
	}
	receipt.Currency = settings.Currency

	var data []byte
	if receipt.KOT {
		data = s.formatKOT(receipt)
	} else {
		data = s.formatReceipt(receipt)
	}
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (order %s): %v", receipt.OrderNo, err)
		return receipt, fmt.Errorf("failed to print receipt: %w", err)
	}

	return receipt, nil
}

// TestPrint sends a test page to the printer.
func (s *PrinterService) TestPrint(ctx context.Context, terminalID string) (*entity.Receipt, error) {
	settings, err := s.settings.GetSettings(ctx, terminalID)
	if err != nil {
		return nil, err
	}

	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			Name:    settings.RestaurantName,
			TRN:     settings.TRN,
			Phone:   settings.Phone,
			Address: settings.Address,
		},
		OrderNo:   "TEST-001",
		TokenNo:   1,
		OrderType: "Dine-In",
		Currency:  settings.Currency,
		Items: []entity.ReceiptItem{
			{SlNo: 1, Name: "Test Item 1", Qty: decimal.NewFromInt(1),
				Rate: decimal.RequireFromString("10.00"), Amount: decimal.RequireFromString("10.00")},
			{SlNo: 2, Name: "Test Item 2", Qty: decimal.NewFromInt(2),
				Rate: decimal.RequireFromString("5.00"), Amount: decimal.RequireFromString("10.00")},
		},
		Totals: entity.OrderTotals{
			Subtotal:   decimal.RequireFromString("20.00"),
			VAT:        decimal.RequireFromString("1.00"),
			GrandTotal: decimal.RequireFromString("21.00"),
		},
	}

	if err := s.printer.Print(s.formatReceipt(receipt)); err != nil {
		return receipt, fmt.Errorf("test print failed: %w", err)
	}
	return receipt, nil
}

// formatReceipt converts a customer receipt into ESC/POS bytes.
func (s *PrinterService) formatReceipt(r *entity.Receipt) []byte {
	doc := printer.NewDocument(s.width)

	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text(r.Header.Name).
		SetFontSize(printer.FontNormal).
		SetBold(false)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.Text(r.Header.Phone)
	}
	if r.Header.TRN != "" {
		doc.TextF("TRN: %s", r.Header.TRN)
	}

	doc.SetAlign(printer.AlignLeft).
		Separator('-')

	doc.KeyValue("Order:", r.OrderNo).
		KeyValue("Token:", fmt.Sprintf("%d", r.TokenNo)).
		KeyValue("Type:", r.OrderType).
		KeyValue("Date:", r.Date+" "+r.Time)

	if r.TableNo != "" {
		doc.KeyValue("Table:", r.TableNo)
	}
	if r.Seats != "" {
		doc.KeyValue("Seats:", r.Seats)
	}
	if r.Customer != "" {
		doc.KeyValue("Customer:", r.Customer)
	}
	if r.Contact != "" {
		doc.KeyValue("Contact:", r.Contact)
	}
	if r.Staff != "" {
		doc.KeyValue("Delivery:", r.Staff)
	}

	doc.Separator('-')

	for _, item := range r.Items {
		doc.ItemLine(item.Qty.String(), item.Name, item.Amount.StringFixed(2))
		if item.Qty.GreaterThan(decimal.New(1, 0)) {
			doc.TextF("  @ %s each", item.Rate.StringFixed(2))
		}
	}

	doc.Separator('-')

	doc.KeyValue("Subtotal:", moneyLine(r.Currency, r.Totals.Subtotal))
	doc.KeyValue("VAT:", moneyLine(r.Currency, r.Totals.VAT))
	if r.Totals.Discount.IsPositive() {
		doc.KeyValue("Discount:", moneyLine(r.Currency, r.Totals.Discount))
	}
	doc.SetBold(true).
		KeyValue("TOTAL:", moneyLine(r.Currency, r.Totals.GrandTotal)).
		SetBold(false)

	if r.Remarks != "" {
		doc.Separator('-').
			TextF("Remarks: %s", r.Remarks)
	}

	doc.Separator('-').
		SetAlign(printer.AlignCenter).
		LineFeed().
		Text("Thank you, visit again!").
		LineFeed().
		SetAlign(printer.AlignLeft)

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}

// formatKOT converts a kitchen ticket into ESC/POS bytes. Only new and
// quantity-changed lines appear and no money amounts are printed.
func (s *PrinterService) formatKOT(r *entity.Receipt) []byte {
	doc := printer.NewDocument(s.width)

	doc.SetAlign(printer.AlignCenter).
		SetBold(true).
		SetFontSize(printer.FontDouble).
		Text("KITCHEN ORDER").
		SetFontSize(printer.FontNormal).
		SetBold(false).
		SetAlign(printer.AlignLeft).
		Separator('-')

	doc.KeyValue("Order:", r.OrderNo).
		KeyValue("Token:", fmt.Sprintf("%d", r.TokenNo)).
		KeyValue("Type:", r.OrderType).
		KeyValue("Time:", r.Time)

	if r.TableNo != "" {
		doc.KeyValue("Table:", r.TableNo)
	}
	if r.Seats != "" {
		doc.KeyValue("Seats:", r.Seats)
	}

	doc.Separator('-')

	for _, item := range r.Items {
		if item.OldQty.IsPositive() {
			doc.QtyChangeLine(item.Name, item.OldQty.String(), item.Qty.String())
		} else {
			doc.SetBold(true)
			doc.ItemLine(item.Qty.String(), item.Name, "")
			doc.SetBold(false)
		}
	}

	if r.Remarks != "" {
		doc.Separator('-').
			TextF("Remarks: %s", r.Remarks)
	}

	doc.FeedLines(3).
		PartialCut()

	return doc.Bytes()
}

func moneyLine(currency string, v decimal.Decimal) string {
	if currency == "" {
		return v.StringFixed(2)
	}
	return v.StringFixed(2) + " " + currency
}
