package finance

import (
	"github.com/vyaparhub/bahikhata-api/internal/domain/entity"
	"github.com/vyaparhub/bahikhata-api/internal/domain/enum"
	"github.com/vyaparhub/bahikhata-api/pkg/money"
)

// Net GST position labels. Payable means GST is owed to the tax authority;
// a negative net is an input-tax-credit position carried forward.
const (
	GSTPositionPayable = "Payable"
	GSTPositionCredit  = "Input Tax Credit"
)

// GSTSummary aggregates output and input GST over a date-filtered invoice set.
type GSTSummary struct {
	OutputGST float64 `json:"output_gst"`
	InputGST  float64 `json:"input_gst"`
	NetGST    float64 `json:"net_gst"`
	Position  string  `json:"position"`
}

// SummarizeGST computes output GST (sales), input GST (purchases) and the net
// position over invoices falling in the inclusive [from, to] range. from and
// to are YYYY-MM-DD strings; an empty string leaves that side unbounded.
func SummarizeGST(invoices []entity.Invoice, from, to string) GSTSummary {
	var output, input float64
	for _, inv := range invoices {
		if !InDateRange(DateKey(inv.Date), from, to) {
			continue
		}
		switch inv.Type {
		case enum.InvoiceTypeSale:
			output += inv.TotalGST
		case enum.InvoiceTypePurchase:
			input += inv.TotalGST
		}
	}

	output = money.Round2(output)
	input = money.Round2(input)
	net := money.Round2(output - input)

	position := GSTPositionPayable
	if net < 0 {
		position = GSTPositionCredit
	}

	return GSTSummary{
		OutputGST: output,
		InputGST:  input,
		NetGST:    net,
		Position:  position,
	}
}

// InDateRange reports whether a YYYY-MM-DD date falls within the inclusive
// [from, to] range. Comparison is lexicographic on the date strings, which
// matches chronological order for this form; empty bounds are open.
func InDateRange(date, from, to string) bool {
	if from != "" && date < from {
		return false
	}
	if to != "" && date > to {
		return false
	}
	return true
}
