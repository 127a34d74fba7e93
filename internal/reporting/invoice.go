package reporting

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// TaxRate is the fixed VAT applied to every invoice.
var TaxRate = decimal.RequireFromString("0.20")

var taxedFactor = decimal.NewFromInt(1).Add(TaxRate)

type InvoiceMode string

const (
	// InvoiceItemized bills the sum of consultation costs.
	InvoiceItemized InvoiceMode = "itemized"
	// InvoiceManual bills supplied doctor fees plus medicines.
	InvoiceManual InvoiceMode = "manual"
)

type Party struct {
	Nom       string `json:"nom"`
	Adresse   string `json:"adresse"`
	Telephone string `json:"telephone,omitempty"`
	Email     string `json:"email,omitempty"`
	NIF       string `json:"nif,omitempty"`
}

type InvoiceLine struct {
	Date    string              `json:"date"`
	Employe string              `json:"employe"`
	Medecin string              `json:"medecin"`
	Motif   string              `json:"motif"`
	Cout    decimal.NullDecimal `json:"cout"`
}

// ManualAmounts replaces the itemized subtotal.
type ManualAmounts struct {
	Honoraires  decimal.Decimal
	Medicaments decimal.Decimal
}

type InvoiceOptions struct {
	Numero   string
	IssuedAt time.Time
	Client   Party
	Provider Party
	Manual   *ManualAmounts
}

type Invoice struct {
	Numero      string           `json:"numero"`
	Date        string           `json:"date"`
	Periode     string           `json:"periode"`
	Mode        InvoiceMode      `json:"mode"`
	Client      Party            `json:"client"`
	Prestataire Party            `json:"prestataire"`
	Lignes      []InvoiceLine    `json:"lignes"`
	Honoraires  *decimal.Decimal `json:"honoraires,omitempty"`
	Medicaments *decimal.Decimal `json:"medicaments,omitempty"`
	SousTotal   decimal.Decimal  `json:"sousTotal"`
	TVA         decimal.Decimal  `json:"tva"`
	Total       decimal.Decimal  `json:"total"`
}

// InvoiceNumber returns the default number "FACT-YYYY-MM" for t.
func InvoiceNumber(t time.Time) string {
	return fmt.Sprintf("FACT-%04d-%02d", t.Year(), int(t.Month()))
}

// Totals returns tax = subtotal*0.20 and total = subtotal*1.20.
func Totals(subtotal decimal.Decimal) (tax, total decimal.Decimal) {
	return subtotal.Mul(TaxRate), subtotal.Mul(taxedFactor)
}

func BuildInvoice(r Report, opts InvoiceOptions) Invoice {
	numero := opts.Numero
	if numero == "" {
		numero = InvoiceNumber(opts.IssuedAt)
	}

	lines := make([]InvoiceLine, 0, len(r.ExportRows))
	for _, row := range r.ExportRows {
		lines = append(lines, InvoiceLine{
			Date:    row.Date.In(r.Period.location()).Format(LabelLayout),
			Employe: row.Employe,
			Medecin: row.Medecin,
			Motif:   row.Motif,
			Cout:    row.Cout,
		})
	}

	inv := Invoice{
		Numero:      numero,
		Date:        opts.IssuedAt.Format(LabelLayout),
		Periode:     r.Period.Label(),
		Mode:        InvoiceItemized,
		Client:      opts.Client,
		Prestataire: opts.Provider,
		Lignes:      lines,
		SousTotal:   r.Stats.TotalRevenue,
	}

	if opts.Manual != nil {
		honoraires := opts.Manual.Honoraires
		medicaments := opts.Manual.Medicaments
		inv.Mode = InvoiceManual
		inv.Honoraires = &honoraires
		inv.Medicaments = &medicaments
		inv.SousTotal = honoraires.Add(medicaments)
	}

	inv.TVA, inv.Total = Totals(inv.SousTotal)

	return inv
}
