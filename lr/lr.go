// Package lr renders Lorry Receipt documents. Each company entity has its own
// fixed-coordinate template mirroring its preprinted stationery; the two are
// kept as independent layout functions over a shared drawing toolkit rather
// than one parameterised renderer.
package lr

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/phpdave11/gofpdf"

	"sreedamodar/models"
	"sreedamodar/utils"
)

// Render lays one consignment out on the matching company form. It returns the
// PDF bytes and the download filename LR_<consignment_no>_<ShortName>.pdf.
// Optional fields render as empty strings and unparseable dates render blank;
// oversized text overlaps visually rather than failing, which is inherent to
// fixed-coordinate layout.
func Render(c *models.Consignment, profile *models.CompanyProfile) ([]byte, string, error) {
	doc := gofpdf.New(orientationFor(c.Company), "mm", "A4", "")
	// Pin the metadata timestamp and the catalog/font object ordering so the
	// same record always produces the same bytes.
	doc.SetCatalogSort(true)
	doc.SetCreationDate(creationStamp(c.Date))
	doc.AddPage()

	p := &page{pdf: doc}
	if c.Company == models.CompanyTraders {
		drawTraders(p, c, profile)
	} else {
		// Legacy records without a company field belong to Transports.
		drawTransports(p, c, profile)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, "", err
	}
	return buf.Bytes(), Filename(c, profile), nil
}

// Filename builds the download name for a consignment's LR.
func Filename(c *models.Consignment, profile *models.CompanyProfile) string {
	return fmt.Sprintf("LR_%s_%s.pdf", c.ConsignmentNo, profile.ShortName)
}

func orientationFor(company string) string {
	if company == models.CompanyTraders {
		return "P"
	}
	return "L"
}

func creationStamp(isoDate string) time.Time {
	if t, err := time.Parse("2006-01-02", isoDate); err == nil {
		return t
	}
	return time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)
}

// docDateShort formats an ISO date as DD/MM for the Transports form, which
// carries a preprinted "202_" year stub. Unparseable input renders blank.
func docDateShort(isoDate string) string {
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return ""
	}
	return t.Format("02/01")
}

// docDateFull formats an ISO date as DD/MM/YYYY for the Traders form.
func docDateFull(isoDate string) string {
	t, err := time.Parse("2006-01-02", isoDate)
	if err != nil {
		return ""
	}
	return t.Format("02/01/2006")
}

// amt renders a monetary value the way a ledger box is filled in: plain
// decimal digits, no symbol, no grouping.
func amt(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func strVal(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// chargedWeight falls back to the actual weight when no charged weight was
// entered.
func chargedWeight(c *models.Consignment) string {
	if c.ChargedWeight != nil && *c.ChargedWeight != "" {
		return *c.ChargedWeight
	}
	return c.Weight
}

// articlesCount defaults to "1" like the paper form.
func articlesCount(c *models.Consignment) string {
	if c.ArticlesCount != nil && *c.ArticlesCount != "" {
		return *c.ArticlesCount
	}
	return "1"
}

// grandTotal is the Traders-only total including GST. It is computed at render
// time and never persisted under that name.
func grandTotal(c *models.Consignment) float64 {
	return c.FreightTotal() + c.SGST + c.CGST
}

// grandTotalWords spells the Grand Total out for the Traders receipt line.
func grandTotalWords(c *models.Consignment) string {
	return utils.NumberToCurrencyWords(grandTotal(c))
}

// freightRow is one ruled line of the charges table: a right-aligned bold
// label and up to two value cells.
type freightRow struct {
	label string
	paid  string
	toPay string
}

// transportsRows lists the Transports charge rows bottom-up in form order.
// The TOTAL row shows the balance still to pay.
func transportsRows(c *models.Consignment) []freightRow {
	return []freightRow{
		{label: "Rate", toPay: amt(c.FreightAmount)},
		{label: "Handling", toPay: amt(c.HandlingCharges)},
		{label: "Halting", toPay: amt(c.HaltingCharges)},
		{label: "Advance", paid: amt(c.AdvancePaid)},
		{label: "G.C. Charge", toPay: amt(c.GCCharges)},
		{label: "TOTAL", toPay: amt(c.Balance())},
	}
}

// chargeRow is one line of the Traders charges table, which has a single
// amount column (no PAID/TO-PAY split).
type chargeRow struct {
	label string
	value string
}

func tradersRows(c *models.Consignment) []chargeRow {
	return []chargeRow{
		{label: "Rate", value: amt(c.FreightAmount)},
		{label: "Handling", value: amt(c.HandlingCharges)},
		{label: "Halting", value: amt(c.HaltingCharges)},
		{label: "SGST", value: amt(c.SGST)},
		{label: "CGST", value: amt(c.CGST)},
		{label: "Grand Total", value: amt(grandTotal(c))},
	}
}
