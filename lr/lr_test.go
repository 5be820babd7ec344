package lr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sreedamodar/models"
)

func transportsProfile() *models.CompanyProfile {
	for _, p := range models.DefaultProfiles() {
		if p.Code == models.CompanyTransports {
			return p
		}
	}
	return nil
}

func tradersProfile() *models.CompanyProfile {
	for _, p := range models.DefaultProfiles() {
		if p.Code == models.CompanyTraders {
			return p
		}
	}
	return nil
}

func sampleConsignment() *models.Consignment {
	gst := "29ABCDE1234F1Z5"
	return &models.Consignment{
		ConsignmentNo:    "1042",
		Company:          models.CompanyTransports,
		Date:             "2026-03-05",
		FromLocation:     "Bangalore",
		ToLocation:       "Chennai",
		CustomerName:     "Ravi Traders",
		CustomerGST:      &gst,
		ConsigneeName:    "Murthy & Co",
		GoodsDescription: "Machine parts",
		Weight:           "500",
		VehicleNumber:    "KA01AB1234",
		FreightAmount:    5000,
		HandlingCharges:  200,
		HaltingCharges:   0,
		GCCharges:        100,
		AdvancePaid:      1000,
		PaymentStatus:    models.PaymentPending,
	}
}

func TestRenderProducesPDF(t *testing.T) {
	pdf, name, err := Render(sampleConsignment(), transportsProfile())
	require.NoError(t, err)
	require.NotEmpty(t, pdf)
	assert.Equal(t, "%PDF", string(pdf[:4]))
	assert.Equal(t, "LR_1042_SDT.pdf", name)
}

func TestRenderTradersFilename(t *testing.T) {
	c := sampleConsignment()
	c.Company = models.CompanyTraders
	_, name, err := Render(c, tradersProfile())
	require.NoError(t, err)
	assert.Equal(t, "LR_1042_SDTraders.pdf", name)
}

// Any company value other than "traders", including none at all, must select
// the Transports template. Output is deterministic for a given record, so
// byte equality proves identical dispatch.
func TestDispatchDefaultsToTransports(t *testing.T) {
	base := sampleConsignment()
	base.Company = ""
	want, _, err := Render(base, transportsProfile())
	require.NoError(t, err)

	for _, company := range []string{"transports", "TRADERS", "Traders", "unknown", "x"} {
		c := sampleConsignment()
		c.Company = company
		got, _, err := Render(c, transportsProfile())
		require.NoError(t, err)
		assert.Equal(t, want, got, "company=%q should render the Transports template", company)
	}
}

func TestDispatchTradersDiffers(t *testing.T) {
	base := sampleConsignment()
	base.Company = ""
	transports, _, err := Render(base, transportsProfile())
	require.NoError(t, err)

	c := sampleConsignment()
	c.Company = models.CompanyTraders
	traders, _, err := Render(c, tradersProfile())
	require.NoError(t, err)
	assert.NotEqual(t, transports, traders)
}

// Both templates register two font variants; without a pinned catalog order
// gofpdf numbers the font objects by map iteration, so a single re-render is
// not enough to prove stability.
func TestRenderIsDeterministic(t *testing.T) {
	first, _, err := Render(sampleConsignment(), transportsProfile())
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, _, err := Render(sampleConsignment(), transportsProfile())
		require.NoError(t, err)
		require.Equal(t, first, again, "render %d differs", i)
	}

	traders := sampleConsignment()
	traders.Company = models.CompanyTraders
	firstTraders, _, err := Render(traders, tradersProfile())
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		again, _, err := Render(traders, tradersProfile())
		require.NoError(t, err)
		require.Equal(t, firstTraders, again, "traders render %d differs", i)
	}
}

func TestRenderUnparseableDateDoesNotFail(t *testing.T) {
	c := sampleConsignment()
	c.Date = "not-a-date"
	require.NotPanics(t, func() {
		_, _, err := Render(c, transportsProfile())
		require.NoError(t, err)
	})
}

func TestRenderTolerantOfMissingOptionals(t *testing.T) {
	c := &models.Consignment{ConsignmentNo: "7"}
	for _, profile := range models.DefaultProfiles() {
		c.Company = profile.Code
		pdf, _, err := Render(c, profile)
		require.NoError(t, err)
		require.NotEmpty(t, pdf)
	}
}

func TestDocDateFormats(t *testing.T) {
	assert.Equal(t, "05/03", docDateShort("2026-03-05"))
	assert.Equal(t, "05/03/2026", docDateFull("2026-03-05"))
	assert.Equal(t, "", docDateShort("not-a-date"))
	assert.Equal(t, "", docDateFull(""))
	assert.Equal(t, "", docDateShort("05-03-2026"))
}

func TestChargedWeightFallsBackToWeight(t *testing.T) {
	c := &models.Consignment{Weight: "500"}
	assert.Equal(t, "500", chargedWeight(c))

	empty := ""
	c.ChargedWeight = &empty
	assert.Equal(t, "500", chargedWeight(c))

	cw := "520"
	c.ChargedWeight = &cw
	assert.Equal(t, "520", chargedWeight(c))
}

func TestArticlesCountDefaultsToOne(t *testing.T) {
	c := &models.Consignment{}
	assert.Equal(t, "1", articlesCount(c))
	n := "12"
	c.ArticlesCount = &n
	assert.Equal(t, "12", articlesCount(c))
}

func TestAmt(t *testing.T) {
	assert.Equal(t, "0", amt(0))
	assert.Equal(t, "5300", amt(5300))
	assert.Equal(t, "4300.5", amt(4300.5))
	// No grouping and no symbol inside the document.
	assert.Equal(t, "1234567", amt(1234567))
}

func TestTransportsRows(t *testing.T) {
	c := sampleConsignment()
	rows := transportsRows(c)
	require.Len(t, rows, 6)

	assert.Equal(t, freightRow{label: "Rate", toPay: "5000"}, rows[0])
	assert.Equal(t, freightRow{label: "Handling", toPay: "200"}, rows[1])
	assert.Equal(t, freightRow{label: "Halting", toPay: "0"}, rows[2])
	assert.Equal(t, freightRow{label: "Advance", paid: "1000"}, rows[3])
	assert.Equal(t, freightRow{label: "G.C. Charge", toPay: "100"}, rows[4])
	// TOTAL shows the balance: 5300 - 1000.
	assert.Equal(t, freightRow{label: "TOTAL", toPay: "4300"}, rows[5])
}

func TestTradersRowsGrandTotal(t *testing.T) {
	c := sampleConsignment()
	c.Company = models.CompanyTraders
	c.SGST = 150
	c.CGST = 150

	rows := tradersRows(c)
	require.Len(t, rows, 6)
	assert.Equal(t, chargeRow{label: "SGST", value: "150"}, rows[3])
	assert.Equal(t, chargeRow{label: "CGST", value: "150"}, rows[4])
	// Grand Total includes GST on top of the freight total.
	assert.Equal(t, chargeRow{label: "Grand Total", value: "5600"}, rows[5])

	// FreightTotal itself must stay GST-free.
	assert.Equal(t, 5300.0, c.FreightTotal())
}

func TestGrandTotalWords(t *testing.T) {
	c := sampleConsignment()
	c.SGST = 150
	c.CGST = 150
	assert.Equal(t, "Five Thousand Six Hundred Rupees Only", grandTotalWords(c))
}
