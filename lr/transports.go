package lr

import (
	"strings"

	"sreedamodar/models"
)

// Transports form geometry (landscape A4, mm). The numbers mirror the green
// preprinted stationery; change them only against a physical form.
const (
	tpPageW  = 297.0
	tpPageH  = 210.0
	tpMargin = 5.0

	tpSidebarW     = 70.0
	tpSidebarRight = tpMargin + tpSidebarW // 75
	tpMainCenter   = (tpSidebarRight + tpPageW) / 2

	tpTopNoticeY = 12.0
	tpNameY      = 25.0
	tpAddressY   = 32.0

	tpMonogramY    = 25.0
	tpEmblemCX     = 35.0
	tpEmblemCY     = 45.0
	tpEmblemR      = 15.0

	tpSideFieldX      = 10.0
	tpSideValueX      = 40.0
	tpSideRuleX2      = 65.0
	tpSideFieldStartY = 85.0
	tpSideFieldStep   = 12.0

	tpBankY = 175.0
	tpBankH = 30.0

	tpNoteBoxX = 80.0
	tpNoteBoxY = 40.0
	tpNoteBoxW = 60.0
	tpNoteBoxH = 25.0

	tpRiskCX = 170.0

	tpRouteBoxX  = 215.0
	tpRouteBoxW  = 72.0
	tpRouteBoxH  = 12.0
	tpFromBoxY   = 42.0
	tpToBoxY     = 60.0
	tpRouteLblX  = 205.0
	tpRouteValX  = 220.0

	tpPartyY    = 80.0
	tpPartyGstY = 95.0

	tpTableX = 80.0
	tpTableY = 100.0
	tpTableW = 212.0
	tpTableH = 85.0

	// Column rules inside the charges table.
	tpColArticles = 100.0
	tpColWeight   = 185.0
	tpColCharged  = 200.0
	tpColAmount   = 215.0
	tpAmountSplit = 250.0 // PAID / TO-PAY divider
	tpPaidPaise   = 235.0
	tpToPayPaise  = 275.0
	tpTableRight  = tpTableX + tpTableW // 292

	tpRowStartOffset = 40.0
	tpRowStep        = 8.0
	tpRowLabelX      = 213.0
	tpPaidValX       = 220.0
	tpToPayValX      = 255.0

	tpFooterNoticeY = 190.0
	tpCRNoY         = 195.0
	tpCRDateY       = 202.0
	tpSignCX        = 240.0
)

// drawTransports reproduces the landscape green Transports LR.
func drawTransports(p *page, c *models.Consignment, profile *models.CompanyProfile) {
	// Green page wash and outer border.
	p.fill(formFill)
	p.rectFill(0, 0, tpPageW, tpPageH)
	p.draw(formRule)
	p.lineWidth(0.5)
	p.rect(tpMargin, tpMargin, tpPageW-2*tpMargin, tpPageH-2*tpMargin)

	// Top notices and phone strip.
	p.font("", 8)
	p.color(red)
	p.text(80, tpTopNoticeY, "KINDLY INSURE YOUR GOODS FOR ANY CLAIMS")
	p.textCenter(160, tpTopNoticeY, "SUBJECT TO BANGALORE JURISDICTION")
	p.textRight(285, tpTopNoticeY, phoneLine(profile))

	// Header.
	p.font("B", 28)
	p.color(black)
	p.textCenter(tpMainCenter, tpNameY, profile.DisplayName)
	p.font("B", 10)
	p.textCenter(tpMainCenter, tpAddressY, profile.Address)

	// Sidebar: monogram, anniversary emblem, ruled fields, bank panel.
	p.draw(black)
	p.rect(tpMargin, tpMargin, tpSidebarW, tpPageH-2*tpMargin)
	p.font("B", 24)
	p.textCenter(tpEmblemCX, tpMonogramY, monogram(profile.ShortName))
	p.lineWidth(0.2)
	p.circle(tpEmblemCX, tpEmblemCY, tpEmblemR)
	p.font("B", 14)
	p.textCenter(tpEmblemCX, 43, "50")
	p.font("B", 8)
	p.textCenter(tpEmblemCX, 48, "YEARS")
	p.textCenter(tpEmblemCX, 55, "Anniversary")
	p.textCenter(tpEmblemCX, 65, "1969 - 2025")

	p.font("", 9)
	sideY := tpSideFieldStartY
	sideField := func(label, value string) {
		p.ruledField(tpSideFieldX, tpSideValueX, tpSideRuleX2, sideY, label, value)
		sideY += tpSideFieldStep
	}
	sideField("Value of Goods Rs.", strVal(c.ValueOfGoods))
	sideField("Invoice No. & Date", strVal(c.InvoiceNoDate))
	sideField("Delivery at :", strVal(c.DeliveryAt))
	sideField("Direct Unloading by Party", "")
	sideField("By Lorry No. :", c.VehicleNumber)

	p.rect(tpMargin, tpBankY, tpSidebarW, tpBankH)
	p.font("B", 9)
	p.text(tpSideFieldX, tpBankY+7, profile.BankName)
	p.font("", 9)
	p.text(tpSideFieldX, tpBankY+12, profile.BankBranch)
	p.text(tpSideFieldX, tpBankY+17, "A/c No. "+profile.AccountNumber)
	p.text(tpSideFieldX, tpBankY+22, "IFSC Code : "+profile.IFSC)

	// Consignment note identity box.
	p.rect(tpNoteBoxX, tpNoteBoxY, tpNoteBoxW, tpNoteBoxH)
	p.font("B", 9)
	p.text(85, 45, "CONSIGNMENT NOTE")
	p.text(85, 55, "No.")
	p.color(red)
	p.font("B", 14)
	p.text(110, 55, c.ConsignmentNo)
	p.color(black)
	p.font("B", 9)
	p.text(85, 62, "DATE ......................... 202")
	p.text(100, 61, docDateShort(c.Date))

	// Owner's-risk block.
	p.color(red)
	p.font("B", 10)
	p.textCenter(tpRiskCX, 45, "AT OWNER'S RISK")
	p.textCenter(tpRiskCX, 52, "NOT RESPONSIBLE FOR")
	p.textCenter(tpRiskCX, 59, "LEAKAGE & DAMAGE")
	p.textCenter(tpRiskCX, 68, "GOODS COPY")
	p.color(black)

	// Route boxes.
	p.rect(tpRouteBoxX, tpFromBoxY, tpRouteBoxW, tpRouteBoxH)
	p.text(tpRouteLblX, tpFromBoxY+8, "From")
	p.text(tpRouteValX, tpFromBoxY+8, c.FromLocation)
	p.rect(tpRouteBoxX, tpToBoxY, tpRouteBoxW, tpRouteBoxH)
	p.text(tpRouteLblX, tpToBoxY+8, "To")
	p.text(tpRouteValX, tpToBoxY+8, c.ToLocation)

	// Consignor / consignee with GST numbers.
	p.font("", 10)
	p.text(80, tpPartyY, "Consignor .................................................................................")
	p.text(100, tpPartyY-1, c.CustomerName)
	p.text(185, tpPartyY, "Consignee .................................................................................")
	p.text(205, tpPartyY-1, c.ConsigneeName)
	p.text(80, tpPartyGstY, "GST No. .................................................................................")
	p.text(100, tpPartyGstY-1, strVal(c.CustomerGST))
	p.text(185, tpPartyGstY, "GST No. .................................................................................")
	p.text(205, tpPartyGstY-1, strVal(c.ConsigneeGST))

	// Charges table grid.
	p.lineWidth(0.3)
	p.rect(tpTableX, tpTableY, tpTableW, tpTableH)
	p.line(tpColArticles, tpTableY, tpColArticles, tpTableY+tpTableH)
	p.line(tpColWeight, tpTableY, tpColWeight, tpTableY+tpTableH)
	p.line(tpColCharged, tpTableY, tpColCharged, tpTableY+15)
	p.line(tpColAmount, tpTableY, tpColAmount, tpTableY+tpTableH)
	p.line(tpColAmount, tpTableY+15, tpTableRight, tpTableY+15)
	p.line(tpAmountSplit, tpTableY+15, tpAmountSplit, tpTableY+tpTableH)
	p.line(tpPaidPaise, tpTableY+22, tpPaidPaise, tpTableY+tpTableH)
	p.line(tpToPayPaise, tpTableY+22, tpToPayPaise, tpTableY+tpTableH)

	p.font("B", 8)
	p.text(82, tpTableY+5, "No. of")
	p.text(82, tpTableY+10, "Articles")
	p.text(110, tpTableY+8, "Nature of Goods said to contain")
	p.text(187, tpTableY+5, "Actual")
	p.text(187, tpTableY+10, "Weight")
	p.text(202, tpTableY+5, "Charged")
	p.text(202, tpTableY+10, "Weight")
	p.text(240, tpTableY+10, "FREIGHT AMOUNT")
	p.text(225, tpTableY+20, "PAID")
	p.text(265, tpTableY+20, "TO-PAY")
	p.text(220, tpTableY+28, "Rs.")
	p.text(240, tpTableY+28, "P.")
	p.text(255, tpTableY+28, "Rs.")
	p.text(280, tpTableY+28, "P.")

	p.font("", 8)
	p.text(85, tpTableY+25, articlesCount(c))
	p.text(105, tpTableY+25, c.GoodsDescription)
	p.text(187, tpTableY+25, c.Weight)
	p.text(202, tpTableY+25, chargedWeight(c))

	// Charge rows, drawn as ruled lines up the amount block.
	rowY := tpTableY + tpRowStartOffset
	for _, row := range transportsRows(c) {
		p.line(tpColAmount, rowY, tpTableRight, rowY)
		p.font("B", 8)
		p.textRight(tpRowLabelX, rowY-3, row.label)
		p.font("", 8)
		if row.paid != "" {
			p.text(tpPaidValX, rowY-3, row.paid)
		}
		if row.toPay != "" {
			p.text(tpToPayValX, rowY-3, row.toPay)
		}
		rowY += tpRowStep
	}

	// Footer.
	p.color(red)
	p.font("", 9)
	p.textCenter(120, tpFooterNoticeY, "Service Tax to be Paid by Consignor / Consignee")
	p.color(black)
	p.text(180, tpCRNoY, "C.R No. .........................")
	p.text(180, tpCRDateY, "Date : .........................")
	p.font("B", 9)
	p.textCenter(tpSignCX, tpFooterNoticeY, "For "+profile.DisplayName)
	p.font("B", 8)
	p.textCenter(tpSignCX, tpCRDateY, "BOOKING CLERK / MANAGER")
}

// phoneLine joins the profile's contact numbers for the header strip.
func phoneLine(profile *models.CompanyProfile) string {
	nums := make([]string, 0, len(profile.Phones))
	for _, ph := range profile.Phones {
		nums = append(nums, ph.Number)
	}
	return strings.Join(nums, " / ")
}

// monogram spaces the short name letters out, "SDT" -> "S D T".
func monogram(short string) string {
	return strings.Join(strings.Split(short, ""), " ")
}
