package lr

import "sreedamodar/models"

// Traders form geometry (portrait A4, mm). The Traders entity prints on plain
// white stock, so the template draws every rule itself. Physically a different
// form from the Transports stationery; the two sets of constants are
// intentionally unrelated.
const (
	tdPageW  = 210.0
	tdPageH  = 297.0
	tdMargin = 5.0

	tdCenter = tdPageW / 2

	tdEmblemCX = 22.0
	tdEmblemCY = 22.0
	tdEmblemR  = 10.0

	tdNameY    = 20.0
	tdServiceY = 26.0
	tdAddressY = 32.0
	tdPhonesY  = 37.0
	tdGSTINY   = 43.0
	tdRouteY   = 49.0
	tdHeaderRuleY = 52.0

	tdNoteBoxX = 12.0
	tdNoteBoxY = 56.0
	tdNoteBoxW = 80.0
	tdNoteBoxH = 24.0

	tdRiskCX = 160.0

	tdRouteBoxY  = 84.0
	tdRouteBoxH  = 12.0
	tdFromBoxX   = 12.0
	tdToBoxX     = 108.0
	tdRouteBoxW  = 90.0

	tdPartyY    = 104.0
	tdPartyGstY = 112.0
	tdConsignorX = 12.0
	tdConsigneeX = 108.0

	tdTableX = 12.0
	tdTableY = 122.0
	tdTableW = 186.0
	tdTableH = 86.0

	tdColArticles = 32.0
	tdColActual   = 110.0
	tdColCharged  = 136.0
	tdColAmount   = 162.0
	tdTableRight  = tdTableX + tdTableW // 198
	tdHeaderRowH  = 14.0

	tdRowStartOffset = 36.0
	tdRowStep        = 9.0
	tdRowRuleX       = tdColAmount - 60.0
	tdRowLabelX      = tdColAmount - 2.0
	tdRowValueX      = tdColAmount + 3.0

	tdWordsY = 214.0

	tdSideFieldX      = 12.0
	tdSideValueX      = 45.0
	tdSideRuleX2      = 95.0
	tdSideFieldStartY = 224.0
	tdSideFieldStep   = 9.0

	tdBankX = 112.0
	tdBankY = 220.0
	tdBankW = 86.0
	tdBankH = 30.0

	tdGSTNoteY = 272.0
	tdCRNoY    = 280.0
	tdCRDateY  = 287.0
	tdSignCX   = 160.0
)

// drawTraders reproduces the portrait white Traders LR, GST-aware.
func drawTraders(p *page, c *models.Consignment, profile *models.CompanyProfile) {
	p.draw(black)
	p.lineWidth(0.5)
	p.rect(tdMargin, tdMargin, tdPageW-2*tdMargin, tdPageH-2*tdMargin)

	// Ganesh emblem placeholder.
	p.lineWidth(0.2)
	p.circle(tdEmblemCX, tdEmblemCY, tdEmblemR)
	p.font("B", 8)
	p.textCenter(tdEmblemCX, tdEmblemCY+1, "SHREE")
	p.font("", 6)
	p.textCenter(tdEmblemCX, tdEmblemCY+5, "GANESHAYA NAMAHA")

	// Header.
	p.font("B", 22)
	p.color(black)
	p.textCenter(tdCenter, tdNameY, profile.DisplayName)
	p.font("", 7)
	p.textCenter(tdCenter, tdServiceY, profile.ServiceLabel)
	p.font("", 9)
	p.textCenter(tdCenter, tdAddressY, profile.Address)
	p.textCenter(tdCenter, tdPhonesY, phoneLine(profile))
	p.font("B", 9)
	p.textCenter(tdCenter, tdGSTINY, "GSTIN : "+profile.GSTIN)
	p.color(red)
	p.textCenter(tdCenter, tdRouteY, profile.RouteLabel)
	p.color(black)
	p.line(tdMargin, tdHeaderRuleY, tdPageW-tdMargin, tdHeaderRuleY)

	// Consignment note identity box.
	p.lineWidth(0.3)
	p.rect(tdNoteBoxX, tdNoteBoxY, tdNoteBoxW, tdNoteBoxH)
	p.font("B", 9)
	p.text(tdNoteBoxX+4, tdNoteBoxY+6, "CONSIGNMENT NOTE")
	p.text(tdNoteBoxX+4, tdNoteBoxY+14, "No.")
	p.color(red)
	p.font("B", 14)
	p.text(tdNoteBoxX+18, tdNoteBoxY+14, c.ConsignmentNo)
	p.color(black)
	p.font("B", 9)
	p.text(tdNoteBoxX+4, tdNoteBoxY+21, "DATE")
	p.font("", 9)
	p.text(tdNoteBoxX+20, tdNoteBoxY+21, docDateFull(c.Date))

	// Owner's-risk block.
	p.color(red)
	p.font("B", 10)
	p.textCenter(tdRiskCX, tdNoteBoxY+6, "AT OWNER'S RISK")
	p.textCenter(tdRiskCX, tdNoteBoxY+13, "NOT RESPONSIBLE FOR")
	p.textCenter(tdRiskCX, tdNoteBoxY+20, "LEAKAGE & DAMAGE")
	p.color(black)

	// Route boxes.
	p.font("", 10)
	p.rect(tdFromBoxX, tdRouteBoxY, tdRouteBoxW, tdRouteBoxH)
	p.text(tdFromBoxX+3, tdRouteBoxY+8, "From")
	p.text(tdFromBoxX+18, tdRouteBoxY+8, c.FromLocation)
	p.rect(tdToBoxX, tdRouteBoxY, tdRouteBoxW, tdRouteBoxH)
	p.text(tdToBoxX+3, tdRouteBoxY+8, "To")
	p.text(tdToBoxX+14, tdRouteBoxY+8, c.ToLocation)

	// Consignor / consignee with GST numbers.
	p.text(tdConsignorX, tdPartyY, "Consignor ......................................................")
	p.text(tdConsignorX+22, tdPartyY-1, c.CustomerName)
	p.text(tdConsigneeX, tdPartyY, "Consignee ......................................................")
	p.text(tdConsigneeX+22, tdPartyY-1, c.ConsigneeName)
	p.text(tdConsignorX, tdPartyGstY, "GST No. ......................................................")
	p.text(tdConsignorX+20, tdPartyGstY-1, strVal(c.CustomerGST))
	p.text(tdConsigneeX, tdPartyGstY, "GST No. ......................................................")
	p.text(tdConsigneeX+20, tdPartyGstY-1, strVal(c.ConsigneeGST))

	// Charges table grid: single amount column, no PAID/TO-PAY split.
	p.rect(tdTableX, tdTableY, tdTableW, tdTableH)
	p.line(tdColArticles, tdTableY, tdColArticles, tdTableY+tdTableH)
	p.line(tdColActual, tdTableY, tdColActual, tdTableY+tdTableH)
	p.line(tdColCharged, tdTableY, tdColCharged, tdTableY+tdTableH)
	p.line(tdColAmount, tdTableY, tdColAmount, tdTableY+tdTableH)
	p.line(tdTableX, tdTableY+tdHeaderRowH, tdTableRight, tdTableY+tdHeaderRowH)

	p.font("B", 8)
	p.text(tdTableX+2, tdTableY+5, "No. of")
	p.text(tdTableX+2, tdTableY+10, "Articles")
	p.text(tdColArticles+10, tdTableY+8, "Nature of Goods said to contain")
	p.text(tdColActual+2, tdTableY+5, "Actual")
	p.text(tdColActual+2, tdTableY+10, "Weight")
	p.text(tdColCharged+2, tdTableY+5, "Charged")
	p.text(tdColCharged+2, tdTableY+10, "Weight")
	p.text(tdColAmount+4, tdTableY+8, "AMOUNT Rs.")

	p.font("", 8)
	p.text(tdTableX+4, tdTableY+22, articlesCount(c))
	p.text(tdColArticles+4, tdTableY+22, c.GoodsDescription)
	p.text(tdColActual+2, tdTableY+22, c.Weight)
	p.text(tdColCharged+2, tdTableY+22, chargedWeight(c))

	// Charge rows with the GST lines and the Grand Total.
	rowY := tdTableY + tdRowStartOffset
	for _, row := range tradersRows(c) {
		p.line(tdRowRuleX, rowY, tdTableRight, rowY)
		p.font("B", 8)
		p.textRight(tdRowLabelX, rowY-3, row.label)
		p.font("", 8)
		p.text(tdRowValueX, rowY-3, row.value)
		rowY += tdRowStep
	}

	// Grand total in words.
	p.font("B", 8)
	p.text(tdTableX, tdWordsY, "Rupees :")
	p.font("", 8)
	p.text(tdTableX+16, tdWordsY, grandTotalWords(c))
	p.line(tdTableX, tdWordsY+2, tdTableRight, tdWordsY+2)

	// Side-panel fields.
	p.font("", 9)
	sideY := tdSideFieldStartY
	sideField := func(label, value string) {
		p.ruledField(tdSideFieldX, tdSideValueX, tdSideRuleX2, sideY, label, value)
		sideY += tdSideFieldStep
	}
	sideField("Value of Goods Rs.", strVal(c.ValueOfGoods))
	sideField("Invoice No. & Date", strVal(c.InvoiceNoDate))
	sideField("Delivery at :", strVal(c.DeliveryAt))
	sideField("Direct Unloading by Party", "")
	sideField("By Lorry No. :", c.VehicleNumber)

	// Bank panel.
	p.rect(tdBankX, tdBankY, tdBankW, tdBankH)
	p.font("B", 9)
	p.text(tdBankX+4, tdBankY+7, profile.BankName)
	p.font("", 9)
	p.text(tdBankX+4, tdBankY+12, profile.BankBranch)
	p.text(tdBankX+4, tdBankY+17, "A/c No. "+profile.AccountNumber)
	p.text(tdBankX+4, tdBankY+22, "IFSC Code : "+profile.IFSC)

	// Footer: GST declaration (configuration data), signatures.
	p.color(red)
	p.font("", 7)
	p.textCenter(tdCenter, tdGSTNoteY, profile.GSTNote)
	p.color(black)
	p.font("", 9)
	p.text(tdNoteBoxX, tdCRNoY, "C.R No. .........................")
	p.text(tdNoteBoxX, tdCRDateY, "Date : .........................")
	p.font("B", 9)
	p.textCenter(tdSignCX, tdCRNoY, "For "+profile.DisplayName)
	p.font("B", 8)
	p.textCenter(tdSignCX, tdCRDateY, "BOOKING CLERK / MANAGER")
}
