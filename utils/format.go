package utils

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// FormatINR renders an amount the way list and report screens show it: rupee
// symbol plus Indian-grouped digits, e.g. 1234567 -> "₹12,34,567". Zero and
// missing amounts render as "₹0". The LR document itself uses plain decimal
// strings instead; the two rules are not interchangeable.
func FormatINR(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	amount = math.Round(amount*100) / 100

	whole := int64(amount)
	out := "₹" + groupIndian(strconv.FormatInt(whole, 10))

	frac := strconv.FormatFloat(amount-float64(whole), 'f', 2, 64)
	if frac != "0.00" {
		out += strings.TrimRight(frac[1:], "0")
	}
	if neg {
		out = "-" + out
	}
	return out
}

// groupIndian inserts commas per the Indian numbering system: the last three
// digits form one group, everything above groups in twos.
func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	head := digits[:len(digits)-3]
	tail := digits[len(digits)-3:]

	var parts []string
	for len(head) > 2 {
		parts = append([]string{head[len(head)-2:]}, parts...)
		head = head[:len(head)-2]
	}
	parts = append([]string{head}, parts...)
	return strings.Join(parts, ",") + "," + tail
}

// FormatScreenDate turns an ISO YYYY-MM-DD string into the "02 Jan 2006" form
// used by list views. Unparseable input is returned unchanged.
func FormatScreenDate(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return t.Format("02 Jan 2006")
}
