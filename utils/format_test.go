package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatINR(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "₹0"},
		{5, "₹5"},
		{999, "₹999"},
		{1000, "₹1,000"},
		{12345, "₹12,345"},
		{123456, "₹1,23,456"},
		{1234567, "₹12,34,567"},
		{12345678, "₹1,23,45,678"},
		{4300.5, "₹4,300.5"},
		{-1500, "-₹1,500"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatINR(tc.in), "FormatINR(%v)", tc.in)
	}
}

func TestFormatScreenDate(t *testing.T) {
	assert.Equal(t, "14 Feb 2026", FormatScreenDate("2026-02-14"))
	assert.Equal(t, "01 Jan 2025", FormatScreenDate("2025-01-01"))
	// Unparseable input comes back unchanged rather than failing.
	assert.Equal(t, "not-a-date", FormatScreenDate("not-a-date"))
	assert.Equal(t, "", FormatScreenDate(""))
}
