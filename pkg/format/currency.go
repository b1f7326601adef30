// Package format holds the display formatters shared by the API responses
// and the PDF renderer. There are deliberately two currency formatters: the
// on-screen one uses the en-IN locale with the rupee glyph, while the PDF one
// sticks to a plain "Rs." prefix because the glyph mis-encodes in some PDF
// viewers. Both round to 2 decimals the same way, so the numbers never
// disagree between channels.
package format

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

var enIN = message.NewPrinter(language.MustParse("en-IN"))

// Rupees formats an amount for on-screen display, e.g. "₹1,23,456.78".
func Rupees(amount decimal.Decimal) string {
	f, _ := amount.Round(2).Float64()
	return enIN.Sprintf("₹%v", number.Decimal(f,
		number.MinFractionDigits(2),
		number.MaxFractionDigits(2),
	))
}

// RupeesPlain formats an amount for the PDF, e.g. "Rs. 1,23,456.78".
func RupeesPlain(amount decimal.Decimal) string {
	return "Rs. " + groupIndian(amount.StringFixed(2))
}

// DisplayDate renders an ISO "2006-01-02" date as "02 Jan 2006".
// Unparseable input is returned as-is.
func DisplayDate(iso string) string {
	d, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return d.Format("02 Jan 2006")
}

// groupIndian inserts Indian-style thousand separators into a fixed
// 2-decimal numeric string: the last three integer digits form one group and
// the remainder pairs up. "123456.78" -> "1,23,456.78"
func groupIndian(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, fracPart, _ := strings.Cut(s, ".")
	if len(intPart) <= 3 {
		return sign + intPart + "." + fracPart
	}
	head := intPart[:len(intPart)-3]
	tail := intPart[len(intPart)-3:]
	var groups []string
	for len(head) > 2 {
		groups = append([]string{head[len(head)-2:]}, groups...)
		head = head[:len(head)-2]
	}
	groups = append([]string{head}, groups...)
	return sign + strings.Join(groups, ",") + "," + tail + "." + fracPart
}
