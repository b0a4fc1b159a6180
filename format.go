package chart

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// FormatValue formats v for a value label using the digit grouping and
// decimal mark of tag. Integral values print without decimals, others keep
// at most two.
func FormatValue(tag language.Tag, v float64) string {
	p := message.NewPrinter(tag)
	if v == math.Trunc(v) {
		return p.Sprint(number.Decimal(v, number.MaxFractionDigits(0)))
	}
	return p.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}

// FormatPercent formats a percentage in [0, 100] with one decimal at most.
func FormatPercent(tag language.Tag, pct float64) string {
	p := message.NewPrinter(tag)
	return p.Sprint(number.Percent(pct/100, number.MaxFractionDigits(1)))
}
