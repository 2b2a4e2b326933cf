// Package format renders catalog values (prices, stock, tags, phone numbers)
// for display in notifications and the CLI.
package format

import (
	"regexp"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	PriceOnRequest = "Price on request"
	unitSeparator  = " per "
)

// Price renders price as rupees grouped for locale (e.g. "en-IN"), followed
// by " per <unit>" when unit is set. Zero or negative prices render as
// "Price on request".
func Price(price float64, unit, locale string) string {
	if price <= 0 {
		if unit != "" {
			return PriceOnRequest + " (" + unit + ")"
		}
		return PriceOnRequest
	}
	tag, err := language.Parse(locale)
	if err != nil {
		tag = language.MustParse("en-IN")
	}
	p := message.NewPrinter(tag)
	s := "₹" + p.Sprint(number.Decimal(price, number.MaxFractionDigits(2)))
	if unit == "" {
		return s
	}
	return s + unitSeparator + unit
}

// StockStatus is the display state of a stock level.
type StockStatus struct {
	InStock   bool
	Indicator string
	Text      string
}

// Stock reports whether stock is positive, with a check or cross indicator.
func Stock(stock int) StockStatus {
	if stock <= 0 {
		return StockStatus{Indicator: "✗", Text: "Out of Stock"}
	}
	return StockStatus{InStock: true, Indicator: "✓", Text: "In Stock"}
}

// Tags trims tags, drops empty ones and prefixes each with "#". max <= 0
// keeps all.
func Tags(tags []string, max int) []string {
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		if !strings.HasPrefix(tag, "#") {
			tag = "#" + tag
		}
		out = append(out, tag)
	}
	return limit(out, max)
}

var bulletPrefix = regexp.MustCompile(`^[✓✗×•\-*]\s*`)

// Features trims features, strips any existing bullet and prefixes each with
// "✓ ". max <= 0 keeps all.
func Features(features []string, max int) []string {
	out := make([]string, 0, len(features))
	for _, f := range features {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		out = append(out, "✓ "+bulletPrefix.ReplaceAllString(f, ""))
	}
	return limit(out, max)
}

func limit(s []string, max int) []string {
	if max > 0 && len(s) > max {
		return s[:max]
	}
	return s
}

// Phone formats 10-digit Indian numbers, with or without the 91 prefix, as
// "+91 XXXXX XXXXX". Anything else is returned unchanged.
func Phone(phone string) string {
	digits := Digits(phone)
	switch {
	case len(digits) == 10:
		return "+91 " + digits[:5] + " " + digits[5:]
	case len(digits) == 12 && strings.HasPrefix(digits, "91"):
		return "+91 " + digits[2:7] + " " + digits[7:]
	}
	return phone
}

// Digits keeps only the ASCII digits of s.
func Digits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
