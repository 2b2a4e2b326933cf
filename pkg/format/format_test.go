package format

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPrice(t *testing.T) {
	cases := []struct {
		price float64
		unit  string
		want  string
	}{
		{450, "kg", "₹450 per kg"},
		{15000, "set", "₹15,000 per set"},
		{12.5, "", "₹12.5"},
		{0, "kg", "Price on request (kg)"},
		{-1, "", "Price on request"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, Price(tc.price, tc.unit, "en-IN"))
	}
	assert.Equal(t, "₹800 per kg", Price(800, "kg", "not a tag!"))
}

func TestStock(t *testing.T) {
	assert.Equal(t, StockStatus{InStock: true, Indicator: "✓", Text: "In Stock"}, Stock(5))
	assert.False(t, Stock(0).InStock)
	assert.Equal(t, "✗", Stock(-2).Indicator)
}

func TestTags(t *testing.T) {
	assert.Equal(t, []string{"#organic", "#wheat"}, Tags([]string{" organic ", "", "#wheat"}, 0))
	assert.Equal(t, []string{"#a"}, Tags([]string{"a", "b"}, 1))
	assert.Empty(t, Tags(nil, 0))
}

func TestFeatures(t *testing.T) {
	got := Features([]string{"✓ High yield", "- Disease resistant", "  ", "Certified organic"}, 0)
	assert.Equal(t, []string{"✓ High yield", "✓ Disease resistant", "✓ Certified organic"}, got)
	assert.Len(t, Features([]string{"a", "b", "c"}, 2), 2)
}

func TestPhone(t *testing.T) {
	assert.Equal(t, "+91 98765 43210", Phone("9876543210"))
	assert.Equal(t, "+91 98765 43210", Phone("+91-98765-43210"))
	assert.Equal(t, "+91 98765 43210", Phone("91 (98765) 43210"))
	assert.Equal(t, "12345", Phone("12345"))
	assert.Equal(t, "", Phone(""))
	assert.Equal(t, "919876543210", Digits("+91 98765-43210"))
}
