package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractAmounts(t *testing.T) {
	extractor := NewQuoteExtractorService()

	tests := []struct {
		name string
		text string
		want []float64
	}{
		{
			name: "typical rental quote",
			text: "Base rate $55.00/day, taxes & fees $36.30, total due $201.30",
			want: []float64{201.30, 55, 36.30},
		},
		{
			name: "thousands separator",
			text: "Grand total: $1,234.56 (deposit $1,000)",
			want: []float64{1234.56, 1000},
		},
		{
			name: "duplicates collapse",
			text: "$50 ferry + $50 return",
			want: []float64{50},
		},
		{
			name: "space after dollar sign",
			text: "Estimated total $ 150.75",
			want: []float64{150.75},
		},
		{
			name: "bare numbers ignored",
			text: "roughly 420 miles at 30 mpg",
			want: []float64{},
		},
		{
			name: "no amounts",
			text: "call us for pricing",
			want: []float64{},
		},
		{
			name: "empty input",
			text: "",
			want: []float64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractor.ExtractAmounts(tt.text)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractAmounts_CapsResultCount(t *testing.T) {
	extractor := NewQuoteExtractorService()

	text := "$1 $2 $3 $4 $5 $6 $7 $8 $9 $10"
	got := extractor.ExtractAmounts(text)

	assert.Len(t, got, MaxQuoteAmounts)
	// Largest first after the cap.
	assert.Equal(t, 10.0, got[0])
	assert.Equal(t, 3.0, got[len(got)-1])
}
