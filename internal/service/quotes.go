package service

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// MaxQuoteAmounts caps how many extracted amounts are returned.
const MaxQuoteAmounts = 8

// dollarAmount matches currency-looking tokens such as $55, $1,234.56 or
// $ 150.00. Amounts without a dollar sign are deliberately ignored.
var dollarAmount = regexp.MustCompile(`\$\s?(\d{1,3}(?:,\d{3})*(?:\.\d{1,2})?|\d+(?:\.\d{1,2})?)`)

// QuoteExtractor defines the interface for the paste-a-quote helper.
type QuoteExtractor interface {
	// ExtractAmounts pulls dollar amounts out of pasted free text.
	ExtractAmounts(text string) []float64
}

// QuoteExtractorService implements QuoteExtractor as a best-effort heuristic:
// it exists to save the user retyping numbers from a rental or lodging quote,
// nothing more. Tokens that fail to parse are skipped silently, duplicates
// collapse, and the result is sorted descending and capped. It is input
// assistance, not a parser with correctness guarantees.
type QuoteExtractorService struct{}

// NewQuoteExtractorService creates a new QuoteExtractorService.
func NewQuoteExtractorService() *QuoteExtractorService {
	return &QuoteExtractorService{}
}

// ExtractAmounts pulls distinct dollar amounts out of pasted free text,
// largest first, at most MaxQuoteAmounts of them.
func (s *QuoteExtractorService) ExtractAmounts(text string) []float64 {
	matches := dollarAmount.FindAllStringSubmatch(text, -1)

	seen := make(map[float64]bool, len(matches))
	amounts := make([]float64, 0, len(matches))

	for _, m := range matches {
		raw := strings.ReplaceAll(m[1], ",", "")
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			continue
		}
		if seen[v] {
			continue
		}
		seen[v] = true
		amounts = append(amounts, v)
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(amounts)))

	if len(amounts) > MaxQuoteAmounts {
		amounts = amounts[:MaxQuoteAmounts]
	}

	return amounts
}
