// Package valueobject defines immutable domain value objects.
package valueobject

// FallbackTaxBucket is the bucket every unrecognized (or absent) tax
// category resolves to.
const FallbackTaxBucket = "Other Expenses"

// canonicalTaxBuckets lists the CRA-style expense buckets used for tax
// reporting, in display order.
var canonicalTaxBuckets = []string{
	"Advertising",
	"Insurance",
	"Interest & Bank Charges",
	"Repairs & Maintenance",
	"Management & Administration Fees",
	"Motor Vehicle Expenses",
	"Office Expenses",
	"Professional Fees",
	"Property Taxes",
	"Salaries Wages Benefits",
	"Travel",
	"Utilities",
	FallbackTaxBucket,
}

// TaxBucketTable maps free-text tax category names to canonical tax
// reporting buckets. It is built once at construction time and never
// mutated afterwards.
type TaxBucketTable struct {
	buckets []string
	known   map[string]struct{}
}

// NewTaxBucketTable builds the canonical tax bucket table.
func NewTaxBucketTable() *TaxBucketTable {
	known := make(map[string]struct{}, len(canonicalTaxBuckets))
	for _, b := range canonicalTaxBuckets {
		known[b] = struct{}{}
	}

	return &TaxBucketTable{
		buckets: canonicalTaxBuckets,
		known:   known,
	}
}

// Resolve maps a tax category name to its canonical bucket. Lookup is a
// case-sensitive exact match on the canonical display name; anything else,
// including the empty string, resolves to the fallback bucket. This is a
// total function with no error cases.
func (t *TaxBucketTable) Resolve(categoryName string) string {
	if _, ok := t.known[categoryName]; ok {
		return categoryName
	}
	return FallbackTaxBucket
}

// Buckets returns the canonical bucket names in display order.
func (t *TaxBucketTable) Buckets() []string {
	out := make([]string, len(t.buckets))
	copy(out, t.buckets)
	return out
}
