package table

import (
	"sort"
	"strings"
	"time"
)

// SortSpec is a client-side sort applied to the rows of one page.
type SortSpec struct {
	Key        string `json:"key"`
	Descending bool   `json:"descending"`
}

// SortRows orders rows in place by the given column key. Values are
// compared by their natural type; mismatched or missing values sort
// last. The sort is stable so equal rows keep their server order.
func SortRows(rows []Row, spec SortSpec) {
	if spec.Key == "" {
		return
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i][spec.Key], rows[j][spec.Key]
		if spec.Descending {
			a, b = b, a
		}
		less, ok := compare(a, b)
		return ok && less
	})
}

// compare reports a < b and whether the pair was comparable.
func compare(a, b any) (bool, bool) {
	if a == nil || b == nil {
		// Missing values sort last.
		return a != nil && b == nil, true
	}

	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return strings.ToLower(av) < strings.ToLower(bv), true
		}
	case time.Time:
		if bv, ok := b.(time.Time); ok {
			return av.Before(bv), true
		}
	case int:
		if bv, ok := b.(int); ok {
			return av < bv, true
		}
	case int64:
		if bv, ok := b.(int64); ok {
			return av < bv, true
		}
	case float64:
		if bv, ok := b.(float64); ok {
			return av < bv, true
		}
	}

	return stringify(a) < stringify(b), true
}
