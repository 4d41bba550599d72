package domain

import "sort"

// SortRows canonicalizes row order with two successive stable passes.
//
// Pass 1 groups matched offsetting transfer legs: two rows with the same date
// whose amounts negate each other are ordered larger amount first. Pass 2
// orders rows sharing a transaction id by descending amount, keeping each id
// group contiguous and internally amount-descending. The passes must stay
// separate and in this order; a single combined comparator produces a
// different observable ordering.
func SortRows(rows []Row) {
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := &rows[i], &rows[j]
		if a.Date == b.Date && a.Amount.Equal(b.Amount.Neg()) {
			return a.Amount.GreaterThan(b.Amount)
		}
		return false
	})
	sort.SliceStable(rows, func(i, j int) bool {
		a, b := &rows[i], &rows[j]
		if a.TransactionID == b.TransactionID {
			return a.Amount.GreaterThan(b.Amount)
		}
		return false
	})
}
