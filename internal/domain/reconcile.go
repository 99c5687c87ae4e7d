package domain

// SkipReason explains why a member's deduction was skipped.
type SkipReason string

const SkipInsufficientStock SkipReason = "insufficient_stock"

// Outcome reports what happened to one family member during reconciliation.
type Outcome struct {
	Role     string     `json:"role"`
	Category Category   `json:"category"`
	Size     string     `json:"size"`
	Deducted bool       `json:"deducted"`
	Reason   SkipReason `json:"reason,omitempty"`
}

// Reconcile applies an accepted order's selection to a stock matrix
// snapshot. Each role with a real size consumes exactly one unit of its
// category/size when stock is available; at zero the member is skipped with
// SkipInsufficientStock and the cell is left alone. Roles set to N/A
// produce no outcome.
//
// The function is pure: it works on a copy and never mutates its input, so
// calling it twice yields identical results. Preventing a double
// application is the caller's job — the order must still be pending when
// the accept transition fires. A fully skipped order is still acceptable;
// staff may fulfil from off-system stock.
func Reconcile(matrix StockMatrix, sel Selection) (StockMatrix, []Outcome) {
	work := matrix
	var outcomes []Outcome
	for _, role := range sel.Roles() {
		if !sel.Chosen(role) {
			continue
		}
		cat, ok := RoleCategory(role)
		if !ok {
			continue
		}
		size := sel[role]
		o := Outcome{Role: role, Category: cat, Size: size}
		if work.Get(cat, size) > 0 {
			work.Add(cat, size, -1)
			o.Deducted = true
		} else {
			o.Reason = SkipInsufficientStock
		}
		outcomes = append(outcomes, o)
	}
	return work, outcomes
}

// Deductions counts the deducted outcomes in a reconcile result.
func Deductions(outcomes []Outcome) int {
	n := 0
	for _, o := range outcomes {
		if o.Deducted {
			n++
		}
	}
	return n
}
