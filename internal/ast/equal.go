package ast

// Equal compares two forms structurally, ignoring spans. Blank runs are
// compared after collapsing, so a reparse of formatted output is equal to
// the original parse.
func Equal(a, b *Form) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind || a.Text != b.Text {
		return false
	}
	if clampBlanks(a.BlanksBefore) != clampBlanks(b.BlanksBefore) {
		return false
	}
	if len(a.Leading) != len(b.Leading) {
		return false
	}
	for i := range a.Leading {
		if a.Leading[i].Text != b.Leading[i].Text {
			return false
		}
	}
	if (a.Trailing == nil) != (b.Trailing == nil) {
		return false
	}
	if a.Trailing != nil && a.Trailing.Text != b.Trailing.Text {
		return false
	}
	if len(a.Elems) != len(b.Elems) {
		return false
	}
	for i := range a.Elems {
		if !Equal(a.Elems[i], b.Elems[i]) {
			return false
		}
	}
	return Equal(a.Sub, b.Sub)
}

// EqualDocuments compares two documents item by item.
func EqualDocuments(a, b *Document) bool {
	if a == nil || b == nil {
		return a == b
	}
	if len(a.Items) != len(b.Items) {
		return false
	}
	for i := range a.Items {
		if !Equal(a.Items[i], b.Items[i]) {
			return false
		}
	}
	return true
}

func clampBlanks(n int) int {
	if n > 1 {
		return 1
	}
	return n
}
