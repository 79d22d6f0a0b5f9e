package detail

import "github.com/appengine-ltd/itemdetail/internal/data"

// Gate decides whether the highlighted entry may open the detail window.
type Gate func(highlighted *data.Entry) bool

// AlwaysEligible is the gate for generic lists.
func AlwaysEligible(*data.Entry) bool { return true }

// RequireEntry rejects blank selections (empty slots, the "none" row).
func RequireEntry(highlighted *data.Entry) bool { return highlighted != nil }

func IsEligible(g Gate, highlighted *data.Entry) bool {
	if g == nil {
		return AlwaysEligible(highlighted)
	}
	return g(highlighted)
}
