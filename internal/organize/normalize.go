package organize

import (
	"strings"

	"github.com/roach88/jointpanel/internal/ir"
)

// sideMarkers are stripped in this order; "left" and "right" must go before
// their single-letter forms.
var sideMarkers = []string{"left", "right", "l", "r"}

// Placeholder replaces each side marker under ir.PolicyPlaceholder.
const Placeholder = "~"

// Normalize lowercases name and strips side markers according to policy.
// Unknown policies behave like ir.PolicyPlaceholder.
//
//	Normalize("L_arm", ir.PolicyPlaceholder)  // "~_a~m"
//	Normalize("L_arm", ir.PolicyDelete)       // "_am"
func Normalize(name string, policy ir.NormalizePolicy) string {
	repl := Placeholder
	if policy == ir.PolicyDelete {
		repl = ""
	}

	key := strings.ToLower(name)
	for _, m := range sideMarkers {
		key = strings.ReplaceAll(key, m, repl)
	}
	return key
}

// groupByKey partitions joints by normalized name, keeping keys in
// first-seen order and joints in input order within a key.
func groupByKey(joints []ir.JointRecord, policy ir.NormalizePolicy) [][]ir.JointRecord {
	index := make(map[string]int, len(joints))
	var buckets [][]ir.JointRecord

	for _, j := range joints {
		key := Normalize(j.Name, policy)
		i, ok := index[key]
		if !ok {
			i = len(buckets)
			index[key] = i
			buckets = append(buckets, nil)
		}
		buckets[i] = append(buckets[i], j)
	}
	return buckets
}
