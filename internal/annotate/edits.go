package annotate

import (
	"sort"
	"strings"
)

// Edit replaces content[Start:End] with Replacement
type Edit struct {
	Start       int
	End         int
	Replacement string
}

// Apply returns content with all edits applied. Edits are applied from the highest
// start offset down so earlier offsets stay valid; edits must not overlap.
func Apply(content string, edits []Edit) string {
	if len(edits) == 0 {
		return content
	}

	ordered := make([]Edit, len(edits))
	copy(ordered, edits)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Start > ordered[j].Start
	})

	result := content
	for _, e := range ordered {
		var b strings.Builder
		b.Grow(len(result) - (e.End - e.Start) + len(e.Replacement))
		b.WriteString(result[:e.Start])
		b.WriteString(e.Replacement)
		b.WriteString(result[e.End:])
		result = b.String()
	}
	return result
}
