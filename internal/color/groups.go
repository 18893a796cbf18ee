package color

import (
	"errors"
	"fmt"
	"strings"
)

// GroupCount is the number of LED groups driven by the STM32 controller.
const GroupCount = 4

// ErrGroupCount indicates a request with a number of colors other than 1 or 4.
var ErrGroupCount = errors.New("either 1 or 4 color values must be specified")

// GroupSet holds the colors of the four LED groups in hardware order.
type GroupSet [GroupCount]Color

// ExpandGroups turns 1 or 4 colors into a full GroupSet. A single color is
// broadcast to all groups; four colors map to groups 0..3 in input order.
func ExpandGroups(colors []Color) (GroupSet, error) {
	var gs GroupSet
	switch len(colors) {
	case 1:
		for i := range gs {
			gs[i] = colors[0]
		}
	case GroupCount:
		copy(gs[:], colors)
	default:
		return GroupSet{}, fmt.Errorf("%w, got %d", ErrGroupCount, len(colors))
	}
	return gs, nil
}

// ParseGroups parses 1 or 4 hex tokens into a GroupSet. The first failing
// token aborts the parse.
func ParseGroups(tokens []string) (GroupSet, error) {
	colors := make([]Color, 0, len(tokens))
	for _, tok := range tokens {
		c, err := ParseHex(tok)
		if err != nil {
			return GroupSet{}, err
		}
		colors = append(colors, c)
	}
	return ExpandGroups(colors)
}

// Hex returns the four 8-digit hex tokens of the set in group order.
func (gs GroupSet) Hex() []string {
	out := make([]string, GroupCount)
	for i, c := range gs {
		out[i] = c.Hex()
	}
	return out
}

func (gs GroupSet) String() string {
	return strings.Join(gs.Hex(), " ")
}
