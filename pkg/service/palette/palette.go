package palette

import (
	"math"

	"github.com/bogun-lab/facildash/pkg/domain/model"
	"github.com/bogun-lab/facildash/pkg/domain/types"
)

// Highlight is the color reserved for the single most common facility
// type of a region.
const Highlight = types.ColorHex("#FF0000")

// Blues is the gradient used for every non-maximum facility type,
// ordered darkest to lightest so that higher ranks read darker.
var Blues = []types.ColorHex{
	"#08306B",
	"#08519C",
	"#2171B5",
	"#4292C6",
	"#6BAED6",
	"#9ECAE1",
	"#C6DBEF",
	"#DEEBF7",
	"#F7FBFF",
}

// Assign maps each facility type of a region's result set to a display
// color. stats must already be sorted descending by count, the order
// the aggregator produces. The first row gets the highlight color; the
// rest sample the blue gradient evenly from darkest to lightest, so the
// ramp stays monotonic no matter how many types there are.
func Assign(stats []model.TypeStat) map[types.FacilityType]types.ColorHex {
	colors := make(map[types.FacilityType]types.ColorHex, len(stats))
	if len(stats) == 0 {
		return colors
	}

	colors[stats[0].FacilityType] = Highlight

	rest := stats[1:]
	for i, st := range rest {
		colors[st.FacilityType] = Blues[gradientIndex(i, len(rest))]
	}
	return colors
}

// gradientIndex spreads m remaining rows across the gradient. The
// single-remainder case is handled on its own: the general formula
// divides by m-1, which is zero there.
func gradientIndex(i, m int) int {
	if m <= 1 {
		return 0
	}
	idx := int(math.Round(float64(i) * float64(len(Blues)-1) / float64(m-1)))
	if idx < 0 {
		return 0
	}
	if idx > len(Blues)-1 {
		return len(Blues) - 1
	}
	return idx
}
