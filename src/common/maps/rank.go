package maps

import (
	"fmt"

	"github.com/hjerpbakk/dipsbot/src/common/types"
)

const maxLabels = 26

// TopK truncates a ranked sequence to min(k, len) entries and assigns the
// labels A, B, C, ... by rank position. Pure; the only failures are bad
// arguments.
func TopK(ranked []types.RankedStation, k int) ([]types.LabelledStation, error) {
	if k <= 0 {
		return nil, fmt.Errorf("%w: result cap must be positive, got %d", ErrInvalidArgument, k)
	}
	if k > maxLabels {
		return nil, fmt.Errorf("%w: result cap %d exceeds the %d-letter label alphabet", ErrTooManyResults, k, maxLabels)
	}

	if k > len(ranked) {
		k = len(ranked)
	}

	labelled := make([]types.LabelledStation, k)
	for i := 0; i < k; i++ {
		labelled[i] = types.LabelledStation{
			Label:         rune('A' + i),
			RankedStation: ranked[i],
		}
	}

	return labelled, nil
}
