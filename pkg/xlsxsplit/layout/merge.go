package layout

import (
	"errors"
	"fmt"
	"sort"

	"github.com/ukaji3/xlsxsplit-go/pkg/xlsxsplit/models"
)

// MergePolicy decides what happens when a merged region overlaps one already declared.
type MergePolicy string

const (
	// MergeLastWins drops the earlier overlapping regions and keeps the new one.
	MergeLastWins MergePolicy = "last_wins"
	// MergeReject refuses the new region with ErrMergeConflict.
	MergeReject MergePolicy = "reject"
)

// ErrMergeConflict is returned under MergeReject when two merged regions overlap.
var ErrMergeConflict = errors.New("merged regions overlap")

// ParseMergePolicy parses a policy name; the empty string selects MergeLastWins.
func ParseMergePolicy(s string) (MergePolicy, error) {
	switch MergePolicy(s) {
	case "", MergeLastWins:
		return MergeLastWins, nil
	case MergeReject:
		return MergeReject, nil
	}
	return "", fmt.Errorf("invalid merge policy: %s (must be last_wins or reject)", s)
}

// MergeSet keeps the merged regions of one grid free of overlaps.
// Regions are indexed by the rows they cover, so a new region is only checked
// against regions sharing one of its rows.
type MergeSet struct {
	policy  MergePolicy
	regions []models.Region
	dropped []bool
	byRow   map[int][]int
	live    int
}

// NewMergeSet returns an empty set governed by policy.
func NewMergeSet(policy MergePolicy) *MergeSet {
	if policy == "" {
		policy = MergeLastWins
	}
	return &MergeSet{policy: policy, byRow: make(map[int][]int)}
}

// Add declares a region. Exact duplicates and single cells are ignored.
// It returns the regions removed to make room under MergeLastWins.
func (s *MergeSet) Add(r models.Region) ([]models.Region, error) {
	if r.SingleCell() {
		return nil, nil
	}

	var overlapping []int
	for row := r.R1; row <= r.R2; row++ {
		for _, i := range s.byRow[row] {
			if s.dropped[i] || containsIndex(overlapping, i) {
				continue
			}
			existing := s.regions[i]
			if existing == r {
				return nil, nil
			}
			if existing.Overlaps(r) {
				overlapping = append(overlapping, i)
			}
		}
	}
	sort.Ints(overlapping)

	if len(overlapping) > 0 && s.policy == MergeReject {
		return nil, fmt.Errorf("%w: %s and %s", ErrMergeConflict, s.regions[overlapping[0]], r)
	}

	var removed []models.Region
	for _, i := range overlapping {
		s.dropped[i] = true
		s.live--
		removed = append(removed, s.regions[i])
	}

	idx := len(s.regions)
	s.regions = append(s.regions, r)
	s.dropped = append(s.dropped, false)
	s.live++
	for row := r.R1; row <= r.R2; row++ {
		s.byRow[row] = append(s.byRow[row], idx)
	}
	return removed, nil
}

// Regions returns the declared regions in declaration order.
func (s *MergeSet) Regions() []models.Region {
	out := make([]models.Region, 0, s.live)
	for i, r := range s.regions {
		if !s.dropped[i] {
			out = append(out, r)
		}
	}
	return out
}

// Len returns the number of declared regions.
func (s *MergeSet) Len() int {
	return s.live
}

func containsIndex(idx []int, i int) bool {
	for _, v := range idx {
		if v == i {
			return true
		}
	}
	return false
}
