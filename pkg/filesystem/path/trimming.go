package path

import (
	"strings"

	"github.com/buildbarn/bb-pathname/pkg/util"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// TrimmingOption is a bitmask of normalization options that may be
// applied when converting a Path back to a string.
type TrimmingOption uint8

const (
	// TrimmingOptionEmptiness removes empty pathname components.
	TrimmingOptionEmptiness TrimmingOption = 1 << iota
	// TrimmingOptionSelf removes "." pathname components.
	TrimmingOptionSelf
	// TrimmingOptionParent collapses ".." pathname components.
	TrimmingOptionParent
)

// trimmingPredicate is a predicate that is attached to a single
// trimming option. Components for which keep() returns false are
// removed from the output.
type trimmingPredicate struct {
	option TrimmingOption
	name   string
	keep   func(c Component) bool
}

// trimmingPredicates contains the predicates of all trimming options,
// ordered by bit position.
var trimmingPredicates = [...]trimmingPredicate{
	{
		option: TrimmingOptionEmptiness,
		name:   "emptiness",
		keep:   func(c Component) bool { return c.kind != ComponentKindEmpty },
	},
	{
		option: TrimmingOptionSelf,
		name:   "self",
		keep:   func(c Component) bool { return c.kind != ComponentKindCurrent },
	},
	{
		// ".." components are never filtered. They are collapsed
		// while serializing.
		option: TrimmingOptionParent,
		name:   "parent",
		keep:   func(c Component) bool { return true },
	},
}

// Trimming is a set of trimming options. In addition to the bitmask of
// options that are set, it holds the list of predicates that belong to
// these options. Both are combined in lockstep by Union(),
// Intersection() and SymmetricDifference(), meaning they are always in
// agreement with each other.
//
// Trimmings are immutable.
type Trimming struct {
	options    TrimmingOption
	predicates []trimmingPredicate
}

func newSingleTrimming(option TrimmingOption) Trimming {
	for _, p := range trimmingPredicates {
		if p.option == option {
			return Trimming{
				options:    option,
				predicates: []trimmingPredicate{p},
			}
		}
	}
	panic("Unknown trimming option")
}

var (
	// NoTrimming causes a path to be converted to a string as is.
	NoTrimming = Trimming{}
	// TrimEmptiness causes empty pathname components to be removed.
	TrimEmptiness = newSingleTrimming(TrimmingOptionEmptiness)
	// TrimSelf causes "." pathname components to be removed.
	TrimSelf = newSingleTrimming(TrimmingOptionSelf)
	// TrimParent causes ".." pathname components to be collapsed
	// against a preceding item with an empty name.
	TrimParent = newSingleTrimming(TrimmingOptionParent)
)

func (t Trimming) hasPredicate(option TrimmingOption) bool {
	for _, p := range t.predicates {
		if p.option == option {
			return true
		}
	}
	return false
}

// combine the bitmask and the predicates of two trimmings. The keep
// function is evaluated both per bit and per predicate, indicating
// whether a member of one or both of the trimmings should be part of
// the result.
func (t Trimming) combine(other Trimming, keep func(inT, inOther bool) bool) Trimming {
	var result Trimming
	for _, p := range trimmingPredicates {
		if keep(t.options&p.option != 0, other.options&p.option != 0) {
			result.options |= p.option
		}
		if keep(t.hasPredicate(p.option), other.hasPredicate(p.option)) {
			result.predicates = append(result.predicates, p)
		}
	}
	return result
}

// Union returns a trimming that contains the options of both
// trimmings.
func (t Trimming) Union(other Trimming) Trimming {
	return t.combine(other, func(inT, inOther bool) bool { return inT || inOther })
}

// Intersection returns a trimming that only contains the options that
// are present in both trimmings.
func (t Trimming) Intersection(other Trimming) Trimming {
	return t.combine(other, func(inT, inOther bool) bool { return inT && inOther })
}

// SymmetricDifference returns a trimming that only contains the
// options that are present in exactly one of the trimmings.
func (t Trimming) SymmetricDifference(other Trimming) Trimming {
	return t.combine(other, func(inT, inOther bool) bool { return inT != inOther })
}

// Options returns the bitmask of options contained in the trimming.
func (t Trimming) Options() TrimmingOption {
	return t.options
}

// Contains returns true if all options of another trimming are also
// present in this trimming.
func (t Trimming) Contains(other Trimming) bool {
	return t.options&other.options == other.options
}

// IsEmpty returns true if the trimming contains no options.
func (t Trimming) IsEmpty() bool {
	return t.options == 0
}

// Equal returns true if both trimmings contain the same options.
func (t Trimming) Equal(other Trimming) bool {
	return t.options == other.options
}

// Keeps returns true if the component is accepted by all of the
// predicates of the trimming.
func (t Trimming) Keeps(c Component) bool {
	for _, p := range t.predicates {
		if !p.keep(c) {
			return false
		}
	}
	return true
}

func (t Trimming) collapsesParents() bool {
	return t.options&TrimmingOptionParent != 0
}

func (t Trimming) String() string {
	if len(t.predicates) == 0 {
		return "none"
	}
	names := make([]string, 0, len(t.predicates))
	for _, p := range t.predicates {
		names = append(names, p.name)
	}
	return strings.Join(names, "|")
}

// NewTrimmingFromNames creates a trimming containing the options with
// the provided names ("emptiness", "self" and "parent").
func NewTrimmingFromNames(names []string) (Trimming, error) {
	t := NoTrimming
	for _, name := range names {
		found := false
		for _, p := range trimmingPredicates {
			if p.name == name {
				t = t.Union(newSingleTrimming(p.option))
				found = true
				break
			}
		}
		if !found {
			return Trimming{}, status.Errorf(codes.InvalidArgument, "Unknown trimming option %#v", name)
		}
	}
	return t, nil
}

// MustNewTrimmingFromNames is identical to NewTrimmingFromNames,
// except that it panics upon failure.
func MustNewTrimmingFromNames(names ...string) Trimming {
	return util.Must(NewTrimmingFromNames(names))
}
