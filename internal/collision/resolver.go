// Package collision pairs up overlapping entities of two collections and
// applies a removal policy to every overlapping pair.
package collision

import "github.com/vovakirdan/tui-asteroids/internal/physics"

// Policy selects which members of an overlapping pair are removed.
type Policy int

const (
	RemoveBoth Policy = iota
	RemoveLeft
	RemoveRight
	RemoveNone
)

func (p Policy) String() string {
	switch p {
	case RemoveBoth:
		return "remove-both"
	case RemoveLeft:
		return "remove-left"
	case RemoveRight:
		return "remove-right"
	case RemoveNone:
		return "remove-none"
	default:
		return "unknown"
	}
}

func (p Policy) removesLeft() bool  { return p == RemoveBoth || p == RemoveLeft }
func (p Policy) removesRight() bool { return p == RemoveBoth || p == RemoveRight }

// Side is one collection taking part in a resolution pass. Remove is called
// once for each of its entities the policy removes; it may be nil when the
// policy never removes from this side.
type Side[T physics.Collidable] struct {
	Items  []T
	Remove func(T)
}

// Resolve tests every left entity against every right entity and returns the
// number of resolved pairs. credit runs once per resolved pair, in scan order.
//
// Entities whose Invulnerable method reports true are skipped. An entity
// removed by an earlier pair takes part in no further pairs of the pass, and
// removals are applied after the scan so Items may alias live collections.
func Resolve[A, B physics.Collidable](left Side[A], right Side[B], policy Policy, credit func(A, B)) int {
	goneL := make([]bool, len(left.Items))
	goneR := make([]bool, len(right.Items))
	resolved := 0

	for i, a := range left.Items {
		if guarded(a) {
			continue
		}
		for j, b := range right.Items {
			if goneL[i] {
				break
			}
			if goneR[j] || guarded(b) {
				continue
			}
			if !a.Bounds().Intersects(b.Bounds()) {
				continue
			}
			resolved++
			goneL[i] = policy.removesLeft()
			goneR[j] = policy.removesRight()
			if credit != nil {
				credit(a, b)
			}
		}
	}

	applyRemovals(left, goneL)
	applyRemovals(right, goneR)
	return resolved
}

func applyRemovals[T physics.Collidable](s Side[T], gone []bool) {
	if s.Remove == nil {
		return
	}
	var victims []T
	for i, g := range gone {
		if g {
			victims = append(victims, s.Items[i])
		}
	}
	for _, v := range victims {
		s.Remove(v)
	}
}

func guarded(e any) bool {
	g, ok := e.(physics.Guarded)
	return ok && g.Invulnerable()
}
