package selectors

import "selectorhub/internal/domain"

// Intersect returns the selectors present in every set. Order always follows
// the first set; membership is pointer identity. With a single input the
// input itself is returned.
func Intersect(sets ...[]*domain.Selector) []*domain.Selector {
	switch len(sets) {
	case 0:
		return []*domain.Selector{}
	case 1:
		return sets[0]
	case 2:
		return intersect2(sets[0], sets[1])
	}
	acc := sets[0]
	for _, next := range sets[1:] {
		acc = intersect2(acc, next)
	}
	return acc
}

func intersect2(a, b []*domain.Selector) []*domain.Selector {
	in := make(map[*domain.Selector]struct{}, len(b))
	for _, sel := range b {
		in[sel] = struct{}{}
	}
	out := make([]*domain.Selector, 0, len(a))
	for _, sel := range a {
		if _, ok := in[sel]; ok {
			out = append(out, sel)
		}
	}
	return out
}
