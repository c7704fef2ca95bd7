package candidate

// Frontier is a finite, unordered set of Candidates with no two members
// comparable under Dominates (spec.md §4.2).
type Frontier []*Candidate

// Insert returns a new Frontier equal to (f ∪ {c}) minus all dominated
// members, per spec.md §4.2:
//   - if some existing member dominates c, f is returned unchanged (c discarded);
//   - otherwise every member c dominates is dropped, then c is appended.
//
// On an exact tie (s.C == c.C && s.Q == c.Q) the existing member s
// dominates c under the non-strict rule above and is checked first, so
// ties keep whichever candidate was already in the frontier.
func (f Frontier) Insert(c *Candidate) Frontier {
	for _, s := range f {
		if Dominates(s, c) {
			return f
		}
	}

	out := make(Frontier, 0, len(f)+1)
	for _, s := range f {
		if !Dominates(c, s) {
			out = append(out, s)
		}
	}
	return append(out, c)
}

// MergeFrontiers combines two per-child frontiers already extended to
// and capped at the same internal node into one joint frontier, forming
// every cross-product pair and Pareto-pruning after each pairwise merge
// (spec.md §4.7). An empty input frontier short-circuits to the other
// one unchanged, which is what lets Subtree Merge be folded over an
// arbitrary number of children starting from an empty accumulator.
func MergeFrontiers(a, b Frontier) (Frontier, error) {
	if len(a) == 0 {
		return b, nil
	}
	if len(b) == 0 {
		return a, nil
	}

	var out Frontier
	for _, ca := range a {
		for _, cb := range b {
			merged, err := MergeCandidates(ca, cb)
			if err != nil {
				return nil, err
			}
			out = out.Insert(merged)
		}
	}
	return out, nil
}

// Best returns the Candidate with maximum Q, ties broken by smaller C,
// then by earliest insertion order (spec.md §4.8 step 3). It returns
// nil if f is empty.
func (f Frontier) Best() *Candidate {
	var best *Candidate
	for _, c := range f {
		if best == nil || c.Q > best.Q || (c.Q == best.Q && c.C < best.C) {
			best = c
		}
	}
	return best
}
