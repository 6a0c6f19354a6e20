package encode

import "sort"

// OtherLabel is the catch-all category assigned to every value outside the
// top-N most frequent ones.
const OtherLabel = "Other"

// CollapseTopN bounds the vocabulary of a categorical column: the n most
// frequent distinct values are preserved and everything else is rewritten
// to OtherLabel, so the derived one-hot width is at most n+1 regardless of
// the dataset snapshot. Frequency ties are broken by first-seen encounter
// order, keeping the result deterministic for a given input order.
//
// The returned kept slice lists the preserved labels in first-seen order.
func CollapseTopN(values []string, n int) (relabeled []string, kept []string) {
	counts := make(map[string]int)
	firstSeen := make(map[string]int)
	var distinct []string

	for i, v := range values {
		if _, seen := counts[v]; !seen {
			firstSeen[v] = i
			distinct = append(distinct, v)
		}
		counts[v]++
	}

	if n < 0 {
		n = 0
	}

	top := make([]string, len(distinct))
	copy(top, distinct)
	sort.SliceStable(top, func(i, j int) bool {
		if counts[top[i]] != counts[top[j]] {
			return counts[top[i]] > counts[top[j]]
		}
		return firstSeen[top[i]] < firstSeen[top[j]]
	})
	if len(top) > n {
		top = top[:n]
	}

	preserve := make(map[string]struct{}, len(top))
	for _, v := range top {
		preserve[v] = struct{}{}
	}

	// Report kept labels in first-seen order, not frequency order.
	for _, v := range distinct {
		if _, ok := preserve[v]; ok {
			kept = append(kept, v)
		}
	}

	relabeled = make([]string, len(values))
	for i, v := range values {
		if _, ok := preserve[v]; ok {
			relabeled[i] = v
		} else {
			relabeled[i] = OtherLabel
		}
	}

	return relabeled, kept
}
