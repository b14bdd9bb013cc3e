// Package naming picks collision-free profile names.
//
// A base name that prefixes any stored name switches to suffix mode: the
// result is base-NN where NN is one more than the highest index already in
// use, rendered with at least two digits. A stored name equal to the base
// counts as index 1; base-<digits> counts as its number; any other name
// sharing the prefix (base-01abc, baseline) forces suffix mode without
// contributing an index.
package naming
