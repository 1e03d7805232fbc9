// Package stcut enumerates (s,t) edge cuts and minimum (s,t) edge cuts
// of a directed graph via the Provan-Shier recursive search, driven by
// two pluggable pivot strategies: one over the dominator tree of the
// induced graph on V\S for all cuts, one over the SCC-contracted reverse
// residual graph's minimal active vertices for minimum cuts.
package stcut
