// Package cluster runs community detection and force-directed layout over a
// simgraph.Graph using gonum. Both algorithms take an explicit seed, so the same
// graph always yields the same partition and coordinates.
package cluster
