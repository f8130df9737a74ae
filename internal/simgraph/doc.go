// Package simgraph turns a pairwise similarity matrix into one weighted, undirected
// graph per threshold and shapes each graph into a node/edge document for
// visualisation.
//
// Community detection and layout are not done here; see package cluster. This
// package owns which pairs become edges, how nodes are named, how community ids map
// to colours and what the final document looks like.
package simgraph
