// Package ldes generates synthetic Linked Data Event Stream members and
// serializes them as a single TREE-profile page: a hypermedia block followed
// by tree:member markers, each marker immediately followed by that member's
// quads. PageReader streams the members back in document order.
package ldes
