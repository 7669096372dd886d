// Package dtree provides the binary decision tree container of spec.md
// §3/§4.C: a dense, index-addressed array of nodes, root at index 0,
// child index 0 meaning "no child". Each node carries a tagged NodeData
// payload — either a Leaf{Class, Error} or an Internal{Test, Error}.
package dtree
