// Package item defines the shared (attribute, value) vocabulary used by
// coverage, trie, specialist, heuristic, lgdt, and dl85: an Item is a test
// "attribute = value", and an Itemset is a canonicalized set of Items that
// never contains two branches on the same attribute.
package item
