// Package starmap loads star map objects and links them into a hierarchy.
//
// Every object may name a parent and a jump destination by id. Parent links
// form a directed graph (dominikbraun/graph) that rejects cycles: the link
// that would close a cycle is dropped and logged. Links to unknown ids are
// logged and cleared.
package starmap
