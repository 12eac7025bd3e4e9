// Package dsa provides small generic containers: a FIFO [Queue], a
// LIFO [Stack] and a two-tier [PriorityQueue]. A singly-linked list
// lives in the list subpackage.
//
// None of the containers are safe for concurrent use. Callers that
// share one between goroutines must guard it with their own lock.
//
// Operations that have nothing to return, such as removing from an
// empty container, report that with a false second return rather
// than panicking.
package dsa
