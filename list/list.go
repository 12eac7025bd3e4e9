// Package list implements a singly-linked list that keeps track of
// its last node and its length.
package list

import (
	"fmt"
	"strings"
)

// List is a singly-linked list that also contains a reference to the
// last node for quick appends. A zero value List is empty and ready
// to use.
//
// Removing the last node requires a walk from the head because nodes
// have no backward links, so Pop is O(n).
type List[T any] struct {
	head, tail *Node[T]
	len        int
}

// Push adds a new node containing v to the tail of the list.
func (ls *List[T]) Push(v T) {
	n := ls.tail.insert()
	n.Val = v
	ls.tail = n

	if ls.head == nil {
		ls.head = n
	}
	ls.len++
}

// Pop removes the tail node from the list and returns it. It returns
// nil if the list is empty.
func (ls *List[T]) Pop() *Node[T] {
	if ls.len == 0 {
		return nil
	}

	n := ls.tail
	if ls.head == ls.tail {
		ls.head = nil
		ls.tail = nil
		ls.len--
		return n
	}

	prev := ls.head
	for prev.next != ls.tail {
		prev = prev.next
	}
	prev.next = nil
	ls.tail = prev
	ls.len--

	return n
}

// Get returns the node at index i, counting from zero at the head. It
// returns nil if i is out of range.
func (ls *List[T]) Get(i int) *Node[T] {
	switch {
	case i < 0 || i >= ls.len:
		return nil
	case i == 0:
		return ls.head
	case i == ls.len-1:
		return ls.tail
	default:
		return ls.walk(i)
	}
}

// Delete removes the node at index i and returns it. It returns nil,
// leaving the list untouched, if i is out of range.
func (ls *List[T]) Delete(i int) *Node[T] {
	if i < 0 || i >= ls.len {
		return nil
	}

	if i == 0 {
		n := ls.head
		ls.head = n.next
		if ls.head == nil {
			ls.tail = nil
		}
		ls.len--
		n.next = nil
		return n
	}

	prev := ls.walk(i - 1)
	n := prev.next
	prev.next = n.next
	if n == ls.tail {
		ls.tail = prev
	}
	ls.len--

	n.next = nil
	return n
}

// IsEmpty returns true if the list has no nodes.
func (ls *List[T]) IsEmpty() bool {
	return ls.len == 0
}

// Len returns the number of nodes in the list.
func (ls *List[T]) Len() int {
	return ls.len
}

// String renders the values of the list from head to tail separated
// by arrows, such as "1 -> 2 -> 3".
func (ls *List[T]) String() string {
	var sb strings.Builder
	for cur := ls.head; cur != nil; cur = cur.next {
		if cur != ls.head {
			sb.WriteString(" -> ")
		}
		fmt.Fprint(&sb, cur.Val)
	}
	return sb.String()
}

func (ls *List[T]) walk(i int) *Node[T] {
	cur := ls.head
	for range i {
		cur = cur.next
	}
	return cur
}

// Node is a node of a [List]. Nodes returned by [List.Pop] and
// [List.Delete] are detached and their Next method returns nil.
type Node[T any] struct {
	Val  T
	next *Node[T]
}

// Next returns the node following n, or nil if n is the last one.
func (n *Node[T]) Next() *Node[T] {
	return n.next
}

func (n *Node[T]) insert() *Node[T] {
	if n == nil {
		return new(Node[T])
	}

	n.next = &Node[T]{next: n.next}
	return n.next
}
