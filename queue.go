package huffmantree

import (
	"container/heap"
)

// PriorityQueue is a min-heap of Nodes ordered by ascending Weight.
//
// Nodes of equal weight are popped in the order they were pushed.  The
// tie-break only affects the shape of the resulting tree, never the validity
// of its code; it exists so that the same input always yields the same tree.
//
// The zero value is an empty queue ready for use.
type PriorityQueue struct {
	h       nodeHeap
	nextSeq uint64
}

// Push inserts node into the queue.
func (pq *PriorityQueue) Push(node Node) {
	heap.Push(&pq.h, queueItem{node: node, seq: pq.nextSeq})
	pq.nextSeq++
}

// Pop removes and returns the node with the smallest weight.  If the queue is
// empty, Pop returns nil.
func (pq *PriorityQueue) Pop() Node {
	if pq.h.Len() == 0 {
		return nil
	}
	return heap.Pop(&pq.h).(queueItem).node
}

// Len returns the number of nodes in the queue.
func (pq *PriorityQueue) Len() int {
	return pq.h.Len()
}

// IsEmpty reports whether the queue holds no nodes.
func (pq *PriorityQueue) IsEmpty() bool {
	return pq.h.Len() == 0
}

// type queueItem + type nodeHeap {{{

type queueItem struct {
	node Node
	seq  uint64
}

type nodeHeap []queueItem

func (h nodeHeap) Len() int {
	return len(h)
}

func (h nodeHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
}

func (h nodeHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	aw, bw := a.node.Weight(), b.node.Weight()
	if aw != bw {
		return aw < bw
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	*h = append(*h, x.(queueItem))
}

func (h *nodeHeap) Pop() interface{} {
	old := *h
	last := len(old) - 1
	x := old[last]
	old[last] = queueItem{}
	*h = old[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
