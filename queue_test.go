package huffmantree

import (
	"testing"
)

func TestPriorityQueue_Empty(t *testing.T) {
	var pq PriorityQueue
	if !pq.IsEmpty() {
		t.Errorf("new queue is not empty")
	}
	if node := pq.Pop(); node != nil {
		t.Errorf("expected nil from empty Pop, got %#v", node)
	}
	if pq.Len() != 0 {
		t.Errorf("expected Len() == 0, got %d", pq.Len())
	}
}

func TestPriorityQueue_Order(t *testing.T) {
	var pq PriorityQueue
	pq.Push(NewLeaf('a', 5))
	pq.Push(NewLeaf('b', 2))
	pq.Push(NewLeaf('c', 9))
	pq.Push(NewLeaf('d', 2))
	pq.Push(NewInternal(NewLeaf('e', 1), NewLeaf('f', 1)))

	if pq.Len() != 5 {
		t.Fatalf("expected Len() == 5, got %d", pq.Len())
	}

	// equal weights pop in push order: b, d, then the internal node
	expectSymbols := []Symbol{'b', 'd', InvalidSymbol, 'a', 'c'}
	for index, expect := range expectSymbols {
		node := pq.Pop()
		if node == nil {
			t.Fatalf("Pop #%d returned nil", index)
		}
		actual := InvalidSymbol
		if leaf, ok := node.(*Leaf); ok {
			actual = leaf.Symbol()
		}
		if actual != expect {
			t.Errorf("Pop #%d: expected %s, got %s", index, expect, actual)
		}
	}
	if !pq.IsEmpty() {
		t.Errorf("queue not empty after popping everything")
	}
	if node := pq.Pop(); node != nil {
		t.Errorf("expected nil from empty Pop, got %#v", node)
	}
}
