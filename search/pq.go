package search

import "github.com/beka-birhanu/maze-race/maze"

type pqItem struct {
	node         maze.Coordinate
	gScore       int
	fCost        int
	path         []maze.Coordinate
	indexInQueue int
}

// priorityQueue is a container/heap min-heap over fCost, with gScore as the
// tie-break so nodes closer to the goal are expanded first.
type priorityQueue []*pqItem

func (q priorityQueue) Len() int { return len(q) }

func (q priorityQueue) Less(i, j int) bool {
	if q[i].fCost != q[j].fCost {
		return q[i].fCost < q[j].fCost
	}
	return q[i].gScore < q[j].gScore
}

func (q priorityQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].indexInQueue = i
	q[j].indexInQueue = j
}

func (q *priorityQueue) Push(x any) {
	item := x.(*pqItem)
	item.indexInQueue = len(*q)
	*q = append(*q, item)
}

func (q *priorityQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}
