package simstate

import (
	"container/heap"

	"github.com/netsim-dev/netsim/internal/graph"
)

// scheduledPacket is one entry in the delivery queue: a packet due to
// arrive at arrival, with seq breaking ties by insertion order (§5
// "FIFO tie-breaking by insertion").
type scheduledPacket struct {
	pkt     graph.Packet
	dest    string
	arrival int64
	seq     int64
}

// scheduledQueue is a min-heap ordered by (arrival, seq).
type scheduledQueue []*scheduledPacket

func (q scheduledQueue) Len() int { return len(q) }
func (q scheduledQueue) Less(i, j int) bool {
	if q[i].arrival != q[j].arrival {
		return q[i].arrival < q[j].arrival
	}
	return q[i].seq < q[j].seq
}
func (q scheduledQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i] }
func (q *scheduledQueue) Push(x interface{}) { *q = append(*q, x.(*scheduledPacket)) }
func (q *scheduledQueue) Pop() interface{} {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}

func (q *scheduledQueue) push(sp *scheduledPacket) { heap.Push(q, sp) }
func (q *scheduledQueue) peek() *scheduledPacket {
	if len(*q) == 0 {
		return nil
	}
	return (*q)[0]
}
func (q *scheduledQueue) pop() *scheduledPacket { return heap.Pop(q).(*scheduledPacket) }
