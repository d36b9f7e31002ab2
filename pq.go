package bestfirst

// QueueEntry pairs a state with the path metadata accumulated on the
// way to it: the predecessor that generated it, the depth in edges
// from the root, the accumulated cost GScore and the heuristic
// estimate HCost taken when the entry was created. Entries are
// immutable once pushed.
type QueueEntry[S comparable] struct {
	State   S
	Pred    S
	HasPred bool
	Depth   int
	GScore  float64
	HCost   float64
	FCost   float64
	seq     uint64
}

// PriorityQueue orders entries by FCost ascending. Entries with equal
// FCost pop in push order (FIFO by insertion sequence), so two runs
// over the same input expand states in the same order and return the
// same path even when several optimal paths exist.
type PriorityQueue[S comparable] []*QueueEntry[S]

func (q PriorityQueue[S]) Len() int { return len(q) }

func (q PriorityQueue[S]) Less(i, j int) bool {
	if q[i].FCost != q[j].FCost {
		return q[i].FCost < q[j].FCost
	}
	return q[i].seq < q[j].seq
}

func (q PriorityQueue[S]) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
}

func (q *PriorityQueue[S]) Push(x any) {
	*q = append(*q, x.(*QueueEntry[S]))
}

func (q *PriorityQueue[S]) Pop() any {
	oldQueue := *q
	n := len(oldQueue)
	item := oldQueue[n-1]
	oldQueue[n-1] = nil
	*q = oldQueue[:n-1]
	return item
}
