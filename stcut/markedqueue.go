package stcut

// markedQueue is the Provan-Shier search's S: an insertion-ordered set of
// vertices with O(1) membership and batch push/pop boundaries that nest
// LIFO, so a recursion frame's S.start_batch()/S.pop_back_batch() pair
// always undoes exactly what that frame pushed.
type markedQueue struct {
	order   []int
	member  []bool
	batches []int // batches[i] = len(order) at the i-th start_batch call
}

// newMarkedQueue returns an empty markedQueue sized for n vertices.
func newMarkedQueue(n int) *markedQueue {
	return &markedQueue{member: make([]bool, n)}
}

// startBatch opens a new batch boundary.
func (q *markedQueue) startBatch() {
	q.batches = append(q.batches, len(q.order))
}

// push appends v, failing with ErrAlreadyMember if v is already present.
func (q *markedQueue) push(v int) error {
	if q.member[v] {
		return ErrAlreadyMember
	}
	q.member[v] = true
	q.order = append(q.order, v)

	return nil
}

// isElement reports whether v is currently a member.
func (q *markedQueue) isElement(v int) bool { return q.member[v] }

// size reports the current member count.
func (q *markedQueue) size() int { return len(q.order) }

// asVector returns the members in insertion order. The returned slice is
// owned by the queue and must not be retained past the next mutation.
func (q *markedQueue) asVector() []int { return q.order }

// popBackBatch removes exactly the vertices pushed since the most recent
// startBatch call.
func (q *markedQueue) popBackBatch() {
	mark := q.batches[len(q.batches)-1]
	q.batches = q.batches[:len(q.batches)-1]
	for _, v := range q.order[mark:] {
		q.member[v] = false
	}
	q.order = q.order[:mark]
}
