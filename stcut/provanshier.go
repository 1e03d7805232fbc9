package stcut

import "go.uber.org/zap"

// pivot computes, for the current (S, T) frontier, a vertex v and its
// associated I(S,v) — the Provan-Shier pivot contract. found is false
// when no such v exists, at which point the search branch emits S as a
// candidate source-side partition (when non-trivial).
type pivot func(S *markedQueue, T *elementStack) (v int, isv []int, found bool, err error)

// search is the generic recursive Provan-Shier binary search over (S,T):
// left branch pushes the pivot into T without adopting I(S,v); right
// branch adopts I(S,v) into S as one batch. Termination follows from the
// pivot's contract — each recursion strictly grows S union T toward
// saturation.
//
// emit is called once per candidate source-side partition, with a slice
// the caller must not mutate or retain without copying.
//
// Complexity:
//
//	Time:   one pivot call plus two recursive calls per node; O(n) depth.
//	Memory: O(n) for S and T plus O(n) recursion depth.
type search struct {
	n      int
	pivot  pivot
	emit   func(partition []int)
	logger *zap.Logger
}

func (s *search) run(S *markedQueue, T *elementStack) error {
	v, isv, found, err := s.pivot(S, T)
	if err != nil {
		return err
	}

	if !found {
		if sz := S.size(); sz > 0 && sz < s.n {
			s.logger.Debug("stcut: emit partition", zap.Int("size", sz))
			s.emit(S.asVector())
		}

		return nil
	}

	s.logger.Debug("stcut: pivot chosen", zap.Int("v", v), zap.Int("isv_size", len(isv)))

	if err := T.push(v); err != nil {
		return err
	}
	if err := s.run(S, T); err != nil {
		return err
	}
	T.pop()

	S.startBatch()
	for _, u := range isv {
		if !S.isElement(u) {
			if err := S.push(u); err != nil {
				return err
			}
		}
	}
	if err := s.run(S, T); err != nil {
		return err
	}
	S.popBackBatch()

	return nil
}
