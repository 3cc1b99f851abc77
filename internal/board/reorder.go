package board

// clampIndex limits i to [0, n].
func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i > n {
		return n
	}
	return i
}

// moveElement removes the element at from and reinserts it at to, where to is
// interpreted in the list after removal and clamped to its bounds.
// It returns a new slice and reports whether anything moved.
func moveElement[T any](xs []T, from, to int) ([]T, bool) {
	if from < 0 || from >= len(xs) {
		return xs, false
	}
	to = clampIndex(to, len(xs)-1)
	if from == to {
		return xs, false
	}
	moved := xs[from]
	rest := make([]T, 0, len(xs))
	rest = append(rest, xs[:from]...)
	rest = append(rest, xs[from+1:]...)
	return insertAt(rest, to, moved), true
}

// insertAt returns a new slice with x inserted at i (clamped to [0, len(xs)]).
func insertAt[T any](xs []T, i int, x T) []T {
	i = clampIndex(i, len(xs))
	out := make([]T, 0, len(xs)+1)
	out = append(out, xs[:i]...)
	out = append(out, x)
	out = append(out, xs[i:]...)
	return out
}
