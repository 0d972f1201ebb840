package brackets

// seedOrder returns the slot order of a balanced single-elimination
// bracket of the given power-of-two size, as 1-based seed numbers:
// seed 1 meets the lowest seed, seed 2 the second lowest, and the top
// two seeds cannot meet before the final.
func seedOrder(size int) []int {
	order := []int{1}
	for len(order) < size {
		grown := len(order) * 2
		next := make([]int, 0, grown)
		for _, s := range order {
			next = append(next, s, grown+1-s)
		}
		order = next
	}
	return order
}

// nextPowerOfTwo rounds n up to a bracket size.
func nextPowerOfTwo(n int) int {
	size := 1
	for size < n {
		size *= 2
	}
	return size
}
