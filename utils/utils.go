package utils

// Contains returns true iff hay contains needle.
func Contains[T comparable](hay []T, needle T) bool {
	for _, v := range hay {
		if v == needle {
			return true
		}
	}
	return false
}

// Without returns a new slice holding every element of list except those
// equal to item. list is never modified.
func Without[T comparable](list []T, item T) []T {
	out := make([]T, 0, len(list))
	for _, v := range list {
		if v != item {
			out = append(out, v)
		}
	}
	return out
}
