package radix

// Element constrains the types usable as key elements. A key is an
// ordered sequence of elements; elements must support the ordering
// operators so that edges stay searchable. The type set mirrors
// cmp.Ordered.
type Element interface {
	~string |
		~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Key is a sequence of elements. String keys convert directly:
// Key[byte]("foo").
type Key[E Element] []E

// longestCommonPrefix returns the number of leading elements shared by
// a and b. It is 0 when the sequences diverge at the first element or
// either is empty.
func longestCommonPrefix[E Element](a, b []E) int {
	limit := len(a)
	if len(b) < limit {
		limit = len(b)
	}
	i := 0
	for ; i < limit; i++ {
		if a[i] != b[i] {
			break
		}
	}
	return i
}

func hasPrefix[E Element](k, prefix []E) bool {
	return len(k) >= len(prefix) && longestCommonPrefix(k, prefix) == len(prefix)
}

func compareKeys[E Element](a, b []E) int {
	limit := len(a)
	if len(b) < limit {
		limit = len(b)
	}
	for i := 0; i < limit; i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}
	return 0
}

func cloneKey[E Element](k []E) []E {
	if k == nil {
		return nil
	}
	return append([]E(nil), k...)
}

func concat[E Element](a, b []E) []E {
	c := make([]E, len(a)+len(b))
	copy(c, a)
	copy(c[len(a):], b)
	return c
}
