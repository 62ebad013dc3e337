package types

// GroupBy buckets items by the key returned for each of them.
// Items keep their relative order inside a bucket.
func GroupBy[K comparable, V any](items []V, key func(V) K) map[K][]V {
	groups := make(map[K][]V)
	for _, item := range items {
		k := key(item)
		groups[k] = append(groups[k], item)
	}
	return groups
}
