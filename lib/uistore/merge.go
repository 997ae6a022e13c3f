package uistore

// MergeOptimistic reconciles a freshly fetched page with the local list. The
// server page wins; local records absent from it survive only while their id
// is still in pending (an optimistic create whose commit has not settled).
// Returns the merged list and the number of pending records kept, which the
// caller adds to the reported total.
func MergeOptimistic[T any](server, local []T, idOf func(T) string, pending map[string]struct{}) ([]T, int) {
	seen := make(map[string]struct{}, len(server))
	for _, item := range server {
		seen[idOf(item)] = struct{}{}
	}
	merged := append([]T(nil), server...)
	kept := 0
	for _, item := range local {
		id := idOf(item)
		if _, onServer := seen[id]; onServer {
			continue
		}
		if _, isPending := pending[id]; !isPending {
			continue
		}
		merged = append(merged, item)
		kept++
	}
	return merged, kept
}
