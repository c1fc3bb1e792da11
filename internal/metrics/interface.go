package metrics

// MetricsStore counts application operations in the metrics table. Counters
// are best-effort: increments that fail are logged and dropped, never
// surfaced to the caller.
type MetricsStore interface {
	Increment(key string)
	GetAll() (map[string]int, error)
}
