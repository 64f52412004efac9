package mlog

// logEntry is a single buffered log entry. The timestamp is rendered at
// emission time with the date format active at that moment, so entries
// drained after a reconfiguration keep their original timestamps.
type logEntry struct {
	Timestamp string
	Level     int64
	Source    string
	Message   string

	unreportedDrops uint64 // Dropped entry tracker, non-zero only on drop reports
}
