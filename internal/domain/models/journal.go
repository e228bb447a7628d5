package models

// Journal is a caller-supplied, ordered list of human-readable log lines.
// It lives only in memory and is never persisted; a nil *Journal means the
// caller did not ask for logging.
type Journal struct {
	entries []string
}

// Append adds a line to the end of the journal.
func (j *Journal) Append(line string) {
	j.entries = append(j.entries, line)
}

// Entries returns the recorded lines in insertion order.
func (j *Journal) Entries() []string {
	return j.entries
}

// Len reports the number of recorded lines.
func (j *Journal) Len() int {
	return len(j.entries)
}
