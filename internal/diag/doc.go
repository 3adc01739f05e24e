// Package diag defines the message model behind the diagnostic log.
//
// # Purpose
//
//   - Classify messages by Severity (Info, Warning, Error).
//   - Count repeated messages per class with Log, preserving first-seen order,
//     and decide whether a repeat is still worth displaying.
//   - Serialise the three classes into a Snapshot (msgpack) so a run's
//     diagnostics can be dumped and listed later.
//
// # Scope
//
// Package diag performs no formatting and no console IO. Printing, coloring,
// silencing and pause-on-error live in internal/diaglog.
//
// # Display threshold
//
// Log.Record returns true for the first occurrence of a text and for every
// repeat whose count stays below the threshold (DefaultThreshold = 10). The
// tenth and later occurrences of the same text are counted but reported as not
// displayable. Distinct texts are tracked independently and are never evicted.
package diag
