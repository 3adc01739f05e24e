package diaglog

import "convsys/internal/diag"

// Snapshot returns the recorded messages of all three classes.
func (l *Logger) Snapshot() *diag.Snapshot {
	l.mu.Lock()
	defer l.mu.Unlock()
	return &diag.Snapshot{
		Warnings: l.warnings.Items(),
		Errors:   l.errors.Items(),
		Infos:    l.infos.Items(),
	}
}

// Restore adds the counts of s to the logger without printing anything.
func (l *Logger) Restore(s *diag.Snapshot) {
	if s == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, sev := range []diag.Severity{diag.SevInfo, diag.SevWarning, diag.SevError} {
		l.classLocked(sev).Merge(s.Class(sev))
	}
}

func (l *Logger) classLocked(sev diag.Severity) *diag.Log {
	switch sev {
	case diag.SevWarning:
		return l.warnings
	case diag.SevError:
		return l.errors
	default:
		return l.infos
	}
}

// Counts returns the total occurrences per class.
func (l *Logger) Counts() (warnings, errors, infos uint64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.warnings.Total(), l.errors.Total(), l.infos.Total()
}

// Warnings returns the recorded warnings in first-seen order.
func (l *Logger) Warnings() []diag.Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.warnings.Items()
}

// Errors returns the recorded errors in first-seen order.
func (l *Logger) Errors() []diag.Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.errors.Items()
}

// Infos returns the recorded infos in first-seen order.
func (l *Logger) Infos() []diag.Record {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.infos.Items()
}
