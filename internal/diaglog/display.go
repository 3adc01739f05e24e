package diaglog

import (
	"fmt"

	"convsys/internal/console"
	"convsys/internal/diag"
)

// DisplayWarnings lists every distinct warning with its count.
func (l *Logger) DisplayWarnings() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.displayLocked(diag.SevWarning, console.AttrWarning, l.warnings)
}

// DisplayErrors lists every distinct error with its count.
func (l *Logger) DisplayErrors() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.displayLocked(diag.SevError, console.AttrError, l.errors)
}

// DisplayInfos lists every distinct info with its count.
func (l *Logger) DisplayInfos() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.displayLocked(diag.SevInfo, console.AttrInfo, l.infos)
}

// DisplayAll prints infos, warnings and errors in that order.
func (l *Logger) DisplayAll() {
	l.DisplayInfos()
	l.DisplayWarnings()
	l.DisplayErrors()
}

// displayLocked prints
//
//	NAME (total):
//	(count) text
//
// and nothing at all when the class is empty.
func (l *Logger) displayLocked(sev diag.Severity, attr console.Attr, log *diag.Log) {
	l.con.SetColor(attr)
	if total := log.Total(); total > 0 {
		fmt.Fprintf(l.out, "%s (%d):\n", sev.Plural(), total)
		for _, r := range log.Items() {
			fmt.Fprintf(l.out, "(%d) %s\n", r.Count, r.Text)
		}
	}
	l.con.SetColorDefault()
}
