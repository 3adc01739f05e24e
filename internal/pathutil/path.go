// Package pathutil normalizes path strings without touching the filesystem.
//
// All helpers work on the backslash form produced by FixPath. Results are
// canonical-looking strings only; nothing is resolved against the disk.
package pathutil

import "strings"

// Separator is the canonical separator emitted by FixPath.
const Separator = '\\'

const parentToken = `\..\`

// FixPath rewrites s into backslash form, drops repeated separators and
// folds every `segment\..\` step into the preceding directory.
//
// A `\..\` with no separator before it folds up to the start of the string,
// so `x\..\y` becomes `\y`.
func FixPath(s string) string {
	buf := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '/' {
			c = Separator
		}
		if c == Separator && len(buf) > 0 && buf[len(buf)-1] == Separator {
			continue
		}
		buf = append(buf, c)
	}
	return string(collapseParents(buf))
}

// collapseParents removes `prev\..\` steps in place. After a cut the scan
// resumes a few bytes before the cut point, since the joined bytes may form a
// new token.
func collapseParents(buf []byte) []byte {
	for i := 0; i+len(parentToken) <= len(buf); {
		if string(buf[i:i+len(parentToken)]) != parentToken {
			i++
			continue
		}
		end := i + len(parentToken) - 1 // keep the trailing separator
		start := i
		if start > 0 {
			start--
		}
		for start > 0 && buf[start] != Separator {
			start--
		}
		buf = append(buf[:start], buf[end:]...)
		i = max(start-len(parentToken)+1, 0)
	}
	return buf
}

// RemoveFileEnding cuts s at its last dot. Strings without a dot are returned
// unchanged. Dots in directory names count too: `dir.v2\file` becomes `dir`.
func RemoveFileEnding(s string) string {
	if i := strings.LastIndexByte(s, '.'); i >= 0 {
		return s[:i]
	}
	return s
}

// FileDirectory returns s up to and including its last backslash, or failing
// that its last slash. Without any separator s is returned as is.
func FileDirectory(s string) string {
	if i := strings.LastIndexByte(s, Separator); i >= 0 {
		return s[:i+1]
	}
	if i := strings.LastIndexByte(s, '/'); i >= 0 {
		return s[:i+1]
	}
	return s
}

// Filename returns the last element of FixPath(s).
func Filename(s string) string {
	s = FixPath(s)
	if i := strings.LastIndexByte(s, Separator); i >= 0 {
		return s[i+1:]
	}
	return s
}
