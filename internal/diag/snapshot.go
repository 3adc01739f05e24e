package diag

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"
)

// Current schema version - increment when Snapshot format changes
const snapshotSchemaVersion uint16 = 1

// ErrSnapshotSchema is returned when a dump was written by an incompatible
// version.
var ErrSnapshotSchema = errors.New("unsupported diagnostic snapshot schema")

// Snapshot is the serialisable state of the three message classes.
type Snapshot struct {
	Schema   uint16   `msgpack:"schema"`
	Warnings []Record `msgpack:"warnings"`
	Errors   []Record `msgpack:"errors"`
	Infos    []Record `msgpack:"infos"`
}

// Class returns the records stored for sev.
func (s *Snapshot) Class(sev Severity) []Record {
	if s == nil {
		return nil
	}
	switch sev {
	case SevWarning:
		return s.Warnings
	case SevError:
		return s.Errors
	default:
		return s.Infos
	}
}

// WriteSnapshot encodes s to w.
func WriteSnapshot(w io.Writer, s *Snapshot) error {
	if s == nil {
		s = &Snapshot{}
	}
	s.Schema = snapshotSchemaVersion
	return msgpack.NewEncoder(w).Encode(s)
}

// ReadSnapshot decodes a snapshot from r and checks its schema.
func ReadSnapshot(r io.Reader) (*Snapshot, error) {
	var s Snapshot
	if err := msgpack.NewDecoder(r).Decode(&s); err != nil {
		return nil, fmt.Errorf("decode diagnostic snapshot: %w", err)
	}
	if s.Schema != snapshotSchemaVersion {
		return nil, fmt.Errorf("%w: %d", ErrSnapshotSchema, s.Schema)
	}
	return &s, nil
}

// SaveSnapshot writes s to path through a temporary file and a rename.
func SaveSnapshot(path string, s *Snapshot) (err error) {
	dir := filepath.Dir(path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	f, err := os.CreateTemp(dir, "tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = f.Close()
			_ = os.Remove(f.Name())
		}
	}()
	if err = WriteSnapshot(f, s); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}

// LoadSnapshot reads a snapshot written by SaveSnapshot.
func LoadSnapshot(path string) (*Snapshot, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil {
			panic(closeErr)
		}
	}()
	return ReadSnapshot(f)
}
