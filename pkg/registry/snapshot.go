package registry

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/adfharrison1/go-datasets/pkg/storage"
)

// SaveSnapshot writes the registry's kept records to a snapshot file.
// The source table is never touched.
func (r *Registry) SaveSnapshot(filename string) error {
	snapshot := storage.NewSnapshotData(r.source, r.Columns(), r.ListAll())
	if err := storage.SaveSnapshot(filename, snapshot); err != nil {
		return fmt.Errorf("save snapshot %s: %w", filename, err)
	}
	return nil
}

// OpenSnapshot builds a registry from a snapshot file written by SaveSnapshot.
// A missing or unreadable snapshot fails with ErrSourceNotFound, a corrupt
// one with a *MalformedSourceError.
func OpenSnapshot(filename string) (*Registry, error) {
	snapshot, err := storage.LoadSnapshot(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, fs.ErrPermission) {
			return nil, fmt.Errorf("%w: %s: %v", ErrSourceNotFound, filename, err)
		}
		return nil, &MalformedSourceError{Path: filename, Err: err}
	}

	r := newRegistry()
	r.source = snapshot.Source
	r.columns = snapshot.Columns
	r.build(snapshot.Records)
	return r, nil
}
