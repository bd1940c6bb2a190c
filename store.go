package carteira

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Store persists positions durably. The ledger's in-memory state and the
// stored state converge after every successful call: the ledger applies a
// mutation in memory only once the store accepted it.
type Store interface {
	Save(ctx context.Context, p Position) error
	Update(ctx context.Context, p Position) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]Position, error)
}

// FileStore keeps positions in a JSONL file, one object per line, the format
// produced by EncodePositions. Writes go through a temp file and rename so a
// crash never leaves a half-written ledger behind.
type FileStore struct {
	path string
}

// NewFileStore returns a store backed by the given file. The file does not
// need to exist yet.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// List reads every position from the file. A missing file is an empty
// portfolio, not an error.
func (s *FileStore) List(ctx context.Context) ([]Position, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return DecodePositions(f)
}

func (s *FileStore) Save(ctx context.Context, p Position) error {
	positions, err := s.List(ctx)
	if err != nil {
		return err
	}
	return s.writeAll(append(positions, p))
}

func (s *FileStore) Update(ctx context.Context, p Position) error {
	positions, err := s.List(ctx)
	if err != nil {
		return err
	}
	for i := range positions {
		if positions[i].ID == p.ID {
			positions[i] = p
			return s.writeAll(positions)
		}
	}
	return &NotFoundError{ID: p.ID}
}

// Delete removes the position with the given id. Deleting an absent id is a
// no-op, matching the ledger's idempotent remove.
func (s *FileStore) Delete(ctx context.Context, id string) error {
	positions, err := s.List(ctx)
	if err != nil {
		return err
	}
	kept := positions[:0]
	for _, p := range positions {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return s.writeAll(kept)
}

func (s *FileStore) writeAll(positions []Position) error {
	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, ".carteira-*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if err := EncodePositions(tmp, positions); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}
