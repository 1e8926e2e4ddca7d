// SPDX-License-Identifier: MIT

package workspace

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/katalvlaran/gridrev"
)

// Store persists snapshots. Load returns ErrNoSnapshot when nothing has been
// saved yet and a wrapped ErrCorruptSnapshot for undecodable content.
type Store interface {
	Load(ctx context.Context) (*Snapshot, error)
	Save(ctx context.Context, snap *Snapshot) error
}

// FileStore keeps the snapshot in one JSON file. Writes go to a temporary
// file in the same directory and are renamed into place.
type FileStore struct {
	Path string
}

var _ Store = (*FileStore)(nil)

// Load reads and decodes the file.
func (f *FileStore) Load(ctx context.Context) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	raw, err := os.ReadFile(f.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ErrNoSnapshot
	}
	if err != nil {
		return nil, fmt.Errorf("workspace: read %s: %w", f.Path, err)
	}

	return DecodeSnapshot(raw)
}

// Save encodes snap and replaces the file.
func (f *FileStore) Save(ctx context.Context, snap *Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	raw, err := EncodeSnapshot(snap)
	if err != nil {
		return err
	}
	dir := filepath.Dir(f.Path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("workspace: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".gridrev-*.json")
	if err != nil {
		return fmt.Errorf("workspace: %w", err)
	}
	defer os.Remove(tmp.Name()) // no-op after a successful rename

	if _, err = tmp.Write(raw); err != nil {
		tmp.Close()
		return fmt.Errorf("workspace: write snapshot: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("workspace: write snapshot: %w", err)
	}
	if err = os.Rename(tmp.Name(), f.Path); err != nil {
		return fmt.Errorf("workspace: write snapshot: %w", err)
	}

	return nil
}

// MemoryStore keeps the encoded snapshot in memory. Safe for concurrent use.
type MemoryStore struct {
	mu  sync.Mutex
	raw []byte
}

var _ Store = (*MemoryStore)(nil)

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

// Load decodes the stored snapshot.
func (m *MemoryStore) Load(ctx context.Context) (*Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	m.mu.Lock()
	raw := m.raw
	m.mu.Unlock()
	if raw == nil {
		return nil, ErrNoSnapshot
	}

	return DecodeSnapshot(raw)
}

// Save encodes and stores snap.
func (m *MemoryStore) Save(ctx context.Context, snap *Snapshot) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	raw, err := EncodeSnapshot(snap)
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.raw = raw
	m.mu.Unlock()

	return nil
}

// Raw returns the stored bytes (nil when empty).
func (m *MemoryStore) Raw() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]byte(nil), m.raw...)
}

// SetRaw replaces the stored bytes, e.g. to seed a test.
func (m *MemoryStore) SetRaw(raw []byte) {
	m.mu.Lock()
	m.raw = append([]byte(nil), raw...)
	m.mu.Unlock()
}

// Attach makes s the autosave target. From then on every change schedules a
// debounced Save; see PendingSave, FireSave and Flush.
func (w *Workspace) Attach(s Store) {
	w.store = s
	if s == nil {
		w.saves.Cancel()
	}
}

// Store returns the attached store, or nil.
func (w *Workspace) Store() Store { return w.store }

// Save writes a snapshot to the attached store and clears the dirty flag.
func (w *Workspace) Save(ctx context.Context) error {
	if w.store == nil {
		return ErrNoStore
	}
	w.saves.Cancel()
	if err := w.store.Save(ctx, w.Snapshot()); err != nil {
		gridrev.Logger().Warn("workspace: snapshot save failed", "err", err)
		return err
	}
	w.dirty = false
	gridrev.Logger().Info("workspace: snapshot saved")

	return nil
}

// LoadFrom restores the snapshot held by s. It reports restored=false with a
// nil error when s has nothing saved. A corrupt snapshot leaves the
// workspace untouched.
func (w *Workspace) LoadFrom(ctx context.Context, s Store) (restored bool, err error) {
	snap, err := s.Load(ctx)
	switch {
	case errors.Is(err, ErrNoSnapshot):
		return false, nil
	case err != nil:
		gridrev.Logger().Warn("workspace: snapshot not restored", "err", err)
		return false, err
	}
	w.Restore(snap)

	return true, nil
}

// PendingSave returns the ticket of the scheduled autosave, if any.
func (w *Workspace) PendingSave() (Ticket, bool) {
	return w.saves.Latest(), w.saves.Pending()
}

// FireSave runs the autosave scheduled under t unless a later change has
// superseded it.
func (w *Workspace) FireSave(ctx context.Context, t Ticket) (bool, error) {
	return w.saves.Fire(ctx, t)
}

// Flush runs any pending autosave immediately.
func (w *Workspace) Flush(ctx context.Context) error {
	_, err := w.saves.Flush(ctx)
	return err
}
