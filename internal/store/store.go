package store

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/amanerp/amandb/internal/schema"
	"github.com/amanerp/amandb/pkg"
)

type WriteSettings struct {
	DataDir       string
	InMem         bool
	WriteInterval time.Duration
}

func NewWriteSettings(data_dir string, in_mem bool, write_interval_ms int) *WriteSettings {
	if !in_mem && len(data_dir) == 0 {
		pkg.FatalLog("Must either provide a data dir or use in-memory mode")
	}
	return &WriteSettings{data_dir, in_mem, time.Duration(write_interval_ms) * time.Millisecond}
}

// Store is one open handle on the collection set at TargetVersion.
// It is shared process-wide through a Manager; per-operation atomicity
// comes from the collection locks, nothing more.
type Store struct {
	Locker   sync.RWMutex
	HandleId uuid.UUID
	Version  int

	Collections pkg.Map[string, *Collection]
	Settings    *WriteSettings
	LastChange  time.Time

	flush_stop chan struct{}
}

func (s *Store) GetLocker() *sync.RWMutex { return &s.Locker }

func (s *Store) Collection(name string) (*Collection, error) {
	s.Locker.RLock()
	defer s.Locker.RUnlock()
	if !s.Collections.Has(name) {
		return nil, fmt.Errorf("%w: %s", ErrNoCollection, name)
	}
	return s.Collections.Get(name), nil
}

func (s *Store) MarkChanged() {
	pkg.LockWrap(s, func() {
		s.LastChange = time.Now()
	})
}

// Flush writes meta and every collection to disk. In-memory stores skip
// all file IO.
func (s *Store) Flush() error {
	if s.Settings.InMem {
		return nil
	}

	s.Locker.RLock()
	defer s.Locker.RUnlock()

	names := make([]string, 0, len(s.Collections))
	for name, c := range s.Collections {
		if err := writeCollectionFile(s.Settings.DataDir, c); err != nil {
			return fmt.Errorf("flushing %s: %w", name, err)
		}
		names = append(names, name)
	}

	meta := storeMeta{
		Version:     s.Version,
		HandleId:    s.HandleId.String(),
		Collections: names,
		SavedAt:     time.Now(),
	}
	return writeMeta(s.Settings.DataDir, meta)
}

// Close stops the background flusher and writes a final flush.
func (s *Store) Close() error {
	if s.flush_stop != nil {
		close(s.flush_stop)
		s.flush_stop = nil
	}
	return s.Flush()
}

func (s *Store) startFlusher() {
	if s.Settings.InMem || s.Settings.WriteInterval <= 0 {
		return
	}

	s.flush_stop = make(chan struct{})
	ticker := time.NewTicker(s.Settings.WriteInterval)

	go func() {
		defer ticker.Stop()
		last_write := time.Now()
		for {
			select {
			case <-s.flush_stop:
				return
			case <-ticker.C:
				s.Locker.RLock()
				dirty := s.LastChange.After(last_write)
				s.Locker.RUnlock()
				if !dirty {
					continue
				}
				pkg.DebugLog("writing store to disk")
				if err := s.Flush(); err != nil {
					pkg.ErrorLog("background flush failed;", err)
					continue
				}
				last_write = time.Now()
			}
		}
	}()
}

// migrate applies every migration after from, in order. Drops run first
// and remove the data file as well; creates are skipped when the
// collection already exists, so re-running over a partly upgraded store
// converges on the same catalog.
func (s *Store) migrate(from int) error {
	for _, m := range schema.Migrations {
		if m.Version <= from {
			continue
		}

		for _, name := range m.Drop {
			if s.Collections.Has(name) {
				s.Collections.Delete(name)
			}
			if !s.Settings.InMem {
				if err := removeCollectionFile(s.Settings.DataDir, name); err != nil {
					return fmt.Errorf("migration v%d: dropping %s: %w", m.Version, name, err)
				}
			}
		}

		for _, def := range m.Create {
			if s.Collections.Has(def.Name) {
				continue
			}
			s.Collections.Set(def.Name, NewCollection(def))
		}

		pkg.InfoLog("store migrated to schema version", m.Version)
	}
	return nil
}

// Manager owns the single cached store handle. Open is lazy; Reset and
// DeleteAndRecreate are the administrative operations on the handle.
type Manager struct {
	locker   sync.Mutex
	settings *WriteSettings
	cached   *Store
}

func NewManager(settings *WriteSettings) *Manager {
	GobRegisterTypes()
	return &Manager{settings: settings}
}

// Open returns the cached handle unchanged when one exists. Otherwise it
// loads the on-disk state, upgrades it to schema.TargetVersion, caches
// the handle and returns it. On any failure nothing is cached, so a
// retry starts clean; callers treat the error as fatal for the current
// operation.
func (m *Manager) Open() (*Store, error) {
	m.locker.Lock()
	defer m.locker.Unlock()

	if m.cached != nil {
		return m.cached, nil
	}

	s, err := openStore(m.settings)
	if err != nil {
		return nil, err
	}

	m.cached = s
	return s, nil
}

// Reset drops the cached handle without touching disk data. The next
// Open reopens fresh.
func (m *Manager) Reset() {
	m.locker.Lock()
	defer m.locker.Unlock()

	if m.cached == nil {
		return
	}
	if err := m.cached.Close(); err != nil {
		pkg.ErrorLog("closing store on reset;", err)
	}
	m.cached = nil
}

// DeleteAndRecreate wipes the store from disk and reopens it from
// scratch at the current version. Operator escape hatch for corrupted
// local state; everything is lost. A blocked removal is logged and the
// directory shunted aside rather than hanging the caller.
func (m *Manager) DeleteAndRecreate() (*Store, error) {
	m.Reset()

	if !m.settings.InMem {
		if err := os.RemoveAll(m.settings.DataDir); err != nil {
			orphan := m.settings.DataDir + ".orphan-" + uuid.New().String()[:8]
			pkg.WarnLog("store removal blocked, moving aside;", err)
			if rename_err := os.Rename(m.settings.DataDir, orphan); rename_err != nil {
				pkg.ErrorLog("could not move store aside, proceeding anyway;", rename_err)
			}
		}
	}

	return m.Open()
}

func openStore(settings *WriteSettings) (*Store, error) {
	if err := schema.Validate(); err != nil {
		return nil, err
	}

	s := &Store{
		HandleId:    uuid.New(),
		Collections: pkg.Map[string, *Collection]{},
		Settings:    settings,
		LastChange:  time.Now(),
	}

	meta := storeMeta{}
	if !settings.InMem {
		var err error
		meta, err = readMeta(settings.DataDir)
		if err != nil {
			return nil, fmt.Errorf("reading store meta: %w", err)
		}
	}

	if meta.Version > schema.TargetVersion {
		return nil, fmt.Errorf(
			"store is at schema version %d, this build targets %d", meta.Version, schema.TargetVersion)
	}

	if meta.Version > 0 {
		catalog, err := schema.At(meta.Version)
		if err != nil {
			return nil, err
		}
		for _, name := range catalog.Sorted {
			c := NewCollection(catalog.Get(name))
			if !settings.InMem {
				if err := readCollectionFile(settings.DataDir, c); err != nil {
					return nil, fmt.Errorf("loading %s: %w", name, err)
				}
			}
			s.Collections.Set(name, c)
		}
		pkg.InfoLog("loaded store from", settings.DataDir, "at schema version", meta.Version)
	}

	if meta.Version < schema.TargetVersion {
		if err := s.migrate(meta.Version); err != nil {
			return nil, err
		}
	}
	s.Version = schema.TargetVersion

	if err := s.Flush(); err != nil {
		return nil, err
	}

	s.startFlusher()
	pkg.DebugLog("store handle", s.HandleId.String(), "open at version", s.Version)
	return s, nil
}
