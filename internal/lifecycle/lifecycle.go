// Package lifecycle describes how a screen is created, torn down and
// recreated, and the opaque state container that survives in between.
package lifecycle

// Bundle is an opaque key/value state container owned by the host.
type Bundle interface {
	Get(key string) ([]byte, bool)
	Put(key string, value []byte)
	Delete(key string)
}

// Screen is implemented by anything with create/save/restore hooks.
type Screen interface {
	// OnCreate builds the screen. saved is nil on a fresh start.
	OnCreate(saved Bundle)
	// OnSaveState writes whatever must survive a recreation into out.
	OnSaveState(out Bundle) error
	// OnRestoreState repopulates the screen from saved.
	OnRestoreState(saved Bundle) error
}

// Start runs the creation hooks: OnCreate, then OnRestoreState when a
// previous instance left state behind.
func Start(s Screen, saved Bundle) error {
	s.OnCreate(saved)
	if saved == nil {
		return nil
	}
	return s.OnRestoreState(saved)
}

// Memory is an in-process Bundle.
type Memory map[string][]byte

func (m Memory) Get(key string) ([]byte, bool) {
	v, ok := m[key]
	return v, ok
}

func (m Memory) Put(key string, value []byte) {
	m[key] = append([]byte(nil), value...)
}

func (m Memory) Delete(key string) {
	delete(m, key)
}
