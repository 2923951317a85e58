// Package snapshot captures the list contents so a recreated screen can
// show exactly what the torn-down one did.
package snapshot

import (
	"encoding/json"
	"fmt"

	"github.com/idilsaglam/sports/internal/lifecycle"
	"github.com/idilsaglam/sports/internal/model"
	"github.com/idilsaglam/sports/internal/store"
)

// Key is the fixed state-container key for the list snapshot.
const Key = "sport_data_key"

const formatVersion = 1

// Snapshot is an ordered copy of the list at one point in time.
type Snapshot struct {
	Items []model.Item
}

type document struct {
	Version int          `json:"version"`
	Items   []model.Item `json:"items"`
}

// Capture copies src in display order.
func Capture(src store.RowSource) Snapshot {
	items := make([]model.Item, src.Len())
	for i := range items {
		items[i] = src.At(i)
	}
	return Snapshot{Items: items}
}

// Restore returns the captured items in captured order.
func Restore(s Snapshot) []model.Item {
	out := make([]model.Item, len(s.Items))
	copy(out, s.Items)
	return out
}

// Len is the number of captured items.
func (s Snapshot) Len() int { return len(s.Items) }

// Save stores s in b under Key.
func Save(b lifecycle.Bundle, s Snapshot) error {
	items := s.Items
	if items == nil {
		items = []model.Item{}
	}
	data, err := json.Marshal(document{Version: formatVersion, Items: items})
	if err != nil {
		return fmt.Errorf("json marshal: %w", err)
	}
	b.Put(Key, data)
	return nil
}

// Load reads the snapshot under Key. ok is false when none was saved.
func Load(b lifecycle.Bundle) (s Snapshot, ok bool, err error) {
	data, found := b.Get(Key)
	if !found {
		return Snapshot{}, false, nil
	}
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Snapshot{}, false, fmt.Errorf("decode snapshot: %w", err)
	}
	if doc.Version != formatVersion {
		return Snapshot{}, false, fmt.Errorf("decode snapshot: unsupported version %d", doc.Version)
	}
	return Snapshot{Items: doc.Items}, true, nil
}

// Discard removes any saved snapshot from b.
func Discard(b lifecycle.Bundle) {
	b.Delete(Key)
}
