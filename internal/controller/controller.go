// Package controller bridges list gestures to the item store.
package controller

import (
	"github.com/idilsaglam/sports/internal/gesture"
	"github.com/idilsaglam/sports/internal/logger"
	"github.com/idilsaglam/sports/internal/model"
	"github.com/idilsaglam/sports/internal/store"
)

// Renderer paints rows and applies targeted refreshes.
type Renderer interface {
	store.Listener
	// Bind hands the renderer its read accessor into the store.
	Bind(rows store.RowSource)
}

// Controller owns the store and forwards its change events to the renderer.
type Controller struct {
	store    *store.Store
	original []model.Item
	renderer Renderer
}

var _ gesture.Source = (*Controller)(nil)

// New returns a controller whose reset target is original.
func New(original []model.Item) *Controller {
	return &Controller{
		store:    store.New(),
		original: append([]model.Item(nil), original...),
	}
}

// Rows exposes the store read-only.
func (c *Controller) Rows() store.RowSource { return c.store }

// Original returns a copy of the static data the controller resets to.
func (c *Controller) Original() []model.Item {
	return append([]model.Item(nil), c.original...)
}

// Attach binds r to the store and repaints it from current contents.
// The same store is kept across attachments.
func (c *Controller) Attach(r Renderer) {
	c.renderer = r
	if r == nil {
		c.store.SetListener(nil)
		return
	}
	r.Bind(c.store)
	c.store.SetListener(r)
	r.FullReload()
}

// Load populates the store from the static data.
func (c *Controller) Load() {
	c.store.Load(c.original)
	logger.Debug("loaded %d items", c.store.Len())
}

// Replace repopulates the store, e.g. from a restored snapshot.
func (c *Controller) Replace(items []model.Item) {
	c.store.Load(items)
	logger.Debug("replaced contents with %d items", len(items))
}

// Reset reloads the original static data.
func (c *Controller) Reset() {
	c.store.Reset(c.original)
	logger.Info("list reset to %d items", c.store.Len())
}

// OnReposition moves the row at from to to, one slot per step, so every
// crossed neighbor produces its own moved event.
func (c *Controller) OnReposition(from, to int) {
	for from != to {
		next := from + 1
		if to < from {
			next = from - 1
		}
		if !c.store.Move(from, next) {
			logger.Warn("reposition %d -> %d out of range (len %d)", from, next, c.store.Len())
			return
		}
		from = next
	}
}

// OnDismiss removes the row at for horizontal swipes only.
func (c *Controller) OnDismiss(at int, dir gesture.Direction) {
	if !dir.Horizontal() {
		return
	}
	if !c.store.Remove(at) {
		logger.Warn("dismiss %d out of range (len %d)", at, c.store.Len())
		return
	}
	logger.Debug("dismissed row %d (%s)", at, dir)
}
