package model

// ImageRef is an opaque identifier for an item's picture.
// Renderers resolve it against the static resource table.
type ImageRef string

// Item is one sport entry shown in the list.
// Values are immutable once built; compare them with ==.
type Item struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       ImageRef `json:"image"`
}

// New builds an Item.
func New(title, description string, image ImageRef) Item {
	return Item{Title: title, Description: description, Image: image}
}
