package game

import "image/color"

// Item is an orderable menu entry that can be attached to a note.
type Item struct {
	ID          string
	Name        string
	Description string
	Color       color.RGBA
}

// Navigation is emitted once when a tagged note is hit.
type Navigation struct {
	ItemID      string
	Name        string
	Description string
}

func (i Item) Navigation() Navigation {
	return Navigation{ItemID: i.ID, Name: i.Name, Description: i.Description}
}
