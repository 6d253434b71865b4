// Package rooms holds the static meeting-room catalog. Rooms are seeded
// once at startup from configuration and never change afterwards, so the
// catalog needs no locking.
package rooms

import (
	"varaamo/pkg/model"
)

type Catalog struct {
	rooms  []model.Room
	byName map[string]model.Room
}

// NewCatalog builds a catalog from room names, assigning ids in order
// starting at 1.
func NewCatalog(names []string) *Catalog {
	catalog := &Catalog{
		rooms:  make([]model.Room, 0, len(names)),
		byName: make(map[string]model.Room, len(names)),
	}
	for i, name := range names {
		room := model.Room{ID: i + 1, Name: name}
		catalog.rooms = append(catalog.rooms, room)
		catalog.byName[name] = room
	}
	return catalog
}

// Exists reports whether a room with the given name is cataloged. Matching
// is exact name equality.
func (c *Catalog) Exists(name string) bool {
	_, ok := c.byName[name]
	return ok
}

func (c *Catalog) List() []model.Room {
	out := make([]model.Room, len(c.rooms))
	copy(out, c.rooms)
	return out
}

func (c *Catalog) Len() int {
	return len(c.rooms)
}
