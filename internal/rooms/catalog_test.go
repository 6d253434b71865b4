package rooms

import "testing"

func TestCatalogExists(t *testing.T) {
	catalog := NewCatalog([]string{"Room A", "Room B", "Room C"})

	tests := []struct {
		name string
		room string
		want bool
	}{
		{name: "first room", room: "Room A", want: true},
		{name: "last room", room: "Room C", want: true},
		{name: "unknown room", room: "Room D", want: false},
		{name: "case sensitive", room: "room a", want: false},
		{name: "empty name", room: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := catalog.Exists(tt.room); got != tt.want {
				t.Errorf("Exists(%q) = %v, want %v", tt.room, got, tt.want)
			}
		})
	}
}

func TestCatalogList(t *testing.T) {
	catalog := NewCatalog([]string{"Room A", "Room B"})

	rooms := catalog.List()
	if len(rooms) != 2 {
		t.Fatalf("expected 2 rooms, got %d", len(rooms))
	}
	if rooms[0].ID != 1 || rooms[0].Name != "Room A" {
		t.Errorf("unexpected first room: %+v", rooms[0])
	}
	if rooms[1].ID != 2 || rooms[1].Name != "Room B" {
		t.Errorf("unexpected second room: %+v", rooms[1])
	}

	// The returned slice is a copy; mutating it must not affect the catalog.
	rooms[0].Name = "Mutated"
	if !catalog.Exists("Room A") {
		t.Error("mutating the listed slice changed the catalog")
	}
}

func TestCatalogLen(t *testing.T) {
	if got := NewCatalog(nil).Len(); got != 0 {
		t.Errorf("Len() = %d, want 0", got)
	}
	if got := NewCatalog([]string{"Room A", "Room B", "Room C"}).Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
}
