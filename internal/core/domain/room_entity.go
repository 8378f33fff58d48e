package domain

import "github.com/raksitnongbua/office-bot/constants"

type Coordinate struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// RoomMap associates room names with the desk coordinates they contain.
// Rooms keep the order they were declared in; lookups walk that order.
type RoomMap struct {
	names  []string
	coords map[string][]Coordinate
}

func NewRoomMap() *RoomMap {
	return &RoomMap{
		names:  []string{},
		coords: map[string][]Coordinate{},
	}
}

// DeclareRoom starts a room section. Declaring a room twice drops the
// coordinates collected so far but keeps its original position.
func (m *RoomMap) DeclareRoom(name string) {
	if _, ok := m.coords[name]; !ok {
		m.names = append(m.names, name)
	}
	m.coords[name] = []Coordinate{}
}

func (m *RoomMap) AddCoordinate(room string, c Coordinate) {
	if _, ok := m.coords[room]; !ok {
		m.DeclareRoom(room)
	}
	m.coords[room] = append(m.coords[room], c)
}

func (m *RoomMap) Coordinates(room string) []Coordinate {
	coords := m.coords[room]
	out := make([]Coordinate, len(coords))
	copy(out, coords)
	return out
}

func (m *RoomMap) Len() int {
	return len(m.names)
}

// Lookup returns the first declared room containing (x, y).
func (m *RoomMap) Lookup(x, y int) (string, bool) {
	for _, name := range m.names {
		for _, c := range m.coords[name] {
			if c.X == x && c.Y == y {
				return name, true
			}
		}
	}
	return "", false
}

// Resolve is Lookup with constants.UnknownRoom as the miss value.
func (m *RoomMap) Resolve(x, y int) string {
	if name, ok := m.Lookup(x, y); ok {
		return name
	}
	return constants.UnknownRoom
}
