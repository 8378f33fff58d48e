package roomdef

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/raksitnongbua/office-bot/internal/core/domain"
)

type parseState int

const (
	awaitingRoom parseState = iota
	accumulating
)

// Load reads a room definition file from disk.
func Load(path string) (*domain.RoomMap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("roomdef: open %s: %w", path, err)
	}
	defer f.Close()

	rooms, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("roomdef: %s: %w", path, err)
	}
	return rooms, nil
}

// Parse reads the room definition format: a line without a comma names a
// room, and the "x,y" lines below it are that room's desk coordinates.
func Parse(r io.Reader) (*domain.RoomMap, error) {
	rooms := domain.NewRoomMap()
	state := awaitingRoom
	current := ""

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if lineNo == 1 {
			line = strings.TrimPrefix(line, "\uFEFF")
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if !strings.Contains(line, ",") {
			current = line
			rooms.DeclareRoom(current)
			state = accumulating
			continue
		}

		if state == awaitingRoom {
			return nil, &domain.ParseError{Line: lineNo, Text: line, Msg: "coordinate before any room name"}
		}
		c, err := parseCoordinate(line)
		if err != nil {
			return nil, &domain.ParseError{Line: lineNo, Text: line, Msg: err.Error()}
		}
		rooms.AddCoordinate(current, c)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read room definition: %w", err)
	}

	return rooms, nil
}

func parseCoordinate(line string) (domain.Coordinate, error) {
	parts := strings.Split(line, ",")
	if len(parts) != 2 {
		return domain.Coordinate{}, fmt.Errorf("expected x,y")
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("invalid x coordinate")
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return domain.Coordinate{}, fmt.Errorf("invalid y coordinate")
	}
	return domain.Coordinate{X: x, Y: y}, nil
}
