package roomimage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var defaultImages = map[string]string{
	"Team Room 1": "images/Team-Room-1.png",
	"Team Room 2": "images/Team-Room-2.png",
	"Team Room 3": "images/Team-Room-3.png",
	"Office 1":    "images/Office-1.png",
	"Office 2":    "images/Office-2.png",
	"Office 3":    "images/Office-3.png",
}

// catalogFile models the optional room image YAML file:
//
//	rooms:
//	  Team Room 1: images/Team-Room-1.png
type catalogFile struct {
	Rooms map[string]string `yaml:"rooms"`
}

// Catalog maps room names to image files.
type Catalog struct {
	baseDir string
	images  map[string]string
}

// NewCatalog returns the built-in room images, resolved against baseDir.
func NewCatalog(baseDir string) *Catalog {
	images := make(map[string]string, len(defaultImages))
	for room, path := range defaultImages {
		images[room] = path
	}
	return &Catalog{baseDir: baseDir, images: images}
}

// Load builds the default catalogue and layers the YAML file at path on top.
// An empty path means defaults only.
func Load(baseDir, path string) (*Catalog, error) {
	c := NewCatalog(baseDir)
	if strings.TrimSpace(path) == "" {
		return c, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("roomimage: read %s: %w", path, err)
	}
	var parsed catalogFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("roomimage: parse %s: %w", path, err)
	}
	for room, image := range parsed.Rooms {
		room = strings.TrimSpace(room)
		if room == "" {
			return nil, fmt.Errorf("roomimage: %s: empty room name", path)
		}
		image = strings.TrimSpace(image)
		if image == "" {
			// an empty entry switches the image off for that room
			delete(c.images, room)
			continue
		}
		c.images[room] = image
	}
	return c, nil
}

// ImageFor returns the image path for room, if one is configured.
func (c *Catalog) ImageFor(room string) (string, bool) {
	image, ok := c.images[room]
	if !ok {
		return "", false
	}
	return resolvePath(c.baseDir, image), true
}

func resolvePath(base, candidate string) string {
	if filepath.IsAbs(candidate) || base == "" {
		return filepath.Clean(candidate)
	}
	return filepath.Clean(filepath.Join(base, candidate))
}
