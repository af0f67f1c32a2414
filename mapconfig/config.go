package mapconfig

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/arcway/jpsgrid/navmap"
)

// Obstacle is one blocked cell entry in a map definition document.
type Obstacle struct {
	X *int `yaml:"x"`
	Y *int `yaml:"y"`
}

// Marker names a single point of interest on the map, such as a
// default start or end for a demo run.
type Marker struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// Document is a complete map definition, as parsed from YAML.
//
//	width: 20
//	height: 10
//	obstacles:
//	  - {x: 3, y: 0}
//	  - {x: 3, y: 1}
//	markers:
//	  start: {x: 0, y: 2}
//	  end: {x: 19, y: 2}
type Document struct {
	Width     int               `yaml:"width"`
	Height    int               `yaml:"height"`
	Obstacles []Obstacle        `yaml:"obstacles"`
	Markers   map[string]Marker `yaml:"markers"`
}

// Load parses a map definition document from raw YAML bytes.
func Load(data []byte) (*Document, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("mapconfig: load: %w", err)
	}

	for _, o := range doc.Obstacles {
		if o.X == nil || o.Y == nil {
			return nil, fmt.Errorf("mapconfig: load: %w", ErrMalformedObstacle)
		}
	}

	return &doc, nil
}

// LoadFile reads and parses a map definition document from path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mapconfig: load file %s: %w", path, err)
	}

	return Load(data)
}

// ToMap builds a navmap.Map from the document, applying opts in
// addition to its width, height, and obstacle list.
func (d *Document) ToMap(opts ...navmap.Option) (*navmap.Map, error) {
	obstacles := make([]navmap.GridPoint, len(d.Obstacles))
	for i, o := range d.Obstacles {
		obstacles[i] = navmap.GridPoint{X: *o.X, Y: *o.Y}
	}

	return navmap.New(d.Width, d.Height, obstacles, opts...)
}

// Marker looks up a named marker (e.g. "start", "end") and reports
// whether it was present in the document.
func (d *Document) Marker(name string) (Marker, bool) {
	m, ok := d.Markers[name]

	return m, ok
}
