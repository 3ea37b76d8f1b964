// Package fixture loads the SVG scenes used by tests. Fixtures are available
// by name from the fixtures/ directory, sans extension. If anything goes
// wrong, the loader exits, since a broken fixture is a broken test suite.
package fixture

import (
	"embed"
	"log"

	"github.com/osuushi/emptyrect/input"
)

//go:embed fixtures
var fixtures embed.FS

func Load(name string) input.Scene {
	f, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}
	defer f.Close()

	scene, err := input.ReadSVG(f)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}
	if !scene.HasBounds {
		log.Fatalf("Fixture %q has no viewBox", name)
	}
	return scene
}

// Names lists every fixture.
func Names() []string {
	entries, err := fixtures.ReadDir("fixtures")
	if err != nil {
		log.Fatalf("Could not list fixtures: %v", err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		name := entry.Name()
		names = append(names, name[:len(name)-len(".svg")])
	}
	return names
}
