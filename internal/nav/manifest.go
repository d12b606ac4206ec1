package nav

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var ErrNoNavigators = errors.New("nav: manifest declares no navigators")

// Manifest lists the tab navigators the host can mount.
type Manifest struct {
	Navigators []NavigatorSpec `yaml:"navigators"`
}

type NavigatorSpec struct {
	ID      string       `yaml:"id"`
	Screens []ScreenSpec `yaml:"screens"`
}

type ScreenSpec struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

func LoadManifest(path, baseURL string) (Manifest, error) {
	f, err := os.Open(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("open manifest: %w", err)
	}
	defer f.Close()
	return ParseManifest(f, baseURL)
}

// ParseManifest decodes a manifest and resolves screen URLs against baseURL.
func ParseManifest(r io.Reader, baseURL string) (Manifest, error) {
	var m Manifest
	if err := yaml.NewDecoder(r).Decode(&m); err != nil {
		return Manifest{}, fmt.Errorf("decode manifest: %w", err)
	}
	if len(m.Navigators) == 0 {
		return Manifest{}, ErrNoNavigators
	}
	for i, n := range m.Navigators {
		if n.ID == "" {
			return Manifest{}, fmt.Errorf("navigator %d: missing id", i)
		}
		if len(n.Screens) == 0 {
			return Manifest{}, fmt.Errorf("navigator %q: no screens", n.ID)
		}
		for j, s := range n.Screens {
			if s.URL == "" {
				return Manifest{}, fmt.Errorf("navigator %q screen %d: missing url", n.ID, j)
			}
			if baseURL != "" {
				m.Navigators[i].Screens[j].URL = Resolve(baseURL, s.URL)
			}
		}
	}
	return m, nil
}

// Navigator returns the spec with the given id, or the first one when id is
// empty.
func (m Manifest) Navigator(id string) (NavigatorSpec, bool) {
	if id == "" && len(m.Navigators) > 0 {
		return m.Navigators[0], true
	}
	for _, n := range m.Navigators {
		if n.ID == id {
			return n, true
		}
	}
	return NavigatorSpec{}, false
}
