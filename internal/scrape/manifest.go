package scrape

import (
	"os"

	"github.com/rotisserie/eris"
	"gopkg.in/yaml.v3"
)

// Manifest lists the division results pages to scrape per season. It
// replaces pasting URLs interactively: select the season and division
// group on the portal once, copy each division's matches URL in.
type Manifest struct {
	Seasons []Season `yaml:"seasons"`
}

// Season is one season's worth of division pages.
type Season struct {
	Name      string     `yaml:"name"`
	Divisions []Division `yaml:"divisions"`
}

// Division is one division's matches page.
type Division struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
}

// LoadManifest reads and validates a seasons manifest file.
func LoadManifest(path string) (*Manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, eris.Wrapf(err, "scrape: read manifest %s", path)
	}

	var m Manifest
	if err := yaml.Unmarshal(b, &m); err != nil {
		return nil, eris.Wrapf(err, "scrape: parse manifest %s", path)
	}

	if len(m.Seasons) == 0 {
		return nil, eris.Errorf("scrape: manifest %s lists no seasons", path)
	}
	for _, s := range m.Seasons {
		if s.Name == "" {
			return nil, eris.Errorf("scrape: manifest %s has a season without a name", path)
		}
		for _, d := range s.Divisions {
			if d.Name == "" || d.URL == "" {
				return nil, eris.Errorf("scrape: season %s has a division missing name or url", s.Name)
			}
		}
	}
	return &m, nil
}
