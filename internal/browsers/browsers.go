// Package browsers reads the browser configuration file consumed by the
// gateway: a mapping from browser name to a default version and the image
// reference, port, and path of each available version. gridkit only reads
// it to learn which images a session needs.
package browsers

import (
	"fmt"
	"os"
	"sort"

	json "github.com/goccy/go-json"
)

// Version describes one published browser version.
type Version struct {
	Image string `json:"image"`
	Port  string `json:"port"`
	Path  string `json:"path"`
}

// Browser maps version strings to their definitions and names a default.
type Browser struct {
	Default  string             `json:"default"`
	Versions map[string]Version `json:"versions"`
}

// Config is the full browser configuration, keyed by browser name.
type Config map[string]Browser

// Load reads and parses the browser configuration file.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading browser configuration: %w", err)
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing browser configuration %s: %w", path, err)
	}
	return cfg, nil
}

// ImageRefs flattens the configuration into the sorted set of image
// references it mentions, without duplicates.
func (c Config) ImageRefs() []string {
	seen := make(map[string]struct{})
	var refs []string
	for _, browser := range c {
		for _, v := range browser.Versions {
			if v.Image == "" {
				continue
			}
			if _, ok := seen[v.Image]; ok {
				continue
			}
			seen[v.Image] = struct{}{}
			refs = append(refs, v.Image)
		}
	}
	sort.Strings(refs)
	return refs
}
