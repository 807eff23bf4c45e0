package theme

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

// DefaultName is the theme used when none is configured.
const DefaultName = "classic"

// loadJSON reads and unmarshals a JSON file from the embedded filesystem.
func loadJSON[T any](filename string) (T, error) {
	var result T

	content, err := themeFS.ReadFile(filename)
	if err != nil {
		return result, fmt.Errorf("failed to read embedded file %s: %w", filename, err)
	}

	if err := json.Unmarshal(content, &result); err != nil {
		return result, fmt.Errorf("failed to parse JSON from %s: %w", filename, err)
	}

	return result, nil
}

// Names returns the embedded theme names in sorted order.
func Names() []string {
	files, _ := fs.Glob(themeFS, "*.json")
	names := make([]string, 0, len(files))
	for _, f := range files {
		names = append(names, strings.TrimSuffix(f, ".json"))
	}
	sort.Strings(names)
	return names
}

// Load reads the named embedded theme.
func Load(name string) (*Theme, error) {
	def, err := loadJSON[Definition](name + ".json")
	if err != nil {
		return nil, err
	}
	return def.Resolve()
}

// Default returns the classic theme, panicking if it cannot be loaded.
// The classic theme is compiled into the binary so a failure is a build bug.
func Default() *Theme {
	t, err := Load(DefaultName)
	if err != nil {
		panic(err)
	}
	return t
}
