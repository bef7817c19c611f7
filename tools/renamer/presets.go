package renamer

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// ErrBadPresetName rejects names that are empty or would escape the
// preset directory.
var ErrBadPresetName = errors.New("invalid preset name")

// PresetStore keeps named option sets as JSON files in one directory.
type PresetStore struct {
	dir string
}

func NewPresetStore(dir string) *PresetStore {
	return &PresetStore{dir: dir}
}

// Names lists the saved presets, sorted.
func (s *PresetStore) Names() []string {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)
	return names
}

// Load reads the preset saved under name.
func (s *PresetStore) Load(name string) (Options, error) {
	if err := checkName(name); err != nil {
		return Options{}, err
	}
	data, err := os.ReadFile(filepath.Join(s.dir, name+".json"))
	if err != nil {
		return Options{}, err
	}
	var opts Options
	if err := json.Unmarshal(data, &opts); err != nil {
		return Options{}, fmt.Errorf("preset %q: %w", name, err)
	}
	return opts, nil
}

// Save writes opts under name, replacing any previous version.
func (s *PresetStore) Save(name string, opts Options) error {
	if err := checkName(name); err != nil {
		return err
	}
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return err
	}
	data, err := json.MarshalIndent(opts, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, name+".json"), data, 0o644)
}

// Delete removes the preset saved under name.
func (s *PresetStore) Delete(name string) error {
	if err := checkName(name); err != nil {
		return err
	}
	return os.Remove(filepath.Join(s.dir, name+".json"))
}

func checkName(name string) error {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("%q: %w", name, ErrBadPresetName)
	}
	return nil
}
