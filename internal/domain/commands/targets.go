package commands

import (
	"fmt"
	"path/filepath"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/repodrop/internal/domain/entities"
)

// resolveTargets turns the input paths into absolute, de-duplicated targets in input
// order, drops excluded ones and attaches the stored preferences.
func resolveTargets(paths []string, settings *entities.Settings, book *entities.PreferenceBook) []Target {
	if len(paths) == 0 {
		paths = []string{"."}
	}

	seen := make(map[string]bool, len(paths))
	targets := make([]Target, 0, len(paths))
	for _, raw := range paths {
		path, err := filepath.Abs(raw)
		if err != nil {
			logger.Warnf("Ignoring invalid path %q: %v", raw, err)
			continue
		}
		path = filepath.Clean(path)
		if seen[path] {
			continue
		}
		seen[path] = true

		if settings.IsExcluded(path) {
			logger.Infof("Excluded: %s", path)
			continue
		}

		pref, prefErr := book.Lookup(path)
		if prefErr != nil {
			prefErr = fmt.Errorf("stored preference: %w", prefErr)
		}
		targets = append(targets, Target{Path: path, Preference: pref, PreferenceErr: prefErr})
	}
	return targets
}
