package finder

import (
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/bitrise-io/go-utils/log"
	"github.com/bmatcuk/doublestar/v4"
)

const reportFilePattern = "TEST-*.xml"

// Finder locates JUnit report files under a root directory.
type Finder struct{}

func NewFinder() Finder {
	return Finder{}
}

// FindReports walks rootDir and returns every regular file whose base name
// matches TEST-*.xml, in walk order. Walk errors, a nonexistent root included,
// are logged at debug level and skipped, and the walk continues.
func (f Finder) FindReports(rootDir string) ([]string, error) {
	var reports []string

	err := filepath.WalkDir(rootDir, func(pth string, entry fs.DirEntry, err error) error {
		if err != nil {
			log.Debugf("Skipping %s: %s", pth, err)
			return nil
		}
		if entry.IsDir() {
			return nil
		}

		matched, err := doublestar.PathMatch(reportFilePattern, entry.Name())
		if err != nil {
			return err
		}
		if matched {
			reports = append(reports, pth)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", rootDir, err)
	}

	return reports, nil
}
