package vecgen

import (
	"bytes"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/teranos/cvecgen/errors"
)

// CheckResult holds the result of comparing fresh output with files on disk
type CheckResult struct {
	UpToDate bool
	// Differences lists paths relative to the roots, sorted
	Differences []string
}

// CompareDirectories compares every file under generatedRoot with the file
// at the same relative path under existingRoot. Files only present under
// existingRoot are ignored: other tools may share the directories.
func CompareDirectories(generatedRoot, existingRoot string) (*CheckResult, error) {
	var diffs []string

	err := filepath.WalkDir(generatedRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}

		rel, err := filepath.Rel(generatedRoot, path)
		if err != nil {
			return err
		}

		different, err := filesAreDifferent(path, filepath.Join(existingRoot, rel))
		switch {
		case errors.IsNotFoundError(err):
			diffs = append(diffs, rel+" (missing)")
		case err != nil:
			return err
		case different:
			diffs = append(diffs, rel)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to compare generated output")
	}

	sort.Strings(diffs)
	return &CheckResult{
		UpToDate:    len(diffs) == 0,
		Differences: diffs,
	}, nil
}

// filesAreDifferent compares two files byte for byte
func filesAreDifferent(generated, existing string) (bool, error) {
	want, err := os.ReadFile(generated)
	if err != nil {
		return false, errors.Wrapf(err, "failed to read %s", generated)
	}

	got, err := os.ReadFile(existing)
	if os.IsNotExist(err) {
		return false, errors.NewNotFoundError("%s", existing)
	}
	if err != nil {
		return false, errors.Wrapf(err, "failed to read %s", existing)
	}

	return !bytes.Equal(want, got), nil
}
