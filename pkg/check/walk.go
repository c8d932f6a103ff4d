package check

import (
	"os"
	"path/filepath"
	"strings"
)

// CheckDir validates every .xml file directly inside dir, in raw directory
// listing order. Subdirectories are not entered and no sorting is applied.
// A failure on one file never stops processing of the rest.
func (r *Runner) CheckDir(dir string) []Result {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		if r.Reporter != nil {
			r.Reporter.Error("[ERROR] %q is not a valid directory.", dir)
		}
		return nil
	}

	f, err := os.Open(dir)
	if err != nil {
		if r.Reporter != nil {
			r.Reporter.Error("[ERROR] read directory %s: %v", dir, err)
		}
		return nil
	}
	defer f.Close()

	// ReadDir on the handle keeps the OS directory order; os.ReadDir
	// would sort by name, which changes observable behavior.
	entries, err := f.ReadDir(-1)
	if err != nil {
		if r.Reporter != nil {
			r.Reporter.Error("[ERROR] read directory %s: %v", dir, err)
		}
		return nil
	}

	var results []Result
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".xml") {
			continue
		}
		results = append(results, r.CheckFile(filepath.Join(dir, entry.Name())))
	}
	return results
}
