// Package file provides a file-based DataFetcher implementation for the config package.
//
// The file is read once at construction time; Fetch hands out copies of the
// cached bytes. Construction distinguishes a missing file from other failures
// so callers can report "does not exist" separately from read errors.
//
// Usage:
//
//	fetcher, err := file.NewFetcher("/etc/tanu/group/app/settings.json")()
//	if errors.Is(err, file.ErrNotExist) {
//	    // nothing at that path
//	}
//	data, err := fetcher.Fetch()
package file
