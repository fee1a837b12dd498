package data

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Dataset is a price CSV available under a data directory.
type Dataset struct {
	Name string `json:"name"`
	File string `json:"file"`
	Size int64  `json:"size"`
}

// ListDatasets returns the .csv files directly under dir, sorted by name.
// A missing directory yields an empty list.
func ListDatasets(dir string) ([]Dataset, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []Dataset{}, nil
		}
		return nil, fmt.Errorf("read data dir: %w", err)
	}

	out := []Dataset{}
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".csv") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		out = append(out, Dataset{
			Name: strings.TrimSuffix(e.Name(), ".csv"),
			File: filepath.Join(dir, e.Name()),
			Size: info.Size(),
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// ResolveDataset maps a dataset name (with or without .csv) to a path under
// dir. Names containing path separators are rejected.
func ResolveDataset(dir, name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("invalid dataset name %q", name)
	}
	if !strings.HasSuffix(name, ".csv") {
		name += ".csv"
	}
	return filepath.Join(dir, name), nil
}

// SplitPaths expands a comma-separated list of files and directories into
// the CSV files they name.
func SplitPaths(s string) ([]string, error) {
	var out []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		info, err := os.Stat(p)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				return nil, missing(p)
			}
			return nil, err
		}
		if !info.IsDir() {
			out = append(out, p)
			continue
		}
		sets, err := ListDatasets(p)
		if err != nil {
			return nil, err
		}
		for _, d := range sets {
			out = append(out, d.File)
		}
	}
	return out, nil
}
