package main

import (
	"archive/tar"
	"bufio"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

const ignoreFilename = ".skyliftignore"

// Local state and VCS metadata never ship to the build host.
var alwaysIgnored = []string{".git", ".skylift"}

// loadIgnorePatterns reads .skyliftignore from dir. Blank lines and
// #-comments are skipped; trailing slashes are trimmed.
func loadIgnorePatterns(dir string) ([]string, error) {
	patterns := append([]string{}, alwaysIgnored...)

	f, err := os.Open(filepath.Join(dir, ignoreFilename))
	if err != nil {
		if os.IsNotExist(err) {
			return patterns, nil
		}
		return nil, err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		patterns = append(patterns, strings.TrimSuffix(line, "/"))
	}
	return patterns, scanner.Err()
}

// ignored reports whether rel (slash-separated, relative to the archive
// root) matches any pattern. A pattern matches the path itself, its
// base name, or any parent directory.
func ignored(rel string, patterns []string) bool {
	base := path.Base(rel)
	for _, p := range patterns {
		if ok, _ := path.Match(p, rel); ok {
			return true
		}
		if ok, _ := path.Match(p, base); ok {
			return true
		}
		if rel == p || strings.HasPrefix(rel, p+"/") {
			return true
		}
	}
	return false
}

// packSource tars and gzips dir into w, honoring .skyliftignore.
// Returns the number of files packed.
func packSource(dir string, w io.Writer) (int, error) {
	patterns, err := loadIgnorePatterns(dir)
	if err != nil {
		return 0, err
	}

	gz := gzip.NewWriter(w)
	tw := tar.NewWriter(gz)

	files := 0
	err = filepath.Walk(dir, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if p == dir {
			return nil
		}

		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)

		if ignored(rel, patterns) {
			if info.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		// Symlinks and other irregular files are not deployable source.
		if !info.Mode().IsRegular() && !info.IsDir() {
			return nil
		}

		hdr, err := tar.FileInfoHeader(info, "")
		if err != nil {
			return err
		}
		hdr.Name = rel
		if info.IsDir() {
			hdr.Name += "/"
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}

		f, err := os.Open(p)
		if err != nil {
			return err
		}
		defer f.Close()
		if _, err := io.Copy(tw, f); err != nil {
			return err
		}
		files++
		return nil
	})
	if err != nil {
		return 0, err
	}

	if err := tw.Close(); err != nil {
		return 0, err
	}
	if err := gz.Close(); err != nil {
		return 0, err
	}
	if files == 0 {
		return 0, fmt.Errorf("nothing to deploy: every file in %s is ignored", dir)
	}
	return files, nil
}
