package pipeline

import (
	"archive/tar"
	"compress/gzip"
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"strings"

	"skylift/internal/deployment/manifest"
)

// manifest larger than this is rejected rather than read.
const maxManifestSize = 1 << 20

// InspectArchive reads a stored source archive and reports what the
// pipeline needs: file count, Dockerfile presence, and the parsed
// skylift.yaml if one exists in the root.
func InspectArchive(sourcePath string) (SourceInfo, error) {
	f, err := os.Open(sourcePath)
	if err != nil {
		return SourceInfo{}, fmt.Errorf("open archive: %w", err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return SourceInfo{}, fmt.Errorf("read gzip: %w", err)
	}
	defer gz.Close()

	info := SourceInfo{Manifest: manifest.Default()}

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return SourceInfo{}, fmt.Errorf("read tar: %w", err)
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}

		name := path.Clean(strings.TrimPrefix(hdr.Name, "./"))
		info.Files++

		switch name {
		case "Dockerfile":
			info.HasDockerfile = true
		case manifest.Filename:
			if hdr.Size > maxManifestSize {
				return SourceInfo{}, fmt.Errorf("%s too large (%d bytes)", manifest.Filename, hdr.Size)
			}
			content, err := io.ReadAll(io.LimitReader(tr, maxManifestSize))
			if err != nil {
				return SourceInfo{}, fmt.Errorf("read %s: %w", manifest.Filename, err)
			}
			m, err := manifest.Parse(content)
			if err != nil {
				return SourceInfo{}, err
			}
			info.Manifest = m
			info.HasManifest = true
		}
	}

	if info.Files == 0 {
		return SourceInfo{}, errors.New("archive contains no files")
	}
	return info, nil
}
