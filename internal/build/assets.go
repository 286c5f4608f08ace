// assets.go copies a project's static assets into the output directory.
package build

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/storyweave/weave/internal/project"
)

// copyAssets copies every declared asset file or directory into outDir,
// preserving relative layout. Missing assets are an error; a story that
// references an engine script or stylesheet that does not exist is not
// playable.
func copyAssets(p *project.Project, outDir string) error {
	for _, a := range p.Assets {
		src := filepath.Join(p.Root, a)
		info, err := os.Stat(src)
		if err != nil {
			return fmt.Errorf("asset %s: %w", a, err)
		}
		if info.IsDir() {
			if err := copyDir(src, filepath.Join(outDir, filepath.Base(src))); err != nil {
				return fmt.Errorf("asset %s: %w", a, err)
			}
			continue
		}
		if err := copyFile(src, filepath.Join(outDir, filepath.Base(src))); err != nil {
			return fmt.Errorf("asset %s: %w", a, err)
		}
	}
	return nil
}

func copyDir(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return err
	}
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer func() { _ = in.Close() }()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
