package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-imlayout/internal/layout"
	"github.com/grindlemire/go-imlayout/internal/scene"
)

// sceneExts are the extensions scene.Load can decode.
var sceneExts = []string{".yaml", ".yml", ".toml"}

func isSceneFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range sceneExts {
		if ext == e {
			return true
		}
	}
	return false
}

// collectSceneFiles expands the given paths into scene files.
// Supports:
//   - Direct file paths: "panel.yaml"
//   - Directory paths: "./scenes"
//   - Recursive pattern: "./scenes/..."
func collectSceneFiles(paths []string) ([]string, error) {
	var files []string

	for _, path := range paths {
		if strings.HasSuffix(path, "/...") {
			root := strings.TrimSuffix(path, "/...")
			if root == "" {
				root = "."
			}

			err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
				if err != nil {
					return err
				}
				if !d.IsDir() && isSceneFile(p) {
					files = append(files, p)
				}
				return nil
			})
			if err != nil {
				return nil, fmt.Errorf("walking %s: %w", root, err)
			}
			continue
		}

		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", path, err)
		}

		if info.IsDir() {
			entries, err := os.ReadDir(path)
			if err != nil {
				return nil, fmt.Errorf("reading directory %s: %w", path, err)
			}
			for _, entry := range entries {
				if !entry.IsDir() && isSceneFile(entry.Name()) {
					files = append(files, filepath.Join(path, entry.Name()))
				}
			}
		} else {
			files = append(files, path)
		}
	}

	return files, nil
}

// sceneFunc writes the report for one scene to out.
type sceneFunc func(path string, s *scene.Scene, out io.Writer) error

// eachScene loads every scene named by paths concurrently and runs fn on
// each. Each tree is only touched by its own goroutine. Reports are
// written to stdout in argument order once all scenes finish. When
// compute is set the scene runs a.passes frames first.
func (a *app) eachScene(ctx context.Context, paths []string, compute bool, fn sceneFunc) error {
	if len(paths) == 0 {
		paths = []string{"."}
	}
	files, err := collectSceneFiles(paths)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no scene files found")
	}

	outputs := make([]bytes.Buffer, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := a.loadScene(path, compute)
			if err != nil {
				return err
			}
			return fn(path, s, &outputs[i])
		})
	}
	err = g.Wait()

	for i := range outputs {
		if _, werr := a.stdout.Write(outputs[i].Bytes()); werr != nil && err == nil {
			err = werr
		}
	}
	return err
}

// loadScene decodes and builds the scene at path. With compute set it
// runs a.passes frames, re-declaring the tree before each frame after the
// first as an immediate-mode host would.
func (a *app) loadScene(path string, compute bool) (*scene.Scene, error) {
	d, err := scene.Load(path)
	if err != nil {
		return nil, err
	}
	s, err := scene.Build(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if !compute {
		return s, nil
	}

	start := time.Now()
	for frame := range a.passes {
		if frame > 0 {
			if err := s.Sync(d); err != nil {
				return nil, fmt.Errorf("%s: frame %d: %w", path, frame, err)
			}
		}
		layout.Compute(s.Root)
	}
	a.logger.Info("scene computed",
		slog.String("path", path),
		slog.Int("passes", a.passes),
		slog.Duration("elapsed", time.Since(start)),
	)
	return s, nil
}
