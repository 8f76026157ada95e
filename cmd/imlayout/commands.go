package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/grindlemire/go-imlayout/internal/layout"
	"github.com/grindlemire/go-imlayout/internal/render"
	"github.com/grindlemire/go-imlayout/internal/scene"
)

func (a *app) dumpCommand() *cli.Command {
	return &cli.Command{
		Name:      "dump",
		Usage:     "compute scenes and print every node's snapshot",
		ArgsUsage: "[scene...]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return a.eachScene(ctx, cmd.Args().Slice(), true, func(path string, s *scene.Scene, out io.Writer) error {
				fmt.Fprintf(out, "# %s\n", path)
				dumpTree(out, s)
				return nil
			})
		},
	}
}

func (a *app) hashCommand() *cli.Command {
	return &cli.Command{
		Name:      "hash",
		Usage:     "print the structural hash of every node",
		ArgsUsage: "[scene...]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return a.eachScene(ctx, cmd.Args().Slice(), false, func(path string, s *scene.Scene, out io.Writer) error {
				fmt.Fprintf(out, "# %s subtree=%016x\n", path, s.Root.SubtreeHash64())
				hashTree(out, s)
				return nil
			})
		},
	}
}

func (a *app) renderCommand() *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "compute scenes and paint them to PNG files",
		ArgsUsage: "[scene...]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "out",
				Usage: "output directory",
				Value: ".",
			},
			&cli.FloatFlag{
				Name:  "scale",
				Usage: "device pixels per layout pixel (default from config)",
			},
			&cli.BoolFlag{
				Name:  "labels",
				Usage: "draw node ids (default from config)",
			},
			&cli.StringFlag{
				Name:  "background",
				Usage: "background hex color (default from config)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			dir := cmd.String("out")
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return fmt.Errorf("create output dir: %w", err)
			}

			base := render.Options{
				Background: a.cfg.Render.Background,
				Scale:      a.cfg.Render.Scale,
				Labels:     a.cfg.Render.Labels,
			}
			if cmd.IsSet("scale") {
				base.Scale = cmd.Float("scale")
			}
			if cmd.IsSet("labels") {
				base.Labels = cmd.Bool("labels")
			}
			if cmd.IsSet("background") {
				base.Background = cmd.String("background")
			}

			return a.eachScene(ctx, cmd.Args().Slice(), true, func(path string, s *scene.Scene, out io.Writer) error {
				opts := base
				opts.Name = s.Name
				dst := filepath.Join(dir, strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))+".png")
				if err := render.SavePNG(dst, s.Root, opts); err != nil {
					return err
				}
				fmt.Fprintf(out, "%s -> %s\n", path, dst)
				return nil
			})
		},
	}
}

func (a *app) checkCommand() *cli.Command {
	return &cli.Command{
		Name:      "check",
		Usage:     "decode and build scenes without computing them",
		ArgsUsage: "[scene...]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return a.eachScene(ctx, cmd.Args().Slice(), false, func(path string, s *scene.Scene, out io.Writer) error {
				count := 0
				layout.Walk(s.Root, func(*layout.Node) bool { count++; return true })
				fmt.Fprintf(out, "ok %s (%d nodes)\n", path, count)
				return nil
			})
		},
	}
}

// dumpTree prints one line per node, indented by depth.
func dumpTree(w io.Writer, s *scene.Scene) {
	walkDepth(s.Root, 0, func(n *layout.Node, depth int) {
		pos := n.LocalPosition()
		size := n.Scale()
		fmt.Fprintf(w, "%s%s pos=(%g,%g) size=%gx%g",
			strings.Repeat("  ", depth), nodeLabel(s, n), pos.X, pos.Y, size.X, size.Y)
		if n.IsSynthetic() {
			fmt.Fprintln(w)
			return
		}
		cr := n.ContentRect()
		fmt.Fprintf(w, " content=(%g,%g %gx%g)", cr.X, cr.Y, cr.Width, cr.Height)
		if scroll := n.Scroll(); scroll != (layout.Vec2{}) || n.VerticalScrollbarVisible() || n.HorizontalScrollbarVisible() {
			fmt.Fprintf(w, " scroll=(%g,%g)", scroll.X, scroll.Y)
		}
		fmt.Fprintln(w)
	})
}

// hashTree prints each caller-declared node's hash, indented by depth.
func hashTree(w io.Writer, s *scene.Scene) {
	walkDepth(s.Root, 0, func(n *layout.Node, depth int) {
		if n.IsSynthetic() {
			return
		}
		fmt.Fprintf(w, "%016x %s%s\n", n.Hash64(), strings.Repeat("  ", depth), nodeLabel(s, n))
	})
}

func walkDepth(n *layout.Node, depth int, visit func(*layout.Node, int)) {
	visit(n, depth)
	for _, c := range n.Children() {
		walkDepth(c, depth+1, visit)
	}
}

func nodeLabel(s *scene.Scene, n *layout.Node) string {
	if name := s.Name(n); name != "" {
		return name
	}
	switch {
	case n.IsSynthetic() && len(n.Children()) > 0:
		return "(track)"
	case n.IsSynthetic():
		return "(thumb)"
	default:
		return fmt.Sprintf("%x", n.ID())
	}
}
