// navbake is a CLI utility for baking level geometry into navmesh caches.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/coopbri/foxtrot/internal/config"
	"github.com/coopbri/foxtrot/internal/logger"
	"github.com/coopbri/foxtrot/internal/nav"
	"github.com/coopbri/foxtrot/internal/scene"
	"github.com/coopbri/foxtrot/pkg/formats"
)

func main() {
	config.ParseFlags()
	args := flag.Args()
	if len(args) < 1 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.InitFromConfig(cfg.Logging); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	command := args[0]
	args = args[1:]

	switch command {
	case "bake":
		cmdBake(cfg, args)
	case "check":
		cmdCheck(cfg, args)
	case "info":
		cmdInfo(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`navbake - navmesh bake utility

Usage:
  navbake [flags] <command> [args]

Commands:
  bake <level.obj>   Bake tagged objects into .nav caches
  check <level.obj>  Validate tagged objects without writing caches
  info <mesh.nav>    Show information about a baked navmesh cache

Flags:
  -config <path>       Config file path
  -debug               Enable debug logging
  -navmesh-tag <tag>   Node name tag marking navmesh sources
  -cache-dir <dir>     Directory for baked navmesh caches
  -no-cache            Disable writing baked navmesh caches

Examples:
  navbake bake levels/village.obj
  navbake -navmesh-tag "[nav]" check levels/village.obj
  navbake info cache/village_ground.nav`)
}

// loadScene spawns one source node per OBJ object, each holding its mesh
// in a child node the way level importers lay scenes out.
func loadScene(path string) (*scene.Registry, error) {
	obj, err := formats.ParseOBJFile(path)
	if err != nil {
		return nil, err
	}

	reg := scene.NewRegistry()
	for _, o := range obj.Objects {
		source := reg.Spawn(o.Name, 0)
		child := reg.Spawn("geometry", source.ID)

		positions := make([]mgl32.Vec3, len(o.Positions))
		for i, p := range o.Positions {
			positions[i] = mgl32.Vec3{p[0], p[1], p[2]}
		}
		child.Mesh = &scene.MeshData{
			Topology:  scene.TriangleList,
			Positions: positions,
			Indices:   append([]uint32(nil), o.Indices...),
		}
	}
	return reg, nil
}

// cacheName derives a filesystem-safe cache file name from a node name.
func cacheName(name string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case b.Len() > 0 && !strings.HasSuffix(b.String(), "_"):
			b.WriteByte('_')
		}
	}
	return strings.Trim(b.String(), "_") + ".nav"
}

func cmdBake(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: navbake bake <level.obj>")
		os.Exit(1)
	}

	reg, err := loadScene(args[0])
	if err != nil {
		logger.Fatal("loading level", zap.String("path", args[0]), zap.Error(err))
	}

	baker := nav.NewBaker(reg, cfg.Nav.Tag, logger.L())
	baked := baker.ProcessAdded()
	if baked == 0 {
		logger.Fatal("no navmesh sources baked",
			zap.String("path", args[0]),
			zap.String("tag", cfg.Nav.Tag))
	}

	if !cfg.Nav.CacheEnabled {
		logger.Info("cache disabled, nothing written", zap.Int("baked", baked))
		return
	}

	if err := os.MkdirAll(cfg.Nav.CacheDir, 0o755); err != nil {
		logger.Fatal("creating cache directory", zap.String("dir", cfg.Nav.CacheDir), zap.Error(err))
	}
	for id, mesh := range baker.Meshes() {
		node := reg.Get(id)
		out := filepath.Join(cfg.Nav.CacheDir, cacheName(node.Name))
		if err := mesh.ToNav().WriteNavFile(out); err != nil {
			logger.Fatal("writing cache", zap.String("path", out), zap.Error(err))
		}
		logger.Info("cache written",
			zap.String("source", node.Name),
			zap.String("path", out),
			zap.Int("polygons", len(mesh.Polygons)))
	}
}

func cmdCheck(cfg *config.Config, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: navbake check <level.obj>")
		os.Exit(1)
	}

	reg, err := loadScene(args[0])
	if err != nil {
		logger.Fatal("loading level", zap.String("path", args[0]), zap.Error(err))
	}

	tag := strings.ToLower(cfg.Nav.Tag)
	baker := nav.NewBaker(reg, cfg.Nav.Tag, logger.L())

	sources, failed := 0, 0
	for _, id := range reg.DrainAdded() {
		n := reg.Get(id)
		if n == nil || !strings.Contains(strings.ToLower(n.Name), tag) {
			continue
		}
		sources++
		if _, mesh, err := baker.Build(id); err != nil {
			failed++
			fmt.Printf("FAIL  %-30s %v\n", n.Name, err)
		} else {
			fmt.Printf("OK    %-30s %d vertices, %d polygons\n", n.Name, len(mesh.Vertices), len(mesh.Polygons))
		}
	}

	if sources == 0 {
		fmt.Printf("No objects tagged %q in %s\n", cfg.Nav.Tag, args[0])
		os.Exit(1)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func cmdInfo(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "Usage: navbake info <mesh.nav>")
		os.Exit(1)
	}

	n, err := formats.ParseNavFile(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	oneWay := 0
	for _, p := range n.Polygons {
		if p.OneWay {
			oneWay++
		}
	}
	corners := 0
	for _, v := range n.Vertices {
		for _, ref := range v.Ring {
			if ref < 0 {
				corners++
				break
			}
		}
	}

	fmt.Printf("File:        %s\n", args[0])
	fmt.Printf("Version:     %s\n", n.Version)
	fmt.Printf("Vertices:    %d (%d on boundary)\n", len(n.Vertices), corners)
	fmt.Printf("Polygons:    %d (%d one-way)\n", len(n.Polygons), oneWay)
}
