package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/term"

	sdui "github.com/jbriggs-source/PestGenie-sub002"
	"github.com/jbriggs-source/PestGenie-sub002/termview"
)

var renderWidth int

// loadScreen resolves the screen document for render and demo: the command
// line argument first, then the configured path, then the built-in demo
// route. The returned path is empty for the built-in screen, which has no
// file to watch.
func loadScreen(cfg *Config, args []string) (*sdui.Screen, string, error) {
	path := cfg.Screen
	if len(args) > 0 {
		path = args[0]
	}
	if path == "" {
		screen, err := sdui.DecodeScreen([]byte(demoSchema))
		if err != nil {
			return nil, "", fmt.Errorf("built-in demo schema: %w", err)
		}
		return screen, "", nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, "", err
	}
	screen, err := sdui.DecodeScreen(data)
	if err != nil {
		return nil, "", fmt.Errorf("%s: %w", path, err)
	}
	return screen, path, nil
}

func runValidate(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	screen, err := sdui.DecodeScreen(data)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	if err := sdui.CheckVersion(screen); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	count := 0
	screen.Component.Walk(func(*sdui.Component) { count++ })

	errs := sdui.Lint(screen)
	for _, e := range errs {
		fmt.Printf("%s: %v\n", path, e)
	}
	if len(errs) > 0 {
		return fmt.Errorf("%s: %d of %d nodes invalid", path, len(errs), count)
	}

	logger.Debug("schema valid",
		zap.String("path", path),
		zap.Int("version", screen.Version),
		zap.Int("nodes", count))
	fmt.Printf("%s: version %d, %d nodes, ok\n", path, screen.Version, count)
	return nil
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := LoadConfig(configPath)
	if err != nil {
		return err
	}
	screen, _, err := loadScreen(cfg, args)
	if err != nil {
		return err
	}
	ctx, err := fixtureContext(cfg)
	if err != nil {
		return err
	}

	// Size to the terminal when we have one; piped output gets a fixed
	// width so diffs and golden files stay stable.
	width := renderWidth
	if width <= 0 {
		width = 72
		if term.IsTerminal(int(os.Stdout.Fd())) {
			if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
				width = w
			}
		}
	}

	engine := sdui.New(termview.New().WithWidth(width)).
		WithLogger(logger).
		WithCache(cfg.Cache.Capacity)

	fmt.Println(termview.Render(engine.RenderScreen(screen, ctx)))
	return nil
}
