package cmd

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var checkCmd = &cobra.Command{
	Use:   "check <template.yaml>...",
	Short: "Validate templates without printing them",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	c, err := loadContainer()
	if err != nil {
		return err
	}
	renderer := c.Renderer()

	// Per-file errors land in results so one bad template does not hide the
	// others; each goroutine owns one slot, so no locking is needed.
	results := make([]error, len(args))
	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for i, path := range args {
		g.Go(func() error {
			_, results[i] = renderer.RenderFile(path)
			return nil
		})
	}
	g.Wait() //nolint:errcheck // goroutines never return an error

	out := cmd.OutOrStdout()
	failed := 0
	for i, path := range args {
		if results[i] != nil {
			failed++
			slog.Debug("check: template invalid", "path", path, "error", results[i])
			fmt.Fprintf(out, "✗ %s\n    %v\n", path, results[i])
			continue
		}
		fmt.Fprintf(out, "✓ %s\n", path)
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d templates invalid", failed, len(args))
	}
	return nil
}
