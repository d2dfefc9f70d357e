// Package container wires slackfmt services using go.uber.org/dig.
package container

import (
	"log/slog"

	"go.uber.org/dig"

	"github.com/crystaldolphin/slackfmt/internal/config"
	"github.com/crystaldolphin/slackfmt/internal/message"
	"github.com/crystaldolphin/slackfmt/internal/template"
)

// Container holds the resolved service singletons.
// Callers use the typed getter methods; they never need to import dig directly.
type Container struct {
	cfg      *config.Config
	opts     builderOptions
	renderer *template.Renderer
}

func (c *Container) Config() *config.Config           { return c.cfg }
func (c *Container) BuilderOptions() []message.Option { return c.opts }
func (c *Container) Renderer() *template.Renderer     { return c.renderer }

// builderOptions is a named slice type so dig can tell it apart from any
// other []message.Option a caller might provide.
type builderOptions []message.Option

// New builds and wires all services from cfg. A nil logger uses slog.Default().
func New(cfg *config.Config, logger *slog.Logger) (*Container, error) {
	if logger == nil {
		logger = slog.Default()
	}
	d := dig.New()

	if err := d.Provide(func() *config.Config { return cfg }); err != nil {
		return nil, err
	}
	if err := d.Provide(func() *slog.Logger { return logger }); err != nil {
		return nil, err
	}
	if err := d.Provide(newBuilderOptions); err != nil {
		return nil, err
	}
	if err := d.Provide(newRenderer); err != nil {
		return nil, err
	}

	var result *Container
	err := d.Invoke(func(opts builderOptions, r *template.Renderer) {
		result = &Container{
			cfg:      cfg,
			opts:     opts,
			renderer: r,
		}
	})
	return result, err
}

func newBuilderOptions(cfg *config.Config, logger *slog.Logger) builderOptions {
	return builderOptions{
		message.WithFallback(cfg.Builder.Fallback),
		message.WithConfirmLabels(cfg.Builder.OkLabel, cfg.Builder.DismissLabel),
		message.WithLogger(logger),
	}
}

func newRenderer(logger *slog.Logger, opts builderOptions) *template.Renderer {
	return template.NewRenderer(logger, opts...)
}
