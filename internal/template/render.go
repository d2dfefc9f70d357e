package template

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/crystaldolphin/slackfmt/internal/message"
)

// Renderer replays templates through a message.Builder configured with opts.
type Renderer struct {
	opts   []message.Option
	logger *slog.Logger
}

// NewRenderer creates a Renderer. logger may be nil.
func NewRenderer(logger *slog.Logger, opts ...message.Option) *Renderer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Renderer{opts: opts, logger: logger}
}

// Render builds the payload described by t.
func (r *Renderer) Render(t *Template) (*message.Payload, error) {
	b := message.New(t.Text, r.opts...).DisableMarkdown(t.DisableMarkdown)
	if t.ResponseType != "" {
		b.ResponseType(t.ResponseType)
	}
	if t.ReplaceOriginal != nil {
		b.ReplaceOriginal(*t.ReplaceOriginal)
	}

	for i, a := range t.Attachments {
		if err := applyAttachment(b, a); err != nil {
			return nil, fmt.Errorf("attachment %d: %w", i, err)
		}
	}

	p, err := b.Payload()
	if err != nil {
		return nil, err
	}
	r.logger.Debug("template: rendered", "attachments", len(p.Attachments))
	return p, nil
}

// RenderFile loads and renders the template at path.
func (r *Renderer) RenderFile(path string) (*message.Payload, error) {
	t, err := LoadFile(path)
	if err != nil {
		return nil, err
	}
	p, err := r.Render(t)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return p, nil
}

func applyAttachment(b *message.Builder, a Attachment) error {
	b.AddAttachment(a.CallbackID, a.Type, a.Fallback)
	if a.Title != nil {
		b.AddTitle(a.Title.Text, a.Title.Link)
	}
	if a.Text != "" {
		b.AddText(a.Text)
	}
	if a.Pretext != "" {
		b.AddPretext(a.Pretext)
	}
	if a.Image != "" {
		b.AddImage(a.Image)
	}
	if a.Thumbnail != "" {
		b.AddThumbnail(a.Thumbnail)
	}
	if a.Author != nil {
		b.AddAuthor(a.Author.Name, a.Author.Icon, a.Author.Link)
	}
	if a.Footer != nil {
		b.AddFooter(a.Footer.Text, a.Footer.Icon)
	}
	if a.Color != "" {
		b.AddColor(a.Color)
	}
	if a.Timestamp != nil {
		b.AddTimestamp(*a.Timestamp)
	}
	if err := b.Err(); err != nil {
		return err
	}

	for i, f := range a.Fields {
		if err := b.AddField(f.Title, f.Value, f.Short).Err(); err != nil {
			return fmt.Errorf("field %d: %w", i, err)
		}
	}
	for i, act := range a.Actions {
		b.AddAction(act.Text, act.Name, act.Value, act.Style)
		if c := act.Confirm; c != nil {
			b.AddConfirmation(c.Title, c.Text, c.Ok, c.Dismiss)
		}
		if err := b.Err(); err != nil {
			return fmt.Errorf("action %d: %w", i, err)
		}
	}
	return nil
}
