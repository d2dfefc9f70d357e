package message

import (
	"io"
	"log/slog"
	"time"
)

// Option configures a Builder.
type Option func(*Builder)

// WithFallback replaces DefaultFallback for attachments added without one.
func WithFallback(text string) Option {
	return func(b *Builder) {
		if text != "" {
			b.fallback = text
		}
	}
}

// WithConfirmLabels replaces the default confirmation dialog labels. Empty
// values keep the defaults.
func WithConfirmLabels(ok, dismiss string) Option {
	return func(b *Builder) {
		if ok != "" {
			b.okLabel = ok
		}
		if dismiss != "" {
			b.dismissLabel = dismiss
		}
	}
}

// WithURLValidator swaps the URL predicate used by AddTitle, AddImage,
// AddThumbnail and AddAuthor.
func WithURLValidator(fn URLValidator) Option {
	return func(b *Builder) {
		if fn != nil {
			b.isURL = fn
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// Builder assembles a Payload through chained calls.
//
// Every method returns the builder. The first failing call records its error
// without touching the payload and every later call becomes a no-op; Err
// reports it immediately and Payload returns it. A Builder must not be shared
// between goroutines.
type Builder struct {
	payload *Payload
	err     error

	fallback     string
	okLabel      string
	dismissLabel string
	isURL        URLValidator
	logger       *slog.Logger
}

// New starts a message. An empty text leaves the top-level text unset.
func New(text string, opts ...Option) *Builder {
	b := &Builder{
		payload:      newPayload(text),
		fallback:     DefaultFallback,
		okLabel:      DefaultOkLabel,
		dismissLabel: DefaultDismissLabel,
		isURL:        IsURL,
		logger:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Err returns the first error recorded by the chain, if any.
func (b *Builder) Err() error { return b.err }

// Payload returns a snapshot of the assembled message, or the first error
// recorded by the chain. Later builder calls do not affect a returned
// snapshot.
func (b *Builder) Payload() (*Payload, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.payload.clone(), nil
}

func (b *Builder) fail(err error) *Builder {
	b.err = err
	b.logger.Debug("message: builder call failed", "error", err)
	return b
}

func (b *Builder) invalid(op, msg string) *Builder {
	return b.fail(&ValidationError{Op: op, Msg: msg})
}

func (b *Builder) latestAttachment(op string) (*Attachment, error) {
	n := len(b.payload.Attachments)
	if n == 0 {
		return nil, &StateError{Op: op, Msg: "add at least one attachment first"}
	}
	return &b.payload.Attachments[n-1], nil
}

func (b *Builder) latestAction(op string) (*Action, error) {
	a, err := b.latestAttachment(op)
	if err != nil {
		return nil, err
	}
	n := len(a.Actions)
	if n == 0 {
		return nil, &StateError{Op: op, Msg: "at least one action required"}
	}
	return &a.Actions[n-1], nil
}

// withAttachment runs fn against the latest attachment.
func (b *Builder) withAttachment(op string, fn func(a *Attachment)) *Builder {
	a, err := b.latestAttachment(op)
	if err != nil {
		return b.fail(err)
	}
	fn(a)
	return b
}

// ReplaceOriginal sets replace_original.
func (b *Builder) ReplaceOriginal(replace bool) *Builder {
	if b.err != nil {
		return b
	}
	b.payload.ReplaceOriginal = &replace
	return b
}

// DisableMarkdown turns mrkdwn off when disable is true. False is a no-op, so
// markdown cannot be re-enabled once disabled.
func (b *Builder) DisableMarkdown(disable bool) *Builder {
	if b.err != nil {
		return b
	}
	if disable {
		b.payload.Markdown = false
	}
	return b
}

// ResponseType sets response_type to "in_channel" when kind is exactly
// ResponseInChannel. Any other value is ignored.
func (b *Builder) ResponseType(kind string) *Builder {
	if b.err != nil {
		return b
	}
	if kind != ResponseInChannel {
		b.logger.Debug("message: ignoring response type", "kind", kind)
		return b
	}
	b.payload.ResponseType = ResponseInChannel
	return b
}

// AddAttachment appends a new attachment. Every argument is optional; an
// empty fallback falls back to the builder default.
func (b *Builder) AddAttachment(callbackID, attachmentType, fallback string) *Builder {
	if b.err != nil {
		return b
	}
	if fallback == "" {
		fallback = b.fallback
	}
	b.payload.Attachments = append(b.payload.Attachments, Attachment{
		CallbackID:     callbackID,
		AttachmentType: attachmentType,
		Fallback:       fallback,
		Actions:        []Action{},
	})
	return b
}

// AddTitle sets the latest attachment's title. The link is kept only when it
// is a valid URL.
func (b *Builder) AddTitle(text, link string) *Builder {
	if b.err != nil {
		return b
	}
	if text == "" {
		return b.invalid("AddTitle", "title text is required")
	}
	return b.withAttachment("AddTitle", func(a *Attachment) {
		a.Title = text
		if b.isURL(link) {
			a.TitleLink = link
		}
	})
}

// AddText sets the latest attachment's text.
func (b *Builder) AddText(text string) *Builder {
	if b.err != nil {
		return b
	}
	if text == "" {
		return b.invalid("AddText", "text is required")
	}
	return b.withAttachment("AddText", func(a *Attachment) { a.Text = text })
}

// AddPretext sets the text shown above the latest attachment.
func (b *Builder) AddPretext(text string) *Builder {
	if b.err != nil {
		return b
	}
	if text == "" {
		return b.invalid("AddPretext", "text is required")
	}
	return b.withAttachment("AddPretext", func(a *Attachment) { a.Pretext = text })
}

// imageURLRequired is shared by AddImage and AddThumbnail.
const imageURLRequired = "a valid image URL is required"

// AddImage sets the latest attachment's image.
func (b *Builder) AddImage(url string) *Builder {
	if b.err != nil {
		return b
	}
	if !b.isURL(url) {
		return b.invalid("AddImage", imageURLRequired)
	}
	return b.withAttachment("AddImage", func(a *Attachment) { a.ImageURL = url })
}

// AddThumbnail sets the latest attachment's thumbnail.
func (b *Builder) AddThumbnail(url string) *Builder {
	if b.err != nil {
		return b
	}
	if !b.isURL(url) {
		return b.invalid("AddThumbnail", imageURLRequired)
	}
	return b.withAttachment("AddThumbnail", func(a *Attachment) { a.ThumbURL = url })
}

// AddAuthor sets the author line. The icon is kept when non-empty; the link
// only when it is a valid URL.
func (b *Builder) AddAuthor(name, icon, link string) *Builder {
	if b.err != nil {
		return b
	}
	if name == "" {
		return b.invalid("AddAuthor", "author name is required")
	}
	return b.withAttachment("AddAuthor", func(a *Attachment) {
		a.AuthorName = name
		if icon != "" {
			a.AuthorIcon = icon
		}
		if b.isURL(link) {
			a.AuthorLink = link
		}
	})
}

// AddFooter sets the footer text and, when non-empty, its icon.
func (b *Builder) AddFooter(text, icon string) *Builder {
	if b.err != nil {
		return b
	}
	if text == "" {
		return b.invalid("AddFooter", "footer text is required")
	}
	return b.withAttachment("AddFooter", func(a *Attachment) {
		a.Footer = text
		if icon != "" {
			a.FooterIcon = icon
		}
	})
}

// AddColor sets the attachment's side bar color ("good", "#ff0000", ...).
func (b *Builder) AddColor(color string) *Builder {
	if b.err != nil {
		return b
	}
	if color == "" {
		return b.invalid("AddColor", "color is required")
	}
	return b.withAttachment("AddColor", func(a *Attachment) { a.Color = color })
}

// AddTimestamp stores ts as epoch milliseconds. The zero time is rejected.
func (b *Builder) AddTimestamp(ts time.Time) *Builder {
	if b.err != nil {
		return b
	}
	if ts.IsZero() {
		return b.invalid("AddTimestamp", "timestamp must be a valid time")
	}
	ms := ts.UnixMilli()
	return b.withAttachment("AddTimestamp", func(a *Attachment) { a.Ts = &ms })
}

// AddField appends a field to the latest attachment.
func (b *Builder) AddField(title, value string, short bool) *Builder {
	if b.err != nil {
		return b
	}
	if title == "" || value == "" {
		return b.invalid("AddField", "title and value are required")
	}
	return b.withAttachment("AddField", func(a *Attachment) {
		a.Fields = append(a.Fields, Field{Title: title, Value: value, Short: short})
	})
}

// AddAction appends a button to the latest attachment.
func (b *Builder) AddAction(text, name, value, style string) *Builder {
	if b.err != nil {
		return b
	}
	if text == "" || name == "" || value == "" {
		return b.invalid("AddAction", "text, name and value are required")
	}
	return b.withAttachment("AddAction", func(a *Attachment) {
		a.Actions = append(a.Actions, Action{
			Text:  text,
			Name:  name,
			Value: value,
			Type:  ActionButton,
			Style: style,
		})
	})
}

// AddConfirmation guards the latest action with a confirmation dialog.
// Empty labels take the builder defaults.
func (b *Builder) AddConfirmation(title, text, okLabel, dismissLabel string) *Builder {
	if b.err != nil {
		return b
	}
	if title == "" || text == "" {
		return b.invalid("AddConfirmation", "title and text are required")
	}
	act, err := b.latestAction("AddConfirmation")
	if err != nil {
		return b.fail(err)
	}
	if okLabel == "" {
		okLabel = b.okLabel
	}
	if dismissLabel == "" {
		dismissLabel = b.dismissLabel
	}
	act.Confirm = &Confirmation{
		Title:       title,
		Text:        text,
		OkText:      okLabel,
		DismissText: dismissLabel,
	}
	return b
}
