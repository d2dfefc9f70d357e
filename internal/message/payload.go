// Package message builds Slack legacy-attachment payloads.
//
// JSON keys use Slack's snake_case wire names so a Payload can be posted to
// an incoming webhook or a response_url as-is.
package message

// DefaultFallback is the fallback text used when an attachment is added
// without one.
const DefaultFallback = "Slack told us that you are not able to see this attachment 😢"

// Default confirmation dialog labels.
const (
	DefaultOkLabel      = "Ok"
	DefaultDismissLabel = "Dismiss"
)

// ResponseInChannel is the only response type the builder writes. Ephemeral
// is Slack's default and is never written explicitly.
const ResponseInChannel = "in_channel"

// ActionButton is the type of every action the builder creates.
const ActionButton = "button"

// Payload is the root message document.
type Payload struct {
	Markdown        bool         `json:"mrkdwn"`
	Text            string       `json:"text,omitempty"`
	ReplaceOriginal *bool        `json:"replace_original,omitempty"`
	ResponseType    string       `json:"response_type,omitempty"`
	Attachments     []Attachment `json:"attachments"`
}

// Attachment is one visual block of a message.
type Attachment struct {
	CallbackID     string   `json:"callback_id,omitempty"`
	AttachmentType string   `json:"attachment_type,omitempty"`
	Fallback       string   `json:"fallback"`
	Title          string   `json:"title,omitempty"`
	TitleLink      string   `json:"title_link,omitempty"`
	Text           string   `json:"text,omitempty"`
	Pretext        string   `json:"pretext,omitempty"`
	ImageURL       string   `json:"image_url,omitempty"`
	ThumbURL       string   `json:"thumb_url,omitempty"`
	AuthorName     string   `json:"author_name,omitempty"`
	AuthorIcon     string   `json:"author_icon,omitempty"`
	AuthorLink     string   `json:"author_link,omitempty"`
	Footer         string   `json:"footer,omitempty"`
	FooterIcon     string   `json:"footer_icon,omitempty"`
	Color          string   `json:"color,omitempty"`
	Ts             *int64   `json:"ts,omitempty"` // epoch milliseconds
	Fields         []Field  `json:"fields,omitempty"`
	Actions        []Action `json:"actions"`
}

// Field is a title/value pair rendered in an attachment's table.
type Field struct {
	Title string `json:"title"`
	Value string `json:"value"`
	Short bool   `json:"short"`
}

// Action is an interactive button.
type Action struct {
	Text    string        `json:"text"`
	Name    string        `json:"name"`
	Value   string        `json:"value"`
	Type    string        `json:"type"`
	Style   string        `json:"style,omitempty"`
	Confirm *Confirmation `json:"confirm,omitempty"`
}

// Confirmation is the dialog shown before an action is submitted.
type Confirmation struct {
	Title       string `json:"title"`
	Text        string `json:"text"`
	OkText      string `json:"ok_text"`
	DismissText string `json:"dismiss_text"`
}

func newPayload(text string) *Payload {
	return &Payload{
		Markdown:    true,
		Text:        text,
		Attachments: []Attachment{},
	}
}

// clone returns a deep copy of p. Nothing in the copy aliases p.
func (p *Payload) clone() *Payload {
	out := *p
	if p.ReplaceOriginal != nil {
		v := *p.ReplaceOriginal
		out.ReplaceOriginal = &v
	}
	out.Attachments = make([]Attachment, len(p.Attachments))
	for i, a := range p.Attachments {
		out.Attachments[i] = a.clone()
	}
	return &out
}

func (a Attachment) clone() Attachment {
	out := a
	if a.Ts != nil {
		v := *a.Ts
		out.Ts = &v
	}
	if a.Fields != nil {
		out.Fields = append([]Field(nil), a.Fields...)
	}
	out.Actions = make([]Action, len(a.Actions))
	for i, act := range a.Actions {
		if act.Confirm != nil {
			c := *act.Confirm
			act.Confirm = &c
		}
		out.Actions[i] = act
	}
	return out
}
