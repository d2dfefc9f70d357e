package message

import (
	"encoding/json"
	"fmt"
	"strconv"

	slackgo "github.com/slack-go/slack"
)

// JSON encodes the payload. A non-empty indent produces indented output.
func (p *Payload) JSON(indent string) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if indent == "" {
		data, err = json.Marshal(p)
	} else {
		data, err = json.MarshalIndent(p, "", indent)
	}
	if err != nil {
		return nil, fmt.Errorf("marshal payload: %w", err)
	}
	return data, nil
}

// SlackAttachments converts the attachments to slack-go's types.
func (p *Payload) SlackAttachments() []slackgo.Attachment {
	out := make([]slackgo.Attachment, 0, len(p.Attachments))
	for _, a := range p.Attachments {
		out = append(out, a.slack())
	}
	return out
}

// WebhookMessage converts the payload for slackgo.PostWebhookContext.
// slack-go's webhook shape has no mrkdwn key; Slack renders markdown there
// by default.
func (p *Payload) WebhookMessage() *slackgo.WebhookMessage {
	msg := &slackgo.WebhookMessage{
		Text:         p.Text,
		Attachments:  p.SlackAttachments(),
		ResponseType: p.ResponseType,
	}
	if p.ReplaceOriginal != nil {
		msg.ReplaceOriginal = *p.ReplaceOriginal
	}
	return msg
}

// MsgOptions converts the payload for (*slackgo.Client).PostMessageContext.
// response_type and replace_original only apply to response URLs and are
// left to the caller (slackgo.MsgOptionResponseURL, MsgOptionReplaceOriginal).
func (p *Payload) MsgOptions() []slackgo.MsgOption {
	opts := []slackgo.MsgOption{
		slackgo.MsgOptionText(p.Text, false),
	}
	if len(p.Attachments) > 0 {
		opts = append(opts, slackgo.MsgOptionAttachments(p.SlackAttachments()...))
	}
	if !p.Markdown {
		opts = append(opts, slackgo.MsgOptionDisableMarkdown())
	}
	return opts
}

func (a Attachment) slack() slackgo.Attachment {
	out := slackgo.Attachment{
		CallbackID: a.CallbackID,
		Fallback:   a.Fallback,
		Title:      a.Title,
		TitleLink:  a.TitleLink,
		Text:       a.Text,
		Pretext:    a.Pretext,
		ImageURL:   a.ImageURL,
		ThumbURL:   a.ThumbURL,
		AuthorName: a.AuthorName,
		AuthorIcon: a.AuthorIcon,
		AuthorLink: a.AuthorLink,
		Footer:     a.Footer,
		FooterIcon: a.FooterIcon,
		Color:      a.Color,
	}
	if a.Ts != nil {
		out.Ts = json.Number(strconv.FormatInt(*a.Ts, 10))
	}
	for _, f := range a.Fields {
		out.Fields = append(out.Fields, slackgo.AttachmentField{
			Title: f.Title,
			Value: f.Value,
			Short: f.Short,
		})
	}
	for _, act := range a.Actions {
		sa := slackgo.AttachmentAction{
			Name:  act.Name,
			Text:  act.Text,
			Value: act.Value,
			Style: act.Style,
			Type:  slackgo.ActionType(act.Type),
		}
		if c := act.Confirm; c != nil {
			sa.Confirm = &slackgo.ConfirmationField{
				Title:       c.Title,
				Text:        c.Text,
				OkText:      c.OkText,
				DismissText: c.DismissText,
			}
		}
		out.Actions = append(out.Actions, sa)
	}
	return out
}
