package teams

import "time"

// Activity is a Bot Framework activity.
type Activity struct {
	Type         string              `json:"type"`
	ID           string              `json:"id,omitempty"`
	Timestamp    *time.Time          `json:"timestamp,omitempty"`
	ServiceURL   string              `json:"serviceUrl,omitempty"`
	ChannelID    string              `json:"channelId,omitempty"`
	From         ChannelAccount      `json:"from,omitempty"`
	Recipient    ChannelAccount      `json:"recipient,omitempty"`
	Conversation ConversationAccount `json:"conversation,omitempty"`
	Text         string              `json:"text,omitempty"`
	TextFormat   string              `json:"textFormat,omitempty"`
	Locale       string              `json:"locale,omitempty"`
	ReplyToID    string              `json:"replyToId,omitempty"`
	MembersAdded []ChannelAccount    `json:"membersAdded,omitempty"`
}

// ChannelAccount identifies a user or bot on a channel.
type ChannelAccount struct {
	ID          string `json:"id"`
	Name        string `json:"name,omitempty"`
	AADObjectID string `json:"aadObjectId,omitempty"`
}

// ConversationAccount identifies the conversation an activity belongs to.
type ConversationAccount struct {
	ID               string `json:"id"`
	ConversationType string `json:"conversationType,omitempty"`
	TenantID         string `json:"tenantId,omitempty"`
}

// ResourceResponse is the connector's reply to a posted activity.
type ResourceResponse struct {
	ID string `json:"id"`
}

// errorResponse is the connector error body.
type errorResponse struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// NewReply builds a message activity replying to the incoming one.
// From and recipient are swapped so the connector routes it back to
// the sender.
func NewReply(incoming *Activity, text string) Activity {
	now := time.Now().UTC()
	return Activity{
		Type:         ActivityMessage,
		Timestamp:    &now,
		ServiceURL:   incoming.ServiceURL,
		ChannelID:    incoming.ChannelID,
		From:         incoming.Recipient,
		Recipient:    incoming.From,
		Conversation: incoming.Conversation,
		Text:         text,
		TextFormat:   "markdown",
		Locale:       incoming.Locale,
		ReplyToID:    incoming.ID,
	}
}
