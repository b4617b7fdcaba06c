package teams

import (
	"context"

	"github.com/gin-gonic/gin"

	"office-assistant/internal/model"
	pkgResponse "office-assistant/pkg/response"
	pkgTeams "office-assistant/pkg/teams"
)

// HandleActivity is the Gin handler for incoming Bot Framework
// activities. It responds with HTTP 200 immediately and processes the
// message in a background goroutine: the connector expects an answer
// within seconds, while classification plus the workflow can take far
// longer.
func (h *handler) HandleActivity(c *gin.Context) {
	ctx := c.Request.Context()

	var activity pkgTeams.Activity
	if err := c.ShouldBindJSON(&activity); err != nil {
		h.l.Errorf(ctx, "teams handler: failed to parse activity: %v", err)
		pkgResponse.Error(c, err, nil)
		return
	}

	switch activity.Type {
	case pkgTeams.ActivityMessage:
		// Snapshot before spawning the goroutine to avoid races on
		// the gin context.
		snapshot := activity
		go h.processMessage(&snapshot)
		pkgResponse.OK(c, map[string]string{"status": "accepted"})

	case pkgTeams.ActivityConversationUpdate:
		snapshot := activity
		go h.processConversationUpdate(&snapshot)
		pkgResponse.OK(c, map[string]string{"status": "accepted"})

	default:
		pkgResponse.OK(c, map[string]string{"status": "ignored"})
	}
}

// processMessage handles a single message activity.
func (h *handler) processMessage(activity *pkgTeams.Activity) {
	// Detach from the HTTP request context, which is cancelled after
	// the response.
	ctx := context.Background()

	if activity.Text == "" {
		return
	}

	if err := h.connector.SendTyping(ctx, activity); err != nil {
		h.l.Warnf(ctx, "teams handler: typing indicator failed: %v", err)
	}

	sc := scopeFromActivity(activity)
	reply := h.uc.ProcessMessage(ctx, sc, activity.Text)

	if err := h.connector.ReplyToActivity(ctx, activity, pkgTeams.NewReply(activity, reply)); err != nil {
		h.l.Errorf(ctx, "teams handler: reply failed: %v", err)
	}
}

// processConversationUpdate greets users added to the conversation.
func (h *handler) processConversationUpdate(activity *pkgTeams.Activity) {
	ctx := context.Background()

	for _, member := range activity.MembersAdded {
		// Skip the bot's own join event.
		if member.ID == h.botID || member.ID == activity.Recipient.ID {
			continue
		}

		sc := model.Scope{UserID: member.ID, UserName: member.Name, ConversationID: activity.Conversation.ID}
		welcome := h.uc.WelcomeMessage(sc)
		if err := h.connector.ReplyToActivity(ctx, activity, pkgTeams.NewReply(activity, welcome)); err != nil {
			h.l.Errorf(ctx, "teams handler: welcome failed: %v", err)
		}
	}
}

// scopeFromActivity maps Bot Framework identity onto the request
// scope. The channel account ID is always present; the AAD object ID
// is used as the stable user key when available.
func scopeFromActivity(activity *pkgTeams.Activity) model.Scope {
	mail := activity.From.AADObjectID
	if mail == "" {
		mail = activity.From.ID
	}
	return model.Scope{
		UserID:         activity.From.ID,
		UserMail:       mail,
		UserName:       activity.From.Name,
		ConversationID: activity.Conversation.ID,
	}
}
