package teams

import "time"

const (
	// DefaultTokenURL is the Bot Framework OAuth token endpoint.
	DefaultTokenURL = "https://login.microsoftonline.com/botframework.com/oauth2/v2.0/token"

	// DefaultScope is the Bot Framework connector API scope.
	DefaultScope = "https://api.botframework.com/.default"

	// DefaultTimeout bounds outbound connector calls.
	DefaultTimeout = 15 * time.Second
)

// Activity types the bot handles.
const (
	ActivityMessage            = "message"
	ActivityConversationUpdate = "conversationUpdate"
	ActivityTyping             = "typing"
)
