package conversation

import "time"

const (
	// defaultMaxUsers bounds how many per-user histories are kept.
	defaultMaxUsers = 500

	// defaultHistoryTTL evicts a user's history after this idle time.
	defaultHistoryTTL = 30 * time.Minute

	// defaultMaxMessages caps the history window sent to the model.
	// Each turn contributes two messages, so this keeps 10 turns.
	defaultMaxMessages = 20

	// maxResponseTokens bounds a chat reply.
	maxResponseTokens = 1000

	// chatTemperature keeps replies conversational but stable.
	chatTemperature = 0.7
)

// systemPrompt frames the assistant for general conversation.
const systemPrompt = `你是一位親切的辦公室助理，協助同仁處理待辦事項、會議室預約與一般問題。
請使用繁體中文回覆，語氣自然、簡潔。與你的功能無關的問題也請盡力回答。`
