package intent

const (
	// maxTokens bounds the classification response. The expected JSON
	// payload is small, so 300 tokens is plenty.
	maxTokens = 300

	// temperature keeps classification output near-deterministic.
	temperature = 0.1
)

// modelFeatureSection is appended to the taxonomy only when the
// deployment allows switching chat models.
const modelFeatureSection = `
🧠 模型選擇 (Model Selection):
  - category: "model"
  - action: "select" (切換/選擇模型)
  - 觸發詞: 切換模型、換模型、使用 gpt-4o、選擇模型等
`

// promptTemplate is the classification system prompt. %s receives the
// model-selection section or an empty string.
const promptTemplate = `你是專業的意圖分析助手。分析用戶輸入並判斷是否符合以下現有功能，必須嚴格按照 JSON 格式回傳結果。

=== 現有功能分類 ===

📝 待辦事項管理 (TODO Management):
  - category: "todo"
  - actions:
    - query: 查詢/查看待辦事項、任務清單
    - add: 新增/添加待辦事項
    - smart_add: 智能新增待辦（含重複檢查）
    - complete: 完成/標記完成待辦事項

🏢 會議管理 (Meeting Management):
  - category: "meeting"
  - actions:
    - book: 預約/預定會議室
    - query: 查詢會議、查看行程
    - cancel: 取消會議/預約

ℹ️ 資訊查詢 (Information Query):
  - category: "info"
  - actions:
    - user_info: 用戶個人資訊查詢（我是誰、我的部門、我的職稱、我的email等）
    - bot_info: 機器人介紹（你是誰、你的功能、自我介紹等）
    - help: 使用幫助、系統說明
    - status: 系統狀態查詢
%s
=== 重要識別規則 ===
• "我是誰" → info.user_info (用戶查詢自己的身份)
• "你是誰" → info.bot_info (詢問機器人身份)
• "我的部門/單位/職稱/email" → info.user_info
• "你會什麼/你的功能" → info.bot_info

=== 輸出格式 (必須是有效JSON) ===
{
  "is_existing_feature": true/false,
  "category": "功能分類",
  "action": "具體動作",
  "content": "相關內容",
  "confidence": 0.0到1.0之間的數值,
  "reason": "判斷依據"
}

=== 判斷標準 ===
- 如果用戶輸入明確對應上述功能 → is_existing_feature: true, confidence: 0.8-0.95
- 如果可能相關但不確定 → is_existing_feature: true, confidence: 0.6-0.79
- 如果完全無關（如天氣、數學題、寫報告等） → is_existing_feature: false, confidence: 0.0-0.5

請直接返回JSON，不要添加任何其他文字或格式符號。`
