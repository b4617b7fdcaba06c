package intent

import (
	"encoding/json"
	"regexp"
	"strconv"
	"strings"
)

var (
	fenceOpenPattern  = regexp.MustCompile("^```(?:json)?\n?")
	fenceClosePattern = regexp.MustCompile("\n?```$")

	// jsonObjectPattern extracts the first {...} block, allowing one
	// level of nesting. Best-effort fallback behind strict parsing.
	jsonObjectPattern = regexp.MustCompile(`\{[^{}]*(?:\{[^{}]*\}[^{}]*)*\}`)
)

// parseResponse turns raw completion text into an unnormalized Result.
// The second return value is false when no JSON could be extracted; the
// returned Result then carries the failure reason and must not be
// normalized further.
func parseResponse(text string) (Result, bool) {
	if strings.TrimSpace(text) == "" {
		return Result{Reason: "AI 回應為空"}, false
	}

	cleaned := stripFences(text)

	data, ok := extractJSON(cleaned)
	if !ok {
		return Result{Reason: "無法解析 JSON 回應"}, false
	}

	return coerceResult(data), true
}

// stripFences removes a markdown code-fence wrapper if present.
func stripFences(text string) string {
	cleaned := strings.TrimSpace(text)
	if strings.HasPrefix(cleaned, "```") {
		cleaned = fenceOpenPattern.ReplaceAllString(cleaned, "")
		cleaned = fenceClosePattern.ReplaceAllString(cleaned, "")
	}
	return strings.TrimSpace(cleaned)
}

// extractJSON parses text as a JSON object, falling back to regex
// extraction of the first object-looking block.
func extractJSON(text string) (map[string]any, bool) {
	var data map[string]any
	if err := json.Unmarshal([]byte(text), &data); err == nil {
		return data, true
	}

	match := jsonObjectPattern.FindString(text)
	if match == "" {
		return nil, false
	}
	if err := json.Unmarshal([]byte(match), &data); err != nil {
		return nil, false
	}
	return data, true
}

// coerceResult maps loosely-typed JSON fields onto a Result. Wrong
// types degrade to zero values instead of failing the whole parse.
func coerceResult(data map[string]any) Result {
	return Result{
		IsExistingFeature: coerceBool(data["is_existing_feature"]),
		Category:          coerceString(data["category"]),
		Action:            coerceString(data["action"]),
		Content:           coerceString(data["content"]),
		Confidence:        coerceFloat(data["confidence"]),
		Reason:            coerceString(data["reason"]),
	}
}

func coerceBool(v any) bool {
	b, _ := v.(bool)
	return b
}

func coerceString(v any) string {
	s, _ := v.(string)
	return s
}

func coerceFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil {
			return 0.0
		}
		return f
	default:
		return 0.0
	}
}
