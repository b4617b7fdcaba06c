package similarity

import (
	"regexp"
	"strings"
	"unicode"
)

// timeKeywords marks a text as time-referencing when any of them appears.
var timeKeywords = []string{
	"下午", "上午", "晚上", "早上", "今天", "明天", "後天",
	"週一", "週二", "週三", "週四", "週五", "週六", "週日",
	"月份", "小時", "分鐘", "點", "時", "分", "秒",
}

// actionKeywords is the closed verb list used for action overlap.
var actionKeywords = []string{
	"討論", "開會", "會議", "聯絡", "打電話", "發信", "寫",
	"完成", "處理", "檢查", "確認", "準備",
}

// personConnectives anchor CJK name extraction: the runes that typically
// precede a person reference (跟小明…, 給客戶…).
var personConnectives = map[rune]struct{}{
	'跟': {}, '和': {}, '與': {}, '給': {}, '向': {}, '幫': {}, '請': {},
}

var latinNamePattern = regexp.MustCompile(`[A-Za-z]{2,}`)

const (
	minNameRunes = 2
	maxNameRunes = 4
)

// ExtractFeatures derives the lexical features of one text. Blank or
// whitespace-only input yields all-empty features.
func ExtractFeatures(text string) TextFeatures {
	f := TextFeatures{
		Persons:      make(map[string]struct{}),
		Actions:      make(map[string]struct{}),
		ContentWords: make(map[string]struct{}),
	}

	if strings.TrimSpace(text) == "" {
		return f
	}

	lower := strings.ToLower(text)

	for _, kw := range timeKeywords {
		if strings.Contains(lower, kw) {
			f.TimeMentioned = true
			break
		}
	}

	for _, kw := range actionKeywords {
		if strings.Contains(lower, kw) {
			f.Actions[kw] = struct{}{}
		}
	}

	for _, name := range extractPersons(text) {
		f.Persons[name] = struct{}{}
	}

	for _, w := range strings.Fields(lower) {
		f.ContentWords[w] = struct{}{}
	}

	return f
}

// extractPersons finds person-like tokens: Latin-letter runs of length
// >= 2 anywhere, and CJK runs of 2-4 runes anchored behind a connective,
// cut at the first action or time keyword.
func extractPersons(text string) []string {
	persons := latinNamePattern.FindAllString(text, -1)

	runes := []rune(text)
	for i, r := range runes {
		if _, ok := personConnectives[r]; !ok {
			continue
		}

		segment := collectHanRun(runes[i+1:])
		name := cutAtKeyword(segment)
		if n := len([]rune(name)); n >= minNameRunes && n <= maxNameRunes {
			persons = append(persons, name)
		}
	}

	return persons
}

// collectHanRun takes the leading Han runes, stopping at a non-Han rune
// or at the next connective.
func collectHanRun(runes []rune) string {
	var b strings.Builder
	for _, r := range runes {
		if _, conn := personConnectives[r]; conn || !unicode.Is(unicode.Han, r) {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// cutAtKeyword truncates a segment at the earliest action or time
// keyword occurrence, so "小明討論會議" reduces to "小明".
func cutAtKeyword(segment string) string {
	cut := len(segment)
	for _, kw := range actionKeywords {
		if idx := strings.Index(segment, kw); idx >= 0 && idx < cut {
			cut = idx
		}
	}
	for _, kw := range timeKeywords {
		if idx := strings.Index(segment, kw); idx >= 0 && idx < cut {
			cut = idx
		}
	}
	return segment[:cut]
}
