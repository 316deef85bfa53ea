package interviews

import (
	"strings"

	"github.com/tidwall/gjson"
)

// repairItems salvages a quiz item list from raw model output. Models wrap
// JSON in prose or markdown fences often enough that parsing the raw string
// directly is the exception, not the rule.
func repairItems(raw string) []Item {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}

	candidates := []string{raw}
	if span := largestBalancedSpan(raw, '{', '}'); span != "" {
		candidates = append(candidates, span)
	}
	if span := largestBalancedSpan(raw, '[', ']'); span != "" {
		// A bare array is accepted as the items list itself.
		candidates = append(candidates, `{"items":`+span+`}`)
	}

	for _, candidate := range candidates {
		if items := itemsFrom(candidate); len(items) > 0 {
			return items
		}
	}
	return nil
}

func itemsFrom(candidate string) []Item {
	if !gjson.Valid(candidate) {
		return nil
	}
	list := gjson.Get(candidate, "items")
	if !list.IsArray() {
		return nil
	}

	var items []Item
	list.ForEach(func(_, value gjson.Result) bool {
		question := value.Get("question")
		answer := value.Get("idealAnswer")
		if question.Type != gjson.String || answer.Type != gjson.String {
			return true
		}
		q := strings.TrimSpace(question.String())
		if q == "" {
			return true
		}
		items = append(items, Item{Question: q, IdealAnswer: strings.TrimSpace(answer.String())})
		return true
	})
	return items
}

// largestBalancedSpan returns the longest substring opening with open and
// closing with its matching close at depth zero.
func largestBalancedSpan(s string, open, close byte) string {
	best := ""
	depth := 0
	start := -1
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case open:
			if depth == 0 {
				start = i
			}
			depth++
		case close:
			if depth == 0 {
				continue
			}
			depth--
			if depth == 0 && start >= 0 {
				if span := s[start : i+1]; len(span) > len(best) {
					best = span
				}
				start = -1
			}
		}
	}
	return best
}
