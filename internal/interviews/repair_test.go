package interviews

import "testing"

func TestRepairItemsCleanJSON(t *testing.T) {
	items := repairItems(`{"items":[{"question":"Why Go?","idealAnswer":"Concurrency and tooling."}]}`)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	if items[0].Question != "Why Go?" {
		t.Fatalf("unexpected question %q", items[0].Question)
	}
}

func TestRepairItemsWrappedInProse(t *testing.T) {
	raw := "Sure! Here is your quiz:\n```json\n{\"items\":[{\"question\":\"Tell me about a hard bug.\",\"idealAnswer\":\"Walk through discovery and fix.\"}]}\n```\nGood luck!"
	items := repairItems(raw)
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
}

func TestRepairItemsBareArray(t *testing.T) {
	raw := `Here you go: [{"question":"What is a goroutine?","idealAnswer":"A lightweight thread managed by the runtime."}]`
	items := repairItems(raw)
	if len(items) != 1 {
		t.Fatalf("expected 1 item from bare array, got %d", len(items))
	}
}

func TestRepairItemsDropsMalformedEntries(t *testing.T) {
	raw := `{"items":[
		{"question":"Keep me","idealAnswer":"yes"},
		{"question":"","idealAnswer":"empty question"},
		{"question":42,"idealAnswer":"non-string question"},
		{"question":"No answer","idealAnswer":null}
	]}`
	items := repairItems(raw)
	if len(items) != 1 {
		t.Fatalf("expected 1 surviving item, got %d", len(items))
	}
	if items[0].Question != "Keep me" {
		t.Fatalf("unexpected survivor %q", items[0].Question)
	}
}

func TestRepairItemsGarbage(t *testing.T) {
	for _, raw := range []string{"", "no json here", "{broken", "[1,2,3]"} {
		if items := repairItems(raw); len(items) != 0 {
			t.Fatalf("raw %q: expected no items, got %d", raw, len(items))
		}
	}
}
