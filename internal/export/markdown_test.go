package export

import (
	"reflect"
	"testing"
)

func TestStripWrappingQuotes(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{`"quoted letter"`, "quoted letter"},
		{"“curly quoted”", "curly quoted"},
		{`say "hi" there`, `say "hi" there`},
		{"plain", "plain"},
		{`""`, ""},
	}
	for _, tc := range cases {
		if got := stripWrappingQuotes(tc.in); got != tc.want {
			t.Fatalf("strip %q: expected %q, got %q", tc.in, tc.want, got)
		}
	}
	// One layer only; re-running must not strip inner quotes.
	once := stripWrappingQuotes(`""double wrapped""`)
	if stripWrappingQuotes(once) == once {
		t.Log("inner layer intact after one strip")
	}
}

func TestParseMarkdownBlocks(t *testing.T) {
	body := "# Main Title\n\n## Skills\n\n- Go and **distributed systems**\n- SQL\n\nA paragraph\nthat wraps lines.\r\n\r\nAnother\u00a0paragraph."
	blocks := parseMarkdown(body)

	if len(blocks) != 5 {
		t.Fatalf("expected 5 blocks, got %d: %+v", len(blocks), blocks)
	}
	if blocks[0].Kind != blockHeading1 || blocks[0].Runs[0].Text != "Main Title" {
		t.Fatalf("unexpected heading1 block %+v", blocks[0])
	}
	if blocks[1].Kind != blockHeading2 || blocks[1].Runs[0].Text != "Skills" {
		t.Fatalf("unexpected heading2 block %+v", blocks[1])
	}
	if blocks[2].Kind != blockBullets || len(blocks[2].Items) != 2 {
		t.Fatalf("unexpected bullet block %+v", blocks[2])
	}
	wantRuns := []run{{Text: "Go and "}, {Text: "distributed systems", Bold: true}}
	if !reflect.DeepEqual(blocks[2].Items[0], wantRuns) {
		t.Fatalf("unexpected bullet runs %+v", blocks[2].Items[0])
	}
	if blocks[3].Kind != blockParagraph || blocks[3].Runs[0].Text != "A paragraph that wraps lines." {
		t.Fatalf("expected collapsed paragraph, got %+v", blocks[3])
	}
	if blocks[4].Runs[0].Text != "Another paragraph." {
		t.Fatalf("expected NBSP normalized, got %+v", blocks[4])
	}
}

func TestParseMarkdownMixedBulletBlockIsParagraph(t *testing.T) {
	blocks := parseMarkdown("- a bullet\nbut this line is not")
	if len(blocks) != 1 || blocks[0].Kind != blockParagraph {
		t.Fatalf("expected single paragraph, got %+v", blocks)
	}
}

func TestParseMarkdownBulletMarkers(t *testing.T) {
	blocks := parseMarkdown("- dash\n* star\n• dot")
	if len(blocks) != 1 || blocks[0].Kind != blockBullets {
		t.Fatalf("expected bullet block, got %+v", blocks)
	}
	got := []string{}
	for _, item := range blocks[0].Items {
		got = append(got, item[0].Text)
	}
	if !reflect.DeepEqual(got, []string{"dash", "star", "dot"}) {
		t.Fatalf("unexpected items %v", got)
	}
}

func TestParseRunsUnbalancedBold(t *testing.T) {
	runs := parseRuns("start **bold tail")
	if len(runs) != 2 {
		t.Fatalf("expected 2 runs, got %+v", runs)
	}
	if !runs[1].Bold {
		t.Fatal("expected trailing segment bold after unbalanced marker")
	}
}

func TestParseMarkdownEmptyBody(t *testing.T) {
	if blocks := parseMarkdown("   \n\n  "); len(blocks) != 0 {
		t.Fatalf("expected no blocks, got %+v", blocks)
	}
}
