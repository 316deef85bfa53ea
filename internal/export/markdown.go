package export

import "strings"

// The markdown dialect here is deliberately tiny: bullets, two heading
// levels and **bold**. Nested markup, italics and escapes are not handled;
// generated content never uses them.

type blockKind int

const (
	blockParagraph blockKind = iota
	blockHeading1
	blockHeading2
	blockBullets
)

type run struct {
	Text string
	Bold bool
}

type block struct {
	Kind  blockKind
	Runs  []run
	Items [][]run
}

var bulletPrefixes = []string{"- ", "* ", "• "}

// parseMarkdown splits body text into renderable blocks.
func parseMarkdown(body string) []block {
	body = stripWrappingQuotes(body)
	body = strings.ReplaceAll(body, "\r\n", "\n")
	body = strings.ReplaceAll(body, "\u00a0", " ")

	var blocks []block
	for _, chunk := range strings.Split(body, "\n\n") {
		chunk = strings.TrimSpace(chunk)
		if chunk == "" {
			continue
		}
		blocks = append(blocks, classifyBlock(chunk))
	}
	return blocks
}

func classifyBlock(chunk string) block {
	lines := strings.Split(chunk, "\n")

	if allBulletLines(lines) {
		items := make([][]run, 0, len(lines))
		for _, line := range lines {
			items = append(items, parseRuns(stripBulletMarker(line)))
		}
		return block{Kind: blockBullets, Items: items}
	}
	if strings.HasPrefix(chunk, "## ") {
		return block{Kind: blockHeading2, Runs: parseRuns(strings.TrimPrefix(chunk, "## "))}
	}
	if strings.HasPrefix(chunk, "# ") {
		return block{Kind: blockHeading1, Runs: parseRuns(strings.TrimPrefix(chunk, "# "))}
	}

	for i, line := range lines {
		lines[i] = strings.TrimSpace(line)
	}
	return block{Kind: blockParagraph, Runs: parseRuns(strings.Join(lines, " "))}
}

func allBulletLines(lines []string) bool {
	for _, line := range lines {
		if !isBulletLine(line) {
			return false
		}
	}
	return len(lines) > 0
}

func isBulletLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, prefix := range bulletPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return true
		}
	}
	return false
}

func stripBulletMarker(line string) string {
	trimmed := strings.TrimSpace(line)
	for _, prefix := range bulletPrefixes {
		if strings.HasPrefix(trimmed, prefix) {
			return strings.TrimSpace(strings.TrimPrefix(trimmed, prefix))
		}
	}
	return trimmed
}

// parseRuns splits on ** with odd-indexed segments bold.
func parseRuns(text string) []run {
	segments := strings.Split(text, "**")
	runs := make([]run, 0, len(segments))
	for i, segment := range segments {
		if segment == "" {
			continue
		}
		runs = append(runs, run{Text: segment, Bold: i%2 == 1})
	}
	return runs
}

// stripWrappingQuotes removes one layer of ASCII or curly quotes wrapping
// the whole text. Models quote entire answers often enough to warrant it.
func stripWrappingQuotes(s string) string {
	trimmed := strings.TrimSpace(s)
	pairs := [][2]string{
		{`"`, `"`},
		{"“", "”"},
	}
	for _, pair := range pairs {
		if len(trimmed) >= len(pair[0])+len(pair[1]) &&
			strings.HasPrefix(trimmed, pair[0]) && strings.HasSuffix(trimmed, pair[1]) {
			return strings.TrimSpace(trimmed[len(pair[0]) : len(trimmed)-len(pair[1])])
		}
	}
	return trimmed
}
