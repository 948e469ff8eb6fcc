package norma

import (
	"regexp"
	"strings"
)

var (
	// A clause only carries an inline list when the numbering starts at
	// one; later numbers alone mean the text quotes another provision.
	reListStart = regexp.MustCompile(`(?:^|\n)\s*1\s*[-.]`)
	reItemStart = regexp.MustCompile(`^(\d+)\s*[-.]\s+(.*)`)
)

// SplitInlineItems detects a numbered list embedded in a clause's running
// text ("1 - ...", "2 - ..."), trims the clause down to its preamble and
// lifts each list entry into a child item element. Lines that open no item
// continue the current one, joined with a space.
func SplitInlineItems(node *Element) {
	if node.Text == "" {
		return
	}

	loc := reListStart.FindStringIndex(node.Text)
	if loc == nil {
		return
	}

	preamble := strings.TrimSpace(node.Text[:loc[0]])
	listText := node.Text[loc[0]:]
	node.Text = preamble

	var items []*Element
	var current *Element
	for _, line := range strings.Split(listText, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		m := reItemStart.FindStringSubmatch(line)
		if m == nil {
			if current != nil {
				current.Text += " " + line
			}
			continue
		}

		if current != nil {
			items = append(items, current)
		}
		current = &Element{
			Identifier: node.Identifier + ".item." + m[1],
			Slug:       itemSlug(node.Slug, m[1]),
			Kind:       KindItem,
			Number:     m[1],
			Text:       m[2],
			InForce:    true,
		}
	}
	if current != nil {
		items = append(items, current)
	}

	node.Children = append(node.Children, items...)
}

func itemSlug(parent, number string) string {
	if parent == "" {
		return "item-" + number
	}
	return parent + ".item-" + number
}
