package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/mattn/go-runewidth"

	"slice/pkg/span"
)

const defaultWidth = 80

// lineItem is one input line in the preview list.
type lineItem struct {
	index    int
	content  string
	selected bool
	width    int
}

func (l lineItem) Title() string {
	marker := " "
	if l.selected {
		marker = "▌"
	}
	text := fmt.Sprintf("%s %4d  %s", marker, l.index, l.content)
	if l.width > 0 {
		text = runewidth.Truncate(text, l.width, "…")
	}
	return text
}

func (l lineItem) Description() string { return "" }
func (l lineItem) FilterValue() string { return l.content }

// model is the Bubbletea model for the preview.
type model struct {
	list     list.Model
	path     string
	lines    []string
	sp       span.Span
	accepted bool
	quitting bool
	height   int
	width    int
}

// initialModel creates the initial preview model.
func initialModel(lines []string, path string, sp span.Span, height int) model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false

	l := list.New(buildItems(lines, sp, itemWidth(defaultWidth)), delegate, defaultWidth, listHeight(height))
	l.Title = path
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	return model{
		list:   l,
		path:   path,
		lines:  lines,
		sp:     sp,
		height: height,
		width:  defaultWidth,
	}
}

// buildItems materializes list items with the resolved range marked.
func buildItems(lines []string, sp span.Span, width int) []list.Item {
	rng := sp.Resolve(len(lines))
	items := make([]list.Item, len(lines))
	for i, line := range lines {
		items[i] = lineItem{
			index:    i,
			content:  line,
			selected: i >= rng.Lo && i < rng.Hi,
			width:    width,
		}
	}
	return items
}

func itemWidth(width int) int { return max(width-6, 10) }

func listHeight(height int) int { return max(height-8, 5) }
