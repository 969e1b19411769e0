package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles all Bubbletea update logic for the preview model.
func Update(m model, msg tea.Msg) (model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return handleKeyMsg(m, msg)
	case tea.WindowSizeMsg:
		return handleWindowResize(m, msg)
	default:
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
}

// handleKeyMsg maps keys onto bound adjustments. Brackets move the begin
// bound, braces move the end bound; b and e reopen a bound. Everything else
// is forwarded to the list for navigation.
func handleKeyMsg(m model, msg tea.KeyMsg) (model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.quitting = true
		return m, tea.Quit

	case "enter":
		m.accepted = true
		m.quitting = true
		return m, tea.Quit

	case "[":
		return adjustBegin(m, -1), nil
	case "]":
		return adjustBegin(m, 1), nil
	case "{":
		return adjustEnd(m, -1), nil
	case "}":
		return adjustEnd(m, 1), nil

	case "b":
		m.sp.Begin = nil
		return refreshItems(m), nil
	case "e":
		m.sp.End = nil
		return refreshItems(m), nil

	default:
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
}

func adjustBegin(m model, delta int) model {
	v := 0
	if m.sp.Begin != nil {
		v = *m.sp.Begin
	}
	v = clampBound(v+delta, len(m.lines))
	m.sp.Begin = &v
	return refreshItems(m)
}

func adjustEnd(m model, delta int) model {
	v := len(m.lines)
	if m.sp.End != nil {
		v = *m.sp.End
	}
	v = clampBound(v+delta, len(m.lines))
	m.sp.End = &v
	return refreshItems(m)
}

// clampBound keeps an adjusted bound within [-total, total], the widest
// interval where another keypress still changes the resolved range.
func clampBound(v, total int) int {
	if v < -total {
		return -total
	}
	if v > total {
		return total
	}
	return v
}

func refreshItems(m model) model {
	m.list.SetItems(buildItems(m.lines, m.sp, itemWidth(m.width)))
	return m
}

func handleWindowResize(m model, msg tea.WindowSizeMsg) (model, tea.Cmd) {
	m.height = msg.Height
	m.width = msg.Width
	m.list.SetHeight(listHeight(msg.Height))
	m.list.SetWidth(msg.Width)
	return refreshItems(m), nil
}
