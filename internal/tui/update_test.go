package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"slice/pkg/span"
)

// simulateKeyMsg creates a tea.KeyMsg for a given string key
func simulateKeyMsg(key string) tea.KeyMsg {
	return tea.KeyMsg{
		Type:  tea.KeyRunes,
		Runes: []rune(key),
	}
}

func previewModel(t *testing.T, slice string, lines ...string) model {
	t.Helper()
	sp, err := span.Parse(slice)
	if err != nil {
		t.Fatalf("Parse(%q) failed: %v", slice, err)
	}
	return initialModel(lines, "test.txt", sp, 24)
}

func selectedIndexes(m model) []int {
	var selected []int
	for _, item := range m.list.Items() {
		if li, ok := item.(lineItem); ok && li.selected {
			selected = append(selected, li.index)
		}
	}
	return selected
}

func TestHandleKeyMsgAdjustsBegin(t *testing.T) {
	m := previewModel(t, ":", "a", "b", "c", "d")

	m, _ = handleKeyMsg(m, simulateKeyMsg("]"))
	if m.sp.Begin == nil || *m.sp.Begin != 1 {
		t.Fatalf("begin after ] = %v, want 1", m.sp)
	}
	got := selectedIndexes(m)
	if len(got) != 3 || got[0] != 1 {
		t.Errorf("selected lines after ] = %v, want [1 2 3]", got)
	}

	m, _ = handleKeyMsg(m, simulateKeyMsg("["))
	if *m.sp.Begin != 0 {
		t.Errorf("begin after [ = %d, want 0", *m.sp.Begin)
	}
}

func TestHandleKeyMsgAdjustsEnd(t *testing.T) {
	m := previewModel(t, ":", "a", "b", "c", "d")

	m, _ = handleKeyMsg(m, simulateKeyMsg("{"))
	if m.sp.End == nil || *m.sp.End != 3 {
		t.Fatalf("end after { = %v, want 3", m.sp)
	}
	got := selectedIndexes(m)
	if len(got) != 3 || got[len(got)-1] != 2 {
		t.Errorf("selected lines after { = %v, want [0 1 2]", got)
	}
}

func TestHandleKeyMsgClampsBounds(t *testing.T) {
	m := previewModel(t, "-4:", "a", "b", "c", "d")

	// Already at the most negative useful value; stepping down stays put.
	m, _ = handleKeyMsg(m, simulateKeyMsg("["))
	if *m.sp.Begin != -4 {
		t.Errorf("begin clamped to %d, want -4", *m.sp.Begin)
	}
}

func TestHandleKeyMsgReopensBounds(t *testing.T) {
	m := previewModel(t, "1:3", "a", "b", "c", "d")

	m, _ = handleKeyMsg(m, simulateKeyMsg("b"))
	if m.sp.Begin != nil {
		t.Errorf("begin after b = %v, want open", *m.sp.Begin)
	}
	m, _ = handleKeyMsg(m, simulateKeyMsg("e"))
	if m.sp.End != nil {
		t.Errorf("end after e = %v, want open", *m.sp.End)
	}
	if got := selectedIndexes(m); len(got) != 4 {
		t.Errorf("selected lines after reopening = %v, want all four", got)
	}
}

func TestHandleKeyMsgAccept(t *testing.T) {
	m := previewModel(t, "1:2", "a", "b", "c")

	m, cmd := handleKeyMsg(m, tea.KeyMsg{Type: tea.KeyEnter})
	if !m.accepted {
		t.Errorf("accepted = false after enter")
	}
	if cmd == nil {
		t.Errorf("enter did not produce a quit command")
	}
}

func TestHandleKeyMsgQuit(t *testing.T) {
	m := previewModel(t, ":", "a")

	m, cmd := handleKeyMsg(m, simulateKeyMsg("q"))
	if m.accepted {
		t.Errorf("accepted = true after q")
	}
	if !m.quitting {
		t.Errorf("quitting = false after q")
	}
	if cmd == nil {
		t.Errorf("q did not produce a quit command")
	}
}

func TestHandleWindowResize(t *testing.T) {
	m := previewModel(t, ":", "a", "b")

	m, _ = handleWindowResize(m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.width != 120 || m.height != 40 {
		t.Errorf("model size = %dx%d, want 120x40", m.width, m.height)
	}
}
