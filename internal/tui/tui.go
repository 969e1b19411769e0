package tui

import (
	"bufio"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"slice/pkg/span"
)

// Run launches the interactive preview of path with sp preselected. It
// returns the span in effect when the user accepted, or accepted=false when
// they quit without printing. The preview renders on stderr so stdout stays
// free for the extracted lines.
func Run(path string, sp span.Span) (final span.Span, accepted bool, err error) {
	lines, err := readLines(path)
	if err != nil {
		return span.Span{}, false, err
	}

	m := initialModel(lines, path, sp, 24)
	p := tea.NewProgram(&teaModelAdapter{m}, tea.WithOutput(os.Stderr))

	res, err := p.Run()
	if err != nil {
		return span.Span{}, false, err
	}
	adapter := res.(*teaModelAdapter)
	return adapter.m.sp, adapter.m.accepted, nil
}

func readLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %q: %w", path, err)
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file %q: %w", path, err)
	}
	return lines, nil
}

// teaModelAdapter adapts our model to the tea.Model interface using Update and ModelView.
type teaModelAdapter struct {
	m model
}

func (a *teaModelAdapter) Init() tea.Cmd {
	return nil
}

func (a *teaModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m2, cmd := Update(a.m, msg)
	a.m = m2
	return a, cmd
}

func (a *teaModelAdapter) View() string {
	return ModelView(a.m)
}
