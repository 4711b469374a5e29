package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/drake/gridui/debug"
	"github.com/drake/gridui/draw"
	"github.com/drake/gridui/grid"
	"github.com/drake/gridui/internal/board"
	"github.com/drake/gridui/internal/buffer"
)

// lineMsg carries one streamed input line.
type lineMsg string

// inputDoneMsg signals that the input stream has ended.
type inputDoneMsg struct{}

// waitForLine returns a command that reads the next streamed line.
func waitForLine(lines <-chan string) tea.Cmd {
	if lines == nil {
		return nil
	}
	return func() tea.Msg {
		line, ok := <-lines
		if !ok {
			return inputDoneMsg{}
		}
		return lineMsg(line)
	}
}

type keyMap struct {
	Quit       key.Binding
	ShoveMinus key.Binding
	ShovePlus  key.Binding
	Clear      key.Binding
	Type       key.Binding
	Submit     key.Binding
	Cancel     key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		ShoveMinus: key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "shove minus")),
		ShovePlus:  key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "shove plus")),
		Clear:      key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear")),
		Type:       key.NewBinding(key.WithKeys("i", "enter"), key.WithHelp("i", "type")),
		Submit:     key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "feed")),
		Cancel:     key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "cancel")),
	}
}

// help renders the bindings that apply in the current input state.
func (k keyMap) help(typing bool) string {
	bindings := []key.Binding{k.Type, k.ShoveMinus, k.ShovePlus, k.Clear, k.Quit}
	if typing {
		bindings = []key.Binding{k.Submit, k.Cancel}
	}
	parts := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, "  ")
}

type styles struct {
	Frame  lipgloss.Style
	Status lipgloss.Style
	Error  lipgloss.Style
	Muted  lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		Frame: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Status: lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("167")), // Muted red
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
	}
}

// model is the Bubble Tea model for interactive mode. The board is owned by
// the model; other goroutines only see the published stats snapshot.
type model struct {
	board  *board.Board
	canvas *draw.Canvas
	input  textinput.Model
	keys   keyMap
	styles styles
	lines  <-chan string

	stats  *atomic.Pointer[[]board.Stats]
	err    error
	logger *slog.Logger
}

func newModel(b *board.Board, lines <-chan string, logger *slog.Logger) model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "line to feed"

	m := model{
		board:  b,
		canvas: draw.NewCanvas(b.Size()),
		input:  ti,
		keys:   defaultKeyMap(),
		styles: defaultStyles(),
		lines:  lines,
		stats:  &atomic.Pointer[[]board.Stats]{},
		logger: logger,
	}
	m.publish()
	return m
}

// Init implements tea.Model.
func (m model) Init() tea.Cmd {
	return waitForLine(m.lines)
}

// Update implements tea.Model.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case lineMsg:
		m.feed(string(msg))
		return m, waitForLine(m.lines)

	case inputDoneMsg:
		m.lines = nil
		return m, nil

	case tea.KeyMsg:
		if m.input.Focused() {
			return m.handleTypingKey(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.ShoveMinus):
		m.err = m.board.Shove(grid.Minus)
	case key.Matches(msg, m.keys.ShovePlus):
		m.err = m.board.Shove(grid.Plus)
	case key.Matches(msg, m.keys.Clear):
		m.err = m.board.Clear()
	case key.Matches(msg, m.keys.Type):
		return m, m.input.Focus()
	default:
		return m, nil
	}
	m.publish()
	return m, nil
}

func (m model) handleTypingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		if line := m.input.Value(); line != "" {
			m.feed(line)
		}
		m.input.Reset()
		m.input.Blur()
		return m, nil
	case key.Matches(msg, m.keys.Cancel):
		m.input.Reset()
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *model) feed(line string) {
	m.err = m.board.Feed(line)
	if m.err != nil {
		m.logger.Debug("feed", "line", line, "err", m.err)
	}
	m.publish()
}

// publish stores a stats snapshot for the debug monitor.
func (m *model) publish() {
	s := m.board.Stats()
	m.stats.Store(&s)
}

// snapshot returns the last published stats. Safe from any goroutine.
func (m model) snapshot() []board.Stats {
	if s := m.stats.Load(); s != nil {
		return *s
	}
	return nil
}

// View implements tea.Model.
func (m model) View() string {
	m.canvas.Clear()
	var status string
	if err := m.board.Render(m.canvas); err != nil {
		status = m.styles.Error.Render(err.Error())
	} else if m.err != nil {
		status = m.styles.Error.Render(m.err.Error())
	} else {
		status = m.styles.Status.Render(m.statusLine())
	}

	var sb strings.Builder
	sb.WriteString(m.styles.Frame.Render(m.canvas.View()))
	sb.WriteString("\n")
	sb.WriteString(status)
	sb.WriteString("\n")
	if m.input.Focused() {
		sb.WriteString(m.input.View())
		sb.WriteString("\n")
	}
	sb.WriteString(m.styles.Muted.Render(m.keys.help(m.input.Focused())))
	return sb.String()
}

// statusLine summarizes the feed panel, or the first panel if none is marked.
func (m model) statusLine() string {
	stats := m.board.Stats()
	if len(stats) == 0 {
		return ""
	}
	s := stats[0]
	for _, st := range stats {
		if st.Feed {
			s = st
		}
	}
	return fmt.Sprintf("%s %v divider=%d minus=%d/%d plus=%d/%d fed=%d dropped=%d",
		s.Name, s.Bounds, s.Divider,
		s.MinusUsed, s.MinusUsed+s.MinusFree,
		s.PlusUsed, s.PlusUsed+s.PlusFree,
		s.Fed, s.Dropped,
	)
}

// runTUI runs the interactive mode. Lines from the input file are streamed
// in through an unbounded buffer so a slow screen never blocks the reader.
func runTUI(b *board.Board, input string, logger *slog.Logger) error {
	var lines <-chan string
	if input != "" {
		r, closer, err := openInput(input)
		if err != nil {
			return err
		}
		defer closer()

		in, out := buffer.Unbounded[string](100, 50000, logger)
		lines = out
		go func() {
			defer close(in)
			scanner := bufio.NewScanner(r)
			for scanner.Scan() {
				in <- scanner.Text()
			}
			if err := scanner.Err(); err != nil {
				logger.Warn("input read failed", "err", err)
			}
		}()
	}

	m := newModel(b, lines, logger)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	debug.NewMonitor(ctx, m.snapshot, logger).Start()

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if input == "-" {
		// Stdin carries lines, so keys come from the terminal.
		opts = append(opts, tea.WithInputTTY())
	}
	_, err := tea.NewProgram(m, opts...).Run()
	return err
}
