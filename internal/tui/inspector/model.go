// ============================================================================
// textkit - Managed UTF-8 Text
// ============================================================================
//
// Package:     inspector
// Description: Bubbletea model stepping a byte cursor through a Text
// Author:      Mike Stoffels
// Created:     2026-10-13
// License:     MIT
// ============================================================================

package inspector

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/msto63/textkit/foundation/utils/textbuf"
	"github.com/msto63/textkit/foundation/utils/utf8x"
)

// Config holds inspector configuration
type Config struct {
	// Name shown in the header, usually the file name
	Name string

	// Text to inspect. The inspector never mutates it.
	Text *textbuf.Text
}

// Model is the Bubbletea model for the inspector
type Model struct {
	// State
	width  int
	height int
	ready  bool

	// Components
	viewport viewport.Model

	// Text state
	name      string
	data      []byte
	policy    utf8x.SurrogatePolicy
	it        *utf8x.Iterator
	invalidAt int
	scalars   int
}

// New creates an inspector positioned at the start of cfg.Text. Text that
// does not validate is walked with an unchecked iterator and the first
// invalid offset is reported in the header.
func New(cfg Config) Model {
	text := cfg.Text
	if text == nil {
		text = textbuf.Empty(nil)
	}

	invalidAt := -1
	it, err := text.Iterator()
	if err != nil {
		it = text.IteratorUnchecked()
		invalidAt = utf8x.FirstInvalid(text.Bytes(), text.Policy())
	}

	return Model{
		name:      cfg.Name,
		data:      text.Bytes(),
		policy:    text.Policy(),
		it:        it,
		invalidAt: invalidAt,
		scalars:   text.CharCount(),
	}
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		headerHeight := 3 // Title panel
		footerHeight := 4 // Text border + status bar + help
		viewportHeight := msg.Height - headerHeight - footerHeight
		if viewportHeight < 1 {
			viewportHeight = 1
		}

		if !m.ready {
			m.viewport = viewport.New(msg.Width-4, viewportHeight)
			m.viewport.YPosition = headerHeight
			m.ready = true
		} else {
			m.viewport.Width = msg.Width - 4
			m.viewport.Height = viewportHeight
		}
		m.updateViewportContent()
	}

	return m, nil
}

// handleKeyPress handles keyboard input
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return m, tea.Quit

	case tea.KeyRight:
		m.it.NextBytes()
	case tea.KeyLeft:
		m.it.PrevBytes()
	case tea.KeyHome:
		m.it.SeekStart()
	case tea.KeyEnd:
		m.it.SeekEnd()

	case tea.KeyPgUp:
		m.viewport.ViewUp()
		return m, nil
	case tea.KeyPgDown:
		m.viewport.ViewDown()
		return m, nil

	case tea.KeyRunes:
		switch string(msg.Runes) {
		case "q":
			return m, tea.Quit
		case "l":
			m.it.NextBytes()
		case "h":
			m.it.PrevBytes()
		case "g":
			m.it.SeekStart()
		case "G":
			m.it.SeekEnd()
		case "w":
			m.nextWhitespace()
		case "i":
			m.gotoInvalid()
		default:
			return m, nil
		}

	default:
		return m, nil
	}

	m.updateViewportContent()
	m.followCursor()
	return m, nil
}

// Pos returns the byte offset of the cursor
func (m Model) Pos() int {
	return m.it.Pos()
}

// Current returns the scalar at the cursor; false at the end of the text
func (m Model) Current() (utf8x.Scalar, bool) {
	ahead := utf8x.NewIterator(m.data[m.it.Pos():])
	return ahead.NextScalar()
}

// nextWhitespace moves to the next whitespace or line terminator after the
// cursor, or to the end
func (m *Model) nextWhitespace() {
	if _, ok := m.it.NextBytes(); !ok {
		return
	}
	for {
		s, ok := m.Current()
		if !ok || utf8x.IsWhitespaceOrLineTerminator(s.Value) {
			return
		}
		m.it.NextBytes()
	}
}

// gotoInvalid moves to the first boundary at or after the first invalid byte
func (m *Model) gotoInvalid() {
	if m.invalidAt < 0 {
		return
	}
	m.it.SeekStart()
	for m.it.Pos() < m.invalidAt {
		if _, ok := m.it.NextBytes(); !ok {
			return
		}
	}
}

// followCursor scrolls the viewport so the cursor line is visible
func (m *Model) followCursor() {
	if !m.ready {
		return
	}
	line := bytes.Count(m.data[:m.it.Pos()], []byte{'\n'})
	switch {
	case line < m.viewport.YOffset:
		m.viewport.SetYOffset(line)
	case line >= m.viewport.YOffset+m.viewport.Height:
		m.viewport.SetYOffset(line - m.viewport.Height + 1)
	}
}

// updateViewportContent renders the text with the cursor highlighted
func (m *Model) updateViewportContent() {
	if m.ready {
		m.viewport.SetContent(m.renderText())
	}
}

func (m Model) renderText() string {
	var b, run strings.Builder
	flush := func() {
		if run.Len() > 0 {
			b.WriteString(TextStyle.Render(run.String()))
			run.Reset()
		}
	}

	pos := m.it.Pos()
	walk := utf8x.NewIterator(m.data)
	for {
		start := walk.Pos()
		seg, ok := walk.NextBytes()
		if !ok {
			break
		}

		glyph, style, plain := m.glyph(seg)
		if start <= pos && pos < start+len(seg) {
			style, plain = CursorStyle, false
		}

		if plain {
			run.WriteString(glyph)
		} else {
			flush()
			b.WriteString(style.Render(glyph))
		}
		if seg[0] == '\n' {
			flush()
			b.WriteByte('\n')
		}
	}
	flush()

	if pos >= len(m.data) {
		b.WriteString(CursorStyle.Render(" "))
	}
	return b.String()
}

// glyph returns the visible form of an encoded scalar. plain reports that
// it needs no styling of its own.
func (m Model) glyph(seg []byte) (glyph string, style lipgloss.Style, plain bool) {
	if utf8x.FirstInvalid(seg, m.policy) >= 0 {
		return "�", BadByteStyle, false
	}

	r, _ := utf8x.DecodeScalar(seg)
	switch {
	case r == '\n':
		return "↵", MarkerStyle, false
	case r == '\r':
		return "␍", MarkerStyle, false
	case r == '\t':
		return "→", MarkerStyle, false
	case r == ' ':
		return " ", TextStyle, true
	case utf8x.IsWhitespaceOrLineTerminator(r):
		return "·", MarkerStyle, false
	case r >= 0xD800 && r <= 0xDFFF, unicode.IsControl(r):
		return "�", MarkerStyle, false
	}
	return string(seg), TextStyle, true
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(TextPanelStyle.Width(m.width - 2).Render(m.viewport.View()))
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.renderHelpBar())
	return b.String()
}

// renderHeader renders the title panel with the validation result
func (m Model) renderHeader() string {
	var status string
	if m.invalidAt < 0 {
		status = ValidStyle.Render(fmt.Sprintf("valid UTF-8 (%s)", m.policy))
	} else {
		status = InvalidStyle.Render(fmt.Sprintf("invalid UTF-8 at byte %d (%s)", m.invalidAt, m.policy))
	}

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		LogoStyle.Render(Logo),
		"   ",
		m.name,
		"   ",
		status,
		"   ",
		HelpDescStyle.Render(fmt.Sprintf("%d scalars, %d bytes", m.scalars, len(m.data))),
	)
	return TitlePanelStyle.Width(m.width - 4).Render(header)
}

// renderStatusBar describes the scalar under the cursor
func (m Model) renderStatusBar() string {
	parts := []string{RenderField("offset", fmt.Sprintf("%d/%d", m.it.Pos(), len(m.data)))}

	s, ok := m.Current()
	if !ok {
		parts = append(parts, HelpDescStyle.Render("end of text"))
	} else {
		seg := m.data[m.it.Pos() : m.it.Pos()+s.Size]
		parts = append(parts,
			RenderField("scalar", fmt.Sprintf("U+%04X", s.Value)),
			RenderField("bytes", fmt.Sprintf("% X", seg)),
			RenderField("cols", fmt.Sprintf("%d", runewidth.RuneWidth(s.Value))),
			RenderField("class", m.classify(s.Value, seg)),
		)
	}

	return StatusBarStyle.Width(m.width - 2).Render(strings.Join(parts, "  "))
}

func (m Model) classify(r rune, seg []byte) string {
	switch {
	case utf8x.FirstInvalid(seg, m.policy) >= 0:
		return "invalid"
	case utf8x.IsLineTerminator(r):
		return "line terminator"
	case utf8x.IsWhitespaceOrLineTerminator(r):
		return "whitespace"
	default:
		return "scalar"
	}
}

// renderHelpBar renders the help shortcuts bar
func (m Model) renderHelpBar() string {
	items := []string{
		RenderKeyHint("←/→", "Step"),
		RenderKeyHint("g/G", "Start/End"),
		RenderKeyHint("w", "Next space"),
		RenderKeyHint("i", "First invalid"),
		RenderKeyHint("PgUp/PgDn", "Scroll"),
		RenderKeyHint("q", "Quit"),
	}
	return HelpStyle.Render(strings.Join(items, "  "))
}

// Run starts the inspector TUI
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
