// Package tui - терминальный UI поверх презентеров списка и редактора.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"notes-screen/internal/presenter"
	"notes-screen/internal/store"
)

type screen int

const (
	screenList screen = iota
	screenDetail
)

// bodyPreviewLines - сколько строк текста заметки показывать в списке
const bodyPreviewLines = 2

// Model - корневая модель bubbletea с двумя экранами
type Model struct {
	list   *presenter.List
	editor *presenter.Editor

	screen screen
	cursor int
	status string

	title textinput.Model
	body  textarea.Model

	width  int
	height int
}

var _ tea.Model = (*Model)(nil)

// New создает модель и подключает презентер списка к хранилищу
func New(s store.NoteStore) *Model {
	ti := textinput.New()
	ti.Placeholder = "Title"
	ti.Prompt = ""
	ti.CharLimit = 0

	ta := textarea.New()
	ta.Placeholder = "Body"
	ta.ShowLineNumbers = false
	ta.Prompt = ""
	ta.CharLimit = 0

	return &Model{
		list:  presenter.NewList(s),
		title: ti,
		body:  ta,
	}
}

// Init реализует tea.Model
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update реализует tea.Model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		if m.screen == screenDetail {
			return m.handleDetailKey(msg)
		}
		return m.handleListKey(msg)
	}

	return m, nil
}

func (m *Model) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, listKeys.Quit):
		m.list.Detach()
		return m, tea.Quit

	case key.Matches(msg, listKeys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, listKeys.Down):
		if m.cursor < m.list.Len()-1 {
			m.cursor++
		}

	case key.Matches(msg, listKeys.Open):
		if m.list.Len() == 0 {
			return m, nil
		}
		return m, m.openEditor(m.list.Open(m.cursor))

	case key.Matches(msg, listKeys.Compose):
		return m, m.openEditor(m.list.Compose())

	case key.Matches(msg, listKeys.Delete):
		if m.list.Delete(m.cursor) {
			m.status = "Deleted"
		}

	case key.Matches(msg, listKeys.Clear):
		m.list.Clear()
		m.status = "Cleared"
	}

	m.clampCursor()
	return m, nil
}

func (m *Model) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, detailKeys.Quit):
		m.list.Detach()
		return m, tea.Quit

	case key.Matches(msg, detailKeys.Back):
		m.closeEditor()
		return m, nil

	case key.Matches(msg, detailKeys.Save):
		if m.editor.Save(m.title.Value(), m.body.Value()) {
			m.status = "Saved"
		} else {
			m.status = "Note no longer exists"
		}
		if m.editor.IsNew() {
			m.cursor = m.list.Len() - 1
		}
		m.closeEditor()
		return m, nil

	case key.Matches(msg, detailKeys.NextField):
		if m.title.Focused() {
			m.title.Blur()
			return m, m.body.Focus()
		}
		m.body.Blur()
		return m, m.title.Focus()
	}

	var cmd tea.Cmd
	if m.title.Focused() {
		m.title, cmd = m.title.Update(msg)
	} else {
		m.body, cmd = m.body.Update(msg)
	}
	return m, cmd
}

// openEditor переключает на экран редактора и заполняет поля ввода
func (m *Model) openEditor(e *presenter.Editor) tea.Cmd {
	note := e.Load()

	m.editor = e
	m.screen = screenDetail
	m.status = ""

	m.title.SetValue(note.Title)
	m.title.CursorEnd()
	m.body.SetValue(note.Body)
	m.body.Blur()
	return m.title.Focus()
}

func (m *Model) closeEditor() {
	m.title.Blur()
	m.body.Blur()
	m.editor = nil
	m.screen = screenList
	m.clampCursor()
}

func (m *Model) clampCursor() {
	if m.cursor >= m.list.Len() {
		m.cursor = m.list.Len() - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *Model) resize() {
	if m.width <= 0 {
		return
	}
	m.title.Width = m.width - 2
	m.body.SetWidth(m.width)
	if h := m.height - 8; h > 3 {
		m.body.SetHeight(h)
	}
}

// View реализует tea.Model
func (m *Model) View() string {
	if m.screen == screenDetail {
		return m.detailView()
	}
	return m.listView()
}

func (m *Model) listView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(fmt.Sprintf("Notes (%d)", m.list.Len())))
	b.WriteString("\n")

	if m.list.Len() == 0 {
		b.WriteString(mutedStyle.Render("No notes yet. Press n to add one."))
		b.WriteString("\n")
	}

	for i, note := range m.list.Rows() {
		bar := "  "
		if i == m.cursor {
			bar = selectedBarStyle.Render("│ ")
		}

		title := note.Title
		if title == "" {
			title = "Untitled"
		}
		b.WriteString(bar + rowTitleStyle.Render(title) + "\n")
		for _, line := range previewLines(note.Body, bodyPreviewLines) {
			b.WriteString(bar + rowBodyStyle.Render(line) + "\n")
		}
	}

	b.WriteString(m.footer(listKeys.help()))
	return b.String()
}

func (m *Model) detailView() string {
	var b strings.Builder

	heading := "Edit note"
	if m.editor != nil && m.editor.IsNew() {
		heading = "New note"
	}
	b.WriteString(titleStyle.Render(heading))
	b.WriteString("\n")

	b.WriteString(labelStyle.Render("Title") + "\n")
	b.WriteString(m.title.View() + "\n\n")
	b.WriteString(labelStyle.Render("Body") + "\n")
	b.WriteString(m.body.View() + "\n")

	b.WriteString(m.footer(detailKeys.help()))
	return b.String()
}

func (m *Model) footer(bindings []key.Binding) string {
	parts := make([]string, 0, len(bindings))
	for _, kb := range bindings {
		h := kb.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}

	out := "\n" + mutedStyle.Render(strings.Join(parts, " • "))
	if m.status != "" {
		out += "\n" + statusStyle.Render(m.status)
	}
	return out + "\n"
}

// previewLines возвращает не более limit непустых строк текста
func previewLines(body string, limit int) []string {
	var lines []string
	for _, line := range strings.Split(body, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
		if len(lines) == limit {
			break
		}
	}
	return lines
}
