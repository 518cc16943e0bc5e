package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/buttonkit/internal/button"
	"github.com/alexisbeaulieu97/buttonkit/internal/tokens"
)

// View renders the current state of the model.
func (m Model) View() string {
	sections := []string{m.renderHeader()}

	if m.filtering || m.filter.Value() != "" {
		sections = append(sections, m.filter.View())
	}

	sections = append(sections, m.renderList())

	if detail := m.renderDetail(); detail != "" {
		sections = append(sections, sectionStyle.Render("Selected"), detail)
	}

	sections = append(sections,
		sectionStyle.Render("Button"),
		button.Preview(m.store, button.Options{}, "Primary"),
		m.renderFooter(),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	mode := cases.Title(language.English).String(m.mode.String())
	total := len(m.lists[m.mode])
	return titleStyle.Render(fmt.Sprintf("buttonkit • %s (%d/%d)", mode, len(m.visible), total))
}

func (m Model) renderList() string {
	if len(m.visible) == 0 {
		return emptyStyle.Render(fmt.Sprintf("No %s match %q", m.mode, m.filter.Value()))
	}

	start := m.scrollOffset
	end := start + m.pageSize()
	if end > len(m.visible) {
		end = len(m.visible)
	}

	width := 0
	for _, entry := range m.visible[start:end] {
		if len(entry.Path) > width {
			width = len(entry.Path)
		}
	}

	items := make([]string, 0, end-start+2)
	if start > 0 {
		items = append(items, valueStyle.Render("▲ More above"))
	}
	for i := start; i < end; i++ {
		items = append(items, renderEntry(m.visible[i], width, i == m.cursor))
	}
	if end < len(m.visible) {
		items = append(items, valueStyle.Render("▼ More below"))
	}
	return lipgloss.JoinVertical(lipgloss.Left, items...)
}

func renderEntry(entry Entry, width int, selected bool) string {
	marker := "  "
	if entry.Color() {
		marker = swatch(entry.Value)
	}
	line := fmt.Sprintf("%s %-*s  %s", marker, width, entry.Path, valueStyle.Render(entry.Value))
	if selected {
		return selectedItemStyle.Render(line)
	}
	return itemStyle.Render(line)
}

func (m Model) renderDetail() string {
	entry, ok := m.Selected()
	if !ok {
		return ""
	}

	lines := []string{
		fmt.Sprintf("path:  %s", entry.Path),
		fmt.Sprintf("kind:  %s", entry.Kind),
		fmt.Sprintf("value: %s", entry.Value),
	}

	if entry.Color() {
		lines = append(lines, "swatch: "+strings.Repeat(swatch(entry.Value), 4))
	}

	if entry.Kind == tokens.KindTypography {
		if token, found := m.store.Token(entry.Path); found {
			if ty, isTypography := token.Typography(); isTypography {
				lines = append(lines, tokens.TypographyCSS(ty).Declarations())
			}
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m Model) renderFooter() string {
	if m.filtering {
		return footerStyle.Render("enter apply • esc clear")
	}
	return footerStyle.Render("↑/↓ move • / filter • tab tokens/variables • q quit")
}
