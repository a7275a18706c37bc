package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/dmitrijs2005/userconsole/internal/client/models"
	"github.com/dmitrijs2005/userconsole/internal/client/projection"
	"github.com/dmitrijs2005/userconsole/internal/client/viewstate"
)

// columnWidths are the fixed cell widths; the name and email columns share
// what is left of the terminal.
var columnWidths = map[projection.Column]int{
	projection.ColumnAvatar:  4,
	projection.ColumnPhone:   16,
	projection.ColumnRole:    7,
	projection.ColumnStatus:  10,
	projection.ColumnActions: 6,
}

var columnTitles = map[projection.Column]string{
	projection.ColumnAvatar:  "",
	projection.ColumnName:    "Name",
	projection.ColumnEmail:   "Email",
	projection.ColumnPhone:   "Phone",
	projection.ColumnRole:    "Role",
	projection.ColumnStatus:  "Status",
	projection.ColumnActions: "ID",
}

func (m Model) widths(view projection.View) map[projection.Column]int {
	out := make(map[projection.Column]int, len(view.Columns))
	fixed, flex := 0, 0
	for _, c := range view.Columns {
		if w, ok := columnWidths[c]; ok {
			out[c] = w
			fixed += w + 1
			continue
		}
		flex++
	}
	if flex == 0 {
		return out
	}
	share := (m.width - fixed) / flex
	if share < 12 {
		share = 12
	}
	for _, c := range view.Columns {
		if _, ok := out[c]; !ok {
			out[c] = share - 1
		}
	}
	return out
}

func fit(s string, width int) string {
	s = ansi.Truncate(s, width, "…")
	if pad := width - ansi.StringWidth(s); pad > 0 {
		s += strings.Repeat(" ", pad)
	}
	return s
}

func cellText(u models.User, c projection.Column) string {
	switch c {
	case projection.ColumnAvatar:
		return projection.Initials(u)
	case projection.ColumnName:
		return u.FullName()
	case projection.ColumnEmail:
		return u.Email
	case projection.ColumnPhone:
		return u.Phone
	case projection.ColumnRole:
		return u.Role.String()
	case projection.ColumnStatus:
		return u.Status.String()
	case projection.ColumnActions:
		return strconv.FormatInt(u.ID, 10)
	}
	return ""
}

func (m Model) renderRow(index int, u models.User, view projection.View, widths map[projection.Column]int) string {
	cells := make([]string, 0, len(view.Columns))
	for _, c := range view.Columns {
		text := fit(cellText(u, c), widths[c])
		switch c {
		case projection.ColumnAvatar:
			text = m.theme.Avatar.Background(lipgloss.Color(projection.AvatarColor(index))).Render(text)
		case projection.ColumnStatus:
			text = lipgloss.NewStyle().Foreground(lipgloss.Color(projection.StatusColor(u.Status))).Render(text)
		}
		cells = append(cells, text)
	}
	line := strings.Join(cells, " ")
	if index == m.cursor {
		return m.theme.Selected.Render("› " + line)
	}
	return "  " + line
}

// View implements tea.Model.
func (m Model) View() string {
	st := m.state
	view := st.View()
	widths := m.widths(view)

	var b strings.Builder

	title := "Users"
	if u, ok := st.Session.User(); ok {
		title = fmt.Sprintf("Users · %s (%s)", u.Email, u.Role)
	}
	b.WriteString(m.theme.Title.Render(title))
	b.WriteString("\n")

	if m.filterActive || st.Query.Filtered() {
		b.WriteString(m.theme.Prompt.Render(fmt.Sprintf("%s: ", m.filterField)))
		b.WriteString(m.input.View())
		b.WriteString("\n")
	}
	b.WriteString("\n")

	headers := make([]string, 0, len(view.Columns))
	for _, c := range view.Columns {
		headers = append(headers, fit(columnTitles[c], widths[c]))
	}
	b.WriteString(m.theme.Header.Render("  " + strings.Join(headers, " ")))
	b.WriteString("\n")

	if len(st.Items) == 0 && !st.Loading {
		b.WriteString(m.theme.Faint.Render("  No users"))
		b.WriteString("\n")
	}
	for i, u := range st.Items {
		b.WriteString(m.renderRow(i, u, view, widths))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	pager := fmt.Sprintf("Page %d of %d · %d users", st.CurrentPage, st.TotalPages(), st.Total)
	if st.Loading {
		pager += " · loading…"
	}
	b.WriteString(m.theme.Faint.Render(pager))
	b.WriteString("\n")

	if m.pendingDelete != nil {
		b.WriteString(m.theme.Prompt.Render(fmt.Sprintf("Delete %s <%s>? y to confirm", m.pendingDelete.FullName(), m.pendingDelete.Email)))
		b.WriteString("\n")
	}
	if n := st.Notice; n != nil {
		style := m.theme.Error
		if n.Level == viewstate.NoticeInfo {
			style = m.theme.Info
		}
		b.WriteString(style.Render(n.Text))
		b.WriteString("\n")
	}

	b.WriteString(m.theme.Faint.Render(m.helpLine(view)))
	return b.String()
}

func (m Model) helpLine(view projection.View) string {
	bindings := []key.Binding{m.keys.PrevPage, m.keys.NextPage, m.keys.Up, m.keys.Down, m.keys.Reload}
	if m.filterActive {
		bindings = []key.Binding{m.keys.FilterField, m.keys.FilterClear, m.keys.FilterConfirm}
	} else {
		if view.CanFilter {
			bindings = append(bindings, m.keys.FilterActivate)
		}
		if view.CanDelete {
			bindings = append(bindings, m.keys.Delete)
		}
		bindings = append(bindings, m.keys.Dismiss, m.keys.Logout, m.keys.Quit)
	}

	parts := make([]string, 0, len(bindings))
	for _, binding := range bindings {
		h := binding.Help()
		parts = append(parts, h.Key+" "+h.Desc)
	}
	return strings.Join(parts, " · ")
}
