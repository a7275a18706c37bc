package cli

import (
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/dmitrijs2005/userconsole/internal/client/models"
	"github.com/dmitrijs2005/userconsole/internal/client/projection"
	"github.com/dmitrijs2005/userconsole/internal/client/viewstate"
)

var columnTitles = map[projection.Column]string{
	projection.ColumnAvatar:  "",
	projection.ColumnName:    "Name",
	projection.ColumnEmail:   "Email",
	projection.ColumnPhone:   "Phone",
	projection.ColumnRole:    "Role",
	projection.ColumnStatus:  "Status",
	projection.ColumnActions: "ID",
}

func cell(u models.User, c projection.Column) string {
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

// renderUsers writes the current page as a table with the columns the
// session role may see, followed by the pager line.
func renderUsers(w io.Writer, st viewstate.State) {
	r := lipgloss.NewRenderer(w)
	view := st.View()

	headers := make([]string, 0, len(view.Columns))
	for _, c := range view.Columns {
		headers = append(headers, columnTitles[c])
	}

	rows := make([][]string, 0, len(st.Items))
	for _, u := range st.Items {
		row := make([]string, 0, len(view.Columns))
		for _, c := range view.Columns {
			row = append(row, cell(u, c))
		}
		rows = append(rows, row)
	}

	base := r.NewStyle().Padding(0, 1)
	header := base.Bold(true)
	items := st.Items

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			if row < 0 || row >= len(items) || col >= len(view.Columns) {
				return base
			}
			switch view.Columns[col] {
			case projection.ColumnAvatar:
				return base.Bold(true).
					Background(lipgloss.Color(projection.AvatarColor(row))).
					Foreground(lipgloss.Color("#262626"))
			case projection.ColumnStatus:
				return base.Foreground(lipgloss.Color(projection.StatusColor(items[row].Status)))
			}
			return base
		})

	fmt.Fprintln(w, t.String())
	fmt.Fprintln(w, pagerLine(st))
}

func pagerLine(st viewstate.State) string {
	line := fmt.Sprintf("Page %d of %d, %d users", st.CurrentPage, st.TotalPages(), st.Total)
	if st.Query.Filtered() {
		line += fmt.Sprintf(", %s contains %q", st.Query.Field, st.Query.Text)
	}
	if st.Loading {
		line += " (loading)"
	}
	return line
}

func renderNotice(w io.Writer, n *viewstate.Notice) {
	if n == nil {
		return
	}
	r := lipgloss.NewRenderer(w)
	style := r.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF4D4F"))
	if n.Level == viewstate.NoticeInfo {
		style = r.NewStyle().Foreground(lipgloss.Color("#1890FF"))
	}
	fmt.Fprintln(w, style.Render("! "+n.Text))
}

// renderOutcome prints what happened to a submission. Field errors are
// listed in field order.
func renderOutcome(w io.Writer, out models.Outcome, success string) {
	switch out.Kind {
	case models.OutcomeSucceeded:
		msg := out.Message
		if msg == "" {
			msg = success
		}
		fmt.Fprintln(w, msg)
	case models.OutcomeInvalid:
		names := make([]string, 0, len(out.FieldErrors))
		for name := range out.FieldErrors {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			fmt.Fprintf(w, "%s: %s\n", name, out.FieldErrors[name])
		}
	case models.OutcomeRejected, models.OutcomeFailed:
		msg := out.Message
		if msg == "" {
			msg = "request was rejected"
		}
		fmt.Fprintln(w, "Error: "+msg)
	}
}

func renderUser(w io.Writer, u models.User) {
	fmt.Fprintf(w, "#%d %s <%s> %s, %s, %s\n", u.ID, u.FullName(), u.Email, u.Phone, u.Role, u.Status)
}
