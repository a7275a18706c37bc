// Package projection derives what a role may see on the users dashboard and
// the cosmetic per-row attributes (avatar colour, initials, status colour).
package projection

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/dmitrijs2005/userconsole/internal/client/models"
)

// Column identifies a column of the users table.
type Column string

const (
	ColumnAvatar  Column = "avatar"
	ColumnName    Column = "name"
	ColumnEmail   Column = "email"
	ColumnPhone   Column = "phone"
	ColumnRole    Column = "role"
	ColumnStatus  Column = "status"
	ColumnActions Column = "actions"
)

// View is the visible column set and action controls for one role.
type View struct {
	Columns   []Column
	CanCreate bool
	CanFilter bool
	CanEdit   bool
	CanDelete bool
}

// Has reports whether c is visible.
func (v View) Has(c Column) bool {
	for _, col := range v.Columns {
		if col == c {
			return true
		}
	}
	return false
}

// Project returns the view of role. It builds a fresh value on every call so
// callers may modify the result.
func Project(role models.Role) View {
	cols := []Column{ColumnAvatar, ColumnName, ColumnEmail, ColumnPhone, ColumnRole, ColumnStatus}
	if role != models.RoleAdmin {
		return View{Columns: cols}
	}
	return View{
		Columns:   append(cols, ColumnActions),
		CanCreate: true,
		CanFilter: true,
		CanEdit:   true,
		CanDelete: true,
	}
}

// Palette is the avatar background cycle.
var Palette = []string{"#FAE7EB", "#DBEEF7", "#E0D4E7", "#BDD2E4", "#EECEDA", "#CCDCEB"}

const (
	StatusActiveColor   = "#52C41A"
	StatusInactiveColor = "#8C8C8C"
)

// AvatarColor picks the palette entry of the row at index. The colour of a
// user is therefore not stable across pages or filters.
func AvatarColor(index int) string {
	n := len(Palette)
	return Palette[((index%n)+n)%n]
}

// Initials returns the upper-cased first letters of the first and last name.
func Initials(u models.User) string {
	var b strings.Builder
	for _, part := range []string{u.FirstName, u.LastName} {
		r, _ := utf8.DecodeRuneInString(strings.TrimSpace(part))
		if r != utf8.RuneError {
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}

// StatusColor is green for active accounts and grey otherwise.
func StatusColor(s models.Status) string {
	if s == models.StatusActive {
		return StatusActiveColor
	}
	return StatusInactiveColor
}
