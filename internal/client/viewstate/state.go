// Package viewstate holds the per-view state of the users dashboard and the
// reducer that is the only way to change it.
package viewstate

import (
	"github.com/dmitrijs2005/userconsole/internal/client/models"
	"github.com/dmitrijs2005/userconsole/internal/client/projection"
	"github.com/dmitrijs2005/userconsole/internal/client/session"
)

const (
	MsgLoadFailed   = "Failed to load users"
	MsgUpdateFailed = "Failed to update user"
	MsgDeleteFailed = "Failed to delete user"
)

type NoticeLevel int

const (
	NoticeError NoticeLevel = iota
	NoticeInfo
)

// Notice is a transient message shown until dismissed or replaced.
type Notice struct {
	Level NoticeLevel
	Text  string
}

// State is the record owned by one dashboard view.
type State struct {
	Session session.Session

	// Items, Total and CurrentPage always come from the same response.
	Items       []models.User
	Total       int
	CurrentPage int

	// Loading is true while the latest issued load is outstanding.
	Loading bool

	// Query is the latest issued query; its filter is kept across page
	// changes.
	Query models.PageQuery

	// Generation numbers issued loads. Responses of older generations are
	// discarded.
	Generation uint64

	// Editing is the user of the open edit dialog, nil when closed.
	Editing   *models.User
	EditError string

	Notice *Notice
}

// Initial is the state of a freshly mounted view.
func Initial() State {
	return State{CurrentPage: 1, Query: models.PageQuery{Page: 1}}
}

// View projects the current session role. It is derived on every call.
func (s State) View() projection.View {
	return projection.Project(s.Session.Role())
}

func (s State) TotalPages() int {
	return models.TotalPages(s.Total)
}

// Find returns the listed user with id.
func (s State) Find(id int64) (models.User, bool) {
	for _, u := range s.Items {
		if u.ID == id {
			return u, true
		}
	}
	return models.User{}, false
}
