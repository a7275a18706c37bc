package viewstate

import (
	"github.com/dmitrijs2005/userconsole/internal/client/models"
	"github.com/dmitrijs2005/userconsole/internal/client/session"
)

// Event is an input of Reduce.
type Event interface {
	event()
}

type (
	// Mounted resets the view.
	Mounted struct{}

	SessionResolved struct {
		Session session.Session
	}

	// LoadIssued marks the start of a load; Reduce assigns it the next
	// generation.
	LoadIssued struct {
		Query models.PageQuery
	}

	LoadSucceeded struct {
		Generation uint64
		Result     models.PageResult
	}

	LoadFailed struct {
		Generation uint64
		Err        error
	}

	EditStarted struct {
		User models.User
	}

	EditCancelled struct{}

	UpdateSucceeded struct{}

	// UpdateRejected keeps the dialog open with the server message.
	UpdateRejected struct {
		Message string
	}

	UpdateFailed struct {
		Err error
	}

	DeleteSucceeded struct {
		ID int64
	}

	DeleteFailed struct {
		ID  int64
		Err error
	}

	NoticeRaised struct {
		Notice Notice
	}

	NoticeDismissed struct{}

	LoggedOut struct{}
)

func (Mounted) event()         {}
func (SessionResolved) event() {}
func (LoadIssued) event()      {}
func (LoadSucceeded) event()   {}
func (LoadFailed) event()      {}
func (EditStarted) event()     {}
func (EditCancelled) event()   {}
func (UpdateSucceeded) event() {}
func (UpdateRejected) event()  {}
func (UpdateFailed) event()    {}
func (DeleteSucceeded) event() {}
func (DeleteFailed) event()    {}
func (NoticeRaised) event()    {}
func (NoticeDismissed) event() {}
func (LoggedOut) event()       {}
