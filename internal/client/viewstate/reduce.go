package viewstate

import "github.com/dmitrijs2005/userconsole/internal/client/models"

// Reduce returns the state after e. It never modifies s; slices are
// replaced, not edited in place.
func Reduce(s State, e Event) State {
	switch e := e.(type) {
	case Mounted:
		return restart(s)

	case SessionResolved:
		s.Session = e.Session

	case LoadIssued:
		s.Generation++
		s.Query = e.Query.Normalize()
		s.Loading = true

	case LoadSucceeded:
		if e.Generation != s.Generation {
			return s
		}
		s.Items = append([]models.User(nil), e.Result.Users...)
		s.Total = e.Result.Total
		s.CurrentPage = e.Result.Page
		if s.CurrentPage < 1 {
			s.CurrentPage = s.Query.Page
		}
		s.Loading = false

	case LoadFailed:
		if e.Generation != s.Generation {
			return s
		}
		s.Loading = false
		s.Notice = &Notice{Level: NoticeError, Text: MsgLoadFailed}

	case EditStarted:
		u := e.User
		s.Editing = &u
		s.EditError = ""

	case EditCancelled, UpdateSucceeded:
		s.Editing = nil
		s.EditError = ""

	case UpdateRejected:
		s.EditError = e.Message

	case UpdateFailed:
		s.Notice = &Notice{Level: NoticeError, Text: MsgUpdateFailed}

	case DeleteSucceeded:
		items := make([]models.User, 0, len(s.Items))
		for _, u := range s.Items {
			if u.ID != e.ID {
				items = append(items, u)
			}
		}
		// Total tracks the server count, so a removed row lowers it as well;
		// the next load replaces both anyway.
		if len(items) < len(s.Items) && s.Total > 0 {
			s.Total--
		}
		s.Items = items

	case DeleteFailed:
		s.Notice = &Notice{Level: NoticeError, Text: MsgDeleteFailed}

	case NoticeRaised:
		n := e.Notice
		s.Notice = &n

	case NoticeDismissed:
		s.Notice = nil

	case LoggedOut:
		return restart(s)
	}
	return s
}

// restart resets the view but keeps the generation counter, so a load of
// an earlier activation still in flight can never match a new one.
func restart(s State) State {
	next := Initial()
	next.Generation = s.Generation
	return next
}
