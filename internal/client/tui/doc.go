// Package tui is the full-screen host of the users dashboard. Built on
// bubbletea, it renders the current page of the directory with the columns
// the session role may see and drives paging, filtering, deletion and
// logout through the [Dashboard] interface.
//
// Dashboard calls block on the network, so every one of them runs inside a
// tea.Cmd. A finished command only tells the model to re-read the dashboard
// state; the dashboard decides which response is current.
package tui
