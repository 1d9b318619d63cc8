package ui

// detailsClosedMsg is sent when the details pager exits
type detailsClosedMsg struct {
	err error
}
