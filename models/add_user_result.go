package models

// AddUserResult is the client-side outcome of an AddUser command.
//
// For the synchronous shape Accepted and Message come from the server. For
// the fire-and-forget shape Accepted only means the command was submitted;
// the real outcome arrives later as an [AdminEvent].
type AddUserResult struct {
	UID      int64
	Accepted bool
	Message  string
	Async    bool
}
