package study

// resolveMsg is sent when the feedback display period ends. Epoch is the
// session epoch captured at submit time; the session drops the message if a
// reset happened in between.
type resolveMsg struct {
	epoch int
}
