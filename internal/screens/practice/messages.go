package practice

// verdictMsg is sent when the learner marks the revealed card.
type verdictMsg struct {
	Correct bool
}

// sessionEndMsg is sent to trigger the session end flow.
type sessionEndMsg struct{}
