package types

// SessionState carries everything the conversation driver needs between
// turns. It is a plain value: the driver receives it, returns an updated
// copy, and the hosting layer (chat loop or HTTP server) is responsible
// for keeping it between turns.
type SessionState struct {
	Stage               Stage           `json:"stage"`
	Record              CandidateRecord `json:"record"`
	ErrorCount          int             `json:"error_count"`
	ConversationStarted bool            `json:"conversation_started"`
}

// NewSessionState returns the initial state for a fresh session:
// stage NAME, empty record, zero error count.
func NewSessionState() SessionState {
	return SessionState{Stage: StageName}
}

// Reset returns a fresh SessionState, discarding all collected data.
func (s SessionState) Reset() SessionState {
	return NewSessionState()
}

// Done reports whether the session has reached the terminal stage.
func (s SessionState) Done() bool {
	return s.Stage.IsTerminal()
}
