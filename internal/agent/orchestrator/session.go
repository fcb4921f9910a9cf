package orchestrator

import "timesheet-assistant/pkg/llmprovider"

// GetSession returns the session for id, creating it when absent.
func (o *Orchestrator) GetSession(id string) *SessionMemory {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.getOrCreate(id)
}

// ResetSession forgets the history of id.
func (o *Orchestrator) ResetSession(id string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sessions.Remove(id)
}

// history returns a copy of the stored messages so a running loop never
// aliases the cached slice.
func (o *Orchestrator) history(id string) []llmprovider.Message {
	o.mu.Lock()
	defer o.mu.Unlock()

	s, ok := o.sessions.Get(id)
	if !ok {
		return nil
	}
	out := make([]llmprovider.Message, len(s.Messages))
	copy(out, s.Messages)
	return out
}

func (o *Orchestrator) remember(id string, msgs ...llmprovider.Message) {
	o.mu.Lock()
	defer o.mu.Unlock()

	s := o.getOrCreate(id)
	s.Messages = append(s.Messages, msgs...)
	if over := len(s.Messages) - o.maxHistory; over > 0 {
		s.Messages = append([]llmprovider.Message(nil), s.Messages[over:]...)
	}
	s.LastUpdated = o.now()
	// Add refreshes the TTL.
	o.sessions.Add(id, s)
}

func (o *Orchestrator) getOrCreate(id string) *SessionMemory {
	if s, ok := o.sessions.Get(id); ok {
		return s
	}
	s := &SessionMemory{ID: id, LastUpdated: o.now()}
	o.sessions.Add(id, s)
	return s
}
