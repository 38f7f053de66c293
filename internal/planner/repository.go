package planner

// SessionRepository defines the session storage contract.
// Service depends ONLY on this interface.
type SessionRepository interface {
	Save(session *Session) error
	FindByID(id string) (*Session, error)
	Delete(id string) error
}
