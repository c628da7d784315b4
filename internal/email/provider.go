package email

// Email is a single outbound message.
type Email struct {
	From    string
	To      []string
	Subject string
	Body    string
}

// Provider sends notification emails when a user's preferences have the
// email channel enabled.
type Provider interface {
	Send(email *Email) error
	Close() error
}
