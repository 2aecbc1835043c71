package email

// Provider sends notification emails. All sends are best effort: a swap
// keeps working when mail delivery fails.
type Provider interface {
	// Send delivers a single message.
	Send(msg *Message) error

	// SendSwapRequested notifies a provider about a new swap request.
	SendSwapRequested(to, requesterName, skillOffered, skillWanted string) error

	// SendSwapDecided notifies the requester that the provider accepted
	// or rejected the request.
	SendSwapDecided(to, providerName, skillWanted string, accepted bool) error

	// Close releases provider resources.
	Close() error
}

// Message is a plain email message.
type Message struct {
	To       []string
	Subject  string
	Body     string
	HTMLBody string
}
