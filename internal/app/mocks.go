package app

import "skillswap_backend/internal/email"

// MockEmailProvider is used for tests and local development.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(msg *email.Message) error { return nil }
func (m *MockEmailProvider) SendSwapRequested(to, requesterName, skillOffered, skillWanted string) error {
	return nil
}
func (m *MockEmailProvider) SendSwapDecided(to, providerName, skillWanted string, accepted bool) error {
	return nil
}
func (m *MockEmailProvider) Close() error { return nil }
