package email

import "jobboard_backend/internal/logger"

// MockProvider пишет письма в лог. Используется в тестах
// и когда email выключен в конфиге.
type MockProvider struct{}

func (p *MockProvider) Send(to, subject, body string) error {
	logger.Info("mock email", "to", to, "subject", subject)
	return nil
}
