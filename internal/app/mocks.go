package app

import (
	"flexygig/internal/email"
	"flexygig/internal/logger"
)

// MockEmailProvider пишет письма в лог вместо отправки.
// Используется, когда SMTP не сконфигурирован (dev/test).
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(msg *email.Message) error {
	logger.Info("[MOCK EMAIL]", "to", msg.To, "subject", msg.Subject)
	return nil
}
