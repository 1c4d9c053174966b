package workers

import (
	"sync"

	"flexygig/internal/email"
	"flexygig/internal/logger"
)

// Mailer отправляет письма асинхронно через буферизованный канал.
// Ошибки отправки логируются и никогда не доходят до вызывающего кода.
type Mailer struct {
	provider email.Provider
	queue    chan *email.Message
	wg       sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

func NewMailer(provider email.Provider, queueSize int) *Mailer {
	if queueSize <= 0 {
		queueSize = 64
	}
	m := &Mailer{
		provider: provider,
		queue:    make(chan *email.Message, queueSize),
	}
	m.wg.Add(1)
	go m.run()
	return m
}

func (m *Mailer) run() {
	defer m.wg.Done()
	for msg := range m.queue {
		if err := m.provider.Send(msg); err != nil {
			logger.WithError(err).Error("failed to send email", "to", msg.To, "subject", msg.Subject)
			continue
		}
		logger.Debug("email sent", "to", msg.To, "subject", msg.Subject)
	}
}

// Enqueue ставит письмо в очередь. При переполненной очереди или
// остановленном воркере письмо отбрасывается с записью в лог.
func (m *Mailer) Enqueue(msg *email.Message) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		logger.Warn("mailer stopped, dropping email", "to", msg.To)
		return
	}
	select {
	case m.queue <- msg:
	default:
		logger.Warn("mailer queue full, dropping email", "to", msg.To)
	}
}

// Stop закрывает очередь и дожидается отправки оставшихся писем.
func (m *Mailer) Stop() {
	m.mu.Lock()
	if m.closed {
		m.mu.Unlock()
		return
	}
	m.closed = true
	close(m.queue)
	m.mu.Unlock()

	m.wg.Wait()
}
