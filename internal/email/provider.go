package email

// Message - письмо, готовое к отправке.
type Message struct {
	To      string
	Subject string
	HTML    string
}

// Provider отправляет письма. Реализация может быть SMTP или заглушкой в тестах.
type Provider interface {
	Send(msg *Message) error
}
