package email

// Provider - интерфейс отправки почты.
// Реализации: SMTPProvider (gomail) и MockProvider для тестов.
type Provider interface {
	Send(to, subject, body string) error
}
