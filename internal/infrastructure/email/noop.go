package email

// NoopEmailService satisfies Service when email delivery is disabled.
type NoopEmailService struct{}

func NewNoopEmailService() *NoopEmailService {
	return &NoopEmailService{}
}

func (*NoopEmailService) SendWelcomeEmail(to, username string) error    { return nil }
func (*NoopEmailService) SendLoginAlertEmail(to, username string) error { return nil }
