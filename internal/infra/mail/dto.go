package mail

type TemplateData struct {
	Name    string
	Company string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	FromName string
}
