package email

type EmailRequest struct {
	To      []string // Recipients
	Subject string
	Body    string // HTML khi IsHTML = true
	IsHTML  bool
}
