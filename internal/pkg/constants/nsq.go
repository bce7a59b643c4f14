package constants

// NSQ topics and channels
const (
	TopicMailSend = "mail.send"
	ChannelMailer = "mailer"
)
