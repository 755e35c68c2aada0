package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue. Jobs are fully
// rendered at publish time; the worker only delivers them.
type EmailJob struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
	HTML    string `json:"html,omitempty"`
}
