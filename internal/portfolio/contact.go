package portfolio

import "regexp"

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ContactSubmission is a message posted through the contact form.
type ContactSubmission struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}

// ValidationError reports a submission that cannot be accepted.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validate checks that every field is present and the email looks like
// local@domain.tld.
func (s ContactSubmission) Validate() error {
	if s.Name == "" || s.Email == "" || s.Subject == "" || s.Message == "" {
		return &ValidationError{Message: "All fields are required"}
	}
	if !emailPattern.MatchString(s.Email) {
		return &ValidationError{Message: "Invalid email format"}
	}
	return nil
}
