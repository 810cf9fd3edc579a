package email

import (
	"fmt"

	"github.com/billforge/billforge/internal/documents"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Message is a dispatch request: the document is exported and attached as
// a PDF before the message is handed to the provider.
type Message struct {
	To            string             `json:"to" validate:"required,email"`
	RecipientName string             `json:"recipient_name" validate:"required,max=200"`
	Document      documents.Document `json:"document"`
}

// Validate checks the message envelope and the embedded document.
func (m *Message) Validate() error {
	if err := validate.Struct(m); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	if err := m.Document.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMessage, err)
	}
	return nil
}

// Receipt confirms a dispatched message. To reflects the effective
// recipient, which differs from the requested recipient under sandbox mode.
type Receipt struct {
	MessageID string `json:"message_id"`
	To        string `json:"to"`
	Filename  string `json:"filename"`
}
