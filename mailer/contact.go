package mailer

import (
	"fmt"
	"log"
	"time"

	"github.com/fouad201/hydra-tech/models"
)

// SendContactNotifications fires the two emails for a contact form
// submission: an internal notice to the site contact address and an automated
// acknowledgment to the submitter. Delivery is best effort; each failure is
// logged and swallowed independently so the already-persisted message is
// never affected.
func SendContactNotifications(m Mailer, settings models.SiteSettings, msg models.ContactMessage) {
	phone := msg.Phone
	if phone == "" {
		phone = "Not provided"
	}

	if settings.Email == "" {
		log.Println("⚠️ Site settings have no contact email, skipping admin notice")
	} else {
		subject := fmt.Sprintf("New Contact Form Submission: %s", msg.Subject)
		body := fmt.Sprintf(`New contact form submission from the Hydratech website:

Name: %s
Email: %s
Phone: %s
Subject: %s

Message:
%s

---
Received at: %s
`, msg.Name, msg.Email, phone, msg.Subject, msg.Message, msg.CreatedAt.Format(time.RFC1123))

		if err := m.Send(settings.Email, subject, body); err != nil {
			log.Printf("❌ Failed to send admin notice for contact message %d: %v", msg.ID, err)
		}
	}

	ackBody := fmt.Sprintf(`Dear %s,

Thank you for contacting Hydratech. We have received your message regarding "%s".

Our team will review your inquiry and get back to you as soon as possible.

Best regards,
Hydratech Team

---
This is an automated response. Please do not reply to this email.
`, msg.Name, msg.Subject)

	if err := m.Send(msg.Email, "Thank you for contacting Hydratech", ackBody); err != nil {
		log.Printf("❌ Failed to send acknowledgment for contact message %d: %v", msg.ID, err)
	}
}
