package service

import (
	"fmt"

	"github.com/kalyondo/guardianre-website/internal/model"
)

func contactNotificationTemplate(sub *model.Submission, appName string) (string, string) {
	subjectLine := sub.Subject
	if subjectLine == "" {
		subjectLine = "Website enquiry"
	}
	subject := fmt.Sprintf("[%s] %s", appName, subjectLine)

	body := fmt.Sprintf(`New contact form submission.

From: %s <%s>
Reference: %s
Received: %s

%s

Reply directly to this email to answer.`,
		sub.Name,
		sub.Email,
		sub.ID,
		sub.CreatedAt.Format("2 Jan 2006 15:04 MST"),
		sub.Message,
	)

	return subject, body
}
