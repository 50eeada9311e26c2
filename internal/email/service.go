package email

import (
	"context"
	"fmt"
	"html"
	"os"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	sesv2 "github.com/aws/aws-sdk-go-v2/service/sesv2"
	sestypes "github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"github.com/terravita/terravita/backend/content-service/internal/models"
)

const sendTimeout = 10 * time.Second

// Service forwards website form submissions as templated emails via AWS
// SESv2. Submissions are fire-and-forget: nothing is persisted, a failed
// send is reported to the caller and lost.
type Service struct {
	sesClient *sesv2.Client
	fromEmail string
	salesTo   string
	careersTo string
}

// NewService creates the mail gateway using role-based AWS credentials.
func NewService(cfg aws.Config) *Service {
	region := cfg.Region
	if region == "" {
		region = os.Getenv("SES_AWS_REGION")
		if region == "" {
			if os.Getenv("AWS_DEFAULT_REGION") != "" {
				region = os.Getenv("AWS_DEFAULT_REGION")
			} else {
				region = "eu-central-1"
			}
		}
	}
	cfg.Region = region
	return &Service{
		sesClient: sesv2.NewFromConfig(cfg),
		fromEmail: os.Getenv("SES_FROM_EMAIL"),
		salesTo:   os.Getenv("SALES_INBOX"),
		careersTo: os.Getenv("CAREERS_INBOX"),
	}
}

// Enabled reports whether the gateway has enough configuration to send.
func (s *Service) Enabled() bool {
	return s != nil && s.fromEmail != "" && (s.salesTo != "" || s.careersTo != "")
}

// SendQuoteRequest forwards a quote request to the sales inbox.
func (s *Service) SendQuoteRequest(ctx context.Context, req models.QuoteRequest) error {
	return s.send(ctx, s.salesTo, "Website quote request: "+req.Company, req.Email, [][2]string{
		{"Name", req.Name},
		{"Email", req.Email},
		{"Company", req.Company},
		{"Phone", req.Phone},
		{"Country", req.Country},
		{"Product", req.ProductSlug},
		{"Quantity", req.Quantity},
		{"Message", req.Message},
	})
}

// SendSampleRequest forwards a sample request to the sales inbox.
func (s *Service) SendSampleRequest(ctx context.Context, req models.SampleRequest) error {
	return s.send(ctx, s.salesTo, "Website sample request: "+req.Company, req.Email, [][2]string{
		{"Name", req.Name},
		{"Email", req.Email},
		{"Company", req.Company},
		{"Phone", req.Phone},
		{"Country", req.Country},
		{"Category", req.CategorySlug},
		{"Product", req.ProductSlug},
		{"Application", req.Application},
		{"Message", req.Message},
	})
}

// SendCatalogueRequest forwards a catalogue download request to sales.
func (s *Service) SendCatalogueRequest(ctx context.Context, req models.CatalogueRequest) error {
	return s.send(ctx, s.salesTo, "Website catalogue request", req.Email, [][2]string{
		{"Name", req.Name},
		{"Email", req.Email},
		{"Company", req.Company},
	})
}

// SendMeetingRequest forwards a meeting request to sales.
func (s *Service) SendMeetingRequest(ctx context.Context, req models.MeetingRequest) error {
	return s.send(ctx, s.salesTo, "Website meeting request: "+req.Company, req.Email, [][2]string{
		{"Name", req.Name},
		{"Email", req.Email},
		{"Company", req.Company},
		{"Phone", req.Phone},
		{"Preferred date", req.PreferredDate},
		{"Event", req.EventID},
		{"Message", req.Message},
	})
}

// SendJobApplication forwards an application for a listed opening to the
// careers inbox. resumeURL points at the uploaded CV, empty if none.
func (s *Service) SendJobApplication(ctx context.Context, req models.JobApplication, jobTitle, resumeURL string) error {
	return s.send(ctx, s.careersTo, "Job application: "+jobTitle, req.Email, [][2]string{
		{"Position", jobTitle},
		{"Name", req.Name},
		{"Email", req.Email},
		{"Phone", req.Phone},
		{"Cover letter", req.CoverLetter},
		{"Resume", resumeURL},
	})
}

// SendGeneralApplication forwards an open application to the careers inbox.
func (s *Service) SendGeneralApplication(ctx context.Context, req models.GeneralApplication, resumeURL string) error {
	return s.send(ctx, s.careersTo, "General application: "+req.Name, req.Email, [][2]string{
		{"Name", req.Name},
		{"Email", req.Email},
		{"Phone", req.Phone},
		{"Area of interest", req.Area},
		{"Cover letter", req.CoverLetter},
		{"Resume", resumeURL},
	})
}

// send delivers one email with a bounded timeout and a single retry. Field
// order in the template follows the order given by the caller.
func (s *Service) send(ctx context.Context, toEmail, subject, replyTo string, fields [][2]string) error {
	if !s.Enabled() || toEmail == "" {
		return fmt.Errorf("mail gateway not configured")
	}

	input := &sesv2.SendEmailInput{
		FromEmailAddress: aws.String(s.fromEmail),
		Destination:      &sestypes.Destination{ToAddresses: []string{toEmail}},
		ReplyToAddresses: []string{replyTo},
		Content: &sestypes.EmailContent{
			Simple: &sestypes.Message{
				Subject: &sestypes.Content{Data: aws.String(subject)},
				Body:    &sestypes.Body{Html: &sestypes.Content{Data: aws.String(renderHTML(subject, fields))}},
			},
		},
	}

	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
		_, err := s.sesClient.SendEmail(sendCtx, input)
		cancel()
		if err == nil {
			return nil
		}
		lastErr = err
		if ctx.Err() != nil {
			break
		}
	}
	return fmt.Errorf("failed to send email: %w", lastErr)
}

// renderHTML builds the internal notification template. Values are escaped;
// empty fields are dropped so sales doesn't read blank rows.
func renderHTML(title string, fields [][2]string) string {
	var rows strings.Builder
	for _, f := range fields {
		if f[1] == "" {
			continue
		}
		rows.WriteString(fmt.Sprintf(
			`<tr><td style="padding:8px 16px 8px 0;color:#6c757d;vertical-align:top;white-space:nowrap;">%s</td><td style="padding:8px 0;">%s</td></tr>`,
			html.EscapeString(f[0]),
			strings.ReplaceAll(html.EscapeString(f[1]), "\n", "<br>"),
		))
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>%s</title>
</head>
<body style="font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,sans-serif;color:#333;max-width:600px;margin:0 auto;padding:20px;background-color:#f5f5f5;">
    <div style="background-color:white;border-radius:8px;padding:32px;">
        <div style="font-size:22px;font-weight:bold;color:#2e7d32;margin-bottom:4px;">TerraVita</div>
        <div style="color:#666;font-size:14px;margin-bottom:24px;">%s</div>
        <table style="width:100%%;border-collapse:collapse;font-size:14px;">%s</table>
        <div style="margin-top:24px;padding-top:16px;border-top:1px solid #eee;color:#999;font-size:12px;">
            Automated notification from the website form gateway. Reply goes to the submitter.
        </div>
    </div>
</body>
</html>`,
		html.EscapeString(title),
		html.EscapeString(title),
		rows.String(),
	)
}
