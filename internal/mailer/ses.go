package mailer

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
)

// SESMailer sends admin-facing email through AWS SES.
type SESMailer struct {
	client *ses.Client
	from   string
	to     string
}

// NewSESMailer builds an SES-backed mailer for the configured region.
func NewSESMailer(ctx context.Context, region, from, to string) (*SESMailer, error) {
	if from == "" || to == "" {
		return nil, fmt.Errorf("mailer from and to addresses are required")
	}

	cfg, err := awsconfig.LoadDefaultConfig(ctx, awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("load aws config: %w", err)
	}

	return &SESMailer{client: ses.NewFromConfig(cfg), from: from, to: to}, nil
}

// Send delivers one plain-text email to the admin address.
func (m *SESMailer) Send(ctx context.Context, subject, body string) error {
	_, err := m.client.SendEmail(ctx, &ses.SendEmailInput{
		Source: aws.String(m.from),
		Destination: &types.Destination{
			ToAddresses: []string{m.to},
		},
		Message: &types.Message{
			Subject: &types.Content{Data: aws.String(subject)},
			Body: &types.Body{
				Text: &types.Content{Data: aws.String(body)},
			},
		},
	})
	return err
}
