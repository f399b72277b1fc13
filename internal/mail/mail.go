package mail

import (
	"embed"
	"fmt"
	"text/template"

	"github.com/jekabolt/retail-stats/internal/dependency"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

//go:embed templates/*.gohtml
var templatesFS embed.FS

const lowStockTemplate = "templates/low_stock_alert.gohtml"

type Config struct {
	APIKey    string   `mapstructure:"sendgrid_api_key"`
	FromEmail string   `mapstructure:"from_email"`
	FromName  string   `mapstructure:"from_email_name"`
	To        []string `mapstructure:"to"`
}

type Mailer struct {
	cli      *sendgrid.Client
	from     *mail.Email
	c        *Config
	lowStock *template.Template
}

func New(c *Config) (dependency.Mailer, error) {
	if c.APIKey == "" || c.FromEmail == "" || c.FromName == "" {
		return nil, fmt.Errorf("incomplete config: %+v", c)
	}
	if len(c.To) == 0 {
		return nil, fmt.Errorf("no alert recipients configured")
	}

	tmpl, err := template.ParseFS(templatesFS, lowStockTemplate)
	if err != nil {
		return nil, fmt.Errorf("error parsing template '%s': %w", lowStockTemplate, err)
	}

	return &Mailer{
		cli:      sendgrid.NewSendClient(c.APIKey),
		from:     mail.NewEmail(c.FromName, c.FromEmail),
		c:        c,
		lowStock: tmpl,
	}, nil
}
