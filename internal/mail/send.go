package mail

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/jekabolt/retail-stats/internal/entity"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
)

const lowStockSubject = "Low stock alert"

// SendLowStockAlert emails the low-stock product list to every configured
// recipient. The first send failure aborts the remaining recipients.
func (m *Mailer) SendLowStockAlert(ctx context.Context, products []entity.LowStockProduct) error {
	if len(products) == 0 {
		return nil
	}

	html := &strings.Builder{}
	err := m.lowStock.Execute(html, struct {
		Products []entity.LowStockProduct
	}{Products: products})
	if err != nil {
		return fmt.Errorf("error executing template: %w", err)
	}

	plain := &strings.Builder{}
	plain.WriteString("Products at or below the stock threshold:\n")
	for _, p := range products {
		fmt.Fprintf(plain, "- %s: %d left\n", p.Name, p.Stock)
	}

	for _, to := range m.c.To {
		msg := mail.NewSingleEmail(m.from, lowStockSubject, mail.NewEmail("", to), plain.String(), html.String())
		resp, err := m.cli.SendWithContext(ctx, msg)
		if err != nil {
			return fmt.Errorf("error sending email: %w", err)
		}
		if resp.StatusCode >= http.StatusBadRequest {
			return fmt.Errorf("error sending email bad status code: %s, status code: %d", resp.Body, resp.StatusCode)
		}
	}

	return nil
}
