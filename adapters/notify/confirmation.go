// Package notify renders and delivers order confirmations.
package notify

import (
	"context"
	"fmt"
	"strings"

	"siparis/domain/order"
	"siparis/models"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Message is a rendered confirmation ready for delivery
type Message struct {
	From     string
	To       string
	Subject  string
	Markdown string
	HTML     string
}

// Mailer delivers a rendered message
type Mailer interface {
	Send(ctx context.Context, msg Message) error
}

// ConfirmationNotifier implements ports.Notifier by rendering a markdown
// summary of the submitted orders and handing it to a Mailer.
type ConfirmationNotifier struct {
	mailer  Mailer
	from    string
	subject string
}

// NewConfirmationNotifier creates a notifier sending from the given address
func NewConfirmationNotifier(mailer Mailer, from, subject string) *ConfirmationNotifier {
	if subject == "" {
		subject = "Order Confirmation"
	}
	return &ConfirmationNotifier{mailer: mailer, from: from, subject: subject}
}

// OrderConfirmation sends one message listing every order
func (n *ConfirmationNotifier) OrderConfirmation(ctx context.Context, user *models.User, orders []*order.Order) error {
	if user == nil || user.Email == "" {
		return fmt.Errorf("confirmation recipient has no email address")
	}

	body := ConfirmationMarkdown(user.DisplayName(), orders)
	msg := Message{
		From:     n.from,
		To:       user.Email,
		Subject:  n.subject,
		Markdown: body,
		HTML:     RenderHTML(body),
	}
	if err := n.mailer.Send(ctx, msg); err != nil {
		return fmt.Errorf("send confirmation to %s: %w", user.Email, err)
	}
	return nil
}

// ConfirmationMarkdown builds the confirmation body as a markdown table
func ConfirmationMarkdown(username string, orders []*order.Order) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Order Confirmation\n\nDear %s,\n\n", escapeCell(username))
	fmt.Fprintf(&b, "We received your order of %d item(s):\n\n", len(orders))

	b.WriteString("| Oligo | Category | 5' Mod | 3' Mod | Purification | Scale | Qty | Price |\n")
	b.WriteString("|---|---|---|---|---|---|---:|---:|\n")

	var total float64
	for _, o := range orders {
		purification := "-"
		if o.Purification != nil && *o.Purification != "" {
			purification = *o.Purification
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %d | %.2f |\n",
			escapeCell(o.Name),
			escapeCell(o.Category),
			escapeCell(dash(o.Modifications.FivePrime)),
			escapeCell(dash(o.Modifications.ThreePrime)),
			escapeCell(purification),
			escapeCell(o.Scale),
			o.Quantity,
			o.TotalPrice,
		)
		total += o.TotalPrice
	}

	fmt.Fprintf(&b, "\n**Total:** %.2f\n\nThank you for your order.\n", total)
	return b.String()
}

// RenderHTML converts markdown to HTML with table support
func RenderHTML(md string) string {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return string(markdown.ToHTML([]byte(md), p, renderer))
}

func dash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}

// escapeCell keeps user text from breaking the table layout
func escapeCell(s string) string {
	s = strings.ReplaceAll(s, "|", `\|`)
	return strings.Join(strings.Fields(s), " ")
}
