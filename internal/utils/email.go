package utils

import (
	"bytes"
	"fmt"
	"log"
	"os"

	"github.com/wneessen/go-mail"

	"grocerly_back_end/internal/models"
)

// SendOrderConfirmationEmail envoie le récapitulatif de commande,
// avec le reçu PDF en pièce jointe si disponible.
func SendOrderConfirmationEmail(to string, order models.Order, pdfAttachment []byte) error {
	msg := mail.NewMsg()

	if err := msg.From("noreply@grocerly.app"); err != nil {
		return err
	}
	if err := msg.To(to); err != nil {
		return err
	}
	msg.Subject(fmt.Sprintf("🧾 Votre commande Grocerly #%s", order.ID.String()[:8]))
	msg.SetBodyString(mail.TypeTextHTML, GenerateOrderConfirmationHTML(order))

	if pdfAttachment != nil {
		msg.AttachReader("recu_grocerly.pdf", bytes.NewReader(pdfAttachment))
	}

	client, err := mail.NewClient(os.Getenv("SMTP_HOST"),
		mail.WithPort(587),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(os.Getenv("SMTP_USERNAME")),
		mail.WithPassword(os.Getenv("SMTP_PASSWORD")),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return err
	}

	log.Println("📤 Envoi de l'e-mail de confirmation à", to)
	return client.DialAndSend(msg)
}

// GenerateOrderConfirmationHTML génère le HTML de confirmation de commande
func GenerateOrderConfirmationHTML(order models.Order) string {
	itemsHTML := ""
	for _, item := range order.Items {
		lineTotal := item.UnitPrice * models.Cents(item.Quantity)
		itemsHTML += fmt.Sprintf(`
			<tr>
				<td style="padding: 8px; border: 1px solid #ddd;">%s</td>
				<td style="padding: 8px; border: 1px solid #ddd;">%d</td>
				<td style="padding: 8px; border: 1px solid #ddd;">%s€</td>
				<td style="padding: 8px; border: 1px solid #ddd;">%s€</td>
			</tr>`, item.Name, item.Quantity, item.UnitPrice, lineTotal)
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="fr">
<head>
	<meta charset="UTF-8">
	<title>Confirmation de commande</title>
</head>
<body style="font-family: Arial, sans-serif; background-color: #f9f9f9; padding: 20px;">
	<div style="max-width: 600px; margin: auto; background-color: white; padding: 20px; border-radius: 10px;">
		<h2 style="color: #333;">Merci pour votre commande 🛒</h2>
		<p>Bonjour,</p>
		<p>Votre commande a bien été enregistrée.</p>

		<h3>Détails</h3>
		<table style="width: 100%%; border-collapse: collapse; margin: 20px 0;">
			<thead>
				<tr style="background-color: #f0f0f0;">
					<th style="padding: 8px; text-align: left; border: 1px solid #ddd;">Produit</th>
					<th style="padding: 8px; text-align: left; border: 1px solid #ddd;">Quantité</th>
					<th style="padding: 8px; text-align: left; border: 1px solid #ddd;">Prix unitaire</th>
					<th style="padding: 8px; text-align: left; border: 1px solid #ddd;">Total</th>
				</tr>
			</thead>
			<tbody>%s</tbody>
			<tfoot>
				<tr>
					<td colspan="3" style="padding: 8px; text-align: right; font-weight: bold;">Total (livraison incluse):</td>
					<td style="padding: 8px; font-weight: bold;">%s€</td>
				</tr>
			</tfoot>
		</table>

		<h3>Livraison</h3>
		<p style="white-space: pre-line;">%s</p>
		<p>Mode : %s — Paiement : %s</p>

		<p style="color: #999; font-size: 12px;">Grocerly — vos courses livrées.</p>
	</div>
</body>
</html>`, itemsHTML, order.TotalAmount, order.DeliveryAddress, order.DeliveryOption, order.PaymentMethod)
}
