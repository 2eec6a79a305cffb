package services

import (
	"context"
	"encoding/base64"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
	qrcode "github.com/skip2/go-qrcode"

	"grocerly_back_end/internal/models"
)

// PickupQRCode génère le QR de retrait en base64, prêt pour <img src="...">.
// Présenté en magasin, il identifie la commande à remettre au client.
func PickupQRCode(order models.Order) (string, error) {
	payload := fmt.Sprintf("grocerly:pickup:%s:%s", order.ID.String(), order.UserID)

	png, err := qrcode.Encode(payload, qrcode.Medium, 256)
	if err != nil {
		return "", err
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// BuildReceiptHTML génère le reçu imprimable d'une commande
func BuildReceiptHTML(order models.Order) string {
	itemsHTML := ""
	for _, item := range order.Items {
		lineTotal := item.UnitPrice * models.Cents(item.Quantity)
		itemsHTML += fmt.Sprintf(`
			<tr>
				<td>%s</td>
				<td style="text-align:center;">%d</td>
				<td style="text-align:right;">%s€</td>
				<td style="text-align:right;">%s€</td>
			</tr>`, item.Name, item.Quantity, item.UnitPrice, lineTotal)
	}

	qrHTML := ""
	if order.DeliveryOption == models.DeliveryPickup {
		if qr, err := PickupQRCode(order); err == nil {
			qrHTML = fmt.Sprintf(`<div style="text-align:center; margin-top:24px;">
				<p>Présentez ce code au retrait :</p><img src="%s" width="160" height="160"/></div>`, qr)
		}
	}

	return fmt.Sprintf(`
<!DOCTYPE html>
<html lang="fr">
<head><meta charset="UTF-8"><title>Reçu Grocerly</title></head>
<body style="font-family: Arial, sans-serif; padding: 24px;">
	<h1 style="color:#2e7d32;">Grocerly</h1>
	<p>Commande #%s<br/>%s</p>
	<table style="width:100%%; border-collapse:collapse;" border="1" cellpadding="6">
		<thead>
			<tr style="background:#f0f0f0;">
				<th>Produit</th><th>Qté</th><th>P.U.</th><th>Total</th>
			</tr>
		</thead>
		<tbody>%s</tbody>
		<tfoot>
			<tr><td colspan="3" style="text-align:right;font-weight:bold;">Total (livraison incluse)</td>
			<td style="text-align:right;font-weight:bold;">%s€</td></tr>
		</tfoot>
	</table>
	<h3>Livraison</h3>
	<p style="white-space: pre-line;">%s</p>
	<p>Mode : %s — Paiement : %s</p>
	%s
</body>
</html>`,
		order.ID.String(), order.CreatedAt.Format("02/01/2006 15:04"),
		itemsHTML, order.TotalAmount, order.DeliveryAddress,
		order.DeliveryOption, order.PaymentMethod, qrHTML)
}

// RenderReceiptPDF imprime le reçu HTML en PDF via Chrome headless
func RenderReceiptPDF(order models.Order) ([]byte, error) {
	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()

	ctx, cancel = context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	html := BuildReceiptHTML(order)
	dataURL := "data:text/html;base64," + base64.StdEncoding.EncodeToString([]byte(html))

	var pdfBuf []byte
	err := chromedp.Run(ctx,
		chromedp.Navigate(dataURL),
		chromedp.WaitVisible("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			buf, _, err := page.PrintToPDF().WithPrintBackground(true).Do(ctx)
			if err != nil {
				return err
			}
			pdfBuf = buf
			return nil
		}),
	)
	if err != nil {
		return nil, err
	}

	return pdfBuf, nil
}
