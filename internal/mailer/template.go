package mailer

import (
	"bytes"
	"fmt"
	"html/template"

	emailv1 "github.com/orderpost/orderpost/api/proto/email/v1"
)

const confirmationHTML = `<!DOCTYPE html>
<html>
<head>
  <title>Your Order Confirmation</title>
</head>
<body>
  <h2>Your Order Confirmation</h2>
  <p>Thanks for shopping with us!</p>
  <h3>Order ID</h3>
  <p>#{{ .GetOrderId }}</p>
  <h3>Shipping</h3>
  <p>#{{ .GetShippingTrackingId }}</p>
  <p>{{ money .GetShippingCost }}</p>
  <p>{{ with .GetShippingAddress }}{{ .GetStreetAddress }}, {{ .GetCity }}, {{ .GetState }} {{ .GetZipCode }} {{ .GetCountry }}{{ end }}</p>
  <h3>Items</h3>
  <table style="width:100%">
    <tr>
      <th>Item No.</th>
      <th>Quantity</th>
      <th>Price</th>
    </tr>
    {{ range .GetItems }}
    <tr>
      <td>#{{ .GetItem.GetProductId }}</td>
      <td>{{ .GetItem.GetQuantity }}</td>
      <td>{{ money .GetCost }}</td>
    </tr>
    {{ end }}
  </table>
</body>
</html>
`

var confirmationTmpl = template.Must(
	template.New("confirmation").
		Funcs(template.FuncMap{"money": formatMoney}).
		Parse(confirmationHTML),
)

// renderConfirmation renders the HTML confirmation body for an order.
func renderConfirmation(order *emailv1.OrderResult) (string, error) {
	var buf bytes.Buffer
	if err := confirmationTmpl.Execute(&buf, order); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// formatMoney renders a Money value as "USD 12.34". Nanos are truncated to
// cents; confirmation email does not need sub-cent precision.
func formatMoney(m *emailv1.Money) string {
	if m == nil {
		return ""
	}
	return fmt.Sprintf("%s %d.%02d", m.GetCurrencyCode(), m.GetUnits(), m.GetNanos()/10_000_000)
}
