package mailer

import (
	"fmt"

	"github.com/evanlesnar/billetterie/internal/models"
)

func instructionsText(instructions models.PaymentInstructions, amount float64, currency string) string {
	return fmt.Sprintf(`
        <strong>1.</strong> Composez %s<br>
        <strong>2.</strong> %s<br>
        <strong>3.</strong> Bénéficiaire : <strong>%s</strong><br>
        <strong>4.</strong> Montant : <strong>%.0f %s</strong>
    `, instructions.USSD, instructions.Steps, instructions.Recipient, amount, currency)
}

func orderConfirmationBody(d OrderDetails, instructions models.PaymentInstructions) string {
	return fmt.Sprintf(`
    <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
        <h2>Merci pour votre commande, %s !</h2>
        <p>Votre commande <strong>%s</strong> pour <strong>%s</strong> a bien été enregistrée.</p>
        <p>%s, le %s</p>
        <h3>Instructions de paiement</h3>
        <p>%s</p>
        <p>Votre billet vous sera envoyé dès validation du paiement.</p>
    </div>`,
		d.CustomerName, d.OrderID, d.EventTitle, d.EventVenue, d.EventDate,
		instructionsText(instructions, d.TotalAmount, d.Currency))
}

func adminNotificationBody(d OrderDetails) string {
	return fmt.Sprintf(`
    <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
        <h2>Nouvelle commande</h2>
        <p>Commande <strong>%s</strong></p>
        <ul>
            <li>Client : %s</li>
            <li>Email : %s</li>
            <li>Événement : %s (%s)</li>
            <li>Montant : %.0f %s</li>
        </ul>
        <p>Validez le paiement depuis le tableau de bord pour émettre le billet.</p>
    </div>`,
		d.OrderID, d.CustomerName, d.CustomerEmail, d.EventTitle, d.EventDate,
		d.TotalAmount, d.Currency)
}

func tokenBody(token string, d OrderDetails) string {
	return fmt.Sprintf(`
    <div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
        <h2>Votre paiement est validé, %s !</h2>
        <p>Voici votre token d'accès pour <strong>%s</strong> :</p>
        <p style="font-size: 24px; font-weight: bold; letter-spacing: 2px; text-align: center;">%s</p>
        <p>%s, le %s</p>
        <p>Présentez ce token à l'entrée. Il ne peut être utilisé qu'une seule fois.</p>
    </div>`,
		d.CustomerName, d.EventTitle, token, d.EventVenue, d.EventDate)
}
