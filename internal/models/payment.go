package models

// PaymentInstructions describes how to pay for an order with a given
// mobile-money provider
type PaymentInstructions struct {
	USSD      string `json:"ussd"`
	Steps     string `json:"steps"`
	Recipient string `json:"recipient"`
}

const paymentRecipient = "Evan Lesnar"

var paymentInstructions = map[string]PaymentInstructions{
	PaymentMethodMpesa: {
		USSD:      "*150#",
		Steps:     "Option 1 → Option 3 → Entrez le montant → Confirmez",
		Recipient: paymentRecipient,
	},
	PaymentMethodOrange: {
		USSD:      "*144#",
		Steps:     "Option 1 → Option 2 → Entrez le montant → Confirmez",
		Recipient: paymentRecipient,
	},
	PaymentMethodAirtel: {
		USSD:      "*501#",
		Steps:     "Option 1 → Option 4 → Entrez le montant → Confirmez",
		Recipient: paymentRecipient,
	},
	PaymentMethodAfricell: {
		USSD:      "*555#",
		Steps:     "Option 1 → Option 3 → Entrez le montant → Confirmez",
		Recipient: paymentRecipient,
	},
}

// PaymentInstructionsFor returns payment instructions for method.
// Second value is false when method is not a known provider.
func PaymentInstructionsFor(method string) (PaymentInstructions, bool) {
	instructions, ok := paymentInstructions[method]
	return instructions, ok
}
