package template

import "invoice-assistant/internal/nlu"

type messages struct {
	notFoundWithID string // identifier
	notFound       string
	greeting       string

	unknownStatus string
	status        string // number, status
	statusDue     string // number, status, due date
	dueDate       string // number, due date
	noDueDate     string // number
	amount        string // number, amount, currency
	noAmount      string // number
	paymentStatus string // number, status

	summary       string // number, joined parts
	summaryStatus string
	summaryDue    string
	summaryAmount string // amount, currency
}

var catalog = map[nlu.Language]messages{
	nlu.LanguageFR: {
		notFoundWithID: "Je n’ai pas trouvé de facture pour l’identifiant %s. Vous pouvez demander: ‘Statut facture #F123’, ‘Échéance facture 456’, ou ‘Montant facture #INV-789’.",
		notFound:       "Je n’ai pas trouvé cette facture. Essayez avec un numéro, par ex.: ‘Statut facture #F123’.",
		greeting:       "Bonjour ! Je peux vous aider à connaître le statut, la date d’échéance, le montant ou le paiement d’une facture (ex. ‘Statut facture #F123’). Que puis-je faire pour vous ?",

		unknownStatus: "inconnu",
		status:        "La facture %s est %s.",
		statusDue:     "La facture %s est %s et échéance le %s.",
		dueDate:       "La facture %s est due le %s.",
		noDueDate:     "La facture %s n’a pas de date d’échéance disponible.",
		amount:        "Le montant de la facture %s est de %s %s.",
		noAmount:      "Le montant de la facture %s n’est pas disponible.",
		paymentStatus: "Statut de paiement de la facture %s: %s.",

		summary:       "Facture %s: %s.",
		summaryStatus: "statut: %s",
		summaryDue:    "échéance: %s",
		summaryAmount: "montant: %s %s",
	},
	nlu.LanguageEN: {
		notFoundWithID: "I couldn’t find an invoice for identifier %s. You can ask: ‘Status invoice #F123’, ‘Due date invoice 456’, or ‘Amount invoice #INV-789’.",
		notFound:       "I couldn’t find that invoice. Try with a number, e.g.: ‘Status invoice #F123’.",
		greeting:       "Hi! I can help you with invoice status, due date, amount, or payment (e.g., ‘Status invoice #F123’). How can I help?",

		unknownStatus: "unknown",
		status:        "Invoice %s is %s.",
		statusDue:     "Invoice %s is %s and due on %s.",
		dueDate:       "Invoice %s is due on %s.",
		noDueDate:     "Invoice %s has no due date available.",
		amount:        "Invoice %s amount is %s %s.",
		noAmount:      "The amount of invoice %s is not available.",
		paymentStatus: "Payment status of invoice %s: %s.",

		summary:       "Invoice %s: %s.",
		summaryStatus: "status: %s",
		summaryDue:    "due: %s",
		summaryAmount: "amount: %s %s",
	},
}

func messagesFor(lang nlu.Language) messages {
	if m, ok := catalog[lang]; ok {
		return m
	}
	return catalog[nlu.LanguageEN]
}
