package nlu

// Intent is the axis of an invoice question.
type Intent string

const (
	IntentStatusDue     Intent = "status_due"
	IntentStatus        Intent = "status"
	IntentDueDate       Intent = "due_date"
	IntentAmount        Intent = "amount"
	IntentPaymentStatus Intent = "payment_status"
	IntentGeneral       Intent = "general"
)

type features struct {
	status  bool
	due     bool
	amount  bool
	payment bool
}

var (
	statusWords  = []string{"status", "statut", "état", "etat"}
	dueWords     = []string{"due", "échéance", "echeance", "deadline"}
	amountWords  = []string{"amount", "montant", "total"}
	paymentWords = []string{"payment", "paiement", "réglé", "regle", "impay"}
)

type intentRule struct {
	intent Intent
	when   func(features) bool
}

// intentRules is evaluated top to bottom. A compound status and due question keeps both axes.
var intentRules = []intentRule{
	{IntentStatusDue, func(f features) bool { return f.status && f.due }},
	{IntentStatus, func(f features) bool { return f.status }},
	{IntentDueDate, func(f features) bool { return f.due }},
	{IntentAmount, func(f features) bool { return f.amount }},
	{IntentPaymentStatus, func(f features) bool { return f.payment }},
}

// ClassifyIntent maps message to an Intent, IntentGeneral when no feature matches.
func ClassifyIntent(message string) Intent {
	f := extractFeatures(message)
	for _, r := range intentRules {
		if r.when(f) {
			return r.intent
		}
	}
	return IntentGeneral
}

func extractFeatures(message string) features {
	m := fold(message)
	return features{
		status:  containsAny(m, statusWords),
		due:     containsAny(m, dueWords),
		amount:  containsAny(m, amountWords),
		payment: containsAny(m, paymentWords),
	}
}
