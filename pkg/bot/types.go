package bot

import (
	"StorefrontGolang/internal/entity"
)

// Category maps a product category name to its trigger keywords. Categories
// with an empty Listing fall back to the generic product-search text.
type Category struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
	Listing  string   `json:"listing,omitempty"`
}

// Intent is one row of the response decision table. Handler selects a
// sub-handler for intents that need a secondary keyword check; the zero
// value means the static Response template is returned as-is.
type Intent struct {
	Name         string             `json:"name"`
	Keywords     []string           `json:"keywords"`
	Response     string             `json:"response"`
	QuickReplies []string           `json:"quick_replies"`
	NextContext  entity.ChatContext `json:"next_context"`
	Handler      string             `json:"handler,omitempty"`
}

type ISelector interface {
	Respond(text string, active entity.ChatContext) Reply
	Taxonomy() *Taxonomy
	Intents() []Intent
}

// Reply is the outcome of one selector pass.
type Reply struct {
	Text         string
	QuickReplies []string
	NextContext  entity.ChatContext
}

const (
	HandlerPriceInquiry = "price_inquiry"

	IntentGreeting       = "greeting"
	IntentPrice          = "price"
	IntentRepair         = "repair"
	IntentWarranty       = "warranty"
	IntentDelivery       = "delivery"
	IntentPayment        = "payment"
	IntentSell           = "sell"
	IntentOrderStatus    = "order_status"
	IntentComplaint      = "complaint"
	IntentComparison     = "comparison"
	IntentRecommendation = "recommendation"
)
