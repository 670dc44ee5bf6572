package bot

import (
	"time"

	"StorefrontGolang/internal/entity"
)

const WelcomeText = "Hello! Welcome to GadgetCare Store. I can help you browse products, book repairs and answer questions about your orders. How can I help you today?"

const FallbackText = "I'm not sure I understood that. You can browse products by naming a device, like iPhone or MacBook, or pick one of the suggestions below."

const ApologyText = "Sorry, something went wrong on my side while answering. Please try again in a moment."

func DefaultQuickReplies() []string {
	return []string{"Show products", "Repair service", "Price check", "Warranty info"}
}

// WelcomeMessage seeds a fresh transcript.
func WelcomeMessage(now time.Time) entity.ChatMessage {
	return entity.ChatMessage{
		Text:      WelcomeText,
		IsBot:     true,
		Timestamp: now,
	}
}

// DefaultTaxonomy is the built-in category table. Order matters: CategoryFor
// returns the first category with a keyword hit.
func DefaultTaxonomy() *Taxonomy {
	return NewTaxonomy([]Category{
		{
			Name:     "mobile",
			Keywords: []string{"iphone", "samsung", "galaxy", "pixel", "smartphone", "mobile", "phone"},
			Listing: "Here is what we have in phones right now:\n" +
				"• iPhone 15 Pro — $999\n" +
				"• Samsung Galaxy S24 — $849\n" +
				"• Google Pixel 9 — $749\n" +
				"Tell me a model and I can check stock and colors.",
		},
		{
			Name:     "laptop",
			Keywords: []string{"laptop", "macbook", "notebook", "thinkpad", "ultrabook"},
			Listing: "Our current laptop lineup:\n" +
				"• MacBook Air M3 — $1099\n" +
				"• ThinkPad X1 Carbon — $1349\n" +
				"• ASUS Zenbook 14 — $899\n" +
				"Tell me a model and I can check stock and configurations.",
		},
		{
			Name:     "watch",
			Keywords: []string{"watch", "smartwatch", "wearable"},
			Listing: "Smartwatches in stock:\n" +
				"• Apple Watch Series 10 — $399\n" +
				"• Galaxy Watch 7 — $299\n" +
				"• Pixel Watch 3 — $349\n" +
				"Tell me a model and I can check straps and sizes.",
		},
		{
			Name:     "accessory",
			Keywords: []string{"charger", "cable", "case", "headphone", "earbud", "adapter", "accessory"},
		},
	})
}

// DefaultIntents is the built-in decision table. The slice order is the
// intent priority order: the first intent with a keyword hit wins, and
// category detection runs only after every intent here has missed.
func DefaultIntents() []Intent {
	return []Intent{
		{
			Name:     IntentGreeting,
			Keywords: []string{"hello", "hi", "hey", "good morning", "good afternoon", "good evening", "greetings"},
			Response: "Welcome to GadgetCare Store. I can show you products, book a repair or check prices and warranty for you.",
			QuickReplies: []string{
				"Show products", "Repair service", "Price check", "Warranty info",
			},
		},
		{
			Name:     IntentPrice,
			Keywords: []string{"price", "cost", "how much", "expensive", "cheap"},
			Response: "Prices depend on the model and configuration. Phones start at $199, laptops at $649 and smartwatches at $249. Name a device and I'll pull up the exact price.",
			QuickReplies: []string{
				"Under $300", "Mid range", "Premium", "Show products",
			},
			Handler: HandlerPriceInquiry,
		},
		{
			Name:        IntentRepair,
			Keywords:    []string{"repair", "fix", "broken", "cracked", "screen", "battery", "not working", "damage"},
			Response:    "I can help you book a repair. Free diagnostics, most screen and battery jobs are done the same day, and every repair comes with a 90-day guarantee. Which device needs fixing?",
			NextContext: entity.ContextRepairBooking,
			QuickReplies: []string{
				"Phone repair", "Laptop repair", "Watch repair", "Repair pricing",
			},
		},
		{
			Name:     IntentWarranty,
			Keywords: []string{"warranty", "guarantee", "coverage"},
			Response: "All new devices come with a 12-month manufacturer warranty, and our own repairs carry a 90-day guarantee. Bring your receipt or order number to any store to make a claim.",
			QuickReplies: []string{
				"Warranty claim", "Repair service", "Order status",
			},
		},
		{
			Name:     IntentDelivery,
			Keywords: []string{"delivery", "shipping", "ship", "arrive", "tracking", "courier"},
			Response: "Standard delivery takes 2-4 business days and is free over $50. Express next-day delivery is $9.99. You get a tracking link by email once the parcel ships.",
			QuickReplies: []string{
				"Order status", "Show products", "Payment options",
			},
		},
		{
			Name:     IntentPayment,
			Keywords: []string{"payment", "pay", "installment", "card", "cash on delivery", "invoice"},
			Response: "We accept cards, bank transfer and cash on delivery. Devices over $300 qualify for 0% installments across 3, 6 or 12 months.",
			QuickReplies: []string{
				"Installment plans", "Show products", "Price check",
			},
		},
		{
			Name:     IntentSell,
			Keywords: []string{"sell", "trade in", "trade-in", "buyback", "exchange my"},
			Response: "We buy back working phones, laptops and watches. Bring the device to a store for a free appraisal, or start a trade-in online and the value is deducted from your next purchase.",
			QuickReplies: []string{
				"Trade-in value", "Show products",
			},
		},
		{
			Name:     IntentOrderStatus,
			Keywords: []string{"order status", "my order", "order number", "where is my order"},
			Response: "You can check your order under Account > Orders, where every order shows its current status and tracking link. If something looks stuck, our support team can dig into it.",
			QuickReplies: []string{
				"Delivery info", "Talk to support",
			},
		},
		{
			Name:     IntentComplaint,
			Keywords: []string{"complaint", "complain", "refund", "return", "disappointed", "terrible"},
			Response: "I'm sorry to hear that. You can return any item within 14 days for a full refund, and a support agent can take your complaint at support@gadgetcare.example. We take these seriously.",
			QuickReplies: []string{
				"Start a return", "Talk to support",
			},
		},
		{
			Name:     IntentComparison,
			Keywords: []string{"compare", "difference", "versus", " vs "},
			Response: "Happy to compare. Tell me the two models and I'll line up price, battery, camera and warranty side by side.",
			QuickReplies: []string{
				"Show products", "Recommend something",
			},
		},
		{
			Name:     IntentRecommendation,
			Keywords: []string{"recommend", "suggest", "best", "top rated"},
			Response: "For most people the sweet spot is a mid-range phone or laptop from last year's flagship line: flagship build, friendlier price. Tell me your budget and what you'll use it for and I'll narrow it down.",
			QuickReplies: []string{
				"Under $300", "Mid range", "Premium",
			},
		},
	}
}
