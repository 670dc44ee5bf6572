package bot

import (
	"time"

	"StorefrontGolang/internal/entity"
)

// Selector is the response decision table. Given raw user text and the
// active conversational context it produces the canned reply, the next
// quick-reply set and the next context.
type Selector struct {
	taxonomy *Taxonomy
	intents  []Intent
	now      func() time.Time
}

type SelectorOption func(*Selector)

// WithClock overrides the clock used for the time-based greeting.
func WithClock(now func() time.Time) SelectorOption {
	return func(s *Selector) {
		s.now = now
	}
}

func NewSelector(taxonomy *Taxonomy, intents []Intent, opts ...SelectorOption) *Selector {
	selector := &Selector{
		taxonomy: taxonomy,
		intents:  intents,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(selector)
	}

	return selector
}

func (s *Selector) Taxonomy() *Taxonomy {
	return s.taxonomy
}

func (s *Selector) Intents() []Intent {
	out := make([]Intent, len(s.intents))
	copy(out, s.intents)
	return out
}

// Respond runs one pass of the decision table. An active context delegates
// the whole turn to its handler and never changes the context; otherwise the
// intent list is evaluated in priority order, then category detection, then
// the generic fallback.
func (s *Selector) Respond(text string, active entity.ChatContext) Reply {
	switch active {
	case entity.ContextProductSearch:
		return s.productSearchReply(text)
	case entity.ContextRepairBooking:
		return s.repairBookingReply(text)
	}

	for _, intent := range s.intents {
		if MatchesAny(text, intent.Keywords) {
			return s.intentReply(intent, text)
		}
	}

	if category, ok := s.taxonomy.CategoryFor(text); ok {
		return s.listingReply(category)
	}

	return Reply{
		Text:         FallbackText,
		QuickReplies: DefaultQuickReplies(),
		NextContext:  entity.ContextNone,
	}
}

func (s *Selector) intentReply(intent Intent, text string) Reply {
	if intent.Handler == HandlerPriceInquiry {
		return s.priceInquiryReply(intent, text)
	}

	responseText := intent.Response
	if intent.Name == IntentGreeting {
		responseText = timeGreeting(s.now()) + " " + responseText
	}

	return Reply{
		Text:         responseText,
		QuickReplies: intent.QuickReplies,
		NextContext:  intent.NextContext,
	}
}

// priceInquiryReply is the secondary keyword check inside the price intent.
// A mentioned product category wins over the budget check, so a question
// like "iphone 15 price" lands on the category listing and opens the
// product-search context.
func (s *Selector) priceInquiryReply(intent Intent, text string) Reply {
	if category, ok := s.taxonomy.CategoryFor(text); ok {
		return s.listingReply(category)
	}

	if MatchesAny(text, []string{"range", "budget"}) {
		return Reply{
			Text:         "Tell me your budget and I'll suggest the best options in that range. As a guide: under $300 covers solid everyday phones, $300-$800 the mid range, and above that the flagship tier.",
			QuickReplies: []string{"Under $300", "Mid range", "Premium"},
			NextContext:  entity.ContextNone,
		}
	}

	return Reply{
		Text:         intent.Response,
		QuickReplies: intent.QuickReplies,
		NextContext:  intent.NextContext,
	}
}

// listingReply answers a detected product category and opens the
// product-search context. Categories without their own listing share the
// generic found-several-products text.
func (s *Selector) listingReply(category Category) Reply {
	text := category.Listing
	if text == "" {
		text = "I found several products that might interest you. Could you tell me which brand or model you are looking for?"
	}

	return Reply{
		Text:         text,
		QuickReplies: []string{"Price check", "Compare models", "Back to menu"},
		NextContext:  entity.ContextProductSearch,
	}
}

// productSearchReply handles a turn while the product-search context is
// active. The general intent list is skipped entirely; the context only
// resets on an explicit history clear.
func (s *Selector) productSearchReply(text string) Reply {
	if category, ok := s.taxonomy.CategoryFor(text); ok {
		reply := s.listingReply(category)
		reply.NextContext = entity.ContextProductSearch
		return reply
	}

	if MatchesAny(text, []string{"price", "cost", "how much"}) {
		return Reply{
			Text:         "Prices for the models above are listed next to each one. Installments are available over $300, and students get 5% off with a valid ID.",
			QuickReplies: []string{"Installment plans", "Compare models", "Back to menu"},
			NextContext:  entity.ContextProductSearch,
		}
	}

	return Reply{
		Text:         "I found several products that might interest you. Could you tell me which brand or model you are looking for?",
		QuickReplies: []string{"Phones", "Laptops", "Watches"},
		NextContext:  entity.ContextProductSearch,
	}
}

// repairBookingReply handles a turn while the repair-booking context is
// active.
func (s *Selector) repairBookingReply(text string) Reply {
	if MatchesAny(text, []string{"price", "pricing", "cost", "how much", "fee"}) {
		return Reply{
			Text:         "Diagnostics are free. Typical prices: screen replacement from $79, battery from $49, water damage treatment from $99. You only pay if you approve the quote.",
			QuickReplies: []string{"Book a slot", "Warranty info"},
			NextContext:  entity.ContextRepairBooking,
		}
	}

	if MatchesAny(text, []string{"book", "appointment", "slot", "tomorrow", "today"}) {
		return Reply{
			Text:         "Great. Drop-in repairs are taken every day from 10:00 to 19:00, no appointment needed. Bring the device and your receipt if you have it, and we'll confirm the quote on the spot.",
			QuickReplies: []string{"Repair pricing", "Warranty info"},
			NextContext:  entity.ContextRepairBooking,
		}
	}

	if _, ok := s.taxonomy.CategoryFor(text); ok {
		return Reply{
			Text:         "We repair that device type in-house. Please describe what's wrong with it - for example a cracked screen, weak battery or water damage - and I'll tell you what the fix involves.",
			QuickReplies: []string{"Repair pricing", "Book a slot"},
			NextContext:  entity.ContextRepairBooking,
		}
	}

	return Reply{
		Text:         "To book your repair I need to know the device and the problem. Which device is it, and what happened to it?",
		QuickReplies: []string{"Phone repair", "Laptop repair", "Watch repair"},
		NextContext:  entity.ContextRepairBooking,
	}
}

func timeGreeting(now time.Time) string {
	hour := now.Hour()
	switch {
	case hour < 12:
		return "Good morning!"
	case hour < 17:
		return "Good afternoon!"
	default:
		return "Good evening!"
	}
}
