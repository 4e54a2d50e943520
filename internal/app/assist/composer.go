// Package assist turns classified intents into scripted reply payloads.
package assist

import (
	"context"
	"fmt"

	"github.com/logitrack/assist/internal/app/intent"
	"github.com/logitrack/assist/internal/domain"
)

// List-style replies keep their newline-separated bullet structure; several
// tests assert on it.
const (
	deliveryStatusReply = "Based on your current shipments, here are the delivery estimates:\n" +
		"• SH-2024-001: 2 hours (Los Angeles)\n" +
		"• SH-2024-003: 4 hours late (Denver)\n" +
		"• SH-2024-004: Not started (Atlanta)\n\n" +
		"Would you like to reschedule any of these deliveries?"

	rescheduleReply = "I can help you reschedule or cancel your delivery. " +
		"Please provide your tracking number and your preferred new delivery date. " +
		"I'll update your shipment details and send you a confirmation."

	statusSummaryReply = "Here's your current shipment status:\n" +
		"• 1 In Transit (75% complete)\n" +
		"• 1 Delivered\n" +
		"• 1 Delayed (4 hours)\n" +
		"• 1 Pending\n\n" +
		"Would you like detailed information about any specific shipment?"

	fallbackReply = "I understand you're asking about logistics services. I can help with:\n" +
		"• Package tracking\n" +
		"• Delivery status updates\n" +
		"• Rescheduling deliveries\n" +
		"• Shipment information\n" +
		"• General logistics questions\n\n" +
		"What specific information do you need?"
)

// Compose renders the fixed reply template for an intent. Track replies also
// carry the featured shipment as a structured reference.
func Compose(in intent.Intent, kb KnowledgeBase) domain.Reply {
	switch in {
	case intent.Track:
		f := kb.Featured
		return domain.Reply{
			Text: fmt.Sprintf(
				"I can help you track your package! Your shipment %s is currently in transit from %s to %s. "+
					"It's %d%% complete and expected to arrive in %s. "+
					"Would you like me to provide more details about this shipment?",
				f.ID, f.Origin, f.Destination, f.ProgressPercent, f.ETALabel,
			),
			Reference: f.ID,
		}
	case intent.DeliveryStatus:
		return domain.Reply{Text: deliveryStatusReply}
	case intent.Reschedule:
		return domain.Reply{Text: rescheduleReply}
	case intent.StatusSummary:
		return domain.Reply{Text: statusSummaryReply}
	default:
		return domain.Reply{Text: fallbackReply}
	}
}

// ScriptedResponder implements domain.Responder with the keyword rule table
// and the static knowledge base. It is the deterministic default; the Gemini
// adapter can replace it by config.
type ScriptedResponder struct {
	kb KnowledgeBase
}

func NewScriptedResponder(kb KnowledgeBase) *ScriptedResponder {
	return &ScriptedResponder{kb: kb}
}

// Respond classifies the message and composes the matching template. It never
// fails: unclassifiable text lands on the fallback help menu.
func (r *ScriptedResponder) Respond(ctx context.Context, text string, convCtx domain.ConversationContext) (domain.Reply, error) {
	return Compose(intent.Classify(text), r.kb), nil
}
