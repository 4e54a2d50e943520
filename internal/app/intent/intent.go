package intent

import "strings"

// Intent is the classified purpose of a user's chat message.
type Intent string

const (
	Track          Intent = "track"
	DeliveryStatus Intent = "delivery_status"
	Reschedule     Intent = "reschedule"
	StatusSummary  Intent = "status_summary"
	Fallback       Intent = "fallback"
)

// rule pairs a keyword set with the intent it selects. Rules are data so the
// priority order can be read and tested in one place.
type rule struct {
	keywords []string
	intent   Intent
}

// rules are evaluated top to bottom; the first rule with any keyword present
// in the input wins. Order matters: "track my delivery status" must classify
// as Track even though it also contains DeliveryStatus and StatusSummary
// keywords.
var rules = []rule{
	{keywords: []string{"track", "where is", "package"}, intent: Track},
	{keywords: []string{"delivery", "when", "arrive"}, intent: DeliveryStatus},
	{keywords: []string{"reschedule", "cancel"}, intent: Reschedule},
	{keywords: []string{"status", "update"}, intent: StatusSummary},
}

// Classify maps free text to an Intent. The input is lower-cased and matched
// by substring; nothing else is normalized. Classify is total: any input,
// including the empty string, yields an Intent, with Fallback as the terminal
// default.
func Classify(text string) Intent {
	input := strings.ToLower(text)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(input, kw) {
				return r.intent
			}
		}
	}
	return Fallback
}
