package intent_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/logitrack/assist/internal/app/intent"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want intent.Intent
	}{
		{name: "track keyword", in: "track my order", want: intent.Track},
		{name: "where is phrase", in: "Where is my package?", want: intent.Track},
		{name: "delivery question", in: "when will my delivery arrive", want: intent.DeliveryStatus},
		{name: "reschedule", in: "I need to reschedule", want: intent.Reschedule},
		{name: "cancel", in: "please cancel my order", want: intent.Reschedule},
		{name: "status summary", in: "give me a status update", want: intent.StatusSummary},
		{name: "empty input", in: "", want: intent.Fallback},
		{name: "unrelated text", in: "hello there", want: intent.Fallback},
		{name: "uppercase normalized", in: "TRACK IT", want: intent.Track},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, intent.Classify(tc.in))
		})
	}
}

// A message matching several rules resolves by rule order, not match count or
// keyword position.
func TestClassifyPriorityOrder(t *testing.T) {
	assert.Equal(t, intent.Track, intent.Classify("track my delivery status"))
	assert.Equal(t, intent.Track, intent.Classify("status update on my package"))
	assert.Equal(t, intent.DeliveryStatus, intent.Classify("my delivery status"))
	assert.Equal(t, intent.DeliveryStatus, intent.Classify("when can I cancel"))
}
