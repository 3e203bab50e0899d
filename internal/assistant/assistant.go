package assistant

import (
	"errors"
	"strings"
	"time"
)

var ErrEmptyMessage = errors.New("message is empty")

// Topic names the canned reply a message maps to.
type Topic string

const (
	TopicGreeting   Topic = "greeting"
	TopicMattress   Topic = "mattress"
	TopicPillow     Topic = "pillow"
	TopicToiletries Topic = "toiletries"
	TopicPrice      Topic = "price"
	TopicShipping   Topic = "shipping"
	TopicFallback   Topic = "fallback"
)

// MessageID is the i18n key holding the reply text.
func (t Topic) MessageID() string {
	return "assistant." + string(t)
}

type rule struct {
	topic    Topic
	keywords []string
}

// checked in order, first hit wins
var rules = []rule{
	{TopicMattress, []string{"mattress"}},
	{TopicPillow, []string{"pillow"}},
	{TopicToiletries, []string{"toiletries", "bathroom"}},
	{TopicPrice, []string{"price", "cost"}},
	{TopicShipping, []string{"shipping", "delivery"}},
}

// Classify picks the topic for text by case-insensitive substring match.
func Classify(text string) Topic {
	input := strings.ToLower(text)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(input, kw) {
				return r.topic
			}
		}
	}
	return TopicFallback
}

type Message struct {
	ID        string
	Text      string
	FromBot   bool
	Topic     Topic
	Timestamp time.Time
}
