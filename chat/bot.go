// Package chat answers visitor questions from a keyword knowledge base, with
// the backend FAQ as a fallback.
package chat

import (
	"context"
	"strings"
	"sync"
)

// Role identifies who wrote a transcript line.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Line is one transcript entry.
type Line struct {
	Role    Role
	Content string
}

// Entry maps a keyword to a canned reply.
type Entry struct {
	Keyword string
	Reply   string
}

// FAQ is the slice of the backend the bot needs.
type FAQ interface {
	GetFAQAnswer(ctx context.Context, keyword string) (string, bool, error)
}

// Bot holds the knowledge base and the conversation transcript. It is safe
// for concurrent use.
type Bot struct {
	kb  []Entry
	faq FAQ

	mu         sync.Mutex
	open       bool
	transcript []Line
}

// New creates a bot over kb, consulted in order. faq may be nil.
func New(kb []Entry, faq FAQ) *Bot {
	return &Bot{
		kb:         kb,
		faq:        faq,
		transcript: []Line{{Role: RoleAssistant, Content: Welcome}},
	}
}

// Lookup returns the reply of the first entry whose keyword occurs in the
// lower-cased query.
func (b *Bot) Lookup(query string) (string, bool) {
	lower := strings.ToLower(query)
	for _, e := range b.kb {
		if strings.Contains(lower, e.Keyword) {
			return e.Reply, true
		}
	}
	return "", false
}

// Answer resolves a query: the knowledge base first, then the backend FAQ
// keyed by the query's first word, then Fallback. Backend errors fall through
// to Fallback.
func (b *Bot) Answer(ctx context.Context, query string) string {
	if reply, ok := b.Lookup(query); ok {
		return reply
	}
	if b.faq != nil {
		keyword := strings.ToLower(strings.Split(query, " ")[0])
		if answer, ok, err := b.faq.GetFAQAnswer(ctx, keyword); err == nil && ok && answer != "" {
			return answer
		}
	}
	return Fallback
}

// Ask trims the query, appends it and the reply to the transcript, and
// returns the reply. Blank queries are ignored.
func (b *Bot) Ask(ctx context.Context, query string) (string, bool) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", false
	}
	b.append(Line{Role: RoleUser, Content: query})
	reply := b.Answer(ctx, query)
	b.append(Line{Role: RoleAssistant, Content: reply})
	return reply, true
}

func (b *Bot) append(l Line) {
	b.mu.Lock()
	b.transcript = append(b.transcript, l)
	b.mu.Unlock()
}

// Transcript returns a copy of the conversation so far.
func (b *Bot) Transcript() []Line {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Line, len(b.transcript))
	copy(out, b.transcript)
	return out
}

// Toggle flips the chat panel between open and closed and returns the new
// state. Hosts bind it to the two-finger tap.
func (b *Bot) Toggle() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.open = !b.open
	return b.open
}

// Open reports whether the chat panel is open.
func (b *Bot) Open() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.open
}

// Plain strips **bold** markers from a reply for renderers without rich
// text.
func Plain(s string) string {
	return strings.ReplaceAll(s, "**", "")
}
