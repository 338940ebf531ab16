// Package assistant implements the scripted chat and mock interview
// responders. Replies come from fixed keyword tables and question
// banks; no network calls, no external models.
package assistant

import (
	"context"
	"math/rand"
	"strings"
	"time"
)

// keywordResponse maps a keyword to its canned reply. Matching is
// case-insensitive substring; order matters, the first hit wins.
type keywordResponse struct {
	Keyword  string
	Response string
}

var chatResponses = []keywordResponse{
	{"hello", "Hello! I'm your graduate school application assistant. How can I help you?"},
	{"hi", "Hi there! I'm your application assistant. What would you like to know?"},
	{"project", "You can view and manage your applications on the projects page. Each project can hold its own uploaded documents."},
	{"document", "Applications usually need a transcript, class ranking certificate, English proficiency scores, recommendation letters, a personal statement, a resume, and any publications. You can upload each one on the project detail page."},
	{"material", "Applications usually need a transcript, class ranking certificate, English proficiency scores, recommendation letters, a personal statement, a resume, and any publications. You can upload each one on the project detail page."},
	{"interview", "Try the mock interview feature to practice. It generates questions matched to your chosen interview type."},
	{"timeline", "Application season generally starts in spring of junior year: summer camps run June through August, pre-admission rounds in September, and formal recommendation at the end of September. Plan ahead."},
	{"tsinghua", "Tsinghua University is a top-tier school with fierce competition. Prepare early, watch the official site for announcements, and showcase your research ability."},
	{"peking", "Peking University is also a top-tier school and hard to get into. Aim for well-rounded strength across grades, research, and practical experience."},
	{"finance", "Finance programs value mathematical foundations, programming skills, and internship experience. Consider the GRE or GMAT and build relevant internships."},
	{"computer", "Computer science programs value coding ability, research experience, and real projects. Practice algorithm problems and contribute to open source or research work."},
	{"math", "Mathematics programs value fundamentals, research potential, and grades. Reach out to potential advisors early to learn about their research directions."},
}

// DefaultResponse is returned when no keyword matches.
const DefaultResponse = "Thanks for asking! As your application assistant I can:\n\n1. Answer questions about the application process\n2. Suggest programs to apply to\n3. Review your document checklist\n4. Recommend preparation strategies\n\nWhat would you like to know?"

// WelcomeMessage opens a fresh chat.
const WelcomeMessage = "Hello! I'm your graduate school application assistant. I can:\n\n- Answer application questions\n- Help you review your projects\n- Suggest application strategies\n- Look up your document checklist\n\nHow can I help you?"

// ClearedMessage replaces the history after a clear.
const ClearedMessage = "Chat cleared. I'm your application assistant, how can I help you?"

// Responder produces scripted chat replies with a simulated thinking
// delay.
type Responder struct {
	rng *rand.Rand
}

// NewResponder returns a Responder. A nil rng falls back to a
// time-seeded source.
func NewResponder(rng *rand.Rand) *Responder {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Responder{rng: rng}
}

// Reply returns the canned response for a user message: the first
// keyword table entry whose keyword appears in the message, or
// DefaultResponse.
func (r *Responder) Reply(message string) string {
	lower := strings.ToLower(message)
	for _, kr := range chatResponses {
		if strings.Contains(lower, kr.Keyword) {
			return kr.Response
		}
	}
	return DefaultResponse
}

// Think blocks for one to two seconds, the simulated response delay.
// It returns early if ctx is cancelled.
func (r *Responder) Think(ctx context.Context) error {
	delay := time.Second + time.Duration(r.rng.Float64()*float64(time.Second))
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
