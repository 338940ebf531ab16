package assistant

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"testing"
	"time"

	"github.com/good-yellow-bee/gradtrack/internal/models"
)

func newTestResponder() *Responder {
	return NewResponder(rand.New(rand.NewSource(1)))
}

func TestReplyKeywordMatch(t *testing.T) {
	r := newTestResponder()

	tests := []struct {
		name    string
		message string
		wantSub string
	}{
		{"exact keyword", "hello", "graduate school application assistant"},
		{"keyword inside sentence", "tell me about the timeline please", "summer camps"},
		{"case insensitive", "What does TSINGHUA expect?", "Tsinghua University"},
		{"no match falls back", "what's the weather like", "Thanks for asking"},
		{"empty message falls back", "", "Thanks for asking"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Reply(tt.message)
			if !strings.Contains(got, tt.wantSub) {
				t.Errorf("Reply(%q) = %q, want it to contain %q", tt.message, got, tt.wantSub)
			}
		})
	}
}

func TestReplyFirstMatchWins(t *testing.T) {
	r := newTestResponder()
	// "hello" precedes "project" in the table, so a message holding
	// both gets the greeting.
	got := r.Reply("hello, how do I add a project?")
	if !strings.Contains(got, "How can I help you?") {
		t.Errorf("Reply() = %q, want greeting response", got)
	}
}

func TestThinkHonorsCancel(t *testing.T) {
	r := newTestResponder()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	start := time.Now()
	err := r.Think(ctx)
	if err == nil {
		t.Fatal("Think() on cancelled context returned nil error")
	}
	if elapsed := time.Since(start); elapsed > 500*time.Millisecond {
		t.Errorf("Think() took %v after cancel, want immediate return", elapsed)
	}
}

func TestInterviewerWalksFullBank(t *testing.T) {
	iv := NewInterviewer(models.InterviewProfessional, rand.New(rand.NewSource(1)))

	opening := iv.Opening()
	if !strings.Contains(opening, "Professional Interview") {
		t.Errorf("Opening() = %q, want type label", opening)
	}
	if !strings.Contains(opening, "**Question 1:**") {
		t.Errorf("Opening() missing first question: %q", opening)
	}
	if iv.QuestionNumber() != 1 {
		t.Errorf("QuestionNumber() = %d after opening, want 1", iv.QuestionNumber())
	}

	// Answer every question; the reply after the last answer closes
	// the interview.
	for i := 2; i <= iv.Total(); i++ {
		reply, done := iv.Next("my answer")
		if done {
			t.Fatalf("interview ended early at question %d", i)
		}
		if !strings.Contains(reply, "**Feedback:**") {
			t.Errorf("reply %d missing feedback: %q", i, reply)
		}
		want := fmt.Sprintf("**Question %d:**", i)
		if !strings.Contains(reply, want) {
			t.Errorf("reply %d = %q, want %q", i, reply, want)
		}
	}

	reply, done := iv.Next("final answer")
	if !done {
		t.Error("interview did not end after the last question")
	}
	if !strings.Contains(reply, "Interview finished!") {
		t.Errorf("closing reply = %q, want closing message", reply)
	}
	if !strings.Contains(reply, "**Feedback:**") {
		t.Errorf("closing reply missing feedback: %q", reply)
	}
}

func TestInterviewerBankSizes(t *testing.T) {
	for _, typ := range []models.InterviewType{
		models.InterviewGeneral,
		models.InterviewProfessional,
		models.InterviewEnglish,
	} {
		iv := NewInterviewer(typ, rand.New(rand.NewSource(1)))
		if iv.Total() != 8 {
			t.Errorf("%s bank has %d questions, want 8", typ, iv.Total())
		}
	}
}

func TestTypeLabel(t *testing.T) {
	tests := []struct {
		typ  models.InterviewType
		want string
	}{
		{models.InterviewGeneral, "General Interview"},
		{models.InterviewProfessional, "Professional Interview"},
		{models.InterviewEnglish, "English Interview"},
		{models.InterviewType("unknown"), "General Interview"},
	}
	for _, tt := range tests {
		if got := TypeLabel(tt.typ); got != tt.want {
			t.Errorf("TypeLabel(%s) = %q, want %q", tt.typ, got, tt.want)
		}
	}
}
