package assistant

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/good-yellow-bee/gradtrack/internal/models"
)

var interviewQuestions = map[models.InterviewType][]string{
	models.InterviewGeneral: {
		"Please give a brief introduction of yourself.",
		"Why did you choose our school and program?",
		"What are your research interests?",
		"What is your career plan for the next five years?",
		"What do you consider your strengths and weaknesses?",
		"Describe a time you overcame a difficulty.",
		"Why pursue further study instead of starting a career?",
		"What do you know about our school and faculty?",
	},
	models.InterviewProfessional: {
		"Tell me about a research project you took part in.",
		"What was your main responsibility in that project?",
		"What technical problems did you run into, and how did you solve them?",
		"Explain the core contribution of your paper.",
		"How do you see this research field developing?",
		"If you ran an independent research project, what direction would you pick?",
		"Describe an experience of working in a team.",
		"How strong is your programming? Which languages do you know?",
	},
	models.InterviewEnglish: {
		"Please introduce yourself in English.",
		"Why do you want to pursue graduate studies?",
		"What are your research interests?",
		"Tell me about a challenging project you've worked on.",
		"What are your strengths and weaknesses?",
		"Where do you see yourself in five years?",
		"Why did you choose our university/program?",
		"Describe your academic achievements.",
	},
}

var interviewTips = map[models.InterviewType]string{
	models.InterviewGeneral:      "The general interview checks overall quality, communication, and how well you know the program. Research the school beforehand and prepare a self-introduction.",
	models.InterviewProfessional: "The professional interview digs into your research experience, domain knowledge, and research plan. Review core courses and know your papers and projects in detail.",
	models.InterviewEnglish:      "The English interview tests spoken English and listening. Prepare English answers to common questions ahead of time and stay calm.",
}

var feedbackPool = []string{
	"Good answer! Consider adding concrete examples to back up your points.",
	"Fairly complete answer. Summarizing the key points at the end would make it stronger.",
	"Great answer, your reasoning is clear. You could slow down a little.",
	"There are highlights here, but you could explain your thinking in more depth.",
	"Nice try! Prepare a few specific cases in advance to enrich your answers.",
}

// ClosingMessage ends a finished interview.
const ClosingMessage = "**Interview finished!**\n\nThanks for completing this mock interview. Suggestions:\n1. Review your answers and find places to improve\n2. Practice your weak spots deliberately\n3. Run a few more mock rounds to build confidence\n\nGood luck with the real one!"

// TypeLabel returns the display label for an interview type.
func TypeLabel(t models.InterviewType) string {
	switch t {
	case models.InterviewProfessional:
		return "Professional Interview"
	case models.InterviewEnglish:
		return "English Interview"
	default:
		return "General Interview"
	}
}

// Interviewer walks through the fixed question bank for one interview
// type, handing out scripted feedback between questions.
type Interviewer struct {
	typ       models.InterviewType
	questions []string
	index     int
	rng       *rand.Rand
}

// NewInterviewer returns an Interviewer for the given type. A nil rng
// falls back to a time-seeded source.
func NewInterviewer(typ models.InterviewType, rng *rand.Rand) *Interviewer {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Interviewer{
		typ:       typ,
		questions: interviewQuestions[typ],
		rng:       rng,
	}
}

// Opening returns the welcome message carrying the type's tip and the
// first question, and advances past it.
func (iv *Interviewer) Opening() string {
	first := iv.questions[0]
	iv.index = 1
	return fmt.Sprintf("Welcome to the %s mock interview!\n\n%s\n\nLet's begin.\n\n**Question 1:** %s",
		TypeLabel(iv.typ), interviewTips[iv.typ], first)
}

// Next takes the candidate's answer and returns the reply: feedback
// plus the next question, or feedback plus the closing message when
// the bank is exhausted. done reports whether the interview ended.
func (iv *Interviewer) Next(answer string) (reply string, done bool) {
	_ = answer // content never influences the scripted feedback
	feedback := feedbackPool[iv.rng.Intn(len(feedbackPool))]
	if iv.index >= len(iv.questions) {
		return fmt.Sprintf("**Feedback:** %s\n\n%s", feedback, ClosingMessage), true
	}
	q := iv.questions[iv.index]
	iv.index++
	return fmt.Sprintf("**Feedback:** %s\n\n**Question %d:** %s", feedback, iv.index, q), false
}

// QuestionNumber is the 1-based number of the question most recently
// asked, zero before Opening.
func (iv *Interviewer) QuestionNumber() int { return iv.index }

// Total is the size of the question bank.
func (iv *Interviewer) Total() int { return len(iv.questions) }
