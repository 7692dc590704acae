// Package narration turns slides into speakable scripts: plain narration text
// for narrative slides and multi-part question/answer scripts for quizzes.
package narration

import (
	"fmt"
	"strings"

	"github.com/nayottama/wicara/domain/entities"
)

const (
	// Thinking-time bounds for the pause between a quiz question and its
	// answer. The pause scales with the option count but stays inside these.
	minQuizPauseSeconds = 2
	maxQuizPauseSeconds = 5
)

// TextForSlide extracts the narration script for a narrative slide. Quiz
// slides are scripted by SegmentQuiz instead. An empty result means the slide
// has nothing to narrate and is skipped; unknown kinds also return "" so that
// future slide kinds pass through without erroring.
func TextForSlide(s *entities.Slide) string {
	switch s.Kind {
	case entities.SlideKindIntro, entities.SlideKindOutro:
		return joinNonEmpty(". ", s.Title, s.Subtitle)
	case entities.SlideKindText:
		return joinNonEmpty(". ", s.Title, s.Body)
	case entities.SlideKindBullets:
		return joinNonEmpty(". ", s.Title, strings.Join(s.Bullets, ". "))
	case entities.SlideKindDiagram:
		return joinNonEmpty(". ", s.Title, strings.Join(s.NodeLabels, ", "))
	case entities.SlideKindThreeD:
		return s.Title
	case entities.SlideKindImage, entities.SlideKindLottie:
		return joinNonEmpty(". ", s.Title, s.Caption)
	case entities.SlideKindKidsContent:
		return s.Story
	default:
		return ""
	}
}

// SegmentQuiz builds the two-part script for a quiz slide: the question with
// lettered options, then the answer. The answer part is always last and its
// trailing pause is zero.
func SegmentQuiz(s *entities.Slide) []entities.NarrationPart {
	if len(s.Options) == 0 || strings.TrimSpace(s.Question) == "" {
		return nil
	}

	prefixed := make([]string, len(s.Options))
	for i, opt := range s.Options {
		letter := 'A' + rune(i)
		if i == len(s.Options)-1 {
			prefixed[i] = fmt.Sprintf("or %c. %s.", letter, opt)
		} else {
			prefixed[i] = fmt.Sprintf("%c. %s.", letter, opt)
		}
	}
	question := fmt.Sprintf("%s. Is it: %s?", s.Question, strings.Join(prefixed, "  "))

	correct := s.CorrectIndex
	if correct < 0 || correct >= len(s.Options) {
		correct = 0
	}
	answer := fmt.Sprintf("Its %c. %s.", 'A'+rune(correct), s.Options[correct])

	return []entities.NarrationPart{
		{Text: question, PauseAfterSeconds: float64(thinkingPause(len(s.Options)))},
		{Text: answer, PauseAfterSeconds: 0},
	}
}

// PartsForSlide returns the full ordered script for any slide kind.
func PartsForSlide(s *entities.Slide) []entities.NarrationPart {
	if s.IsQuiz() {
		return SegmentQuiz(s)
	}
	text := TextForSlide(s)
	if strings.TrimSpace(text) == "" {
		return nil
	}
	return []entities.NarrationPart{{Text: text, PauseAfterSeconds: 0}}
}

func thinkingPause(optionCount int) int {
	pause := optionCount + 1
	if pause < minQuizPauseSeconds {
		return minQuizPauseSeconds
	}
	if pause > maxQuizPauseSeconds {
		return maxQuizPauseSeconds
	}
	return pause
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
