package narration

import (
	"testing"

	"github.com/nayottama/wicara/domain/entities"
)

func TestSegmentQuizLiteral(t *testing.T) {
	slide := &entities.Slide{
		Kind:         entities.SlideKindQuizDual,
		Question:     "Capital of France?",
		Options:      []string{"London", "Paris", "Berlin", "Madrid"},
		CorrectIndex: 1,
	}

	parts := SegmentQuiz(slide)
	if len(parts) != 2 {
		t.Fatalf("Expected 2 parts, got %d", len(parts))
	}

	wantQuestion := "Capital of France?. Is it: A. London.  B. Paris.  C. Berlin.  or D. Madrid.?"
	if parts[0].Text != wantQuestion {
		t.Errorf("Question text mismatch:\nwant %q\ngot  %q", wantQuestion, parts[0].Text)
	}
	if parts[0].PauseAfterSeconds != 5 {
		t.Errorf("Expected 5s thinking pause, got %v", parts[0].PauseAfterSeconds)
	}

	if parts[1].Text != "Its B. Paris." {
		t.Errorf("Answer text mismatch: got %q", parts[1].Text)
	}
	if parts[1].PauseAfterSeconds != 0 {
		t.Errorf("Expected no pause after answer, got %v", parts[1].PauseAfterSeconds)
	}
}

func TestSegmentQuizPauseClamp(t *testing.T) {
	cases := []struct {
		optionCount int
		wantPause   float64
	}{
		{1, 2}, // clamps up
		{2, 3},
		{3, 4},
		{4, 5},
		{6, 5}, // clamps down
	}

	for _, tc := range cases {
		options := make([]string, tc.optionCount)
		for i := range options {
			options[i] = "option"
		}
		slide := &entities.Slide{
			Kind:     entities.SlideKindQuizSingle,
			Question: "Q?",
			Options:  options,
		}

		parts := SegmentQuiz(slide)
		if len(parts) != 2 {
			t.Fatalf("Options %d: expected 2 parts, got %d", tc.optionCount, len(parts))
		}
		if parts[0].PauseAfterSeconds != tc.wantPause {
			t.Errorf("Options %d: expected pause %v, got %v",
				tc.optionCount, tc.wantPause, parts[0].PauseAfterSeconds)
		}
	}
}

func TestSegmentQuizAnswerIsLast(t *testing.T) {
	slide := &entities.Slide{
		Kind:         entities.SlideKindQuizDual,
		Question:     "Two plus two?",
		Options:      []string{"Three", "Four"},
		CorrectIndex: 1,
	}

	parts := SegmentQuiz(slide)
	last := parts[len(parts)-1]
	if last.Text != "Its B. Four." {
		t.Errorf("Expected answer part last, got %q", last.Text)
	}
}

func TestSegmentQuizOutOfRangeCorrectIndex(t *testing.T) {
	slide := &entities.Slide{
		Kind:         entities.SlideKindQuizDual,
		Question:     "Q?",
		Options:      []string{"Yes", "No"},
		CorrectIndex: 9,
	}

	parts := SegmentQuiz(slide)
	if parts[1].Text != "Its A. Yes." {
		t.Errorf("Expected fallback to first option, got %q", parts[1].Text)
	}
}

func TestTextForSlide(t *testing.T) {
	cases := []struct {
		name  string
		slide entities.Slide
		want  string
	}{
		{
			name:  "intro",
			slide: entities.Slide{Kind: entities.SlideKindIntro, Title: "Oceans", Subtitle: "A journey below"},
			want:  "Oceans. A journey below",
		},
		{
			name:  "bullets",
			slide: entities.Slide{Kind: entities.SlideKindBullets, Title: "Facts", Bullets: []string{"One", "Two"}},
			want:  "Facts. One. Two",
		},
		{
			name:  "diagram",
			slide: entities.Slide{Kind: entities.SlideKindDiagram, Title: "Cycle", NodeLabels: []string{"Rain", "River", "Sea"}},
			want:  "Cycle. Rain, River, Sea",
		},
		{
			name:  "three d without title narrates nothing",
			slide: entities.Slide{Kind: entities.SlideKindThreeD},
			want:  "",
		},
		{
			name:  "kids content",
			slide: entities.Slide{Kind: entities.SlideKindKidsContent, Story: "Once upon a time."},
			want:  "Once upon a time.",
		},
		{
			name:  "unknown kind",
			slide: entities.Slide{Kind: "hologram", Title: "Ignored"},
			want:  "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := TextForSlide(&tc.slide); got != tc.want {
				t.Errorf("Expected %q, got %q", tc.want, got)
			}
		})
	}
}

func TestPartsForSlide(t *testing.T) {
	quiz := &entities.Slide{
		Kind:     entities.SlideKindQuizDual,
		Question: "Q?",
		Options:  []string{"A", "B"},
	}
	if parts := PartsForSlide(quiz); len(parts) != 2 {
		t.Errorf("Expected 2 quiz parts, got %d", len(parts))
	}

	text := &entities.Slide{Kind: entities.SlideKindText, Title: "Hello"}
	parts := PartsForSlide(text)
	if len(parts) != 1 || parts[0].PauseAfterSeconds != 0 {
		t.Errorf("Expected single part with no pause, got %+v", parts)
	}

	empty := &entities.Slide{Kind: entities.SlideKindThreeD}
	if parts := PartsForSlide(empty); parts != nil {
		t.Errorf("Expected nil parts for unnarratable slide, got %+v", parts)
	}
}

func TestSanitizeForSpeech(t *testing.T) {
	got := SanitizeForSpeech("## The **big** _blue_ `sea`")
	if got != "The big  blue  sea" {
		t.Errorf("Unexpected sanitized text: %q", got)
	}
}

func TestSanitizeForLocalModel(t *testing.T) {
	got := SanitizeForLocalModel("Hello 🌊 **world**  \n\t done ✅")
	if got != "Hello world done" {
		t.Errorf("Unexpected sanitized text: %q", got)
	}
}
