package entities

import (
	"time"

	"github.com/google/uuid"
)

// SlideKind discriminates the slide variants produced by the timeline generator.
type SlideKind string

const (
	SlideKindIntro       SlideKind = "intro"
	SlideKindText        SlideKind = "text"
	SlideKindBullets     SlideKind = "bullets"
	SlideKindDiagram     SlideKind = "diagram"
	SlideKindThreeD      SlideKind = "threeD"
	SlideKindImage       SlideKind = "image"
	SlideKindLottie      SlideKind = "lottie"
	SlideKindQuizDual    SlideKind = "quiz-dual"
	SlideKindQuizSingle  SlideKind = "quiz-single"
	SlideKindKidsContent SlideKind = "kidsContent"
	SlideKindOutro       SlideKind = "outro"
)

// Slide is one timeline entry. The generator fills the kind-specific input
// fields; the narration pipeline fills NarrationURL and the timing fields.
type Slide struct {
	Kind SlideKind `json:"kind" bson:"kind"`

	Title        string   `json:"title,omitempty" bson:"title,omitempty"`
	Subtitle     string   `json:"subtitle,omitempty" bson:"subtitle,omitempty"`
	Body         string   `json:"body,omitempty" bson:"body,omitempty"`
	Bullets      []string `json:"bullets,omitempty" bson:"bullets,omitempty"`
	NodeLabels   []string `json:"nodeLabels,omitempty" bson:"node_labels,omitempty"`
	Caption      string   `json:"caption,omitempty" bson:"caption,omitempty"`
	ImageQuery   string   `json:"imageQuery,omitempty" bson:"image_query,omitempty"`
	Question     string   `json:"question,omitempty" bson:"question,omitempty"`
	Options      []string `json:"options,omitempty" bson:"options,omitempty"`
	CorrectIndex int      `json:"correctIndex,omitempty" bson:"correct_index,omitempty"`
	Story        string   `json:"story,omitempty" bson:"story,omitempty"`

	NarrationURL       string         `json:"narrationUrl,omitempty" bson:"narration_url,omitempty"`
	DurationInSeconds  float64        `json:"durationInSeconds,omitempty" bson:"duration_in_seconds,omitempty"`
	RevealTimeSeconds  *float64       `json:"revealTimeSeconds,omitempty" bson:"reveal_time_seconds,omitempty"`
	QuestionEndSeconds *float64       `json:"questionEndSeconds,omitempty" bson:"question_end_seconds,omitempty"`
	CaptionTokens      []CaptionToken `json:"captionTokens,omitempty" bson:"caption_tokens,omitempty"`
}

// IsQuiz reports whether the slide carries a question with options.
func (s *Slide) IsQuiz() bool {
	return s.Kind == SlideKindQuizDual || s.Kind == SlideKindQuizSingle
}

// CaptionToken is one transcribed word with its audio offsets, stored verbatim
// from the transcription service for word-synced captions.
type CaptionToken struct {
	Token   string `json:"token" bson:"token"`
	StartMs int64  `json:"startMs" bson:"start_ms"`
	EndMs   int64  `json:"endMs" bson:"end_ms"`
}

// Timeline is an ordered collection of slides generated for one prompt. It is
// created per request and discarded after the video is rendered.
type Timeline struct {
	ID        string    `json:"id" bson:"_id"`
	Prompt    string    `json:"prompt" bson:"prompt"`
	Slides    []*Slide  `json:"slides" bson:"slides"`
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}

// NewTimeline creates a timeline for a prompt with the given slides.
func NewTimeline(prompt string, slides []*Slide) *Timeline {
	return &Timeline{
		ID:        uuid.NewString(),
		Prompt:    prompt,
		Slides:    slides,
		CreatedAt: time.Now(),
	}
}
