package repository

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/aliskhannn/snarky-quiz/assets"
	"github.com/aliskhannn/snarky-quiz/internal/domain/entities"
	"github.com/aliskhannn/snarky-quiz/internal/service"
)

var ErrInvalidQuiz = errors.New("invalid quiz")

// QuizRepository holds the quiz content. It is loaded once and never changes.
type QuizRepository struct {
	quiz *entities.Quiz
}

// NewQuizRepository loads the quiz from path, or the built-in quiz when path is empty.
func NewQuizRepository(path string) (*QuizRepository, error) {
	data := assets.QuizJSON
	if path != "" {
		var err error
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read quiz file: %w", err)
		}
	}

	quiz, err := ParseQuiz(data)
	if err != nil {
		return nil, err
	}

	return &QuizRepository{quiz: quiz}, nil
}

// Get returns the loaded quiz.
func (r *QuizRepository) Get() *entities.Quiz {
	return r.quiz
}

type quizDocument struct {
	Title      string             `json:"title"`
	Subtitle   string             `json:"subtitle"`
	Blurb      string             `json:"blurb"`
	Disclaimer string             `json:"disclaimer"`
	Labels     entities.Labels    `json:"labels"`
	Questions  []questionDocument `json:"questions"`
	Tiers      []entities.Tier    `json:"tiers"`
}

type questionDocument struct {
	Prompt            string   `json:"prompt"`
	Options           []string `json:"options"`
	CorrectIndex      int      `json:"correct_index"`
	FeedbackCorrect   string   `json:"feedback_correct"`
	FeedbackIncorrect string   `json:"feedback_incorrect"`
}

// ParseQuiz decodes and validates quiz JSON. A missing tier table falls back to
// service.DefaultTiers.
func ParseQuiz(data []byte) (*entities.Quiz, error) {
	var doc quizDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal quiz JSON: %w", err)
	}

	if len(doc.Questions) == 0 {
		return nil, fmt.Errorf("%w: no questions", ErrInvalidQuiz)
	}

	quiz := &entities.Quiz{
		Title:      doc.Title,
		Subtitle:   doc.Subtitle,
		Blurb:      doc.Blurb,
		Disclaimer: doc.Disclaimer,
		Labels:     withDefaultLabels(doc.Labels),
		Questions:  make([]entities.Question, 0, len(doc.Questions)),
		Tiers:      doc.Tiers,
	}

	for i, qd := range doc.Questions {
		q, err := qd.toQuestion()
		if err != nil {
			return nil, fmt.Errorf("%w: question %d: %w", ErrInvalidQuiz, i+1, err)
		}
		quiz.Questions = append(quiz.Questions, q)
	}

	if len(quiz.Tiers) == 0 {
		quiz.Tiers = service.DefaultTiers
	}
	if err := service.ValidateTiers(quiz.Tiers); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidQuiz, err)
	}

	return quiz, nil
}

func (qd questionDocument) toQuestion() (entities.Question, error) {
	if strings.TrimSpace(qd.Prompt) == "" {
		return entities.Question{}, errors.New("empty prompt")
	}
	if len(qd.Options) != entities.OptionCount {
		return entities.Question{}, fmt.Errorf("expected %d options, got %d", entities.OptionCount, len(qd.Options))
	}
	if qd.CorrectIndex < 0 || qd.CorrectIndex >= entities.OptionCount {
		return entities.Question{}, fmt.Errorf("correct index %d out of range", qd.CorrectIndex)
	}

	q := entities.Question{
		Prompt:            qd.Prompt,
		CorrectIndex:      qd.CorrectIndex,
		FeedbackCorrect:   qd.FeedbackCorrect,
		FeedbackIncorrect: qd.FeedbackIncorrect,
	}
	for i, opt := range qd.Options {
		if strings.TrimSpace(opt) == "" {
			return entities.Question{}, fmt.Errorf("option %d is empty", i)
		}
		q.Options[i] = opt
	}

	return q, nil
}

func withDefaultLabels(l entities.Labels) entities.Labels {
	if l.Start == "" {
		l.Start = "Start"
	}
	if l.Next == "" {
		l.Next = "Next question"
	}
	if l.Results == "" {
		l.Results = "See results"
	}
	if l.RetryPass == "" {
		l.RetryPass = "Play again"
	}
	if l.RetryFail == "" {
		l.RetryFail = "Try again"
	}
	return l
}
