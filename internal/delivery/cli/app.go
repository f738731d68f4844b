package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"

	"github.com/aliskhannn/snarky-quiz/internal/domain/entities"
	"github.com/aliskhannn/snarky-quiz/internal/service"
)

// Run plays the quiz on a terminal until the input ends or the user quits.
func Run(ctx context.Context, quiz *entities.Quiz, in io.Reader, out io.Writer, logger *zap.Logger) error {
	reader := bufio.NewReader(in)
	matcher := service.NewAnswerMatcher()
	c := service.NewController(quiz)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		v := c.View()
		var err error

		switch v.Phase {
		case entities.PhaseNotStarted:
			fmt.Fprint(out, renderIntro(quiz))
			if _, ok := readLine(reader); !ok {
				return nil
			}
			err = c.Start()

		case entities.PhaseAnswering:
			index, ok := getAnswer(reader, out, matcher, v)
			if !ok {
				return nil
			}
			err = c.SelectOption(index)

		case entities.PhaseFeedback:
			fmt.Fprint(out, renderFeedback(v, quiz.Labels))
			if _, ok := readLine(reader); !ok {
				return nil
			}
			err = c.Advance()

		case entities.PhaseComplete:
			fmt.Fprint(out, renderResults(v, quiz))
			line, ok := readLine(reader)
			if !ok || !strings.EqualFold(line, "r") {
				return nil
			}
			c.Restart()
		}

		if err != nil {
			return fmt.Errorf("quiz %s: %w", v.Phase, err)
		}

		logger.Debug("transition",
			zap.Stringer("from", v.Phase),
			zap.Stringer("to", c.View().Phase),
			zap.Int("score", c.View().Score),
		)
	}
}

func getAnswer(reader *bufio.Reader, out io.Writer, matcher *service.AnswerMatcher, v service.View) (int, bool) {
	fmt.Fprint(out, renderQuestion(v))

	for {
		line, ok := readLine(reader)
		if !ok {
			return -1, false
		}

		if index, ok := matcher.Match(*v.Question, line); ok {
			return index, true
		}

		fmt.Fprintf(out, "Invalid input. Please enter a letter A-%s or the answer itself: ", optionLetter(entities.OptionCount-1))
	}
}

// readLine returns the next trimmed line. ok is false once the input is exhausted.
func readLine(reader *bufio.Reader) (string, bool) {
	line, err := reader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), true
		}
		return "", false
	}
	return strings.TrimSpace(line), true
}
