package quiz

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cucumber/godog"
)

// TestFeatures runs the scoring and reply resolution scenarios.
func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		Name:                "quiz",
		ScenarioInitializer: InitializeQuizScenario,
		Options: &godog.Options{
			Format:    "pretty",
			Paths:     []string{filepath.Join("testdata", "features")},
			Strict:    true,
			TestingT:  t,
			Randomize: 0,
		},
	}
	if suite.Run() != 0 {
		t.Fatalf("non-zero godog status")
	}
}

func InitializeQuizScenario(ctx *godog.ScenarioContext) {
	state := &quizScenarioState{}
	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		state.reset()
		return ctx, nil
	})

	ctx.Step(`^a saved word with score (-?\d+)$`, state.givenScore)
	ctx.Step(`^the learner answers correctly$`, state.whenCorrect)
	ctx.Step(`^the learner answers incorrectly$`, state.whenIncorrect)
	ctx.Step(`^the score is (-?\d+)$`, state.thenScore)
	ctx.Step(`^the answers "([^"]*)"$`, state.givenAnswers)
	ctx.Step(`^the learner replies "([^"]*)"$`, state.whenReply)
	ctx.Step(`^the answer "([^"]*)" is chosen$`, state.thenChosen)
	ctx.Step(`^the learner is asked again$`, state.thenRetry)
	ctx.Step(`^the question is skipped$`, state.thenSkipped)
}

type quizScenarioState struct {
	score      int
	answers    []Answer
	resolution Resolution
}

func (s *quizScenarioState) reset() {
	*s = quizScenarioState{}
}

func (s *quizScenarioState) givenScore(score int) error {
	s.score = score
	return nil
}

func (s *quizScenarioState) whenCorrect() error {
	s.score = CorrectScore(s.score)
	return nil
}

func (s *quizScenarioState) whenIncorrect() error {
	s.score = IncorrectScore(s.score)
	return nil
}

func (s *quizScenarioState) thenScore(want int) error {
	if s.score != want {
		return fmt.Errorf("expected score %d, got %d", want, s.score)
	}
	return nil
}

func (s *quizScenarioState) givenAnswers(list string) error {
	s.answers = nil
	for i, text := range strings.Split(list, ",") {
		s.answers = append(s.answers, Answer{
			Text:    strings.TrimSpace(text),
			Correct: i == 0,
		})
	}
	return nil
}

func (s *quizScenarioState) whenReply(reply string) error {
	s.resolution = Resolve(reply, s.answers)
	return nil
}

func (s *quizScenarioState) thenChosen(text string) error {
	if s.resolution.Outcome != OutcomeResolved {
		return fmt.Errorf("expected %q to be chosen, got %s", text, s.resolution.Outcome)
	}
	if s.resolution.Answer.Text != text {
		return fmt.Errorf("expected %q to be chosen, got %q", text, s.resolution.Answer.Text)
	}
	return nil
}

func (s *quizScenarioState) thenRetry() error {
	if s.resolution.Outcome != OutcomeRetry {
		return fmt.Errorf("expected a retry, got %s", s.resolution.Outcome)
	}
	return nil
}

func (s *quizScenarioState) thenSkipped() error {
	if s.resolution.Outcome != OutcomeSkip {
		return fmt.Errorf("expected a skip, got %s", s.resolution.Outcome)
	}
	return nil
}
