package godog_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/cucumber/godog"

	"github.com/taimoormohiuddin/jatsverify/pkg/report"
	"github.com/taimoormohiuddin/jatsverify/pkg/validate"
)

func TestFeatures(t *testing.T) {
	suite := godog.TestSuite{
		ScenarioInitializer: initializeScenario,
		Options: &godog.Options{
			Format:        "pretty",
			Paths:         []string{"features"},
			TestingT:      t,
			StopOnFailure: false,
			Strict:        true,
		},
	}

	if suite.Run() != 0 {
		// Failures are reported through the testing.T integration.
	}
}

// scenarioState holds per-scenario state for step definitions.
type scenarioState struct {
	filename string
	content  []byte
	result   *report.Report
}

func initializeScenario(ctx *godog.ScenarioContext) {
	s := &scenarioState{}

	ctx.Before(func(ctx context.Context, _ *godog.Scenario) (context.Context, error) {
		*s = scenarioState{}
		return ctx, nil
	})

	ctx.Step(`^a document named "([^"]+)":$`, s.aDocumentNamed)
	ctx.Step(`^the document is validated$`, s.theDocumentIsValidated)
	ctx.Step(`^the report is successful$`, s.theReportIsSuccessful)
	ctx.Step(`^the report is not successful$`, s.theReportIsNotSuccessful)
	ctx.Step(`^the expected pattern is "([^"]+)"$`, s.theExpectedPatternIs)
	ctx.Step(`^(\d+) tables? and (\d+) figures? are found$`, s.tablesAndFiguresFound)
	ctx.Step(`^the "([^"]+)" category has (\d+) issues?$`, s.categoryHasIssues)
	ctx.Step(`^validation fails with a message containing "([^"]+)"$`, s.failsWithMessage)
}

func (s *scenarioState) aDocumentNamed(name string, doc *godog.DocString) error {
	s.filename = name
	s.content = []byte(doc.Content)
	return nil
}

func (s *scenarioState) theDocumentIsValidated() error {
	if s.content == nil {
		return fmt.Errorf("no document given")
	}
	s.result = validate.Validate(s.content, s.filename)
	return nil
}

func (s *scenarioState) theReportIsSuccessful() error {
	if s.result == nil {
		return fmt.Errorf("document not validated yet")
	}
	if !s.result.Success {
		return fmt.Errorf("expected success, got issues: %+v", s.result.Issues)
	}
	return nil
}

func (s *scenarioState) theReportIsNotSuccessful() error {
	if s.result == nil {
		return fmt.Errorf("document not validated yet")
	}
	if s.result.Success {
		return fmt.Errorf("expected failure, report passed")
	}
	return nil
}

func (s *scenarioState) theExpectedPatternIs(pattern string) error {
	if s.result.ExpectedPattern != pattern {
		return fmt.Errorf("expected pattern %q, got %q", pattern, s.result.ExpectedPattern)
	}
	return nil
}

func (s *scenarioState) tablesAndFiguresFound(tables, figures int) error {
	if s.result.TablesFound != tables || s.result.FiguresFound != figures {
		return fmt.Errorf("found %d tables and %d figures, expected %d and %d",
			s.result.TablesFound, s.result.FiguresFound, tables, figures)
	}
	return nil
}

func (s *scenarioState) categoryHasIssues(name string, count int) error {
	c, ok := report.ParseCategory(name)
	if !ok {
		return fmt.Errorf("unknown category %q", name)
	}
	got := len(s.result.Issues.Get(c))
	if got != count {
		return fmt.Errorf("category %s has %d issues, expected %d: %+v", name, got, count, s.result.Issues.Get(c))
	}
	return nil
}

func (s *scenarioState) failsWithMessage(substr string) error {
	if !s.result.Failed() {
		return fmt.Errorf("expected a degraded report, got a full one")
	}
	if !strings.Contains(s.result.Message, substr) {
		return fmt.Errorf("message %q does not contain %q", s.result.Message, substr)
	}
	return nil
}
