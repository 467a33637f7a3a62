package report

import (
	"encoding/xml"
	"fmt"

	"github.com/molekit/molekit/internal/constants"
	"github.com/molekit/molekit/internal/errors"
	"github.com/molekit/molekit/internal/pipeline"
)

// junitSuiteName identifies the testsuite in generated JUnit reports.
const junitSuiteName = "molecule-pipeline"

type junitTestSuite struct {
	XMLName  xml.Name        `xml:"testsuite"`
	Name     string          `xml:"name,attr"`
	Tests    int             `xml:"tests,attr"`
	Failures int             `xml:"failures,attr"`
	Time     string          `xml:"time,attr"`
	Cases    []junitTestCase `xml:"testcase"`
}

type junitTestCase struct {
	Name    string        `xml:"name,attr"`
	Time    string        `xml:"time,attr"`
	Failure *junitFailure `xml:"failure,omitempty"`
	Skipped *struct{}     `xml:"skipped,omitempty"`
}

type junitFailure struct {
	Message string `xml:"message,attr"`
	Text    string `xml:",chardata"`
}

func renderJUnit(run *pipeline.Run) ([]byte, error) {
	suite := junitTestSuite{
		Name:     junitSuiteName,
		Tests:    len(run.Stages),
		Failures: run.Failed,
		Time:     fmt.Sprintf("%.2f", run.TotalDuration),
		Cases:    make([]junitTestCase, 0, len(run.Stages)),
	}

	for _, s := range run.Stages {
		tc := junitTestCase{
			Name: s.Name,
			Time: fmt.Sprintf("%.2f", s.Duration),
		}
		switch s.Status {
		case pipeline.StatusFailed:
			tc.Failure = &junitFailure{
				Message: "Stage failed",
				Text:    truncate(s.Error, constants.ReportOutputLimit),
			}
		case pipeline.StatusSkipped:
			tc.Skipped = &struct{}{}
		case pipeline.StatusPassed, pipeline.StatusPending, pipeline.StatusRunning:
			// Passed cases carry no children.
		}
		suite.Cases = append(suite.Cases, tc)
	}

	body, err := xml.MarshalIndent(suite, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode junit report")
	}
	return append([]byte(xml.Header), append(body, '\n')...), nil
}
