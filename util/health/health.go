// Package health runs the gateway's health checks and renders their outcome as a
// JSON report for the /health endpoints.
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/blockparty-sh/cpp-slp-graph-search/errors"
	"golang.org/x/sync/errgroup"
)

const (
	// CheckGraphSearch reports the state of the gRPC connection to the gs++ backend.
	CheckGraphSearch = "GraphSearchBackend"

	// CheckRESTListener calls /alive on the gateway's own HTTP listener.
	CheckRESTListener = "RESTListener"
)

// CheckFunc returns an HTTP status, a message and an optional error. A message that
// is itself a Report is nested under the check instead of being shown verbatim.
type CheckFunc func(ctx context.Context, checkLiveness bool) (int, string, error)

type Check struct {
	Name  string
	Check CheckFunc
}

// Result is the outcome of one Check.
type Result struct {
	Name         string   `json:"name"`
	Status       int      `json:"status"`
	Message      string   `json:"message,omitempty"`
	Error        string   `json:"error,omitempty"`
	Dependencies []Result `json:"dependencies,omitempty"`
}

// Report is the outcome of a set of checks. Status is 200 when every check passed
// and 503 otherwise.
type Report struct {
	Status int      `json:"status"`
	Checks []Result `json:"checks"`
}

func (r Report) Healthy() bool {
	return r.Status == http.StatusOK
}

// Run executes checks concurrently and waits for all of them. Results are in the
// order of checks.
func Run(ctx context.Context, checkLiveness bool, checks []Check) Report {
	results := make([]Result, len(checks))

	g, gCtx := errgroup.WithContext(ctx)

	for i, check := range checks {
		g.Go(func() error {
			results[i] = run(gCtx, checkLiveness, check)
			return nil
		})
	}

	_ = g.Wait()

	report := Report{Status: http.StatusOK, Checks: results}

	for _, result := range results {
		if result.Status != http.StatusOK {
			report.Status = http.StatusServiceUnavailable
			break
		}
	}

	return report
}

func run(ctx context.Context, checkLiveness bool, check Check) Result {
	status, message, err := check.Check(ctx, checkLiveness)

	result := Result{Name: check.Name, Status: status}

	if err != nil {
		result.Error = err.Error()

		if status == http.StatusOK {
			result.Status = http.StatusServiceUnavailable
		}
	}

	var nested Report
	if strings.HasPrefix(message, "{") && json.Unmarshal([]byte(message), &nested) == nil && nested.Checks != nil {
		result.Dependencies = nested.Checks
	} else {
		result.Message = message
	}

	return result
}

// CheckAll runs checks and returns the overall status together with the report as
// JSON, the shape every Service.Health returns.
func CheckAll(ctx context.Context, checkLiveness bool, checks []Check) (int, string, error) {
	report := Run(ctx, checkLiveness, checks)

	body, err := json.Marshal(report)
	if err != nil {
		return http.StatusInternalServerError, "", errors.NewProcessingError("[health] could not encode report", err)
	}

	return report.Status, string(body), nil
}
