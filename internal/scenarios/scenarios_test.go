package scenarios

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAll_Pass(t *testing.T) {
	for _, s := range All() {
		assert.NoError(t, s.Check(), s.Name)
	}
}

func TestRun_ReportsFailures(t *testing.T) {
	list := []Scenario{
		{Name: "ok", Check: func() error { return nil }},
		{Name: "broken", Check: func() error { return errors.New("got 1, want 2") }},
	}
	var buf bytes.Buffer
	failed := Run(&buf, list)

	assert.Equal(t, 1, failed)
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{
		"PASS  ok",
		"FAIL  broken: got 1, want 2",
		"1/2 scenarios passed",
	}, lines)
}
