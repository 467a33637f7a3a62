package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/molekit/molekit/internal/cli"
)

func TestInitLoggerWithWriter_Levels(t *testing.T) {
	tests := []struct {
		name      string
		verbose   bool
		quiet     bool
		wantDebug bool
		wantInfo  bool
	}{
		{name: "default is info", wantInfo: true},
		{name: "verbose enables debug", verbose: true, wantDebug: true, wantInfo: true},
		{name: "quiet suppresses info", quiet: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := cli.InitLoggerWithWriter(tc.verbose, tc.quiet, &buf)

			logger.Debug().Msg("debug line")
			logger.Info().Msg("info line")
			logger.Warn().Msg("warn line")

			out := buf.String()
			assert.Equal(t, tc.wantDebug, bytes.Contains(buf.Bytes(), []byte("debug line")), out)
			assert.Equal(t, tc.wantInfo, bytes.Contains(buf.Bytes(), []byte("info line")), out)
			assert.Contains(t, out, "warn line")
		})
	}
}
