package reporting

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLog_Report(t *testing.T) {
	cases := []struct {
		name       string
		production bool
		wantLevel  zapcore.Level
	}{
		{name: "production", production: true, wantLevel: zapcore.ErrorLevel},
		{name: "development", production: false, wantLevel: zapcore.DebugLevel},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			core, logs := observer.New(zapcore.DebugLevel)
			r := NewLog(zap.New(core), tc.production)

			r.Report(errors.New("boom"))
			r.Report(nil)

			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, tc.wantLevel, entry.Level)
			assert.Equal(t, "errors", entry.LoggerName)
			assert.Equal(t, "boom", entry.ContextMap()["error"])
		})
	}
}

func TestFunc(t *testing.T) {
	var got error
	Func(func(err error) { got = err }).Report(errors.New("x"))
	assert.EqualError(t, got, "x")
}
