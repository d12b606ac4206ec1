package logging

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]struct {
		level zerolog.Level
		ok    bool
	}{
		"":        {zerolog.InfoLevel, false},
		"DEBUG":   {zerolog.DebugLevel, true},
		" warn ":  {zerolog.WarnLevel, true},
		"warning": {zerolog.WarnLevel, true},
		"off":     {zerolog.Disabled, true},
		"chatty":  {zerolog.InfoLevel, false},
	}
	for raw, want := range cases {
		lvl, ok := ParseLevel(raw)
		require.Equal(t, want.ok, ok, raw)
		require.Equal(t, want.level, lvl, raw)
	}
}

func TestNewTagsComponent(t *testing.T) {
	t.Setenv(EnvLogNoColor, "true")
	var buf bytes.Buffer
	log := Component(New(&buf, "host"), "tabbar")
	log.Warn().Str("navigator", "tabs-1").Msg("hello")
	require.Contains(t, buf.String(), "hello")
	require.Contains(t, buf.String(), "component=tabbar")
	require.Contains(t, buf.String(), "navigator=tabs-1")
}
