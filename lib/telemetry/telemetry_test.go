package telemetry

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSetupDisabled(t *testing.T) {
	tel, err := Setup(context.Background(), "test:telemetry", Config{})
	require.Nil(t, err)
	require.False(t, tel.Enabled())
	require.Nil(t, tel.Shutdown(context.Background()))
}

func TestInitSlog(t *testing.T) {
	previous := slog.Default()
	defer slog.SetDefault(previous)

	var out bytes.Buffer
	InitSlog(&out, false)
	slog.Debug("hidden")
	slog.Info("parcel", "serial", "123450001")
	require.NotContains(t, out.String(), "hidden")
	require.Contains(t, out.String(), "123450001")

	out.Reset()
	InitSlog(&out, true)
	slog.Debug("shown")
	require.Contains(t, out.String(), "shown")
}
