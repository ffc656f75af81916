package main

import (
	"context"
	"landrecords/cmd/landrecords/commands"
	"landrecords/lib/serviceutil"
	"landrecords/lib/telemetry"
	"log/slog"
)

func main() {
	ctx, cancel := serviceutil.SignalContext(context.Background())
	defer cancel()

	tel, err := telemetry.SetupFromEnv(ctx, "landrecords")
	if err != nil {
		slog.Warn("failed to setup telemetry, continuing without it", "err", err)
	}

	err = commands.ExecuteContext(ctx)

	shutdownErr := tel.Shutdown(context.Background())
	if shutdownErr != nil {
		slog.Warn("failed to flush telemetry", "err", shutdownErr)
	}
	if err != nil {
		serviceutil.Fatal("landrecords failed", err)
	}
}
