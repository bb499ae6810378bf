package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/Vovarama1992/groq_cli/internal/delivery"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	app := delivery.NewApp("transcribe", delivery.StdStreams())
	code := app.Execute(ctx, delivery.NewTranscribeCmd(app), os.Args[1:])

	stop()
	os.Exit(code)
}
