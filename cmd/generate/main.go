package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/Vovarama1992/groq_cli/internal/delivery"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	app := delivery.NewApp("generate", delivery.StdStreams())
	code := app.Execute(ctx, delivery.NewGenerateCmd(app), os.Args[1:])

	stop()
	os.Exit(code)
}
