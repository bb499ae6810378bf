package error_notificator

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/Vovarama1992/go-utils/logger"
)

type Infra struct {
	out     io.Writer
	log     *logger.ZapLogger
	service string
}

func NewInfra(out io.Writer, log *logger.ZapLogger, service string) *Infra {
	return &Infra{out: out, log: log, service: service}
}

// Notify writes "Error: <err>[ (<details>)]" on one line.
func (i *Infra) Notify(ctx context.Context, err error, details string) error {
	if i.log != nil {
		i.log.Log(logger.LogEntry{
			Level:   "error",
			Message: details,
			Service: i.service,
			Error:   err,
		})
	}

	text := "Error: " + oneLine(err.Error())
	if details != "" {
		text += " (" + oneLine(details) + ")"
	}

	_, writeErr := fmt.Fprintln(i.out, text)
	return writeErr
}

// API error bodies may span lines
func oneLine(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
