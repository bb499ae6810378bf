package error_notificator

import (
	"bytes"
	"context"
	"errors"
	"testing"
)

func TestNotify_SingleLine(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		details string
		want    string
	}{
		{
			name: "plain",
			err:  errors.New("audio file \"x.wav\" not found"),
			want: "Error: audio file \"x.wav\" not found\n",
		},
		{
			name:    "with details",
			err:     errors.New("status code: 401"),
			details: "invalid API key",
			want:    "Error: status code: 401 (invalid API key)\n",
		},
		{
			name: "multi-line error is flattened",
			err:  errors.New("bad request\n{\"error\": \"boom\"}\n"),
			want: "Error: bad request {\"error\": \"boom\"}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			svc := NewService(NewInfra(&buf, nil, "test"))
			if err := svc.Notify(context.Background(), tt.err, tt.details); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if buf.String() != tt.want {
				t.Errorf("expected %q, got %q", tt.want, buf.String())
			}
		})
	}
}
