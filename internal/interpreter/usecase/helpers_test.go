package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/mariasoturna/AssistenteVirtual/internal/interpreter"
	"github.com/mariasoturna/AssistenteVirtual/internal/interpreter/usecase"
	"github.com/mariasoturna/AssistenteVirtual/pkg/datemath"
	"github.com/mariasoturna/AssistenteVirtual/pkg/nlptag"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// newTestUseCase builds an interpreter pinned to Sunday 2024-03-10 12:00 in
// São Paulo, so relative dates resolve deterministically.
func newTestUseCase(t *testing.T) (interpreter.UseCase, time.Time) {
	t.Helper()

	pipeline, err := nlptag.NewPipeline()
	if err != nil {
		t.Fatalf("nlptag.NewPipeline() error = %v", err)
	}

	parser, err := datemath.NewParser(datemath.DefaultTimezone)
	if err != nil {
		t.Fatalf("datemath.NewParser() error = %v", err)
	}

	loc, err := time.LoadLocation(datemath.DefaultTimezone)
	if err != nil {
		t.Fatalf("time.LoadLocation() error = %v", err)
	}
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, loc)

	return usecase.New(&mockLogger{}, pipeline, parser, func() time.Time { return now }), now
}
