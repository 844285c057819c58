package usecase

import (
	"time"

	"github.com/mariasoturna/AssistenteVirtual/pkg/datemath"
	pkgLog "github.com/mariasoturna/AssistenteVirtual/pkg/log"
	"github.com/mariasoturna/AssistenteVirtual/pkg/nlptag"
)

type implUseCase struct {
	l        pkgLog.Logger
	pipeline *nlptag.Pipeline
	dateMath *datemath.Parser
	now      func() time.Time
}

// New creates the interpreter UseCase. The clock is injected so callers (and
// tests) can pin the reference instant all relative dates resolve against.
func New(l pkgLog.Logger, pipeline *nlptag.Pipeline, dateMath *datemath.Parser, now func() time.Time) *implUseCase {
	if now == nil {
		now = time.Now
	}
	return &implUseCase{
		l:        l,
		pipeline: pipeline,
		dateMath: dateMath,
		now:      now,
	}
}
