package http

import (
	"github.com/mariasoturna/AssistenteVirtual/internal/interpreter"
	"github.com/mariasoturna/AssistenteVirtual/internal/task"
	pkgLog "github.com/mariasoturna/AssistenteVirtual/pkg/log"
)

type handler struct {
	l      pkgLog.Logger
	uc     task.UseCase
	interp interpreter.UseCase
}

// New creates a new HTTP handler for the assistant domain.
func New(l pkgLog.Logger, uc task.UseCase, interp interpreter.UseCase) *handler {
	return &handler{
		l:      l,
		uc:     uc,
		interp: interp,
	}
}
