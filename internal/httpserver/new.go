package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/mariasoturna/AssistenteVirtual/internal/interpreter"
	"github.com/mariasoturna/AssistenteVirtual/internal/middleware"
	"github.com/mariasoturna/AssistenteVirtual/internal/task"
	pkgLog "github.com/mariasoturna/AssistenteVirtual/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           pkgLog.Logger
	port        int
	mode        string
	environment string

	mw middleware.Middleware

	taskUC   task.UseCase
	interpUC interpreter.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      pkgLog.Logger
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware

	TaskUseCase        task.UseCase
	InterpreterUseCase interpreter.UseCase
}

// New creates a new HTTPServer instance.
func New(cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           cfg.Logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		mw:          cfg.Middleware,
		taskUC:      cfg.TaskUseCase,
		interpUC:    cfg.InterpreterUseCase,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskUC == nil {
		return errors.New("task usecase is required")
	}
	if srv.interpUC == nil {
		return errors.New("interpreter usecase is required")
	}
	return nil
}
