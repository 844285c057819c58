package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/mariasoturna/AssistenteVirtual/internal/interpreter"
	"github.com/mariasoturna/AssistenteVirtual/internal/model"
	"github.com/mariasoturna/AssistenteVirtual/internal/scheduler"
	"github.com/mariasoturna/AssistenteVirtual/internal/task"
	"github.com/mariasoturna/AssistenteVirtual/internal/task/repository"
	"github.com/mariasoturna/AssistenteVirtual/pkg/datemath"
	pkgLog "github.com/mariasoturna/AssistenteVirtual/pkg/log"
)

const (
	cacheSize       = 128
	defaultCacheTTL = 24 * time.Hour
)

type implUseCase struct {
	l               pkgLog.Logger
	interp          interpreter.UseCase
	repo            repository.CalendarRepository
	dateMath        *datemath.Parser
	cache           *expirable.LRU[string, []model.Event]
	workdayStart    int
	workdayEnd      int
	meetingDuration time.Duration
	now             func() time.Time
}

// New creates a new task UseCase instance.
func New(
	l pkgLog.Logger,
	interp interpreter.UseCase,
	repo repository.CalendarRepository,
	dateMath *datemath.Parser,
	settings task.Settings,
) *implUseCase {
	if settings.WorkdayStartHour <= 0 {
		settings.WorkdayStartHour = scheduler.WorkdayStartHour
	}
	if settings.WorkdayEndHour <= 0 {
		settings.WorkdayEndHour = scheduler.WorkdayEndHour
	}
	if settings.MeetingDuration <= 0 {
		settings.MeetingDuration = datemath.DefaultDuration
	}
	if settings.CacheTTL <= 0 {
		settings.CacheTTL = defaultCacheTTL
	}
	if settings.Now == nil {
		settings.Now = time.Now
	}

	return &implUseCase{
		l:               l,
		interp:          interp,
		repo:            repo,
		dateMath:        dateMath,
		cache:           expirable.NewLRU[string, []model.Event](cacheSize, nil, settings.CacheTTL),
		workdayStart:    settings.WorkdayStartHour,
		workdayEnd:      settings.WorkdayEndHour,
		meetingDuration: settings.MeetingDuration,
		now:             settings.Now,
	}
}
