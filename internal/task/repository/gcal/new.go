package gcal

import (
	"github.com/mariasoturna/AssistenteVirtual/internal/task/repository"
	"github.com/mariasoturna/AssistenteVirtual/pkg/gcalendar"
	pkgLog "github.com/mariasoturna/AssistenteVirtual/pkg/log"
)

type implRepository struct {
	l          pkgLog.Logger
	client     *gcalendar.Client
	calendarID string
	timezone   string
}

var _ repository.CalendarRepository = &implRepository{}

// New creates a CalendarRepository backed by Google Calendar.
func New(l pkgLog.Logger, client *gcalendar.Client, calendarID, timezone string) *implRepository {
	return &implRepository{
		l:          l,
		client:     client,
		calendarID: calendarID,
		timezone:   timezone,
	}
}
