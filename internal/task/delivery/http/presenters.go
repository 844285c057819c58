package http

import (
	"time"

	"github.com/mariasoturna/AssistenteVirtual/internal/model"
	"github.com/mariasoturna/AssistenteVirtual/internal/scheduler"
	"github.com/mariasoturna/AssistenteVirtual/internal/task"
	"github.com/mariasoturna/AssistenteVirtual/pkg/response"
)

// --- Request DTOs ---

type commandReq struct {
	Sentence string `json:"sentence" binding:"required,min=1,max=500"`
	Confirm  bool   `json:"confirm"`
}

func (r commandReq) toInput() task.CommandInput {
	return task.CommandInput{
		Sentence: r.Sentence,
		Confirm:  r.Confirm,
	}
}

type interpretReq struct {
	Sentence string `json:"sentence" binding:"required,min=1,max=500"`
}

// ---

type listReq struct {
	From     string `form:"from"`     // DD/MM/YYYY
	To       string `form:"to"`       // DD/MM/YYYY
	Category string `form:"category" binding:"omitempty,oneof=trabalho pessoal estudo geral"`
	Priority string `form:"priority" binding:"omitempty,oneof=alta média baixa normal"`
	Query    string `form:"query"`
	Limit    int    `form:"limit"`
}

func (r listReq) toInput() (task.ListInput, error) {
	input := task.ListInput{
		Category: model.Category(r.Category),
		Priority: model.Priority(r.Priority),
		Query:    r.Query,
		Limit:    r.Limit,
	}
	if r.From != "" {
		from, err := time.Parse(response.DateFormat, r.From)
		if err != nil {
			return input, errInvalidDate
		}
		input.From = from
	}
	if r.To != "" {
		to, err := time.Parse(response.DateFormat, r.To)
		if err != nil {
			return input, errInvalidDate
		}
		input.To = to
	}
	return input, nil
}

// ---

type updateReq struct {
	ID       string  `json:"-"` // populated from URI param
	Title    *string `json:"title"    binding:"omitempty,min=1,max=255"`
	Details  *string `json:"details"  binding:"omitempty,max=1000"`
	Location *string `json:"location" binding:"omitempty,max=255"`
	Category *string `json:"category" binding:"omitempty,oneof=trabalho pessoal estudo geral"`
	Priority *string `json:"priority" binding:"omitempty,oneof=alta média baixa normal"`
	Confirm  bool    `json:"confirm"`
}

func (r updateReq) toInput() task.UpdateInput {
	input := task.UpdateInput{
		ID:       r.ID,
		Title:    r.Title,
		Details:  r.Details,
		Location: r.Location,
		Confirm:  r.Confirm,
	}
	if r.Category != nil {
		category := model.Category(*r.Category)
		input.Category = &category
	}
	if r.Priority != nil {
		priority := model.Priority(*r.Priority)
		input.Priority = &priority
	}
	return input
}

// ---

type meetingReq struct {
	Title           string   `json:"title" binding:"required,min=1,max=255"`
	Date            string   `json:"date"`
	Time            string   `json:"time"`
	DurationMinutes int      `json:"duration_minutes" binding:"omitempty,min=5,max=480"`
	Location        string   `json:"location" binding:"omitempty,max=255"`
	People          []string `json:"people"`
	Confirm         bool     `json:"confirm"`
}

func (r meetingReq) toInput() task.MeetingInput {
	return task.MeetingInput{
		Title:           r.Title,
		Date:            r.Date,
		Time:            r.Time,
		DurationMinutes: r.DurationMinutes,
		Location:        r.Location,
		People:          r.People,
		Confirm:         r.Confirm,
	}
}

// --- Response DTOs ---

type intentResp struct {
	Action    string   `json:"action"`
	Deadline  string   `json:"deadline"`
	Time      string   `json:"time,omitempty"`
	Location  string   `json:"location,omitempty"`
	People    []string `json:"people,omitempty"`
	Category  string   `json:"category"`
	Priority  string   `json:"priority"`
	Sentiment string   `json:"sentiment"`
	Details   string   `json:"details"`
	RawText   string   `json:"raw_text"`
}

func newIntentResp(intent model.TaskIntent) intentResp {
	return intentResp{
		Action:    string(intent.Action),
		Deadline:  intent.Deadline.String(),
		Time:      intent.Time,
		Location:  intent.Location,
		People:    intent.People,
		Category:  string(intent.Category),
		Priority:  string(intent.Priority),
		Sentiment: string(intent.Sentiment),
		Details:   intent.Details,
		RawText:   intent.RawText,
	}
}

type taskResp struct {
	ID       string            `json:"id,omitempty"`
	Title    string            `json:"title"`
	Category string            `json:"category"`
	Priority string            `json:"priority"`
	Location string            `json:"location,omitempty"`
	Start    response.DateTime `json:"start"`
	End      response.DateTime `json:"end"`
}

func newTaskResp(e model.Event) taskResp {
	return taskResp{
		ID:       e.ID,
		Title:    e.Title(),
		Category: string(e.Category()),
		Priority: string(e.Priority()),
		Location: e.Location,
		Start:    response.DateTime(e.Start),
		End:      response.DateTime(e.End),
	}
}

type slotResp struct {
	Start response.DateTime `json:"start"`
	End   response.DateTime `json:"end"`
}

func newSlotResps(slots []scheduler.FreeSlot) []slotResp {
	out := make([]slotResp, len(slots))
	for i, s := range slots {
		out[i] = slotResp{Start: response.DateTime(s.Start), End: response.DateTime(s.End)}
	}
	return out
}

type conflictResp struct {
	Label string            `json:"label"`
	Start response.DateTime `json:"start"`
	End   response.DateTime `json:"end"`
}

type commandResp struct {
	Status      string        `json:"status"`
	Message     string        `json:"message"`
	Intent      intentResp    `json:"intent"`
	Task        *taskResp     `json:"task,omitempty"`
	Conflict    *conflictResp `json:"conflict,omitempty"`
	Suggestions []slotResp    `json:"suggestions,omitempty"`
}

func (h *handler) newCommandResp(out task.CommandOutput) commandResp {
	resp := commandResp{
		Status:  string(out.Status),
		Message: out.Message,
		Intent:  newIntentResp(out.Intent),
	}
	if out.Task != nil {
		taskBody := newTaskResp(*out.Task)
		resp.Task = &taskBody
	}
	if out.Conflict != nil {
		resp.Conflict = &conflictResp{
			Label: out.Conflict.Label,
			Start: response.DateTime(out.Conflict.Start),
			End:   response.DateTime(out.Conflict.End),
		}
	}
	if len(out.Suggestions) > 0 {
		resp.Suggestions = newSlotResps(out.Suggestions)
	}
	return resp
}

type listResp struct {
	Tasks []taskResp `json:"tasks"`
	Count int        `json:"count"`
}

func (h *handler) newListResp(out task.ListOutput) listResp {
	tasks := make([]taskResp, len(out.Tasks))
	for i, e := range out.Tasks {
		tasks[i] = newTaskResp(e)
	}
	return listResp{Tasks: tasks, Count: out.Count}
}

type updateResp struct {
	Status string   `json:"status"`
	Task   taskResp `json:"task"`
}

func (h *handler) newUpdateResp(out task.UpdateOutput) updateResp {
	return updateResp{Status: string(out.Status), Task: newTaskResp(out.Task)}
}

type deleteResp struct {
	Status string   `json:"status"`
	Task   taskResp `json:"task"`
}

func (h *handler) newDeleteResp(out task.DeleteOutput) deleteResp {
	return deleteResp{Status: string(out.Status), Task: newTaskResp(out.Task)}
}

type meetingResp struct {
	Status      string        `json:"status"`
	Event       *taskResp     `json:"event,omitempty"`
	Conflict    *conflictResp `json:"conflict,omitempty"`
	Suggestions []slotResp    `json:"suggestions,omitempty"`
}

func (h *handler) newMeetingResp(out task.MeetingOutput) meetingResp {
	resp := meetingResp{Status: string(out.Status)}
	if out.Event != nil {
		eventBody := newTaskResp(*out.Event)
		resp.Event = &eventBody
	}
	if out.Conflict != nil {
		resp.Conflict = &conflictResp{
			Label: out.Conflict.Label,
			Start: response.DateTime(out.Conflict.Start),
			End:   response.DateTime(out.Conflict.End),
		}
	}
	if len(out.Suggestions) > 0 {
		resp.Suggestions = newSlotResps(out.Suggestions)
	}
	return resp
}
