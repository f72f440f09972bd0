package http

import (
	"time"

	"inbox-planner/internal/model"
	"inbox-planner/internal/pipeline"
	"inbox-planner/internal/schedule"
	"inbox-planner/internal/task"
)

// --- Request DTOs ---

type itemReq struct {
	ID      string `json:"id"      binding:"required"`
	Subject string `json:"subject"`
	Body    string `json:"body"    binding:"required"`
	From    string `json:"from"`
}

type eventReq struct {
	ID    string `json:"id"`
	Title string `json:"title"`
	Start string `json:"start" binding:"required"`
	End   string `json:"end"   binding:"required"`
}

type taskReq struct {
	ID      string `json:"id"`
	Title   string `json:"title"    binding:"required"`
	DueRaw  string `json:"due_raw"`
	DueDate string `json:"due_date"`
}

// windowReq overrides individual fields of the configured window.
type windowReq struct {
	BlockMinutes  *int   `json:"block_minutes"`
	BufferMinutes *int   `json:"buffer_minutes"`
	ProbeMinutes  *int   `json:"probe_minutes"`
	WorkStartHour *int   `json:"work_start_hour"`
	WorkEndHour   *int   `json:"work_end_hour"`
	LookaheadDays *int   `json:"lookahead_days"`
	Timezone      string `json:"timezone"`
}

func (r *windowReq) apply(base schedule.Window) (schedule.Window, error) {
	w := base
	if r == nil {
		return w, nil
	}
	if r.BlockMinutes != nil {
		w.BlockDuration = time.Duration(*r.BlockMinutes) * time.Minute
	}
	if r.BufferMinutes != nil {
		w.Buffer = time.Duration(*r.BufferMinutes) * time.Minute
	}
	if r.ProbeMinutes != nil {
		w.ProbeStep = time.Duration(*r.ProbeMinutes) * time.Minute
	}
	if r.WorkStartHour != nil {
		w.WorkStartHour = *r.WorkStartHour
	}
	if r.WorkEndHour != nil {
		w.WorkEndHour = *r.WorkEndHour
	}
	if r.LookaheadDays != nil {
		w.LookaheadDays = *r.LookaheadDays
	}
	if r.Timezone != "" {
		loc, err := time.LoadLocation(r.Timezone)
		if err != nil {
			return w, errInvalidTimezone
		}
		w.Location = loc
	}
	return w, nil
}

type runReq struct {
	Items        []itemReq  `json:"items"         binding:"dive"`
	Events       []eventReq `json:"events"        binding:"dive"`
	Tasks        []taskReq  `json:"tasks"         binding:"dive"`
	MeetingNotes string     `json:"meeting_notes"`
	Window       *windowReq `json:"window"`
	Now          string     `json:"now"`
}

func (r runReq) toInput(base schedule.Window) (pipeline.RunInput, error) {
	in := pipeline.RunInput{MeetingNotes: r.MeetingNotes}

	now, err := parseNow(r.Now)
	if err != nil {
		return in, err
	}
	in.Now = now

	if in.Window, err = r.Window.apply(base); err != nil {
		return in, err
	}

	for _, it := range r.Items {
		in.Items = append(in.Items, model.RawItem{ID: it.ID, Subject: it.Subject, Body: it.Body, From: it.From})
	}
	for _, ev := range r.Events {
		in.Events = append(in.Events, model.CalendarEvent{ID: ev.ID, Title: ev.Title, Start: ev.Start, End: ev.End})
	}
	for _, t := range r.Tasks {
		mt := model.Task{ID: t.ID, Title: t.Title}
		mt.DueDate, mt.DueRaw = task.ManualDue(t.DueDate, t.DueRaw)
		in.Tasks = append(in.Tasks, mt)
	}
	return in, nil
}

type syncReq struct {
	ItemLimit    int        `json:"item_limit"  binding:"omitempty,min=1,max=100"`
	EventLimit   int        `json:"event_limit" binding:"omitempty,min=1,max=250"`
	MeetingDocID string     `json:"meeting_doc_id"`
	Commit       bool       `json:"commit"`
	Window       *windowReq `json:"window"`
	Now          string     `json:"now"`
}

func (r syncReq) toInput(base schedule.Window) (pipeline.PlanInput, error) {
	in := pipeline.PlanInput{
		ItemLimit:    r.ItemLimit,
		EventLimit:   r.EventLimit,
		MeetingDocID: r.MeetingDocID,
		Commit:       r.Commit,
	}

	now, err := parseNow(r.Now)
	if err != nil {
		return in, err
	}
	in.Now = now

	if r.Window != nil {
		w, err := r.Window.apply(base)
		if err != nil {
			return in, err
		}
		in.Window = &w
	}
	return in, nil
}

func parseNow(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, errInvalidNow
	}
	return t, nil
}

// --- Response DTOs ---

type taskResp struct {
	ID         string  `json:"id"`
	Title      string  `json:"title"`
	Source     string  `json:"source"`
	Priority   string  `json:"priority"`
	DueRaw     string  `json:"due_raw,omitempty"`
	DueDate    string  `json:"due_date,omitempty"`
	Status     string  `json:"status"`
	Confidence float64 `json:"confidence"`
}

type proposalResp struct {
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	Title        string    `json:"title"`
	LinkedTaskID string    `json:"linked_task_id"`
}

type summaryResp struct {
	ItemID   string `json:"item_id"`
	Subject  string `json:"subject"`
	Category string `json:"category"`
	Text     string `json:"text"`
}

type planResp struct {
	RunID       string         `json:"run_id"`
	Tasks       []taskResp     `json:"tasks"`
	Proposals   []proposalResp `json:"proposals"`
	Omitted     []string       `json:"omitted"`
	Summaries   []summaryResp  `json:"summaries"`
	Diagnostics []string       `json:"diagnostics"`
	EventCount  int            `json:"event_count"`
	Committed   int            `json:"committed"`
}

func (h *handler) newPlanResp(out pipeline.RunOutput) planResp {
	resp := planResp{
		RunID:       out.RunID,
		Tasks:       make([]taskResp, 0, len(out.Tasks)),
		Proposals:   make([]proposalResp, 0, len(out.Proposals)),
		Omitted:     out.Omitted,
		Summaries:   make([]summaryResp, 0, len(out.Summaries)),
		Diagnostics: out.Diagnostics,
		EventCount:  len(out.Events),
		Committed:   out.Committed,
	}
	if resp.Omitted == nil {
		resp.Omitted = []string{}
	}
	for _, t := range out.Tasks {
		tr := taskResp{
			ID:         t.ID,
			Title:      t.Title,
			Source:     string(t.Source),
			Priority:   string(t.Priority),
			DueRaw:     t.DueRaw,
			Status:     string(t.Status),
			Confidence: t.Confidence,
		}
		if t.DueDate != nil {
			tr.DueDate = t.DueDate.String()
		}
		resp.Tasks = append(resp.Tasks, tr)
	}
	for _, p := range out.Proposals {
		resp.Proposals = append(resp.Proposals, proposalResp{Start: p.Start, End: p.End, Title: p.Title, LinkedTaskID: p.LinkedTaskID})
	}
	for _, s := range out.Summaries {
		resp.Summaries = append(resp.Summaries, summaryResp{ItemID: s.ItemID, Subject: s.Subject, Category: string(s.Category), Text: s.Text})
	}
	return resp
}
