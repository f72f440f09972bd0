package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"inbox-planner/internal/model"
	"inbox-planner/internal/pipeline"
	"inbox-planner/internal/task"
)

// inputFile is the offline form of a run: what the mailbox and calendar would have returned.
type inputFile struct {
	Items        []model.RawItem       `yaml:"items"`
	Events       []model.CalendarEvent `yaml:"events"`
	Tasks        []inputTask           `yaml:"tasks"`
	MeetingNotes string                `yaml:"meeting_notes"`
}

// inputTask keeps due_date as text so a malformed date does not fail the whole file.
type inputTask struct {
	ID              string       `yaml:"id"`
	Title           string       `yaml:"title"`
	Source          model.Source `yaml:"source"`
	DueRaw          string       `yaml:"due_raw"`
	DueDate         string       `yaml:"due_date"`
	EstimateMinutes *int         `yaml:"estimate_minutes"`
}

func (t inputTask) toTask() model.Task {
	mt := model.Task{ID: t.ID, Title: t.Title, Source: t.Source, EstimateMinutes: t.EstimateMinutes}
	mt.DueDate, mt.DueRaw = task.ManualDue(t.DueDate, t.DueRaw)
	return mt
}

func loadInput(path string) (pipeline.RunInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return pipeline.RunInput{}, fmt.Errorf("read input: %w", err)
	}

	var f inputFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return pipeline.RunInput{}, fmt.Errorf("parse input %s: %w", path, err)
	}

	tasks := make([]model.Task, 0, len(f.Tasks))
	for _, t := range f.Tasks {
		tasks = append(tasks, t.toTask())
	}
	return pipeline.RunInput{
		Items:        f.Items,
		Events:       f.Events,
		Tasks:        tasks,
		MeetingNotes: f.MeetingNotes,
	}, nil
}
