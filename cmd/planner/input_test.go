package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleInput = `
items:
  - id: m1
    subject: Budget
    body: Please review the budget by Friday.
events:
  - id: e1
    title: Standup
    start: "2024-05-06T09:00:00Z"
    end: "2024-05-06T09:30:00Z"
tasks:
  - title: Renew passport
    due_date: "2024-05-10"
meeting_notes: |
  - Alice to send minutes
`

func TestLoadInput(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleInput), 0o600))

	in, err := loadInput(path)
	require.NoError(t, err)

	require.Len(t, in.Items, 1)
	assert.Equal(t, "Budget", in.Items[0].Subject)
	require.Len(t, in.Events, 1)
	assert.Equal(t, "2024-05-06T09:00:00Z", in.Events[0].Start)
	require.Len(t, in.Tasks, 1)
	require.NotNil(t, in.Tasks[0].DueDate)
	assert.Equal(t, "2024-05-10", in.Tasks[0].DueDate.String())
	assert.Equal(t, "- Alice to send minutes\n", in.MeetingNotes)
}

func TestLoadInput_MalformedDueDateKeepsTask(t *testing.T) {
	path := filepath.Join(t.TempDir(), "input.yaml")
	body := "tasks:\n  - title: File taxes\n    due_date: next-ish\n  - title: Call Ann\n    due_raw: by Friday\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	in, err := loadInput(path)
	require.NoError(t, err)

	require.Len(t, in.Tasks, 2)
	assert.Equal(t, "File taxes", in.Tasks[0].Title)
	assert.Nil(t, in.Tasks[0].DueDate)
	assert.Equal(t, "next-ish", in.Tasks[0].DueRaw)
	assert.Nil(t, in.Tasks[1].DueDate)
	assert.Equal(t, "by Friday", in.Tasks[1].DueRaw)
}

func TestLoadInput_Errors(t *testing.T) {
	_, err := loadInput(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("items: [unclosed"), 0o600))
	_, err = loadInput(path)
	require.Error(t, err)
}
