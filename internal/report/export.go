package report

import (
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"inbox-planner/internal/model"
	"inbox-planner/internal/pipeline"
)

// Document is the YAML export of a run.
type Document struct {
	RunID       string                `yaml:"run_id"`
	GeneratedAt time.Time             `yaml:"generated_at"`
	Tasks       []model.Task          `yaml:"tasks"`
	Proposals   []model.ProposedBlock `yaml:"proposals"`
	Omitted     []string              `yaml:"omitted,omitempty"`
	Summaries   []model.ItemSummary   `yaml:"summaries,omitempty"`
	Diagnostics []string              `yaml:"diagnostics"`
	Committed   int                   `yaml:"committed,omitempty"`
}

func NewDocument(out pipeline.RunOutput, at time.Time) Document {
	return Document{
		RunID:       out.RunID,
		GeneratedAt: at.UTC(),
		Tasks:       out.Tasks,
		Proposals:   out.Proposals,
		Omitted:     out.Omitted,
		Summaries:   out.Summaries,
		Diagnostics: out.Diagnostics,
		Committed:   out.Committed,
	}
}

// Export writes the run as YAML.
func Export(w io.Writer, out pipeline.RunOutput, at time.Time) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(NewDocument(out, at)); err != nil {
		return fmt.Errorf("encode export: %w", err)
	}
	return enc.Close()
}

// ExportFile writes the YAML export to path, replacing any previous file.
func ExportFile(path string, out pipeline.RunOutput, at time.Time) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export: %w", err)
	}
	if err := Export(f, out, at); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
