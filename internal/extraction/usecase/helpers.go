package usecase

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strings"

	"inbox-planner/internal/extraction"
	"inbox-planner/internal/model"
)

var (
	codeFenceRe  = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")
	bulletLineRe = regexp.MustCompile(`^\s*(?:[-*\x{2022}]|\d+[.)])\s+`)
	bulletTrimRe = regexp.MustCompile(`^[\-\*\x{2022}\d\.\)\s]+`)
	// checkboxRe matches the "[ ]" or "[x]" left after the bullet marker is trimmed.
	checkboxRe = regexp.MustCompile(`^\[([ xX])\]\s*`)
)

// wireResult is the JSON shape the prompts ask for.
type wireResult struct {
	Summary  string     `json:"summary"`
	Category string     `json:"category"`
	Tasks    []wireTask `json:"tasks"`
}

type wireTask struct {
	Title      string   `json:"title"`
	DueRaw     string   `json:"due_raw"`
	DueDate    string   `json:"due_date"`
	Priority   string   `json:"priority"`
	Confidence *float64 `json:"confidence"`
}

// sanitizeJSONResponse removes markdown code fences and leading/trailing prose
// that LLMs often add around JSON output.
func sanitizeJSONResponse(text string) string {
	if m := codeFenceRe.FindStringSubmatch(text); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}

	start := strings.IndexAny(text, "[{")
	if start == -1 {
		return text
	}
	end := strings.LastIndexAny(text, "]}")
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}

// decodeResult parses a model answer. A bare JSON array is accepted as the task list.
func decodeResult(raw string) (wireResult, error) {
	cleaned := sanitizeJSONResponse(raw)

	var res wireResult
	if strings.HasPrefix(cleaned, "[") {
		if err := json.Unmarshal([]byte(cleaned), &res.Tasks); err != nil {
			return wireResult{}, err
		}
		return res, nil
	}
	if err := json.Unmarshal([]byte(cleaned), &res); err != nil {
		return wireResult{}, err
	}
	return res, nil
}

// ParseBulletTasks recovers tasks from a plain bullet or numbered list.
// Lines that are not list items are ignored, and so are ticked checkboxes.
func ParseBulletTasks(text string) []model.ExtractedTask {
	var tasks []model.ExtractedTask
	for _, line := range strings.Split(text, "\n") {
		if !bulletLineRe.MatchString(line) {
			continue
		}
		title := bulletTrimRe.ReplaceAllString(line, "")
		if m := checkboxRe.FindStringSubmatch(title); m != nil {
			if m[1] != " " {
				continue
			}
			title = title[len(m[0]):]
		}
		title = strings.TrimSpace(title)
		if title == "" {
			continue
		}
		tasks = append(tasks, model.ExtractedTask{Title: title, Confidence: extraction.BulletConfidence})
	}
	return tasks
}

// toTasks trims titles, drops empty ones, clamps confidence and caps the count.
// maxTasks <= 0 keeps everything.
func toTasks(in []wireTask, maxTasks int) []model.ExtractedTask {
	out := make([]model.ExtractedTask, 0, len(in))
	for _, wt := range in {
		title := strings.TrimSpace(wt.Title)
		if title == "" {
			continue
		}
		conf := 1.0
		if wt.Confidence != nil {
			conf = clamp01(*wt.Confidence)
		}
		out = append(out, model.ExtractedTask{
			Title:      title,
			DueRaw:     strings.TrimSpace(wt.DueRaw),
			DueDate:    strings.TrimSpace(wt.DueDate),
			Priority:   strings.ToUpper(strings.TrimSpace(wt.Priority)),
			Confidence: conf,
		})
		if maxTasks > 0 && len(out) == maxTasks {
			break
		}
	}
	return out
}

func clamp01(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// parseCategory maps the model's label onto a known category. Unknown or missing
// labels become PROJECT when tasks came back and OTHER otherwise.
func parseCategory(label string, hasTasks bool) model.Category {
	switch c := model.Category(strings.ToUpper(strings.TrimSpace(label))); c {
	case model.CategoryPromo, model.CategoryAlert, model.CategoryMeeting, model.CategoryProject, model.CategoryOther:
		return c
	}
	if hasTasks {
		return model.CategoryProject
	}
	return model.CategoryOther
}

// cacheKey hashes everything that shapes the answer.
func cacheKey(kind, system, user string) string {
	sum := sha256.Sum256([]byte(kind + "\x00" + system + "\x00" + user))
	return fmt.Sprintf("extract:%s:%s", kind, hex.EncodeToString(sum[:]))
}
