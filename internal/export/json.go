package export

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/sadopc/focuscal/internal/session"
)

type jsonExport struct {
	ExportedAt string     `json:"exported_at"`
	Count      int        `json:"count"`
	Tasks      []jsonTask `json:"tasks"`
}

type jsonTask struct {
	ID                 string `json:"id"`
	OwnerID            string `json:"ownerId"`
	Title              string `json:"title"`
	Date               string `json:"date"`
	DurationMinutes    int    `json:"durationMinutes"`
	TargetInstances    int    `json:"targetInstances"`
	CompletedInstances int    `json:"completedInstances"`
	Completed          bool   `json:"completed"`
	CreatedAt          string `json:"createdAt"`
}

func ToJSON(tasks []session.Task, path string) error {
	out := jsonExport{
		ExportedAt: time.Now().UTC().Format(time.RFC3339),
		Count:      len(tasks),
	}

	for _, t := range tasks {
		out.Tasks = append(out.Tasks, jsonTask{
			ID:                 t.ID,
			OwnerID:            t.OwnerID,
			Title:              t.Title,
			Date:               string(t.Date),
			DurationMinutes:    t.DurationMinutes,
			TargetInstances:    t.TargetInstances,
			CompletedInstances: t.CompletedInstances,
			Completed:          t.Completed,
			CreatedAt:          t.CreatedAt.UTC().Format(time.RFC3339),
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal json: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write json file: %w", err)
	}
	return nil
}
