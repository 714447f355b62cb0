package export

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/sadopc/focuscal/internal/session"
)

func ToCSV(tasks []session.Task, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	defer w.Flush()

	// Header
	if err := w.Write([]string{"ID", "Date", "Title", "Duration (min)", "Reps Done", "Reps Target", "Completed", "Created At"}); err != nil {
		return err
	}

	for _, t := range tasks {
		row := []string{
			t.ID,
			string(t.Date),
			t.Title,
			strconv.Itoa(t.DurationMinutes),
			strconv.Itoa(t.CompletedInstances),
			strconv.Itoa(t.TargetInstances),
			strconv.FormatBool(t.Completed),
			t.CreatedAt.Local().Format(time.RFC3339),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return w.Error()
}
