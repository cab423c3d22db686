package parser

import (
	"encoding/json"
	"strings"
)

type miseTask struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// parseMise handles `mise tasks ls --json` output: a JSON array of task
// objects. Anything that fails to decode yields an empty catalog.
func parseMise(raw string) []TaskEntry {
	var tasks []miseTask
	if err := json.Unmarshal([]byte(raw), &tasks); err != nil {
		return nil
	}

	items := make([]TaskEntry, 0, len(tasks))
	for _, t := range tasks {
		items = append(items, TaskEntry{
			Name:        t.Name,
			Description: strings.TrimSpace(t.Description),
		})
	}
	return items
}
