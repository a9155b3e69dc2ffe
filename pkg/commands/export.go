package commands

import (
	"cmp"
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"suite/pkg/todo"
)

const noDueHeader = "No due date:"

// HandleExportCommand writes every task to filename as json, yaml or txt
func HandleExportCommand(fsys afero.Fs, board *todo.Board, out io.Writer, filename, exportType string) error {
	tasks := board.Tasks()

	// Ensure directory exists
	dir := filepath.Dir(filename)
	if err := fsys.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("error creating directory: %w", err)
	}

	var content []byte
	var err error

	switch exportType {
	case "json":
		content, err = json.MarshalIndent(tasks, "", "  ")
		if err != nil {
			return fmt.Errorf("error marshaling tasks to JSON: %w", err)
		}
	case "yaml", "yml":
		content, err = yaml.Marshal(tasks)
		if err != nil {
			return fmt.Errorf("error marshaling tasks to YAML: %w", err)
		}
	case "txt":
		content = []byte(renderText(tasks))
	default:
		return fmt.Errorf("unknown export type: %s", exportType)
	}

	if err := afero.WriteFile(fsys, filename, content, 0644); err != nil {
		return fmt.Errorf("error writing file: %w", err)
	}

	fmt.Fprintf(out, "Successfully exported %d task(s) to %s\n", len(tasks), filename)
	return nil
}

var categoryEscaper = strings.NewReplacer(`\`, `\\`, "[", `\[`, "]", `\]`)

// renderText groups checkbox lines under their due date, undated tasks last:
//
//	2024-01-02:
//	- [x] (high) Pay rent [home]
//	- [ ] (low) Call bank []
func renderText(tasks []todo.Task) string {
	sorted := slices.Clone(tasks)
	slices.SortStableFunc(sorted, func(a, b todo.Task) int {
		switch {
		case a.Due == b.Due:
			return 0
		case a.Due == "":
			return 1
		case b.Due == "":
			return -1
		}
		return cmp.Compare(a.Due, b.Due)
	})

	var lines []string
	lastHeader := ""
	for _, task := range sorted {
		header := noDueHeader
		if task.Due != "" {
			header = task.Due + ":"
		}
		if header != lastHeader {
			lines = append(lines, "\n"+header)
			lastHeader = header
		}

		status := " "
		if task.Completed {
			status = "x"
		}
		line := fmt.Sprintf("- [%s] (%s) %s [%s]", status, task.Priority, task.Text, categoryEscaper.Replace(task.Category))
		lines = append(lines, line)
	}
	return strings.TrimSpace(strings.Join(lines, "\n")) + "\n"
}
