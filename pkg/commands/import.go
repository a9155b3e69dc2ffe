package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"suite/pkg/todo"
)

var (
	// Date headers: DD.MM.YYYY: or YYYY-MM-DD:
	dateRegex = regexp.MustCompile(`^(?:(\d{2})\.(\d{2})\.(\d{4})|(\d{4})-(\d{2})-(\d{2})):?$`)
	// Exported lines always end in a category bracket, "[]" when empty,
	// with "[", "]" and "\" escaped inside it
	taskRegex = regexp.MustCompile(`^-\s+\[( |x|X)\]\s+(?:\((high|medium|low)\)\s+)?(.*\S)\s+\[((?:[^\[\]\\]|\\.)*)\]$`)
	// Hand-written lines may leave the category out
	bareTaskRegex = regexp.MustCompile(`^-\s+\[( |x|X)\]\s+(?:\((high|medium|low)\)\s+)?(.*)$`)
)

// HandleImportCommand appends the tasks found in filename. The format is
// picked from the extension: .json, .yaml/.yml, anything else is text.
func HandleImportCommand(fsys afero.Fs, board *todo.Board, out io.Writer, filename string) error {
	content, err := afero.ReadFile(fsys, filename)
	if err != nil {
		return fmt.Errorf("error reading file: %w", err)
	}

	var tasks []todo.Task
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json":
		if err := json.Unmarshal(content, &tasks); err != nil {
			return fmt.Errorf("error parsing JSON: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(content, &tasks); err != nil {
			return fmt.Errorf("error parsing YAML: %w", err)
		}
	default:
		tasks = parseText(string(content))
	}

	added := board.Import(tasks)
	fmt.Fprintf(out, "Successfully imported %d task(s) from %s\n", added, filename)
	return nil
}

func parseText(content string) []todo.Task {
	var tasks []todo.Task
	currentDate := ""

	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if line == noDueHeader {
			currentDate = ""
			continue
		}

		if dateMatch := dateRegex.FindStringSubmatch(line); dateMatch != nil {
			var day, month, year int
			if dateMatch[1] != "" {
				day, _ = strconv.Atoi(dateMatch[1])
				month, _ = strconv.Atoi(dateMatch[2])
				year, _ = strconv.Atoi(dateMatch[3])
			} else {
				year, _ = strconv.Atoi(dateMatch[4])
				month, _ = strconv.Atoi(dateMatch[5])
				day, _ = strconv.Atoi(dateMatch[6])
			}
			currentDate = time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Format(todo.DateLayout)
			continue
		}

		m := taskRegex.FindStringSubmatch(line)
		if m != nil {
			m[4] = unescapeCategory(m[4])
		} else if m = bareTaskRegex.FindStringSubmatch(line); m != nil {
			m = append(m, "")
		} else {
			continue
		}
		priority := todo.Priority(m[2])
		if priority == "" {
			priority = todo.PriorityMedium
		}
		tasks = append(tasks, todo.Task{
			Text:      m[3],
			Completed: strings.EqualFold(m[1], "x"),
			Due:       currentDate,
			Priority:  priority,
			Category:  m[4],
		})
	}
	return tasks
}

func unescapeCategory(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}
