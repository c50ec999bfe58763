// Package render turns a PipelineResult into its consumer formats:
// JSON, CSV, YAML artifact, terminal table, and docx report. The core
// defines only field names and null semantics; everything
// presentational lives here.
package render

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/msageha/taskscribe/internal/fileio"
	"github.com/msageha/taskscribe/internal/model"
)

// JSON serializes a result with stable field names. ParseJSON inverts
// it exactly, so serialize-then-parse reproduces every task field.
func JSON(result model.PipelineResult) ([]byte, error) {
	return json.MarshalIndent(result, "", "  ")
}

func ParseJSON(data []byte) (model.PipelineResult, error) {
	var result model.PipelineResult
	if err := json.Unmarshal(data, &result); err != nil {
		return model.PipelineResult{}, fmt.Errorf("parse result: %w", err)
	}
	return result, nil
}

// CSV renders the task list as delimited text, one row per task.
func CSV(result model.PipelineResult) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := []string{"Task Number", "Description", "Assigned To", "Deadline", "Priority", "Dependencies", "Reasoning"}
	if err := w.Write(header); err != nil {
		return "", fmt.Errorf("write csv header: %w", err)
	}

	for _, t := range result.Tasks {
		row := []string{
			fmt.Sprintf("%d", t.TaskNumber),
			t.Description,
			orEmpty(t.AssignedTo),
			orEmpty(t.Deadline),
			string(t.Priority),
			FormatDependencies(t.Dependencies),
			t.Reasoning,
		}
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("flush csv: %w", err)
	}
	return buf.String(), nil
}

// YAML serializes a result for the YAML artifact format.
func YAML(result model.PipelineResult) ([]byte, error) {
	data, err := yaml.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("yaml marshal: %w", err)
	}
	return data, nil
}

// WriteYAML writes the result as a YAML artifact, atomically.
func WriteYAML(result model.PipelineResult, path string) error {
	data, err := YAML(result)
	if err != nil {
		return err
	}
	return fileio.AtomicWrite(path, data)
}

// FormatDependencies renders a dependency set for humans:
// "Depends on Task #1, Task #3". Empty sets render empty.
func FormatDependencies(deps []int) string {
	if len(deps) == 0 {
		return ""
	}
	parts := make([]string, len(deps))
	for i, d := range deps {
		parts[i] = fmt.Sprintf("Task #%d", d)
	}
	return "Depends on " + strings.Join(parts, ", ")
}

func orEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
