package render

import (
	"fmt"

	"github.com/gomutex/godocx"
	"github.com/gomutex/godocx/docx"

	"github.com/msageha/taskscribe/internal/model"
)

const (
	reportFont     = "Calibri"
	reportFontSize = 11
	reportTitle    = "Meeting Action Items"
)

// WriteReport writes the pipeline result as a docx meeting report.
func WriteReport(result model.PipelineResult, outputPath string) error {
	doc, err := godocx.NewDocument()
	if err != nil {
		return err
	}

	addHeading(doc.AddParagraph(""), reportTitle, 16)
	doc.AddParagraph("")

	if len(result.Tasks) == 0 {
		addBody(doc.AddParagraph(""), "No actionable tasks were identified in this meeting.")
		return doc.SaveTo(outputPath)
	}

	for _, t := range result.Tasks {
		addHeading(doc.AddParagraph(""), fmt.Sprintf("Task #%d: %s", t.TaskNumber, t.Description), 13)

		p := doc.AddParagraph("")
		addLabel(p, "Priority: ")
		addBodyRun(p, string(t.Priority))

		p = doc.AddParagraph("")
		addLabel(p, "Assigned to: ")
		if t.AssignedTo != nil {
			addBodyRun(p, *t.AssignedTo)
		} else {
			addBodyRun(p, "Unassigned")
		}

		if t.Deadline != nil {
			p = doc.AddParagraph("")
			addLabel(p, "Deadline: ")
			addBodyRun(p, *t.Deadline)
		}

		if deps := FormatDependencies(t.Dependencies); deps != "" {
			addBody(doc.AddParagraph(""), deps)
		}

		if t.Reasoning != "" {
			addBody(doc.AddParagraph(""), t.Reasoning)
		}

		doc.AddParagraph("")
	}

	return doc.SaveTo(outputPath)
}

func addHeading(p *docx.Paragraph, text string, size uint64) {
	p.AddText(text).Font(reportFont).Size(size).Color("000000").Bold(true)
}

func addLabel(p *docx.Paragraph, text string) {
	p.AddText(text).Font(reportFont).Size(reportFontSize).Color("000000").Bold(true)
}

func addBodyRun(p *docx.Paragraph, text string) {
	p.AddText(text).Font(reportFont).Size(reportFontSize).Color("000000")
}

func addBody(p *docx.Paragraph, text string) {
	addBodyRun(p, text)
}
