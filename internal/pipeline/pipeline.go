// Package pipeline wires the transcript-to-task components together:
// extraction, per-task deadline/priority/assignment resolution, and
// the final dependency pass over the numbered task list.
package pipeline

import (
	"context"
	"runtime"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/msageha/taskscribe/internal/assign"
	"github.com/msageha/taskscribe/internal/deadline"
	"github.com/msageha/taskscribe/internal/depgraph"
	"github.com/msageha/taskscribe/internal/extract"
	"github.com/msageha/taskscribe/internal/model"
	"github.com/msageha/taskscribe/internal/priority"
	"github.com/msageha/taskscribe/internal/roster"
	"github.com/msageha/taskscribe/internal/stt"
)

// Pipeline is stateless across invocations; each run owns its own
// task list exclusively.
type Pipeline struct {
	transcriber stt.Transcriber
}

// New creates a Pipeline. transcriber may be nil when only transcripts
// are processed.
func New(transcriber stt.Transcriber) *Pipeline {
	return &Pipeline{transcriber: transcriber}
}

// ProcessAudio transcribes the audio through the external adapter and
// runs the transcript pipeline. Transcription failures are fatal and
// surface in the result, never as a partial task list.
func (p *Pipeline) ProcessAudio(ctx context.Context, audioPath string, members []model.TeamMember, ref time.Time) model.PipelineResult {
	if p.transcriber == nil {
		return failure("", "transcription: no transcriber configured")
	}
	transcript, err := p.transcriber.Transcribe(ctx, audioPath)
	if err != nil {
		return failure("", err.Error())
	}
	return p.ProcessTranscript(ctx, transcript, members, ref)
}

// ProcessTranscript runs the full pipeline over one transcript and
// roster. The reference date anchors deadline normalization; a zero
// ref leaves deadline phrases verbatim.
func (p *Pipeline) ProcessTranscript(ctx context.Context, transcript string, members []model.TeamMember, ref time.Time) model.PipelineResult {
	dir, err := roster.New(members)
	if err != nil {
		return failure(transcript, err.Error())
	}
	return p.process(ctx, transcript, dir, ref)
}

func (p *Pipeline) process(ctx context.Context, transcript string, dir *roster.Directory, ref time.Time) model.PipelineResult {
	drafts := extract.New(dir.Names()).Extract(transcript)
	if len(drafts) == 0 {
		return model.PipelineResult{Success: true, Tasks: []model.Task{}, Transcript: transcript}
	}

	// Per-task resolution has no cross-task ordering dependency, so
	// every draft is resolved independently.
	tasks := make([]model.Task, len(drafts))
	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())
	for i := range drafts {
		g.Go(func() error {
			tasks[i] = resolveDraft(drafts[i], i+1, dir, ref)
			return nil
		})
	}
	_ = g.Wait() // per-task stages are total functions

	// Dependency resolution needs the complete, stably numbered list
	// and runs strictly last.
	phrases := make([][]string, len(drafts))
	for i, d := range drafts {
		phrases[i] = d.DependencyPhrases
	}
	resolved, err := depgraph.Resolve(tasks, phrases)
	if err != nil {
		return failure(transcript, err.Error())
	}

	return model.PipelineResult{Success: true, Tasks: resolved, Transcript: transcript}
}

// resolveDraft finalizes one draft: deadline label, priority tier,
// assignee, and rationale. Unresolved fields stay null; none of these
// conditions fail the run.
func resolveDraft(draft model.DraftTask, number int, dir *roster.Directory, ref time.Time) model.Task {
	task := model.Task{
		TaskNumber:   number,
		Description:  draft.Description,
		Dependencies: []int{},
	}

	if draft.DeadlinePhrase != "" {
		label := deadline.Normalize(draft.DeadlinePhrase, ref)
		task.Deadline = &label
	}

	in := priority.Input{
		Text:    draft.Description + " " + draft.RawText,
		Signals: draft.PrioritySignals,
		Ref:     ref,
	}
	if d, ok := deadline.Resolve(draft.DeadlinePhrase, ref); ok && !ref.IsZero() {
		in.Deadline = d
	}
	task.Priority = priority.Classify(in)

	res := assign.Resolve(draft, dir)
	if res.Member != nil {
		name := res.Member.Name
		task.AssignedTo = &name
	}
	task.Reasoning = res.Reasoning

	return task
}

func failure(transcript, msg string) model.PipelineResult {
	return model.PipelineResult{
		Success:      false,
		Transcript:   transcript,
		ErrorMessage: strings.TrimSpace(msg),
	}
}
