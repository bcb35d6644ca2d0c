// Package batch runs sheet composition over a list of input files, isolating
// per-file failures so one bad document never aborts the rest of the job.
package batch

import (
	"context"
	"path/filepath"

	"github.com/flanksource/commons/logger"
	"github.com/samber/lo"

	"github.com/sheetpress/sheetpress/compose"
	"github.com/sheetpress/sheetpress/pages"
)

// OutputPrefix is prepended to every input filename to form its output name.
const OutputPrefix = "processed_"

// ProgressFunc is called after each file finishes, successful or not.
type ProgressFunc func(done, total int, file string)

// Result aggregates the outcome of one batch run. Succeeded counts files
// that produced an output document, Empty counts files whose pages were all
// excluded (completed, nothing written), Failed counts true failures.
type Result struct {
	Succeeded   int
	Failed      int
	Empty       int
	FailedFiles []string
	OutputDir   string
}

// Ok reports whether every file was processed without failure.
func (r Result) Ok() bool {
	return r.Failed == 0
}

// Total returns the number of files the batch visited.
func (r Result) Total() int {
	return r.Succeeded + r.Failed + r.Empty
}

// Runner processes input files sequentially through a Compositor. Each file
// is written to OutputDir under its prefixed name; Exclude and Metadata are
// shared across the whole batch.
type Runner struct {
	Compositor   *compose.Compositor
	TemplatePath string
	OutputDir    string
	Exclude      pages.Set
	Metadata     compose.Metadata
	Progress     ProgressFunc
}

// OutputName derives the output filename for an input path.
func OutputName(input string) string {
	return OutputPrefix + filepath.Base(input)
}

// Run processes every input in order. A failed file is recorded and the
// batch continues with the next one. Cancelling the context stops the batch
// between files; files not reached are recorded as failures.
func (r *Runner) Run(ctx context.Context, inputs []string) Result {
	result := Result{OutputDir: r.OutputDir}

	compositor := r.Compositor
	if compositor == nil {
		compositor = compose.NewDefault()
	}

	for i, input := range inputs {
		if ctx.Err() != nil {
			remaining := inputs[i:]
			logger.Warnf("batch cancelled, %d file(s) not processed", len(remaining))
			result.Failed += len(remaining)
			result.FailedFiles = append(result.FailedFiles, lo.Map(remaining, func(path string, _ int) string {
				return filepath.Base(path)
			})...)
			break
		}

		job := compose.Job{
			InputPath:    input,
			TemplatePath: r.TemplatePath,
			OutputPath:   filepath.Join(r.OutputDir, OutputName(input)),
			Exclude:      r.Exclude,
			Metadata:     r.Metadata,
		}

		jobResult, err := compositor.Compose(job)
		switch {
		case err != nil:
			result.Failed++
			result.FailedFiles = append(result.FailedFiles, filepath.Base(input))
			logger.Errorf("failed to process %s: %v", input, err)
		case jobResult.PagesWritten == 0:
			result.Empty++
			logger.Warnf("no pages processed for %s, nothing written", input)
		default:
			result.Succeeded++
			logger.Infof("processed %s -> %s (%d page(s))", filepath.Base(input), jobResult.OutputPath, jobResult.PagesWritten)
		}

		if r.Progress != nil {
			r.Progress(i+1, len(inputs), input)
		}
	}

	return result
}
