package worker

import (
	"context"
	"log/slog"
	"sync"

	"github.com/IliaW/partner-evaluator/internal/evaluation"
	"github.com/IliaW/partner-evaluator/internal/model"
)

type EvaluationWorker struct {
	InputChan  <-chan *model.EvaluationTask
	OutputChan chan<- *model.Report
	PanicChan  chan struct{}
	Evaluator  evaluation.PartnerEvaluator
	Log        *slog.Logger
	Wg         *sync.WaitGroup
}

// Run starts the evaluation worker. It will evaluate the task url and send the report to the output channel.
// Cached reports are not published again.
func (w *EvaluationWorker) Run() {
	// Done must run after the panic is reported.
	defer w.Wg.Done()
	defer func() {
		if r := recover(); r != nil {
			w.Log.Error("PANIC!", slog.Any("err", r))
			w.PanicChan <- struct{}{}
		}
	}()
	w.Log.Debug("starting evaluation worker.")

	for task := range w.InputChan {
		report, err := w.Evaluator.Evaluate(context.Background(), task.URL, task.Force)
		if err != nil {
			w.Log.Error("evaluation failed.", slog.String("url", task.URL), slog.String("err", err.Error()))
			continue
		}
		if report.Cached {
			w.Log.Debug("report taken from cache. Skip publishing.", slog.String("url", task.URL))
			continue
		}
		w.OutputChan <- report
	}
}
