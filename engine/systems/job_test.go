package systems

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
)

func TestJobSystemRunsSubmittedWork(t *testing.T) {
	js, err := NewJobSystem(2, 8)
	if err != nil {
		t.Fatalf("failed to create job system: %v", err)
	}

	var completed atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 5; i++ {
		wg.Add(1)
		js.Submit(JobTask{
			JobType:  JOB_TYPE_GENERAL,
			Priority: JOB_PRIORITY_NORMAL,
			OnStart: func(params interface{}, resultChan chan<- interface{}) error {
				completed.Add(1)
				return nil
			},
			OnCompletionCallback: wg.Done,
		})
	}
	wg.Wait()

	if got := completed.Load(); got != 5 {
		t.Errorf("expected 5 completed jobs, got %d", got)
	}
	if err := js.Shutdown(); err != nil {
		t.Errorf("shutdown failed: %v", err)
	}
}

func TestJobSystemFailureCallback(t *testing.T) {
	js, err := NewJobSystem(1, 1)
	if err != nil {
		t.Fatalf("failed to create job system: %v", err)
	}
	defer js.Shutdown()

	var wg sync.WaitGroup
	wg.Add(1)
	var failed, succeeded bool
	js.Submit(JobTask{
		OnStart: func(params interface{}, resultChan chan<- interface{}) error {
			resultChan <- "broken"
			return errors.New("load failed")
		},
		OnComplete: func(resultChan <-chan interface{}) {
			succeeded = true
		},
		OnFailure: func(resultChan <-chan interface{}) {
			if v, ok := <-resultChan; ok && v == "broken" {
				failed = true
			}
		},
		OnCompletionCallback: wg.Done,
	})
	wg.Wait()

	if !failed {
		t.Error("OnFailure must run when OnStart errors")
	}
	if succeeded {
		t.Error("OnComplete must not run when OnStart errors")
	}
}

func TestJobSystemRejectsBadConfig(t *testing.T) {
	if _, err := NewJobSystem(0, 1); err != ErrNoWorkers {
		t.Errorf("expected ErrNoWorkers, got: %v", err)
	}
	if _, err := NewJobSystem(1, -1); err != ErrNegativeChannelSize {
		t.Errorf("expected ErrNegativeChannelSize, got: %v", err)
	}
}
