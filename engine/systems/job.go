package systems

import (
	"fmt"
	"sync"

	"github.com/spaghettifunk/ombra/engine/core"
)

type JobType int

const (
	JOB_TYPE_GENERAL JobType = iota
	JOB_TYPE_RESOURCE_LOAD
)

type JobPriority int

const (
	JOB_PRIORITY_LOW JobPriority = iota
	JOB_PRIORITY_NORMAL
	JOB_PRIORITY_HIGH
)

type JobOnStart func(params interface{}, resultChan chan<- interface{}) error
type JobOnResult func(resultChan <-chan interface{})

// JobTask describes one unit of background work and its callbacks. OnComplete
// and OnFailure run on the worker goroutine; anything they touch must be
// safe to mutate off the main loop.
type JobTask struct {
	JobType              JobType
	Priority             JobPriority
	InputParams          []interface{}
	OnStart              JobOnStart
	OnComplete           JobOnResult
	OnFailure            JobOnResult
	OnCompletionCallback func()
}

type JobSystem struct {
	numWorkers int
	jobQueue   chan JobTask
	wg         sync.WaitGroup
}

var ErrNoWorkers = fmt.Errorf("attempting to create worker pool with less than 1 worker")
var ErrNegativeChannelSize = fmt.Errorf("attempting to create worker pool with a negative channel size")

func NewJobSystem(numWorkers int, channelSize int) (*JobSystem, error) {
	if numWorkers <= 0 {
		return nil, ErrNoWorkers
	}
	if channelSize < 0 {
		return nil, ErrNegativeChannelSize
	}

	js := &JobSystem{
		numWorkers: numWorkers,
		jobQueue:   make(chan JobTask, channelSize),
	}

	js.start()

	return js, nil
}

func (js *JobSystem) start() {
	for i := 0; i < js.numWorkers; i++ {
		js.wg.Add(1)
		go func() {
			defer js.wg.Done()
			for job := range js.jobQueue {
				paramsChan := make(chan interface{}, 1)
				// Run the job and handle potential errors
				err := job.OnStart(job.InputParams, paramsChan)
				if err != nil {
					core.LogError(err.Error())
					if job.OnFailure != nil {
						job.OnFailure(paramsChan)
					}
				} else {
					if job.OnComplete != nil {
						job.OnComplete(paramsChan)
					}
				}

				// Call the completion callback if set
				if job.OnCompletionCallback != nil {
					job.OnCompletionCallback()
				}
			}
		}()
	}
}

/**
 * @brief Shuts the job system down, waiting for in-flight jobs to finish.
 */
func (js *JobSystem) Shutdown() error {
	close(js.jobQueue)
	js.wg.Wait()
	return nil
}

// AddWorkNonBlocking adds work to the pool and returns immediately
func (js *JobSystem) AddWorkNonBlocking(jt JobTask) {
	go js.Submit(jt)
}

/**
 * @brief Submits the provided job to be queued for execution.
 * @param jt The description of the job to be executed.
 */
func (js *JobSystem) Submit(jt JobTask) {
	js.jobQueue <- jt
}
