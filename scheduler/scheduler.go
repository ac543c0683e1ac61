package scheduler

import (
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/oqtopus-team/template-engine/core"
	"github.com/oqtopus-team/template-engine/templates"
	"go.uber.org/zap"
)

// NormalScheduler drains the build queue, runs the template builders and
// hands finished programs to the executor.
type NormalScheduler struct {
	queue    *BuildQueue
	executor core.Executor
}

type buildRequest struct {
	id       string
	req      *core.TemplateRequest
	finished *sync.WaitGroup

	program *core.Program
	err     error
}

func (n *NormalScheduler) Setup(conf *core.Conf, executor core.Executor) error {
	if executor == nil {
		return fmt.Errorf("no executor for scheduler")
	}
	n.queue = &BuildQueue{}
	if err := n.queue.Setup(conf); err != nil {
		return err
	}
	n.executor = executor
	return nil
}

func (n *NormalScheduler) Start() error {
	go func() {
		for {
			zap.L().Debug("checking the build queue...")
			br, err := n.queue.Dequeue(true)
			if err != nil {
				zap.L().Error(fmt.Sprintf("failed to get request from queue. Reason:%s", err))
				continue
			}
			zap.L().Debug(fmt.Sprintf("building request:%s template:%s", br.id, br.req.Template))
			br.program, br.err = templates.BuildFromRequest(br.req)
			if br.err == nil {
				br.err = n.executor.Execute(br.program)
			}
			if br.err != nil {
				zap.L().Info(fmt.Sprintf("failed to finish request(%s). Reason:%s", br.id, br.err))
			} else {
				zap.L().Debug(fmt.Sprintf("finished request(%s) with %d operations",
					br.id, len(br.program.Ops)))
			}
			br.finished.Done()
		}
	}()
	return nil
}

// HandleRequest queues one request and returns its id without waiting for
// the build to finish.
func (n *NormalScheduler) HandleRequest(req *core.TemplateRequest) string {
	br := newBuildRequest(req)
	zap.L().Debug(fmt.Sprintf("starting to handle request(%s) for %s", br.id, req.Template))
	go func() {
		n.queue.queueChan <- br
	}()
	return br.id
}

// HandleRequestSync queues one request and waits for the build, returning
// the built program or the build error.
func (n *NormalScheduler) HandleRequestSync(req *core.TemplateRequest) (*core.Program, error) {
	br := newBuildRequest(req)
	n.queue.queueChan <- br
	br.finished.Wait()
	return br.program, br.err
}

func newBuildRequest(req *core.TemplateRequest) *buildRequest {
	var wg sync.WaitGroup
	wg.Add(1)
	return &buildRequest{
		id:       uuid.New().String(),
		req:      req,
		finished: &wg,
	}
}

func (n *NormalScheduler) GetCurrentQueueSize() int {
	return n.queue.fifo.GetLen()
}

func (n *NormalScheduler) IsOverRefillThreshold() bool {
	return n.queue.refillThreshold <= n.queue.fifo.GetLen()
}

func (n *NormalScheduler) TearDown() {
	n.queue.TearDown()
}
