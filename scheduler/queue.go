package scheduler

import (
	"fmt"

	conq "github.com/enriquebris/goconcurrentqueue"
	"github.com/oqtopus-team/template-engine/core"
	"go.uber.org/zap"
)

type queueChan chan *buildRequest

type fifo interface {
	Enqueue(*buildRequest) error
	Dequeue() (*buildRequest, error)
	DequeueOrWaitForNextElement() (*buildRequest, error)
	Get(index int) (*buildRequest, error)
	GetLen() int
	Remove(index int) error
}

type conqFIFO struct {
	conq.FIFO
}

func newConqFIFO() *conqFIFO {
	return &conqFIFO{
		FIFO: *conq.NewFIFO(),
	}
}

func (c *conqFIFO) Enqueue(br *buildRequest) error {
	return c.FIFO.Enqueue(br)
}

func (c *conqFIFO) Dequeue() (*buildRequest, error) {
	tmp, err := c.FIFO.Dequeue()
	if err != nil {
		return nil, err
	}
	return tmp.(*buildRequest), nil
}

func (c *conqFIFO) DequeueOrWaitForNextElement() (*buildRequest, error) {
	tmp, err := c.FIFO.DequeueOrWaitForNextElement()
	if err != nil {
		return nil, err
	}
	return tmp.(*buildRequest), nil
}

func (c *conqFIFO) Get(index int) (*buildRequest, error) {
	tmp, err := c.FIFO.Get(index)
	if err != nil {
		return nil, err
	}
	return tmp.(*buildRequest), nil
}

func (c *conqFIFO) GetLen() int {
	return c.FIFO.GetLen()
}

func (c *conqFIFO) Remove(index int) error {
	return c.FIFO.Remove(index)
}

// BuildQueue feeds template build requests to the worker. Requests past
// maxSize are dropped with a log line, never blocked on.
type BuildQueue struct {
	fifo            fifo
	maxSize         int
	refillThreshold int
	queueChan       queueChan
	cancelChan      chan struct{}
}

func (b *BuildQueue) Setup(conf *core.Conf) error {
	b.refillThreshold = conf.QueueRefillThreshold
	b.maxSize = conf.QueueMaxSize
	b.fifo = newConqFIFO()
	b.queueChan = make(queueChan)
	b.cancelChan = make(chan struct{})
	go func() {
		defer close(b.cancelChan)
		for {
			var br *buildRequest
			select {
			case <-b.cancelChan:
				return
			case br = <-b.queueChan:
			}
			if b.maxSize <= b.fifo.GetLen() {
				zap.L().Info(fmt.Sprintf("Failed to put %s. Build queue is full.", br.id))
				continue
			}
			zap.L().Debug(fmt.Sprintf("Putting %s to buildQueue", br.id))
			err := b.fifo.Enqueue(br)
			if err != nil {
				zap.L().Error(
					fmt.Sprintf("Failed to put %s to buildQueue. Reason:%s", br.id, err))
			}
		}
	}()
	return nil
}

func (b *BuildQueue) TearDown() {
	b.cancelChan <- struct{}{}
}

// wait until the next element gets enqueued
func (b *BuildQueue) Dequeue(wait bool) (br *buildRequest, err error) {
	br = nil
	err = nil
	if wait {
		br, err = b.fifo.DequeueOrWaitForNextElement()
	} else {
		br, err = b.fifo.Dequeue()
	}
	if err != nil {
		zap.L().Debug("no request in BuildQueue.", zap.Error(err))
		return
	}
	zap.L().Debug(fmt.Sprintf("Dequeued request:%s", br.id))
	return
}

func (b *BuildQueue) Delete(requestID string) error {
	zap.L().Debug(fmt.Sprintf("deleting %s from buildQueue", requestID))
	idx, err := b.getIdx(requestID)
	if err != nil {
		zap.L().Info(fmt.Sprintf("Failed to Delete %s. Reason:%s", requestID, err))
		return err
	}
	err = b.fifo.Remove(idx)
	if err != nil {
		zap.L().Error(fmt.Sprintf("Failed to remove idx:%d. Reason:%s", idx, err))
		return err
	}
	return nil
}

func (b *BuildQueue) IsOverRefillThreshold() bool {
	return b.refillThreshold <= b.fifo.GetLen()
}

func (b *BuildQueue) GetCurrentSize() int {
	return b.fifo.GetLen()
}

func (b *BuildQueue) getIdx(requestID string) (int, error) {
	for i := 0; i < b.fifo.GetLen(); i++ {
		br, err := b.fifo.Get(i)
		if err == nil {
			if br.id == requestID {
				return i, nil
			}
		}
	}
	return 0, fmt.Errorf("No entry")
}
