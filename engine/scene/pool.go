package scene

import (
	"runtime"
	"sync"

	"github.com/pkg/errors"

	"github.com/spaghettifunk/gxmath/engine/core"
	"github.com/spaghettifunk/gxmath/engine/math"
)

type job func()

// workerPool runs submitted jobs on a fixed number of goroutines.
type workerPool struct {
	numWorkers int
	jobQueue   chan job
	wg         sync.WaitGroup
}

var ErrNoWorkers = errors.New("attempting to create worker pool with less than 1 worker")
var ErrNegativeChannelSize = errors.New("attempting to create worker pool with a negative channel size")

func newWorkerPool(numWorkers int, channelSize int) (*workerPool, error) {
	if numWorkers <= 0 {
		return nil, ErrNoWorkers
	}
	if channelSize < 0 {
		return nil, ErrNegativeChannelSize
	}

	p := &workerPool{
		numWorkers: numWorkers,
		jobQueue:   make(chan job, channelSize),
	}
	p.start()
	return p, nil
}

func (p *workerPool) start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for j := range p.jobQueue {
				j()
			}
		}()
	}
}

func (p *workerPool) submit(j job) {
	p.jobQueue <- j
}

// shutdown waits for every submitted job to finish.
func (p *workerPool) shutdown() {
	close(p.jobQueue)
	p.wg.Wait()
}

// forEach calls fn for every index in [0, n) spread over the available CPUs.
func forEach(n int, fn func(i int)) {
	if n == 0 {
		return
	}
	pool, err := newWorkerPool(math.Clamp(runtime.NumCPU(), 1, n), n)
	if err != nil {
		core.LogWarn("falling back to serial evaluation: %v", err)
		for i := 0; i < n; i++ {
			fn(i)
		}
		return
	}
	for i := 0; i < n; i++ {
		i := i
		pool.submit(func() { fn(i) })
	}
	pool.shutdown()
}
