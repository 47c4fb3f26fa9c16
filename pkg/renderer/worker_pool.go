package renderer

import (
	"errors"
	"fmt"
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/geometry"
	"github.com/df07/go-pathtracer/pkg/integrator"
)

var (
	// ErrWorkerClosed is returned by Collect when a worker exited with results outstanding
	ErrWorkerClosed = errors.New("renderer: worker data channel closed")
	// ErrPoolFull is returned by Submit when the receiving worker has no queue space left
	ErrPoolFull = errors.New("renderer: worker queue is full")
	// ErrPoolClosed is returned by Submit after Close
	ErrPoolClosed = errors.New("renderer: thread pool is closed")
)

// ControlPacket is a job for one pixel. Camera, World and Tracer are shared
// read-only by every worker. Done tells the receiving worker to exit.
type ControlPacket struct {
	Row, Col      int
	Camera        *Camera
	World         geometry.Hitable
	Tracer        integrator.Integrator
	Samples       int
	Width, Height int
	MaxDepth      int
	Done          bool
}

// DataPacket is the result for one pixel: the unnormalized sum of Samples radiance values
type DataPacket struct {
	Row, Col int
	Color    core.Vec3
	Samples  int
}

// worker owns a goroutine, its two channels and its own random source
type worker struct {
	id          int
	control     chan ControlPacket
	data        chan DataPacket
	exited      chan struct{}
	random      *rand.Rand
	packetsSent int // results still to be collected
	jobs        int // jobs submitted over the pool's lifetime
}

// ThreadPool runs pixel jobs on a fixed set of workers. Jobs are dealt round-robin;
// each worker's queues are buffered to capacity so up to Capacity jobs can be
// submitted before any result is drained. Collect empties the queues for the next batch.
type ThreadPool struct {
	workers  []*worker
	next     int
	capacity int
	wg       sync.WaitGroup
	logger   core.Logger
	closed   bool
}

// NewThreadPool starts numWorkers workers (0 = CPU count) able to hold totalJobs
// between them, with no more than queueLimit queued per worker (0 = no limit).
// Worker i seeds its random source with seed+i; seed 0 uses the clock.
func NewThreadPool(numWorkers, totalJobs, queueLimit int, seed int64, logger core.Logger) *ThreadPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	capacity := (totalJobs + numWorkers - 1) / numWorkers
	if queueLimit > 0 && capacity > queueLimit {
		capacity = queueLimit
	}

	pool := &ThreadPool{
		workers:  make([]*worker, numWorkers),
		capacity: capacity,
		logger:   logger,
	}

	for i := range pool.workers {
		w := &worker{
			id:      i,
			control: make(chan ControlPacket, capacity+1), // room for the Done sentinel
			data:    make(chan DataPacket, capacity),
			exited:  make(chan struct{}),
			random:  rand.New(rand.NewSource(seed + int64(i))),
		}
		pool.workers[i] = w

		pool.wg.Add(1)
		go w.run(&pool.wg, logger)
	}

	return pool
}

// NumWorkers returns the number of workers in the pool
func (p *ThreadPool) NumWorkers() int {
	return len(p.workers)
}

// Capacity returns how many jobs can be submitted between two calls to Collect
func (p *ThreadPool) Capacity() int {
	return p.capacity * len(p.workers)
}

// Submit hands a job to the next worker in round-robin order
func (p *ThreadPool) Submit(packet ControlPacket) error {
	if p.closed {
		return ErrPoolClosed
	}

	w := p.workers[p.next]
	if w.packetsSent >= p.capacity {
		return fmt.Errorf("%w: worker %d already holds %d jobs", ErrPoolFull, w.id, w.packetsSent)
	}

	select {
	case w.control <- packet:
	case <-w.exited:
		return fmt.Errorf("%w: worker %d exited before accepting a job", ErrWorkerClosed, w.id)
	}

	w.packetsSent++
	w.jobs++
	p.next = (p.next + 1) % len(p.workers)
	return nil
}

// Collect drains every worker in turn for exactly the results it still owes,
// passing each to handle. It must be called only after the batch is submitted.
func (p *ThreadPool) Collect(handle func(DataPacket)) error {
	for _, w := range p.workers {
		for w.packetsSent > 0 {
			packet, ok := <-w.data
			if !ok {
				return fmt.Errorf("%w: worker %d with %d results outstanding", ErrWorkerClosed, w.id, w.packetsSent)
			}
			w.packetsSent--
			handle(packet)
		}
	}
	return nil
}

// JobCounts returns how many jobs each worker has been given
func (p *ThreadPool) JobCounts() []int {
	counts := make([]int, len(p.workers))
	for i, w := range p.workers {
		counts[i] = w.jobs
	}
	return counts
}

// Close sends the Done sentinel to every worker and waits for all of them to exit.
// Calling Close more than once is a no-op.
func (p *ThreadPool) Close() {
	if p.closed {
		return
	}
	p.closed = true

	for _, w := range p.workers {
		select {
		case w.control <- ControlPacket{Done: true}:
		case <-w.exited:
		}
	}
	p.wg.Wait()
}

// run is the main worker loop
func (w *worker) run(wg *sync.WaitGroup, logger core.Logger) {
	defer wg.Done()
	defer close(w.exited)
	defer close(w.data)
	defer func() {
		if r := recover(); r != nil {
			logger.Printf("Worker %d stopped: %v\n", w.id, r)
		}
	}()

	for packet := range w.control {
		if packet.Done {
			return
		}
		w.data <- DataPacket{
			Row:     packet.Row,
			Col:     packet.Col,
			Color:   w.renderPixel(packet),
			Samples: packet.Samples,
		}
	}
}

// renderPixel sums packet.Samples jittered camera rays through the pixel.
// Row 0 is the bottom of the image.
func (w *worker) renderPixel(packet ControlPacket) core.Vec3 {
	var color core.Vec3
	for s := 0; s < packet.Samples; s++ {
		u := jitter(packet.Col, packet.Width, w.random)
		v := jitter(packet.Row, packet.Height, w.random)
		ray := packet.Camera.GetRay(u, v, w.random)
		color = color.Add(packet.Tracer.RayColor(ray, packet.World, packet.MaxDepth, w.random))
	}
	return color
}

// jitter maps a pixel index plus a random offset to [0, 1] viewport coordinates
func jitter(index, size int, random *rand.Rand) float64 {
	if size <= 1 {
		return 0.5
	}
	return (float64(index) + random.Float64()) / float64(size-1)
}
