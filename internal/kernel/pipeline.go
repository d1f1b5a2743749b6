package kernel

import (
	"context"
	"encoding/binary"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"

	"guildcache/pkg/discord"
)

// Handler applies one event. The cache's Update method satisfies it.
type Handler func(event discord.Event)

// Pipeline fans events out to partition workers so that events sharing a
// partition key are applied in receipt order by a single goroutine.
// Events without a key are barriers: they run alone after every earlier
// event has been applied.
type Pipeline struct {
	handler      Handler
	backpressure BackpressurePolicy
	onAsyncError func(context.Context, string, error)

	// publishMu is held shared by keyed publishes and exclusively by
	// barriers and Close.
	publishMu  sync.RWMutex
	partitions []*partition
	ctx        context.Context
	cancel     context.CancelFunc
	closed     atomic.Bool
	once       sync.Once
	done       chan struct{}
}

type job struct {
	event   discord.Event
	flushed chan struct{}
}

// partition owns the queue and worker of one hash bucket.
type partition struct {
	id    int
	queue chan job
}

// NewPipeline creates a pipeline and starts its workers.
func NewPipeline(handler Handler, options ...Option) *Pipeline {
	cfg := defaultConfig()
	for _, option := range options {
		option(&cfg)
	}

	ctx, cancel := context.WithCancel(context.Background())
	p := &Pipeline{
		handler:      handler,
		backpressure: cfg.backpressure,
		onAsyncError: cfg.asyncErrorHandler(),
		partitions:   make([]*partition, cfg.workers),
		ctx:          ctx,
		cancel:       cancel,
		done:         make(chan struct{}),
	}

	workerWG := &sync.WaitGroup{}
	for idx := range p.partitions {
		part := &partition{id: idx, queue: make(chan job, cfg.buffer)}
		p.partitions[idx] = part
		workerWG.Add(1)
		go p.runWorker(workerWG, part)
	}
	go func() {
		workerWG.Wait()
		close(p.done)
	}()

	return p
}

// Workers returns the number of partition workers.
func (p *Pipeline) Workers() int {
	return len(p.partitions)
}

// Publish routes an event to its partition, or runs it as a barrier.
func (p *Pipeline) Publish(ctx context.Context, event discord.Event) error {
	if event == nil {
		return fmt.Errorf("publish: nil event")
	}

	key, keyed := discord.PartitionKey(event)
	if !keyed {
		return p.publishBarrier(ctx, event)
	}

	p.publishMu.RLock()
	defer p.publishMu.RUnlock()
	if p.closed.Load() {
		return fmt.Errorf("publish %s: %w", event.Kind(), ErrPipelineClosed)
	}

	part := p.partitions[partitionIndex(key, len(p.partitions))]
	if err := p.enqueue(ctx, part, job{event: event}); err != nil {
		return fmt.Errorf("publish %s: %w", event.Kind(), err)
	}

	return nil
}

// Close stops accepting events, drains queued work and waits for the workers
// or for ctx to expire.
func (p *Pipeline) Close(ctx context.Context) error {
	p.once.Do(func() {
		p.publishMu.Lock()
		p.closed.Store(true)
		for _, part := range p.partitions {
			close(part.queue)
		}
		p.publishMu.Unlock()
	})

	select {
	case <-p.done:
		p.cancel()
		return nil
	case <-ctx.Done():
		p.cancel()
		return fmt.Errorf("close pipeline: %w", ctx.Err())
	}
}

// publishBarrier waits until every partition has drained the events queued
// before it, then applies event on the caller's goroutine.
func (p *Pipeline) publishBarrier(ctx context.Context, event discord.Event) error {
	p.publishMu.Lock()
	defer p.publishMu.Unlock()
	if p.closed.Load() {
		return fmt.Errorf("publish %s: %w", event.Kind(), ErrPipelineClosed)
	}

	flushes := make([]chan struct{}, 0, len(p.partitions))
	for _, part := range p.partitions {
		flushed := make(chan struct{})
		if err := p.enqueueBlock(ctx, part, job{flushed: flushed}); err != nil {
			return fmt.Errorf("publish %s: %w", event.Kind(), err)
		}
		flushes = append(flushes, flushed)
	}
	for _, flushed := range flushes {
		select {
		case <-flushed:
		case <-ctx.Done():
			return fmt.Errorf("publish %s: %w", event.Kind(), ctx.Err())
		}
	}

	p.apply(ctx, "barrier", event)

	return nil
}

func (p *Pipeline) enqueue(ctx context.Context, part *partition, item job) error {
	if p.backpressure == BackpressureDropNewest {
		select {
		case part.queue <- item:
			return nil
		default:
			return fmt.Errorf("enqueue partition %d: %w", part.id, ErrEventDropped)
		}
	}

	return p.enqueueBlock(ctx, part, item)
}

func (p *Pipeline) enqueueBlock(ctx context.Context, part *partition, item job) error {
	select {
	case part.queue <- item:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("enqueue partition %d: %w", part.id, ctx.Err())
	case <-p.ctx.Done():
		return fmt.Errorf("enqueue partition %d: %w", part.id, ErrPipelineClosed)
	}
}

// runWorker drains one partition until its queue is closed or the pipeline
// is force-stopped.
func (p *Pipeline) runWorker(workerWG *sync.WaitGroup, part *partition) {
	defer workerWG.Done()

	scope := fmt.Sprintf("partition %d", part.id)
	for {
		select {
		case <-p.ctx.Done():
			return
		case item, ok := <-part.queue:
			if !ok {
				return
			}
			if item.flushed != nil {
				close(item.flushed)
				continue
			}
			p.apply(p.ctx, scope, item.event)
		}
	}
}

func (p *Pipeline) apply(ctx context.Context, scope string, event discord.Event) {
	if err := runSafely(scope, func() error {
		p.handler(event)
		return nil
	}); err != nil {
		p.onAsyncError(ctx, scope, fmt.Errorf("apply %s: %w", event.Kind(), err))
	}
}

func partitionIndex(key discord.ID, partitions int) int {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(key))

	return int(xxhash.Sum64(buf[:]) % uint64(partitions))
}
