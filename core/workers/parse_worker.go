// ABOUTME: Parse worker pool handles concurrent parsing of post batches
// ABOUTME: Provides a managed pool so a timeline page is parsed with bounded parallelism

package workers

import (
	"context"
	"sync"
	"time"

	"siren-api/core/domain"
)

// submitTimeout is how long SubmitJob waits for room in a full queue
const submitTimeout = 5 * time.Second

// Parser is the part of the render service the pool needs
type Parser interface {
	ParseWithFlags(ctx context.Context, raw string) *domain.AttributedText
}

// ParseJob represents one post to parse
type ParseJob struct {
	Index    int
	HTML     string
	Context  context.Context
	ResultCh chan<- ParseResult
}

// ParseResult is the parsed text of the job with the same Index
type ParseResult struct {
	Index int
	Text  *domain.AttributedText
}

// ParseWorker manages a pool of parsing goroutines
type ParseWorker struct {
	parser     Parser
	jobQueue   chan *ParseJob
	maxWorkers int
	wg         sync.WaitGroup
	ctx        context.Context
	cancel     context.CancelFunc
	mu         sync.RWMutex
	running    bool
}

// WorkerConfig holds configuration for the parse worker
type WorkerConfig struct {
	MaxWorkers int
	QueueSize  int
}

// DefaultWorkerConfig returns the default worker configuration
func DefaultWorkerConfig() WorkerConfig {
	return WorkerConfig{
		MaxWorkers: 8,
		QueueSize:  256,
	}
}

// NewParseWorker creates a new parse worker
func NewParseWorker(parser Parser, config WorkerConfig) *ParseWorker {
	ctx, cancel := context.WithCancel(context.Background())

	if config.MaxWorkers <= 0 {
		config.MaxWorkers = DefaultWorkerConfig().MaxWorkers
	}
	if config.QueueSize <= 0 {
		config.QueueSize = DefaultWorkerConfig().QueueSize
	}

	return &ParseWorker{
		parser:     parser,
		jobQueue:   make(chan *ParseJob, config.QueueSize),
		maxWorkers: config.MaxWorkers,
		ctx:        ctx,
		cancel:     cancel,
	}
}

// Start starts the worker pool
func (pw *ParseWorker) Start() error {
	pw.mu.Lock()
	defer pw.mu.Unlock()

	if pw.running {
		return nil
	}

	for i := 0; i < pw.maxWorkers; i++ {
		pw.wg.Add(1)
		go pw.run()
	}

	pw.running = true
	return nil
}

// Stop stops the worker pool. Queued jobs that have not started are dropped.
// A stopped pool cannot be restarted.
func (pw *ParseWorker) Stop() error {
	pw.mu.Lock()
	defer pw.mu.Unlock()

	if !pw.running {
		return nil
	}

	pw.cancel()
	pw.wg.Wait()

	pw.running = false
	return nil
}

// SubmitJob submits a job to the worker pool
func (pw *ParseWorker) SubmitJob(job *ParseJob) error {
	pw.mu.RLock()
	defer pw.mu.RUnlock()

	if !pw.running {
		return ErrWorkerNotRunning
	}

	select {
	case pw.jobQueue <- job:
		return nil
	case <-job.Context.Done():
		return job.Context.Err()
	case <-time.After(submitTimeout):
		return ErrQueueFull
	}
}

// ParseBatch parses posts on the pool and returns the texts in input order
func (pw *ParseWorker) ParseBatch(ctx context.Context, posts []string) ([]*domain.AttributedText, error) {
	results := make(chan ParseResult, len(posts))
	for i, html := range posts {
		job := &ParseJob{Index: i, HTML: html, Context: ctx, ResultCh: results}
		if err := pw.SubmitJob(job); err != nil {
			return nil, err
		}
	}

	texts := make([]*domain.AttributedText, len(posts))
	for range posts {
		select {
		case r := <-results:
			texts[r.Index] = r.Text
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	return texts, nil
}

// run is the main loop for each worker
func (pw *ParseWorker) run() {
	defer pw.wg.Done()

	for {
		select {
		case job := <-pw.jobQueue:
			pw.processJob(job)
		case <-pw.ctx.Done():
			return
		}
	}
}

// processJob parses a single post unless its caller already gave up
func (pw *ParseWorker) processJob(job *ParseJob) {
	if job.Context.Err() != nil {
		return
	}
	text := pw.parser.ParseWithFlags(job.Context, job.HTML)
	if job.ResultCh != nil {
		// Result channels are buffered for the whole batch
		job.ResultCh <- ParseResult{Index: job.Index, Text: text}
	}
}

// Error definitions
var (
	ErrWorkerNotRunning = &WorkerError{Message: "worker pool is not running"}
	ErrQueueFull        = &WorkerError{Message: "job queue is full"}
)

// WorkerError represents a worker-specific error
type WorkerError struct {
	Message string
}

func (e *WorkerError) Error() string {
	return e.Message
}
