package network
import (
	"fmt"
	"sync"
	"time"
	"errors"
	"context"

	"github.com/r3dacted42/stego/util"
	"github.com/r3dacted42/stego/protocol"
)

var (
	ErrQueueClosed = errors.New("Queue is closed.")
)

type job struct {
	req	protocol.Request
	reply	chan protocol.Response	// buffered, a worker never blocks on it
}

/*
 * the queue which runs every codec call.
 * A fixed set of workers pulls jobs from a bounded channel. Each job owns a
 * private copy of its buffers and produces exactly one response.
 */
type Queue struct {
	queue		chan *job
	Logger		*util.Logger
	proc		*protocol.Processor
	timeout		time.Duration
	wg		sync.WaitGroup
	mtx		sync.RWMutex
	closed		bool
}

func NewQueue( workers, queueSize uint, timeout time.Duration,
		proc *protocol.Processor, logger *util.Logger ) *Queue {

	if workers == 0 {
		workers = 1
	}
	q := &Queue{
		queue: make( chan *job, queueSize ),
		Logger: logger,
		proc: proc,
		timeout: timeout,
	}
	for i := uint(0); i < workers; i++ {
		q.wg.Add( 1 )
		go q.run()
	}
	return q
}

func(q *Queue) run() {
	defer q.wg.Done()
	for j := range q.queue {
		j.reply <- q.handle( j.req )
	}
}

func(q *Queue) handle( req protocol.Request ) (resp protocol.Response) {
	defer func() {
		if r := recover(); r != nil {
			q.Logger.LogError( fmt.Errorf("%s panicked: %v", protocol.KindName( req.Kind ), r) )
			resp = protocol.Response{ Error: "Internal error while processing the request." }
		}
	}()
	start := time.Now()
	resp = q.proc.Process( req )
	if resp.Failed() {
		q.Logger.LogWarning( protocol.KindName( req.Kind ) + ": " + resp.Error )
	} else {
		q.Logger.LogInfo( fmt.Sprintf("%s done in %s", protocol.KindName( req.Kind ), time.Since( start )) )
	}
	return resp
}

/*
 * Submit hands a request to the workers and waits for its response.
 * Cancelling ctx (or hitting the queue timeout) only stops the waiting; a job
 * already taken by a worker runs to completion and its result is dropped.
 */
func(q *Queue) Submit( ctx context.Context, req protocol.Request ) (protocol.Response, error) {
	if q.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout( ctx, q.timeout )
		defer cancel()
	}
	j := &job{ req.Clone(), make( chan protocol.Response, 1 ) }

	q.mtx.RLock()
	if q.closed {
		q.mtx.RUnlock()
		return protocol.Response{}, ErrQueueClosed
	}
	select {
	case q.queue <- j:
		q.mtx.RUnlock()
	case <-ctx.Done():
		q.mtx.RUnlock()
		return protocol.Response{}, ctx.Err()
	}

	select {
	case resp := <-j.reply:
		return resp, nil
	case <-ctx.Done():
		return protocol.Response{}, ctx.Err()
	}
}

// Close stops accepting requests and waits for the workers to drain the queue.
func(q *Queue) Close() {
	q.mtx.Lock()
	if q.closed {
		q.mtx.Unlock()
		return
	}
	q.closed = true
	close( q.queue )
	q.mtx.Unlock()
	q.wg.Wait()
}
