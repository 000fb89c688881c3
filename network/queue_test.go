package network
import (
	"fmt"
	"sync"
	"time"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/r3dacted42/stego/util"
	"github.com/r3dacted42/stego/protocol"
)

func newTestQueue( workers, size uint ) *Queue {
	return NewQueue( workers, size, 0, protocol.NewProcessor( false, "png" ), util.NewNopLogger() )
}

func TestQueueConcurrent( t *testing.T ) {
	q := newTestQueue( 4, 8 )
	defer q.Close()

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add( 1 )
		go func( i int ) {
			defer wg.Done()
			msg := fmt.Sprintf("message number %d", i)
			enc, err := q.Submit( context.Background(), protocol.Request{
				Kind: protocol.TextEncode,
				Carrier: "carrier text",
				Message: msg,
			})
			if !assert.NoError( t, err ) || !assert.False( t, enc.Failed(), enc.Error ) {
				return
			}
			dec, err := q.Submit( context.Background(), protocol.Request{
				Kind: protocol.TextDecode,
				EncodedText: enc.EncodedText,
			})
			assert.NoError( t, err )
			assert.Equal( t, msg, dec.Message )
		}( i )
	}
	wg.Wait()
}

func TestQueueCopiesInput( t *testing.T ) {
	q := newTestQueue( 1, 1 )
	defer q.Close()

	pix := make( []byte, 8 * 8 * 4 )
	resp, err := q.Submit( context.Background(), protocol.Request{
		Kind: protocol.ImageEncode,
		Pix: pix,
		Width: 8,
		Height: 8,
		Message: "copy",
	})
	require.NoError( t, err )
	require.False( t, resp.Failed(), resp.Error )
	assert.Equal( t, make( []byte, 8 * 8 * 4 ), pix )
}

func TestQueueErrorResponse( t *testing.T ) {
	q := newTestQueue( 1, 1 )
	defer q.Close()

	resp, err := q.Submit( context.Background(), protocol.Request{
		Kind: protocol.TextDecode,
		EncodedText: "nothing",
	})
	require.NoError( t, err )
	assert.True( t, resp.Failed() )
}

func TestQueueRecoversPanic( t *testing.T ) {
	// a nil processor panics inside the worker
	q := NewQueue( 1, 1, 0, nil, util.NewNopLogger() )
	defer q.Close()

	resp, err := q.Submit( context.Background(), protocol.Request{ Kind: protocol.TextEncode } )
	require.NoError( t, err )
	assert.Equal( t, "Internal error while processing the request.", resp.Error )
}

func TestQueueTimeout( t *testing.T ) {
	// no workers and no buffer, nothing will ever pick the job up
	q := &Queue{
		queue: make( chan *job ),
		Logger: util.NewNopLogger(),
		timeout: 20 * time.Millisecond,
	}
	_, err := q.Submit( context.Background(), protocol.Request{ Kind: protocol.ImageCapacity } )
	assert.ErrorIs( t, err, context.DeadlineExceeded )
}

func TestQueueClosed( t *testing.T ) {
	q := newTestQueue( 2, 2 )
	q.Close()
	q.Close()
	_, err := q.Submit( context.Background(), protocol.Request{ Kind: protocol.ImageCapacity } )
	assert.ErrorIs( t, err, ErrQueueClosed )
}
