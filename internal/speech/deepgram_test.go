package speech

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestDeepgramReceiverCollectsSegments(t *testing.T) {
	r := newDeepgramReceiver(zap.NewNop())

	r.appendSegment("what is")
	r.appendSegment("my notice period")

	assert.Equal(t, "what is my notice period", r.transcript())
	assert.NoError(t, r.err())
}

func TestDeepgramReceiverKeepsFirstError(t *testing.T) {
	r := newDeepgramReceiver(zap.NewNop())

	first := errors.New("connection reset")
	r.recordErr(first)
	r.recordErr(errors.New("later failure"))

	assert.Equal(t, first, r.err())
}

func TestDeepgramReceiverConcurrentAccess(t *testing.T) {
	r := newDeepgramReceiver(zap.NewNop())

	// Callbacks land on the SDK goroutine while the transcriber polls the
	// collected state after a drain timeout.
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				r.appendSegment(fmt.Sprintf("segment %d %d", n, j))
				r.recordErr(errors.New("stream error"))
			}
		}(i)
	}
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				_ = r.transcript()
				_ = r.err()
			}
		}()
	}
	wg.Wait()

	assert.NotEmpty(t, r.transcript())
	assert.Error(t, r.err())
}
