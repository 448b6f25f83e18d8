package scene

import (
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWorkerPool(t *testing.T) {
	tests := []struct {
		name        string
		workers     int
		channelSize int
		err         error
	}{
		{name: "valid", workers: 2, channelSize: 4},
		{name: "unbuffered", workers: 1, channelSize: 0},
		{name: "no workers", workers: 0, channelSize: 4, err: ErrNoWorkers},
		{name: "negative channel", workers: 1, channelSize: -1, err: ErrNegativeChannelSize},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := newWorkerPool(tt.workers, tt.channelSize)
			if tt.err != nil {
				assert.ErrorIs(t, err, tt.err)
				assert.Nil(t, p)
				return
			}
			require.NoError(t, err)

			var done int32
			for i := 0; i < 10; i++ {
				p.submit(func() { atomic.AddInt32(&done, 1) })
			}
			p.shutdown()
			assert.Equal(t, int32(10), atomic.LoadInt32(&done))
		})
	}
}

func TestForEach(t *testing.T) {
	for _, n := range []int{0, 1, 7, 100} {
		out := make([]int, n)
		forEach(n, func(i int) { out[i] = i * i })
		for i, v := range out {
			assert.Equal(t, i*i, v)
		}
	}
}
