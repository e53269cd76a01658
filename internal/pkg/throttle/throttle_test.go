package throttle

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu   sync.Mutex
	args []int
}

func (r *recorder) record(arg int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.args = append(r.args, arg)
}

func (r *recorder) snapshot() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.args...)
}

func TestThrottlerFirstCallImmediate(t *testing.T) {
	rec := &recorder{}
	th := New(rec.record, 50*time.Millisecond)
	defer th.Stop()
	th.Call(1)
	assert.Equal(t, []int{1}, rec.snapshot())
}

// 一个窗口内 N 次调用：第一次立刻执行，
// 其余合并成窗口结束时的一次，参数取最后一次的。
func TestThrottlerCoalescesWindow(t *testing.T) {
	rec := &recorder{}
	th := New(rec.record, 50*time.Millisecond)
	defer th.Stop()

	for i := 1; i <= 5; i++ {
		th.Call(i)
	}
	assert.Equal(t, []int{1}, rec.snapshot())

	require.Eventually(t, func() bool {
		return len(rec.snapshot()) == 2
	}, time.Second, 5*time.Millisecond)
	assert.Equal(t, []int{1, 5}, rec.snapshot())

	// 不会再有多余的执行
	time.Sleep(100 * time.Millisecond)
	assert.Equal(t, []int{1, 5}, rec.snapshot())
}

func TestThrottlerFlush(t *testing.T) {
	rec := &recorder{}
	th := New(rec.record, time.Hour)
	defer th.Stop()

	th.Call(1)
	th.Call(2)
	th.Call(3)
	assert.Equal(t, []int{1}, rec.snapshot())

	th.Flush()
	assert.Equal(t, []int{1, 3}, rec.snapshot())

	// 没有挂起的调用时 Flush 什么都不做
	th.Flush()
	assert.Equal(t, []int{1, 3}, rec.snapshot())
}

func TestThrottlerStopDiscardsPending(t *testing.T) {
	rec := &recorder{}
	th := New(rec.record, 30*time.Millisecond)

	th.Call(1)
	th.Call(2)
	th.Stop()

	time.Sleep(80 * time.Millisecond)
	assert.Equal(t, []int{1}, rec.snapshot())
}

func TestKeyedIsolation(t *testing.T) {
	rec := &recorder{}
	k := NewKeyed(rec.record, time.Hour)

	// 不同 key 互不影响，各自的第一次调用都立刻执行
	k.Call("1:a", 1)
	k.Call("2:b", 2)
	k.Call("1:a", 3)

	assert.Equal(t, []int{1, 2}, rec.snapshot())
}

// 闲置满一个窗口的 key 会在下一次新 key 进来时被回收，
// map 的大小只跟活跃的 key 有关。
func TestKeyedEvictsIdle(t *testing.T) {
	rec := &recorder{}
	k := NewKeyed(rec.record, 10*time.Millisecond)

	k.Call("1:a", 1)
	time.Sleep(30 * time.Millisecond)

	k.Call("2:b", 2)
	k.mu.Lock()
	_, stale := k.throttls["1:a"]
	size := len(k.throttls)
	k.mu.Unlock()
	assert.False(t, stale)
	assert.Equal(t, 1, size)

	// 回收之后再来的调用仍然立刻执行
	k.Call("1:a", 3)
	assert.Equal(t, []int{1, 2, 3}, rec.snapshot())
}
