package throttle

import (
	"sync"
	"time"
)

// Throttler 把一个有副作用的函数限制成一个时间窗口内最多执行一次。
// 窗口内的第一次调用立刻执行，窗口未结束前的后续调用会合并成
// 窗口结束时的一次尾随执行，参数取最后一次调用的参数。
// 任何调用都不会被静默丢弃，同一时刻最多挂起一次尾随执行。
type Throttler[T any] struct {
	mu      sync.Mutex
	fn      func(T)
	window  time.Duration
	timer   *time.Timer
	pending bool
	lastArg T
	lastRun time.Time
}

func New[T any](fn func(T), window time.Duration) *Throttler[T] {
	return &Throttler[T]{
		fn:     fn,
		window: window,
	}
}

func (t *Throttler[T]) Call(arg T) {
	t.mu.Lock()
	now := time.Now()
	if !t.pending && now.Sub(t.lastRun) >= t.window {
		t.lastRun = now
		t.mu.Unlock()
		t.fn(arg)
		return
	}
	// 窗口内，记下最新参数等窗口结束统一执行
	t.lastArg = arg
	if !t.pending {
		t.pending = true
		delay := t.window - now.Sub(t.lastRun)
		if delay < 0 {
			delay = 0
		}
		t.timer = time.AfterFunc(delay, t.fire)
	}
	t.mu.Unlock()
}

func (t *Throttler[T]) fire() {
	t.mu.Lock()
	if !t.pending {
		t.mu.Unlock()
		return
	}
	arg := t.lastArg
	t.pending = false
	t.lastRun = time.Now()
	t.mu.Unlock()
	t.fn(arg)
}

// Flush 立即执行挂起的尾随调用（如果有）。
func (t *Throttler[T]) Flush() {
	t.mu.Lock()
	if t.timer != nil {
		t.timer.Stop()
	}
	t.mu.Unlock()
	t.fire()
}

// Stop 丢弃挂起的尾随调用。只在会话结束时使用。
func (t *Throttler[T]) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
	}
	t.pending = false
}

// idle 没有挂起的调用，且最近一次执行已经超过一个窗口
func (t *Throttler[T]) idle() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return !t.pending && time.Since(t.lastRun) >= t.window
}

// Keyed 按 key 维护一组节流器，比如按 uid:resumeId 限制自动保存频率。
type Keyed[T any] struct {
	mu       sync.Mutex
	window   time.Duration
	fn       func(T)
	throttls map[string]*Throttler[T]
}

func NewKeyed[T any](fn func(T), window time.Duration) *Keyed[T] {
	return &Keyed[T]{
		window:   window,
		fn:       fn,
		throttls: make(map[string]*Throttler[T]),
	}
}

func (k *Keyed[T]) Call(key string, arg T) {
	k.mu.Lock()
	th, ok := k.throttls[key]
	if !ok {
		k.evictIdleLocked()
		th = New(k.fn, k.window)
		k.throttls[key] = th
	}
	k.mu.Unlock()
	th.Call(arg)
}

// evictIdleLocked 回收闲置的节流器，不然 map 会随用过的 key 一直涨。
// 闲置满一个窗口的节流器即使重建也是立刻执行，丢掉不影响节流语义。
func (k *Keyed[T]) evictIdleLocked() {
	for key, th := range k.throttls {
		if th.idle() {
			delete(k.throttls, key)
		}
	}
}
