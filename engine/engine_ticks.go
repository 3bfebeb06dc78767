package engine

import (
	"sync"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-orbit/common"
)

func (e *engine) Subscribe(listener common.TickListener) {
	if listener == nil {
		return
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	for _, l := range e.listeners {
		if l == listener {
			return
		}
	}
	e.listeners = append(e.listeners, listener)
	e.logger.Debug().Int("listeners", len(e.listeners)).Msg("tick listener subscribed")
}

func (e *engine) Unsubscribe(listener common.TickListener) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, l := range e.listeners {
		if l == listener {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
			e.logger.Debug().Int("listeners", len(e.listeners)).Msg("tick listener unsubscribed")
			return
		}
	}
}

// dispatch delivers one tick to every subscribed listener and returns once all of them
// have finished. A single listener runs inline on the tick goroutine.
//
// Parameters:
//   - dt: seconds elapsed since the previous tick
func (e *engine) dispatch(dt float32) {
	e.mu.Lock()
	listeners := append([]common.TickListener(nil), e.listeners...)
	e.mu.Unlock()

	if len(listeners) == 1 || e.pool == nil {
		for _, l := range listeners {
			l.Update(dt)
		}
		return
	}

	// pool.Wait() blocks until workers idle-exit, so a WaitGroup is the per-tick barrier.
	var wg sync.WaitGroup
	for i, l := range listeners {
		wg.Add(1)
		listener := l
		e.pool.SubmitTask(worker.Task{
			ID: i,
			Do: func() (any, error) {
				defer wg.Done()
				listener.Update(dt)
				return nil, nil
			},
		})
	}
	wg.Wait()
}
