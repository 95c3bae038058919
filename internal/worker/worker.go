// File: internal/worker/worker.go
package worker

import "sync"

// Task is a unit of background work.
type Task func()

// Pool runs submitted tasks on a fixed set of goroutines.
type Pool interface {
	Submit(Task)
	Stop()
}

// NewPool starts n workers draining a queue of the given depth.
// n <= 0 defaults to 1, queue < 0 to 0 (unbuffered).
func NewPool(n, queue int) Pool {
	if n <= 0 {
		n = 1
	}
	if queue < 0 {
		queue = 0
	}
	p := &pool{jobs: make(chan Task, queue)}
	p.wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				if job != nil {
					job()
				}
			}
		}()
	}
	return p
}

type pool struct {
	jobs chan Task
	wg   sync.WaitGroup
}

func (p *pool) Submit(t Task) {
	p.jobs <- t
}

// Stop closes the queue and waits for in-flight tasks to finish.
func (p *pool) Stop() {
	close(p.jobs)
	p.wg.Wait()
}
