package telegram

import "sync"

// Dispatcher выполняет задачи одного ключа строго по очереди,
// задачи разных ключей — параллельно.
type Dispatcher struct {
	mu     sync.Mutex
	queues map[int64][]func()
	wg     sync.WaitGroup
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{queues: make(map[int64][]func())}
}

// Dispatch ставит fn в очередь key. Для каждого непустого ключа
// работает не больше одной горутины.
func (d *Dispatcher) Dispatch(key int64, fn func()) {
	d.mu.Lock()
	q, running := d.queues[key]
	d.queues[key] = append(q, fn)
	if !running {
		d.wg.Add(1)
	}
	d.mu.Unlock()
	if !running {
		go d.drain(key)
	}
}

func (d *Dispatcher) drain(key int64) {
	defer d.wg.Done()
	for {
		d.mu.Lock()
		q := d.queues[key]
		if len(q) == 0 {
			delete(d.queues, key)
			d.mu.Unlock()
			return
		}
		fn := q[0]
		d.queues[key] = q[1:]
		d.mu.Unlock()
		fn()
	}
}

// Wait ждёт, пока все очереди опустеют.
func (d *Dispatcher) Wait() { d.wg.Wait() }
