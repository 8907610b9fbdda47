// Package notifier реализует рассылку "что-то изменилось" без полезной нагрузки.
package notifier

import "sync"

// Notifier хранит подписчиков и синхронно вызывает их при Broadcast
type Notifier struct {
	mu     sync.Mutex
	nextID uint64
	subs   map[uint64]func()
	order  []uint64
}

func New() *Notifier {
	return &Notifier{subs: make(map[uint64]func())}
}

// Subscribe регистрирует колбэк и возвращает функцию отписки.
// Повторный вызов отписки ничего не делает.
func (n *Notifier) Subscribe(fn func()) (unsubscribe func()) {
	n.mu.Lock()
	n.nextID++
	id := n.nextID
	n.subs[id] = fn
	n.order = append(n.order, id)
	n.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			n.mu.Lock()
			defer n.mu.Unlock()
			delete(n.subs, id)
			for i, subID := range n.order {
				if subID == id {
					n.order = append(n.order[:i], n.order[i+1:]...)
					break
				}
			}
		})
	}
}

// Broadcast вызывает всех подписчиков и возвращается только после последнего.
// Список снимается под блокировкой, сами вызовы идут без нее, так что
// подписчик может отписаться или прочитать кэш прямо из колбэка.
func (n *Notifier) Broadcast() {
	n.mu.Lock()
	callbacks := make([]func(), 0, len(n.order))
	for _, id := range n.order {
		callbacks = append(callbacks, n.subs[id])
	}
	n.mu.Unlock()

	for _, fn := range callbacks {
		fn()
	}
}

// Len возвращает число активных подписчиков
func (n *Notifier) Len() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.subs)
}
