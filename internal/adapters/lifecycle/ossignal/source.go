// Package ossignal turns operating system signals into lifecycle signals.
package ossignal

import (
	"context"
	"os"
	"os/signal"
	"sync"

	"github.com/bnema/gamekit/internal/domain"
)

type Source struct {
	notify func(c chan<- os.Signal, sig ...os.Signal)
	stop   func(c chan<- os.Signal)
}

func New() *Source {
	return &Source{notify: signal.Notify, stop: signal.Stop}
}

// Translate maps an OS signal to the lifecycle signal it stands for.
func Translate(sig os.Signal) (domain.LifecycleSignal, bool) {
	lifecycleSignal, ok := translations[sig]
	return lifecycleSignal, ok
}

// Watched lists the OS signals Watch subscribes to.
func Watched() []os.Signal {
	watched := make([]os.Signal, 0, len(translations))
	for sig := range translations {
		watched = append(watched, sig)
	}
	return watched
}

// Watch relays translated signals to out until ctx is done or the returned
// stop function is called. Stop unsubscribes and waits for the relay to exit.
func (s *Source) Watch(ctx context.Context, out chan<- domain.LifecycleSignal) func() {
	incoming := make(chan os.Signal, 4)
	s.notify(incoming, Watched()...)

	ctx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-ctx.Done():
				return
			case sig := <-incoming:
				lifecycleSignal, ok := Translate(sig)
				if !ok {
					continue
				}
				select {
				case out <- lifecycleSignal:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() {
			s.stop(incoming)
			cancel()
			wg.Wait()
		})
	}
}
