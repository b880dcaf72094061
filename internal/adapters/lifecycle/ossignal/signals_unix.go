//go:build !windows

package ossignal

import (
	"os"
	"syscall"

	"github.com/bnema/gamekit/internal/domain"
)

var translations = map[os.Signal]domain.LifecycleSignal{
	syscall.SIGUSR1: domain.SignalSuspend,
	syscall.SIGCONT: domain.SignalResume,
	os.Interrupt:    domain.SignalTerminate,
	syscall.SIGTERM: domain.SignalTerminate,
}
