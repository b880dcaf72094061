//go:build windows

package ossignal

import (
	"os"

	"github.com/bnema/gamekit/internal/domain"
)

var translations = map[os.Signal]domain.LifecycleSignal{
	os.Interrupt: domain.SignalTerminate,
}
