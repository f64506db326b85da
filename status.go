package serkey

import (
	"fmt"

	"github.com/macplus/serkey/internal/utils"
)

const captionPrefix = "Mac Plus serial keyboard"

func capsLockCaption(locked bool) string {
	if locked {
		return captionPrefix + ": Caps Lock on"
	}
	return captionPrefix + ": Caps Lock off"
}

func procTitle(port string, locked bool) string {
	state := "off"
	if locked {
		state = "on"
	}
	return fmt.Sprintf("serkey %s [caps lock %s]", port, state)
}

// statusNotifier mirrors the Mac's Caps Lock state to whatever the user can
// see. It has no effect on the bytes sent.
type statusNotifier struct {
	port    string
	caption func(string)
}

func newStatusNotifier(port string) *statusNotifier {
	return &statusNotifier{port: port}
}

func (n *statusNotifier) capsLockChanged(locked bool) {
	if n.caption != nil {
		n.caption(capsLockCaption(locked))
	}
	utils.SetProcTitle(procTitle(n.port, locked))
	if locked {
		capsLockLocked.Set(1)
	} else {
		capsLockLocked.Set(0)
	}
	statusLogger.Info().Bool("locked", locked).Msg(capsLockCaption(locked))
}
