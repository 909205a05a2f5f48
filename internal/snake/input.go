package snake

import "github.com/vovakirdan/tui-snake/internal/core"

// Router funnels keyboard actions, swipes and on-screen buttons into the
// controller. It holds no state of its own.
type Router struct {
	ctrl *Controller
}

// NewRouter creates a router for the given controller.
func NewRouter(ctrl *Controller) Router {
	return Router{ctrl: ctrl}
}

// Action handles a mapped key. It reports whether the key was consumed, in
// which case the platform should suppress any default handling.
func (r Router) Action(a core.Action) bool {
	if a == core.ActionConfirm {
		// Start/restart only while the overlay is up.
		if r.ctrl.Phase() == PhaseRunning {
			return false
		}
		if err := r.ctrl.Start(); err != nil {
			r.ctrl.log.Warn("start refused", "error", err)
		}
		return true
	}
	if a.IsDirection() {
		r.ctrl.RequestDirection(actionDirections[a])
		return true
	}
	return false
}

var actionDirections = map[core.Action]Direction{
	core.ActionUp:    DirUp,
	core.ActionDown:  DirDown,
	core.ActionLeft:  DirLeft,
	core.ActionRight: DirRight,
}

// Swipe turns a gesture delta into a direction request. The axis with the
// larger magnitude wins; there is no minimum distance. A tie, including a
// plain tap, changes nothing.
func (r Router) Swipe(dx, dy int) bool {
	d, ok := SwipeDirection(dx, dy)
	if !ok {
		return false
	}
	return r.ctrl.RequestDirection(d)
}

// Button handles an on-screen direction button.
func (r Router) Button(d Direction) bool {
	return r.ctrl.RequestDirection(d)
}

// SwipeDirection classifies a gesture delta.
func SwipeDirection(dx, dy int) (Direction, bool) {
	ax, ay := core.Abs(dx), core.Abs(dy)
	switch {
	case ax > ay && dx > 0:
		return DirRight, true
	case ax > ay:
		return DirLeft, true
	case ay > ax && dy > 0:
		return DirDown, true
	case ay > ax:
		return DirUp, true
	default:
		return DirRight, false
	}
}
