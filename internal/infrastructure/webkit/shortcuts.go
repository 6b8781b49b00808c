package webkit

// GDK key values for the keys the shell reacts to.
const (
	gdkKeyEscape = 0xff1b
	gdkKeyLeft   = 0xff51
	gdkKeyF5     = 0xffc2
	gdkKeyBack   = 0x1008ff26
)

// mouseButtonBack is the side "back" button on most mice.
const mouseButtonBack = 8

// shortcutAction is what a key press asks the shell to do.
type shortcutAction int

const (
	shortcutNone shortcutAction = iota
	shortcutReload
	shortcutBack
)

func (a shortcutAction) String() string {
	switch a {
	case shortcutReload:
		return "reload"
	case shortcutBack:
		return "back"
	default:
		return "none"
	}
}

// shortcutFor maps a key press to an action. Escape is left to the page,
// which uses it to close its own menus and dialogs.
func shortcutFor(keyval uint, ctrl, alt bool) shortcutAction {
	switch keyval {
	case 'r', 'R':
		if ctrl && !alt {
			return shortcutReload
		}
	case gdkKeyF5:
		return shortcutReload
	case gdkKeyBack:
		if !ctrl && !alt {
			return shortcutBack
		}
	case gdkKeyLeft:
		if alt && !ctrl {
			return shortcutBack
		}
	}
	return shortcutNone
}
