package styles

// Nerd Font icons (requires a Nerd Font to display correctly)
const (
	IconVersion   = "" // tag
	IconGitBranch = "" // git branch
	IconCalendar  = "" // calendar
	IconGo        = "" // go gopher
	IconGithub    = "" // github
	IconHeart     = "" // heart
	IconGlobe     = "" // page url

	IconCheck   = ""
	IconX       = ""
	IconWarning = ""
	IconInfo    = ""
	IconConfig  = ""
	IconPlus    = ""
	IconMinus   = ""
)
