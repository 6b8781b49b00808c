package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/chatshell/internal/application/port"
)

// ConfigRenderer renders config command output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPath renders the config file location and whether it exists.
func (r *ConfigRenderer) RenderPath(path string, exists bool) string {
	status := r.theme.SuccessStyle.Render(IconCheck + " exists")
	if !exists {
		status = r.theme.WarningStyle.Render(IconWarning + " not created yet, run chatshell once")
	}
	return fmt.Sprintf("\n  %s Config %s\n  %s\n",
		r.theme.Key.Render(IconConfig),
		r.theme.Subtle.Render(path),
		status,
	)
}

// RenderUpToDate is shown when no migration is needed.
func (r *ConfigRenderer) RenderUpToDate() string {
	return fmt.Sprintf("  %s %s\n",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Title.Render("Config is up to date"),
	)
}

// RenderMigrationStatus lists missing and unknown keys.
func (r *ConfigRenderer) RenderMigrationStatus(missing []port.KeyInfo, unknown []string) string {
	var sb strings.Builder

	if len(missing) > 0 {
		sb.WriteString(fmt.Sprintf("\n  Missing settings (%d):\n", len(missing)))
		for _, key := range missing {
			sb.WriteString(fmt.Sprintf("    %s %s %s\n",
				r.theme.SuccessStyle.Render(IconPlus),
				r.theme.Highlight.Render(key.Key),
				r.theme.Subtle.Render(fmt.Sprintf("(%s, default %s)", key.Type, key.DefaultValue)),
			))
		}
	}

	if len(unknown) > 0 {
		sb.WriteString(fmt.Sprintf("\n  Unknown settings (%d):\n", len(unknown)))
		for _, key := range unknown {
			sb.WriteString(fmt.Sprintf("    %s %s\n",
				r.theme.WarningStyle.Render(IconMinus),
				r.theme.Subtle.Render(key),
			))
		}
	}

	sb.WriteString(fmt.Sprintf("\n  %s Run %s to update the file\n",
		r.theme.Key.Render(IconInfo),
		r.theme.Highlight.Render("chatshell config migrate"),
	))
	return sb.String()
}

// RenderMigrated summarizes an applied migration.
func (r *ConfigRenderer) RenderMigrated(path string, applied []string) string {
	if len(applied) == 0 {
		return r.RenderUpToDate()
	}
	return fmt.Sprintf("  %s Updated %s (%d changes)\n",
		r.theme.SuccessStyle.Render(IconCheck),
		r.theme.Subtle.Render(path),
		len(applied),
	)
}

// RenderTOML highlights section headers of a TOML document.
func (r *ConfigRenderer) RenderTOML(data []byte) string {
	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		if strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]") {
			lines[i] = r.theme.Highlight.Render(line)
		}
	}
	return strings.Join(lines, "\n") + "\n"
}

// RenderError renders an error line.
func (r *ConfigRenderer) RenderError(err error) string {
	return lipgloss.JoinHorizontal(lipgloss.Top,
		"  ",
		r.theme.ErrorStyle.Render(IconX+" "),
		r.theme.ErrorStyle.Render(err.Error()),
	)
}
