package welcome

import (
	"charm.land/lipgloss/v2"

	"github.com/kupu-app/kupu/internal/ui/theme"
)

const bannerArt = ` ██╗  ██╗██╗   ██╗██████╗ ██╗   ██╗
 ██║ ██╔╝██║   ██║██╔══██╗██║   ██║
 █████╔╝ ██║   ██║██████╔╝██║   ██║
 ██╔═██╗ ██║   ██║██╔═══╝ ██║   ██║
 ██║  ██╗╚██████╔╝██║     ╚██████╔╝
 ╚═╝  ╚═╝ ╚═════╝ ╚═╝      ╚═════╝`

const bannerCompact = "K · U · P · U"

// RenderBanner returns the KUPU banner styled in the primary color.
// Uses a compact fallback for narrow areas or when compact is set.
func RenderBanner(width int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if compact || width < 40 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
