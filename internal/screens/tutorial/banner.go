package tutorial

import (
	"charm.land/lipgloss/v2"

	"github.com/feedrank/feedrank/internal/ui/theme"
)

const bannerArt = `
 ███████╗███████╗███████╗██████╗     ██████╗  █████╗ ███╗   ██╗██╗  ██╗
 ██╔════╝██╔════╝██╔════╝██╔══██╗    ██╔══██╗██╔══██╗████╗  ██║██║ ██╔╝
 █████╗  █████╗  █████╗  ██║  ██║    ██████╔╝███████║██╔██╗ ██║█████╔╝
 ██╔══╝  ██╔══╝  ██╔══╝  ██║  ██║    ██╔══██╗██╔══██║██║╚██╗██║██╔═██╗
 ██║     ███████╗███████╗██████╔╝    ██║  ██║██║  ██║██║ ╚████║██║  ██╗
 ╚═╝     ╚══════╝╚══════╝╚═════╝     ╚═╝  ╚═╝╚═╝  ╚═╝╚═╝  ╚═══╝╚═╝  ╚═╝`

const bannerCompact = "F E E D   R A N K"

// RenderBanner returns the FEED RANK banner styled in the primary color.
// Uses a compact fallback for terminals narrower than 76 columns.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 76 {
		return style.Render(bannerCompact)
	}
	return style.Render(bannerArt)
}
