package home

import (
	"charm.land/lipgloss/v2"

	"github.com/kupu-app/kupu/internal/ui/theme"
)

// MascotVariant selects which kiwi to draw.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default green
	MascotCelebrating                      // Gold, daily goal reached
	MascotAlert                            // Rose, streak ends tonight
)

const mascotIdle = `  ___
 (o  >
 / ) )
/_/_/
  " "`

const mascotCelebrating = ` \___/
 (^  >
 / ) )
/_/_/
  " "`

const mascotAlert = `  ___  !
 (o  >
 / ) )
/_/_/
  " "`

// RenderMascot returns the kiwi art for the given variant.
func RenderMascot(variant ...MascotVariant) string {
	v := MascotIdle
	if len(variant) > 0 {
		v = variant[0]
	}

	var art string
	var fg = theme.Primary

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.Accent
	case MascotAlert:
		art = mascotAlert
		fg = theme.Error
	default:
		art = mascotIdle
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
