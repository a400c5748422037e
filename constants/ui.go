package constants

import "time"

// Notification Constants
const (
	// NotificationDuration is the default display time of a toast
	NotificationDuration = 3 * time.Second

	// NotificationMaxActive caps the number of toasts kept on screen
	NotificationMaxActive = 4
)

// Input Constants
const (
	// KeyHoldWindow is how long a pressed key counts as held without a repeat
	// Terminals report no key releases, so releases are synthesized after this window
	KeyHoldWindow = 150 * time.Millisecond

	// KeyHoldInitialWindow covers the delay before a terminal starts auto-repeating
	KeyHoldInitialWindow = 500 * time.Millisecond
)

// Layout Constants
const (
	// SnakeCellWidth is the number of terminal columns per snake cell
	SnakeCellWidth = 2

	// PongPixelsPerColumn, PongPixelsPerRow scale the court onto terminal cells
	PongPixelsPerColumn = 10
	PongPixelsPerRow    = 20

	// MemoryCardWidth, MemoryCardHeight are the card dimensions in cells, gap excluded
	MemoryCardWidth  = 7
	MemoryCardHeight = 3
	MemoryCardGap    = 1

	// HeaderHeight is the number of rows used by the title and progress header
	HeaderHeight = 2

	// ToastWidth is the fixed width of a toast box
	ToastWidth = 36
)
