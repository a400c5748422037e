package constants

import "time"

// Loop Timing Constants
const (
	// FrameUpdateInterval is the rendering frame rate interval (~60 FPS)
	FrameUpdateInterval = 16 * time.Millisecond

	// LoopTaskBuffer is the capacity of the event loop task queue
	LoopTaskBuffer = 256
)

// Snake Constants
const (
	// SnakeTickInterval is the fixed snake update cadence
	SnakeTickInterval = 100 * time.Millisecond

	// SnakeGridSize is the number of cells per side of the square world
	SnakeGridSize = 20

	// SnakeStartX, SnakeStartY is the head cell at the beginning of a round
	SnakeStartX = 10
	SnakeStartY = 10

	// SnakeInitialFoodX, SnakeInitialFoodY is the food cell shown before the first start
	SnakeInitialFoodX = 5
	SnakeInitialFoodY = 5

	// SnakeFoodReward is the score and experience granted per food
	SnakeFoodReward = 10

	// SnakeFoodPlacementAttempts bounds the re-roll when food lands on the body
	SnakeFoodPlacementAttempts = 32
)

// Pong Constants, expressed in court pixels
const (
	// PongTickInterval is the 60 Hz physics cadence
	PongTickInterval = time.Second / 60

	PongCourtWidth  = 600.0
	PongCourtHeight = 400.0

	PongPaddleWidth  = 10.0
	PongPaddleHeight = 100.0

	// PongPlayerX is the left edge of the player paddle
	PongPlayerX = 10.0
	// PongOpponentX is the left edge of the opponent paddle
	PongOpponentX = PongCourtWidth - 20.0

	PongPlayerSpeed   = 8.0
	PongOpponentSpeed = 5.0

	PongBallRadius = 8.0
	PongBallSpeedX = 4.0
	PongBallSpeedY = 4.0

	// PongHitReward is the score and experience granted per player paddle contact
	PongHitReward = 10
)

// Memory Constants
const (
	// MemoryColumns is the card grid width
	MemoryColumns = 4

	// MemoryRevealDelay is the pause between the second flip and match evaluation
	MemoryRevealDelay = 800 * time.Millisecond

	// MemoryWinDelay is the pause between the final match and the win notice
	MemoryWinDelay = 500 * time.Millisecond

	// MemoryMatchReward is the score and experience granted per matched pair
	MemoryMatchReward = 20
)

// Typing Constants
const (
	// TypingRotateDelay is the pause before the next snippet after a completion
	TypingRotateDelay = 1500 * time.Millisecond

	// TypingCharsPerWord is the conventional word length for WPM
	TypingCharsPerWord = 5

	// TypingMinElapsed bounds the elapsed time used for WPM to avoid division by zero
	TypingMinElapsed = time.Second
)
