package config

// GameConfig is the root config for game.json
type GameConfig struct {
	Display  DisplayConfig  `json:"display"`
	Physics  PhysicsConfig  `json:"physics"`
	Movement MovementConfig `json:"movement"`
	Dialogue DialogueConfig `json:"dialogue"`
}

type DisplayConfig struct {
	Title        string `json:"title"`
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Scale        int    `json:"scale"`
	Framerate    int    `json:"framerate"`
}

// PhysicsConfig values are in tiles and seconds
type PhysicsConfig struct {
	Gravity      float64 `json:"gravity"`
	MaxFallSpeed float64 `json:"maxFallSpeed"`
	JumpForce    float64 `json:"jumpForce"`
}

// MovementConfig holds walking speeds in tiles per second
type MovementConfig struct {
	Walk        float64 `json:"walk"`
	Wounded     float64 `json:"wounded"`
	Sad         float64 `json:"sad"`
	Rage        float64 `json:"rage"`
	Item        float64 `json:"item"`
	Mario       float64 `json:"mario"`
	MarioJump   float64 `json:"marioJump"`
	StompBounce float64 `json:"stompBounce"`
}

type DialogueConfig struct {
	CharsPerSecond float64 `json:"charsPerSecond"`
}
