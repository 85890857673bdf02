package config

// Point is a position in level pixels
type Point struct {
	X float64
	Y float64
}

// LevelData is what a level map contributes to the simulation:
// collision tiles in row-major order plus the two spawn points.
type LevelData struct {
	Index      int
	Width      float64
	Height     float64
	TileWidth  float64
	TileHeight float64

	// Collisions holds the top-left corner of every solid tile
	Collisions []Point

	PlayerSpawn Point
	DoorSpawn   Point
}
