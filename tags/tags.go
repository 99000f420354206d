package tags

import "github.com/yohamta/donburi"

var (
	Player      = donburi.NewTag().SetName("Player")
	Enemy       = donburi.NewTag().SetName("Enemy")
	Platform    = donburi.NewTag().SetName("Platform")
	Collectible = donburi.NewTag().SetName("Collectible")
	PowerUp     = donburi.NewTag().SetName("PowerUp")
	Particle    = donburi.NewTag().SetName("Particle")
)

// Resolv tags for physics objects
const (
	ResolvPlayer   = "player"
	ResolvEnemy    = "enemy"
	ResolvPlatform = "platform"
)
