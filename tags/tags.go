package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Pad    = donburi.NewTag().SetName("Pad")
)

// Resolv tags for the XZ collision space
const (
	ResolvBlock  = "block"
	ResolvPlayer = "player"
	ResolvPad    = "pad"
)
