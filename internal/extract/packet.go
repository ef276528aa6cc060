package extract

import "github.com/mvp-joe/datagen/internal/model"

// PacketType is the spawn packet an entity type is sent with.
type PacketType int

const (
	PacketBase PacketType = iota
	PacketExperienceOrb
	PacketPainting
	PacketLiving
	PacketPlayer
)

var packetNames = [...]string{
	PacketBase:          "BASE",
	PacketExperienceOrb: "EXPERIENCE_ORB",
	PacketPainting:      "PAINTING",
	PacketLiving:        "LIVING",
	PacketPlayer:        "PLAYER",
}

func (p PacketType) String() string {
	if p < 0 || int(p) >= len(packetNames) {
		return "BASE"
	}
	return packetNames[p]
}

// packetPrecedence lists traits from highest to lowest priority. The first
// trait an entity carries decides its packet type.
var packetPrecedence = []struct {
	trait  model.EntityTrait
	packet PacketType
}{
	{model.TraitPlayer, PacketPlayer},
	{model.TraitLiving, PacketLiving},
	{model.TraitPainting, PacketPainting},
	{model.TraitExperienceOrb, PacketExperienceOrb},
}

// PacketTypeOf classifies an entity type by its traits.
func PacketTypeOf(traits model.EntityTrait) PacketType {
	for _, p := range packetPrecedence {
		if traits.Has(p.trait) {
			return p.packet
		}
	}
	return PacketBase
}
