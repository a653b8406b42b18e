package game

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"

	"github.com/appengine-ltd/invview/internal/inventory"
	"github.com/appengine-ltd/invview/internal/item"
	"github.com/appengine-ltd/invview/internal/logging"
)

func seededRNG(seed int64) *rand.Rand {
	// Non-cryptographic PRNG is intentional for reproducible demo worlds.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "a"), seedWord(seed, "b")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

var containerNames = []string{"Chest", "Bandit Corpse", "Barrel", "Weapon Rack", "Hunter's Pack", "Shelf"}

// Generate builds a reproducible demo world: player 1 and containers
// numbered from 2, each holding up to perEntity stacks from the catalog.
func Generate(seed int64, containers, perEntity int, policy *inventory.Policy, log *logging.Logger) (*World, error) {
	if containers < 0 || perEntity < 1 {
		return nil, fmt.Errorf("generate: need containers >= 0 and perEntity >= 1, got %d/%d", containers, perEntity)
	}
	rng := seededRNG(seed)
	catalog := Catalog()

	fill := func() []item.Item {
		n := 1 + rng.IntN(perEntity)
		out := make([]item.Item, 0, n)
		for i := 0; i < n; i++ {
			tpl := catalog[rng.IntN(len(catalog))]
			it := tpl.Item()
			if tpl.MaxStack > 1 {
				it.Count = 1 + rng.IntN(tpl.MaxStack)
			}
			out = append(out, it)
		}
		return out
	}

	player := Entity{ID: 1, Name: "Hero", Items: fill()}
	if len(player.Items) > 0 {
		player.Items[0].Flags |= item.FlagQuest
	}
	entities := []Entity{player}
	for i := 0; i < containers; i++ {
		entities = append(entities, Entity{
			ID:    item.EntityID(i + 2),
			Name:  fmt.Sprintf("%s %d", containerNames[i%len(containerNames)], i+1),
			Items: fill(),
		})
	}
	return NewWorld(player.ID, entities, policy, log)
}
