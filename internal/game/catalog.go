package game

import "github.com/appengine-ltd/invview/internal/item"

// Template is a catalog entry that generated inventories draw from.
type Template struct {
	Instance   string
	Name       string
	Value      int
	Damage     int
	Protection int
	WeightKg   float64
	// Size is the mesh box, centered on the origin.
	Size     item.Vec3
	Rotation item.Vec3
	// MaxStack above 1 lets generated stacks hold several units.
	MaxStack int
}

func (t Template) Item() item.Item {
	half := item.Vec3{X: t.Size.X / 2, Y: t.Size.Y / 2, Z: t.Size.Z / 2}
	return item.Item{
		Instance:    t.Instance,
		Name:        t.Name,
		Value:       t.Value,
		Damage:      t.Damage,
		Protection:  t.Protection,
		WeightKg:    t.WeightKg,
		Count:       1,
		Bounds:      item.Bounds{Min: item.Vec3{X: -half.X, Y: -half.Y, Z: -half.Z}, Max: half},
		InvRotation: t.Rotation,
	}
}

var (
	TplShortSword   = Template{Instance: "ItMw_ShortSword01", Name: "Short Sword", Value: 60, Damage: 18, WeightKg: 1.2, Size: item.Vec3{X: 0.1, Y: 0.9, Z: 0.04}, Rotation: item.Vec3{Z: 45}}
	TplBroadSword   = Template{Instance: "ItMw_Schwert", Name: "Broad Sword", Value: 180, Damage: 40, WeightKg: 2.1, Size: item.Vec3{X: 0.14, Y: 1.2, Z: 0.05}, Rotation: item.Vec3{Z: 45}}
	TplWoodClub     = Template{Instance: "ItMw_1h_Bau_Mace", Name: "Wooden Club", Value: 10, Damage: 8, WeightKg: 1.5, Size: item.Vec3{X: 0.15, Y: 0.7, Z: 0.15}, Rotation: item.Vec3{Z: 30}}
	TplHuntingBow   = Template{Instance: "ItRw_Bow_L_01", Name: "Hunting Bow", Value: 90, Damage: 25, WeightKg: 0.9, Size: item.Vec3{X: 0.3, Y: 1.3, Z: 0.05}}
	TplCrossbow     = Template{Instance: "ItRw_Crossbow_L_01", Name: "Light Crossbow", Value: 220, Damage: 45, WeightKg: 3, Size: item.Vec3{X: 0.7, Y: 0.8, Z: 0.15}}
	TplArrow        = Template{Instance: "ItRw_Arrow", Name: "Arrow", Value: 1, WeightKg: 0.02, Size: item.Vec3{X: 0.02, Y: 0.8, Z: 0.02}, Rotation: item.Vec3{Z: 45}, MaxStack: 60}
	TplBolt         = Template{Instance: "ItRw_Bolt", Name: "Bolt", Value: 2, WeightKg: 0.03, Size: item.Vec3{X: 0.02, Y: 0.4, Z: 0.02}, Rotation: item.Vec3{Z: 45}, MaxStack: 40}
	TplLeatherArmor = Template{Instance: "ItAr_Leather_L", Name: "Leather Armor", Value: 250, Protection: 25, WeightKg: 6, Size: item.Vec3{X: 0.6, Y: 0.8, Z: 0.3}}
	TplMilitiaArmor = Template{Instance: "ItAr_Mil_L", Name: "Militia Armor", Value: 600, Protection: 45, WeightKg: 11, Size: item.Vec3{X: 0.65, Y: 0.85, Z: 0.35}}
	TplHealthPotion = Template{Instance: "ItPo_Health_01", Name: "Essence of Healing", Value: 25, WeightKg: 0.3, Size: item.Vec3{X: 0.08, Y: 0.2, Z: 0.08}, MaxStack: 8}
	TplManaPotion   = Template{Instance: "ItPo_Mana_01", Name: "Mana Essence", Value: 25, WeightKg: 0.3, Size: item.Vec3{X: 0.08, Y: 0.2, Z: 0.08}, MaxStack: 8}
	TplBread        = Template{Instance: "ItFo_Bread", Name: "Bread", Value: 8, WeightKg: 0.4, Size: item.Vec3{X: 0.25, Y: 0.12, Z: 0.15}, MaxStack: 6}
	TplMutton       = Template{Instance: "ItFoMutton", Name: "Fried Meat", Value: 6, WeightKg: 0.3, Size: item.Vec3{X: 0.2, Y: 0.1, Z: 0.12}, MaxStack: 10}
	TplHealingHerb  = Template{Instance: "ItPl_Health_Herb_01", Name: "Healing Plant", Value: 10, WeightKg: 0.05, Size: item.Vec3{X: 0.1, Y: 0.25, Z: 0.1}, MaxStack: 12}
	TplFireRune     = Template{Instance: "ItRu_FireBolt", Name: "Fire Arrow Rune", Value: 300, WeightKg: 0.2, Size: item.Vec3{X: 0.12, Y: 0.12, Z: 0.04}}
	TplLightScroll  = Template{Instance: "ItSc_Light", Name: "Light Scroll", Value: 20, WeightKg: 0.05, Size: item.Vec3{X: 0.1, Y: 0.3, Z: 0.1}, MaxStack: 5}
	TplRingOfIron   = Template{Instance: "ItRi_Prot_Edge_01", Name: "Ring of Iron Skin", Value: 400, Protection: 5, WeightKg: 0.01, Size: item.Vec3{X: 0.03, Y: 0.03, Z: 0.01}, Rotation: item.Vec3{X: 60}}
	TplAmuletOfLife = Template{Instance: "ItAm_Hp_01", Name: "Amulet of Life", Value: 500, WeightKg: 0.05, Size: item.Vec3{X: 0.06, Y: 0.1, Z: 0.02}}
	TplLeatherBelt  = Template{Instance: "ItBE_Addon_Leather_01", Name: "Leather Belt", Value: 120, Protection: 3, WeightKg: 0.3, Size: item.Vec3{X: 0.4, Y: 0.06, Z: 0.02}}
	TplLetter       = Template{Instance: "ItWr_Letter_01", Name: "Sealed Letter", Value: 0, WeightKg: 0.01, Size: item.Vec3{X: 0.2, Y: 0.28, Z: 0.01}}
	TplChestKey     = Template{Instance: "ItKe_Key_01", Name: "Chest Key", Value: 0, WeightKg: 0.02, Size: item.Vec3{X: 0.03, Y: 0.1, Z: 0.01}}
	TplGold         = Template{Instance: "ItMi_Gold", Name: "Gold", Value: 1, WeightKg: 0.005, Size: item.Vec3{X: 0.03, Y: 0.03, Z: 0.005}, MaxStack: 500}
	TplSilverCup    = Template{Instance: "ItMi_SilverCup", Name: "Silver Cup", Value: 100, WeightKg: 0.4, Size: item.Vec3{X: 0.1, Y: 0.16, Z: 0.1}}
	TplTorch        = Template{Instance: "ItLsTorch", Name: "Torch", Value: 2, WeightKg: 0.5, Size: item.Vec3{X: 0.06, Y: 0.5, Z: 0.06}, Rotation: item.Vec3{Z: 45}, MaxStack: 10}
	TplWolfFur      = Template{Instance: "ItAt_WolfFur", Name: "Wolf Fur", Value: 40, WeightKg: 1, Size: item.Vec3{X: 0.5, Y: 0.05, Z: 0.4}, MaxStack: 5}
	TplLockpick     = Template{Instance: "ItKe_Lockpick", Name: "Lockpick", Value: 10, WeightKg: 0.01, Size: item.Vec3{X: 0.01, Y: 0.1, Z: 0.005}, MaxStack: 20}
	TplPan          = Template{Instance: "ItMi_Pan", Name: "Pan", Value: 20, WeightKg: 1.1, Size: item.Vec3{X: 0.3, Y: 0.05, Z: 0.5}}
)

func Catalog() []Template {
	return []Template{
		TplShortSword,
		TplBroadSword,
		TplWoodClub,
		TplHuntingBow,
		TplCrossbow,
		TplArrow,
		TplBolt,
		TplLeatherArmor,
		TplMilitiaArmor,
		TplHealthPotion,
		TplManaPotion,
		TplBread,
		TplMutton,
		TplHealingHerb,
		TplFireRune,
		TplLightScroll,
		TplRingOfIron,
		TplAmuletOfLife,
		TplLeatherBelt,
		TplLetter,
		TplChestKey,
		TplGold,
		TplSilverCup,
		TplTorch,
		TplWolfFur,
		TplLockpick,
		TplPan,
	}
}
