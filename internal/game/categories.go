package game

import "github.com/ekazakov/tiersort/internal/models"

// StandardCategories is the tier breakdown for full squads (20 players)
var StandardCategories = []models.Category{
	{Name: "goat", Color: "#0EA94B", Slots: 2},
	{Name: "class", Color: "#94CC7A", Slots: 6},
	{Name: "decent", Color: "#E6A324", Slots: 6},
	{Name: "bench", Color: "#E13826", Slots: 6},
}

// CompactCategories is the smaller-slot variant for squads of 10 or fewer
var CompactCategories = []models.Category{
	{Name: "goat", Color: "#0EA94B", Slots: 1},
	{Name: "class", Color: "#94CC7A", Slots: 3},
	{Name: "decent", Color: "#E6A324", Slots: 3},
	{Name: "bench", Color: "#E13826", Slots: 3},
}

// CategoriesFor picks the category preset for a squad size
func CategoriesFor(playerCount int) []models.Category {
	if playerCount <= 10 {
		return CompactCategories
	}
	return StandardCategories
}
