package storage

import (
	"context"

	"github.com/shopspring/decimal"

	"skindrop/internal/models"
)

// SeedDefaultCases наполняет пустой каталог стартовыми кейсами. Если каталог
// не пуст, ничего не делает.
func (s *Store) SeedDefaultCases(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.state.Cases) > 0 {
		return nil
	}

	s.state.Cases = defaultCases()
	return s.persistLocked()
}

func defaultCases() []models.Case {
	return []models.Case{
		{
			ID:          1,
			Name:        "Dust II Starter",
			Description: "Fast budget case with clean starter skins",
			PriceCoins:  250,
			ImageURL:    "https://images.unsplash.com/photo-1579373903781-fd5c0c30c4cd?auto=format&fit=crop&w=900&q=80",
			Active:      true,
			Items: []models.CaseItem{
				{SkinName: "Glock-18 | Candy Apple", ImageURL: "https://images.unsplash.com/photo-1612287230202-1ff1d85d1bdf?auto=format&fit=crop&w=600&q=80", Rarity: "common", DropWeight: 45, SteamValue: decimal.NewFromFloat(1.8)},
				{SkinName: "MP9 | Dart", ImageURL: "https://images.unsplash.com/photo-1560253023-3ec5d502959f?auto=format&fit=crop&w=600&q=80", Rarity: "common", DropWeight: 35, SteamValue: decimal.NewFromFloat(2.2)},
				{SkinName: "AK-47 | Slate", ImageURL: "https://images.unsplash.com/photo-1548686304-89d188a80029?auto=format&fit=crop&w=600&q=80", Rarity: "uncommon", DropWeight: 15, SteamValue: decimal.NewFromFloat(6.5)},
				{SkinName: "M4A1-S | Nightmare", ImageURL: "https://images.unsplash.com/photo-1514924013411-cbf25faa35bb?auto=format&fit=crop&w=600&q=80", Rarity: "rare", DropWeight: 5, SteamValue: decimal.NewFromInt(24)},
			},
		},
		{
			ID:          2,
			Name:        "Dragon Fire Elite",
			Description: "Premium flame collection with epic drop potential",
			PriceCoins:  850,
			ImageURL:    "https://images.unsplash.com/photo-1511512578047-dfb367046420?auto=format&fit=crop&w=900&q=80",
			Active:      true,
			Items: []models.CaseItem{
				{SkinName: "AWP | Neo-Noir", ImageURL: "https://images.unsplash.com/photo-1552820728-8b83bb6b773f?auto=format&fit=crop&w=600&q=80", Rarity: "uncommon", DropWeight: 40, SteamValue: decimal.NewFromInt(20)},
				{SkinName: "USP-S | Kill Confirmed", ImageURL: "https://images.unsplash.com/photo-1556438064-2d7646166914?auto=format&fit=crop&w=600&q=80", Rarity: "rare", DropWeight: 28, SteamValue: decimal.NewFromInt(45)},
				{SkinName: "AK-47 | Neon Rider", ImageURL: "https://images.unsplash.com/photo-1586183189334-2703f1b6db6d?auto=format&fit=crop&w=600&q=80", Rarity: "epic", DropWeight: 20, SteamValue: decimal.NewFromInt(80)},
				{SkinName: "M4A4 | Howl (Replica)", ImageURL: "https://images.unsplash.com/photo-1593305841991-05c297ba4575?auto=format&fit=crop&w=600&q=80", Rarity: "legendary", DropWeight: 12, SteamValue: decimal.NewFromInt(180)},
			},
		},
		{
			ID:          3,
			Name:        "Night Market",
			Description: "Balanced case with stylish purple and pink finishes",
			PriceCoins:  500,
			ImageURL:    "https://images.unsplash.com/photo-1526374965328-7f61d4dc18c5?auto=format&fit=crop&w=900&q=80",
			Active:      true,
			Items: []models.CaseItem{
				{SkinName: "Desert Eagle | Trigger Discipline", ImageURL: "https://images.unsplash.com/photo-1603481588273-2f908a9a7a1b?auto=format&fit=crop&w=600&q=80", Rarity: "uncommon", DropWeight: 40, SteamValue: decimal.NewFromInt(11)},
				{SkinName: "MAC-10 | Neon Rider", ImageURL: "https://images.unsplash.com/photo-1563089145-599997674d42?auto=format&fit=crop&w=600&q=80", Rarity: "rare", DropWeight: 30, SteamValue: decimal.NewFromInt(18)},
				{SkinName: "P90 | Asiimov", ImageURL: "https://images.unsplash.com/photo-1511882150382-421056c89033?auto=format&fit=crop&w=600&q=80", Rarity: "epic", DropWeight: 20, SteamValue: decimal.NewFromInt(35)},
				{SkinName: "AK-47 | Bloodsport", ImageURL: "https://images.unsplash.com/photo-1560250097-0b93528c311a?auto=format&fit=crop&w=600&q=80", Rarity: "legendary", DropWeight: 10, SteamValue: decimal.NewFromInt(95)},
			},
		},
	}
}
