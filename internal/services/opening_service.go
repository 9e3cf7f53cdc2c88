package services

import (
	"context"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"skindrop/internal/models"
	"skindrop/internal/storage"
	"skindrop/internal/utils"
)

// OpenResult - результат открытия кейса: награда, созданный предмет
// инвентаря и пользователь с обновлённым балансом.
type OpenResult struct {
	Reward models.CaseItem
	Item   models.InventoryItem
	User   *models.User
}

// OpeningService описывает транзакцию открытия кейса.
type OpeningService interface {
	Open(ctx context.Context, externalID string, caseID int64) (*OpenResult, error)
}

type OpeningServiceImpl struct {
	storage OpeningStorage
	roll    func() float64
}

// NewOpeningService создаёт сервис открытия кейсов. roll - источник
// равномерных значений в [0, 1); nil включает math/rand.
func NewOpeningService(storage OpeningStorage, roll func() float64) *OpeningServiceImpl {
	if roll == nil {
		roll = rand.Float64
	}
	return &OpeningServiceImpl{storage: storage, roll: roll}
}

// Open выполняет покупку и розыгрыш: проверяет баланс, разыгрывает награду по
// весам, списывает цену и добавляет запись истории вместе с предметом
// инвентаря. До прохождения всех проверок состояние не меняется.
func (s *OpeningServiceImpl) Open(ctx context.Context, externalID string, caseID int64) (*OpenResult, error) {
	user, err := s.storage.UserByTelegramID(ctx, externalID)
	if err != nil {
		return nil, err
	}

	selected, err := s.storage.ActiveCaseByID(ctx, caseID)
	if err != nil {
		return nil, err
	}
	if len(selected.Items) == 0 {
		return nil, storage.ErrCaseNotFound
	}

	if user.BalanceCoins < selected.PriceCoins {
		return nil, storage.ErrInsufficientBalance
	}

	reward := s.pickReward(selected.Items)

	// Запись истории и предмет инвентаря несут полный снимок награды, чтобы
	// последующие правки каталога не меняли историю
	now := time.Now()
	opening := models.Opening{
		ID:         uuid.New(),
		UserID:     user.ID,
		CaseID:     selected.ID,
		CaseName:   selected.Name,
		Spent:      selected.PriceCoins,
		SkinName:   reward.SkinName,
		ImageURL:   reward.ImageURL,
		Rarity:     reward.Rarity,
		SteamValue: reward.SteamValue,
		OpenedAt:   now,
	}
	item := models.InventoryItem{
		ID:             uuid.New(),
		UserID:         user.ID,
		SkinName:       reward.SkinName,
		ImageURL:       reward.ImageURL,
		Rarity:         reward.Rarity,
		SteamValue:     reward.SteamValue,
		SourceCaseID:   selected.ID,
		SourceCaseName: selected.Name,
		Status:         models.InventoryStatusAvailable,
		AcquiredAt:     now,
	}

	updated, err := s.storage.RecordOpening(ctx, opening, item)
	if err != nil {
		return nil, err
	}

	return &OpenResult{Reward: reward, Item: item, User: updated}, nil
}

// pickReward разыгрывает награду: равномерное значение в [0, сумма весов)
// прогоняется кумулятивным проходом по списку предметов.
func (s *OpeningServiceImpl) pickReward(items []models.CaseItem) models.CaseItem {
	weights := make([]float64, len(items))
	var total float64
	for i, item := range items {
		weights[i] = item.DropWeight
		total += item.DropWeight
	}
	return items[utils.WeightedIndex(weights, s.roll()*total)]
}
