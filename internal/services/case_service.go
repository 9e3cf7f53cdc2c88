package services

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"skindrop/internal/models"
)

var (
	ErrEmptyCaseName = errors.New("case name is required")
	ErrNoCaseItems   = errors.New("case must contain at least one item")
)

// CaseService описывает операции над каталогом кейсов.
type CaseService interface {
	ListActive(ctx context.Context) []models.Case
	Create(ctx context.Context, req models.CreateCaseRequest) (int64, error)
}

type CaseServiceImpl struct {
	storage CaseStorage
}

// NewCaseService создаёт сервис каталога.
func NewCaseService(storage CaseStorage) *CaseServiceImpl {
	return &CaseServiceImpl{storage: storage}
}

// ListActive возвращает активные кейсы, свежие первыми.
func (s *CaseServiceImpl) ListActive(ctx context.Context) []models.Case {
	return s.storage.ActiveCases(ctx)
}

// Create валидирует запрос и добавляет кейс в каталог. Пустой список
// предметов недопустим: кейс без наград не создаётся.
func (s *CaseServiceImpl) Create(ctx context.Context, req models.CreateCaseRequest) (int64, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return 0, ErrEmptyCaseName
	}
	if len(req.Items) == 0 {
		return 0, ErrNoCaseItems
	}

	c := models.Case{
		Name:        name,
		Description: req.Description,
		PriceCoins:  req.PriceCoins,
		ImageURL:    req.ImageURL,
	}
	if c.ImageURL == "" {
		c.ImageURL = models.DefaultCaseImageURL
	}

	for _, item := range req.Items {
		ci := models.CaseItem{
			SkinName:   item.SkinName,
			ImageURL:   item.ImageURL,
			Rarity:     item.Rarity,
			DropWeight: item.DropWeight,
			SteamValue: decimal.NewFromFloat(item.SteamValue),
		}
		if ci.ImageURL == "" {
			ci.ImageURL = models.DefaultItemImageURL
		}
		if ci.Rarity == "" {
			ci.Rarity = "common"
		}
		// Вес обязан быть положительным, иначе предмет никогда не выпадет
		if ci.DropWeight <= 0 {
			ci.DropWeight = 1
		}
		c.Items = append(c.Items, ci)
	}

	return s.storage.AddCase(ctx, c)
}
