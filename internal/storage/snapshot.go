package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/shopspring/decimal"

	"skindrop/internal/models"
)

// Снапшот и ответы API кодируют стоимости JSON-числами, как в исходном
// формате документа.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// State - полный снимок данных сервиса: пять коллекций, сериализуемых в один
// JSON-документ.
type State struct {
	Users       []models.User          `json:"users"`
	Cases       []models.Case          `json:"cases"`
	Openings    []models.Opening       `json:"openings"`
	Withdrawals []models.Withdrawal    `json:"withdrawals"`
	Inventory   []models.InventoryItem `json:"inventory"`
}

// Поля старых снапшотов, которых больше нет в моделях: балансы в "звёздах" и
// TON, цены кейсов в "звёздах". Декодируются отдельным проходом и сводятся к
// текущим полям в normalize.
type legacyUser struct {
	BalanceCoins *float64 `json:"balance_coins"`
	BalanceStars *float64 `json:"balance_stars"`
	BalanceTON   *float64 `json:"balance_ton"`
}

type legacyCase struct {
	PriceCoins *int64 `json:"price_coins"`
	PriceStars *int64 `json:"price_stars"`
}

type legacySnapshot struct {
	Users []legacyUser `json:"users"`
	Cases []legacyCase `json:"cases"`
}

// tonToCoins - курс пересчёта легаси-баланса в TON во внутренние монеты.
const tonToCoins = 300

// normalize приводит загруженный снапшот к текущей форме: сводит легаси-поля
// цен и балансов, подставляет стоковые картинки, заменяет отсутствующие
// коллекции пустыми. Проход идемпотентен: повторная нормализация уже
// нормализованного состояния ничего не меняет.
func normalize(st *State, legacy legacySnapshot) {
	if st.Users == nil {
		st.Users = []models.User{}
	}
	if st.Cases == nil {
		st.Cases = []models.Case{}
	}
	if st.Openings == nil {
		st.Openings = []models.Opening{}
	}
	if st.Withdrawals == nil {
		st.Withdrawals = []models.Withdrawal{}
	}
	if st.Inventory == nil {
		st.Inventory = []models.InventoryItem{}
	}

	for i := range st.Users {
		if i >= len(legacy.Users) || legacy.Users[i].BalanceCoins != nil {
			continue
		}
		var coins float64
		if legacy.Users[i].BalanceStars != nil {
			coins += *legacy.Users[i].BalanceStars
		}
		if legacy.Users[i].BalanceTON != nil {
			coins += *legacy.Users[i].BalanceTON * tonToCoins
		}
		st.Users[i].BalanceCoins = int64(math.Floor(coins))
	}

	for i := range st.Cases {
		c := &st.Cases[i]
		if i < len(legacy.Cases) && legacy.Cases[i].PriceCoins == nil && legacy.Cases[i].PriceStars != nil {
			c.PriceCoins = *legacy.Cases[i].PriceStars
		}
		if c.ImageURL == "" {
			c.ImageURL = models.DefaultCaseImageURL
		}
		if c.Items == nil {
			c.Items = []models.CaseItem{}
		}
		for j := range c.Items {
			if c.Items[j].ImageURL == "" {
				c.Items[j].ImageURL = models.DefaultItemImageURL
			}
		}
	}
}

// load читает и нормализует снапшот с диска. Вызывается один раз из New до
// того, как хранилище станет доступно извне.
func (s *Store) load() error {
	s.state = State{
		Users:       []models.User{},
		Cases:       []models.Case{},
		Openings:    []models.Opening{},
		Withdrawals: []models.Withdrawal{},
		Inventory:   []models.InventoryItem{},
	}

	if s.path == MemoryPath {
		return nil
	}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}

	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		return fmt.Errorf("failed to decode snapshot: %w", err)
	}
	var legacy legacySnapshot
	if err := json.Unmarshal(data, &legacy); err != nil {
		return fmt.Errorf("failed to decode snapshot: %w", err)
	}

	normalize(&st, legacy)
	s.state = st

	// Нормализованная форма сразу пишется обратно
	return s.persistLocked()
}

// persistLocked целиком переписывает резервный документ. Вызывается только
// под заблокированным mu.
func (s *Store) persistLocked() error {
	if s.path == MemoryPath {
		return nil
	}

	data, err := json.MarshalIndent(s.state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	return nil
}
