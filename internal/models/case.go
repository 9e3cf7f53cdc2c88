package models

import "github.com/shopspring/decimal"

// Стоковые картинки, проставляемые при отсутствии своих - как при создании
// кейса администратором, так и при нормализации старых снапшотов.
const (
	DefaultCaseImageURL = "https://images.unsplash.com/photo-1511512578047-dfb367046420?auto=format&fit=crop&w=900&q=80"
	DefaultItemImageURL = "https://images.unsplash.com/photo-1542751371-adc38448a05e?auto=format&fit=crop&w=500&q=80"
)

// Case - покупаемый кейс с набором возможных наград.
type Case struct {
	ID          int64      `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	PriceCoins  int64      `json:"price_coins"`
	ImageURL    string     `json:"image_url"`
	Active      bool       `json:"active"`
	Items       []CaseItem `json:"items"`
}

// CaseItem - возможная награда внутри кейса. Вероятность выпадения равна
// drop_weight, делённому на сумму весов всех предметов кейса.
type CaseItem struct {
	SkinName   string          `json:"skin_name"`
	ImageURL   string          `json:"image_url"`
	Rarity     string          `json:"rarity"`
	DropWeight float64         `json:"drop_weight"`
	SteamValue decimal.Decimal `json:"steam_value"`
}

// OpenCaseRequest - запрос на открытие кейса.
type OpenCaseRequest struct {
	ExternalID string `json:"externalId"`
	CaseID     int64  `json:"caseId"`
}

// CreateCaseRequest - запрос администратора на создание кейса.
type CreateCaseRequest struct {
	Name        string           `json:"name"`
	Description string           `json:"description"`
	ImageURL    string           `json:"imageUrl"`
	PriceCoins  int64            `json:"priceCoins"`
	Items       []CreateCaseItem `json:"items"`
}

// CreateCaseItem - предмет в запросе на создание кейса.
type CreateCaseItem struct {
	SkinName   string  `json:"skinName"`
	ImageURL   string  `json:"imageUrl"`
	Rarity     string  `json:"rarity"`
	DropWeight float64 `json:"dropWeight"`
	SteamValue float64 `json:"steamValue"`
}
