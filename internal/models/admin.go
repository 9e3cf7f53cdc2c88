package models

// AdminOverview - сводка для админ-панели: пользователи, каталог и последние
// заявки на вывод.
type AdminOverview struct {
	Users       []User       `json:"users"`
	Cases       []Case       `json:"cases"`
	Withdrawals []Withdrawal `json:"withdrawals"`
}
