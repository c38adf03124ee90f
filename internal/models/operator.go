package models

// Operator — учётная запись админки (таблица admin).
type Operator struct {
	ID           int    `db:"id"       json:"id"`
	Name         string `db:"name"     json:"name"`
	PasswordHash string `db:"password" json:"-"`
}
