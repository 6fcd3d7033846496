package db_models

import "github.com/lib/pq"

type Account struct {
	BaseModel
	Name         string
	Email        string `gorm:"uniqueIndex"`
	Avatar       string
	PasswordHash string
	Friends      pq.StringArray `gorm:"type:text[]"`
}
