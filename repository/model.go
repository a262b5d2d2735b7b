package repository

import (
	"github.com/shopspring/decimal"
)

type Equipe struct {
	ID       uint            `gorm:"column:id;primaryKey"`
	Nom      string          `gorm:"column:nom;unique"`
	Acronyme string          `gorm:"column:acronyme;unique"`
	Budget   decimal.Decimal `gorm:"column:budget;type:numeric(15,2)"`

	Joueurs []Joueur `gorm:"foreignKey:EquipeID"`
}

func (Equipe) TableName() string {
	return "equipes"
}

type Joueur struct {
	ID       uint   `gorm:"column:id;primaryKey"`
	Nom      string `gorm:"column:nom;unique"`
	Position string `gorm:"column:position"`
	EquipeID *uint  `gorm:"column:equipe_id"`

	Equipe *Equipe `gorm:"foreignKey:EquipeID"`
}

func (Joueur) TableName() string {
	return "joueurs"
}

// ListEquipesParams carries store-level pagination and sorting. SortBy must be
// a validated column name, the service layer owns the whitelist.
type ListEquipesParams struct {
	Offset int
	Limit  int
	SortBy string
	Desc   bool
}

type ListJoueursParams struct {
	Offset   int
	Limit    int
	SortBy   string
	Desc     bool
	EquipeID *uint
	Position *string
}
