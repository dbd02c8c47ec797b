package repo

import (
	"gorm.io/gorm"

	"github.com/Thaihung204/GENTRY-BE/internal/domain"
)

// RefDataRepo 参考数据（occasion/weather/style）统一走泛型基座
type RefDataRepo struct {
	Occasions Base[domain.Occasion]
	Weathers  Base[domain.Weather]
	Styles    Base[domain.Style]
}

func NewRefDataRepo(db *gorm.DB) *RefDataRepo {
	return &RefDataRepo{
		Occasions: NewBase[domain.Occasion](db),
		Weathers:  NewBase[domain.Weather](db),
		Styles:    NewBase[domain.Style](db),
	}
}
