package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/OumaimaAyadi17/Football/errs"
	"gorm.io/gorm"
)

type EquipeRepository struct {
	db *gorm.DB
}

func NewEquipeRepository(db *gorm.DB) *EquipeRepository {
	return &EquipeRepository{db: db}
}

// Create persists the equipe together with its nested joueurs, if any.
// The association insert runs in a single transaction.
func (r *EquipeRepository) Create(ctx context.Context, equipe Equipe) (*Equipe, error) {
	result := r.db.WithContext(ctx).Create(&equipe)
	if result.Error != nil {
		return nil, result.Error
	}

	return &equipe, nil
}

func (r *EquipeRepository) ExistsByAcronyme(ctx context.Context, acronyme string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&Equipe{}).Where("acronyme = ?", acronyme).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

func (r *EquipeRepository) ExistsByNom(ctx context.Context, nom string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&Equipe{}).Where("nom = ?", nom).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

func (r *EquipeRepository) List(ctx context.Context, params ListEquipesParams) ([]Equipe, int64, error) {
	var total int64
	if result := r.db.WithContext(ctx).Model(&Equipe{}).Count(&total); result.Error != nil {
		return nil, 0, result.Error
	}

	direction := "asc"
	if params.Desc {
		direction = "desc"
	}

	var equipes []Equipe
	result := r.db.WithContext(ctx).
		Preload("Joueurs").
		Order(fmt.Sprintf("%s %s", params.SortBy, direction)).
		Offset(params.Offset).
		Limit(params.Limit).
		Find(&equipes)

	if result.Error != nil {
		return nil, 0, result.Error
	}

	return equipes, total, nil
}

func (r *EquipeRepository) One(ctx context.Context, search Equipe) (*Equipe, error) {
	var equipe Equipe

	query := r.db.WithContext(ctx).Preload("Joueurs")

	if search.ID != 0 {
		query = query.Where(&Equipe{ID: search.ID})
	}

	if search.Acronyme != "" {
		query = query.Where(&Equipe{Acronyme: search.Acronyme})
	}

	result := query.First(&equipe)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			message := fmt.Sprintf("Équipe non trouvée avec l'ID: %d", search.ID)
			if search.Acronyme != "" {
				message = fmt.Sprintf("Équipe non trouvée avec l'acronyme: %s", search.Acronyme)
			}

			return nil, errs.EquipeNotFoundError{Message: message}
		}

		return nil, result.Error
	}

	return &equipe, nil
}
