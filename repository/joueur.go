package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/OumaimaAyadi17/Football/errs"
	"gorm.io/gorm"
)

type JoueurRepository struct {
	db *gorm.DB
}

func NewJoueurRepository(db *gorm.DB) *JoueurRepository {
	return &JoueurRepository{db: db}
}

func (r *JoueurRepository) Create(ctx context.Context, joueur Joueur) (*Joueur, error) {
	result := r.db.WithContext(ctx).Create(&joueur)
	if result.Error != nil {
		return nil, result.Error
	}

	return &joueur, nil
}

// Delete reports whether a row existed. A missing id is not an error.
func (r *JoueurRepository) Delete(ctx context.Context, id uint) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&Joueur{}, id)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

func (r *JoueurRepository) ExistsByNom(ctx context.Context, nom string) (bool, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&Joueur{}).Where("nom = ?", nom).Count(&count)
	if result.Error != nil {
		return false, result.Error
	}

	return count > 0, nil
}

func (r *JoueurRepository) List(ctx context.Context, params ListJoueursParams) ([]Joueur, int64, error) {
	var total int64
	if result := r.filter(r.db.WithContext(ctx).Model(&Joueur{}), params).Count(&total); result.Error != nil {
		return nil, 0, result.Error
	}

	direction := "asc"
	if params.Desc {
		direction = "desc"
	}

	var joueurs []Joueur
	result := r.filter(r.db.WithContext(ctx), params).
		Preload("Equipe").
		Order(fmt.Sprintf("%s %s", params.SortBy, direction)).
		Offset(params.Offset).
		Limit(params.Limit).
		Find(&joueurs)

	if result.Error != nil {
		return nil, 0, result.Error
	}

	return joueurs, total, nil
}

func (r *JoueurRepository) One(ctx context.Context, search Joueur) (*Joueur, error) {
	var joueur Joueur

	query := r.db.WithContext(ctx).Preload("Equipe")

	if search.ID != 0 {
		query = query.Where(&Joueur{ID: search.ID})
	}

	if search.Nom != "" {
		query = query.Where(&Joueur{Nom: search.Nom})
	}

	result := query.First(&joueur)

	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			message := fmt.Sprintf("Joueur non trouvé avec l'ID: %d", search.ID)
			if search.Nom != "" {
				message = fmt.Sprintf("Joueur non trouvé avec le nom: %s", search.Nom)
			}

			return nil, errs.JoueurNotFoundError{Message: message}
		}

		return nil, result.Error
	}

	return &joueur, nil
}

// UpdateEquipe sets or clears the joueur's owning equipe. A nil equipeID
// detaches the joueur.
func (r *JoueurRepository) UpdateEquipe(ctx context.Context, id uint, equipeID *uint) error {
	result := r.db.WithContext(ctx).Model(&Joueur{ID: id}).Update("equipe_id", equipeID)
	if result.Error != nil {
		return result.Error
	}

	return nil
}

func (r *JoueurRepository) filter(query *gorm.DB, params ListJoueursParams) *gorm.DB {
	if params.EquipeID != nil {
		query = query.Where("equipe_id = ?", *params.EquipeID)
	}

	if params.Position != nil {
		query = query.Where("LOWER(position) LIKE ?", "%"+strings.ToLower(*params.Position)+"%")
	}

	return query
}
