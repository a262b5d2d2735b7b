package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/OumaimaAyadi17/Football/errs"
	"github.com/OumaimaAyadi17/Football/repository"
)

type JoueurService struct {
	joueurRepository JoueurRepository
	equipeRepository EquipeRepository
	logger           Logger
}

func NewJoueurService(joueurRepository JoueurRepository, equipeRepository EquipeRepository, logger Logger) *JoueurService {
	return &JoueurService{
		joueurRepository: joueurRepository,
		equipeRepository: equipeRepository,
		logger:           logger,
	}
}

func (s *JoueurService) List(ctx context.Context, request ListJoueursRequest) (*Page[Joueur], error) {
	joueurs, total, err := s.joueurRepository.List(ctx, repository.ListJoueursParams{
		Offset:   request.Page * request.Size,
		Limit:    request.Size,
		SortBy:   validateJoueurSortField(request.SortBy),
		Desc:     strings.EqualFold(request.SortDirection, "desc"),
		EquipeID: request.EquipeID,
		Position: request.Position,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list joueurs: %w", err)
	}

	content := make([]Joueur, 0, len(joueurs))
	for i := range joueurs {
		content = append(content, *fromRepositoryJoueur(joueurs[i]))
	}

	return &Page[Joueur]{
		Content:       content,
		Page:          request.Page,
		Size:          request.Size,
		TotalElements: total,
		TotalPages:    totalPages(total, request.Size),
	}, nil
}

func (s *JoueurService) Create(ctx context.Context, request CreateJoueurRequest) (*Joueur, error) {
	exists, err := s.joueurRepository.ExistsByNom(ctx, request.Nom)
	if err != nil {
		return nil, fmt.Errorf("failed to check nom uniqueness: %w", err)
	}

	if exists {
		return nil, errs.JoueurAlreadyExistsError{Message: fmt.Sprintf("Un joueur avec le nom '%s' existe déjà", request.Nom)}
	}

	var equipe *repository.Equipe
	if request.EquipeID != nil {
		equipe, err = s.equipeRepository.One(ctx, repository.Equipe{ID: *request.EquipeID})
		if err != nil {
			return nil, fmt.Errorf("failed to get equipe: %w", err)
		}
	}

	created, err := s.joueurRepository.Create(ctx, repository.Joueur{
		Nom:      request.Nom,
		Position: request.Position,
		EquipeID: request.EquipeID,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create joueur: %w", err)
	}

	created.Equipe = equipe

	s.logger.Info().Uint("joueur_id", created.ID).Str("nom", created.Nom).Msg("joueur created")

	return fromRepositoryJoueur(*created), nil
}

func (s *JoueurService) GetByID(ctx context.Context, id uint) (*Joueur, error) {
	joueur, err := s.joueurRepository.One(ctx, repository.Joueur{ID: id})
	if err != nil {
		return nil, fmt.Errorf("failed to get joueur: %w", err)
	}

	return fromRepositoryJoueur(*joueur), nil
}

// Transfer reassigns the joueur unconditionally, a previously unassigned
// joueur is attached the same way.
func (s *JoueurService) Transfer(ctx context.Context, joueurID uint, equipeID uint) (*Joueur, error) {
	if _, err := s.joueurRepository.One(ctx, repository.Joueur{ID: joueurID}); err != nil {
		return nil, fmt.Errorf("failed to get joueur: %w", err)
	}

	if _, err := s.equipeRepository.One(ctx, repository.Equipe{ID: equipeID}); err != nil {
		return nil, fmt.Errorf("failed to get equipe: %w", err)
	}

	if err := s.joueurRepository.UpdateEquipe(ctx, joueurID, &equipeID); err != nil {
		return nil, fmt.Errorf("failed to transfer joueur: %w", err)
	}

	updated, err := s.joueurRepository.One(ctx, repository.Joueur{ID: joueurID})
	if err != nil {
		return nil, fmt.Errorf("failed to reload joueur: %w", err)
	}

	s.logger.Info().Uint("joueur_id", joueurID).Uint("equipe_id", equipeID).Msg("joueur transferred")

	return fromRepositoryJoueur(*updated), nil
}

// Delete reports whether the joueur existed. Absence is a normal outcome,
// not an error.
func (s *JoueurService) Delete(ctx context.Context, id uint) (bool, error) {
	deleted, err := s.joueurRepository.Delete(ctx, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete joueur: %w", err)
	}

	if deleted {
		s.logger.Info().Uint("joueur_id", id).Msg("joueur deleted")
	}

	return deleted, nil
}

func validateJoueurSortField(sortBy string) string {
	switch strings.ToLower(strings.TrimSpace(sortBy)) {
	case "nom", "name":
		return "nom"
	case "position":
		return "position"
	default:
		return "nom"
	}
}
