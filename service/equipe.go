package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/OumaimaAyadi17/Football/errs"
	"github.com/OumaimaAyadi17/Football/repository"
)

type EquipeService struct {
	equipeRepository EquipeRepository
	joueurRepository JoueurRepository
	logger           Logger
}

func NewEquipeService(equipeRepository EquipeRepository, joueurRepository JoueurRepository, logger Logger) *EquipeService {
	return &EquipeService{
		equipeRepository: equipeRepository,
		joueurRepository: joueurRepository,
		logger:           logger,
	}
}

func (s *EquipeService) List(ctx context.Context, request ListEquipesRequest) (*Page[Equipe], error) {
	equipes, total, err := s.equipeRepository.List(ctx, repository.ListEquipesParams{
		Offset: request.Page * request.Size,
		Limit:  request.Size,
		SortBy: validateEquipeSortField(request.SortBy),
		Desc:   strings.EqualFold(request.SortDirection, "desc"),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list equipes: %w", err)
	}

	content := make([]Equipe, 0, len(equipes))
	for i := range equipes {
		content = append(content, *fromRepositoryEquipe(equipes[i]))
	}

	return &Page[Equipe]{
		Content:       content,
		Page:          request.Page,
		Size:          request.Size,
		TotalElements: total,
		TotalPages:    totalPages(total, request.Size),
	}, nil
}

// Create checks the acronyme first, then the nom. A request violating both
// uniqueness constraints reports the acronyme.
func (s *EquipeService) Create(ctx context.Context, request CreateEquipeRequest) (*Equipe, error) {
	exists, err := s.equipeRepository.ExistsByAcronyme(ctx, request.Acronyme)
	if err != nil {
		return nil, fmt.Errorf("failed to check acronyme uniqueness: %w", err)
	}

	if exists {
		return nil, errs.EquipeAlreadyExistsError{Message: fmt.Sprintf("Une équipe avec l'acronyme '%s' existe déjà", request.Acronyme)}
	}

	exists, err = s.equipeRepository.ExistsByNom(ctx, request.Nom)
	if err != nil {
		return nil, fmt.Errorf("failed to check nom uniqueness: %w", err)
	}

	if exists {
		return nil, errs.EquipeAlreadyExistsError{Message: fmt.Sprintf("Une équipe avec le nom '%s' existe déjà", request.Nom)}
	}

	created, err := s.equipeRepository.Create(ctx, toRepositoryEquipe(request))
	if err != nil {
		return nil, fmt.Errorf("failed to create equipe: %w", err)
	}

	s.logger.Info().Uint("equipe_id", created.ID).Str("nom", created.Nom).Msg("equipe created")

	return fromRepositoryEquipe(*created), nil
}

func (s *EquipeService) GetByID(ctx context.Context, id uint) (*Equipe, error) {
	equipe, err := s.equipeRepository.One(ctx, repository.Equipe{ID: id})
	if err != nil {
		return nil, fmt.Errorf("failed to get equipe: %w", err)
	}

	return fromRepositoryEquipe(*equipe), nil
}

func (s *EquipeService) GetByAcronyme(ctx context.Context, acronyme string) (*Equipe, error) {
	equipe, err := s.equipeRepository.One(ctx, repository.Equipe{Acronyme: acronyme})
	if err != nil {
		return nil, fmt.Errorf("failed to get equipe: %w", err)
	}

	return fromRepositoryEquipe(*equipe), nil
}

func (s *EquipeService) AddJoueur(ctx context.Context, equipeID uint, joueurID uint) (*Equipe, error) {
	if _, err := s.equipeRepository.One(ctx, repository.Equipe{ID: equipeID}); err != nil {
		return nil, fmt.Errorf("failed to get equipe: %w", err)
	}

	joueur, err := s.joueurRepository.One(ctx, repository.Joueur{ID: joueurID})
	if err != nil {
		return nil, fmt.Errorf("failed to get joueur: %w", err)
	}

	if joueur.EquipeID != nil {
		return nil, errs.JoueurAlreadyAssignedError{Message: "Le joueur est déjà dans une équipe"}
	}

	if err := s.joueurRepository.UpdateEquipe(ctx, joueurID, &equipeID); err != nil {
		return nil, fmt.Errorf("failed to attach joueur to equipe: %w", err)
	}

	updated, err := s.equipeRepository.One(ctx, repository.Equipe{ID: equipeID})
	if err != nil {
		return nil, fmt.Errorf("failed to reload equipe: %w", err)
	}

	s.logger.Info().Uint("equipe_id", equipeID).Uint("joueur_id", joueurID).Msg("joueur added to equipe")

	return fromRepositoryEquipe(*updated), nil
}

func (s *EquipeService) RemoveJoueur(ctx context.Context, equipeID uint, joueurID uint) (*Equipe, error) {
	if _, err := s.equipeRepository.One(ctx, repository.Equipe{ID: equipeID}); err != nil {
		return nil, fmt.Errorf("failed to get equipe: %w", err)
	}

	joueur, err := s.joueurRepository.One(ctx, repository.Joueur{ID: joueurID})
	if err != nil {
		return nil, fmt.Errorf("failed to get joueur: %w", err)
	}

	if joueur.EquipeID == nil || *joueur.EquipeID != equipeID {
		return nil, errs.JoueurNotInEquipeError{Message: "Le joueur n'appartient pas à cette équipe"}
	}

	if err := s.joueurRepository.UpdateEquipe(ctx, joueurID, nil); err != nil {
		return nil, fmt.Errorf("failed to detach joueur from equipe: %w", err)
	}

	updated, err := s.equipeRepository.One(ctx, repository.Equipe{ID: equipeID})
	if err != nil {
		return nil, fmt.Errorf("failed to reload equipe: %w", err)
	}

	s.logger.Info().Uint("equipe_id", equipeID).Uint("joueur_id", joueurID).Msg("joueur removed from equipe")

	return fromRepositoryEquipe(*updated), nil
}

// validateEquipeSortField falls back to nom for blank or unknown fields.
// English aliases are accepted for compatibility with older clients.
func validateEquipeSortField(sortBy string) string {
	switch strings.ToLower(strings.TrimSpace(sortBy)) {
	case "nom", "name":
		return "nom"
	case "acronyme", "acronym":
		return "acronyme"
	case "budget":
		return "budget"
	default:
		return "nom"
	}
}
