package service_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/OumaimaAyadi17/Football/errs"
	loggerinternal "github.com/OumaimaAyadi17/Football/logger"
	"github.com/OumaimaAyadi17/Football/repository"
	"github.com/OumaimaAyadi17/Football/service"
	"github.com/OumaimaAyadi17/Football/service/mocks"
	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
)

func TestJoueurService_List(t *testing.T) {
	ctx := context.Background()
	errUnexpected := errors.New("unexpected error")

	equipeID := uint(gofakeit.Uint8())
	position := "milieu"

	joueurOne := fakeRepositoryJoueur(func(r *repository.Joueur) {
		r.EquipeID = &equipeID
		r.Equipe = &repository.Equipe{ID: equipeID, Nom: gofakeit.Company()}
	})
	joueurTwo := fakeRepositoryJoueur()

	request := service.ListJoueursRequest{
		Page:          0,
		Size:          2,
		SortBy:        "position",
		SortDirection: "desc",
		EquipeID:      &equipeID,
		Position:      &position,
	}
	params := repository.ListJoueursParams{
		Offset:   0,
		Limit:    2,
		SortBy:   "position",
		Desc:     true,
		EquipeID: &equipeID,
		Position: &position,
	}

	tests := []struct {
		name             string
		input            service.ListJoueursRequest
		joueurRepository func(t *testing.T) *mocks.JoueurRepository
		result           *service.Page[service.Joueur]
		expectedErr      error
	}{
		{
			name:  "it returns an error when listing fails",
			input: request,
			joueurRepository: func(t *testing.T) *mocks.JoueurRepository {
				t.Helper()
				m := mocks.NewJoueurRepository(t)
				m.On("List", ctx, params).Return(nil, int64(0), errUnexpected).Once()
				return m
			},
			expectedErr: fmt.Errorf("failed to list joueurs: %w", errUnexpected),
		},
		{
			name:  "it returns a filtered page of joueurs",
			input: request,
			joueurRepository: func(t *testing.T) *mocks.JoueurRepository {
				t.Helper()
				m := mocks.NewJoueurRepository(t)
				m.On("List", ctx, params).Return([]repository.Joueur{joueurOne, joueurTwo}, int64(3), nil).Once()
				return m
			},
			result: &service.Page[service.Joueur]{
				Content:       []service.Joueur{expectedJoueur(joueurOne), expectedJoueur(joueurTwo)},
				Page:          0,
				Size:          2,
				TotalElements: 3,
				TotalPages:    2,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var joueurRepository *mocks.JoueurRepository
			if tt.joueurRepository != nil {
				joueurRepository = tt.joueurRepository(t)
			}

			s := service.NewJoueurService(joueurRepository, nil, loggerinternal.SetupLogger())

			actual, err := s.List(ctx, tt.input)
			assert.Equal(t, tt.result, actual)
			if tt.expectedErr != nil {
				assert.ErrorContains(t, err, tt.expectedErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestJoueurService_Create(t *testing.T) {
	ctx := context.Background()
	errUnexpected := errors.New("unexpected error")

	equipeID := uint(gofakeit.Uint8())
	equipe := fakeRepositoryEquipe(func(r *repository.Equipe) {
		r.ID = equipeID
	})

	requestFree := service.CreateJoueurRequest{Nom: gofakeit.Name(), Position: "Gardien"}
	requestAssigned := service.CreateJoueurRequest{Nom: gofakeit.Name(), Position: "Attaquant", EquipeID: &equipeID}

	createdFree := repository.Joueur{
		ID:       uint(gofakeit.Uint8()),
		Nom:      requestFree.Nom,
		Position: requestFree.Position,
	}
	createdFreeJoueur := expectedJoueur(createdFree)

	createdAssigned := repository.Joueur{
		ID:       uint(gofakeit.Uint8()),
		Nom:      requestAssigned.Nom,
		Position: requestAssigned.Position,
		EquipeID: &equipeID,
	}
	equipeNom := equipe.Nom
	createdAssignedJoueur := service.Joueur{
		ID:        createdAssigned.ID,
		Nom:       createdAssigned.Nom,
		Position:  createdAssigned.Position,
		EquipeID:  &equipeID,
		EquipeNom: &equipeNom,
	}

	tests := []struct {
		name             string
		input            service.CreateJoueurRequest
		joueurRepository func(t *testing.T) *mocks.JoueurRepository
		equipeRepository func(t *testing.T) *mocks.EquipeRepository
		result           *service.Joueur
		expectedErr      error
	}{
		{
			name:  "it returns an error when nom uniqueness check fails",
			input: requestFree,
			joueurRepository: func(t *testing.T) *mocks.JoueurRepository {
				t.Helper()
				m := mocks.NewJoueurRepository(t)
				m.On("ExistsByNom", ctx, requestFree.Nom).Return(false, errUnexpected).Once()
				return m
			},
			expectedErr: fmt.Errorf("failed to check nom uniqueness: %w", errUnexpected),
		},
		{
			name:  "it returns an error when a joueur with the same nom exists",
			input: requestFree,
			joueurRepository: func(t *testing.T) *mocks.JoueurRepository {
				t.Helper()
				m := mocks.NewJoueurRepository(t)
				m.On("ExistsByNom", ctx, requestFree.Nom).Return(true, nil).Once()
				return m
			},
			expectedErr: errs.JoueurAlreadyExistsError{Message: fmt.Sprintf("Un joueur avec le nom '%s' existe déjà", requestFree.Nom)},
		},
		{
			name:  "it returns an error when the equipe does not exist",
			input: requestAssigned,
			joueurRepository: func(t *testing.T) *mocks.JoueurRepository {
				t.Helper()
				m := mocks.NewJoueurRepository(t)
				m.On("ExistsByNom", ctx, requestAssigned.Nom).Return(false, nil).Once()
				return m
			},
			equipeRepository: func(t *testing.T) *mocks.EquipeRepository {
				t.Helper()
				m := mocks.NewEquipeRepository(t)
				m.On("One", ctx, repository.Equipe{ID: equipeID}).
					Return(nil, errs.EquipeNotFoundError{Message: fmt.Sprintf("Équipe non trouvée avec l'ID: %d", equipeID)}).Once()
				return m
			},
			expectedErr: fmt.Errorf("failed to get equipe: %w", errs.EquipeNotFoundError{Message: fmt.Sprintf("Équipe non trouvée avec l'ID: %d", equipeID)}),
		},
		{
			name:  "it returns an error when creation fails",
			input: requestFree,
			joueurRepository: func(t *testing.T) *mocks.JoueurRepository {
				t.Helper()
				m := mocks.NewJoueurRepository(t)
				m.On("ExistsByNom", ctx, requestFree.Nom).Return(false, nil).Once()
				m.On("Create", ctx, repository.Joueur{Nom: requestFree.Nom, Position: requestFree.Position}).
					Return(nil, errUnexpected).Once()
				return m
			},
			expectedErr: fmt.Errorf("failed to create joueur: %w", errUnexpected),
		},
		{
			name:  "it creates an unassigned joueur",
			input: requestFree,
			joueurRepository: func(t *testing.T) *mocks.JoueurRepository {
				t.Helper()
				m := mocks.NewJoueurRepository(t)
				m.On("ExistsByNom", ctx, requestFree.Nom).Return(false, nil).Once()
				m.On("Create", ctx, repository.Joueur{Nom: requestFree.Nom, Position: requestFree.Position}).
					Return(&createdFree, nil).Once()
				return m
			},
			result: &createdFreeJoueur,
		},
		{
			name:  "it creates a joueur assigned to an equipe",
			input: requestAssigned,
			joueurRepository: func(t *testing.T) *mocks.JoueurRepository {
				t.Helper()
				m := mocks.NewJoueurRepository(t)
				m.On("ExistsByNom", ctx, requestAssigned.Nom).Return(false, nil).Once()
				m.On("Create", ctx, repository.Joueur{Nom: requestAssigned.Nom, Position: requestAssigned.Position, EquipeID: &equipeID}).
					Return(&createdAssigned, nil).Once()
				return m
			},
			equipeRepository: func(t *testing.T) *mocks.EquipeRepository {
				t.Helper()
				m := mocks.NewEquipeRepository(t)
				m.On("One", ctx, repository.Equipe{ID: equipeID}).Return(&equipe, nil).Once()
				return m
			},
			result: &createdAssignedJoueur,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var joueurRepository *mocks.JoueurRepository
			if tt.joueurRepository != nil {
				joueurRepository = tt.joueurRepository(t)
			}

			var equipeRepository *mocks.EquipeRepository
			if tt.equipeRepository != nil {
				equipeRepository = tt.equipeRepository(t)
			}

			s := service.NewJoueurService(joueurRepository, equipeRepository, loggerinternal.SetupLogger())

			actual, err := s.Create(ctx, tt.input)
			assert.Equal(t, tt.result, actual)
			if tt.expectedErr != nil {
				assert.ErrorContains(t, err, tt.expectedErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestJoueurService_GetByID(t *testing.T) {
	ctx := context.Background()

	joueur := fakeRepositoryJoueur(func(r *repository.Joueur) {
		equipeID := uint(gofakeit.Uint8())
		r.EquipeID = &equipeID
		r.Equipe = &repository.Equipe{ID: equipeID, Nom: gofakeit.Company()}
	})
	found := expectedJoueur(joueur)

	tests := []struct {
		name             string
		input            uint
		joueurRepository func(t *testing.T) *mocks.JoueurRepository
		result           *service.Joueur
		expectedErr      error
	}{
		{
			name:  "it returns an error when joueur does not exist",
			input: joueur.ID,
			joueurRepository: func(t *testing.T) *mocks.JoueurRepository {
				t.Helper()
				m := mocks.NewJoueurRepository(t)
				m.On("One", ctx, repository.Joueur{ID: joueur.ID}).
					Return(nil, errs.JoueurNotFoundError{Message: fmt.Sprintf("Joueur non trouvé avec l'ID: %d", joueur.ID)}).Once()
				return m
			},
			expectedErr: fmt.Errorf("failed to get joueur: %w", errs.JoueurNotFoundError{Message: fmt.Sprintf("Joueur non trouvé avec l'ID: %d", joueur.ID)}),
		},
		{
			name:  "it returns the joueur with its equipe",
			input: joueur.ID,
			joueurRepository: func(t *testing.T) *mocks.JoueurRepository {
				t.Helper()
				m := mocks.NewJoueurRepository(t)
				m.On("One", ctx, repository.Joueur{ID: joueur.ID}).Return(&joueur, nil).Once()
				return m
			},
			result: &found,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var joueurRepository *mocks.JoueurRepository
			if tt.joueurRepository != nil {
				joueurRepository = tt.joueurRepository(t)
			}

			s := service.NewJoueurService(joueurRepository, nil, loggerinternal.SetupLogger())

			actual, err := s.GetByID(ctx, tt.input)
			assert.Equal(t, tt.result, actual)
			if tt.expectedErr != nil {
				assert.ErrorContains(t, err, tt.expectedErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestJoueurService_Transfer(t *testing.T) {
	ctx := context.Background()
	errUnexpected := errors.New("unexpected error")

	equipeID := uint(gofakeit.Uint8())
	joueurID := uint(gofakeit.Uint8())
	previousEquipeID := equipeID + 1

	equipe := fakeRepositoryEquipe(func(r *repository.Equipe) {
		r.ID = equipeID
	})
	joueur := fakeRepositoryJoueur(func(r *repository.Joueur) {
		r.ID = joueurID
		r.EquipeID = &previousEquipeID
	})
	transferred := fakeRepositoryJoueur(func(r *repository.Joueur) {
		r.ID = joueurID
		r.Nom = joueur.Nom
		r.Position = joueur.Position
		r.EquipeID = &equipeID
		r.Equipe = &equipe
	})
	transferredJoueur := expectedJoueur(transferred)

	tests := []struct {
		name             string
		joueurRepository func(t *testing.T) *mocks.JoueurRepository
		equipeRepository func(t *testing.T) *mocks.EquipeRepository
		result           *service.Joueur
		expectedErr      error
	}{
		{
			name: "it returns an error when joueur does not exist",
			joueurRepository: func(t *testing.T) *mocks.JoueurRepository {
				t.Helper()
				m := mocks.NewJoueurRepository(t)
				m.On("One", ctx, repository.Joueur{ID: joueurID}).
					Return(nil, errs.JoueurNotFoundError{Message: fmt.Sprintf("Joueur non trouvé avec l'ID: %d", joueurID)}).Once()
				return m
			},
			expectedErr: fmt.Errorf("failed to get joueur: %w", errs.JoueurNotFoundError{Message: fmt.Sprintf("Joueur non trouvé avec l'ID: %d", joueurID)}),
		},
		{
			name: "it returns an error when target equipe does not exist",
			joueurRepository: func(t *testing.T) *mocks.JoueurRepository {
				t.Helper()
				m := mocks.NewJoueurRepository(t)
				m.On("One", ctx, repository.Joueur{ID: joueurID}).Return(&joueur, nil).Once()
				return m
			},
			equipeRepository: func(t *testing.T) *mocks.EquipeRepository {
				t.Helper()
				m := mocks.NewEquipeRepository(t)
				m.On("One", ctx, repository.Equipe{ID: equipeID}).
					Return(nil, errs.EquipeNotFoundError{Message: fmt.Sprintf("Équipe non trouvée avec l'ID: %d", equipeID)}).Once()
				return m
			},
			expectedErr: fmt.Errorf("failed to get equipe: %w", errs.EquipeNotFoundError{Message: fmt.Sprintf("Équipe non trouvée avec l'ID: %d", equipeID)}),
		},
		{
			name: "it returns an error when the reassignment fails",
			joueurRepository: func(t *testing.T) *mocks.JoueurRepository {
				t.Helper()
				m := mocks.NewJoueurRepository(t)
				m.On("One", ctx, repository.Joueur{ID: joueurID}).Return(&joueur, nil).Once()
				m.On("UpdateEquipe", ctx, joueurID, &equipeID).Return(errUnexpected).Once()
				return m
			},
			equipeRepository: func(t *testing.T) *mocks.EquipeRepository {
				t.Helper()
				m := mocks.NewEquipeRepository(t)
				m.On("One", ctx, repository.Equipe{ID: equipeID}).Return(&equipe, nil).Once()
				return m
			},
			expectedErr: fmt.Errorf("failed to transfer joueur: %w", errUnexpected),
		},
		{
			name: "it transfers the joueur to the new equipe",
			joueurRepository: func(t *testing.T) *mocks.JoueurRepository {
				t.Helper()
				m := mocks.NewJoueurRepository(t)
				m.On("One", ctx, repository.Joueur{ID: joueurID}).Return(&joueur, nil).Once()
				m.On("UpdateEquipe", ctx, joueurID, &equipeID).Return(nil).Once()
				m.On("One", ctx, repository.Joueur{ID: joueurID}).Return(&transferred, nil).Once()
				return m
			},
			equipeRepository: func(t *testing.T) *mocks.EquipeRepository {
				t.Helper()
				m := mocks.NewEquipeRepository(t)
				m.On("One", ctx, repository.Equipe{ID: equipeID}).Return(&equipe, nil).Once()
				return m
			},
			result: &transferredJoueur,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var joueurRepository *mocks.JoueurRepository
			if tt.joueurRepository != nil {
				joueurRepository = tt.joueurRepository(t)
			}

			var equipeRepository *mocks.EquipeRepository
			if tt.equipeRepository != nil {
				equipeRepository = tt.equipeRepository(t)
			}

			s := service.NewJoueurService(joueurRepository, equipeRepository, loggerinternal.SetupLogger())

			actual, err := s.Transfer(ctx, joueurID, equipeID)
			assert.Equal(t, tt.result, actual)
			if tt.expectedErr != nil {
				assert.ErrorContains(t, err, tt.expectedErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestJoueurService_Delete(t *testing.T) {
	ctx := context.Background()
	errUnexpected := errors.New("unexpected error")

	joueurID := uint(gofakeit.Uint8())

	tests := []struct {
		name             string
		joueurRepository func(t *testing.T) *mocks.JoueurRepository
		result           bool
		expectedErr      error
	}{
		{
			name: "it returns an error when deletion fails",
			joueurRepository: func(t *testing.T) *mocks.JoueurRepository {
				t.Helper()
				m := mocks.NewJoueurRepository(t)
				m.On("Delete", ctx, joueurID).Return(false, errUnexpected).Once()
				return m
			},
			expectedErr: fmt.Errorf("failed to delete joueur: %w", errUnexpected),
		},
		{
			name: "it returns false when joueur does not exist",
			joueurRepository: func(t *testing.T) *mocks.JoueurRepository {
				t.Helper()
				m := mocks.NewJoueurRepository(t)
				m.On("Delete", ctx, joueurID).Return(false, nil).Once()
				return m
			},
			result: false,
		},
		{
			name: "it returns true when joueur is deleted",
			joueurRepository: func(t *testing.T) *mocks.JoueurRepository {
				t.Helper()
				m := mocks.NewJoueurRepository(t)
				m.On("Delete", ctx, joueurID).Return(true, nil).Once()
				return m
			},
			result: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			joueurRepository := tt.joueurRepository(t)

			s := service.NewJoueurService(joueurRepository, nil, loggerinternal.SetupLogger())

			actual, err := s.Delete(ctx, joueurID)
			assert.Equal(t, tt.result, actual)
			if tt.expectedErr != nil {
				assert.ErrorContains(t, err, tt.expectedErr.Error())
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
