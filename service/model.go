package service

import (
	"github.com/OumaimaAyadi17/Football/repository"
	"github.com/shopspring/decimal"
)

type ListEquipesRequest struct {
	Page          int
	Size          int
	SortBy        string
	SortDirection string
}

type CreateEquipeRequest struct {
	Nom      string
	Acronyme string
	Budget   decimal.Decimal
	Joueurs  []CreateJoueurRequest
}

type ListJoueursRequest struct {
	Page          int
	Size          int
	SortBy        string
	SortDirection string
	EquipeID      *uint
	Position      *string
}

type CreateJoueurRequest struct {
	Nom      string
	Position string
	EquipeID *uint
}

type Equipe struct {
	ID       uint
	Nom      string
	Acronyme string
	Budget   decimal.Decimal

	Joueurs []Joueur
}

// Joueur carries the owning equipe denormalized for display. Both equipe
// fields are nil for an unassigned joueur.
type Joueur struct {
	ID        uint
	Nom       string
	Position  string
	EquipeID  *uint
	EquipeNom *string
}

type Page[T any] struct {
	Content       []T
	Page          int
	Size          int
	TotalElements int64
	TotalPages    int
}

func fromRepositoryEquipe(e repository.Equipe) *Equipe {
	joueurs := make([]Joueur, 0, len(e.Joueurs))
	for _, j := range e.Joueurs {
		equipeID := e.ID
		equipeNom := e.Nom
		joueurs = append(joueurs, Joueur{
			ID:        j.ID,
			Nom:       j.Nom,
			Position:  j.Position,
			EquipeID:  &equipeID,
			EquipeNom: &equipeNom,
		})
	}

	return &Equipe{
		ID:       e.ID,
		Nom:      e.Nom,
		Acronyme: e.Acronyme,
		Budget:   e.Budget,
		Joueurs:  joueurs,
	}
}

func fromRepositoryJoueur(j repository.Joueur) *Joueur {
	joueur := Joueur{
		ID:       j.ID,
		Nom:      j.Nom,
		Position: j.Position,
		EquipeID: j.EquipeID,
	}

	if j.Equipe != nil {
		equipeNom := j.Equipe.Nom
		joueur.EquipeNom = &equipeNom
	}

	return &joueur
}

func toRepositoryEquipe(request CreateEquipeRequest) repository.Equipe {
	equipe := repository.Equipe{
		Nom:      request.Nom,
		Acronyme: request.Acronyme,
		Budget:   request.Budget,
	}

	for _, j := range request.Joueurs {
		equipe.Joueurs = append(equipe.Joueurs, repository.Joueur{
			Nom:      j.Nom,
			Position: j.Position,
		})
	}

	return equipe
}

func totalPages(totalElements int64, size int) int {
	if size <= 0 {
		return 0
	}

	return int((totalElements + int64(size) - 1) / int64(size))
}
