package handler

import (
	"context"

	"github.com/OumaimaAyadi17/Football/service"
)

type EquipeService interface {
	AddJoueur(ctx context.Context, equipeID uint, joueurID uint) (*service.Equipe, error)
	Create(ctx context.Context, request service.CreateEquipeRequest) (*service.Equipe, error)
	GetByAcronyme(ctx context.Context, acronyme string) (*service.Equipe, error)
	GetByID(ctx context.Context, id uint) (*service.Equipe, error)
	List(ctx context.Context, request service.ListEquipesRequest) (*service.Page[service.Equipe], error)
	RemoveJoueur(ctx context.Context, equipeID uint, joueurID uint) (*service.Equipe, error)
}

type JoueurService interface {
	Create(ctx context.Context, request service.CreateJoueurRequest) (*service.Joueur, error)
	Delete(ctx context.Context, id uint) (bool, error)
	GetByID(ctx context.Context, id uint) (*service.Joueur, error)
	List(ctx context.Context, request service.ListJoueursRequest) (*service.Page[service.Joueur], error)
	Transfer(ctx context.Context, joueurID uint, equipeID uint) (*service.Joueur, error)
}
