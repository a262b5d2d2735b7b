package service

import (
	"context"

	"github.com/OumaimaAyadi17/Football/repository"
	"github.com/rs/zerolog"
)

type EquipeRepository interface {
	Create(ctx context.Context, equipe repository.Equipe) (*repository.Equipe, error)
	ExistsByAcronyme(ctx context.Context, acronyme string) (bool, error)
	ExistsByNom(ctx context.Context, nom string) (bool, error)
	List(ctx context.Context, params repository.ListEquipesParams) ([]repository.Equipe, int64, error)
	One(ctx context.Context, search repository.Equipe) (*repository.Equipe, error)
}

type JoueurRepository interface {
	Create(ctx context.Context, joueur repository.Joueur) (*repository.Joueur, error)
	Delete(ctx context.Context, id uint) (bool, error)
	ExistsByNom(ctx context.Context, nom string) (bool, error)
	List(ctx context.Context, params repository.ListJoueursParams) ([]repository.Joueur, int64, error)
	One(ctx context.Context, search repository.Joueur) (*repository.Joueur, error)
	UpdateEquipe(ctx context.Context, id uint, equipeID *uint) error
}

type Logger interface {
	Error() *zerolog.Event
	Info() *zerolog.Event
}
