package handler

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/OumaimaAyadi17/Football/service"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type ListEquipesRequest struct {
	Page          int    `form:"page,default=0"`
	Size          int    `form:"size,default=10"`
	SortBy        string `form:"sortBy,default=nom"`
	SortDirection string `form:"sortDirection,default=asc"`
}

type CreateEquipeRequest struct {
	Nom      string                `json:"nom"`
	Acronyme string                `json:"acronyme"`
	Budget   *decimal.Decimal      `json:"budget"`
	Joueurs  []CreateJoueurRequest `json:"joueurs"`
}

type ListJoueursRequest struct {
	Page          int     `form:"page,default=0"`
	Size          int     `form:"size,default=10"`
	SortBy        string  `form:"sortBy,default=nom"`
	SortDirection string  `form:"sortDirection,default=asc"`
	EquipeID      *uint   `form:"equipeId"`
	Position      *string `form:"position"`
}

type CreateJoueurRequest struct {
	Nom      string `json:"nom"`
	Position string `json:"position"`
	EquipeID *uint  `json:"equipeId"`
}

type TransferJoueurRequest struct {
	EquipeID uint `form:"equipeId" binding:"required"`
}

type EquipeResponse struct {
	ID       uint             `json:"id"`
	Nom      string           `json:"nom"`
	Acronyme string           `json:"acronyme"`
	Budget   decimal.Decimal  `json:"budget"`
	Joueurs  []JoueurResponse `json:"joueurs"`
}

type JoueurResponse struct {
	ID        uint    `json:"id"`
	Nom       string  `json:"nom"`
	Position  string  `json:"position"`
	EquipeID  *uint   `json:"equipeId"`
	EquipeNom *string `json:"equipeNom"`
}

type PageResponse[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
}

// Validate returns the list of violation messages, empty when the request is
// well-formed. Nested joueur requests are validated with the joueur rules.
func (r *CreateEquipeRequest) Validate() []string {
	var violations []string

	if strings.TrimSpace(r.Nom) == "" {
		violations = append(violations, "Le nom de l'équipe est obligatoire")
	}

	if utf8.RuneCountInString(r.Nom) > 100 {
		violations = append(violations, "Le nom de l'équipe ne peut pas dépasser 100 caractères")
	}

	if strings.TrimSpace(r.Acronyme) == "" {
		violations = append(violations, "L'acronyme est obligatoire")
	}

	if utf8.RuneCountInString(r.Acronyme) > 10 {
		violations = append(violations, "L'acronyme ne peut pas dépasser 10 caractères")
	}

	if r.Budget == nil {
		violations = append(violations, "Le budget est obligatoire")
	} else if r.Budget.IsNegative() {
		violations = append(violations, "Le budget doit être positif ou nul")
	}

	for i := range r.Joueurs {
		violations = append(violations, r.Joueurs[i].Validate()...)
	}

	return violations
}

func (r *CreateJoueurRequest) Validate() []string {
	var violations []string

	if strings.TrimSpace(r.Nom) == "" {
		violations = append(violations, "Le nom du joueur est obligatoire")
	}

	if utf8.RuneCountInString(r.Nom) > 100 {
		violations = append(violations, "Le nom du joueur ne peut pas dépasser 100 caractères")
	}

	if strings.TrimSpace(r.Position) == "" {
		violations = append(violations, "La position est obligatoire")
	}

	if utf8.RuneCountInString(r.Position) > 50 {
		violations = append(violations, "La position ne peut pas dépasser 50 caractères")
	}

	return violations
}

func (r *ListEquipesRequest) ToDomain() service.ListEquipesRequest {
	return service.ListEquipesRequest{
		Page:          r.Page,
		Size:          r.Size,
		SortBy:        r.SortBy,
		SortDirection: r.SortDirection,
	}
}

func (r *CreateEquipeRequest) ToDomain() service.CreateEquipeRequest {
	joueurs := make([]service.CreateJoueurRequest, 0, len(r.Joueurs))
	for _, j := range r.Joueurs {
		joueurs = append(joueurs, service.CreateJoueurRequest{
			Nom:      j.Nom,
			Position: j.Position,
		})
	}

	return service.CreateEquipeRequest{
		Nom:      r.Nom,
		Acronyme: r.Acronyme,
		Budget:   *r.Budget,
		Joueurs:  joueurs,
	}
}

func (r *ListJoueursRequest) ToDomain() service.ListJoueursRequest {
	return service.ListJoueursRequest{
		Page:          r.Page,
		Size:          r.Size,
		SortBy:        r.SortBy,
		SortDirection: r.SortDirection,
		EquipeID:      r.EquipeID,
		Position:      r.Position,
	}
}

func (r *CreateJoueurRequest) ToDomain() service.CreateJoueurRequest {
	return service.CreateJoueurRequest{
		Nom:      r.Nom,
		Position: r.Position,
		EquipeID: r.EquipeID,
	}
}

func fromServiceEquipe(equipe service.Equipe) EquipeResponse {
	joueurs := make([]JoueurResponse, 0, len(equipe.Joueurs))
	for _, j := range equipe.Joueurs {
		joueurs = append(joueurs, fromServiceJoueur(j))
	}

	return EquipeResponse{
		ID:       equipe.ID,
		Nom:      equipe.Nom,
		Acronyme: equipe.Acronyme,
		Budget:   equipe.Budget,
		Joueurs:  joueurs,
	}
}

func fromServiceJoueur(joueur service.Joueur) JoueurResponse {
	return JoueurResponse{
		ID:        joueur.ID,
		Nom:       joueur.Nom,
		Position:  joueur.Position,
		EquipeID:  joueur.EquipeID,
		EquipeNom: joueur.EquipeNom,
	}
}

func fromServicePage[S any, R any](page service.Page[S], mapItem func(S) R) PageResponse[R] {
	content := make([]R, 0, len(page.Content))
	for i := range page.Content {
		content = append(content, mapItem(page.Content[i]))
	}

	return PageResponse[R]{
		Content:       content,
		Page:          page.Page,
		Size:          page.Size,
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages,
	}
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		return 0, fmt.Errorf("paramètre %s invalide", name)
	}

	return uint(value), nil
}
