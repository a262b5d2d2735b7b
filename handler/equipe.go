package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/OumaimaAyadi17/Football/errs"
	"github.com/gin-gonic/gin"
)

type EquipeHandler struct {
	equipeService EquipeService
}

func NewEquipeHandler(equipeService EquipeService) *EquipeHandler {
	return &EquipeHandler{equipeService: equipeService}
}

func (h *EquipeHandler) List(c *gin.Context) {
	var params ListEquipesRequest
	if err := c.ShouldBindQuery(&params); err != nil {
		c.Status(http.StatusBadRequest)

		return
	}

	// Paging bounds are checked before any store access.
	if params.Page < 0 || params.Size <= 0 || params.Size > 100 {
		c.Status(http.StatusBadRequest)

		return
	}

	page, err := h.equipeService.List(c.Request.Context(), params.ToDomain())
	if err != nil {
		c.Status(http.StatusInternalServerError)

		return
	}

	c.JSON(http.StatusOK, fromServicePage(*page, fromServiceEquipe))
}

func (h *EquipeHandler) Create(c *gin.Context) {
	var params CreateEquipeRequest
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Erreur de validation", "message": err.Error()})

		return
	}

	if violations := params.Validate(); len(violations) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Erreur de validation", "message": strings.Join(violations, "; ")})

		return
	}

	equipe, err := h.equipeService.Create(c.Request.Context(), params.ToDomain())

	var alreadyExists errs.EquipeAlreadyExistsError
	if errors.As(err, &alreadyExists) {
		c.JSON(http.StatusConflict, gin.H{"error": "Erreur de validation", "message": alreadyExists.Message})

		return
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur interne", "message": "Une erreur inattendue s'est produite"})

		return
	}

	c.JSON(http.StatusCreated, fromServiceEquipe(*equipe))
}

func (h *EquipeHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Status(http.StatusBadRequest)

		return
	}

	equipe, err := h.equipeService.GetByID(c.Request.Context(), id)

	if errors.As(err, &errs.EquipeNotFoundError{}) {
		c.Status(http.StatusNotFound)

		return
	}

	if err != nil {
		c.Status(http.StatusInternalServerError)

		return
	}

	c.JSON(http.StatusOK, fromServiceEquipe(*equipe))
}

func (h *EquipeHandler) GetByAcronyme(c *gin.Context) {
	equipe, err := h.equipeService.GetByAcronyme(c.Request.Context(), c.Param("acronyme"))

	if errors.As(err, &errs.EquipeNotFoundError{}) {
		c.Status(http.StatusNotFound)

		return
	}

	if err != nil {
		c.Status(http.StatusInternalServerError)

		return
	}

	c.JSON(http.StatusOK, fromServiceEquipe(*equipe))
}

// AddJoueur maps missing equipe/joueur and the already-assigned conflict to
// 400, not 404. Clients rely on this mapping.
func (h *EquipeHandler) AddJoueur(c *gin.Context) {
	equipeID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Erreur de validation", "message": err.Error()})

		return
	}

	joueurID, err := parseIDParam(c, "joueurId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Erreur de validation", "message": err.Error()})

		return
	}

	equipe, err := h.equipeService.AddJoueur(c.Request.Context(), equipeID, joueurID)
	if err != nil {
		h.respondRosterError(c, err)

		return
	}

	c.JSON(http.StatusOK, fromServiceEquipe(*equipe))
}

func (h *EquipeHandler) RemoveJoueur(c *gin.Context) {
	equipeID, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Erreur de validation", "message": err.Error()})

		return
	}

	joueurID, err := parseIDParam(c, "joueurId")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Erreur de validation", "message": err.Error()})

		return
	}

	equipe, err := h.equipeService.RemoveJoueur(c.Request.Context(), equipeID, joueurID)
	if err != nil {
		h.respondRosterError(c, err)

		return
	}

	c.JSON(http.StatusOK, fromServiceEquipe(*equipe))
}

func (h *EquipeHandler) respondRosterError(c *gin.Context, err error) {
	var equipeNotFound errs.EquipeNotFoundError
	if errors.As(err, &equipeNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Erreur de validation", "message": equipeNotFound.Message})

		return
	}

	var joueurNotFound errs.JoueurNotFoundError
	if errors.As(err, &joueurNotFound) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Erreur de validation", "message": joueurNotFound.Message})

		return
	}

	var alreadyAssigned errs.JoueurAlreadyAssignedError
	if errors.As(err, &alreadyAssigned) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Erreur de validation", "message": alreadyAssigned.Message})

		return
	}

	var notInEquipe errs.JoueurNotInEquipeError
	if errors.As(err, &notInEquipe) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Erreur de validation", "message": notInEquipe.Message})

		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur interne", "message": "Une erreur inattendue s'est produite"})
}
