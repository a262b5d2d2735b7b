package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/OumaimaAyadi17/Football/errs"
	"github.com/gin-gonic/gin"
)

type JoueurHandler struct {
	joueurService JoueurService
}

func NewJoueurHandler(joueurService JoueurService) *JoueurHandler {
	return &JoueurHandler{joueurService: joueurService}
}

func (h *JoueurHandler) List(c *gin.Context) {
	var params ListJoueursRequest
	if err := c.ShouldBindQuery(&params); err != nil {
		c.Status(http.StatusBadRequest)

		return
	}

	if params.Page < 0 || params.Size <= 0 || params.Size > 100 {
		c.Status(http.StatusBadRequest)

		return
	}

	page, err := h.joueurService.List(c.Request.Context(), params.ToDomain())
	if err != nil {
		c.Status(http.StatusInternalServerError)

		return
	}

	c.JSON(http.StatusOK, fromServicePage(*page, fromServiceJoueur))
}

func (h *JoueurHandler) Create(c *gin.Context) {
	var params CreateJoueurRequest
	if err := c.ShouldBindJSON(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Erreur de validation", "message": err.Error()})

		return
	}

	if violations := params.Validate(); len(violations) > 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Erreur de validation", "message": strings.Join(violations, "; ")})

		return
	}

	joueur, err := h.joueurService.Create(c.Request.Context(), params.ToDomain())

	var alreadyExists errs.JoueurAlreadyExistsError
	if errors.As(err, &alreadyExists) {
		c.JSON(http.StatusConflict, gin.H{"error": "Erreur de validation", "message": alreadyExists.Message})

		return
	}

	var equipeNotFound errs.EquipeNotFoundError
	if errors.As(err, &equipeNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Erreur de validation", "message": equipeNotFound.Message})

		return
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur interne", "message": "Une erreur inattendue s'est produite"})

		return
	}

	c.JSON(http.StatusCreated, fromServiceJoueur(*joueur))
}

func (h *JoueurHandler) GetByID(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Status(http.StatusBadRequest)

		return
	}

	joueur, err := h.joueurService.GetByID(c.Request.Context(), id)

	if errors.As(err, &errs.JoueurNotFoundError{}) {
		c.Status(http.StatusNotFound)

		return
	}

	if err != nil {
		c.Status(http.StatusInternalServerError)

		return
	}

	c.JSON(http.StatusOK, fromServiceJoueur(*joueur))
}

func (h *JoueurHandler) Transfer(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Erreur de validation", "message": err.Error()})

		return
	}

	var params TransferJoueurRequest
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Erreur de validation", "message": err.Error()})

		return
	}

	joueur, err := h.joueurService.Transfer(c.Request.Context(), id, params.EquipeID)

	var joueurNotFound errs.JoueurNotFoundError
	if errors.As(err, &joueurNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Erreur de transfert", "message": joueurNotFound.Message})

		return
	}

	var equipeNotFound errs.EquipeNotFoundError
	if errors.As(err, &equipeNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Erreur de transfert", "message": equipeNotFound.Message})

		return
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur interne", "message": "Une erreur inattendue s'est produite"})

		return
	}

	c.JSON(http.StatusOK, fromServiceJoueur(*joueur))
}

func (h *JoueurHandler) Delete(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		c.Status(http.StatusBadRequest)

		return
	}

	deleted, err := h.joueurService.Delete(c.Request.Context(), id)
	if err != nil {
		c.Status(http.StatusInternalServerError)

		return
	}

	if !deleted {
		c.Status(http.StatusNotFound)

		return
	}

	c.Status(http.StatusNoContent)
}
