package handlers

import (
	"net/http"

	response "survey_tracker/internal/adapter/http/dto/response"
	"survey_tracker/internal/domain/entities"

	"github.com/gin-gonic/gin"
)

// ListDisciplines godoc
// @Summary      Disciplines and their survey types, in display order
// @Tags         catalog
// @Produce      json
// @Success      200  {array}  response.DisciplineResponse
// @Router       /catalog/disciplines [get]
func ListDisciplines(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromCatalog(entities.Catalog))
}
