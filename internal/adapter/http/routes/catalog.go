package routes

import (
	"survey_tracker/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathCatalog = "/catalog"

func addCatalogRoutes(rg *gin.RouterGroup) {
	rg.GET(PathCatalog+"/disciplines", handlers.ListDisciplines)
}
