package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/substring-agent/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/substring-agent/internal/models"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Health endpoint
	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.POST("/analyze").
			To(handler.Analyze).
			Doc("Find the longest substring without repeating characters").
			Metadata(restfulspec.KeyOpenAPITags, []string{"analyze"}).
			Reads(models.AnalysisRequest{}).
			Writes(models.AnalysisResult{}).
			Returns(200, "OK", models.AnalysisResult{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(500, "Internal Server Error", middleware.ErrorResponse{}))

	ws.
		Route(ws.POST("/cases/run").
			To(handler.RunCases).
			Doc("Run every configured demonstration case").
			Metadata(restfulspec.KeyOpenAPITags, []string{"cases"}).
			Writes(CasesResponse{}).
			Returns(200, "OK", CasesResponse{}))

	ws.
		Route(ws.GET("/results/{id}").
			To(handler.GetResult).
			Doc("Fetch a stored analysis result").
			Metadata(restfulspec.KeyOpenAPITags, []string{"results"}).
			Param(ws.PathParameter("id", "Case identifier").DataType("string")).
			Writes(models.AnalysisResult{}).
			Returns(200, "OK", models.AnalysisResult{}).
			Returns(404, "Result Not Found", middleware.ErrorResponse{}).
			Returns(503, "Result Store Not Configured", middleware.ErrorResponse{}))

	container.Add(ws)
}
