package server

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/routeplanner/catalog"
	"github.com/katalvlaran/routeplanner/planner"
	"github.com/katalvlaran/routeplanner/route"
)

// maxBatch caps the number of requests in one batch call.
const maxBatch = 100

type routeQuery struct {
	Start       string `form:"start" binding:"required"`
	End         string `form:"end" binding:"required"`
	Attractions string `form:"attractions"`
}

type routeRequest struct {
	Start       string   `json:"start" binding:"required"`
	End         string   `json:"end" binding:"required"`
	Attractions []string `json:"attractions"`
}

type batchRequest struct {
	Requests []routeRequest `json:"requests" binding:"required,min=1,max=100,dive"`
}

type routeResponse struct {
	Cities   []string `json:"cities"`
	Distance int64    `json:"distance"`
	Summary  string   `json:"summary"`
}

type batchItem struct {
	Route  *routeResponse `json:"route,omitempty"`
	Error  string         `json:"error,omitempty"`
	Status int            `json:"status"`
}

func newRouteResponse(r route.Route) routeResponse {
	return routeResponse{Cities: r.Cities, Distance: r.Distance, Summary: r.String()}
}

func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":      "ok",
		"cities":      len(s.planner.Cities()),
		"attractions": s.attractions.Len(),
	})
}

func (s *Server) listCities(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cities": s.planner.Cities()})
}

func (s *Server) listAttractions(c *gin.Context) {
	city := strings.TrimSpace(c.Query("city"))
	if city == "" {
		c.JSON(http.StatusOK, gin.H{"attractions": s.attractions.All()})
		return
	}
	if !s.planner.HasCity(city) {
		s.respondWithPlanError(c, &planner.UnknownCityError{City: city, Role: "filter"})
		return
	}

	names := s.attractions.AttractionsIn(city)
	out := make([]catalog.Attraction, 0, len(names))
	for _, n := range names {
		out = append(out, catalog.Attraction{Name: n, City: city})
	}
	c.JSON(http.StatusOK, gin.H{"attractions": out})
}

func (s *Server) distancesFrom(c *gin.Context) {
	city := c.Param("city")
	dist, err := s.planner.DistancesFrom(city)
	if err != nil {
		s.respondWithPlanError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"from": city, "distances": dist})
}

type reachableQuery struct {
	MaxHops int `form:"max_hops" binding:"min=0"`
}

func (s *Server) reachable(c *gin.Context) {
	var q reachableQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithClientError(c, http.StatusBadRequest, "max_hops must be a non-negative integer")
		return
	}

	city := c.Param("city")
	hops, err := s.planner.Reachable(city, q.MaxHops)
	if err != nil {
		s.respondWithPlanError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"from": city, "hops": hops})
}

func (s *Server) listRegions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"regions": s.planner.Regions()})
}

// routeByQuery serves GET /v1/route?start=&end=&attractions=a,b.
func (s *Server) routeByQuery(c *gin.Context) {
	var q routeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondWithClientError(c, http.StatusBadRequest, "start and end are required")
		return
	}

	var attractions []string
	if q.Attractions != "" {
		attractions = strings.Split(q.Attractions, ",")
	}
	s.plan(c, q.Start, q.End, attractions)
}

func (s *Server) routeByBody(c *gin.Context) {
	var req routeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithClientError(c, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}
	s.plan(c, req.Start, req.End, req.Attractions)
}

func (s *Server) plan(c *gin.Context, start, end string, attractions []string) {
	r, err := s.planner.PlanRoute(strings.TrimSpace(start), strings.TrimSpace(end), attractions)
	if err != nil {
		s.respondWithPlanError(c, err)
		return
	}
	c.JSON(http.StatusOK, newRouteResponse(r))
}

func (s *Server) routeBatch(c *gin.Context) {
	var req batchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithClientError(c, http.StatusBadRequest,
			fmt.Sprintf("invalid batch: expected 1 to %d requests with start and end: %v", maxBatch, err))
		return
	}

	reqs := make([]planner.Request, len(req.Requests))
	for i, r := range req.Requests {
		reqs[i] = planner.Request{
			Start:       strings.TrimSpace(r.Start),
			End:         strings.TrimSpace(r.End),
			Attractions: r.Attractions,
		}
	}

	results := s.planner.PlanBatch(c.Request.Context(), reqs)
	items := make([]batchItem, len(results))
	for i, res := range results {
		if res.Err != nil {
			items[i] = batchItem{Error: res.Err.Error(), Status: statusFor(res.Err)}
			continue
		}
		rr := newRouteResponse(res.Route)
		items[i] = batchItem{Route: &rr, Status: http.StatusOK}
	}
	c.JSON(http.StatusOK, gin.H{"results": items})
}
