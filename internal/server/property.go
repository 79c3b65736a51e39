package server

import (
	"strings"

	"github.com/gin-gonic/gin"
	propertydomain "github.com/kelolalabs/kelola/internal/property/domain"
)

type createPropertyRequest struct {
	Name           string  `json:"name"`
	Description    *string `json:"description"`
	Address        string  `json:"address"`
	Gmaps          *string `json:"gmaps"`
	ElectricNumber *string `json:"electric_number"`
	WaterNumber    *string `json:"water_number"`
}

type updatePropertyRequest struct {
	Name           *string `json:"name,omitempty"`
	Description    *string `json:"description,omitempty"`
	Address        *string `json:"address,omitempty"`
	Gmaps          *string `json:"gmaps,omitempty"`
	ElectricNumber *string `json:"electric_number,omitempty"`
	WaterNumber    *string `json:"water_number,omitempty"`
}

// @Summary      Create Property
// @Description  Create a new property
// @Tags         properties
// @Accept       json
// @Produce      json
// @Param        request body createPropertyRequest true "Create Property Request"
// @Success      200  {object}  DataResponse
// @Router       /properties [post]
func (s *Server) CreateProperty(c *gin.Context) {
	var req createPropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.propertySvc.Create(c.Request.Context(), propertydomain.CreateRequest{
		Name:           strings.TrimSpace(req.Name),
		Description:    req.Description,
		Address:        strings.TrimSpace(req.Address),
		Gmaps:          req.Gmaps,
		ElectricNumber: req.ElectricNumber,
		WaterNumber:    req.WaterNumber,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, resp)
}

// @Summary      List Properties
// @Description  List all properties
// @Tags         properties
// @Produce      json
// @Success      200  {object}  ListResponse
// @Router       /properties [get]
func (s *Server) ListProperties(c *gin.Context) {
	resp, err := s.propertySvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondList(c, resp)
}

// @Summary      Get Property
// @Description  Get property by ID
// @Tags         properties
// @Produce      json
// @Param        id   path      string  true  "Property ID"
// @Success      200  {object}  DataResponse
// @Router       /properties/{id} [get]
func (s *Server) GetPropertyByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.propertySvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, resp)
}

// @Summary      Update Property
// @Description  Update property details
// @Tags         properties
// @Accept       json
// @Produce      json
// @Param        id       path      string                 true  "Property ID"
// @Param        request  body      updatePropertyRequest  true  "Update Property Request"
// @Success      200  {object}  DataResponse
// @Router       /properties/{id} [patch]
func (s *Server) UpdateProperty(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	var req updatePropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.propertySvc.Update(c.Request.Context(), propertydomain.UpdateRequest{
		ID:             id,
		Name:           req.Name,
		Description:    req.Description,
		Address:        req.Address,
		Gmaps:          req.Gmaps,
		ElectricNumber: req.ElectricNumber,
		WaterNumber:    req.WaterNumber,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, resp)
}

// @Summary      Delete Property
// @Description  Delete a property
// @Tags         properties
// @Produce      json
// @Param        id   path      string  true  "Property ID"
// @Success      200  {object}  DataResponse
// @Router       /properties/{id} [delete]
func (s *Server) DeleteProperty(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.propertySvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, gin.H{"deleted": true})
}
