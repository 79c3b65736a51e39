package server

import (
	"strings"

	"github.com/gin-gonic/gin"
	roomdomain "github.com/kelolalabs/kelola/internal/room/domain"
)

type createRoomRequest struct {
	PropertyID string `json:"property_id"`
	Name       string `json:"name"`
	Status     string `json:"status"`
	Price      string `json:"price"`
}

type updateRoomRequest struct {
	PropertyID *string `json:"property_id,omitempty"`
	Name       *string `json:"name,omitempty"`
	Status     *string `json:"status,omitempty"`
	Price      *string `json:"price,omitempty"`
}

// @Summary      Create Room
// @Description  Create a room under a property
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        request body createRoomRequest true "Create Room Request"
// @Success      200  {object}  DataResponse
// @Router       /rooms [post]
func (s *Server) CreateRoom(c *gin.Context) {
	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.roomSvc.Create(c.Request.Context(), roomdomain.CreateRequest{
		PropertyID: strings.TrimSpace(req.PropertyID),
		Name:       strings.TrimSpace(req.Name),
		Status:     strings.TrimSpace(req.Status),
		Price:      strings.TrimSpace(req.Price),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, resp)
}

// @Summary      List Rooms
// @Description  List rooms, optionally scoped to one property
// @Tags         rooms
// @Produce      json
// @Param        property_id  query  string  false  "Property ID"
// @Success      200  {object}  ListResponse
// @Router       /rooms [get]
func (s *Server) ListRooms(c *gin.Context) {
	resp, err := s.roomSvc.List(c.Request.Context(), roomdomain.ListRequest{
		PropertyID: strings.TrimSpace(c.Query("property_id")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondList(c, resp)
}

// @Summary      Get Room
// @Description  Get room by ID
// @Tags         rooms
// @Produce      json
// @Param        id   path      string  true  "Room ID"
// @Success      200  {object}  DataResponse
// @Router       /rooms/{id} [get]
func (s *Server) GetRoomByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.roomSvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, resp)
}

// @Summary      Update Room
// @Description  Update room details
// @Tags         rooms
// @Accept       json
// @Produce      json
// @Param        id       path      string             true  "Room ID"
// @Param        request  body      updateRoomRequest  true  "Update Room Request"
// @Success      200  {object}  DataResponse
// @Router       /rooms/{id} [patch]
func (s *Server) UpdateRoom(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	var req updateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.roomSvc.Update(c.Request.Context(), roomdomain.UpdateRequest{
		ID:         id,
		PropertyID: req.PropertyID,
		Name:       req.Name,
		Status:     req.Status,
		Price:      req.Price,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, resp)
}

// @Summary      Delete Room
// @Description  Delete a room
// @Tags         rooms
// @Produce      json
// @Param        id   path      string  true  "Room ID"
// @Success      200  {object}  DataResponse
// @Router       /rooms/{id} [delete]
func (s *Server) DeleteRoom(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.roomSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, gin.H{"deleted": true})
}
