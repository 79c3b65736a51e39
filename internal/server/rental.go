package server

import (
	"strings"

	"github.com/gin-gonic/gin"
	rentaldomain "github.com/kelolalabs/kelola/internal/rental/domain"
)

type createRentalRequest struct {
	RoomID       string  `json:"room_id"`
	TenantID     string  `json:"tenant_id"`
	MoveIn       string  `json:"move_in"`
	MoveOut      string  `json:"move_out"`
	MonthlyPrice string  `json:"monthly_price"`
	Status       string  `json:"status"`
	Note         *string `json:"note"`
}

type updateRentalRequest struct {
	RoomID       *string `json:"room_id,omitempty"`
	TenantID     *string `json:"tenant_id,omitempty"`
	MoveIn       *string `json:"move_in,omitempty"`
	MoveOut      *string `json:"move_out,omitempty"`
	MonthlyPrice *string `json:"monthly_price,omitempty"`
	Note         *string `json:"note,omitempty"`
}

type updateRentalStatusRequest struct {
	Status string `json:"status"`
}

// @Summary      Create Rental
// @Description  Start a rental contract between a tenant and a room
// @Tags         rentals
// @Accept       json
// @Produce      json
// @Param        request body createRentalRequest true "Create Rental Request"
// @Success      200  {object}  DataResponse
// @Router       /rentals [post]
func (s *Server) CreateRental(c *gin.Context) {
	var req createRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.rentalSvc.Create(c.Request.Context(), rentaldomain.CreateRequest{
		RoomID:       strings.TrimSpace(req.RoomID),
		TenantID:     strings.TrimSpace(req.TenantID),
		MoveIn:       strings.TrimSpace(req.MoveIn),
		MoveOut:      strings.TrimSpace(req.MoveOut),
		MonthlyPrice: strings.TrimSpace(req.MonthlyPrice),
		Status:       strings.TrimSpace(req.Status),
		Note:         req.Note,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, resp)
}

// @Summary      List Rentals
// @Description  List rental contracts, optionally filtered by tenant or status
// @Tags         rentals
// @Produce      json
// @Param        tenant_id  query  string  false  "Tenant ID"
// @Param        status     query  string  false  "Rental Status"
// @Success      200  {object}  ListResponse
// @Router       /rentals [get]
func (s *Server) ListRentals(c *gin.Context) {
	resp, err := s.rentalSvc.List(c.Request.Context(), rentaldomain.ListRequest{
		TenantID: strings.TrimSpace(c.Query("tenant_id")),
		Status:   strings.TrimSpace(c.Query("status")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondList(c, resp)
}

// @Summary      Get Rental
// @Description  Get rental by ID
// @Tags         rentals
// @Produce      json
// @Param        id   path      string  true  "Rental ID"
// @Success      200  {object}  DataResponse
// @Router       /rentals/{id} [get]
func (s *Server) GetRentalByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.rentalSvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, resp)
}

// @Summary      Update Rental
// @Description  Update rental contract fields
// @Tags         rentals
// @Accept       json
// @Produce      json
// @Param        id       path      string               true  "Rental ID"
// @Param        request  body      updateRentalRequest  true  "Update Rental Request"
// @Success      200  {object}  DataResponse
// @Router       /rentals/{id} [patch]
func (s *Server) UpdateRental(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	var req updateRentalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.rentalSvc.Update(c.Request.Context(), rentaldomain.UpdateRequest{
		ID:           id,
		RoomID:       req.RoomID,
		TenantID:     req.TenantID,
		MoveIn:       req.MoveIn,
		MoveOut:      req.MoveOut,
		MonthlyPrice: req.MonthlyPrice,
		Note:         req.Note,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, resp)
}

// @Summary      Update Rental Status
// @Description  Transition a rental through its lifecycle
// @Tags         rentals
// @Accept       json
// @Produce      json
// @Param        id       path      string                     true  "Rental ID"
// @Param        request  body      updateRentalStatusRequest  true  "Update Rental Status Request"
// @Success      200  {object}  DataResponse
// @Router       /rentals/{id}/status [post]
func (s *Server) UpdateRentalStatus(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	var req updateRentalStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.rentalSvc.UpdateStatus(c.Request.Context(), rentaldomain.UpdateStatusRequest{
		ID:     id,
		Status: strings.TrimSpace(req.Status),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, resp)
}

// @Summary      Delete Rental
// @Description  Delete a rental contract
// @Tags         rentals
// @Produce      json
// @Param        id   path      string  true  "Rental ID"
// @Success      200  {object}  DataResponse
// @Router       /rentals/{id} [delete]
func (s *Server) DeleteRental(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.rentalSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, gin.H{"deleted": true})
}
