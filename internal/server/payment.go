package server

import (
	"strings"

	"github.com/gin-gonic/gin"
	paymentdomain "github.com/kelolalabs/kelola/internal/payment/domain"
)

type createPaymentRequest struct {
	RentalID string  `json:"rental_id"`
	Amount   string  `json:"amount"`
	ForMonth string  `json:"for_month"`
	Note     *string `json:"note"`
}

type updatePaymentRequest struct {
	RentalID *string `json:"rental_id,omitempty"`
	Amount   *string `json:"amount,omitempty"`
	ForMonth *string `json:"for_month,omitempty"`
	Note     *string `json:"note,omitempty"`
}

// @Summary      Record Payment
// @Description  Record a payment against a rental contract
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        request body createPaymentRequest true "Create Payment Request"
// @Success      200  {object}  DataResponse
// @Router       /payments [post]
func (s *Server) CreatePayment(c *gin.Context) {
	var req createPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.paymentSvc.Create(c.Request.Context(), paymentdomain.CreateRequest{
		RentalID: strings.TrimSpace(req.RentalID),
		Amount:   strings.TrimSpace(req.Amount),
		ForMonth: strings.TrimSpace(req.ForMonth),
		Note:     req.Note,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, resp)
}

// @Summary      List Payments
// @Description  List payments, optionally scoped to one rental
// @Tags         payments
// @Produce      json
// @Param        rental_id  query  string  false  "Rental ID"
// @Success      200  {object}  ListResponse
// @Router       /payments [get]
func (s *Server) ListPayments(c *gin.Context) {
	resp, err := s.paymentSvc.List(c.Request.Context(), paymentdomain.ListRequest{
		RentalID: strings.TrimSpace(c.Query("rental_id")),
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondList(c, resp)
}

// @Summary      Get Payment
// @Description  Get payment by ID
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Payment ID"
// @Success      200  {object}  DataResponse
// @Router       /payments/{id} [get]
func (s *Server) GetPaymentByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.paymentSvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, resp)
}

// @Summary      Update Payment
// @Description  Correct a recorded payment
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        id       path      string                true  "Payment ID"
// @Param        request  body      updatePaymentRequest  true  "Update Payment Request"
// @Success      200  {object}  DataResponse
// @Router       /payments/{id} [patch]
func (s *Server) UpdatePayment(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	var req updatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.paymentSvc.Update(c.Request.Context(), paymentdomain.UpdateRequest{
		ID:       id,
		RentalID: req.RentalID,
		Amount:   req.Amount,
		ForMonth: req.ForMonth,
		Note:     req.Note,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, resp)
}

// @Summary      Delete Payment
// @Description  Delete a recorded payment
// @Tags         payments
// @Produce      json
// @Param        id   path      string  true  "Payment ID"
// @Success      200  {object}  DataResponse
// @Router       /payments/{id} [delete]
func (s *Server) DeletePayment(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.paymentSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, gin.H{"deleted": true})
}
