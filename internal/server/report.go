package server

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// asOfFromQuery resolves the evaluation instant for report endpoints.
// Defaults to the clock so tests and backdated reviews can pin it.
func (s *Server) asOfFromQuery(c *gin.Context) (time.Time, error) {
	raw := strings.TrimSpace(c.Query("as_of"))
	if raw == "" {
		return s.clock.Now(c.Request.Context()), nil
	}
	asOf, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return time.Time{}, newValidationError("as_of", "invalid_as_of", "as_of must be YYYY-MM-DD")
	}
	return asOf, nil
}

// @Summary      Payment Status Report
// @Description  Bucket every active rental by arrears status
// @Tags         reports
// @Produce      json
// @Param        as_of  query  string  false  "Evaluation date (YYYY-MM-DD)"
// @Success      200  {object}  DataResponse
// @Router       /reports/payment-status [get]
func (s *Server) GetPaymentStatusReport(c *gin.Context) {
	asOf, err := s.asOfFromQuery(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	resp, err := s.reportSvc.PaymentStatus(c.Request.Context(), asOf)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, resp)
}

// @Summary      Rental Payment Detail
// @Description  One rental's payment history with its computed status
// @Tags         reports
// @Produce      json
// @Param        id     path   string  true   "Rental ID"
// @Param        as_of  query  string  false  "Evaluation date (YYYY-MM-DD)"
// @Success      200  {object}  DataResponse
// @Router       /reports/rentals/{id} [get]
func (s *Server) GetRentalPaymentDetail(c *gin.Context) {
	asOf, err := s.asOfFromQuery(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.reportSvc.RentalDetail(c.Request.Context(), id, asOf)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, resp)
}

// @Summary      Export Payment Status Report
// @Description  Download the payment status report as an XLSX workbook
// @Tags         reports
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param        as_of  query  string  false  "Evaluation date (YYYY-MM-DD)"
// @Success      200  {file}  binary
// @Router       /reports/payment-status/export [get]
func (s *Server) ExportPaymentStatusReport(c *gin.Context) {
	asOf, err := s.asOfFromQuery(c)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	export, err := s.reportSvc.ExportPaymentStatusXLSX(c.Request.Context(), asOf)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", export.Filename))
	c.Data(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		export.Data)
}
