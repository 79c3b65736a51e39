package server

import (
	"strings"

	"github.com/gin-gonic/gin"
	tenantdomain "github.com/kelolalabs/kelola/internal/tenant/domain"
)

type createTenantRequest struct {
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	KtpAddress string  `json:"ktp_address"`
	Note       *string `json:"note"`
}

type updateTenantRequest struct {
	Name       *string `json:"name,omitempty"`
	Phone      *string `json:"phone,omitempty"`
	KtpAddress *string `json:"ktp_address,omitempty"`
	Note       *string `json:"note,omitempty"`
}

// @Summary      Create Tenant
// @Description  Register a new tenant
// @Tags         tenants
// @Accept       json
// @Produce      json
// @Param        request body createTenantRequest true "Create Tenant Request"
// @Success      200  {object}  DataResponse
// @Router       /tenants [post]
func (s *Server) CreateTenant(c *gin.Context) {
	var req createTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.tenantSvc.Create(c.Request.Context(), tenantdomain.CreateRequest{
		Name:       strings.TrimSpace(req.Name),
		Phone:      strings.TrimSpace(req.Phone),
		KtpAddress: strings.TrimSpace(req.KtpAddress),
		Note:       req.Note,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, resp)
}

// @Summary      List Tenants
// @Description  List all tenants
// @Tags         tenants
// @Produce      json
// @Success      200  {object}  ListResponse
// @Router       /tenants [get]
func (s *Server) ListTenants(c *gin.Context) {
	resp, err := s.tenantSvc.List(c.Request.Context())
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondList(c, resp)
}

// @Summary      Get Tenant
// @Description  Get tenant by ID
// @Tags         tenants
// @Produce      json
// @Param        id   path      string  true  "Tenant ID"
// @Success      200  {object}  DataResponse
// @Router       /tenants/{id} [get]
func (s *Server) GetTenantByID(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	resp, err := s.tenantSvc.Get(c.Request.Context(), id)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, resp)
}

// @Summary      Update Tenant
// @Description  Update tenant details
// @Tags         tenants
// @Accept       json
// @Produce      json
// @Param        id       path      string               true  "Tenant ID"
// @Param        request  body      updateTenantRequest  true  "Update Tenant Request"
// @Success      200  {object}  DataResponse
// @Router       /tenants/{id} [patch]
func (s *Server) UpdateTenant(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))

	var req updateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, invalidRequestError())
		return
	}

	resp, err := s.tenantSvc.Update(c.Request.Context(), tenantdomain.UpdateRequest{
		ID:         id,
		Name:       req.Name,
		Phone:      req.Phone,
		KtpAddress: req.KtpAddress,
		Note:       req.Note,
	})
	if err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, resp)
}

// @Summary      Delete Tenant
// @Description  Delete a tenant
// @Tags         tenants
// @Produce      json
// @Param        id   path      string  true  "Tenant ID"
// @Success      200  {object}  DataResponse
// @Router       /tenants/{id} [delete]
func (s *Server) DeleteTenant(c *gin.Context) {
	id := strings.TrimSpace(c.Param("id"))
	if err := s.tenantSvc.Delete(c.Request.Context(), id); err != nil {
		AbortWithError(c, err)
		return
	}

	respondData(c, gin.H{"deleted": true})
}
