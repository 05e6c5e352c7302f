package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/archetype-labs/minter-suite/base/ctx"
	"github.com/archetype-labs/minter-suite/base/delivery"
	"github.com/archetype-labs/minter-suite/domain"
	"github.com/archetype-labs/minter-suite/domain/registry"
	"github.com/archetype-labs/minter-suite/middleware"
	authMiddleware "github.com/archetype-labs/minter-suite/stores/auth/delivery/http/middleware"
)

type handler struct {
	registry registry.UseCase
}

func New(e *echo.Echo, registryUC registry.UseCase, authMiddleware *authMiddleware.AuthMiddleware) {
	h := &handler{registryUC}

	g := e.Group("/registry")

	g.GET("/projects/:coreContract/:projectId/minter", h.getMinterForProject)

	g.GET("/projects/:coreContract/:projectId/hasMinter", h.projectHasMinter)

	g.POST("/projects/:coreContract/:projectId/minter", h.setMinterForProject, authMiddleware.Auth())

	g.DELETE("/projects/:coreContract/:projectId/minter", h.removeMinterForProject, authMiddleware.Auth())

	g.POST("/projects/removeMinters", h.removeMintersForProjects, authMiddleware.Auth())

	g.GET("/minters/:minter/projects", h.getProjectsForMinter)

	g.GET("/minters/:minter/numProjects", h.numProjectsUsingMinter)

	g.GET("/approvedMinters", h.getApprovedMinters, middleware.CacheHttp(30*time.Second))

	g.POST("/approvedMinters", h.approveMinter, authMiddleware.Auth())

	g.DELETE("/approvedMinters", h.revokeMinter, authMiddleware.Auth())

	g.POST("/ownership", h.transferOwnership, authMiddleware.Auth())

	g.POST("/coreRegistry", h.updateCoreRegistry, authMiddleware.Auth())
}

func parseProjectKey(c echo.Context) (domain.ProjectKey, error) {
	projectId, err := strconv.ParseUint(c.Param("projectId"), 10, 64)
	if err != nil {
		return domain.ProjectKey{}, domain.ErrBadParamInput
	}
	key := domain.NewProjectKey(domain.Address(c.Param("coreContract")), domain.ProjectId(projectId))
	return key, nil
}

func (h *handler) getMinterForProject(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	key, err := parseProjectKey(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if minter, err := h.registry.GetMinterForProject(ctx, key); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, minter)
	}
}

func (h *handler) projectHasMinter(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	key, err := parseProjectKey(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if hasMinter, err := h.registry.ProjectHasMinter(ctx, key); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, hasMinter)
	}
}

func (h *handler) setMinterForProject(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	sender := c.Get("address").(domain.Address)

	key, err := parseProjectKey(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	type payload struct {
		Minter domain.Address `json:"minter"`
	}

	p := &payload{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if err := h.registry.SetMinterForProject(ctx, sender, key, p.Minter); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) removeMinterForProject(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	sender := c.Get("address").(domain.Address)

	key, err := parseProjectKey(c)
	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, err)
	}

	if err := h.registry.RemoveMinterForProject(ctx, sender, key); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) removeMintersForProjects(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	sender := c.Get("address").(domain.Address)

	type payload struct {
		CoreContract domain.Address     `json:"coreContract"`
		ProjectIds   []domain.ProjectId `json:"projectIds"`
	}

	p := &payload{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if len(p.ProjectIds) == 0 {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	keys := make([]domain.ProjectKey, 0, len(p.ProjectIds))
	for _, id := range p.ProjectIds {
		keys = append(keys, domain.NewProjectKey(p.CoreContract, id))
	}

	if err := h.registry.RemoveMintersForProjects(ctx, sender, keys); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) getProjectsForMinter(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	minter := domain.Address(c.Param("minter"))

	if assignments, err := h.registry.GetProjectsForMinter(ctx, minter); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, assignments)
	}
}

func (h *handler) numProjectsUsingMinter(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	minter := domain.Address(c.Param("minter"))

	if count, err := h.registry.NumProjectsUsingMinter(ctx, minter); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, count)
	}
}

func (h *handler) getApprovedMinters(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	type params struct {
		Scope        registry.ApprovalScope `query:"scope"`
		CoreContract domain.Address         `query:"coreContract"`
	}

	p := &params{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if p.Scope == "" {
		p.Scope = registry.ApprovalScopeGlobal
	}

	if approvals, err := h.registry.GetApprovedMinters(ctx, p.Scope, p.CoreContract); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	} else {
		return delivery.MakeJsonResp(c, http.StatusOK, approvals)
	}
}

func (h *handler) approveMinter(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	sender := c.Get("address").(domain.Address)

	type payload struct {
		Minter       domain.Address         `json:"minter"`
		Scope        registry.ApprovalScope `json:"scope"`
		CoreContract domain.Address         `json:"coreContract"`
		MinterType   string                 `json:"minterType"`
	}

	p := &payload{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	var err error
	switch p.Scope {
	case registry.ApprovalScopeGlobal:
		err = h.registry.ApproveMinterGlobally(ctx, sender, p.Minter, p.MinterType)
	case registry.ApprovalScopeContract:
		err = h.registry.ApproveMinterForContract(ctx, sender, p.CoreContract, p.Minter, p.MinterType)
	default:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) revokeMinter(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	sender := c.Get("address").(domain.Address)

	type payload struct {
		Minter       domain.Address         `json:"minter"`
		Scope        registry.ApprovalScope `json:"scope"`
		CoreContract domain.Address         `json:"coreContract"`
	}

	p := &payload{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	var err error
	switch p.Scope {
	case registry.ApprovalScopeGlobal:
		err = h.registry.RevokeMinterGlobally(ctx, sender, p.Minter)
	case registry.ApprovalScopeContract:
		err = h.registry.RevokeMinterForContract(ctx, sender, p.CoreContract, p.Minter)
	default:
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) transferOwnership(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	sender := c.Get("address").(domain.Address)

	type payload struct {
		NewOwner domain.Address `json:"newOwner"`
	}

	p := &payload{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if err := h.registry.TransferOwnership(ctx, sender, p.NewOwner); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}

func (h *handler) updateCoreRegistry(c echo.Context) error {
	ctx := c.Get("ctx").(ctx.Ctx)

	sender := c.Get("address").(domain.Address)

	type payload struct {
		CoreRegistry domain.Address `json:"coreRegistry"`
	}

	p := &payload{}

	if err := c.Bind(p); err != nil {
		return delivery.MakeJsonResp(c, http.StatusBadRequest, domain.ErrBadParamInput)
	}

	if err := h.registry.UpdateCoreRegistry(ctx, sender, p.CoreRegistry); err != nil {
		return delivery.MakeJsonResp(c, http.StatusInternalServerError, err)
	}

	return delivery.MakeJsonResp(c, http.StatusOK, "ok")
}
