package http

import (
	"github.com/gin-gonic/gin"

	"shared-calendar/internal/model"
	"shared-calendar/pkg/response"
)

// SetVisibility godoc
// @Summary     Show or hide a calendar
// @Description Sets the visibility of a calendar, or toggles it when the body is empty. The set is persisted.
// @Tags        Filters
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string        true  "Calendar ID"
// @Param       body body visibilityReq false "Target state"
// @Success     200 {object} visibilityResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/visibility/{id} [PUT]
func (h *handler) SetVisibility(c *gin.Context) {
	ctx := c.Request.Context()
	sc, err := h.scope(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	in, err := h.processVisibilityReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	visible, err := h.uc.SetVisibility(ctx, sc, in)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, visibilityResp{CalendarID: in.CalendarID, Visible: visible})
}

// ToggleCategory godoc
// @Summary     Toggle a category
// @Description Flips one category in the selection. Uncategorized events are always shown.
// @Tags        Filters
// @Produce     json
// @Security    BearerAuth
// @Param       category path string true "Category"
// @Success     200 {object} categoriesResp
// @Failure     400 {object} response.Resp "Unknown category"
// @Router      /api/v1/categories/{category} [PUT]
func (h *handler) ToggleCategory(c *gin.Context) {
	ctx := c.Request.Context()
	sc, err := h.scope(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	out, err := h.uc.ToggleCategory(ctx, sc, model.Category(c.Param("category")))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, h.newCategoriesResp(out))
}

// SelectAllCategories godoc
// @Summary     Select every category
// @Tags        Filters
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} categoriesResp
// @Router      /api/v1/categories/all [POST]
func (h *handler) SelectAllCategories(c *gin.Context) {
	ctx := c.Request.Context()
	sc, err := h.scope(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	out, err := h.uc.SelectAllCategories(ctx, sc)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, h.newCategoriesResp(out))
}

// ClearCategories godoc
// @Summary     Deselect every category
// @Tags        Filters
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} categoriesResp
// @Router      /api/v1/categories [DELETE]
func (h *handler) ClearCategories(c *gin.Context) {
	ctx := c.Request.Context()
	sc, err := h.scope(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	out, err := h.uc.ClearCategories(ctx, sc)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, h.newCategoriesResp(out))
}

// ListGroups godoc
// @Summary     List calendar groups
// @Tags        Groups
// @Produce     json
// @Security    BearerAuth
// @Success     200 {array} groupResp
// @Router      /api/v1/groups [GET]
func (h *handler) ListGroups(c *gin.Context) {
	ctx := c.Request.Context()
	sc, err := h.scope(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	groups, err := h.uc.ListGroups(ctx, sc)
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, h.newGroupsResp(groups))
}

// CreateGroup godoc
// @Summary     Create a calendar group
// @Description Unknown calendar ids are dropped.
// @Tags        Groups
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body groupReq true "Group data"
// @Success     200 {object} groupResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/groups [POST]
func (h *handler) CreateGroup(c *gin.Context) {
	ctx := c.Request.Context()
	sc, err := h.scope(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	var req groupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	grp, err := h.uc.CreateGroup(ctx, sc, req.toInput(""))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, newGroupResp(grp))
}

// UpdateGroup godoc
// @Summary     Update a calendar group
// @Description Empty fields are kept. Omitting calendarIds keeps the members.
// @Tags        Groups
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       id   path string   true "Group ID"
// @Param       body body groupReq true "Fields to update"
// @Success     200 {object} groupResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/groups/{id} [PUT]
func (h *handler) UpdateGroup(c *gin.Context) {
	ctx := c.Request.Context()
	sc, err := h.scope(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	var req groupReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err, nil)
		return
	}

	grp, err := h.uc.UpdateGroup(ctx, sc, req.toInput(c.Param("id")))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, newGroupResp(grp))
}

// DeleteGroup godoc
// @Summary     Delete a calendar group
// @Tags        Groups
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Group ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/groups/{id} [DELETE]
func (h *handler) DeleteGroup(c *gin.Context) {
	ctx := c.Request.Context()
	sc, err := h.scope(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	if err := h.uc.DeleteGroup(ctx, sc, c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, nil)
}

// ToggleGroup godoc
// @Summary     Toggle a calendar group
// @Description Hides every calendar of a fully visible group, shows them all otherwise.
// @Tags        Groups
// @Produce     json
// @Security    BearerAuth
// @Param       id path string true "Group ID"
// @Success     200 {object} groupResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/groups/{id}/toggle [POST]
func (h *handler) ToggleGroup(c *gin.Context) {
	ctx := c.Request.Context()
	sc, err := h.scope(c)
	if err != nil {
		h.writeError(c, err)
		return
	}

	grp, err := h.uc.ToggleGroup(ctx, sc, c.Param("id"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	response.OK(c, newGroupResp(grp))
}
