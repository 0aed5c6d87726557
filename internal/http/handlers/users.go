package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"modakart.com/app/internal/http/middleware"
	"modakart.com/app/internal/http/render"
	"modakart.com/app/internal/modules/email"
	"modakart.com/app/internal/modules/users"
	"modakart.com/app/internal/shared/apperr"
)

type UsersHandler struct {
	svc    *users.Service
	repo   *users.Repo
	issuer *users.TokenIssuer
	notify *email.Notifier

	cookieName string
	secure     bool
}

func NewUsersHandler(svc *users.Service, repo *users.Repo, issuer *users.TokenIssuer, notify *email.Notifier, cookieName string, secure bool) *UsersHandler {
	return &UsersHandler{svc: svc, repo: repo, issuer: issuer, notify: notify, cookieName: cookieName, secure: secure}
}

type userView struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"isAdmin"`
}

func toUserView(u users.User) userView {
	return userView{ID: u.ID, Username: u.Username, Email: u.Email, IsAdmin: u.IsAdmin}
}

type registerReq struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (h *UsersHandler) Register(c *gin.Context) {
	var req registerReq
	if !bindJSON(c, &req) {
		return
	}

	u, err := h.svc.Register(c.Request.Context(), req.Username, req.Email, req.Password)
	if err != nil {
		if errors.Is(err, users.ErrEmailTaken) {
			middleware.Fail(c, apperr.ConflictErr("This email is already registered."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	go h.notify.Welcome(context.Background(), u.Email, u.Username)

	h.setAuthCookie(c, u)
	render.Created(c, toUserView(u))
}

type loginReq struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (h *UsersHandler) Login(c *gin.Context) {
	var req loginReq
	if !bindJSON(c, &req) {
		return
	}

	u, err := h.svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, users.ErrBadCredentials) {
			middleware.Fail(c, apperr.UnauthorizedErr("Invalid email or password."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}

	h.setAuthCookie(c, u)
	render.OK(c, toUserView(u))
}

func (h *UsersHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, "", -1, "/", "", h.secure, true)
	render.Message(c, "Logged out.")
}

func (h *UsersHandler) Profile(c *gin.Context) {
	cu, _ := middleware.CurrentUser(c)

	u, err := h.repo.ByID(c.Request.Context(), cu.ID)
	if err != nil {
		if isNotFound(err) {
			middleware.Fail(c, apperr.NotFoundErr("User not found."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	render.OK(c, toUserView(u))
}

type updateProfileReq struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"omitempty,min=8"`
}

func (h *UsersHandler) UpdateProfile(c *gin.Context) {
	cu, _ := middleware.CurrentUser(c)

	var req updateProfileReq
	if !bindJSON(c, &req) {
		return
	}

	u, err := h.svc.UpdateProfile(c.Request.Context(), cu.ID, users.ProfileInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, users.ErrEmailTaken):
			middleware.Fail(c, apperr.ConflictErr("This email is already registered."))
		case isNotFound(err):
			middleware.Fail(c, apperr.NotFoundErr("User not found."))
		default:
			middleware.Fail(c, apperr.Wrap(err))
		}
		return
	}

	// the token carries the identity, reissue after a profile change
	h.setAuthCookie(c, u)
	render.OK(c, toUserView(u))
}

// Admin endpoints.

func (h *UsersHandler) List(c *gin.Context) {
	list, err := h.repo.List(c.Request.Context())
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	out := make([]userView, 0, len(list))
	for _, u := range list {
		out = append(out, toUserView(u))
	}
	render.OK(c, out)
}

func (h *UsersHandler) Get(c *gin.Context) {
	u, err := h.repo.ByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if isNotFound(err) {
			middleware.Fail(c, apperr.NotFoundErr("User not found."))
			return
		}
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	render.OK(c, toUserView(u))
}

type adminUpdateUserReq struct {
	Username string `json:"username" binding:"required,min=3,max=64"`
	Email    string `json:"email" binding:"required,email"`
	IsAdmin  *bool  `json:"isAdmin" binding:"required"`
}

func (h *UsersHandler) Update(c *gin.Context) {
	var req adminUpdateUserReq
	if !bindJSON(c, &req) {
		return
	}

	u, err := h.repo.Update(c.Request.Context(), c.Param("id"), users.UpdateInput{
		Username: req.Username,
		Email:    req.Email,
		IsAdmin:  req.IsAdmin,
	})
	if err != nil {
		switch {
		case errors.Is(err, users.ErrEmailTaken):
			middleware.Fail(c, apperr.ConflictErr("This email is already registered."))
		case isNotFound(err):
			middleware.Fail(c, apperr.NotFoundErr("User not found."))
		default:
			middleware.Fail(c, apperr.Wrap(err))
		}
		return
	}
	render.OK(c, toUserView(u))
}

func (h *UsersHandler) Delete(c *gin.Context) {
	err := h.svc.DeleteUser(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, users.ErrAdminDelete):
			middleware.Fail(c, apperr.ForbiddenErr("Admin users cannot be deleted."))
		case isNotFound(err):
			middleware.Fail(c, apperr.NotFoundErr("User not found."))
		default:
			middleware.Fail(c, apperr.Wrap(err))
		}
		return
	}
	render.Message(c, "User deleted.")
}

func (h *UsersHandler) setAuthCookie(c *gin.Context, u users.User) {
	tok, err := h.issuer.Issue(u)
	if err != nil {
		middleware.Fail(c, apperr.Wrap(err))
		return
	}
	maxAge := int(h.issuer.TTL() / time.Second)
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookieName, tok, maxAge, "/", "", h.secure, true)
}
