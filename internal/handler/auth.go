package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/martinwilchesdev/backend-web-app/internal/models"
	"github.com/martinwilchesdev/backend-web-app/internal/store"
	"github.com/martinwilchesdev/backend-web-app/internal/util"

	"github.com/gin-gonic/gin"
)

// 登录失败统一提示，用户名不存在和密码错误必须返回完全相同的文本
const loginFailedMsg = "Invalid username or password."

// AuthHandler 负责登录/注册/注销相关接口
type AuthHandler struct {
	Store      *store.UserStore
	JWTSecret  string
	TokenTTL   time.Duration
	BcryptCost int
}

// NewAuthHandler 构造函数
func NewAuthHandler(s *store.UserStore, jwtSecret string, ttlHours int, bcryptCost int) *AuthHandler {
	ttl := util.SessionTTL
	if ttlHours > 0 {
		ttl = time.Duration(ttlHours) * time.Hour
	}
	if bcryptCost <= 0 {
		bcryptCost = util.DefaultBcryptCost
	}
	return &AuthHandler{
		Store:      s,
		JWTSecret:  jwtSecret,
		TokenTTL:   ttl,
		BcryptCost: bcryptCost,
	}
}

// credentialsReq is the typed shape of a registration or login form.
// Missing or non-string fields bind to "", which the validator then
// rejects; no coercion happens past this boundary.
type credentialsReq struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

func bindCredentials(c *gin.Context) credentialsReq {
	var req credentialsReq
	// a malformed body leaves fields empty, same as absent ones
	_ = c.ShouldBind(&req)
	req.Username = strings.TrimSpace(req.Username)
	return req
}

// ---------- 注册 ----------

// register runs the registration flow. userErrs holds recoverable,
// user-facing errors; err is a server fault.
func (h *AuthHandler) register(username, password string) (user *models.User, token string, userErrs []string, err error) {
	if errs := util.ValidateCredentials(username, password); len(errs) > 0 {
		return nil, "", errs, nil
	}

	hash, err := util.HashPassword(password, h.BcryptCost)
	if err != nil {
		return nil, "", nil, err
	}

	user, err = h.Store.Create(username, hash)
	if err != nil {
		if err == store.ErrUsernameTaken {
			return nil, "", []string{"That username is already taken."}, nil
		}
		return nil, "", nil, err
	}

	token, err = util.GenerateToken(h.JWTSecret, user.ID, user.Username, h.TokenTTL)
	if err != nil {
		return nil, "", nil, err
	}
	return user, token, nil, nil
}

// Register JSON 注册接口
func (h *AuthHandler) Register(c *gin.Context) {
	req := bindCredentials(c)

	user, token, userErrs, err := h.register(req.Username, req.Password)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to create user")
		return
	}
	if len(userErrs) > 0 {
		util.Errors(c, http.StatusBadRequest, util.CodeInvalidParam, userErrs)
		return
	}

	h.setSessionCookie(c, token)
	util.Success(c, util.Response{
		"message": "User created",
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
		},
	})
}

// RegisterForm 表单注册：校验失败时带错误列表重新渲染主页
func (h *AuthHandler) RegisterForm(c *gin.Context) {
	req := bindCredentials(c)

	_, token, userErrs, err := h.register(req.Username, req.Password)
	if err != nil {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	if len(userErrs) > 0 {
		c.HTML(http.StatusOK, "homepage.html", gin.H{"errors": userErrs})
		return
	}

	h.setSessionCookie(c, token)
	c.Redirect(http.StatusFound, "/dashboard")
}

// ---------- 登录 ----------

// login runs the login flow. A missing user and a wrong password both
// yield the same generic message so usernames cannot be enumerated.
func (h *AuthHandler) login(username, password string) (user *models.User, token string, failMsg string, err error) {
	if username == "" || password == "" {
		return nil, "", loginFailedMsg, nil
	}

	user, err = h.Store.FindByUsername(username)
	if err != nil {
		if err == store.ErrNotFound {
			return nil, "", loginFailedMsg, nil
		}
		return nil, "", "", err
	}

	if !util.CheckPassword(password, user.PasswordHash) {
		return nil, "", loginFailedMsg, nil
	}

	token, err = util.GenerateToken(h.JWTSecret, user.ID, user.Username, h.TokenTTL)
	if err != nil {
		return nil, "", "", err
	}
	return user, token, "", nil
}

// Login JSON 登录接口
func (h *AuthHandler) Login(c *gin.Context) {
	req := bindCredentials(c)

	user, token, failMsg, err := h.login(req.Username, req.Password)
	if err != nil {
		util.Error(c, http.StatusInternalServerError, util.CodeServerErr, "failed to log in")
		return
	}
	if failMsg != "" {
		util.Error(c, http.StatusUnauthorized, util.CodeAuth, failMsg)
		return
	}

	h.setSessionCookie(c, token)
	util.Success(c, util.Response{
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
		},
	})
}

// LoginForm 表单登录
func (h *AuthHandler) LoginForm(c *gin.Context) {
	req := bindCredentials(c)

	_, token, failMsg, err := h.login(req.Username, req.Password)
	if err != nil {
		c.String(http.StatusInternalServerError, "internal error")
		return
	}
	if failMsg != "" {
		c.HTML(http.StatusOK, "login.html", gin.H{"errors": []string{failMsg}})
		return
	}

	h.setSessionCookie(c, token)
	c.Redirect(http.StatusFound, "/dashboard")
}

// ---------- 注销 ----------

// Logout clears the session cookie. The token is stateless so there is
// nothing to revoke server-side.
func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearSessionCookie(c)
	c.Redirect(http.StatusFound, "/")
}

// ---------- cookie ----------

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(util.SessionCookie, token, int(h.TokenTTL.Seconds()), "/", "", true, true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(util.SessionCookie, "", -1, "/", "", true, true)
}
