package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	authUsecases "authpanel/internal/application/auth/usecases"
	"authpanel/internal/interfaces/http/middleware"
	"authpanel/internal/shared/config"
	"authpanel/internal/shared/constants"
	apperrors "authpanel/internal/shared/errors"
	"authpanel/internal/shared/logger"
	"authpanel/internal/shared/utils"
)

// AuthHandler serves the signup, login and logout views.
type AuthHandler struct {
	signupUseCase SignupExecutor
	loginUseCase  LoginExecutor
	authConfig    config.AuthConfig
	logger        logger.Interface
}

func NewAuthHandler(
	signupUseCase SignupExecutor,
	loginUseCase LoginExecutor,
	authConfig config.AuthConfig,
	logger logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		signupUseCase: signupUseCase,
		loginUseCase:  loginUseCase,
		authConfig:    authConfig,
		logger:        logger,
	}
}

type signupForm struct {
	Username        string `form:"username" binding:"required"`
	Email           string `form:"email" binding:"required"`
	Password        string `form:"password" binding:"required"`
	PasswordConfirm string `form:"password_confirm" binding:"required,eqfield=Password"`
}

// ShowSignup renders the signup form. Authenticated users are sent to the
// post-login location instead of re-registering.
func (h *AuthHandler) ShowSignup(c *gin.Context) {
	if middleware.IsAuthenticated(c) {
		c.Redirect(http.StatusFound, h.authConfig.LoginRedirectURL)
		return
	}

	c.HTML(http.StatusOK, "signup.html", gin.H{
		"Title":        "Sign up",
		"Next":         h.sanitizeNext(c.Query(constants.NextParam)),
		"FormUsername": "",
		"FormEmail":    "",
		"FieldErrors":  gin.H{},
	})
}

// Signup handles the signup form post.
func (h *AuthHandler) Signup(c *gin.Context) {
	if middleware.IsAuthenticated(c) {
		c.Redirect(http.StatusFound, h.authConfig.LoginRedirectURL)
		return
	}

	var form signupForm
	if err := c.ShouldBind(&form); err != nil {
		h.renderSignupErrors(c, form, fieldErrorsFromBinding(err))
		return
	}

	result, err := h.signupUseCase.Execute(c.Request.Context(), authUsecases.SignupCommand{
		Username: form.Username,
		Email:    form.Email,
		Password: form.Password,
	})
	if err != nil {
		h.renderSignupErrors(c, form, fieldErrorsFromUsecase(err))
		return
	}

	utils.SetSessionCookie(c, h.authConfig.Cookie, result.SessionToken, result.MaxAge)
	c.Redirect(http.StatusFound, h.postLoginTarget(c))
}

// ShowLogin renders the login form.
func (h *AuthHandler) ShowLogin(c *gin.Context) {
	if middleware.IsAuthenticated(c) {
		c.Redirect(http.StatusFound, h.authConfig.LoginRedirectURL)
		return
	}

	c.HTML(http.StatusOK, "login.html", gin.H{
		"Title":    "Log in",
		"Username": "",
		"Next":     h.sanitizeNext(c.Query(constants.NextParam)),
	})
}

// Login handles the login form post.
func (h *AuthHandler) Login(c *gin.Context) {
	if middleware.IsAuthenticated(c) {
		c.Redirect(http.StatusFound, h.authConfig.LoginRedirectURL)
		return
	}

	username := strings.TrimSpace(c.PostForm("username"))
	password := c.PostForm("password")

	result, err := h.loginUseCase.Execute(c.Request.Context(), authUsecases.LoginCommand{
		Username: username,
		Password: password,
	})
	if err != nil {
		message := "invalid username or password"
		if appErr := apperrors.GetAppError(err); appErr == nil {
			h.logger.Errorw("login failed", "error", err)
			message = "login is temporarily unavailable"
		}
		c.HTML(http.StatusOK, "login.html", gin.H{
			"Title":    "Log in",
			"Error":    message,
			"Username": username,
			"Next":     h.sanitizeNext(c.PostForm(constants.NextParam)),
		})
		return
	}

	utils.SetSessionCookie(c, h.authConfig.Cookie, result.SessionToken, result.MaxAge)
	c.Redirect(http.StatusFound, h.postLoginTarget(c))
}

// Logout clears the session regardless of prior auth state.
func (h *AuthHandler) Logout(c *gin.Context) {
	utils.ClearSessionCookie(c, h.authConfig.Cookie)
	c.Redirect(http.StatusFound, h.authConfig.LogoutRedirectURL)
}

// postLoginTarget resolves the redirect after signup/login: the posted or
// queried next parameter when safe, the configured default otherwise.
func (h *AuthHandler) postLoginTarget(c *gin.Context) string {
	next := c.PostForm(constants.NextParam)
	if next == "" {
		next = c.Query(constants.NextParam)
	}
	if target := h.sanitizeNext(next); target != "" {
		return target
	}
	return h.authConfig.LoginRedirectURL
}

// sanitizeNext accepts only site-relative paths, dropping anything that
// could redirect off-site.
func (h *AuthHandler) sanitizeNext(next string) string {
	if next == "" || !strings.HasPrefix(next, "/") || strings.HasPrefix(next, "//") {
		return ""
	}
	return next
}

func (h *AuthHandler) renderSignupErrors(c *gin.Context, form signupForm, fieldErrors gin.H) {
	c.HTML(http.StatusOK, "signup.html", gin.H{
		"Title":        "Sign up",
		"Next":         h.sanitizeNext(c.PostForm(constants.NextParam)),
		"FormUsername": form.Username,
		"FormEmail":    form.Email,
		"FieldErrors":  fieldErrors,
	})
}

// fieldErrorsFromBinding maps binding failures onto form fields.
func fieldErrorsFromBinding(err error) gin.H {
	errs := gin.H{}

	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		for _, fieldErr := range validationErrs {
			switch fieldErr.Field() {
			case "Username":
				errs["username"] = "username is required"
			case "Email":
				errs["email"] = "email is required"
			case "Password":
				errs["password"] = "password is required"
			case "PasswordConfirm":
				if fieldErr.Tag() == "eqfield" {
					errs["password_confirm"] = "passwords do not match"
				} else {
					errs["password_confirm"] = "password confirmation is required"
				}
			}
		}
	}

	// Non-validator failures, such as a malformed form body.
	if len(errs) == 0 {
		errs["username"] = "invalid input"
	}
	return errs
}

// fieldErrorsFromUsecase maps domain validation and conflict errors onto
// form fields.
func fieldErrorsFromUsecase(err error) gin.H {
	appErr := apperrors.GetAppError(err)
	if appErr == nil {
		return gin.H{"username": "signup is temporarily unavailable"}
	}

	switch {
	case strings.Contains(appErr.Message, "username"):
		return gin.H{"username": appErr.Message}
	case strings.Contains(appErr.Message, "email"):
		return gin.H{"email": appErr.Message}
	case strings.Contains(appErr.Message, "password"):
		return gin.H{"password": appErr.Message}
	default:
		return gin.H{"username": appErr.Message}
	}
}
