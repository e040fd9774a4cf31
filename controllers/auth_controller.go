// Package controllers controllers/auth_controller.go
package controllers

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"stream-music-portal/logger"
	"stream-music-portal/models"
	"stream-music-portal/services"
)

// AuthController handles login, sign-up and logout.
type AuthController struct {
	Auth     *services.AuthService
	Notifier services.Notifier
	Presence *services.PresenceService
	Wizards  *UploadController
}

// NewAuthController creates an instance of AuthController. Wizards may be nil
// when no upload surface is mounted.
func NewAuthController(auth *services.AuthService, notifier services.Notifier, presence *services.PresenceService, wizards *UploadController) *AuthController {
	logger.Debug.Println("NewAuthController: Initializing AuthController")
	return &AuthController{Auth: auth, Notifier: notifier, Presence: presence, Wizards: wizards}
}

// ShowLoginPage renders the login form.
func (ac *AuthController) ShowLoginPage(c *gin.Context) {
	c.HTML(http.StatusOK, "login.html", gin.H{})
}

// PerformLogin authenticates the posted identifier and password. Success
// stores the session user and lands on the dashboard; failure re-renders the
// form with an inline error and no session.
func (ac *AuthController) PerformLogin(c *gin.Context) {
	identifier := c.PostForm("identifier")
	password := c.PostForm("password")

	user, err := ac.Auth.Login(identifier, password)
	if err != nil {
		logger.Warn.Printf("PerformLogin: rejected login for %q", identifier)
		c.HTML(http.StatusUnauthorized, "login.html", gin.H{
			"Error": "Credenciais inválidas. Verifique o número e a senha.",
		})
		return
	}

	if err := ac.startSession(c, user); err != nil {
		c.HTML(http.StatusInternalServerError, "login.html", gin.H{
			"Error": "Erro interno, tente novamente.",
		})
		return
	}

	if user.Role == models.RoleArtist {
		ac.Notifier.Add("Bem-vindo de volta!",
			"Sua sessão foi iniciada com sucesso.",
			models.AudienceArtist)
	}

	logger.Info.Printf("PerformLogin: %s logged in as %s", user.ArtistName, user.Role)
	c.Redirect(http.StatusFound, "/dashboard")
}

// ShowSignUpPage renders the registration form.
func (ac *AuthController) ShowSignUpPage(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", gin.H{})
}

// PerformSignUp registers a new artist account and logs it straight in.
func (ac *AuthController) PerformSignUp(c *gin.Context) {
	profile := services.SignUpProfile{
		FullName:        c.PostForm("fullName"),
		ArtistName:      c.PostForm("artistName"),
		Province:        c.PostForm("province"),
		IDNumber:        c.PostForm("idNumber"),
		Phone:           c.PostForm("phone"),
		Password:        c.PostForm("password"),
		ConfirmPassword: c.PostForm("confirmPassword"),
	}

	user, err := ac.Auth.SignUp(profile)
	if err != nil {
		logger.Warn.Printf("PerformSignUp: rejected registration for %q: %v", profile.Phone, err)
		c.HTML(http.StatusBadRequest, "signup.html", gin.H{
			"Error":   signUpErrorMessage(err),
			"Profile": profile,
		})
		return
	}

	if err := ac.startSession(c, user); err != nil {
		c.HTML(http.StatusInternalServerError, "signup.html", gin.H{
			"Error": "Erro interno, tente novamente.",
		})
		return
	}

	ac.Notifier.Add("Conta Criada!",
		"Bem-vindo à Stream Music Distribution. Comece por enviar o seu primeiro lançamento.",
		models.AudienceArtist)

	logger.Info.Printf("PerformSignUp: account created and logged in for %s", user.ArtistName)
	c.Redirect(http.StatusFound, "/dashboard")
}

// Logout clears the session and returns to the login page. Any half-finished
// upload wizard goes with it so abandoned drafts do not pile up.
func (ac *AuthController) Logout(c *gin.Context) {
	session := sessions.Default(c)
	if userID, ok := session.Get("userID").(string); ok {
		logger.Info.Printf("Logout: logging out user %s", userID)
		ac.Presence.Forget(userID)
	}
	if ac.Wizards != nil {
		ac.Wizards.resetWizard(c)
	}

	session.Clear()
	if err := session.Save(); err != nil {
		logger.Error.Printf("Logout: error saving session during logout: %v", err)
	} else {
		logger.Info.Println("Logout: session cleared successfully")
	}

	c.Redirect(http.StatusFound, "/login")
}

// startSession installs the session keys every page render relies on. The
// active page always resets to the dashboard on a fresh login.
func (ac *AuthController) startSession(c *gin.Context, user models.User) error {
	session := sessions.Default(c)
	session.Set("userID", user.ID)
	session.Set("artistName", user.ArtistName)
	session.Set("role", string(user.Role))
	session.Set("activePage", services.DefaultPage)
	if err := session.Save(); err != nil {
		logger.Error.Printf("startSession: failed to save session: %v", err)
		return err
	}
	ac.Presence.Touch(user.ID)
	return nil
}

// signUpErrorMessage maps service errors to the Portuguese form messages.
func signUpErrorMessage(err error) string {
	switch err {
	case services.ErrMissingFields:
		return "Preencha todos os campos obrigatórios."
	case services.ErrPasswordMismatch:
		return "As senhas não coincidem."
	case services.ErrDuplicateAccount:
		return "Já existe uma conta com este número."
	}
	return "Não foi possível criar a conta."
}
