package handlers

import (
	"net/http"

	"barcabuzz/internal/db"
	"barcabuzz/internal/forms"
	"barcabuzz/internal/models"
	"barcabuzz/internal/services"
	"barcabuzz/internal/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	mailService *services.MailService
}

func NewAuthHandler() *AuthHandler {
	return &AuthHandler{
		mailService: services.NewMailService(),
	}
}

func (h *AuthHandler) ShowRegister(c *gin.Context) {
	form := forms.NewRegisterForm()
	Render(c, http.StatusOK, "auth/register.html", gin.H{
		"Title":  "Register",
		"Form":   form,
		"Fields": form.Fields(),
	})
}

// Register 提交注册 - 校验通过后创建用户并自动登录
func (h *AuthHandler) Register(c *gin.Context) {
	form := &forms.RegisterForm{
		Username:        c.PostForm("username"),
		Email:           c.PostForm("email"),
		FirstName:       c.PostForm("first_name"),
		LastName:        c.PostForm("last_name"),
		Password:        c.PostForm("password"),
		PasswordConfirm: c.PostForm("password_confirm"),
	}

	valid := form.Validate()

	// 用户名/邮箱占用检查
	if form.Username != "" {
		var existing models.User
		if db.DB.Where("username = ?", form.Username).First(&existing).Error == nil {
			form.AddError("username", "Username already taken!")
			valid = false
		}
	}
	if form.Email != "" {
		var existing models.User
		if db.DB.Where("email = ?", form.Email).First(&existing).Error == nil {
			form.AddError("email", "Email already registered!")
			valid = false
		}
	}

	if !valid {
		Render(c, http.StatusBadRequest, "auth/register.html", gin.H{
			"Title":  "Register",
			"Form":   form,
			"Fields": form.Fields(),
		})
		return
	}

	hash, err := utils.HashPassword(form.Password)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Registration failed")
		return
	}

	user := models.User{
		Username:  form.Username,
		Email:     form.Email,
		Password:  hash,
		FirstName: form.FirstName,
		LastName:  form.LastName,
	}

	if err := db.DB.Create(&user).Error; err != nil {
		form.AddError("username", "Registration failed, try a different username")
		Render(c, http.StatusConflict, "auth/register.html", gin.H{
			"Title":  "Register",
			"Form":   form,
			"Fields": form.Fields(),
		})
		return
	}

	// 同步建作者资料
	db.DB.Create(&models.AuthorProfile{UserID: user.ID})

	h.mailService.SendWelcomeEmail(user.Email, user.Username)

	// 注册成功自动登录
	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) ShowLogin(c *gin.Context) {
	Render(c, http.StatusOK, "auth/login.html", gin.H{
		"Title": "Log In",
		"Next":  c.Query("next"),
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	username := c.PostForm("username")
	password := c.PostForm("password")

	var user models.User
	if err := db.DB.Where("username = ?", username).First(&user).Error; err != nil {
		Render(c, http.StatusUnauthorized, "auth/login.html", gin.H{
			"Title": "Log In",
			"Error": "Invalid username or password",
		})
		return
	}

	if !utils.CheckPasswordHash(password, user.Password) {
		Render(c, http.StatusUnauthorized, "auth/login.html", gin.H{
			"Title": "Log In",
			"Error": "Invalid username or password",
		})
		return
	}

	if !user.IsActive {
		Render(c, http.StatusForbidden, "auth/login.html", gin.H{
			"Title": "Log In",
			"Error": "This account has been disabled",
		})
		return
	}

	session := sessions.Default(c)
	session.Set("user_id", user.ID)
	session.Save()

	next := c.Query("next")
	if next == "" || next[0] != '/' {
		next = "/"
	}
	c.Redirect(http.StatusFound, next)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	session.Save()
	c.Redirect(http.StatusFound, "/")
}

func (h *AuthHandler) ShowForgotPassword(c *gin.Context) {
	Render(c, http.StatusOK, "auth/forgot_password.html", gin.H{"Title": "Reset Password"})
}

// ForgotPassword 发送重置验证码；不暴露邮箱是否存在
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	email := c.PostForm("email")

	var user models.User
	if err := db.DB.Where("email = ?", email).First(&user).Error; err == nil {
		code := utils.GenerateRandomCode(6)
		user.VerifyCode = code
		db.DB.Save(&user)
		h.mailService.SendPasswordResetEmail(email, code)
	}

	Render(c, http.StatusOK, "auth/reset_password.html", gin.H{
		"Title":   "Reset Password",
		"Email":   email,
		"Success": "If the email exists, a verification code has been sent.",
	})
}

func (h *AuthHandler) ShowResetPassword(c *gin.Context) {
	Render(c, http.StatusOK, "auth/reset_password.html", gin.H{
		"Title": "Reset Password",
		"Email": c.Query("email"),
	})
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	email := c.PostForm("email")
	code := c.PostForm("code")
	newPassword := c.PostForm("password")

	var user models.User
	if err := db.DB.Where("email = ?", email).First(&user).Error; err != nil {
		Render(c, http.StatusBadRequest, "auth/reset_password.html", gin.H{
			"Title": "Reset Password",
			"Error": "Invalid email or code",
			"Email": email,
		})
		return
	}

	if user.VerifyCode == "" || user.VerifyCode != code {
		Render(c, http.StatusBadRequest, "auth/reset_password.html", gin.H{
			"Title": "Reset Password",
			"Error": "Invalid email or code",
			"Email": email,
		})
		return
	}

	if len(newPassword) < 8 {
		Render(c, http.StatusBadRequest, "auth/reset_password.html", gin.H{
			"Title": "Reset Password",
			"Error": "Password must be at least 8 characters",
			"Email": email,
		})
		return
	}

	hash, err := utils.HashPassword(newPassword)
	if err != nil {
		RenderError(c, http.StatusInternalServerError, "Reset failed")
		return
	}
	user.Password = hash
	user.VerifyCode = "" // 清除验证码
	db.DB.Save(&user)

	Render(c, http.StatusOK, "auth/login.html", gin.H{
		"Title":   "Log In",
		"Success": "Password reset, please log in",
	})
}
