package mockapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"kampusgo.dev/kampussosyal/internal/store"
	"kampusgo.dev/kampussosyal/pkg/apperror"
	"kampusgo.dev/kampussosyal/pkg/response"
)

type registerRequest struct {
	Username   string `json:"username" binding:"required,min=3"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6"`
	Gender     string `json:"cinsiyet"`
	University string `json:"universite"`
	AvatarURL  string `json:"profil_resmi_url"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// publicUser strips credential fields before a user record leaves the mock.
func publicUser(user store.Record) store.Record {
	out := user.Clone()
	delete(out, "password")
	delete(out, "password_hash")
	delete(out, "reset_token")
	return out
}

func (r *Router) register(c *gin.Context) {
	var req registerRequest
	if err := bindJSON(c, &req); err != nil {
		response.ResponseError(c, err)
		return
	}

	users := r.store.Get(store.CollectionUsers, nil)
	for _, u := range users {
		if u.String("email") == req.Email {
			response.ResponseError(c, apperror.BadRequest("Bu e-posta adresi zaten kullanılıyor"))
			return
		}
		if u.String("username") == req.Username {
			response.ResponseError(c, apperror.BadRequest("Bu kullanıcı adı zaten kullanılıyor"))
			return
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	user := r.store.Add(store.CollectionUsers, store.Record{
		"username":         req.Username,
		"email":            req.Email,
		"password_hash":    string(hash),
		"cinsiyet":         req.Gender,
		"universite":       req.University,
		"profil_resmi_url": req.AvatarURL,
		"kayit_tarihi":     time.Now().Format(time.RFC3339),
	})

	token, err := r.issueToken(user.String("user_id"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	public := publicUser(user)
	r.session.SetToken(token)
	r.session.SetUser(public)

	response.Success(c, http.StatusCreated, gin.H{"token": token, "user": public}, "Kayıt başarılı")
}

func (r *Router) login(c *gin.Context) {
	var req loginRequest
	if err := bindJSON(c, &req); err != nil {
		response.ResponseError(c, err)
		return
	}

	users := r.store.GetWhere(store.CollectionUsers, func(u store.Record) bool {
		return u.String("email") == req.Email
	})
	if len(users) == 0 {
		response.ResponseError(c, apperror.BadRequest("Geçersiz e-posta veya şifre"))
		return
	}

	user := users[0]
	if err := bcrypt.CompareHashAndPassword([]byte(user.String("password_hash")), []byte(req.Password)); err != nil {
		response.ResponseError(c, apperror.BadRequest("Geçersiz e-posta veya şifre"))
		return
	}

	token, err := r.issueToken(user.String("user_id"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	public := publicUser(user)
	r.session.SetToken(token)
	r.session.SetUser(public)

	response.Success(c, http.StatusOK, gin.H{"token": token, "user": public}, "Giriş başarılı")
}

func (r *Router) me(c *gin.Context) {
	user, err := r.actor()
	if err != nil {
		response.ResponseError(c, err)
		return
	}
	response.Success(c, http.StatusOK, publicUser(user), "")
}

func (r *Router) refreshToken(c *gin.Context) {
	user, err := r.actor()
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	token, err := r.issueToken(user.String("user_id"))
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	r.session.SetToken(token)
	response.Success(c, http.StatusOK, gin.H{"token": token}, "")
}

type changePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required,min=6"`
}

func (r *Router) changePassword(c *gin.Context) {
	user, err := r.actor()
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	var req changePasswordRequest
	if err := bindJSON(c, &req); err != nil {
		response.ResponseError(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.String("password_hash")), []byte(req.CurrentPassword)); err != nil {
		response.ResponseError(c, apperror.BadRequest("Mevcut şifre hatalı"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	r.store.Update(store.CollectionUsers, user.String("user_id"), store.Record{
		"password_hash": string(hash),
	})

	response.Success(c, http.StatusOK, nil, "Şifre başarıyla değiştirildi")
}

type forgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func (r *Router) forgotPassword(c *gin.Context) {
	var req forgotPasswordRequest
	if err := bindJSON(c, &req); err != nil {
		response.ResponseError(c, err)
		return
	}

	// Whether or not the address exists, the answer is the same.
	users := r.store.GetWhere(store.CollectionUsers, func(u store.Record) bool {
		return u.String("email") == req.Email
	})
	if len(users) > 0 {
		r.store.Update(store.CollectionUsers, users[0].String("user_id"), store.Record{
			"reset_token": uuid.NewString(),
		})
	}

	response.Success(c, http.StatusOK, nil, "Şifre sıfırlama bağlantısı e-posta adresinize gönderildi")
}

type resetPasswordRequest struct {
	Token       string `json:"token" binding:"required"`
	NewPassword string `json:"new_password" binding:"required,min=6"`
}

func (r *Router) resetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := bindJSON(c, &req); err != nil {
		response.ResponseError(c, err)
		return
	}

	users := r.store.GetWhere(store.CollectionUsers, func(u store.Record) bool {
		return u.String("reset_token") == req.Token
	})
	if len(users) == 0 {
		response.ResponseError(c, apperror.BadRequest("Geçersiz veya süresi dolmuş token"))
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		response.ResponseError(c, err)
		return
	}

	r.store.Update(store.CollectionUsers, users[0].String("user_id"), store.Record{
		"password_hash": string(hash),
		"reset_token":   "",
	})

	response.Success(c, http.StatusOK, nil, "Şifreniz başarıyla sıfırlandı")
}
