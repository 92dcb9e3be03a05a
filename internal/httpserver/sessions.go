package httpserver

import (
	"encoding/json"

	sessionsvc "web420-api/internal/service/session"

	"github.com/gin-gonic/gin"
)

// emailList accepts either a single address or an array of addresses.
type emailList []string

func (e *emailList) UnmarshalJSON(b []byte) error {
	var one string
	if err := json.Unmarshal(b, &one); err == nil {
		*e = emailList{one}
		return nil
	}
	var many []string
	if err := json.Unmarshal(b, &many); err != nil {
		return err
	}
	*e = many
	return nil
}

type signupRequest struct {
	UserName     string    `json:"userName" binding:"required"`
	Password     string    `json:"password" binding:"required"`
	EmailAddress emailList `json:"emailAddress" binding:"required,min=1,dive,required"`
}

// loginRequest leaves Password optional: an empty password is a credential
// mismatch, not a malformed request.
type loginRequest struct {
	UserName string `json:"userName" binding:"required"`
	Password string `json:"password"`
}

func (h *handlers) signup(c *gin.Context) {
	var req signupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.failText(c, "signup", err, signupPolicy, "")
		return
	}
	_, err := h.deps.Sessions.Signup(c.Request.Context(), sessionsvc.SignupInput{
		UserName:       req.UserName,
		Password:       req.Password,
		EmailAddresses: req.EmailAddress,
	})
	if err != nil {
		h.failText(c, "signup", err, signupPolicy, "Username is already in use")
		return
	}
	okText(c, "User successfully registered")
}

func (h *handlers) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.failText(c, "login", err, loginPolicy, "")
		return
	}
	if _, err := h.deps.Sessions.Login(c.Request.Context(), req.UserName, req.Password); err != nil {
		h.failText(c, "login", err, loginPolicy, "Invalid username and/or password")
		return
	}
	okText(c, "User successfully logged in")
}
