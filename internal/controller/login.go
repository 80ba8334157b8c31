package controller

import (
	"context"

	"github.com/letsdodifferent/HCLTech/internal/model"
	"github.com/letsdodifferent/HCLTech/internal/session"
	"github.com/letsdodifferent/HCLTech/internal/view"
)

// Login is the login screen.
type Login struct {
	sess *session.Manager

	Email    string
	Password string
	Submit   view.Submission
	User     *model.User
}

// NewLogin builds the login controller.
func NewLogin(sess *session.Manager) *Login {
	return &Login{sess: sess}
}

// SubmitForm validates inline, then opens a session. On failure the entered
// values stay and the server message is shown.
func (l *Login) SubmitForm(ctx context.Context) {
	if l.Email == "" || l.Password == "" {
		l.Submit.Fail("Please fill in all required fields")
		return
	}

	l.Submit.Begin()
	res := l.sess.Login(ctx, model.Credentials{Email: l.Email, Password: l.Password})
	if !res.OK {
		l.Submit.Fail(res.Message)
		return
	}
	l.User = &res.User
	l.Submit.Succeed(0)
}
